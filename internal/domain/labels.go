package domain

import "fmt"

// GoalRecommendation is the advice derived from the goal score
type GoalRecommendation string

// CornerRecommendation is the advice derived from the projected corner pace
type CornerRecommendation string

// NextGoalPrediction names the side favored to score next
type NextGoalPrediction string

// OddsMovement classifies the shift of the over line since kick-off
type OddsMovement string

const (
	GoalChase GoalRecommendation = "chase"
	GoalWatch GoalRecommendation = "watch"
	GoalAvoid GoalRecommendation = "avoid"

	CornerFast     CornerRecommendation = "fast"
	CornerModerate CornerRecommendation = "moderate"
	CornerSlow     CornerRecommendation = "slow"

	NextGoalHome    NextGoalPrediction = "home"
	NextGoalAway    NextGoalPrediction = "away"
	NextGoalUnclear NextGoalPrediction = "unclear"

	OddsDown OddsMovement = "down"
	OddsUp   OddsMovement = "up"
	OddsFlat OddsMovement = "flat"
)

// Locale selects the wording of advisory labels
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

// ParseLocale maps a query value to a Locale. Empty input means English.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case "", LocaleEnglish:
		return LocaleEnglish, nil
	case LocaleChinese:
		return LocaleChinese, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
}

var labels = map[Locale]map[string]string{
	LocaleEnglish: {
		"goal:" + string(GoalChase): "recommend chasing the over/goal market",
		"goal:" + string(GoalWatch): "watch, no action",
		"goal:" + string(GoalAvoid): "not recommended",

		"corner:" + string(CornerFast):     "fast pace, chase corners",
		"corner:" + string(CornerModerate): "moderately fast, monitor",
		"corner:" + string(CornerSlow):     "slow pace, not recommended now",

		"next:" + string(NextGoalHome):    "home side favored to score next",
		"next:" + string(NextGoalAway):    "away side favored to score next",
		"next:" + string(NextGoalUnclear): "situation unclear",

		"odds:" + string(OddsDown): "line moved down, goal expectation increased",
		"odds:" + string(OddsUp):   "line moved up, goal expectation decreased",
		"odds:" + string(OddsFlat): "little change",
	},
	LocaleChinese: {
		"goal:" + string(GoalChase): "✅ 推荐追大球",
		"goal:" + string(GoalWatch): "⚠️ 可观望",
		"goal:" + string(GoalAvoid): "❌ 不建议",

		"corner:" + string(CornerFast):     "✅ 角球节奏快，可追",
		"corner:" + string(CornerModerate): "⚠️ 较快，可关注",
		"corner:" + string(CornerSlow):     "❌ 节奏慢，暂不建议",

		"next:" + string(NextGoalHome):    "主队有望进下一球",
		"next:" + string(NextGoalAway):    "客队有望进下一球",
		"next:" + string(NextGoalUnclear): "⚠️ 形势不明",

		"odds:" + string(OddsDown): "✅ 盘口下调，进球被看好",
		"odds:" + string(OddsUp):   "❌ 盘口上调，进球不被看好",
		"odds:" + string(OddsFlat): "⚠️ 盘口变化不大",
	},
}

func label(locale Locale, kind, code string) string {
	if text, ok := labels[locale][kind+":"+code]; ok {
		return text
	}
	if text, ok := labels[LocaleEnglish][kind+":"+code]; ok {
		return text
	}
	return code
}

// Label returns the human-readable text for the given locale
func (r GoalRecommendation) Label(locale Locale) string { return label(locale, "goal", string(r)) }

// Label returns the human-readable text for the given locale
func (r CornerRecommendation) Label(locale Locale) string { return label(locale, "corner", string(r)) }

// Label returns the human-readable text for the given locale
func (p NextGoalPrediction) Label(locale Locale) string { return label(locale, "next", string(p)) }

// Label returns the human-readable text for the given locale
func (m OddsMovement) Label(locale Locale) string { return label(locale, "odds", string(m)) }

// String returns the English label
func (r GoalRecommendation) String() string { return r.Label(LocaleEnglish) }

func (r CornerRecommendation) String() string { return r.Label(LocaleEnglish) }

func (p NextGoalPrediction) String() string { return p.Label(LocaleEnglish) }

func (m OddsMovement) String() string { return m.Label(LocaleEnglish) }
