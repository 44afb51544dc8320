package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

// Goal score weights and thresholds
const (
	lateMinuteThreshold    = 60
	totalShotsThreshold    = 20
	shotsOnTargetThreshold = 8
	balancedPossessionGap  = 15

	goalChaseThreshold = 7
	goalWatchThreshold = 5
)

// MaxGoalScore is the sum of all signal weights
const MaxGoalScore = 9

var (
	// drawishScores earn the scoreline bonus. Matched as exact literals only:
	// "2-1" or "10-1" never match.
	drawishScores = map[string]struct{}{
		"0-0": {},
		"1-1": {},
		"1-2": {},
		"2-2": {},
	}

	overOddsValueThreshold = decimal.RequireFromString("1.90")
)

// GoalSignal is one weighted boolean input of the goal score
type GoalSignal struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Hit    bool   `json:"hit"`
}

// GoalSignals evaluates every goal-likelihood condition independently
func GoalSignals(s domain.MatchSnapshot) []GoalSignal {
	_, drawish := drawishScores[s.Score]

	return []GoalSignal{
		{Name: "late_minute", Weight: 2, Hit: s.Minute >= lateMinuteThreshold},
		{Name: "drawish_score", Weight: 1, Hit: drawish},
		{Name: "total_shots", Weight: 2, Hit: s.ShotsHome+s.ShotsAway >= totalShotsThreshold},
		{Name: "shots_on_target", Weight: 2, Hit: s.ShotsOnTargetHome+s.ShotsOnTargetAway >= shotsOnTargetThreshold},
		{Name: "balanced_possession", Weight: 1, Hit: absInt(s.PossessionHome-s.PossessionAway) <= balancedPossessionGap},
		{Name: "over_odds_value", Weight: 1, Hit: s.CurrentOverOdds.GreaterThan(overOddsValueThreshold)},
	}
}

// GoalScore sums the weights of the signals that hit. The result is in
// [0, MaxGoalScore]; no validation or clamping is applied.
func GoalScore(s domain.MatchSnapshot) int {
	score := 0
	for _, signal := range GoalSignals(s) {
		if signal.Hit {
			score += signal.Weight
		}
	}
	return score
}

// ClassifyGoalScore maps a goal score to a recommendation tier
func ClassifyGoalScore(score int) domain.GoalRecommendation {
	switch {
	case score >= goalChaseThreshold:
		return domain.GoalChase
	case score >= goalWatchThreshold:
		return domain.GoalWatch
	default:
		return domain.GoalAvoid
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
