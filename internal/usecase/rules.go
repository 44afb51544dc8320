package usecase

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

// RuleSet describes the fixed thresholds the evaluator applies
type RuleSet struct {
	Goal     GoalRules     `json:"goal"`
	Corner   CornerRules   `json:"corner"`
	NextGoal NextGoalRules `json:"nextGoal"`
	Odds     OddsRules     `json:"odds"`
}

// GoalRules lists the goal score inputs and tier boundaries
type GoalRules struct {
	LateMinute         int             `json:"lateMinute"`
	DrawishScores      []string        `json:"drawishScores"`
	TotalShots         int             `json:"totalShots"`
	ShotsOnTarget      int             `json:"shotsOnTarget"`
	PossessionGap      int             `json:"possessionGap"`
	OverOddsAbove      decimal.Decimal `json:"overOddsAbove"`
	ChaseFrom          int             `json:"chaseFrom"`
	WatchFrom          int             `json:"watchFrom"`
	MaxScore           int             `json:"maxScore"`
	SignalWeightByName map[string]int  `json:"signalWeights"`
}

// CornerRules holds the projected pace boundaries
type CornerRules struct {
	FastFrom     decimal.Decimal `json:"fastFrom"`
	ModerateFrom decimal.Decimal `json:"moderateFrom"`
}

// NextGoalRules holds the shot lead and odds ceiling
type NextGoalRules struct {
	ShotsOnTargetLead int             `json:"shotsOnTargetLead"`
	OddsBelow         decimal.Decimal `json:"oddsBelow"`
}

// OddsRules holds the movement step
type OddsRules struct {
	Step decimal.Decimal `json:"step"`
}

// Rules returns the rule set in effect
func Rules() RuleSet {
	weights := make(map[string]int)
	for _, signal := range GoalSignals(domain.MatchSnapshot{}) {
		weights[signal.Name] = signal.Weight
	}

	scores := make([]string, 0, len(drawishScores))
	for score := range drawishScores {
		scores = append(scores, score)
	}
	sort.Strings(scores)

	return RuleSet{
		Goal: GoalRules{
			LateMinute:         lateMinuteThreshold,
			DrawishScores:      scores,
			TotalShots:         totalShotsThreshold,
			ShotsOnTarget:      shotsOnTargetThreshold,
			PossessionGap:      balancedPossessionGap,
			OverOddsAbove:      overOddsValueThreshold,
			ChaseFrom:          goalChaseThreshold,
			WatchFrom:          goalWatchThreshold,
			MaxScore:           MaxGoalScore,
			SignalWeightByName: weights,
		},
		Corner: CornerRules{
			FastFrom:     cornerFastPace,
			ModerateFrom: cornerModeratePace,
		},
		NextGoal: NextGoalRules{
			ShotsOnTargetLead: shotsOnTargetLead,
			OddsBelow:         nextGoalOddsCeiling,
		},
		Odds: OddsRules{
			Step: oddsMovementStep,
		},
	}
}
