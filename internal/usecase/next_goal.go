package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

const shotsOnTargetLead = 2

var nextGoalOddsCeiling = decimal.RequireFromString("2.3")

// PredictNextGoal needs both the shot-accuracy lead and the market to agree
// on a side; either signal alone is not enough. Home is checked first.
func PredictNextGoal(s domain.MatchSnapshot) domain.NextGoalPrediction {
	switch {
	case s.ShotsOnTargetHome > s.ShotsOnTargetAway+shotsOnTargetLead &&
		s.NextGoalOddsHome.LessThan(nextGoalOddsCeiling):
		return domain.NextGoalHome
	case s.ShotsOnTargetAway > s.ShotsOnTargetHome+shotsOnTargetLead &&
		s.NextGoalOddsAway.LessThan(nextGoalOddsCeiling):
		return domain.NextGoalAway
	default:
		return domain.NextGoalUnclear
	}
}
