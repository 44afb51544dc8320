package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

var oddsMovementStep = decimal.RequireFromString("0.2")

// OddsDelta is the signed change of the over line since kick-off
func OddsDelta(s domain.MatchSnapshot) decimal.Decimal {
	return s.CurrentOverOdds.Sub(s.OpeningOverOdds)
}

// ClassifyOddsMovement treats a shortening price as rising goal
// expectation. Both ±0.2 boundaries count as movement.
func ClassifyOddsMovement(delta decimal.Decimal) domain.OddsMovement {
	switch {
	case delta.LessThanOrEqual(oddsMovementStep.Neg()):
		return domain.OddsDown
	case delta.GreaterThanOrEqual(oddsMovementStep):
		return domain.OddsUp
	default:
		return domain.OddsFlat
	}
}
