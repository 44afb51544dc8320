package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

var (
	fullMatchMinutes = decimal.NewFromInt(90)

	cornerFastPace     = decimal.NewFromInt(11)
	cornerModeratePace = decimal.NewFromInt(9)
)

// CornerPace projects the observed corners onto 90 minutes as
// totalCorners / (minute + 1) * 90. The +1 damps early-match estimates and
// must stay. The product is taken before the division so boundary paces
// compare exactly.
func CornerPace(s domain.MatchSnapshot) decimal.Decimal {
	elapsed := decimal.NewFromInt(int64(s.Minute) + 1)
	if elapsed.IsZero() {
		// only a reported minute of -1 gets here
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.TotalCorners)).Mul(fullMatchMinutes).Div(elapsed)
}

// ClassifyCornerPace maps a projected pace to a recommendation
func ClassifyCornerPace(pace decimal.Decimal) domain.CornerRecommendation {
	switch {
	case pace.GreaterThanOrEqual(cornerFastPace):
		return domain.CornerFast
	case pace.GreaterThanOrEqual(cornerModeratePace):
		return domain.CornerModerate
	default:
		return domain.CornerSlow
	}
}
