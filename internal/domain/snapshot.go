package domain

import "github.com/shopspring/decimal"

// MatchSnapshot is one match's observed in-play state at a point in time.
// Ranges (minute 0-120, possession 0-100, odds >= 1.0) are conventions of the
// collector; nothing downstream enforces them.
type MatchSnapshot struct {
	Name              string          `json:"name" yaml:"name"`
	Minute            int             `json:"minute" yaml:"minute"`
	Score             string          `json:"score" yaml:"score"` // "<home>-<away>", e.g. "1-1"
	TotalCorners      int             `json:"totalCorners" yaml:"totalCorners"`
	ShotsHome         int             `json:"shotsHome" yaml:"shotsHome"`
	ShotsAway         int             `json:"shotsAway" yaml:"shotsAway"`
	ShotsOnTargetHome int             `json:"shotsOnTargetHome" yaml:"shotsOnTargetHome"`
	ShotsOnTargetAway int             `json:"shotsOnTargetAway" yaml:"shotsOnTargetAway"`
	PossessionHome    int             `json:"possessionHome" yaml:"possessionHome"`
	PossessionAway    int             `json:"possessionAway" yaml:"possessionAway"`
	OpeningOverOdds   decimal.Decimal `json:"openingOverOdds" yaml:"openingOverOdds"`
	CurrentOverOdds   decimal.Decimal `json:"currentOverOdds" yaml:"currentOverOdds"`
	NextGoalOddsHome  decimal.Decimal `json:"nextGoalOddsHome" yaml:"nextGoalOddsHome"`
	NextGoalOddsAway  decimal.Decimal `json:"nextGoalOddsAway" yaml:"nextGoalOddsAway"`
}

// EvaluationResult is the derived view of a single snapshot
type EvaluationResult struct {
	Name                 string               `json:"name"`
	Minute               int                  `json:"minute"`
	Score                string               `json:"score"`
	TotalCorners         int                  `json:"totalCorners"`
	GoalScore            int                  `json:"goalScore"`
	GoalRecommendation   GoalRecommendation   `json:"goalRecommendation"`
	CornerRecommendation CornerRecommendation `json:"cornerRecommendation"`
	NextGoalPrediction   NextGoalPrediction   `json:"nextGoalPrediction"`
	OddsMovement         OddsMovement         `json:"oddsMovement"`
}

// EvaluateRequest is the batch payload accepted by the API and the CLI
type EvaluateRequest struct {
	Matches []MatchSnapshot `json:"matches" yaml:"matches" binding:"required"`
}
