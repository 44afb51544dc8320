package usecase

import "github.com/yyu399/goal-model-v3.1/internal/domain"

// Evaluate derives the goal score and the four advisory labels for one
// snapshot. It is a pure function of its argument.
func Evaluate(s domain.MatchSnapshot) domain.EvaluationResult {
	goalScore := GoalScore(s)

	return domain.EvaluationResult{
		Name:                 s.Name,
		Minute:               s.Minute,
		Score:                s.Score,
		TotalCorners:         s.TotalCorners,
		GoalScore:            goalScore,
		GoalRecommendation:   ClassifyGoalScore(goalScore),
		CornerRecommendation: ClassifyCornerPace(CornerPace(s)),
		NextGoalPrediction:   PredictNextGoal(s),
		OddsMovement:         ClassifyOddsMovement(OddsDelta(s)),
	}
}

// EvaluateAll evaluates each snapshot independently and returns the results
// in input order.
func EvaluateAll(snapshots []domain.MatchSnapshot) []domain.EvaluationResult {
	results := make([]domain.EvaluationResult, len(snapshots))
	for i, s := range snapshots {
		results[i] = Evaluate(s)
	}
	return results
}
