package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

func TestCornerPace(t *testing.T) {
	tests := []struct {
		name    string
		minute  int
		corners int
		want    string // two decimal places
		class   domain.CornerRecommendation
	}{
		{name: "kick-off uses the +1 guard", minute: 0, corners: 5, want: "450.00", class: domain.CornerFast},
		{name: "exactly 9 at minute 89", minute: 89, corners: 9, want: "9.00", class: domain.CornerModerate},
		{name: "exactly 11 at minute 89", minute: 89, corners: 11, want: "11.00", class: domain.CornerFast},
		{name: "just under 9", minute: 90, corners: 9, want: "8.90", class: domain.CornerSlow},
		{name: "no corners", minute: 45, corners: 0, want: "0.00", class: domain.CornerSlow},
		{name: "extra time", minute: 120, corners: 14, want: "10.41", class: domain.CornerModerate},
		{name: "minute -1 cannot divide by zero", minute: -1, corners: 3, want: "0.00", class: domain.CornerSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.MatchSnapshot{Minute: tt.minute, TotalCorners: tt.corners}
			pace := CornerPace(s)
			assert.Equal(t, tt.want, pace.StringFixed(2))
			assert.Equal(t, tt.class, ClassifyCornerPace(pace))
		})
	}
}

func TestCornerPace_Scenario(t *testing.T) {
	pace := CornerPace(scenarioSnapshot())

	// 8 / 66 * 90
	assert.Equal(t, "10.9", pace.StringFixed(1))
	assert.Equal(t, domain.CornerModerate, ClassifyCornerPace(pace))
}

func TestClassifyCornerPace(t *testing.T) {
	tests := []struct {
		pace string
		want domain.CornerRecommendation
	}{
		{pace: "11", want: domain.CornerFast},
		{pace: "10.99", want: domain.CornerModerate},
		{pace: "9", want: domain.CornerModerate},
		{pace: "8.99", want: domain.CornerSlow},
		{pace: "-3", want: domain.CornerSlow},
	}

	for _, tt := range tests {
		if got := ClassifyCornerPace(dec(tt.pace)); got != tt.want {
			t.Errorf("ClassifyCornerPace(%s) = %q, want %q", tt.pace, got, tt.want)
		}
	}
}

func TestPredictNextGoal(t *testing.T) {
	tests := []struct {
		name         string
		onTargetHome int
		onTargetAway int
		oddsHome     string
		oddsAway     string
		want         domain.NextGoalPrediction
	}{
		{name: "home lead and market agree", onTargetHome: 5, onTargetAway: 2, oddsHome: "2.0", oddsAway: "4.0", want: domain.NextGoalHome},
		{name: "home odds exactly 2.3", onTargetHome: 5, onTargetAway: 2, oddsHome: "2.3", oddsAway: "4.0", want: domain.NextGoalUnclear},
		{name: "home lead of 2 is not enough", onTargetHome: 4, onTargetAway: 2, oddsHome: "1.5", oddsAway: "4.0", want: domain.NextGoalUnclear},
		{name: "away lead and market agree", onTargetHome: 1, onTargetAway: 6, oddsHome: "3.5", oddsAway: "1.9", want: domain.NextGoalAway},
		{name: "away lead without market", onTargetHome: 1, onTargetAway: 6, oddsHome: "3.5", oddsAway: "2.6", want: domain.NextGoalUnclear},
		{name: "market alone is not enough", onTargetHome: 3, onTargetAway: 3, oddsHome: "1.6", oddsAway: "1.6", want: domain.NextGoalUnclear},
		{name: "home checked first", onTargetHome: 6, onTargetAway: 0, oddsHome: "2.2", oddsAway: "1.1", want: domain.NextGoalHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.MatchSnapshot{
				ShotsOnTargetHome: tt.onTargetHome,
				ShotsOnTargetAway: tt.onTargetAway,
				NextGoalOddsHome:  dec(tt.oddsHome),
				NextGoalOddsAway:  dec(tt.oddsAway),
			}
			assert.Equal(t, tt.want, PredictNextGoal(s))
		})
	}
}

func TestOddsMovement(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		current string
		want    domain.OddsMovement
	}{
		{name: "drop of exactly 0.20", opening: "2.00", current: "1.80", want: domain.OddsDown},
		{name: "drop of 0.19", opening: "2.00", current: "1.81", want: domain.OddsFlat},
		{name: "large drop", opening: "2.40", current: "1.70", want: domain.OddsDown},
		{name: "rise of exactly 0.20", opening: "1.85", current: "2.05", want: domain.OddsUp},
		{name: "rise of 0.19", opening: "1.85", current: "2.04", want: domain.OddsFlat},
		{name: "unchanged", opening: "1.95", current: "1.95", want: domain.OddsFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.MatchSnapshot{OpeningOverOdds: dec(tt.opening), CurrentOverOdds: dec(tt.current)}
			assert.Equal(t, tt.want, ClassifyOddsMovement(OddsDelta(s)))
		})
	}
}

func TestOddsDelta_FromFloatInput(t *testing.T) {
	s := domain.MatchSnapshot{
		OpeningOverOdds: decimal.NewFromFloat(2.00),
		CurrentOverOdds: decimal.NewFromFloat(1.80),
	}

	// float64 subtraction would give -0.19999999999999996
	assert.True(t, OddsDelta(s).Equal(dec("-0.2")))
	assert.Equal(t, domain.OddsDown, ClassifyOddsMovement(OddsDelta(s)))
}
