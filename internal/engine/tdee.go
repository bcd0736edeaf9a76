package engine

import (
	"math"

	"nutritrack/internal/model"
)

// BMR uses the Mifflin-St Jeor equation.
func BMR(p model.Profile) float64 {
	base := (10 * p.WeightKg) + (6.25 * p.HeightCm) - (5 * float64(p.Age))
	if p.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the activity multiplier, rounded to 2 decimals.
func TDEE(p model.Profile) float64 {
	return round2(BMR(p) * p.ActivityLevel)
}

// CalorieTarget adjusts TDEE for the stated goal: -500 kcal for Lose, +500 for
// Gain, unchanged for Maintain. Both values are rounded to 2 decimals.
func CalorieTarget(p model.Profile) (tdee, target float64) {
	raw := BMR(p) * p.ActivityLevel
	adjusted := raw
	switch p.Goal {
	case model.GoalLose:
		adjusted = raw - 500
	case model.GoalGain:
		adjusted = raw + 500
	}
	return round2(raw), round2(adjusted)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
