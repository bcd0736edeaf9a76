package engine

import (
	"fmt"
	"math"

	"nutritrack/internal/model"
)

// GenerateInsights produces the ordered observation list: exactly one adherence
// message first, then a goal-trend message when the weight change direction
// warrants one. The rules are independent; a missing trend trigger just yields
// a shorter list.
func GenerateInsights(adherencePct, weightChange float64, goal model.Goal) []string {
	insights := make([]string, 0, 2)

	switch {
	case adherencePct >= 80:
		insights = append(insights, "Great consistency! You are well on track.")
	case adherencePct >= 50:
		insights = append(insights, "Good effort using the tracker. Aim for higher consistency.")
	default:
		insights = append(insights, "Try to log your meals more consistently to see better results.")
	}

	switch goal {
	case model.GoalLose:
		if weightChange < 0 {
			insights = append(insights, fmt.Sprintf("You've lost %.1fkg this month. Keep it up!", math.Abs(weightChange)))
		} else if weightChange > 0 {
			insights = append(insights, "Weight has increased slightly. Check your calorie surplus.")
		}
	case model.GoalGain:
		if weightChange > 0 {
			insights = append(insights, fmt.Sprintf("You've gained %.1fkg this month. Keep it up!", weightChange))
		} else if weightChange < 0 {
			insights = append(insights, "Weight has decreased slightly. Check your calorie deficit.")
		}
	}

	return insights
}
