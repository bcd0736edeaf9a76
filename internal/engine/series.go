package engine

import (
	"fmt"
	"sort"
	"time"

	"nutritrack/internal/model"
)

// DayTotals folds all logs for one calendar day into a DaySummary. A day with
// no entries yields zero totals, not an absent summary. WeightKg is the exact
// weight logged on that day if present, else lastWeightKg.
func DayTotals(logs Logs, day time.Time, lastWeightKg float64) DaySummary {
	out := DaySummary{Date: dateOnly(day), WeightKg: lastWeightKg}
	for _, f := range logs.Food {
		if !sameDay(f.Date, day) {
			continue
		}
		out.Calories += f.Calories
		out.Protein += f.Protein
		out.Carbs += f.Carbs
		out.Fats += f.Fats
	}
	for _, w := range logs.Water {
		if sameDay(w.Date, day) {
			out.WaterML += w.AmountML
		}
	}
	for _, e := range logs.Exercise {
		if sameDay(e.Date, day) {
			out.ExerciseCalories += e.CaloriesBurned
		}
	}
	for _, w := range logs.Weight {
		if sameDay(w.Date, day) {
			out.WeightKg = w.WeightKg
		}
	}
	return out
}

// BuildDaySeries produces exactly one DaySummary per calendar day in
// [start, end], ascending, with no gaps. The last known weight is seeded from
// the most recent weight log strictly before start, else fallbackWeightKg, and
// carried forward into days without a weight log so every day has a weight
// value for chart continuity.
func BuildDaySeries(logs Logs, fallbackWeightKg float64, start, end time.Time) ([]DaySummary, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s", ErrInvalidRange, dateKey(end), dateKey(start))
	}

	lastWeight := fallbackWeightKg
	if w, ok := latestWeightBefore(logs.Weight, start); ok {
		lastWeight = w
	}

	sortedWeights := make([]model.WeightLog, len(logs.Weight))
	copy(sortedWeights, logs.Weight)
	sort.SliceStable(sortedWeights, func(i, j int) bool {
		return sortedWeights[i].Date.Before(sortedWeights[j].Date)
	})
	weightByDay := make(map[string]float64, len(sortedWeights))
	for _, w := range sortedWeights {
		weightByDay[dateKey(w.Date)] = w.WeightKg
	}

	days := make([]DaySummary, 0, inclusiveDayCount(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if w, ok := weightByDay[dateKey(d)]; ok {
			lastWeight = w
		}
		days = append(days, DayTotals(logs, d, lastWeight))
	}
	return days, nil
}

func latestWeightBefore(weights []model.WeightLog, cutoff time.Time) (float64, bool) {
	found := false
	var best model.WeightLog
	for _, w := range weights {
		if !dateOnly(w.Date).Before(cutoff) {
			continue
		}
		if !found || w.Date.After(best.Date) {
			best = w
			found = true
		}
	}
	return best.WeightKg, found
}

func inclusiveDayCount(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		count++
	}
	return count
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
