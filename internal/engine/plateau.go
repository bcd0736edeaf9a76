package engine

import (
	"math"
	"sort"

	"nutritrack/internal/model"
)

// DetectPlateau flags weight stagnation from the dispersion of the most recent
// samples: population standard deviation of up to PlateauWindow latest weights
// below PlateauStdDevKg. Fewer than PlateauMinSamples means insufficient data,
// reported as false. This is a spread heuristic, deliberately insensitive to
// direction.
func DetectPlateau(weights []model.WeightLog) bool {
	if len(weights) < PlateauMinSamples {
		return false
	}

	recent := make([]model.WeightLog, len(weights))
	copy(recent, weights)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > PlateauWindow {
		recent = recent[:PlateauWindow]
	}

	values := make([]float64, 0, len(recent))
	for _, w := range recent {
		values = append(values, w.WeightKg)
	}
	return populationStdDev(values) < PlateauStdDevKg
}

func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
