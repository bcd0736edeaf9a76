// Package engine is the pure analytics core: it turns time-stamped log records
// and a profile into day-indexed series and derived signals (streaks, adherence,
// plateau detection, BMI, insights). Every function is total over well-formed
// input, performs no I/O, and takes "today" as an explicit parameter so results
// are deterministic.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"nutritrack/internal/model"
)

var (
	ErrInvalidRange    = errors.New("invalid date range")
	ErrMalformedRecord = errors.New("malformed record")
)

const (
	// AdherenceTolerance is the inclusive band around the calorie target.
	AdherenceTolerance = 0.10
	// PlateauWindow is the number of most recent weight samples inspected.
	PlateauWindow = 5
	// PlateauMinSamples is the minimum sample count for a plateau verdict.
	PlateauMinSamples = 3
	// PlateauStdDevKg is the dispersion threshold below which weight is flat.
	PlateauStdDevKg = 0.2
)

// Logs is the full in-memory window of records the engine operates on.
type Logs struct {
	Food     []model.FoodLog
	Water    []model.WaterLog
	Weight   []model.WeightLog
	Exercise []model.ExerciseLog
	Sleep    []model.SleepLog
}

// DaySummary is the per-day fold of all log kinds. WeightKg is always set:
// either the exact weight logged that day or the carried-forward last known
// value.
type DaySummary struct {
	Date             time.Time `json:"date"`
	Calories         int       `json:"calories"`
	Protein          float64   `json:"protein_g"`
	Carbs            float64   `json:"carbs_g"`
	Fats             float64   `json:"fats_g"`
	WaterML          int       `json:"water_ml"`
	ExerciseCalories int       `json:"exercise_calories"`
	WeightKg         float64   `json:"weight_kg"`
}

type Adherence struct {
	MetDays    int     `json:"met_days"`
	LoggedDays int     `json:"logged_days"`
	Percentage float64 `json:"percentage"`
}

type BMI struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type Signals struct {
	Streak       int       `json:"streak"`
	Adherence    Adherence `json:"adherence"`
	Plateau      bool      `json:"plateau"`
	BMI          BMI       `json:"bmi"`
	WeightChange float64   `json:"weight_change_kg"`
	Insights     []string  `json:"insights"`
}

type Report struct {
	Days    []DaySummary `json:"days"`
	Signals Signals      `json:"signals"`
}

// Evaluate runs the full pipeline over [start, end] and returns the day series
// plus derived signals. Calling it twice with identical inputs yields identical
// output.
func Evaluate(p model.Profile, logs Logs, start, end, today time.Time) (*Report, error) {
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if err := ValidateLogs(logs); err != nil {
		return nil, err
	}

	days, err := BuildDaySeries(logs, p.WeightKg, start, end)
	if err != nil {
		return nil, err
	}

	adherence := EvaluateAdherence(days, p.DailyCalorieTarget)
	weightChange := WeightChange(logs.Weight, start, end)

	return &Report{
		Days: days,
		Signals: Signals{
			Streak:       CurrentStreak(foodLogDates(logs.Food), today),
			Adherence:    adherence,
			Plateau:      DetectPlateau(logs.Weight),
			BMI:          ClassifyBMI(p.HeightCm, p.WeightKg),
			WeightChange: weightChange,
			Insights:     GenerateInsights(adherence.Percentage, weightChange, p.Goal),
		},
	}, nil
}

// WeightChange is end weight minus start weight over the in-range samples,
// rounded to 1 decimal. Fewer than two samples yield 0.
func WeightChange(weights []model.WeightLog, start, end time.Time) float64 {
	inRange := make([]model.WeightLog, 0, len(weights))
	for _, w := range weights {
		d := dateOnly(w.Date)
		if d.Before(dateOnly(start)) || d.After(dateOnly(end)) {
			continue
		}
		inRange = append(inRange, w)
	}
	if len(inRange) < 2 {
		return 0
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].Date.Before(inRange[j].Date)
	})
	return round1(inRange[len(inRange)-1].WeightKg - inRange[0].WeightKg)
}

func validateProfile(p model.Profile) error {
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: profile height must be > 0", ErrMalformedRecord)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("%w: profile weight must be > 0", ErrMalformedRecord)
	}
	if p.DailyCalorieTarget <= 0 {
		return fmt.Errorf("%w: profile calorie target must be > 0", ErrMalformedRecord)
	}
	return nil
}

// ValidateLogs rejects out-of-domain values up front rather than clamping them,
// since clamping would corrupt streak and adherence math downstream.
func ValidateLogs(logs Logs) error {
	for _, f := range logs.Food {
		if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fats < 0 {
			return fmt.Errorf("%w: food log %q has negative values", ErrMalformedRecord, f.Name)
		}
	}
	for _, w := range logs.Water {
		if w.AmountML < 0 {
			return fmt.Errorf("%w: water log has negative amount", ErrMalformedRecord)
		}
	}
	for _, w := range logs.Weight {
		if w.WeightKg <= 0 {
			return fmt.Errorf("%w: weight log must be > 0", ErrMalformedRecord)
		}
	}
	for _, e := range logs.Exercise {
		if e.DurationMin < 0 || e.CaloriesBurned < 0 {
			return fmt.Errorf("%w: exercise log has negative values", ErrMalformedRecord)
		}
	}
	return nil
}

func foodLogDates(food []model.FoodLog) []time.Time {
	dates := make([]time.Time, 0, len(food))
	for _, f := range food {
		dates = append(dates, f.Date)
	}
	return dates
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
