package engine_test

import (
	"errors"
	"testing"
	"time"

	"nutritrack/internal/engine"
	"nutritrack/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildDaySeriesCoversEveryDay(t *testing.T) {
	t.Parallel()
	start := date(2026, 6, 1)
	end := date(2026, 6, 30)

	days, err := engine.BuildDaySeries(engine.Logs{}, 72.5, start, end)
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	for i, d := range days {
		want := start.AddDate(0, 0, i)
		if !d.Date.Equal(want) {
			t.Fatalf("day %d: expected %s, got %s", i, want, d.Date)
		}
		if d.Calories != 0 || d.WaterML != 0 || d.ExerciseCalories != 0 {
			t.Fatalf("day %d: expected zero totals for unlogged day, got %+v", i, d)
		}
		if d.WeightKg != 72.5 {
			t.Fatalf("day %d: expected fallback weight 72.5, got %v", i, d.WeightKg)
		}
	}
}

func TestBuildDaySeriesAggregatesDayTotals(t *testing.T) {
	t.Parallel()
	logs := engine.Logs{
		Food: []model.FoodLog{
			{Name: "Oats", Calories: 400, Protein: 12, Carbs: 60, Fats: 8, Date: date(2026, 6, 2)},
			{Name: "Chicken", Calories: 600, Protein: 50, Carbs: 10, Fats: 20, Date: date(2026, 6, 2)},
			{Name: "Salad", Calories: 300, Protein: 5, Carbs: 25, Fats: 15, Date: date(2026, 6, 3)},
		},
		Water: []model.WaterLog{
			{AmountML: 500, Date: date(2026, 6, 2)},
			{AmountML: 250, Date: date(2026, 6, 2)},
		},
		Exercise: []model.ExerciseLog{
			{Type: model.ExerciseCardio, DurationMin: 30, CaloriesBurned: 280, Date: date(2026, 6, 2)},
		},
	}

	days, err := engine.BuildDaySeries(logs, 80, date(2026, 6, 1), date(2026, 6, 3))
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	second := days[1]
	if second.Calories != 1000 {
		t.Fatalf("expected 1000 kcal on day 2, got %d", second.Calories)
	}
	if second.Protein != 62 || second.Carbs != 70 || second.Fats != 28 {
		t.Fatalf("unexpected macros on day 2: %+v", second)
	}
	if second.WaterML != 750 {
		t.Fatalf("expected 750ml water on day 2, got %d", second.WaterML)
	}
	if second.ExerciseCalories != 280 {
		t.Fatalf("expected 280 exercise kcal on day 2, got %d", second.ExerciseCalories)
	}
	if days[0].Calories != 0 {
		t.Fatalf("expected zero calories on unlogged day 1, got %d", days[0].Calories)
	}
}

func TestBuildDaySeriesCarriesWeightForward(t *testing.T) {
	t.Parallel()
	logs := engine.Logs{
		Weight: []model.WeightLog{
			{WeightKg: 81.2, Date: date(2026, 6, 2)},
			{WeightKg: 80.6, Date: date(2026, 6, 5)},
		},
	}

	days, err := engine.BuildDaySeries(logs, 82, date(2026, 6, 1), date(2026, 6, 7))
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	want := []float64{82, 81.2, 81.2, 81.2, 80.6, 80.6, 80.6}
	for i, w := range want {
		if days[i].WeightKg != w {
			t.Fatalf("day %d: expected weight %v, got %v", i, w, days[i].WeightKg)
		}
	}
}

func TestBuildDaySeriesSeedsFromWeightBeforeRange(t *testing.T) {
	t.Parallel()
	logs := engine.Logs{
		Weight: []model.WeightLog{
			{WeightKg: 84.4, Date: date(2026, 5, 28)},
		},
	}

	days, err := engine.BuildDaySeries(logs, 90, date(2026, 6, 1), date(2026, 6, 2))
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	for i, d := range days {
		if d.WeightKg != 84.4 {
			t.Fatalf("day %d: expected seed weight 84.4 from pre-range log, got %v", i, d.WeightKg)
		}
	}
}

func TestBuildDaySeriesRejectsInvertedRange(t *testing.T) {
	t.Parallel()
	_, err := engine.BuildDaySeries(engine.Logs{}, 70, date(2026, 6, 10), date(2026, 6, 1))
	if !errors.Is(err, engine.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestBuildDaySeriesSingleDayRange(t *testing.T) {
	t.Parallel()
	days, err := engine.BuildDaySeries(engine.Logs{}, 70, date(2026, 6, 10), date(2026, 6, 10))
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected single-day series, got %d days", len(days))
	}
}
