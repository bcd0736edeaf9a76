package service_test

import (
	"errors"
	"testing"

	"nutritrack/internal/model"
	"nutritrack/internal/service"
)

func TestDashboardSummary(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	saveTestProfile(t, sqldb)
	today := day(t, "2026-03-10")

	if _, err := service.AddFood(sqldb, service.AddFoodInput{
		Name: "Lunch bowl", Calories: 600, Protein: 35, Carbs: 60, Fats: 18,
		Meal: model.MealLunch, Date: today,
	}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := service.AddWater(sqldb, service.AddWaterInput{AmountML: 500, Date: today}); err != nil {
		t.Fatalf("add water: %v", err)
	}
	// Yesterday's log must not leak into today's totals.
	if _, err := service.AddFood(sqldb, service.AddFoodInput{
		Name: "Old dinner", Calories: 900, Meal: model.MealDinner, Date: day(t, "2026-03-09"),
	}); err != nil {
		t.Fatalf("add food: %v", err)
	}

	view, err := service.DashboardSummary(sqldb, today)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if view.CaloriesConsumed != 600 {
		t.Fatalf("consumed = %d, want 600", view.CaloriesConsumed)
	}
	if view.CalorieTarget != 2259.0 {
		t.Fatalf("target = %v, want 2259.0", view.CalorieTarget)
	}
	if view.CaloriesRemaining != 1659.0 {
		t.Fatalf("remaining = %v, want 1659.0", view.CaloriesRemaining)
	}
	if view.WaterML != 500 {
		t.Fatalf("water = %d, want 500", view.WaterML)
	}
	if len(view.Foods) != 1 || view.Foods[0].Name != "Lunch bowl" {
		t.Fatalf("unexpected foods: %+v", view.Foods)
	}
}

func TestDashboardSummaryRequiresProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.DashboardSummary(sqldb, day(t, "2026-03-10")); !errors.Is(err, service.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestWeeklyStats(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	saveTestProfile(t, sqldb)
	today := day(t, "2026-03-10")

	for _, d := range []string{"2026-03-08", "2026-03-09", "2026-03-10"} {
		if _, err := service.AddFood(sqldb, service.AddFoodInput{
			Name: "Meal", Calories: 2000, Meal: model.MealDinner, Date: day(t, d),
		}); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}

	view, err := service.WeeklyStats(sqldb, today)
	if err != nil {
		t.Fatalf("weekly stats: %v", err)
	}
	if len(view.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(view.Days))
	}
	if view.Days[0].Date != "2026-03-04" || view.Days[6].Date != "2026-03-10" {
		t.Fatalf("unexpected window: %s .. %s", view.Days[0].Date, view.Days[6].Date)
	}
	if view.Days[6].DayName != "Tuesday" {
		t.Fatalf("day name = %q, want Tuesday", view.Days[6].DayName)
	}
	if view.Days[6].Calories != 2000 || view.Days[0].Calories != 0 {
		t.Fatalf("unexpected calories: first=%d last=%d", view.Days[0].Calories, view.Days[6].Calories)
	}
	if view.Streak != 3 {
		t.Fatalf("streak = %d, want 3", view.Streak)
	}
}

func TestMonthlyStats(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	saveTestProfile(t, sqldb)
	today := day(t, "2026-03-10")

	// Three logged days: two inside the ±10% band around 2259, one far above.
	for _, rec := range []struct {
		day string
		cal int
	}{
		{"2026-03-08", 2259},
		{"2026-03-09", 3000},
		{"2026-03-10", 2259},
	} {
		if _, err := service.AddFood(sqldb, service.AddFoodInput{
			Name: "Meal", Calories: rec.cal, Meal: model.MealDinner, Date: day(t, rec.day),
		}); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}
	if _, err := service.AddWeight(sqldb, service.AddWeightInput{WeightKg: 81.0, Date: day(t, "2026-03-01")}); err != nil {
		t.Fatalf("add weight: %v", err)
	}
	if _, err := service.AddWeight(sqldb, service.AddWeightInput{WeightKg: 80.2, Date: day(t, "2026-03-09")}); err != nil {
		t.Fatalf("add weight: %v", err)
	}

	view, err := service.MonthlyStats(sqldb, today)
	if err != nil {
		t.Fatalf("monthly stats: %v", err)
	}
	if view.Month != "March 2026" {
		t.Fatalf("month = %q, want March 2026", view.Month)
	}
	if len(view.Days) != 10 {
		t.Fatalf("days = %d, want 10 (1st through the 10th)", len(view.Days))
	}
	if view.Signals.Streak != 3 {
		t.Fatalf("streak = %d, want 3", view.Signals.Streak)
	}
	if view.Signals.Adherence.MetDays != 2 || view.Signals.Adherence.LoggedDays != 3 {
		t.Fatalf("adherence = %+v, want 2/3", view.Signals.Adherence)
	}
	if view.Signals.Adherence.Percentage != 66.7 {
		t.Fatalf("adherence pct = %v, want 66.7", view.Signals.Adherence.Percentage)
	}
	if view.Signals.WeightChange != -0.8 {
		t.Fatalf("weight change = %v, want -0.8", view.Signals.WeightChange)
	}
	if view.Signals.Plateau {
		t.Fatal("plateau should be false with two samples")
	}
	if view.BMI.Category != "Normal" {
		t.Fatalf("bmi category = %q, want Normal", view.BMI.Category)
	}
	if len(view.Signals.Insights) != 2 {
		t.Fatalf("insights = %v, want adherence tier plus weight trend", view.Signals.Insights)
	}
}

func TestMonthlyStatsStreakCrossesMonthBoundary(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	saveTestProfile(t, sqldb)
	today := day(t, "2026-08-02")

	// Nine consecutive logged days straddling July/August.
	for d := day(t, "2026-07-25"); !d.After(today); d = d.AddDate(0, 0, 1) {
		if _, err := service.AddFood(sqldb, service.AddFoodInput{
			Name: "Meal", Calories: 2259, Meal: model.MealDinner, Date: d,
		}); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}

	monthly, err := service.MonthlyStats(sqldb, today)
	if err != nil {
		t.Fatalf("monthly stats: %v", err)
	}
	if monthly.Signals.Streak != 9 {
		t.Fatalf("monthly streak = %d, want 9 across the month boundary", monthly.Signals.Streak)
	}

	weekly, err := service.WeeklyStats(sqldb, today)
	if err != nil {
		t.Fatalf("weekly stats: %v", err)
	}
	if weekly.Streak != monthly.Signals.Streak {
		t.Fatalf("weekly streak %d != monthly streak %d", weekly.Streak, monthly.Signals.Streak)
	}
}

func TestMonthlyStatsRequiresProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.MonthlyStats(sqldb, day(t, "2026-03-10")); !errors.Is(err, service.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestWaterIntake(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	today := day(t, "2026-03-10")

	if _, err := service.AddWater(sqldb, service.AddWaterInput{AmountML: 1200, Date: today}); err != nil {
		t.Fatalf("add water: %v", err)
	}
	if _, err := service.AddWater(sqldb, service.AddWaterInput{AmountML: 500, Date: day(t, "2026-03-09")}); err != nil {
		t.Fatalf("add water: %v", err)
	}

	view, err := service.WaterIntake(sqldb, today)
	if err != nil {
		t.Fatalf("water intake: %v", err)
	}
	if view.GoalML != 1750 {
		t.Fatalf("goal = %d, want 1750", view.GoalML)
	}
	if view.TodayML != 1200 || view.RemainingML != 550 {
		t.Fatalf("today=%d remaining=%d, want 1200/550", view.TodayML, view.RemainingML)
	}
	if len(view.Week) != 7 {
		t.Fatalf("week = %d entries, want 7", len(view.Week))
	}
	if view.Week[5].ML != 500 || view.Week[6].ML != 1200 {
		t.Fatalf("unexpected week tail: %+v", view.Week[5:])
	}
}

func TestWaterIntakeRemainingClampsAtZero(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	today := day(t, "2026-03-10")

	if _, err := service.AddWater(sqldb, service.AddWaterInput{AmountML: 2400, Date: today}); err != nil {
		t.Fatalf("add water: %v", err)
	}

	view, err := service.WaterIntake(sqldb, today)
	if err != nil {
		t.Fatalf("water intake: %v", err)
	}
	if view.RemainingML != 0 {
		t.Fatalf("remaining = %d, want 0", view.RemainingML)
	}
}

func TestWeightTracker(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	for _, rec := range []struct {
		kg  float64
		day string
	}{
		{81.0, "2026-03-01"},
		{80.2, "2026-03-05"},
		{80.6, "2026-03-09"},
	} {
		if _, err := service.AddWeight(sqldb, service.AddWeightInput{WeightKg: rec.kg, Date: day(t, rec.day)}); err != nil {
			t.Fatalf("add weight: %v", err)
		}
	}

	view, err := service.WeightTracker(sqldb)
	if err != nil {
		t.Fatalf("weight tracker: %v", err)
	}
	if view.StartKg != 81.0 || view.CurrentKg != 80.6 {
		t.Fatalf("start=%v current=%v, want 81.0/80.6", view.StartKg, view.CurrentKg)
	}
	if view.ChangeKg != -0.4 {
		t.Fatalf("change = %v, want -0.4", view.ChangeKg)
	}
	if view.Plateau {
		t.Fatal("plateau should be false, spread exceeds threshold")
	}
}

func TestWeightTrackerEmptyHistory(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	view, err := service.WeightTracker(sqldb)
	if err != nil {
		t.Fatalf("weight tracker: %v", err)
	}
	if view.CurrentKg != 0 || view.StartKg != 0 || view.ChangeKg != 0 || view.Plateau {
		t.Fatalf("expected zeroed view, got %+v", view)
	}
	if len(view.Logs) != 0 {
		t.Fatalf("logs = %d, want 0", len(view.Logs))
	}
}
