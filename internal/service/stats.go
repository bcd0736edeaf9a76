package service

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"nutritrack/internal/engine"
	"nutritrack/internal/model"
)

// WaterGoalML is the fixed daily hydration goal.
const WaterGoalML = 1750

// DashboardView is the at-a-glance state for a single day.
type DashboardView struct {
	Date              string              `json:"date"`
	CaloriesConsumed  int                 `json:"calories_consumed"`
	CalorieTarget     float64             `json:"calorie_target"`
	CaloriesRemaining float64             `json:"calories_remaining"`
	Protein           float64             `json:"protein_g"`
	Carbs             float64             `json:"carbs_g"`
	Fats              float64             `json:"fats_g"`
	WaterML           int                 `json:"water_ml"`
	ExerciseCalories  int                 `json:"exercise_calories"`
	Foods             []model.FoodLog     `json:"foods"`
	Water             []model.WaterLog    `json:"water"`
	Exercises         []model.ExerciseLog `json:"exercises"`
}

// DashboardSummary folds today's logs into totals against the profile target.
func DashboardSummary(sqldb *sql.DB, today time.Time) (*DashboardView, error) {
	p, err := GetProfile(sqldb)
	if err != nil {
		return nil, err
	}
	logs, err := loadLogs(sqldb, today, today)
	if err != nil {
		return nil, err
	}

	day := engine.DayTotals(logs, today, p.WeightKg)
	return &DashboardView{
		Date:              formatDay(today),
		CaloriesConsumed:  day.Calories,
		CalorieTarget:     p.DailyCalorieTarget,
		CaloriesRemaining: p.DailyCalorieTarget - float64(day.Calories),
		Protein:           day.Protein,
		Carbs:             day.Carbs,
		Fats:              day.Fats,
		WaterML:           day.WaterML,
		ExerciseCalories:  day.ExerciseCalories,
		Foods:             logs.Food,
		Water:             logs.Water,
		Exercises:         logs.Exercise,
	}, nil
}

// WeeklyDay is one entry in the 7-day stats view.
type WeeklyDay struct {
	Date             string  `json:"date"`
	DayName          string  `json:"day_name"`
	Calories         int     `json:"calories"`
	Protein          float64 `json:"protein_g"`
	Carbs            float64 `json:"carbs_g"`
	Fats             float64 `json:"fats_g"`
	WaterML          int     `json:"water_ml"`
	ExerciseCalories int     `json:"exercise_calories"`
}

type WeeklyView struct {
	Days          []WeeklyDay `json:"days"`
	Streak        int         `json:"streak"`
	CalorieTarget float64     `json:"calorie_target"`
}

// WeeklyStats covers the last 7 days ending today, oldest first, plus the
// current logging streak.
func WeeklyStats(sqldb *sql.DB, today time.Time) (*WeeklyView, error) {
	p, err := GetProfile(sqldb)
	if err != nil {
		return nil, err
	}
	start := today.AddDate(0, 0, -6)
	logs, err := loadLogs(sqldb, start, today)
	if err != nil {
		return nil, err
	}

	days, err := engine.BuildDaySeries(logs, p.WeightKg, start, today)
	if err != nil {
		return nil, err
	}

	view := &WeeklyView{
		Days:          make([]WeeklyDay, 0, len(days)),
		CalorieTarget: p.DailyCalorieTarget,
	}
	for _, d := range days {
		view.Days = append(view.Days, WeeklyDay{
			Date:             formatDay(d.Date),
			DayName:          d.Date.Weekday().String(),
			Calories:         d.Calories,
			Protein:          d.Protein,
			Carbs:            d.Carbs,
			Fats:             d.Fats,
			WaterML:          d.WaterML,
			ExerciseCalories: d.ExerciseCalories,
		})
	}

	dates, err := FoodLogDates(sqldb)
	if err != nil {
		return nil, err
	}
	view.Streak = engine.CurrentStreak(dates, today)
	return view, nil
}

// MonthlyView is the month-to-date report: the profile echo, the engine
// signals, and the day series from the 1st through today.
type MonthlyView struct {
	Month         string              `json:"month"`
	Profile       model.Profile       `json:"profile"`
	BMI           engine.BMI          `json:"bmi"`
	Days          []engine.DaySummary `json:"days"`
	Signals       engine.Signals      `json:"signals"`
	CalorieTarget float64             `json:"calorie_target"`
}

// MonthlyStats evaluates the full analytics pipeline over the current month,
// from the 1st through today.
func MonthlyStats(sqldb *sql.DB, today time.Time) (*MonthlyView, error) {
	p, err := GetProfile(sqldb)
	if err != nil {
		return nil, err
	}
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	logs, err := loadLogs(sqldb, start, today)
	if err != nil {
		return nil, err
	}

	report, err := engine.Evaluate(p, logs, start, today, today)
	if err != nil {
		return nil, fmt.Errorf("evaluate month: %w", err)
	}

	// The evaluation window starts at the 1st, but a streak may run back into
	// the previous month, so it is counted over the full logging history.
	dates, err := FoodLogDates(sqldb)
	if err != nil {
		return nil, err
	}
	report.Signals.Streak = engine.CurrentStreak(dates, today)

	return &MonthlyView{
		Month:         today.Format("January 2006"),
		Profile:       p,
		BMI:           report.Signals.BMI,
		Days:          report.Days,
		Signals:       report.Signals,
		CalorieTarget: p.DailyCalorieTarget,
	}, nil
}

// WaterDay is one bar in the 7-day hydration chart.
type WaterDay struct {
	Date    string `json:"date"`
	DayName string `json:"day_name"`
	ML      int    `json:"ml"`
}

type WaterView struct {
	GoalML      int        `json:"goal_ml"`
	TodayML     int        `json:"today_ml"`
	RemainingML int        `json:"remaining_ml"`
	Week        []WaterDay `json:"week"`
}

// WaterIntake reports today's hydration against the fixed goal plus a 7-day
// chart. Remaining never goes negative.
func WaterIntake(sqldb *sql.DB, today time.Time) (*WaterView, error) {
	start := today.AddDate(0, 0, -6)
	water, err := ListWater(sqldb, LogFilter{FromDate: formatDay(start), ToDate: formatDay(today)})
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int)
	for _, w := range water {
		byDay[formatDay(w.Date)] += w.AmountML
	}

	view := &WaterView{GoalML: WaterGoalML, Week: make([]WaterDay, 0, 7)}
	for d := dateOnly(start); !d.After(dateOnly(today)); d = d.AddDate(0, 0, 1) {
		view.Week = append(view.Week, WaterDay{
			Date:    formatDay(d),
			DayName: d.Weekday().String(),
			ML:      byDay[formatDay(d)],
		})
	}
	view.TodayML = byDay[formatDay(today)]
	view.RemainingML = WaterGoalML - view.TodayML
	if view.RemainingML < 0 {
		view.RemainingML = 0
	}
	return view, nil
}

type WeightView struct {
	CurrentKg float64           `json:"current_kg"`
	StartKg   float64           `json:"start_kg"`
	ChangeKg  float64           `json:"change_kg"`
	Plateau   bool              `json:"plateau"`
	Logs      []model.WeightLog `json:"logs"`
}

// WeightTracker returns the whole weight history plus trend figures. An empty
// history yields a zeroed view rather than an error.
func WeightTracker(sqldb *sql.DB) (*WeightView, error) {
	logs, err := ListWeight(sqldb, LogFilter{})
	if err != nil {
		return nil, err
	}
	view := &WeightView{Logs: logs}
	if len(logs) == 0 {
		return view, nil
	}
	view.StartKg = logs[0].WeightKg
	view.CurrentKg = logs[len(logs)-1].WeightKg
	view.ChangeKg = math.Round((view.CurrentKg-view.StartKg)*10) / 10
	view.Plateau = engine.DetectPlateau(logs)
	return view, nil
}

// loadLogs assembles the engine's input window from storage.
func loadLogs(sqldb *sql.DB, start, end time.Time) (engine.Logs, error) {
	f := LogFilter{FromDate: formatDay(start), ToDate: formatDay(end)}

	var logs engine.Logs
	var err error
	if logs.Food, err = ListFood(sqldb, f); err != nil {
		return engine.Logs{}, err
	}
	if logs.Water, err = ListWater(sqldb, f); err != nil {
		return engine.Logs{}, err
	}
	// Weight history is loaded in full so carry-forward can seed from
	// measurements before the window.
	if logs.Weight, err = ListWeight(sqldb, LogFilter{}); err != nil {
		return engine.Logs{}, err
	}
	if logs.Exercise, err = ListExercise(sqldb, f); err != nil {
		return engine.Logs{}, err
	}
	if logs.Sleep, err = ListSleep(sqldb, f); err != nil {
		return engine.Logs{}, err
	}
	return logs, nil
}
