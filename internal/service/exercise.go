package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"nutritrack/internal/model"
)

// ExerciseEstimator estimates calories burned for an exercise session. The
// Gemini provider client satisfies this; tests use stubs.
type ExerciseEstimator interface {
	EstimateExerciseCalories(ctx context.Context, weightKg float64, durationMin int, exerciseType, description string) (int, error)
}

type AddExerciseInput struct {
	Type           model.ExerciseType
	Description    string
	DurationMin    int
	CaloriesBurned int
	Date           time.Time
}

// AddExercise records an exercise session. When no calories figure is supplied
// and an estimator is available, the estimate fills it in; a failed estimate
// falls back to 0 rather than rejecting the log.
func AddExercise(ctx context.Context, sqldb *sql.DB, estimator ExerciseEstimator, in AddExerciseInput) (int64, error) {
	if !model.ValidExerciseType(in.Type) {
		return 0, fmt.Errorf("invalid exercise type %q (use Cardio, Strength, Yoga or Other)", in.Type)
	}
	if err := validateNonNegativeInt("duration", in.DurationMin); err != nil {
		return 0, err
	}
	if err := validateNonNegativeInt("calories burned", in.CaloriesBurned); err != nil {
		return 0, err
	}
	if in.Date.IsZero() {
		return 0, fmt.Errorf("exercise log date is required")
	}

	if in.CaloriesBurned == 0 && estimator != nil {
		weightKg := 0.0
		if p, err := GetProfile(sqldb); err == nil {
			weightKg = p.WeightKg
		}
		estimated, err := estimator.EstimateExerciseCalories(ctx, weightKg, in.DurationMin, string(in.Type), in.Description)
		if err == nil && estimated > 0 {
			in.CaloriesBurned = estimated
		}
	}

	res, err := sqldb.Exec(`
INSERT INTO exercise_logs(exercise_type, description, duration_minutes, calories_burned, logged_on)
VALUES(?, ?, ?, ?, ?)
`, in.Type, strings.TrimSpace(in.Description), in.DurationMin, in.CaloriesBurned, formatDay(in.Date))
	if err != nil {
		return 0, fmt.Errorf("add exercise log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve exercise log id: %w", err)
	}
	return id, nil
}

func ListExercise(sqldb *sql.DB, f LogFilter) ([]model.ExerciseLog, error) {
	query := `SELECT id, exercise_type, description, duration_minutes, calories_burned, logged_on FROM exercise_logs WHERE 1=1`
	args, err := appendDayFilters(&query, f)
	if err != nil {
		return nil, err
	}
	query += ` ORDER BY logged_on DESC, id DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := sqldb.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.ExerciseLog, 0)
	for rows.Next() {
		var l model.ExerciseLog
		var day string
		if err := rows.Scan(&l.ID, &l.Type, &l.Description, &l.DurationMin, &l.CaloriesBurned, &day); err != nil {
			return nil, fmt.Errorf("scan exercise log: %w", err)
		}
		if l.Date, err = parseDay(day); err != nil {
			return nil, fmt.Errorf("parse exercise log date: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise logs: %w", err)
	}
	return items, nil
}

func DeleteExercise(sqldb *sql.DB, id int64) error {
	return deleteLog(sqldb, "exercise_logs", "exercise log", id)
}
