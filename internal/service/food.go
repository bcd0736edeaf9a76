package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"nutritrack/internal/model"
)

// ErrLogNotFound is returned when a delete targets a log id that does not
// exist, across all log kinds.
var ErrLogNotFound = errors.New("log not found")

type AddFoodInput struct {
	Name     string
	Calories int
	Protein  float64
	Carbs    float64
	Fats     float64
	Meal     model.MealType
	Date     time.Time
}

type LogFilter struct {
	Date     string
	FromDate string
	ToDate   string
	Limit    int
}

func AddFood(sqldb *sql.DB, in AddFoodInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("protein", in.Protein); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("carbs", in.Carbs); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("fats", in.Fats); err != nil {
		return 0, err
	}
	if !model.ValidMealType(in.Meal) {
		return 0, fmt.Errorf("invalid meal type %q (use Breakfast, Lunch, Dinner or Snack)", in.Meal)
	}
	if in.Date.IsZero() {
		return 0, fmt.Errorf("food log date is required")
	}

	res, err := sqldb.Exec(`
INSERT INTO food_logs(name, calories, protein_g, carbs_g, fats_g, meal_type, logged_on)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, in.Name, in.Calories, in.Protein, in.Carbs, in.Fats, in.Meal, formatDay(in.Date))
	if err != nil {
		return 0, fmt.Errorf("add food log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food log id: %w", err)
	}
	return id, nil
}

func ListFood(sqldb *sql.DB, f LogFilter) ([]model.FoodLog, error) {
	query := `SELECT id, name, calories, protein_g, carbs_g, fats_g, meal_type, logged_on FROM food_logs WHERE 1=1`
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
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.FoodLog, 0)
	for rows.Next() {
		var l model.FoodLog
		var day string
		if err := rows.Scan(&l.ID, &l.Name, &l.Calories, &l.Protein, &l.Carbs, &l.Fats, &l.Meal, &day); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		if l.Date, err = parseDay(day); err != nil {
			return nil, fmt.Errorf("parse food log date: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food logs: %w", err)
	}
	return items, nil
}

func DeleteFood(sqldb *sql.DB, id int64) error {
	return deleteLog(sqldb, "food_logs", "food log", id)
}

// FoodLogDates returns the distinct dates carrying at least one food log,
// newest first. This feeds the streak calculation.
func FoodLogDates(sqldb *sql.DB) ([]time.Time, error) {
	rows, err := sqldb.Query(`SELECT DISTINCT logged_on FROM food_logs ORDER BY logged_on DESC`)
	if err != nil {
		return nil, fmt.Errorf("list food log dates: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan food log date: %w", err)
		}
		parsed, err := parseDay(day)
		if err != nil {
			return nil, fmt.Errorf("parse food log date: %w", err)
		}
		dates = append(dates, parsed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food log dates: %w", err)
	}
	return dates, nil
}

func appendDayFilters(query *string, f LogFilter) ([]any, error) {
	if strings.TrimSpace(f.Date) != "" && (strings.TrimSpace(f.FromDate) != "" || strings.TrimSpace(f.ToDate) != "") {
		return nil, fmt.Errorf("date cannot be combined with a from/to range")
	}
	args := make([]any, 0)
	if strings.TrimSpace(f.Date) != "" {
		day, err := parseDay(f.Date)
		if err != nil {
			return nil, err
		}
		*query += ` AND logged_on = ?`
		args = append(args, formatDay(day))
	}
	if strings.TrimSpace(f.FromDate) != "" {
		from, err := parseDay(f.FromDate)
		if err != nil {
			return nil, err
		}
		*query += ` AND logged_on >= ?`
		args = append(args, formatDay(from))
	}
	if strings.TrimSpace(f.ToDate) != "" {
		to, err := parseDay(f.ToDate)
		if err != nil {
			return nil, err
		}
		*query += ` AND logged_on <= ?`
		args = append(args, formatDay(to))
	}
	return args, nil
}

func deleteLog(sqldb *sql.DB, table, label string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be > 0", label)
	}
	res, err := sqldb.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", label, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %d", ErrLogNotFound, label, id)
	}
	return nil
}
