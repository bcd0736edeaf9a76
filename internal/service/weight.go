package service

import (
	"database/sql"
	"fmt"
	"time"

	"nutritrack/internal/model"
)

type AddWeightInput struct {
	WeightKg float64
	Date     time.Time
}

// AddWeight records a weight measurement and mirrors it into the profile's
// current weight.
func AddWeight(sqldb *sql.DB, in AddWeightInput) (int64, error) {
	if in.WeightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	if in.Date.IsZero() {
		return 0, fmt.Errorf("weight log date is required")
	}

	res, err := sqldb.Exec(`
INSERT INTO weight_logs(weight_kg, logged_on)
VALUES(?, ?)
`, in.WeightKg, formatDay(in.Date))
	if err != nil {
		return 0, fmt.Errorf("add weight log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve weight log id: %w", err)
	}
	if err := syncProfileWeight(sqldb, in.WeightKg); err != nil {
		return 0, err
	}
	return id, nil
}

func ListWeight(sqldb *sql.DB, f LogFilter) ([]model.WeightLog, error) {
	query := `SELECT id, weight_kg, logged_on FROM weight_logs WHERE 1=1`
	args, err := appendDayFilters(&query, f)
	if err != nil {
		return nil, err
	}
	query += ` ORDER BY logged_on ASC, id ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := sqldb.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weight logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.WeightLog, 0)
	for rows.Next() {
		var l model.WeightLog
		var day string
		if err := rows.Scan(&l.ID, &l.WeightKg, &day); err != nil {
			return nil, fmt.Errorf("scan weight log: %w", err)
		}
		if l.Date, err = parseDay(day); err != nil {
			return nil, fmt.Errorf("parse weight log date: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight logs: %w", err)
	}
	return items, nil
}

func DeleteWeight(sqldb *sql.DB, id int64) error {
	return deleteLog(sqldb, "weight_logs", "weight log", id)
}
