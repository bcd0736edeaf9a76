package service

import (
	"database/sql"
	"fmt"
	"time"

	"nutritrack/internal/model"
)

type AddWaterInput struct {
	AmountML int
	Date     time.Time
}

func AddWater(sqldb *sql.DB, in AddWaterInput) (int64, error) {
	if err := validateNonNegativeInt("amount", in.AmountML); err != nil {
		return 0, err
	}
	if in.Date.IsZero() {
		return 0, fmt.Errorf("water log date is required")
	}

	res, err := sqldb.Exec(`
INSERT INTO water_logs(amount_ml, logged_on)
VALUES(?, ?)
`, in.AmountML, formatDay(in.Date))
	if err != nil {
		return 0, fmt.Errorf("add water log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve water log id: %w", err)
	}
	return id, nil
}

func ListWater(sqldb *sql.DB, f LogFilter) ([]model.WaterLog, error) {
	query := `SELECT id, amount_ml, logged_on FROM water_logs WHERE 1=1`
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
		return nil, fmt.Errorf("list water logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.WaterLog, 0)
	for rows.Next() {
		var l model.WaterLog
		var day string
		if err := rows.Scan(&l.ID, &l.AmountML, &day); err != nil {
			return nil, fmt.Errorf("scan water log: %w", err)
		}
		if l.Date, err = parseDay(day); err != nil {
			return nil, fmt.Errorf("parse water log date: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate water logs: %w", err)
	}
	return items, nil
}

func DeleteWater(sqldb *sql.DB, id int64) error {
	return deleteLog(sqldb, "water_logs", "water log", id)
}
