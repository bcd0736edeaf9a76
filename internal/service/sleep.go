package service

import (
	"database/sql"
	"fmt"
	"time"

	"nutritrack/internal/model"
)

type AddSleepInput struct {
	Date          time.Time
	Bedtime       string
	WakeTime      string
	DurationMin   int
	QualityScore  int
	DeepSleepMin  int
	LightSleepMin int
	RemSleepMin   int
	AwakeMin      int
}

func AddSleep(sqldb *sql.DB, in AddSleepInput) (int64, error) {
	if in.Date.IsZero() {
		return 0, fmt.Errorf("sleep log date is required")
	}
	for _, t := range []string{in.Bedtime, in.WakeTime} {
		if _, err := time.Parse("15:04", t); err != nil {
			return 0, fmt.Errorf("invalid time %q (expected HH:MM)", t)
		}
	}
	if err := validateNonNegativeInt("duration", in.DurationMin); err != nil {
		return 0, err
	}
	if in.QualityScore < 0 || in.QualityScore > 100 {
		return 0, fmt.Errorf("quality score must be between 0 and 100")
	}
	for name, v := range map[string]int{
		"deep sleep":  in.DeepSleepMin,
		"light sleep": in.LightSleepMin,
		"rem sleep":   in.RemSleepMin,
		"awake":       in.AwakeMin,
	} {
		if err := validateNonNegativeInt(name+" minutes", v); err != nil {
			return 0, err
		}
	}

	res, err := sqldb.Exec(`
INSERT INTO sleep_logs(logged_on, bedtime, wake_time, duration_minutes, quality_score, deep_sleep_minutes, light_sleep_minutes, rem_sleep_minutes, awake_minutes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, formatDay(in.Date), in.Bedtime, in.WakeTime, in.DurationMin, in.QualityScore, in.DeepSleepMin, in.LightSleepMin, in.RemSleepMin, in.AwakeMin)
	if err != nil {
		return 0, fmt.Errorf("add sleep log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve sleep log id: %w", err)
	}
	return id, nil
}

func ListSleep(sqldb *sql.DB, f LogFilter) ([]model.SleepLog, error) {
	query := `SELECT id, logged_on, bedtime, wake_time, duration_minutes, quality_score, deep_sleep_minutes, light_sleep_minutes, rem_sleep_minutes, awake_minutes FROM sleep_logs WHERE 1=1`
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
		return nil, fmt.Errorf("list sleep logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.SleepLog, 0)
	for rows.Next() {
		var l model.SleepLog
		var day string
		if err := rows.Scan(&l.ID, &day, &l.Bedtime, &l.WakeTime, &l.DurationMin, &l.QualityScore, &l.DeepSleepMin, &l.LightSleepMin, &l.RemSleepMin, &l.AwakeMin); err != nil {
			return nil, fmt.Errorf("scan sleep log: %w", err)
		}
		if l.Date, err = parseDay(day); err != nil {
			return nil, fmt.Errorf("parse sleep log date: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sleep logs: %w", err)
	}
	return items, nil
}

// SleepHistory returns the last 30 days of sleep logs, newest first.
func SleepHistory(sqldb *sql.DB, today time.Time) ([]model.SleepLog, error) {
	return ListSleep(sqldb, LogFilter{
		FromDate: formatDay(today.AddDate(0, 0, -30)),
		ToDate:   formatDay(today),
	})
}

func DeleteSleep(sqldb *sql.DB, id int64) error {
	return deleteLog(sqldb, "sleep_logs", "sleep log", id)
}
