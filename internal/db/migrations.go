package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  gender TEXT NOT NULL CHECK(gender IN ('Male', 'Female')),
  age INTEGER NOT NULL CHECK(age > 0),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  activity_level REAL NOT NULL,
  goal TEXT NOT NULL CHECK(goal IN ('Lose', 'Maintain', 'Gain')),
  tdee REAL NOT NULL DEFAULT 0,
  daily_calorie_target REAL NOT NULL DEFAULT 0,
  reminders_enabled INTEGER NOT NULL DEFAULT 0,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS food_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fats_g REAL NOT NULL CHECK(fats_g >= 0),
  meal_type TEXT NOT NULL CHECK(meal_type IN ('Breakfast', 'Lunch', 'Dinner', 'Snack')),
  logged_on TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_food_logs_logged_on ON food_logs(logged_on);

CREATE TABLE IF NOT EXISTS water_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  amount_ml INTEGER NOT NULL CHECK(amount_ml >= 0),
  logged_on TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_water_logs_logged_on ON water_logs(logged_on);

CREATE TABLE IF NOT EXISTS weight_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  logged_on TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_weight_logs_logged_on ON weight_logs(logged_on);

CREATE TABLE IF NOT EXISTS exercise_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  exercise_type TEXT NOT NULL CHECK(exercise_type IN ('Cardio', 'Strength', 'Yoga', 'Other')),
  description TEXT NOT NULL DEFAULT '',
  duration_minutes INTEGER NOT NULL CHECK(duration_minutes >= 0),
  calories_burned INTEGER NOT NULL CHECK(calories_burned >= 0),
  logged_on TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_exercise_logs_logged_on ON exercise_logs(logged_on);
`,
	},
	{
		version: 2,
		name:    "sleep_logs",
		sql: `
CREATE TABLE IF NOT EXISTS sleep_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  logged_on TEXT NOT NULL,
  bedtime TEXT NOT NULL,
  wake_time TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL CHECK(duration_minutes >= 0),
  quality_score INTEGER NOT NULL DEFAULT 0 CHECK(quality_score >= 0 AND quality_score <= 100),
  deep_sleep_minutes INTEGER NOT NULL DEFAULT 0 CHECK(deep_sleep_minutes >= 0),
  light_sleep_minutes INTEGER NOT NULL DEFAULT 0 CHECK(light_sleep_minutes >= 0),
  rem_sleep_minutes INTEGER NOT NULL DEFAULT 0 CHECK(rem_sleep_minutes >= 0),
  awake_minutes INTEGER NOT NULL DEFAULT 0 CHECK(awake_minutes >= 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sleep_logs_logged_on ON sleep_logs(logged_on);
`,
	},
}

func ApplyMigrations(sqldb *sql.DB) error {
	if _, err := sqldb.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := sqldb.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := sqldb.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
