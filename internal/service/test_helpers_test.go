package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"nutritrack/internal/db"
	"nutritrack/internal/model"
	"nutritrack/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutritrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func saveTestProfile(t *testing.T, sqldb *sql.DB) model.Profile {
	t.Helper()
	p, err := service.SaveProfile(sqldb, service.SaveProfileInput{
		Gender:        model.GenderMale,
		Age:           30,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: 1.55,
		Goal:          model.GoalLose,
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	return p
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}
