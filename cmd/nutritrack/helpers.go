package nutritrack

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"nutritrack/internal/app"
	"nutritrack/internal/db"
	"nutritrack/internal/provider/gemini"
	"nutritrack/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	if env := strings.TrimSpace(os.Getenv("NUTRITRACK_DB_PATH")); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseDayOrToday(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

// geminiEstimator builds the AI client from the environment, or returns nil
// when no key is configured so callers degrade gracefully.
func geminiEstimator() *gemini.Client {
	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" {
		return nil
	}
	return &gemini.Client{
		APIKey:  key,
		Model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
}

func exerciseEstimator() service.ExerciseEstimator {
	if c := geminiEstimator(); c != nil {
		return c
	}
	return nil
}
