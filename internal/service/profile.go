package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nutritrack/internal/engine"
	"nutritrack/internal/model"
)

// ErrProfileNotFound is returned when analytics are requested before a profile
// has been saved. BMI, adherence, and insights all depend on profile fields, so
// callers must surface this rather than fall back to defaults.
var ErrProfileNotFound = errors.New("profile not found")

type SaveProfileInput struct {
	Gender           model.Gender
	Age              int
	HeightCm         float64
	WeightKg         float64
	ActivityLevel    float64
	Goal             model.Goal
	RemindersEnabled bool
}

// SaveProfile upserts the single-user profile and recomputes TDEE and the
// daily calorie target from the saved fields on every write.
func SaveProfile(sqldb *sql.DB, in SaveProfileInput) (model.Profile, error) {
	if !model.ValidGender(in.Gender) {
		return model.Profile{}, fmt.Errorf("invalid gender %q (use Male or Female)", in.Gender)
	}
	if in.Age <= 0 {
		return model.Profile{}, fmt.Errorf("age must be > 0")
	}
	if in.HeightCm <= 0 {
		return model.Profile{}, fmt.Errorf("height must be > 0")
	}
	if in.WeightKg <= 0 {
		return model.Profile{}, fmt.Errorf("weight must be > 0")
	}
	if !model.ValidActivityLevel(in.ActivityLevel) {
		return model.Profile{}, fmt.Errorf("invalid activity level %v (use 1.2, 1.375, 1.55, 1.725 or 1.9)", in.ActivityLevel)
	}
	if !model.ValidGoal(in.Goal) {
		return model.Profile{}, fmt.Errorf("invalid goal %q (use Lose, Maintain or Gain)", in.Goal)
	}

	p := model.Profile{
		Gender:           in.Gender,
		Age:              in.Age,
		HeightCm:         in.HeightCm,
		WeightKg:         in.WeightKg,
		ActivityLevel:    in.ActivityLevel,
		Goal:             in.Goal,
		RemindersEnabled: in.RemindersEnabled,
	}
	p.TDEE, p.DailyCalorieTarget = engine.CalorieTarget(p)

	reminders := 0
	if p.RemindersEnabled {
		reminders = 1
	}
	_, err := sqldb.Exec(`
INSERT INTO profile(id, gender, age, height_cm, weight_kg, activity_level, goal, tdee, daily_calorie_target, reminders_enabled, updated_at)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  gender=excluded.gender,
  age=excluded.age,
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  activity_level=excluded.activity_level,
  goal=excluded.goal,
  tdee=excluded.tdee,
  daily_calorie_target=excluded.daily_calorie_target,
  reminders_enabled=excluded.reminders_enabled,
  updated_at=CURRENT_TIMESTAMP
`, p.Gender, p.Age, p.HeightCm, p.WeightKg, p.ActivityLevel, p.Goal, p.TDEE, p.DailyCalorieTarget, reminders)
	if err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func GetProfile(sqldb *sql.DB) (model.Profile, error) {
	var p model.Profile
	var reminders int
	var updatedAtRaw string
	err := sqldb.QueryRow(`
SELECT gender, age, height_cm, weight_kg, activity_level, goal, tdee, daily_calorie_target, reminders_enabled, updated_at
FROM profile
WHERE id = 1
`).Scan(&p.Gender, &p.Age, &p.HeightCm, &p.WeightKg, &p.ActivityLevel, &p.Goal, &p.TDEE, &p.DailyCalorieTarget, &reminders, &updatedAtRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	p.RemindersEnabled = reminders != 0
	if parsed, err := time.Parse("2006-01-02 15:04:05", updatedAtRaw); err == nil {
		p.UpdatedAt = parsed
	}
	return p, nil
}

// syncProfileWeight mirrors a new weight log into the profile so BMI and TDEE
// inputs track the latest measurement. Missing profile is not an error here:
// weight can be logged before onboarding completes.
func syncProfileWeight(sqldb *sql.DB, weightKg float64) error {
	_, err := sqldb.Exec(`UPDATE profile SET weight_kg = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`, weightKg)
	if err != nil {
		return fmt.Errorf("sync profile weight: %w", err)
	}
	return nil
}
