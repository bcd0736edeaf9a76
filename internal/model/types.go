package model

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Goal string

const (
	GoalLose     Goal = "Lose"
	GoalMaintain Goal = "Maintain"
	GoalGain     Goal = "Gain"
)

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

type ExerciseType string

const (
	ExerciseCardio   ExerciseType = "Cardio"
	ExerciseStrength ExerciseType = "Strength"
	ExerciseYoga     ExerciseType = "Yoga"
	ExerciseOther    ExerciseType = "Other"
)

// ActivityLevels are the allowed TDEE multipliers, sedentary through super active.
var ActivityLevels = []float64{1.2, 1.375, 1.55, 1.725, 1.9}

type Profile struct {
	Gender             Gender    `json:"gender"`
	Age                int       `json:"age"`
	HeightCm           float64   `json:"height_cm"`
	WeightKg           float64   `json:"weight_kg"`
	ActivityLevel      float64   `json:"activity_level"`
	Goal               Goal      `json:"goal"`
	TDEE               float64   `json:"tdee"`
	DailyCalorieTarget float64   `json:"daily_calorie_target"`
	RemindersEnabled   bool      `json:"reminders_enabled"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type FoodLog struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein_g"`
	Carbs    float64   `json:"carbs_g"`
	Fats     float64   `json:"fats_g"`
	Meal     MealType  `json:"meal_type"`
	Date     time.Time `json:"date"`
}

type WaterLog struct {
	ID       int64     `json:"id"`
	AmountML int       `json:"amount_ml"`
	Date     time.Time `json:"date"`
}

type WeightLog struct {
	ID       int64     `json:"id"`
	WeightKg float64   `json:"weight_kg"`
	Date     time.Time `json:"date"`
}

type ExerciseLog struct {
	ID             int64        `json:"id"`
	Type           ExerciseType `json:"exercise_type"`
	Description    string       `json:"description"`
	DurationMin    int          `json:"duration_minutes"`
	CaloriesBurned int          `json:"calories_burned"`
	Date           time.Time    `json:"date"`
}

type SleepLog struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Bedtime       string    `json:"bedtime"`
	WakeTime      string    `json:"wake_time"`
	DurationMin   int       `json:"duration_minutes"`
	QualityScore  int       `json:"quality_score"`
	DeepSleepMin  int       `json:"deep_sleep_minutes"`
	LightSleepMin int       `json:"light_sleep_minutes"`
	RemSleepMin   int       `json:"rem_sleep_minutes"`
	AwakeMin      int       `json:"awake_minutes"`
}

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

func ValidGoal(g Goal) bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

func ValidExerciseType(e ExerciseType) bool {
	switch e {
	case ExerciseCardio, ExerciseStrength, ExerciseYoga, ExerciseOther:
		return true
	}
	return false
}

func ValidActivityLevel(v float64) bool {
	for _, level := range ActivityLevels {
		if v == level {
			return true
		}
	}
	return false
}
