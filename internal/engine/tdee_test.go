package engine_test

import (
	"testing"

	"nutritrack/internal/engine"
	"nutritrack/internal/model"
)

func TestCalorieTargetMaleLose(t *testing.T) {
	t.Parallel()
	p := model.Profile{
		Gender:        model.GenderMale,
		Age:           30,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: 1.55,
		Goal:          model.GoalLose,
	}
	if bmr := engine.BMR(p); bmr != 1780 {
		t.Fatalf("expected bmr 1780, got %v", bmr)
	}
	tdee, target := engine.CalorieTarget(p)
	if tdee != 2759.0 {
		t.Fatalf("expected tdee 2759.0, got %v", tdee)
	}
	if target != 2259.0 {
		t.Fatalf("expected target 2259.0, got %v", target)
	}
}

func TestCalorieTargetFemaleGain(t *testing.T) {
	t.Parallel()
	p := model.Profile{
		Gender:        model.GenderFemale,
		Age:           25,
		HeightCm:      165,
		WeightKg:      55,
		ActivityLevel: 1.375,
		Goal:          model.GoalGain,
	}
	// bmr = 550 + 1031.25 - 125 - 161 = 1295.25
	if bmr := engine.BMR(p); bmr != 1295.25 {
		t.Fatalf("expected bmr 1295.25, got %v", bmr)
	}
	tdee, target := engine.CalorieTarget(p)
	if tdee != 1780.97 {
		t.Fatalf("expected tdee 1780.97, got %v", tdee)
	}
	if target != 2280.97 {
		t.Fatalf("expected target 2280.97, got %v", target)
	}
}

func TestCalorieTargetMaintain(t *testing.T) {
	t.Parallel()
	p := model.Profile{
		Gender:        model.GenderMale,
		Age:           40,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: 1.2,
		Goal:          model.GoalMaintain,
	}
	tdee, target := engine.CalorieTarget(p)
	if tdee != target {
		t.Fatalf("expected maintain target to equal tdee, got tdee=%v target=%v", tdee, target)
	}
}
