package services

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

// The request structs carry gin binding tags enforced at the HTTP
// boundary; validate them directly so bad payload shapes are caught
// without spinning up a router.

func TestAppendSetRequestBinding(t *testing.T) {
	valid := AppendSetRequest{
		ExerciseID: "3f9e9d5e-0000-4000-8000-000000000000",
		SetNumber:  1,
		Reps:       10,
	}
	if err := binding.Validator.ValidateStruct(&valid); err != nil {
		t.Fatalf("expected valid request to pass, got %v", err)
	}

	zeroReps := valid
	zeroReps.Reps = 0
	if err := binding.Validator.ValidateStruct(&zeroReps); err == nil {
		t.Error("expected reps=0 to be rejected")
	}

	badDifficulty := valid
	eleven := 11
	badDifficulty.Difficulty = &eleven
	if err := binding.Validator.ValidateStruct(&badDifficulty); err == nil {
		t.Error("expected difficulty=11 to be rejected")
	}

	badType := valid
	badType.SetType = "superset"
	if err := binding.Validator.ValidateStruct(&badType); err == nil {
		t.Error("expected unknown set type to be rejected")
	}
}

func TestRegisterRequestBinding(t *testing.T) {
	valid := RegisterRequest{
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        "password123",
		PasswordConfirm: "password123",
	}
	if err := binding.Validator.ValidateStruct(&valid); err != nil {
		t.Fatalf("expected valid request to pass, got %v", err)
	}

	shortPassword := valid
	shortPassword.Password = "short"
	if err := binding.Validator.ValidateStruct(&shortPassword); err == nil {
		t.Error("expected short password to be rejected")
	}

	badGoal := valid
	badGoal.FitnessGoal = "get_swole"
	if err := binding.Validator.ValidateStruct(&badGoal); err == nil {
		t.Error("expected unknown fitness goal to be rejected")
	}
}

func TestUpdateProfileRequestBinding(t *testing.T) {
	young := 12
	req := UpdateProfileRequest{Age: &young}
	if err := binding.Validator.ValidateStruct(&req); err == nil {
		t.Error("expected age below 13 to be rejected")
	}

	ok := 30
	req = UpdateProfileRequest{Age: &ok}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		t.Errorf("expected age 30 to pass, got %v", err)
	}
}
