package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
)

func TestSeedIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.exercises.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if created != len(seedExercises) {
		t.Errorf("expected %d exercises created on first run, got %d", len(seedExercises), created)
	}

	created, err = env.exercises.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if created != 0 {
		t.Errorf("expected 0 exercises created on second run, got %d", created)
	}

	all, err := env.exercises.List(ctx, repository.ExerciseFilter{}, 0, 100)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != len(seedExercises) {
		t.Errorf("expected %d catalog entries, got %d", len(seedExercises), len(all))
	}
}

func TestCreateCustomExercise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "alice@example.com", "alice")

	exercise, err := env.exercises.Create(ctx, user.ID.String(), &ExerciseRequest{
		Name:             "Weighted Dip",
		Category:         models.CategoryStrength,
		MuscleGroup:      models.MuscleChest,
		Equipment:        models.EquipmentBodyweight,
		SecondaryMuscles: []string{models.MuscleShoulders},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !exercise.IsCustom {
		t.Error("expected user-created exercise to be flagged custom")
	}
	if exercise.CreatedBy == nil || *exercise.CreatedBy != user.ID {
		t.Error("expected exercise to be attributed to its creator")
	}

	got, err := env.exercises.Get(ctx, exercise.ID.String())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.SecondaryMuscles) != 1 || got.SecondaryMuscles[0] != models.MuscleShoulders {
		t.Errorf("secondary muscles not round-tripped: %v", got.SecondaryMuscles)
	}
}

func TestListFiltersCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.exercises.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	chest, err := env.exercises.List(ctx, repository.ExerciseFilter{MuscleGroup: models.MuscleChest}, 0, 100)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(chest) == 0 {
		t.Fatal("expected chest exercises in seeded catalog")
	}
	for _, e := range chest {
		if e.MuscleGroup != models.MuscleChest {
			t.Errorf("filter leaked %s exercise %q", e.MuscleGroup, e.Name)
		}
	}

	found, err := env.exercises.List(ctx, repository.ExerciseFilter{Search: "bench"}, 0, 100)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(found) == 0 {
		t.Error("expected case-insensitive name search to match Bench Press")
	}
}

func TestGetUnknownExercise(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.exercises.Get(context.Background(), "3f9e9d5e-0000-4000-8000-000000000000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = env.exercises.Get(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
}
