package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fitlog/fitlog/internal/repository"
)

func TestCreateRoutineAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "alice@example.com", "alice")
	bench := env.createExercise(t, user.ID.String(), "Bench Press")
	squat := env.createExercise(t, user.ID.String(), "Squat")

	routine, err := env.routines.Create(ctx, user.ID.String(), &RoutineRequest{
		Name: "Push Day",
		Exercises: []RoutineExerciseRequest{
			{ExerciseID: bench.ID.String(), Order: 0},
			{ExerciseID: squat.ID.String(), Order: 1, DefaultSets: 5, DefaultReps: 5},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(routine.Exercises) != 2 {
		t.Fatalf("expected 2 routine exercises, got %d", len(routine.Exercises))
	}
	first := routine.Exercises[0]
	if first.DefaultSets != 3 || first.DefaultReps != 10 || first.DefaultRestSeconds != 60 {
		t.Errorf("expected 3x10/60s defaults, got %dx%d/%ds", first.DefaultSets, first.DefaultReps, first.DefaultRestSeconds)
	}
	if routine.Exercises[1].DefaultSets != 5 || routine.Exercises[1].DefaultReps != 5 {
		t.Errorf("explicit sets/reps not kept: %+v", routine.Exercises[1])
	}
}

func TestCreateRoutineRejectsDuplicateOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "bob@example.com", "bob")
	bench := env.createExercise(t, user.ID.String(), "Bench Press")
	squat := env.createExercise(t, user.ID.String(), "Squat")

	_, err := env.routines.Create(ctx, user.ID.String(), &RoutineRequest{
		Name: "Broken",
		Exercises: []RoutineExerciseRequest{
			{ExerciseID: bench.ID.String(), Order: 1},
			{ExerciseID: squat.ID.String(), Order: 1},
		},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for duplicate order, got %v", err)
	}
}

func TestCreateRoutineRejectsUnknownExercise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "carol@example.com", "carol")

	_, err := env.routines.Create(ctx, user.ID.String(), &RoutineRequest{
		Name: "Ghost",
		Exercises: []RoutineExerciseRequest{
			{ExerciseID: "3f9e9d5e-0000-4000-8000-000000000000", Order: 0},
		},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for unknown exercise, got %v", err)
	}
}

func TestRoutineVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t, "dave@example.com", "dave")
	other := env.registerUser(t, "erin@example.com", "erin")

	private, err := env.routines.Create(ctx, owner.ID.String(), &RoutineRequest{Name: "Private"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	public, err := env.routines.Create(ctx, owner.ID.String(), &RoutineRequest{Name: "Public", IsPublic: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := env.routines.Get(ctx, other.ID.String(), private.ID.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected private routine to be invisible to others, got %v", err)
	}
	if _, err := env.routines.Get(ctx, other.ID.String(), public.ID.String()); err != nil {
		t.Errorf("expected public routine to be visible to others, got %v", err)
	}
	if _, err := env.routines.Get(ctx, owner.ID.String(), private.ID.String()); err != nil {
		t.Errorf("expected owner to see own private routine, got %v", err)
	}

	// Listing with the mine-only filter excludes other users' routines.
	mine, err := env.routines.List(ctx, other.ID.String(), repository.RoutineFilter{MineOnly: true}, 0, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mine) != 0 {
		t.Errorf("expected no owned routines for other user, got %d", len(mine))
	}
}

func TestUpdateRoutineReplacesExerciseList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "frank@example.com", "frank")
	bench := env.createExercise(t, user.ID.String(), "Bench Press")
	squat := env.createExercise(t, user.ID.String(), "Squat")

	routine, err := env.routines.Create(ctx, user.ID.String(), &RoutineRequest{
		Name: "Full Body",
		Exercises: []RoutineExerciseRequest{
			{ExerciseID: bench.ID.String(), Order: 0},
			{ExerciseID: squat.ID.String(), Order: 1},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Sending a one-element list drops the other entry.
	updated, err := env.routines.Update(ctx, user.ID.String(), routine.ID.String(), &RoutineRequest{
		Name: "Legs Only",
		Exercises: []RoutineExerciseRequest{
			{ExerciseID: squat.ID.String(), Order: 0, DefaultSets: 4},
		},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Legs Only" {
		t.Errorf("expected renamed routine, got %q", updated.Name)
	}
	if len(updated.Exercises) != 1 {
		t.Fatalf("expected exercise list replaced wholesale, got %d entries", len(updated.Exercises))
	}
	if updated.Exercises[0].ExerciseID != squat.ID {
		t.Error("expected only the squat entry to survive")
	}

	// Omitting the list leaves children untouched.
	updated, err = env.routines.Update(ctx, user.ID.String(), routine.ID.String(), &RoutineRequest{Name: "Legs"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.Exercises) != 1 {
		t.Errorf("expected exercise list preserved when omitted, got %d entries", len(updated.Exercises))
	}
}

func TestUpdateRoutineNotOwned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t, "grace@example.com", "grace")
	other := env.registerUser(t, "heidi@example.com", "heidi")

	routine, err := env.routines.Create(ctx, owner.ID.String(), &RoutineRequest{Name: "Shared", IsPublic: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Public routines are viewable but only the owner can modify them.
	_, err = env.routines.Update(ctx, other.ID.String(), routine.ID.String(), &RoutineRequest{Name: "Hijacked"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner update, got %v", err)
	}
	if err := env.routines.Delete(ctx, other.ID.String(), routine.ID.String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner delete, got %v", err)
	}
}

func TestToggleLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t, "ivan@example.com", "ivan")
	fan := env.registerUser(t, "judy@example.com", "judy")

	routine, err := env.routines.Create(ctx, owner.ID.String(), &RoutineRequest{Name: "Popular", IsPublic: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	liked, err := env.routines.ToggleLike(ctx, fan.ID.String(), routine.ID.String())
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !liked {
		t.Error("expected first toggle to like")
	}

	count, err := env.routines.LikeCount(ctx, routine.ID.String())
	if err != nil {
		t.Fatalf("LikeCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 like, got %d", count)
	}

	liked, err = env.routines.ToggleLike(ctx, fan.ID.String(), routine.ID.String())
	if err != nil {
		t.Fatalf("second ToggleLike failed: %v", err)
	}
	if liked {
		t.Error("expected second toggle to unlike")
	}

	count, err = env.routines.LikeCount(ctx, routine.ID.String())
	if err != nil {
		t.Fatalf("LikeCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 likes after unlike, got %d", count)
	}
}

func TestToggleLikeInvisibleRoutine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t, "kate@example.com", "kate")
	other := env.registerUser(t, "leo@example.com", "leo")

	private, err := env.routines.Create(ctx, owner.ID.String(), &RoutineRequest{Name: "Hidden"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = env.routines.ToggleLike(ctx, other.ID.String(), private.ID.String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound liking an invisible routine, got %v", err)
	}
}
