package services

import (
	"context"
	"fmt"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/pkg/logger"
	"github.com/google/uuid"
)

type ExerciseService struct {
	exerciseRepo *repository.ExerciseRepository
	logger       *logger.Logger
}

func NewExerciseService(exerciseRepo *repository.ExerciseRepository, logger *logger.Logger) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

type ExerciseRequest struct {
	Name             string   `json:"name" binding:"required,max=200"`
	Description      string   `json:"description"`
	Category         string   `json:"category" binding:"required,oneof=strength cardio flexibility sports"`
	MuscleGroup      string   `json:"muscle_group" binding:"required,oneof=chest back shoulders arms legs core full_body cardio"`
	Equipment        string   `json:"equipment" binding:"required,oneof=barbell dumbbell machine cable bodyweight band kettlebell other"`
	SecondaryMuscles []string `json:"secondary_muscles" binding:"omitempty,dive,oneof=shoulders triceps biceps back forearms calves neck chest"`
	Instructions     string   `json:"instructions"`
	VideoURL         string   `json:"video_url" binding:"omitempty,url"`
}

// Create adds a user-authored catalog entry; it is always flagged
// custom and attributed to the caller.
func (s *ExerciseService) Create(ctx context.Context, userID string, req *ExerciseRequest) (*models.Exercise, error) {
	creator, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	exercise := &models.Exercise{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		MuscleGroup:      req.MuscleGroup,
		Equipment:        req.Equipment,
		SecondaryMuscles: req.SecondaryMuscles,
		Instructions:     req.Instructions,
		VideoURL:         req.VideoURL,
		IsCustom:         true,
		CreatedBy:        &creator,
	}

	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.logger.WithField("exercise_id", exercise.ID).Info("Custom exercise created")
	return exercise, nil
}

func (s *ExerciseService) Get(ctx context.Context, exerciseID string) (*models.Exercise, error) {
	id, err := uuid.Parse(exerciseID)
	if err != nil {
		return nil, ErrNotFound
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	if exercise == nil {
		return nil, ErrNotFound
	}
	return exercise, nil
}

func (s *ExerciseService) List(ctx context.Context, filter repository.ExerciseFilter, offset, limit int) ([]*models.Exercise, error) {
	return s.exerciseRepo.List(ctx, filter, offset, limit)
}

// Update edits a catalog entry. The catalog is shared: any
// authenticated user may edit any entry.
func (s *ExerciseService) Update(ctx context.Context, exerciseID string, req *ExerciseRequest) (*models.Exercise, error) {
	exercise, err := s.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	exercise.Name = req.Name
	exercise.Description = req.Description
	exercise.Category = req.Category
	exercise.MuscleGroup = req.MuscleGroup
	exercise.Equipment = req.Equipment
	exercise.SecondaryMuscles = req.SecondaryMuscles
	exercise.Instructions = req.Instructions
	exercise.VideoURL = req.VideoURL

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to update exercise: %w", err)
	}
	return exercise, nil
}

func (s *ExerciseService) Delete(ctx context.Context, exerciseID string) error {
	exercise, err := s.Get(ctx, exerciseID)
	if err != nil {
		return err
	}
	return s.exerciseRepo.Delete(ctx, exercise.ID)
}

// Seed upserts the reference catalog by name. Running it repeatedly
// never duplicates rows. Returns the number of rows inserted.
func (s *ExerciseService) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, seed := range seedExercises {
		exercise := seed
		inserted, err := s.exerciseRepo.FirstOrCreateByName(ctx, &exercise)
		if err != nil {
			return created, fmt.Errorf("failed to seed exercises: %w", err)
		}
		if inserted {
			created++
		}
	}
	s.logger.WithField("created", created).Info("Exercise catalog seeded")
	return created, nil
}
