package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/pkg/logger"
	"github.com/fitlog/fitlog/pkg/queue"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoutineService struct {
	db           *repository.Database
	routineRepo  *repository.RoutineRepository
	likeRepo     *repository.LikeRepository
	exerciseRepo *repository.ExerciseRepository
	producer     EventProducer
	logger       *logger.Logger
}

func NewRoutineService(db *repository.Database, routineRepo *repository.RoutineRepository, likeRepo *repository.LikeRepository, exerciseRepo *repository.ExerciseRepository, producer EventProducer, logger *logger.Logger) *RoutineService {
	return &RoutineService{
		db:           db,
		routineRepo:  routineRepo,
		likeRepo:     likeRepo,
		exerciseRepo: exerciseRepo,
		producer:     producer,
		logger:       logger,
	}
}

type RoutineExerciseRequest struct {
	ExerciseID         string   `json:"exercise_id" binding:"required,uuid"`
	Order              int      `json:"order" binding:"min=0"`
	DefaultSets        int      `json:"default_sets" binding:"omitempty,min=1"`
	DefaultReps        int      `json:"default_reps" binding:"omitempty,min=1"`
	DefaultWeight      *float64 `json:"default_weight" binding:"omitempty,gt=0"`
	DefaultRestSeconds int      `json:"default_rest_seconds" binding:"omitempty,min=0"`
	Notes              string   `json:"notes"`
}

type RoutineRequest struct {
	Name        string                   `json:"name" binding:"required,max=200"`
	Description string                   `json:"description"`
	IsPublic    bool                     `json:"is_public"`
	Exercises   []RoutineExerciseRequest `json:"exercises" binding:"omitempty,dive"`
}

func (s *RoutineService) buildExercises(ctx context.Context, reqs []RoutineExerciseRequest) ([]models.RoutineExercise, error) {
	seen := make(map[int]bool, len(reqs))
	exercises := make([]models.RoutineExercise, 0, len(reqs))
	for _, req := range reqs {
		if seen[req.Order] {
			return nil, NewValidationError(fmt.Sprintf("duplicate exercise order %d", req.Order))
		}
		seen[req.Order] = true

		exerciseID, err := uuid.Parse(req.ExerciseID)
		if err != nil {
			return nil, NewValidationError("invalid exercise ID")
		}
		exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve exercise: %w", err)
		}
		if exercise == nil {
			return nil, NewValidationError("exercise not found: " + req.ExerciseID)
		}

		re := models.RoutineExercise{
			ExerciseID:         exerciseID,
			Order:              req.Order,
			DefaultSets:        req.DefaultSets,
			DefaultReps:        req.DefaultReps,
			DefaultWeight:      req.DefaultWeight,
			DefaultRestSeconds: req.DefaultRestSeconds,
			Notes:              req.Notes,
		}
		if re.DefaultSets == 0 {
			re.DefaultSets = 3
		}
		if re.DefaultReps == 0 {
			re.DefaultReps = 10
		}
		if re.DefaultRestSeconds == 0 {
			re.DefaultRestSeconds = 60
		}
		exercises = append(exercises, re)
	}
	return exercises, nil
}

// Create persists the routine and its ordered children in one
// transaction.
func (s *RoutineService) Create(ctx context.Context, userID string, req *RoutineRequest) (*models.WorkoutRoutine, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	exercises, err := s.buildExercises(ctx, req.Exercises)
	if err != nil {
		return nil, err
	}

	routine := &models.WorkoutRoutine{
		UserID:      owner,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Exercises:   exercises,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.routineRepo.WithTx(tx).Create(ctx, routine)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithField("routine_id", routine.ID).Info("Routine created")
	return routine, nil
}

func (s *RoutineService) Get(ctx context.Context, userID, routineID string) (*models.WorkoutRoutine, error) {
	uid, rid, err := parseOwnerAndID(userID, routineID)
	if err != nil {
		return nil, err
	}

	routine, err := s.routineRepo.GetVisible(ctx, rid, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	if routine == nil {
		return nil, ErrNotFound
	}
	return routine, nil
}

func (s *RoutineService) List(ctx context.Context, userID string, filter repository.RoutineFilter, offset, limit int) ([]*models.WorkoutRoutine, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}
	return s.routineRepo.List(ctx, uid, filter, offset, limit)
}

// Update edits the routine; when the request carries an exercise list
// the child collection is replaced wholesale, so callers must resend
// the full list or lose entries.
func (s *RoutineService) Update(ctx context.Context, userID, routineID string, req *RoutineRequest) (*models.WorkoutRoutine, error) {
	uid, rid, err := parseOwnerAndID(userID, routineID)
	if err != nil {
		return nil, err
	}

	routine, err := s.routineRepo.GetOwned(ctx, rid, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	if routine == nil {
		return nil, ErrNotFound
	}

	var exercises []models.RoutineExercise
	if req.Exercises != nil {
		exercises, err = s.buildExercises(ctx, req.Exercises)
		if err != nil {
			return nil, err
		}
	}

	routine.Name = req.Name
	routine.Description = req.Description
	routine.IsPublic = req.IsPublic

	err = s.db.Transaction(func(tx *gorm.DB) error {
		routines := s.routineRepo.WithTx(tx)
		if err := routines.Update(ctx, routine); err != nil {
			return err
		}
		if req.Exercises != nil {
			return routines.ReplaceExercises(ctx, routine.ID, exercises)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, routineID)
}

// Delete removes an owned routine; sessions that referenced it survive
// with a nulled routine reference.
func (s *RoutineService) Delete(ctx context.Context, userID, routineID string) error {
	uid, rid, err := parseOwnerAndID(userID, routineID)
	if err != nil {
		return err
	}

	routine, err := s.routineRepo.GetOwned(ctx, rid, uid)
	if err != nil {
		return fmt.Errorf("failed to get routine: %w", err)
	}
	if routine == nil {
		return ErrNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.routineRepo.WithTx(tx).Delete(ctx, routine.ID)
	})
	if err != nil {
		return err
	}

	s.logger.WithField("routine_id", routine.ID).Info("Routine deleted")
	return nil
}

// ToggleLike creates the like when absent and removes it when present;
// the (user, routine) pair never holds more than one row. Returns the
// resulting liked state.
func (s *RoutineService) ToggleLike(ctx context.Context, userID, routineID string) (bool, error) {
	uid, rid, err := parseOwnerAndID(userID, routineID)
	if err != nil {
		return false, err
	}

	routine, err := s.routineRepo.GetVisible(ctx, rid, uid)
	if err != nil {
		return false, fmt.Errorf("failed to get routine: %w", err)
	}
	if routine == nil {
		return false, ErrNotFound
	}

	existing, err := s.likeRepo.Get(ctx, uid, rid)
	if err != nil {
		return false, fmt.Errorf("failed to check like status: %w", err)
	}

	liked := existing == nil
	eventType := queue.EventRoutineLiked
	if existing != nil {
		if err := s.likeRepo.Delete(ctx, uid, rid); err != nil {
			return false, err
		}
		eventType = queue.EventRoutineUnliked
	} else {
		like := &models.WorkoutLike{UserID: uid, RoutineID: rid}
		if err := s.likeRepo.Create(ctx, like); err != nil {
			return false, err
		}
	}

	event := queue.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data: queue.RoutineLikeData{
			UserID:    userID,
			RoutineID: routineID,
		},
	}
	if err := s.producer.Publish(ctx, userID, event); err != nil {
		s.logger.WithError(err).Error("Failed to publish routine like event")
	}

	return liked, nil
}

// LikeCount returns the number of likes on a routine.
func (s *RoutineService) LikeCount(ctx context.Context, routineID string) (int64, error) {
	rid, err := uuid.Parse(routineID)
	if err != nil {
		return 0, ErrNotFound
	}
	return s.likeRepo.CountByRoutine(ctx, rid)
}
