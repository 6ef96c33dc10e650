package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoutineRepository struct {
	db *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) *RoutineRepository {
	return &RoutineRepository{db: db}
}

func (r *RoutineRepository) WithTx(tx *gorm.DB) *RoutineRepository {
	return &RoutineRepository{db: tx}
}

// Create persists the routine and its ordered child rows in one
// transaction; gorm inserts the association rows with the parent.
func (r *RoutineRepository) Create(ctx context.Context, routine *models.WorkoutRoutine) error {
	if err := r.db.WithContext(ctx).Create(routine).Error; err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}
	return nil
}

func (r *RoutineRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	if err := r.db.WithContext(ctx).First(&routine, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	return &routine, nil
}

// GetVisible returns the routine when it is owned by userID or public.
func (r *RoutineRepository) GetVisible(ctx context.Context, id, userID uuid.UUID) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	if err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Exercises.Exercise").
		Where("id = ? AND (user_id = ? OR is_public = ?)", id, userID, true).
		First(&routine).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	return &routine, nil
}

// GetOwned returns the routine only for its owner.
func (r *RoutineRepository) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	if err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&routine).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	return &routine, nil
}

// RoutineFilter narrows the listing. Visibility (own OR public) is
// always applied first; MineOnly and PublicOnly narrow further.
type RoutineFilter struct {
	MineOnly   bool
	PublicOnly bool
	Search     string
}

func (r *RoutineRepository) List(ctx context.Context, userID uuid.UUID, filter RoutineFilter, offset, limit int) ([]*models.WorkoutRoutine, error) {
	db := r.db.WithContext(ctx).Model(&models.WorkoutRoutine{})

	switch {
	case filter.MineOnly:
		db = db.Where("user_id = ?", userID)
	case filter.PublicOnly:
		db = db.Where("is_public = ?", true)
	default:
		db = db.Where("user_id = ? OR is_public = ?", userID, true)
	}

	if filter.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var routines []*models.WorkoutRoutine
	if err := db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&routines).Error; err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	return routines, nil
}

func (r *RoutineRepository) Update(ctx context.Context, routine *models.WorkoutRoutine) error {
	if err := r.db.WithContext(ctx).Omit("Exercises").Save(routine).Error; err != nil {
		return fmt.Errorf("failed to update routine: %w", err)
	}
	return nil
}

// ReplaceExercises swaps the whole child collection: delete-all then
// re-insert. Callers must send the full list on every update.
func (r *RoutineRepository) ReplaceExercises(ctx context.Context, routineID uuid.UUID, exercises []models.RoutineExercise) error {
	if err := r.db.WithContext(ctx).
		Where("routine_id = ?", routineID).
		Delete(&models.RoutineExercise{}).Error; err != nil {
		return fmt.Errorf("failed to clear routine exercises: %w", err)
	}
	for i := range exercises {
		exercises[i].ID = uuid.Nil
		exercises[i].RoutineID = routineID
	}
	if len(exercises) > 0 {
		if err := r.db.WithContext(ctx).Create(&exercises).Error; err != nil {
			return fmt.Errorf("failed to insert routine exercises: %w", err)
		}
	}
	return nil
}

// Delete removes the routine, its child rows and likes, and detaches
// referencing sessions (routine_id set to NULL, sessions survive).
func (r *RoutineRepository) Delete(ctx context.Context, routineID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Model(&models.WorkoutSession{}).
		Where("routine_id = ?", routineID).
		Update("routine_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach sessions: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Where("routine_id = ?", routineID).
		Delete(&models.RoutineExercise{}).Error; err != nil {
		return fmt.Errorf("failed to delete routine exercises: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Where("routine_id = ?", routineID).
		Delete(&models.WorkoutLike{}).Error; err != nil {
		return fmt.Errorf("failed to delete routine likes: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Delete(&models.WorkoutRoutine{}, "id = ?", routineID).Error; err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
	}
	return nil
}

// ApplyUse folds one completed session into the routine's usage stats.
// The use counter is an atomic increment; the average is computed by
// the caller from the pre-increment values.
func (r *RoutineRepository) ApplyUse(ctx context.Context, routineID uuid.UUID, averageDuration int64) error {
	if err := r.db.WithContext(ctx).Model(&models.WorkoutRoutine{}).
		Where("id = ?", routineID).
		Updates(map[string]interface{}{
			"total_uses":       gorm.Expr("total_uses + 1"),
			"average_duration": averageDuration,
		}).Error; err != nil {
		return fmt.Errorf("failed to update routine usage: %w", err)
	}
	return nil
}
