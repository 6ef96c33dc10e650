package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return &exercise, nil
}

// ExerciseFilter narrows the catalog listing. Zero values mean "no
// filter"; Search matches a case-insensitive substring of the name.
type ExerciseFilter struct {
	Category    string
	MuscleGroup string
	Equipment   string
	Search      string
}

func (r *ExerciseRepository) List(ctx context.Context, filter ExerciseFilter, offset, limit int) ([]*models.Exercise, error) {
	db := r.db.WithContext(ctx).Model(&models.Exercise{})

	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.MuscleGroup != "" {
		db = db.Where("muscle_group = ?", filter.MuscleGroup)
	}
	if filter.Equipment != "" {
		db = db.Where("equipment = ?", filter.Equipment)
	}
	if filter.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var exercises []*models.Exercise
	if err := db.Order("name").Offset(offset).Limit(limit).Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, exercise *models.Exercise) error {
	if err := r.db.WithContext(ctx).Save(exercise).Error; err != nil {
		return fmt.Errorf("failed to update exercise: %w", err)
	}
	return nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Exercise{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	return nil
}

// FirstOrCreateByName makes seeding idempotent: an existing row with the
// same name is left untouched. Returns true when a row was inserted.
func (r *ExerciseRepository) FirstOrCreateByName(ctx context.Context, exercise *models.Exercise) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("name = ?", exercise.Name).
		FirstOrCreate(exercise)
	if result.Error != nil {
		return false, fmt.Errorf("failed to upsert exercise %q: %w", exercise.Name, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ExerciseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}
	return count, nil
}
