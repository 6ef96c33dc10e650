package repository

import (
	"context"
	"fmt"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, like *models.WorkoutLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, routineID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND routine_id = ?", userID, routineID).
		Delete(&models.WorkoutLike{}).Error; err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Get(ctx context.Context, userID, routineID uuid.UUID) (*models.WorkoutLike, error) {
	var like models.WorkoutLike
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND routine_id = ?", userID, routineID).
		First(&like).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get like: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) CountByRoutine(ctx context.Context, routineID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WorkoutLike{}).
		Where("routine_id = ?", routineID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
