package repository

import (
	"context"
	"fmt"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.UserGoal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetOwned returns the goal only when it belongs to userID; a goal that
// exists but is owned by someone else looks identical to a missing one.
func (r *GoalRepository) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.UserGoal, error) {
	var goal models.UserGoal
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.UserGoal, error) {
	var goals []*models.UserGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *models.UserGoal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.UserGoal{}).Error; err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
