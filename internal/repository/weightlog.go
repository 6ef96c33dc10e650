package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeightLogRepository struct {
	db *gorm.DB
}

func NewWeightLogRepository(db *gorm.DB) *WeightLogRepository {
	return &WeightLogRepository{db: db}
}

// Upsert keeps one entry per user per date: an existing row for the
// same day is overwritten in place.
func (r *WeightLogRepository) Upsert(ctx context.Context, log *models.BodyWeightLog) error {
	var existing models.BodyWeightLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", log.UserID, log.Date).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
			return fmt.Errorf("failed to create weight log: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check weight log: %w", err)
	}

	existing.WeightKg = log.WeightKg
	existing.Notes = log.Notes
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update weight log: %w", err)
	}
	*log = existing
	return nil
}

func (r *WeightLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]*models.BodyWeightLog, error) {
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if since != nil {
		db = db.Where("date >= ?", *since)
	}

	var logs []*models.BodyWeightLog
	if err := db.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list weight logs: %w", err)
	}
	return logs, nil
}
