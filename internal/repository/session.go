package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) WithTx(tx *gorm.DB) *SessionRepository {
	return &SessionRepository{db: tx}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.WorkoutSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetOwned returns the session only for its owner, with its sets loaded
// in set-number order.
func (r *SessionRepository) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	if err := r.db.WithContext(ctx).
		Preload("Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_number") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// SessionFilter narrows the session listing; all fields are optional.
type SessionFilter struct {
	IsCompleted *bool
	StartDate   *time.Time
	EndDate     *time.Time
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter SessionFilter, offset, limit int) ([]*models.WorkoutSession, error) {
	db := r.db.WithContext(ctx).Model(&models.WorkoutSession{}).Where("user_id = ?", userID)

	if filter.IsCompleted != nil {
		db = db.Where("is_completed = ?", *filter.IsCompleted)
	}
	if filter.StartDate != nil {
		db = db.Where("start_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		db = db.Where("start_time <= ?", *filter.EndDate)
	}

	var sessions []*models.WorkoutSession
	if err := db.
		Preload("Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_number") }).
		Order("start_time DESC").
		Offset(offset).Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// RecentCompleted returns the user's most recent completed sessions,
// newest first.
func (r *SessionRepository) RecentCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("start_time DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, session *models.WorkoutSession) error {
	if err := r.db.WithContext(ctx).Omit("Sets").Save(session).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// Delete removes the session and its sets.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.ExerciseSet{}).Error; err != nil {
		return fmt.Errorf("failed to delete session sets: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Delete(&models.WorkoutSession{}, "id = ?", sessionID).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) CreateSet(ctx context.Context, set *models.ExerciseSet) error {
	if err := r.db.WithContext(ctx).Create(set).Error; err != nil {
		return fmt.Errorf("failed to create set: %w", err)
	}
	return nil
}

// GetOwnedSet resolves a set through its parent session's owner.
func (r *SessionRepository) GetOwnedSet(ctx context.Context, id, userID uuid.UUID) (*models.ExerciseSet, error) {
	var set models.ExerciseSet
	if err := r.db.WithContext(ctx).
		Joins("JOIN workout_sessions ON workout_sessions.id = exercise_sets.session_id").
		Where("exercise_sets.id = ? AND workout_sessions.user_id = ?", id, userID).
		First(&set).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get set: %w", err)
	}
	return &set, nil
}

func (r *SessionRepository) ListSets(ctx context.Context, sessionID uuid.UUID) ([]models.ExerciseSet, error) {
	var sets []models.ExerciseSet
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("set_number").
		Find(&sets).Error; err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	return sets, nil
}

func (r *SessionRepository) UpdateSet(ctx context.Context, set *models.ExerciseSet) error {
	if err := r.db.WithContext(ctx).Save(set).Error; err != nil {
		return fmt.Errorf("failed to update set: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteSet(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.ExerciseSet{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete set: %w", err)
	}
	return nil
}
