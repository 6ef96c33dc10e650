package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/pkg/logger"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo      *repository.UserRepository
	goalRepo      *repository.GoalRepository
	weightLogRepo *repository.WeightLogRepository
	logger        *logger.Logger
}

func NewUserService(userRepo *repository.UserRepository, goalRepo *repository.GoalRepository, weightLogRepo *repository.WeightLogRepository, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo:      userRepo,
		goalRepo:      goalRepo,
		weightLogRepo: weightLogRepo,
		logger:        logger,
	}
}

// Profile is the outward view of a user, with the stats record attached.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	stats, err := s.userRepo.GetStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	user.Stats = stats
	return user, nil
}

type UpdateProfileRequest struct {
	FirstName            *string  `json:"first_name" binding:"omitempty,max=150"`
	LastName             *string  `json:"last_name" binding:"omitempty,max=150"`
	Bio                  *string  `json:"bio" binding:"omitempty,max=500"`
	FitnessGoal          *string  `json:"fitness_goal" binding:"omitempty,oneof=weight_loss muscle_gain strength endurance general"`
	HeightCm             *float64 `json:"height" binding:"omitempty,gt=0"`
	WeightKg             *float64 `json:"weight" binding:"omitempty,gt=0"`
	Age                  *int     `json:"age" binding:"omitempty,min=13,max=120"`
	IsProfilePublic      *bool    `json:"is_profile_public"`
	NotificationsEnabled *bool    `json:"notifications_enabled"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.FitnessGoal != nil {
		user.FitnessGoal = *req.FitnessGoal
	}
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.IsProfilePublic != nil {
		user.IsProfilePublic = *req.IsProfilePublic
	}
	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("Profile updated successfully")
	return user, nil
}

type GoalRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	IsAchieved  bool       `json:"is_achieved"`
}

func (s *UserService) CreateGoal(ctx context.Context, userID string, req *GoalRequest) (*models.UserGoal, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	goal := &models.UserGoal{
		UserID:      id,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	}
	if req.IsAchieved {
		now := time.Now()
		goal.IsAchieved = true
		goal.AchievedAt = &now
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

func (s *UserService) ListGoals(ctx context.Context, userID string) ([]*models.UserGoal, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}
	return s.goalRepo.ListByUser(ctx, id)
}

func (s *UserService) GetGoal(ctx context.Context, userID, goalID string) (*models.UserGoal, error) {
	uid, gid, err := parseOwnerAndID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetOwned(ctx, gid, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if goal == nil {
		return nil, ErrNotFound
	}
	return goal, nil
}

// UpdateGoal keeps the achieved_at invariant: the timestamp is set when
// the goal flips to achieved and cleared when it flips back.
func (s *UserService) UpdateGoal(ctx context.Context, userID, goalID string, req *GoalRequest) (*models.UserGoal, error) {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.TargetDate = req.TargetDate

	if req.IsAchieved && !goal.IsAchieved {
		now := time.Now()
		goal.AchievedAt = &now
	}
	if !req.IsAchieved {
		goal.AchievedAt = nil
	}
	goal.IsAchieved = req.IsAchieved

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *UserService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, goal.ID, goal.UserID)
}

type WeightLogRequest struct {
	WeightKg float64   `json:"weight" binding:"required,gt=0"`
	Date     time.Time `json:"date" binding:"required"`
	Notes    string    `json:"notes"`
}

// LogWeight upserts the entry for (user, date); logging twice on the
// same day overwrites the earlier entry.
func (s *UserService) LogWeight(ctx context.Context, userID string, req *WeightLogRequest) (*models.BodyWeightLog, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	day := req.Date.Truncate(24 * time.Hour)
	log := &models.BodyWeightLog{
		UserID:   id,
		Date:     day,
		WeightKg: req.WeightKg,
		Notes:    req.Notes,
	}
	if err := s.weightLogRepo.Upsert(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to log weight: %w", err)
	}
	return log, nil
}

func (s *UserService) ListWeightLogs(ctx context.Context, userID string, since *time.Time) ([]*models.BodyWeightLog, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}
	return s.weightLogRepo.ListByUser(ctx, id, since)
}

func parseOwnerAndID(userID, resourceID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, NewValidationError("invalid user ID")
	}
	rid, err := uuid.Parse(resourceID)
	if err != nil {
		// An unparsable ID can't name an existing resource.
		return uuid.Nil, uuid.Nil, ErrNotFound
	}
	return uid, rid, nil
}
