package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/middleware"
	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/pkg/logger"
	"github.com/fitlog/fitlog/pkg/queue"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenBlacklist records revoked refresh-token IDs. The redis-backed
// implementation lives in pkg/cache; tests use an in-memory fake.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// EventProducer publishes activity events. Satisfied by
// queue.KafkaProducer.
type EventProducer interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

type AuthConfig struct {
	Secret        string
	AccessExpire  time.Duration
	RefreshExpire time.Duration
}

type AuthService struct {
	db        *repository.Database
	userRepo  *repository.UserRepository
	blacklist TokenBlacklist
	producer  EventProducer
	cfg       AuthConfig
	logger    *logger.Logger
}

func NewAuthService(db *repository.Database, userRepo *repository.UserRepository, blacklist TokenBlacklist, producer EventProducer, cfg AuthConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		db:        db,
		userRepo:  userRepo,
		blacklist: blacklist,
		producer:  producer,
		cfg:       cfg,
		logger:    logger,
	}
}

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name" binding:"max=150"`
	LastName        string `json:"last_name" binding:"max=150"`
	FitnessGoal     string `json:"fitness_goal" binding:"omitempty,oneof=weight_loss muscle_gain strength endurance general"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Register creates the user and its zero-valued stats record in one
// transaction; nothing is persisted on any failure.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if req.Password != req.PasswordConfirm {
		return nil, NewValidationError("password fields didn't match")
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, NewValidationError("email already exists")
	}

	existing, err = s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, NewValidationError("username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	fitnessGoal := req.FitnessGoal
	if fitnessGoal == "" {
		fitnessGoal = models.GoalGeneral
	}

	user := &models.User{
		Email:       req.Email,
		Username:    req.Username,
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		FitnessGoal: fitnessGoal,
		IsActive:    true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return users.CreateStats(ctx, &models.UserStats{UserID: user.ID})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	event := queue.Event{
		Type:      queue.EventUserRegistered,
		Timestamp: user.CreatedAt,
		Data: map[string]interface{}{
			"user_id":  user.ID,
			"username": user.Username,
		},
	}
	if err := s.producer.Publish(ctx, user.ID.String(), event); err != nil {
		s.logger.WithError(err).Error("Failed to publish user registered event")
	}

	s.logger.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login authenticates by email and password. Unknown email, wrong
// password and disabled account all produce the same error so accounts
// cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, NewAuthError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, NewAuthError("invalid email or password")
	}

	if !user.IsActive {
		return nil, NewAuthError("invalid email or password")
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, nil
}

// IssueTokenPair generates a fresh access/refresh pair for the user.
func (s *AuthService) IssueTokenPair(user *models.User) (*TokenPair, error) {
	access, _, err := middleware.GenerateToken(s.cfg.Secret, user.ID.String(), user.Username, middleware.TokenTypeAccess, s.cfg.AccessExpire)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, _, err := middleware.GenerateToken(s.cfg.Secret, user.ID.String(), user.Username, middleware.TokenTypeRefresh, s.cfg.RefreshExpire)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh rotates the token pair: the presented refresh token is
// blacklisted for its remaining lifetime and a new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {
	claims, err := middleware.ParseToken(s.cfg.Secret, middleware.TokenTypeRefresh, refreshToken)
	if err != nil {
		return nil, nil, NewAuthError("invalid refresh token")
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check blacklist: %w", err)
	}
	if revoked {
		return nil, nil, NewAuthError("invalid refresh token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, NewAuthError("invalid refresh token")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, nil, NewAuthError("invalid refresh token")
	}

	if err := s.blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	pair, err := s.IssueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout blacklists the refresh token. Any failure is reported as the
// same generic validation error; internal details stay in the logs.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := middleware.ParseToken(s.cfg.Secret, middleware.TokenTypeRefresh, refreshToken)
	if err != nil {
		return NewValidationError("invalid refresh token")
	}

	if err := s.blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.WithError(err).Error("Failed to blacklist refresh token")
		return NewValidationError("invalid refresh token")
	}

	s.logger.WithField("user_id", claims.UserID).Info("User logged out")
	return nil
}

type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required,min=8,max=128"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error {
	if req.NewPassword != req.NewPasswordConfirm {
		return NewValidationError("password fields didn't match")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return NewValidationError("invalid user ID")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return NewAuthError("old password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("Password changed successfully")
	return nil
}
