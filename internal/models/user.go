package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fitness goal choices for the user profile.
const (
	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
	GoalStrength   = "strength"
	GoalEndurance  = "endurance"
	GoalGeneral    = "general"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`

	FitnessGoal string   `json:"fitness_goal" gorm:"default:general"`
	HeightCm    *float64 `json:"height"`
	WeightKg    *float64 `json:"weight"`
	Age         *int     `json:"age"`

	IsProfilePublic      bool `json:"is_profile_public" gorm:"default:true"`
	NotificationsEnabled bool `json:"notifications_enabled" gorm:"default:true"`
	IsActive             bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Stats *UserStats `json:"stats,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// UserStats is the denormalized per-user aggregate record. Exactly one
// row exists per user; it is created inside the registration transaction
// and mutated only by session completion.
type UserStats struct {
	ID     uuid.UUID `json:"-" gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `json:"-" gorm:"type:uuid;uniqueIndex;not null"`

	TotalWorkouts int64   `json:"total_workouts" gorm:"default:0"`
	CurrentStreak int64   `json:"current_streak" gorm:"default:0"`
	LongestStreak int64   `json:"longest_streak" gorm:"default:0"`
	TotalVolume   float64 `json:"total_volume" gorm:"default:0"`

	LastWorkoutDate *time.Time `json:"last_workout_date"`
	UpdatedAt       time.Time  `json:"-"`
}

func (s *UserStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type UserGoal struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `json:"-" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	IsAchieved  bool       `json:"is_achieved" gorm:"default:false"`
	AchievedAt  *time.Time `json:"achieved_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (g *UserGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// BodyWeightLog keeps one weight entry per user per calendar date.
type BodyWeightLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_user_date"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex:idx_user_date"`
	WeightKg  float64   `json:"weight" gorm:"not null"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *BodyWeightLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

func (UserStats) TableName() string {
	return "user_stats"
}

func (UserGoal) TableName() string {
	return "user_goals"
}

func (BodyWeightLog) TableName() string {
	return "body_weight_logs"
}
