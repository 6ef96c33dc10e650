package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exercise catalog enums.
const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryFlexibility = "flexibility"
	CategorySports      = "sports"
)

const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleShoulders = "shoulders"
	MuscleArms      = "arms"
	MuscleLegs      = "legs"
	MuscleCore      = "core"
	MuscleFullBody  = "full_body"
	MuscleCardio    = "cardio"
)

const (
	EquipmentBarbell    = "barbell"
	EquipmentDumbbell   = "dumbbell"
	EquipmentMachine    = "machine"
	EquipmentCable      = "cable"
	EquipmentBodyweight = "bodyweight"
	EquipmentBand       = "band"
	EquipmentKettlebell = "kettlebell"
	EquipmentOther      = "other"
)

// Set type choices.
const (
	SetTypeNormal  = "normal"
	SetTypeWarmup  = "warmup"
	SetTypeDropset = "dropset"
	SetTypeFailure = "failure"
)

// Exercise is a catalog entry. Seeded entries have is_custom=false;
// user-created ones keep a reference to their creator, which is nulled
// out if the creator is removed.
type Exercise struct {
	ID               uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key"`
	Name             string                      `json:"name" gorm:"not null;index"`
	Description      string                      `json:"description"`
	Category         string                      `json:"category" gorm:"not null;index:idx_category_muscle"`
	MuscleGroup      string                      `json:"muscle_group" gorm:"not null;index:idx_category_muscle"`
	Equipment        string                      `json:"equipment" gorm:"not null"`
	SecondaryMuscles datatypes.JSONSlice[string] `json:"secondary_muscles"`
	Instructions     string                      `json:"instructions"`
	VideoURL         string                      `json:"video_url"`
	IsCustom         bool                        `json:"is_custom" gorm:"default:false"`
	CreatedBy        *uuid.UUID                  `json:"created_by" gorm:"type:uuid"`
	CreatedAt        time.Time                   `json:"created_at"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type WorkoutRoutine struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public" gorm:"default:false"`

	// Denormalized usage stats, maintained by session completion.
	TotalUses       int64 `json:"total_uses" gorm:"default:0"`
	AverageDuration int64 `json:"average_duration" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User      User              `json:"-" gorm:"foreignKey:UserID"`
	Exercises []RoutineExercise `json:"exercises" gorm:"foreignKey:RoutineID"`
}

func (r *WorkoutRoutine) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RoutineExercise is an ordered child row of a routine; order is unique
// within its routine.
type RoutineExercise struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RoutineID  uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_routine_order"`
	ExerciseID uuid.UUID `json:"exercise_id" gorm:"type:uuid;not null"`
	Order      int       `json:"order" gorm:"column:position;not null;uniqueIndex:idx_routine_order"`

	DefaultSets        int      `json:"default_sets" gorm:"default:3"`
	DefaultReps        int      `json:"default_reps" gorm:"default:10"`
	DefaultWeight      *float64 `json:"default_weight"`
	DefaultRestSeconds int      `json:"default_rest_seconds" gorm:"default:60"`
	Notes              string   `json:"notes"`

	Exercise Exercise `json:"exercise" gorm:"foreignKey:ExerciseID"`
}

func (re *RoutineExercise) BeforeCreate(tx *gorm.DB) error {
	if re.ID == uuid.Nil {
		re.ID = uuid.New()
	}
	return nil
}

// WorkoutSession is one performed workout. RoutineID is a non-owning
// reference and is nulled, not cascaded, when the routine goes away.
type WorkoutSession struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_user_start"`
	RoutineID *uuid.UUID `json:"routine_id" gorm:"type:uuid"`

	Name  string `json:"name"`
	Notes string `json:"notes"`

	StartTime       time.Time  `json:"start_time" gorm:"not null;index:idx_user_start"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int64     `json:"duration_minutes"`

	TotalVolume float64 `json:"total_volume" gorm:"default:0"`
	TotalSets   int64   `json:"total_sets" gorm:"default:0"`
	IsCompleted bool    `json:"is_completed" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Routine *WorkoutRoutine `json:"-" gorm:"foreignKey:RoutineID"`
	Sets    []ExerciseSet   `json:"exercise_sets" gorm:"foreignKey:SessionID"`
}

func (s *WorkoutSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ExerciseSet is one performed unit within a session. SetNumber is
// caller-supplied and not unique within a session.
type ExerciseSet struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	SessionID  uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index:idx_session_exercise"`
	ExerciseID uuid.UUID `json:"exercise_id" gorm:"type:uuid;not null;index:idx_session_exercise"`

	SetNumber int    `json:"set_number" gorm:"not null"`
	SetType   string `json:"set_type" gorm:"default:normal"`

	Reps        int      `json:"reps" gorm:"not null"`
	WeightKg    *float64 `json:"weight"`
	RestSeconds *int     `json:"rest_seconds"`

	DurationSeconds *int     `json:"duration_seconds"`
	DistanceMeters  *float64 `json:"distance_meters"`

	Difficulty       *int   `json:"difficulty"`
	Notes            string `json:"notes"`
	IsPersonalRecord bool   `json:"is_personal_record" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`

	Exercise Exercise `json:"-" gorm:"foreignKey:ExerciseID"`
}

func (s *ExerciseSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// WorkoutLike is at most one row per (user, routine).
type WorkoutLike struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_routine"`
	RoutineID uuid.UUID `json:"routine_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_routine"`
	CreatedAt time.Time `json:"created_at"`

	User    User           `json:"-" gorm:"foreignKey:UserID"`
	Routine WorkoutRoutine `json:"-" gorm:"foreignKey:RoutineID"`
}

func (l *WorkoutLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (Exercise) TableName() string {
	return "exercises"
}

func (WorkoutRoutine) TableName() string {
	return "workout_routines"
}

func (RoutineExercise) TableName() string {
	return "routine_exercises"
}

func (WorkoutSession) TableName() string {
	return "workout_sessions"
}

func (ExerciseSet) TableName() string {
	return "exercise_sets"
}

func (WorkoutLike) TableName() string {
	return "workout_likes"
}
