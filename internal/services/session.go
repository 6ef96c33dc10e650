package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/stats"
	"github.com/fitlog/fitlog/pkg/logger"
	"github.com/fitlog/fitlog/pkg/queue"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentSessionWindow is how many completed sessions feed the
// aggregate stats endpoint.
const recentSessionWindow = 10

type SessionService struct {
	db           *repository.Database
	sessionRepo  *repository.SessionRepository
	userRepo     *repository.UserRepository
	routineRepo  *repository.RoutineRepository
	exerciseRepo *repository.ExerciseRepository
	producer     EventProducer
	logger       *logger.Logger
}

func NewSessionService(db *repository.Database, sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, routineRepo *repository.RoutineRepository, exerciseRepo *repository.ExerciseRepository, producer EventProducer, logger *logger.Logger) *SessionService {
	return &SessionService{
		db:           db,
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		routineRepo:  routineRepo,
		exerciseRepo: exerciseRepo,
		producer:     producer,
		logger:       logger,
	}
}

type StartSessionRequest struct {
	RoutineID *string    `json:"routine_id" binding:"omitempty,uuid"`
	Name      string     `json:"name" binding:"max=200"`
	Notes     string     `json:"notes"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
}

// Start opens a session. A supplied routine must be visible to the
// caller; an end time in the payload computes the duration immediately,
// but completion stays explicit.
func (s *SessionService) Start(ctx context.Context, userID string, req *StartSessionRequest) (*models.WorkoutSession, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	session := &models.WorkoutSession{
		UserID:    owner,
		Name:      req.Name,
		Notes:     req.Notes,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if req.RoutineID != nil {
		rid, err := uuid.Parse(*req.RoutineID)
		if err != nil {
			return nil, NewValidationError("invalid routine ID")
		}
		routine, err := s.routineRepo.GetVisible(ctx, rid, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve routine: %w", err)
		}
		if routine == nil {
			return nil, NewValidationError("routine not found")
		}
		session.RoutineID = &routine.ID
	}

	if req.EndTime != nil {
		if req.EndTime.Before(req.StartTime) {
			return nil, NewValidationError("end_time must not precede start_time")
		}
		session.DurationMinutes = stats.DurationMinutes(session.StartTime, session.EndTime)
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.WithField("session_id", session.ID).Info("Workout session started")
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error) {
	uid, sid, err := parseOwnerAndID(userID, sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetOwned(ctx, sid, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *SessionService) List(ctx context.Context, userID string, filter repository.SessionFilter, offset, limit int) ([]*models.WorkoutSession, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}
	return s.sessionRepo.ListByUser(ctx, uid, filter, offset, limit)
}

type UpdateSessionRequest struct {
	Name      *string    `json:"name" binding:"omitempty,max=200"`
	Notes     *string    `json:"notes"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// Update edits session metadata and recomputes the derived fields from
// the current set list.
func (s *SessionService) Update(ctx context.Context, userID, sessionID string, req *UpdateSessionRequest) (*models.WorkoutSession, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		session.Name = *req.Name
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = req.EndTime
	}
	if session.EndTime != nil && session.EndTime.Before(session.StartTime) {
		return nil, NewValidationError("end_time must not precede start_time")
	}

	session.DurationMinutes = stats.DurationMinutes(session.StartTime, session.EndTime)
	session.TotalVolume, session.TotalSets = stats.SessionTotals(session.Sets)

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, userID, sessionID string) error {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.WithTx(tx).Delete(ctx, session.ID)
	})
}

type AppendSetRequest struct {
	ExerciseID       string   `json:"exercise_id" binding:"required,uuid"`
	SetNumber        int      `json:"set_number" binding:"required,min=1"`
	SetType          string   `json:"set_type" binding:"omitempty,oneof=normal warmup dropset failure"`
	Reps             int      `json:"reps" binding:"required,min=1"`
	WeightKg         *float64 `json:"weight" binding:"omitempty,gte=0"`
	RestSeconds      *int     `json:"rest_seconds" binding:"omitempty,min=0"`
	DurationSeconds  *int     `json:"duration_seconds" binding:"omitempty,min=0"`
	DistanceMeters   *float64 `json:"distance_meters" binding:"omitempty,gte=0"`
	Difficulty       *int     `json:"difficulty" binding:"omitempty,min=1,max=10"`
	Notes            string   `json:"notes"`
	IsPersonalRecord bool     `json:"is_personal_record"`
}

// AppendSet records one performed set. Set numbers are taken as given;
// the schema deliberately allows duplicates within a session.
func (s *SessionService) AppendSet(ctx context.Context, userID, sessionID string, req *AppendSetRequest) (*models.ExerciseSet, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	exerciseID, err := uuid.Parse(req.ExerciseID)
	if err != nil {
		return nil, NewValidationError("invalid exercise ID")
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve exercise: %w", err)
	}
	if exercise == nil {
		return nil, NewValidationError("exercise not found")
	}

	setType := req.SetType
	if setType == "" {
		setType = models.SetTypeNormal
	}

	set := &models.ExerciseSet{
		SessionID:        session.ID,
		ExerciseID:       exerciseID,
		SetNumber:        req.SetNumber,
		SetType:          setType,
		Reps:             req.Reps,
		WeightKg:         req.WeightKg,
		RestSeconds:      req.RestSeconds,
		DurationSeconds:  req.DurationSeconds,
		DistanceMeters:   req.DistanceMeters,
		Difficulty:       req.Difficulty,
		Notes:            req.Notes,
		IsPersonalRecord: req.IsPersonalRecord,
	}

	if err := s.sessionRepo.CreateSet(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *SessionService) ListSets(ctx context.Context, userID, sessionID string) ([]models.ExerciseSet, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionRepo.ListSets(ctx, session.ID)
}

func (s *SessionService) GetSet(ctx context.Context, userID, setID string) (*models.ExerciseSet, error) {
	uid, sid, err := parseOwnerAndID(userID, setID)
	if err != nil {
		return nil, err
	}

	set, err := s.sessionRepo.GetOwnedSet(ctx, sid, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get set: %w", err)
	}
	if set == nil {
		return nil, ErrNotFound
	}
	return set, nil
}

func (s *SessionService) UpdateSet(ctx context.Context, userID, setID string, req *AppendSetRequest) (*models.ExerciseSet, error) {
	set, err := s.GetSet(ctx, userID, setID)
	if err != nil {
		return nil, err
	}

	exerciseID, err := uuid.Parse(req.ExerciseID)
	if err != nil {
		return nil, NewValidationError("invalid exercise ID")
	}

	set.ExerciseID = exerciseID
	set.SetNumber = req.SetNumber
	if req.SetType != "" {
		set.SetType = req.SetType
	}
	set.Reps = req.Reps
	set.WeightKg = req.WeightKg
	set.RestSeconds = req.RestSeconds
	set.DurationSeconds = req.DurationSeconds
	set.DistanceMeters = req.DistanceMeters
	set.Difficulty = req.Difficulty
	set.Notes = req.Notes
	set.IsPersonalRecord = req.IsPersonalRecord

	if err := s.sessionRepo.UpdateSet(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *SessionService) DeleteSet(ctx context.Context, userID, setID string) error {
	set, err := s.GetSet(ctx, userID, setID)
	if err != nil {
		return err
	}
	return s.sessionRepo.DeleteSet(ctx, set.ID)
}

// Complete closes a session once. In a single transaction it stamps the
// end time, recomputes the derived session fields, folds the session
// into the owner's aggregate stats (counter columns via atomic
// increments) and into the source routine's usage stats. A second call
// is rejected rather than double-counted.
func (s *SessionService) Complete(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error) {
	uid, sid, err := parseOwnerAndID(userID, sessionID)
	if err != nil {
		return nil, err
	}

	var completed *models.WorkoutSession
	err = s.db.Transaction(func(tx *gorm.DB) error {
		sessions := s.sessionRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)
		routines := s.routineRepo.WithTx(tx)

		session, err := sessions.GetOwned(ctx, sid, uid)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrNotFound
		}
		if session.IsCompleted {
			return NewValidationError("session is already completed")
		}

		now := time.Now()
		session.EndTime = &now
		session.IsCompleted = true
		session.DurationMinutes = stats.DurationMinutes(session.StartTime, session.EndTime)
		session.TotalVolume, session.TotalSets = stats.SessionTotals(session.Sets)

		if err := sessions.Update(ctx, session); err != nil {
			return err
		}

		userStats, err := users.GetStats(ctx, uid)
		if err != nil {
			return err
		}
		if userStats == nil {
			return fmt.Errorf("stats record missing for user %s", uid)
		}
		workoutDate := session.StartTime.Truncate(24 * time.Hour)
		current, longest := stats.NextStreak(userStats.LastWorkoutDate, workoutDate, userStats.CurrentStreak, userStats.LongestStreak)
		if err := users.ApplyWorkout(ctx, uid, session.TotalVolume, workoutDate, current, longest); err != nil {
			return err
		}

		if session.RoutineID != nil {
			routine, err := routines.GetByID(ctx, *session.RoutineID)
			if err != nil {
				return err
			}
			if routine != nil {
				var duration int64
				if session.DurationMinutes != nil {
					duration = *session.DurationMinutes
				}
				avg := stats.RoutineAverage(routine.AverageDuration, routine.TotalUses, duration)
				if err := routines.ApplyUse(ctx, routine.ID, avg); err != nil {
					return err
				}
			}
		}

		completed = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	data := queue.SessionCompletedData{
		UserID:      userID,
		SessionID:   sessionID,
		TotalVolume: completed.TotalVolume,
		TotalSets:   completed.TotalSets,
	}
	if completed.RoutineID != nil {
		data.RoutineID = completed.RoutineID.String()
	}
	if completed.DurationMinutes != nil {
		data.DurationMinutes = *completed.DurationMinutes
	}
	event := queue.Event{
		Type:      queue.EventSessionCompleted,
		Timestamp: *completed.EndTime,
		Data:      data,
	}
	if err := s.producer.Publish(ctx, userID, event); err != nil {
		s.logger.WithError(err).Error("Failed to publish session completed event")
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id":   completed.ID,
		"total_volume": completed.TotalVolume,
		"total_sets":   completed.TotalSets,
	}).Info("Workout session completed")

	return completed, nil
}

// RecentStats aggregates the caller's most recent completed sessions.
func (s *SessionService) RecentStats(ctx context.Context, userID string) (stats.Summary, []models.WorkoutSession, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return stats.Summary{}, nil, NewValidationError("invalid user ID")
	}

	sessions, err := s.sessionRepo.RecentCompleted(ctx, uid, recentSessionWindow)
	if err != nil {
		return stats.Summary{}, nil, err
	}
	return stats.Summarize(sessions), sessions, nil
}
