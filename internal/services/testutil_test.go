package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fitlog/fitlog/internal/models"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeBlacklist keeps revoked token IDs in memory.
type fakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]bool)}
}

func (f *fakeBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti], nil
}

// fakeProducer records published events instead of writing to kafka.
type fakeProducer struct {
	mu     sync.Mutex
	events []interface{}
}

func (f *fakeProducer) Publish(ctx context.Context, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, value)
	return nil
}

func (f *fakeProducer) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type testEnv struct {
	db        *repository.Database
	blacklist *fakeBlacklist
	producer  *fakeProducer

	auth      *AuthService
	users     *UserService
	exercises *ExerciseService
	routines  *RoutineService
	sessions  *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "fitlog.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db := &repository.Database{DB: gdb}
	log := logger.NewLogger()

	userRepo := repository.NewUserRepository(gdb)
	goalRepo := repository.NewGoalRepository(gdb)
	weightLogRepo := repository.NewWeightLogRepository(gdb)
	exerciseRepo := repository.NewExerciseRepository(gdb)
	routineRepo := repository.NewRoutineRepository(gdb)
	likeRepo := repository.NewLikeRepository(gdb)
	sessionRepo := repository.NewSessionRepository(gdb)

	blacklist := newFakeBlacklist()
	producer := &fakeProducer{}

	authCfg := AuthConfig{
		Secret:        "test-secret",
		AccessExpire:  15 * time.Minute,
		RefreshExpire: time.Hour,
	}

	return &testEnv{
		db:        db,
		blacklist: blacklist,
		producer:  producer,
		auth:      NewAuthService(db, userRepo, blacklist, producer, authCfg, log),
		users:     NewUserService(userRepo, goalRepo, weightLogRepo, log),
		exercises: NewExerciseService(exerciseRepo, log),
		routines:  NewRoutineService(db, routineRepo, likeRepo, exerciseRepo, producer, log),
		sessions:  NewSessionService(db, sessionRepo, userRepo, routineRepo, exerciseRepo, producer, log),
	}
}

func (e *testEnv) registerUser(t *testing.T, email, username string) *models.User {
	t.Helper()

	user, err := e.auth.Register(context.Background(), &RegisterRequest{
		Email:           email,
		Username:        username,
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	if err != nil {
		t.Fatalf("failed to register test user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createExercise(t *testing.T, userID, name string) *models.Exercise {
	t.Helper()

	exercise, err := e.exercises.Create(context.Background(), userID, &ExerciseRequest{
		Name:        name,
		Category:    models.CategoryStrength,
		MuscleGroup: models.MuscleChest,
		Equipment:   models.EquipmentBarbell,
	})
	if err != nil {
		t.Fatalf("failed to create test exercise %s: %v", name, err)
	}
	return exercise
}
