package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitlog/fitlog/internal/config"
	"github.com/fitlog/fitlog/internal/handlers"
	"github.com/fitlog/fitlog/internal/middleware"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/services"
	"github.com/fitlog/fitlog/pkg/cache"
	"github.com/fitlog/fitlog/pkg/logger"
	"github.com/fitlog/fitlog/pkg/queue"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logger.NewLogger()
	logger.Info("Starting fitlog API server...")

	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	redisClient := cache.NewRedisClient(
		cfg.Redis.Addr(),
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
		cfg.Redis.MinIdleConns,
	)
	defer redisClient.Close()

	ctx := context.Background()
	if err := redisClient.Ping(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}

	activityProducer := queue.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.ActivityEvents)
	defer activityProducer.Close()

	blacklist := cache.NewTokenBlacklist(redisClient)

	userRepo := repository.NewUserRepository(db.DB)
	goalRepo := repository.NewGoalRepository(db.DB)
	weightLogRepo := repository.NewWeightLogRepository(db.DB)
	exerciseRepo := repository.NewExerciseRepository(db.DB)
	routineRepo := repository.NewRoutineRepository(db.DB)
	likeRepo := repository.NewLikeRepository(db.DB)
	sessionRepo := repository.NewSessionRepository(db.DB)

	authCfg := services.AuthConfig{
		Secret:        cfg.JWT.Secret,
		AccessExpire:  cfg.JWT.AccessExpire,
		RefreshExpire: cfg.JWT.RefreshExpire,
	}

	authService := services.NewAuthService(db, userRepo, blacklist, activityProducer, authCfg, logger)
	userService := services.NewUserService(userRepo, goalRepo, weightLogRepo, logger)
	exerciseService := services.NewExerciseService(exerciseRepo, logger)
	routineService := services.NewRoutineService(db, routineRepo, likeRepo, exerciseRepo, activityProducer, logger)
	sessionService := services.NewSessionService(db, sessionRepo, userRepo, routineRepo, exerciseRepo, activityProducer, logger)

	// Seed the built-in exercise catalog on startup. Idempotent, so a
	// restart never duplicates entries.
	if created, err := exerciseService.Seed(ctx); err != nil {
		logger.WithError(err).Error("Failed to seed exercise catalog")
	} else if created > 0 {
		logger.WithField("created", created).Info("Seeded exercise catalog")
	}

	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	routineHandler := handlers.NewRoutineHandler(routineService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		protected := api.Group("")
		protected.Use(middleware.NewJWTAuth(&middleware.JWTConfig{Secret: cfg.JWT.Secret}))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/check", authHandler.CheckAuth)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			protected.GET("/users/profile", userHandler.GetProfile)
			protected.PUT("/users/profile", userHandler.UpdateProfile)
			protected.GET("/users/goals", userHandler.ListGoals)
			protected.POST("/users/goals", userHandler.CreateGoal)
			protected.GET("/users/goals/:id", userHandler.GetGoal)
			protected.PUT("/users/goals/:id", userHandler.UpdateGoal)
			protected.DELETE("/users/goals/:id", userHandler.DeleteGoal)
			protected.GET("/users/weight", userHandler.ListBodyWeight)
			protected.POST("/users/weight", userHandler.LogBodyWeight)

			protected.GET("/exercises", exerciseHandler.List)
			protected.POST("/exercises", exerciseHandler.Create)
			protected.GET("/exercises/:id", exerciseHandler.Get)
			protected.PUT("/exercises/:id", exerciseHandler.Update)
			protected.DELETE("/exercises/:id", exerciseHandler.Delete)

			protected.GET("/routines", routineHandler.List)
			protected.POST("/routines", routineHandler.Create)
			protected.GET("/routines/:id", routineHandler.Get)
			protected.PUT("/routines/:id", routineHandler.Update)
			protected.DELETE("/routines/:id", routineHandler.Delete)
			protected.POST("/routines/:id/like", routineHandler.ToggleLike)

			protected.GET("/sessions", sessionHandler.List)
			protected.POST("/sessions", sessionHandler.Start)
			protected.GET("/sessions/stats", sessionHandler.Stats)
			protected.GET("/sessions/:id", sessionHandler.Get)
			protected.PUT("/sessions/:id", sessionHandler.Update)
			protected.DELETE("/sessions/:id", sessionHandler.Delete)
			protected.POST("/sessions/:id/complete", sessionHandler.Complete)
			protected.GET("/sessions/:id/sets", sessionHandler.ListSets)
			protected.POST("/sessions/:id/sets", sessionHandler.AppendSet)
			protected.GET("/sets/:set_id", sessionHandler.GetSet)
			protected.PUT("/sets/:set_id", sessionHandler.UpdateSet)
			protected.DELETE("/sets/:set_id", sessionHandler.DeleteSet)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

func init() {
	dirs := []string{"logs", "configs"}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Failed to create directory %s: %v", dir, err)
		}
	}

	configPath := "configs/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfig(configPath); err != nil {
			log.Printf("Failed to create default config: %v", err)
		}
	}
}

func createDefaultConfig(path string) error {
	defaultConfig := `server:
  port: ":8080"
  mode: "debug"
  read_timeout: 30s
  write_timeout: 30s

database:
  host: "localhost"
  port: 5432
  user: "fitlog"
  password: "fitlog"
  dbname: "fitlog"
  sslmode: "disable"
  max_open_conns: 100
  max_idle_conns: 10

redis:
  host: "localhost"
  port: 6379
  password: ""
  db: 0
  pool_size: 100
  min_idle_conns: 10

kafka:
  brokers:
    - "localhost:9092"
  topics:
    activity_events: "activity-events"

jwt:
  secret: "your-secret-key-change-in-production"
  access_expire: 24h
  refresh_expire: 168h`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
