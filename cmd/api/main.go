package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/raizapp/raizapp-backend/api/routes"
	"github.com/raizapp/raizapp-backend/internal/activities"
	"github.com/raizapp/raizapp-backend/internal/auth"
	"github.com/raizapp/raizapp-backend/internal/conversations"
	"github.com/raizapp/raizapp-backend/internal/habits"
	"github.com/raizapp/raizapp-backend/internal/insights"
	"github.com/raizapp/raizapp-backend/internal/profiles"
	"github.com/raizapp/raizapp-backend/internal/quiz"
	"github.com/raizapp/raizapp-backend/internal/statistics"
	"github.com/raizapp/raizapp-backend/pkg/auth/session"
	"github.com/raizapp/raizapp-backend/pkg/config"
	"github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/logger"
	"github.com/raizapp/raizapp-backend/pkg/metrics"
	"github.com/raizapp/raizapp-backend/pkg/migrate"
	"github.com/raizapp/raizapp-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()

	profilesService, err := profiles.NewService(profiles.ServiceParams{
		Repo:         profiles.NewRepository(gormDB),
		Logger:       logg,
		Subscription: cfg.Subscription,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profiles service", err)
		os.Exit(1)
	}

	activitiesService, err := activities.NewService(activities.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create activities service", err)
		os.Exit(1)
	}

	quizService, err := quiz.NewService(quiz.ServiceParams{
		Repo:       quiz.NewRepository(gormDB),
		Activities: activitiesService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create quiz service", err)
		os.Exit(1)
	}

	insightsService, err := insights.NewService(insights.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create insights service", err)
		os.Exit(1)
	}

	habitsService, err := habits.NewService(habits.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create habits service", err)
		os.Exit(1)
	}

	conversationsService, err := conversations.NewService(conversations.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create conversations service", err)
		os.Exit(1)
	}

	statisticsService, err := statistics.NewService(statistics.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create statistics service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Accounts:       auth.NewRepository(gormDB),
		Profiles:       profilesService,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	router := routes.NewRouter(routes.RouterParams{
		Config:          cfg,
		Logger:          logg,
		DBPinger:        dbClient,
		RedisClient:     redisClient,
		SessionChecker:  sessionManager,
		HTTPMetrics:     metrics.NewHTTPMetrics(registry),
		MetricsGatherer: registry,

		AuthService:          authService,
		ProfilesService:      profilesService,
		QuizService:          quizService,
		ActivitiesService:    activitiesService,
		InsightsService:      insightsService,
		HabitsService:        habitsService,
		ConversationsService: conversationsService,
		StatisticsService:    statisticsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
