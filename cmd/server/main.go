package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tradedesk.backend/internal/config"
	"tradedesk.backend/internal/infrastructure/assistant"
	"tradedesk.backend/internal/infrastructure/jobs"
	"tradedesk.backend/internal/infrastructure/models"
	"tradedesk.backend/internal/infrastructure/redisstore"
	"tradedesk.backend/internal/infrastructure/repositories"
	"tradedesk.backend/internal/infrastructure/seed"
	"tradedesk.backend/internal/interfaces/http/handlers"
	"tradedesk.backend/internal/interfaces/http/middleware"
	"tradedesk.backend/internal/usecases"
	"tradedesk.backend/pkg/crypto"
	"tradedesk.backend/pkg/jwt"
	"tradedesk.backend/pkg/logger"
	"tradedesk.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.IsSQLite() {
			return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		}
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.URL(),
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = serve
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env, cfg.Server.LogLevel)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(context.Background(), "Database ready", zap.String("driver", cfg.Database.Driver))

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	hasher := crypto.NewHasher(cfg.Security.BcryptCost)

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	referralRepo := repositories.NewReferralRepository(db)
	indicatorRepo := repositories.NewIndicatorRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Redis-backed stores
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	viewStore := redisstore.NewViewStateStore()
	confirmer := usecases.NewConfirmer(redisstore.NewConfirmationStore())

	if cfg.Seed.Enabled {
		summary, err := seed.Load(context.Background(), uow, seed.Repositories{
			Subscribers: subscriberRepo,
			Payments:    paymentRepo,
			Referrals:   referralRepo,
			Indicators:  indicatorRepo,
		}, time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info(context.Background(), "Seed finished", zap.Bool("skipped", summary.Skipped))
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(accountRepo, hasher, jwtService, sessionStore)
	resetUsecase := usecases.NewPasswordResetUsecase(accountRepo, redisstore.NewPasswordResetStore(), hasher)
	sceneUsecase := usecases.NewSceneUsecase(subscriberRepo, paymentRepo, referralRepo, indicatorRepo, viewStore)
	dashboardUsecase := usecases.NewDashboardUsecase(subscriberRepo, paymentRepo, referralRepo, indicatorRepo, viewStore)
	assistantClient := assistant.NewClient(assistant.Config{
		Endpoint: cfg.Assistant.Endpoint,
		APIKey:   cfg.Assistant.APIKey,
		Model:    cfg.Assistant.Model,
		Timeout:  cfg.Assistant.Timeout,
	})
	assistantUsecase := usecases.NewAssistantUsecase(assistantClient, redisstore.NewTranscriptStore(), cfg.Assistant.Timeout)

	// Start background jobs
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	expiryJob := jobs.NewSubscriptionExpiryJob(subscriberRepo, cfg.Jobs.ExpiryInterval)
	go expiryJob.Start(ctx)
	defer expiryJob.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:          handlers.NewAuthHandler(authUsecase),
		passwordResetHandler: handlers.NewPasswordResetHandler(resetUsecase),
		sceneHandler:         handlers.NewSceneHandler(sceneUsecase),
		subscriberHandler:    handlers.NewSubscriberHandler(usecases.NewSubscriberUsecase(subscriberRepo, confirmer)),
		paymentHandler:       handlers.NewPaymentHandler(usecases.NewPaymentUsecase(paymentRepo, confirmer)),
		referralHandler:      handlers.NewReferralHandler(usecases.NewReferralUsecase(referralRepo, confirmer)),
		indicatorHandler:     handlers.NewIndicatorHandler(usecases.NewIndicatorUsecase(indicatorRepo, confirmer)),
		dashboardHandler:     handlers.NewDashboardHandler(dashboardUsecase),
		shellHandler:         handlers.NewShellHandler(usecases.NewPreferenceUsecase(accountRepo), sceneUsecase),
		assistantHandler:     handlers.NewAssistantHandler(assistantUsecase),
		authMiddleware:       middleware.AuthMiddleware(jwtService, authUsecase),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Registered route", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info(ctx, "TradeDesk backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(ctx, srv); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
