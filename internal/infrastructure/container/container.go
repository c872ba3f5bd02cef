package container

import (
	"fmt"
	"time"

	"github.com/gomatri/matrimony-backend/internal/config"
	httpdelivery "github.com/gomatri/matrimony-backend/internal/delivery/http"
	"github.com/gomatri/matrimony-backend/internal/delivery/http/handler"
	"github.com/gomatri/matrimony-backend/internal/delivery/http/middleware"
	"github.com/gomatri/matrimony-backend/internal/infrastructure/database"
	"github.com/gomatri/matrimony-backend/internal/infrastructure/logger"
	"github.com/gomatri/matrimony-backend/internal/infrastructure/server"
	"github.com/gomatri/matrimony-backend/internal/job"
	"github.com/gomatri/matrimony-backend/internal/repository/postgres"
	rediscache "github.com/gomatri/matrimony-backend/internal/repository/redis"
	"github.com/gomatri/matrimony-backend/internal/usecase/address"
	"github.com/gomatri/matrimony-backend/internal/usecase/auth"
	"github.com/gomatri/matrimony-backend/internal/usecase/matchrequest"
	"github.com/gomatri/matrimony-backend/internal/usecase/membership"
	"github.com/gomatri/matrimony-backend/internal/usecase/message"
	"github.com/gomatri/matrimony-backend/internal/usecase/preference"
	"github.com/gomatri/matrimony-backend/internal/usecase/profile"
	"github.com/gomatri/matrimony-backend/internal/usecase/profileview"
	"github.com/gomatri/matrimony-backend/internal/usecase/report"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    zerolog.Logger
	DB        *sqlx.DB
	Redis     *redis.Client
	Server    *server.Server
	Scheduler *job.Scheduler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(&cfg.Logging, cfg.Server.Env)

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	viewRepo := postgres.NewProfileViewRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	requestRepo := postgres.NewMatchRequestRepository(db)
	preferenceRepo := postgres.NewPreferenceRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	sessionRepo := rediscache.NewSessionRepository(redisClient)
	membershipCache := rediscache.NewMembershipCache(redisClient, cfg.Retention.MembershipCacheTTL)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute,
		log,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		userRepo,
		log,
	)

	membershipUseCase := membership.NewMembershipUseCase(
		membershipRepo,
		profileRepo,
		membershipCache,
		log,
	)

	viewUseCase := profileview.NewProfileViewUseCase(
		viewRepo,
		profileUseCase,
		membershipUseCase,
		log,
	)

	messageUseCase := message.NewMessageUseCase(
		messageRepo,
		userRepo,
		profileRepo,
		membershipUseCase,
		log,
	)

	requestUseCase := matchrequest.NewMatchRequestUseCase(
		requestRepo,
		profileRepo,
		membershipUseCase,
		log,
	)

	preferenceUseCase := preference.NewPreferenceUseCase(
		preferenceRepo,
		profileRepo,
	)

	addressUseCase := address.NewAddressUseCase(
		addressRepo,
		userRepo,
	)

	reportUseCase := report.NewReportUseCase(
		reportRepo,
		profileUseCase,
		log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	membershipHandler := handler.NewMembershipHandler(membershipUseCase)
	viewHandler := handler.NewProfileViewHandler(viewUseCase, profileUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	requestHandler := handler.NewMatchRequestHandler(requestUseCase, profileUseCase)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUseCase)
	addressHandler := handler.NewAddressHandler(addressUseCase)
	reportHandler := handler.NewReportHandler(reportUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		membershipHandler,
		viewHandler,
		messageHandler,
		requestHandler,
		preferenceHandler,
		addressHandler,
		reportHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	// Initialize background jobs
	scheduler := job.NewScheduler(log)
	purgeJob := job.NewViewPurgeJob(viewUseCase, cfg.Retention.ViewRetentionDays, log)
	if err := scheduler.Register(cfg.Retention.PurgeCronSchedule, purgeJob); err != nil {
		return nil, fmt.Errorf("failed to register purge job: %w", err)
	}

	return &Container{
		Config:    cfg,
		Logger:    log,
		DB:        db,
		Redis:     redisClient,
		Server:    srv,
		Scheduler: scheduler,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("error closing redis")
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
