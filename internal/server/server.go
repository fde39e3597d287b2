// Package server contains HTTP and WebSocket handlers for the Ask API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	_ "sangha/docs" // swagger docs
	"sangha/internal/cache"
	"sangha/internal/config"
	"sangha/internal/database"
	"sangha/internal/featureflags"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/notifications"
	"sangha/internal/repository"
	"sangha/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc
	notifier       *notifications.Notifier
	hub            *notifications.Hub
	featureFlags   *featureflags.Manager

	authService         *service.AuthService
	userService         *service.UserService
	categoryService     *service.CategoryService
	questionService     *service.QuestionService
	answerService       *service.AnswerService
	voteService         *service.VoteService
	followService       *service.FollowService
	reputationService   *service.ReputationService
	notificationService *service.NotificationService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// A nil Redis client disables caching, rate limiting and realtime delivery.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	overrides, err := config.ParseReputationPoints(cfg.ReputationPoints)
	if err != nil {
		return nil, err
	}
	points, err := service.DefaultPointTable().WithOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("reputation points: %w", err)
	}

	middleware.InitMiddleware(cfg)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("sangha-ask"),
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}

	// publisher must remain a nil interface when Redis is absent.
	var publisher service.Publisher
	if redisClient != nil {
		s.notifier = notifications.NewNotifier(redisClient)
		s.hub = notifications.NewHub()
		publisher = s.notifier
	}

	repos := repository.NewRepositories(db)
	uow := repository.NewUnitOfWork(db)

	s.reputationService = service.NewReputationService(repos.Reputations, repos.Users, points)
	s.voteService = service.NewVoteService(uow, repos.Votes, repos.Questions, repos.Answers, s.reputationService)
	s.followService = service.NewFollowService(repos.Follows, repos.Users, repos.Categories, repos.Questions)
	s.notificationService = service.NewNotificationService(repos.Notifications, repos.Follows, repos.Users,
		publisher, s.featureFlags, cfg.FanoutBatchSize)
	s.questionService = service.NewQuestionService(uow, repos.Questions, repos.Answers, repos.Categories,
		s.voteService, s.reputationService, s.notificationService)
	s.answerService = service.NewAnswerService(uow, repos.Answers, s.reputationService, s.notificationService)
	s.authService = service.NewAuthService(repos.Users, cfg.JWTSecret)
	s.userService = service.NewUserService(repos.Users, repos.Follows, s.reputationService)
	s.categoryService = service.NewCategoryService(repos.Categories, repos.Users)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Propagates request, user and trace IDs into the logger context.
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS must run before anything that can short-circuit so error responses carry
	// the headers too.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (300 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/swagger/*", swagger.HandlerDefault)
	api.Get("/feature-flags", middleware.OptionalAuth, s.GetFeatureFlags)

	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 5, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)
	auth.Get("/me", middleware.AuthRequired, s.Me)

	// Public reads personalise vote flags when a session is present.
	public := api.Group("", middleware.OptionalAuth)
	public.Get("/categories", s.GetCategories)
	public.Get("/categories/:slug", s.GetCategory)
	public.Get("/questions", s.GetQuestions)
	public.Get("/questions/:id/votes", s.GetQuestionVotes)
	public.Get("/questions/:id", s.GetQuestion)
	public.Get("/answers/:id/votes", s.GetAnswerVotes)
	public.Get("/reputation/leaderboard", s.GetLeaderboard)
	public.Get("/reputation/:userId/history", s.GetReputationHistory)
	public.Get("/reputation/:userId", s.GetReputation)
	public.Get("/users/:id/followers", s.GetUserFollowers)
	public.Get("/users/:id/following", s.GetUserFollowing)
	public.Get("/users/:id", s.GetUserProfile)

	protected := api.Group("", middleware.AuthRequired)
	voteLimit := middleware.RateLimit(s.redis, 60, time.Minute, "vote")
	followLimit := middleware.RateLimit(s.redis, 30, time.Minute, "follow")

	protected.Post("/categories", s.CreateCategory)
	protected.Post("/categories/:id/follow", followLimit, s.FollowCategory)
	protected.Post("/categories/:id/unfollow", followLimit, s.UnfollowCategory)

	protected.Post("/questions", middleware.RateLimit(s.redis, 10, 5*time.Minute, "ask"), s.CreateQuestion)
	protected.Post("/questions/:id/upvote", voteLimit, s.voteHandler(models.VoteTargetQuestion, models.VoteUp))
	protected.Post("/questions/:id/downvote", voteLimit, s.voteHandler(models.VoteTargetQuestion, models.VoteDown))
	protected.Post("/questions/:id/follow", followLimit, s.FollowQuestion)
	protected.Post("/questions/:id/unfollow", followLimit, s.UnfollowQuestion)
	protected.Post("/questions/:id/answers", middleware.RateLimit(s.redis, 20, 5*time.Minute, "answer"), s.CreateAnswer)
	protected.Delete("/questions/:id", s.DeleteQuestion)

	protected.Post("/answers/:id/upvote", voteLimit, s.voteHandler(models.VoteTargetAnswer, models.VoteUp))
	protected.Post("/answers/:id/downvote", voteLimit, s.voteHandler(models.VoteTargetAnswer, models.VoteDown))
	protected.Delete("/answers/:id", s.DeleteAnswer)

	protected.Post("/follow/:id/follow", followLimit, s.FollowUser)
	protected.Post("/follow/:id/unfollow", followLimit, s.UnfollowUser)

	// Static segments before /:id.
	notifs := protected.Group("/notifications")
	notifs.Get("/", s.GetNotifications)
	notifs.Get("/unread-count", s.GetUnreadCount)
	notifs.Patch("/read-all", s.MarkAllNotificationsRead)
	notifs.Patch("/:id/read", s.MarkNotificationRead)

	ws := api.Group("/ws", middleware.AuthRequired)
	ws.Get("/notifications", s.WebsocketHandler())
}

// LivenessCheck handles liveness probe requests
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Router /health/live [get]
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
// @Summary Readiness probe
// @Description Pings the database and Redis.
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string}
// @Router /health/ready [get]
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// NewApp builds the Fiber app with middleware and routes but does not listen.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Sangha Ask API",
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return models.RespondWithError(c, fe.Code, models.NewBadRequestError(fe.Message))
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	s.app = s.NewApp()

	if s.notifier != nil && s.hub != nil {
		go func() {
			if err := s.hub.StartWiring(s.shutdownCtx, s.notifier); err != nil {
				middleware.Logger.Error("failed to start hub wiring",
					slog.String("hub", s.hub.Name()), slog.String("error", err.Error()))
			}
		}()
	}

	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if s.hub != nil {
		if err := s.hub.Shutdown(ctx); err != nil {
			middleware.Logger.Error("error shutting down hub", slog.String("error", err.Error()))
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
