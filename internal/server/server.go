package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bank-console/internal/config"
	"bank-console/internal/database"
	"bank-console/internal/handlers"
	"bank-console/internal/middleware"
	"bank-console/internal/models"
	"bank-console/internal/repositories"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Server is the console API process: echo, the session store, the audit
// trail and the background jobs.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo

	db        *database.DB
	redis     *redis.Client
	limiter   *middleware.RateLimiter
	scheduler *cron.Cron

	registry *services.ConsoleRegistry
	sessions services.SessionServiceInterface
	audit    services.AuditServiceInterface
	breaker  services.CircuitBreakerInterface
	metrics  services.MetricsRecorderInterface
}

// New wires every dependency and registers the routes. Nothing listens until
// Run is called.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		limiter: middleware.NewRateLimiter(cfg.Security),
	}

	reg := prometheus.NewRegistry()
	s.metrics = services.NewPrometheusMetrics(reg)

	if cfg.Database.AuditEnabled {
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, fmt.Errorf("open audit store: %w", err)
		}
		s.db = db
		s.audit = services.NewAuditService(repositories.NewAuditLogRepository(db.DB))
	} else {
		logger.Warn("audit trail disabled")
	}

	sessionRepo, err := s.sessionRepository()
	if err != nil {
		s.Close()
		return nil, err
	}

	consoleLogger := services.NewConsoleLogger(logger)
	s.breaker = services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Backend.CircuitBreakerThreshold,
		ResetTimeout:    cfg.Backend.CircuitBreakerCooldown,
		HalfOpenMaxSucc: 1,
		OnStateChange: func(from, to models.CircuitBreakerState) {
			consoleLogger.LogCircuitBreakerStateChange(context.Background(), "backend", from.String(), to.String())
			s.metrics.RecordGauge("circuit_breaker_state", float64(to), map[string]string{"service": "backend"})
		},
	})

	backend := services.NewBackendClient(&cfg.Backend, s.breaker, s.metrics, logger)
	s.sessions = services.NewSessionService(
		backend,
		services.NewTokenService(),
		sessionRepo,
		s.audit,
		s.metrics,
		cfg.Console.SessionTTL,
		logger,
	)
	s.registry = services.NewConsoleRegistry(services.ConsoleDeps{
		Backend:  backend,
		Audit:    s.audit,
		Logger:   consoleLogger,
		Metrics:  s.metrics,
		PageSize: cfg.Console.PageSize,
		AlertTTL: cfg.Console.AlertTTL,
	})

	s.echo = s.newEcho(reg)
	s.routes()

	return s, nil
}

func (s *Server) sessionRepository() (repositories.SessionRepositoryInterface, error) {
	if !s.cfg.Redis.Enabled() {
		s.logger.Info("using in-memory session store")
		return repositories.NewMemorySessionRepository(), nil
	}

	client, err := repositories.NewRedisClient(&s.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect session store: %w", err)
	}
	s.redis = client
	s.logger.Info("using redis session store", "addr", s.cfg.Redis.Addr)
	return repositories.NewRedisSessionRepository(client), nil
}

func (s *Server) newEcho(reg *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: s.cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			handlers.SessionHeader,
		},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(s.limiter.Middleware())

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, reg}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})))

	return e
}

func (s *Server) routes() {
	var db *gorm.DB
	if s.db != nil {
		db = s.db.DB
	}
	health := handlers.NewHealthCheckHandler(db, s.breaker, s.sessions)
	s.echo.GET("/health", health.HealthCheck)

	docs := handlers.NewDocsHandler(s.cfg.Server.DocsDir)
	s.echo.GET("/docs", docs.Page)
	s.echo.GET("/docs/openapi.json", docs.OpenAPI)

	requireSession := middleware.RequireSession(s.sessions, s.registry)
	api := s.echo.Group("/api/v1")

	auth := handlers.NewAuthHandler(s.sessions, s.registry)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/signup", auth.Signup)
	api.POST("/auth/forgot-password", auth.ForgotPassword)
	api.POST("/auth/reset-password", auth.ResetPassword)
	api.POST("/auth/logout", auth.Logout, requireSession)
	api.GET("/auth/landing", auth.Landing, middleware.LoadSession(s.sessions))

	adminEntities := append([]models.EntityType{models.EntityAudit}, models.AdminEntities...)
	admin := handlers.NewConsoleHandler(adminEntities...)
	api.GET("/console/alert", admin.Alert, requireSession)
	api.DELETE("/console/alert", admin.DismissAlert, requireSession)

	console := api.Group("/console", requireSession, middleware.RequireAdmin())
	rows := handlers.NewAdminHandler()
	console.GET("/accounts/search/:userId", rows.SearchAccount)
	console.DELETE("/accounts/:id", rows.DeleteAccount)
	console.PATCH("/accounts/:userId/block", rows.ToggleBlock)
	console.POST("/loans/:id/approve", rows.ApproveLoan)
	console.POST("/loans/details", rows.LoanDetails)

	editor := handlers.NewEditorHandler()
	console.POST("/editor/search", editor.Search)
	console.GET("/editor", editor.Get)
	console.PATCH("/editor", editor.Patch)
	console.PUT("/editor/profile", editor.SaveProfile)
	console.PUT("/editor/balance", editor.SaveBalance)
	console.POST("/editor/balance/refresh", editor.RefreshBalance)
	console.DELETE("/editor/:id", editor.Delete)
	console.DELETE("/editor", editor.Cancel)

	registerListRoutes(console, admin)

	audit := handlers.NewAuditHandler(s.audit)
	auditGroup := api.Group("/audit", requireSession, middleware.RequireAdmin())
	auditGroup.GET("", audit.List)
	auditGroup.GET("/sessions/:sessionId", audit.SessionHistory)
	auditGroup.GET("/:entity/:id", audit.ResourceHistory)

	dashboard := api.Group("/dashboard", requireSession)
	actions := handlers.NewDashboardHandler()
	dashboard.POST("/repayments", actions.CreateRepayment)
	dashboard.POST("/transfer", actions.Transfer)
	dashboard.GET("/loans", actions.Loan)
	dashboard.DELETE("/loans", actions.ResetLoan)
	dashboard.POST("/loans/check", actions.CheckLoan)
	dashboard.POST("/loans/:id/apply", actions.ApplyLoan)

	registerListRoutes(dashboard, handlers.NewConsoleHandler(models.DashboardEntities...))
}

func registerListRoutes(g *echo.Group, h *handlers.ConsoleHandler) {
	g.POST("/:entity/fetch", h.Fetch)
	g.GET("/:entity", h.View)
	g.POST("/:entity/next", h.Next)
	g.POST("/:entity/prev", h.Prev)
	g.GET("/:entity/export", h.Export)
}

// Handler exposes the routed echo instance
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests and stops
// the background jobs.
func (s *Server) Run(ctx context.Context) error {
	jobs, stopJobs := context.WithCancel(ctx)
	defer stopJobs()

	go s.limiter.Cleanup(jobs)
	if err := s.startScheduler(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("console API listening", "addr", s.cfg.Server.Addr(), "env", s.cfg.Server.Environment)
		if err := s.echo.Start(s.cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down console API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// startScheduler registers the audit retention job when there is anything
// to prune.
func (s *Server) startScheduler() error {
	if s.audit == nil || s.cfg.Database.AuditRetention <= 0 {
		return nil
	}

	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.cfg.Database.AuditPruneSchedule, func() {
		s.PruneAudit(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid audit prune schedule %q: %w", s.cfg.Database.AuditPruneSchedule, err)
	}
	s.scheduler.Start()
	s.logger.Info("audit retention job scheduled",
		"schedule", s.cfg.Database.AuditPruneSchedule,
		"retention", s.cfg.Database.AuditRetention,
	)
	return nil
}

// PruneAudit drops audit entries older than the configured retention
func (s *Server) PruneAudit(ctx context.Context) {
	if s.audit == nil || s.cfg.Database.AuditRetention <= 0 {
		return
	}
	n, err := s.audit.Prune(ctx, s.cfg.Database.AuditRetention)
	if err != nil {
		s.logger.ErrorContext(ctx, "audit prune failed", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "audit entries pruned", "deleted", n)
}

// Close releases the audit store and the session store connections
func (s *Server) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("close redis", "error", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Warn("close audit store", "error", err)
		}
	}
}
