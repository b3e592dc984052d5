package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viggen-group/viggenweb/internal/api/handlers"
	"github.com/viggen-group/viggenweb/internal/api/middleware"
	"github.com/viggen-group/viggenweb/internal/config"
	"github.com/viggen-group/viggenweb/internal/logging"
	"github.com/viggen-group/viggenweb/internal/server/routes"
	"github.com/viggen-group/viggenweb/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable gin's default logger; the shared logger handles requests
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, services, handlers, and routes.
func (s *Server) Init() {
	// Global middleware
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger(s.cfg.TrustProxyHeaders))
	s.router.Use(middleware.CORS(s.cfg.Environment, s.cfg.AllowedOrigins))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.Throttle(middleware.ThrottleConfig{
		RPS:   s.cfg.ThrottleRPS,
		Burst: s.cfg.ThrottleBurst,
	}))

	// Services
	mailer := service.NewSMTPMailer(
		s.cfg.SMTPURL,
		s.cfg.NoreplyEmail,
		s.cfg.ContactRecipient,
		s.cfg.MailTimeout,
	)

	// Per-route middleware
	validationMiddleware := middleware.NewValidationMiddleware()
	contactRateLimit := middleware.RateLimitPerClient(middleware.RateLimitConfig{
		Max:               s.cfg.RateLimitMax,
		Window:            s.cfg.RateLimitWindow,
		TrustProxyHeaders: s.cfg.TrustProxyHeaders,
	})

	// Handlers
	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(s.cfg.Environment),
		Contact: handlers.NewContactHandler(mailer, validationMiddleware.Validator()),
		Content: handlers.NewContentHandler(),
	}

	m := &routes.Middleware{
		Validation:       validationMiddleware,
		ContactRateLimit: contactRateLimit,
	}

	routes.Setup(s.router, h, m)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	logger.Info("Server listening on :%s (%s)", s.cfg.Port, s.cfg.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-quit:
		logger.Info("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
