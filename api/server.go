package api

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"cpu-scheduler/config"
)

type Server struct {
	cfg     *config.SchedulerConfig
	app     *fiber.App
	handler SchedulerHandler
	logger  *slog.Logger
}

func NewServer(cfg *config.SchedulerConfig, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	s := &Server{
		cfg:     cfg,
		app:     app,
		handler: NewSchedulerHandlerImpl(cfg, logger),
		logger:  logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	s.app.Use(LoggerMiddleware(s.logger))
	s.app.Use(recover.New())
	s.app.Use(CORSMiddleware(s.cfg.AllowedOrigins))
	if s.cfg.RateLimitRPS > 0 {
		s.app.Use(RateLimitMiddleware(s.cfg.RateLimitRPS))
	}
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handler.HealthCheck)

	api := s.app.Group("/api")
	api.Get("/algorithms", s.handler.ListAlgorithms)
	api.Post("/schedule", s.handler.Schedule)

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", s.handler.FirstComeFirstServe)
		v1.Post("/srtf", s.handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", s.handler.RoundRobin)
		v1.Post("/npp", s.handler.NonPreemptivePriority)
		v1.Post("/all", s.handler.AllAlgorithms)
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		s.logger.Info("shutting down server")
		if err := s.app.ShutdownWithTimeout(10 * time.Second); err != nil {
			s.logger.Error("server forced to shutdown", "error", err)
		}
	}()

	s.logger.Info("starting scheduler api", "addr", s.cfg.Addr(), "version", Version)
	if err := s.app.Listen(s.cfg.Addr()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// App returns the fiber app (for testing).
func (s *Server) App() *fiber.App {
	return s.app
}
