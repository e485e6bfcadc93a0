package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/route-planner/internal/config"
	"github.com/route-planner/internal/delivery/http/handler"
	"github.com/route-planner/internal/delivery/http/middleware"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routeHandler      *handler.RouteHandler
	preferenceHandler *handler.PreferenceHandler
	historyHandler    *handler.HistoryHandler
	geocodeHandler    *handler.GeocodeHandler
	healthHandler     *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	preferenceHandler *handler.PreferenceHandler,
	historyHandler *handler.HistoryHandler,
	geocodeHandler *handler.GeocodeHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName: "Route Planner",
		// провайдер маршрутов отвечает до 10 секунд
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		routeHandler:      routeHandler,
		preferenceHandler: preferenceHandler,
		historyHandler:    historyHandler,
		geocodeHandler:    geocodeHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	api.Post("/routes/plan", s.routeHandler.Plan)
	api.Get("/geocode", s.geocodeHandler.Geocode)

	api.Get("/preferences/:profile_id", s.preferenceHandler.Get)
	api.Put("/preferences/:profile_id", s.preferenceHandler.Save)

	api.Get("/history/:profile_id", s.historyHandler.List)
}

// App возвращает fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки роутинга и паники в формате utils.ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			logger.Warn("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", fe.Code),
				zap.Error(err),
			)
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpErrorCode(fe.Code), fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return errors.ErrInternalServer.Code
	}
	return errors.ErrInvalidRequest.Code
}
