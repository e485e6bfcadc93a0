package main

// @title Route Planner API
// @version 1.0.0
// @description Планирование маршрутов общественного транспорта с учётом загруженности вагонов и личных предпочтений.
// @description
// @description Основные возможности:
// @description - Построение маршрута между адресами или координатами с оценкой по профилю предпочтений
// @description - Пеший маршрут по прямой, если подходящих вариантов нет
// @description - Геокодирование адресов и названий мест
// @description - Профили предпочтений и история маршрутов

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/route-planner/docs"
	"github.com/route-planner/internal/config"
	httpDelivery "github.com/route-planner/internal/delivery/http"
	"github.com/route-planner/internal/delivery/http/handler"
	"github.com/route-planner/internal/infrastructure/kakao"
	"github.com/route-planner/internal/infrastructure/odsay"
	"github.com/route-planner/internal/pkg/logger"
	"github.com/route-planner/internal/render"
	"github.com/route-planner/internal/repository/cache"
	"github.com/route-planner/internal/repository/postgres"
	redisRepo "github.com/route-planner/internal/repository/redis"
	"github.com/route-planner/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "route-planner-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Planner")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Migrations and health checks
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	prefRepo := postgres.NewPreferenceRepository(db, log)
	historyRepo := postgres.NewHistoryRepository(db, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// Внешние провайдеры
	transitRepo := odsay.NewODsayClient(&cfg.ODsay, log)
	geocoder := kakao.NewKakaoClient(&cfg.Kakao, log)
	renderer := render.NewGeoJSONRenderer()

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	geolocationUC := usecase.NewGeolocationUseCase(
		geocoder,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	preferenceUC := usecase.NewPreferenceUseCase(
		prefRepo,
		log,
		cfg.Planner.DefaultProfileID,
	)

	routeUC := usecase.NewRouteUseCase(
		geolocationUC,
		transitRepo,
		cacheRepo,
		preferenceUC,
		streamRepo,
		renderer,
		log,
		cfg.Cache.RouteCacheTTL,
	)

	historyUC := usecase.NewHistoryUseCase(historyRepo, log, cfg.Planner.HistoryLimit)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUC, log)
	historyHandler := handler.NewHistoryHandler(historyUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geolocationUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		preferenceHandler,
		historyHandler,
		geocodeHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
