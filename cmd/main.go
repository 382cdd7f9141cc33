package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/food_insecurity_ews/internal/app"
	"github.com/shenikar/food_insecurity_ews/internal/config"
	v1 "github.com/shenikar/food_insecurity_ews/internal/handler/http/v1"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
	"github.com/shenikar/food_insecurity_ews/pkg/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "github.com/shenikar/food_insecurity_ews/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Kenya Food Insecurity Early Warning API
// @version 1.0
// @description Crisis (IPC Phase 3+) risk prediction for the 47 counties of Kenya.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(cfg *config.Config, log *logrus.Logger) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Инициализация приемника алертов
	alerts, err := app.NewAlerts(ctx, cfg, log, metrics, clock)
	if err != nil {
		return fmt.Errorf("could not init alert sink: %w", err)
	}
	defer func() {
		if err := alerts.Close(); err != nil {
			log.WithError(err).Warn("Failed to close alert sink")
		}
	}()

	// Справочник, модель и сервис прогнозов
	svc, err := app.NewService(ctx, cfg, log, metrics, alerts.Publisher, clock)
	if err != nil {
		return err
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(svc.Prediction, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.MetricsMiddleware(metrics))
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Запуск сервера
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	// Воркер вебхуков есть только у приемника redis
	if alerts.Worker != nil {
		g.Go(func() error {
			return alerts.Worker.Run(gctx)
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
