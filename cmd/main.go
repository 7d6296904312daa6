package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/shenikar/ambulance_dispatch_system/internal/app"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	v1 "github.com/shenikar/ambulance_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/ambulance_dispatch_system/internal/notify"
	"github.com/shenikar/ambulance_dispatch_system/pkg/logger"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/ambulance_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ambulance Dispatch API
// @version 1.0
// @description Emergency ambulance dispatch engine with ledger-anchored assignments.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище, реестр, блокировки и издатели
	dispatcher, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize dispatcher: %v", err)
	}
	defer dispatcher.Close()

	// Воркер вебхуков читает очередь событий назначения
	if cfg.WebhookURL != "" {
		webhookWorker := notify.NewWebhookWorker(dispatcher.RedisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatcher.Service, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(v1.RateLimitMiddleware(v1.NewIPRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	cancel() // останавливаем воркер до закрытия Redis

	log.Info("Server gracefully stopped")
}
