package main

import (
	"catalog/infra/http"
	"catalog/infra/rabbitmq"
	"catalog/infra/store"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"catalog/pkg/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	appConfig := config.MustRead()

	log, err := logger.Init(appConfig.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.L().Info("app starting...",
		zap.String("env", appConfig.AppEnv),
		zap.String("dbDriver", appConfig.DBDriver))

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repository, err := store.Open(connectCtx, appConfig)
	cancel()
	if err != nil {
		zap.L().Fatal("Failed to open database", zap.Error(err))
	}

	var publisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		rabbitPublisher, err := rabbitmq.NewRabbitMQPublisher(
			appConfig.RabbitMQURL,
			appConfig.ServiceName,
			events.CategoryExchange,
			events.ProductExchange,
		)
		if err != nil {
			zap.L().Warn("Event publishing disabled", zap.Error(err))
		} else {
			publisher = events.NewAsyncPublisher(rabbitPublisher)
		}
	} else {
		zap.L().Info("RABBITMQ_URL not set, event publishing disabled")
	}

	app := http.NewApp(repository, publisher)

	// Start server in a goroutine
	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app)

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			zap.L().Error("Error closing event publisher", zap.Error(err))
		}
	}
	if err := repository.Close(); err != nil {
		zap.L().Error("Error closing database", zap.Error(err))
	}
}

func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}
