package main

import (
	"catalog/infra/grpc"
	"catalog/infra/store"
	"catalog/pkg/config"
	"catalog/pkg/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

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

	zap.L().Info("Catalog gRPC service starting...")

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repository, err := store.Open(connectCtx, appConfig)
	cancel()
	if err != nil {
		zap.L().Fatal("Failed to open database", zap.Error(err))
	}
	defer repository.Close()

	grpcServer, err := grpc.NewServer(appConfig.GRPCPort)
	if err != nil {
		zap.L().Fatal("failed to create grpc server", zap.Error(err))
	}

	grpcServer.RegisterCatalogService(grpc.NewCatalogService(repository))

	zap.L().Info("starting gRPC server...", zap.String("port", appConfig.GRPCPort))
	go func() {
		if err := grpcServer.Start(); err != nil {
			zap.L().Error("failed to start grpc server", zap.Error(err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(grpcServer)
}

func gracefulShutdown(grpcServer *grpc.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	grpcServer.GracefulStop()

	zap.L().Info("Server gracefully stopped")
}
