// Package store picks the storage driver named by DB_DRIVER.
package store

import (
	"catalog/app"
	"catalog/infra/postgres"
	"catalog/infra/sqlite"
	"catalog/pkg/config"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Open connects to the configured database and brings its schema up to date.
func Open(ctx context.Context, appConfig *config.AppConfig) (app.Repository, error) {
	switch appConfig.DBDriver {
	case config.DriverPostgres:
		repository, err := postgres.NewPgRepository(ctx, appConfig.PostgresDSN())
		if err != nil {
			return nil, err
		}
		if err := repository.Migrate(ctx); err != nil {
			_ = repository.Close()
			return nil, err
		}
		zap.L().Info("Connected to postgres",
			zap.String("host", appConfig.PostgresHost),
			zap.String("database", appConfig.PostgresDatabase))
		return repository, nil

	case config.DriverSQLite:
		repository, err := sqlite.NewRepository(appConfig.SQLitePath)
		if err != nil {
			return nil, err
		}
		zap.L().Info("Opened sqlite database", zap.String("path", appConfig.SQLitePath))
		return repository, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", appConfig.DBDriver)
	}
}
