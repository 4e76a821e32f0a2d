package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type AppConfig struct {
	Port             string `mapstructure:"PORT"`
	AppEnv           string `mapstructure:"APP_ENV"`
	DBDriver         string `mapstructure:"DB_DRIVER"`
	PostgresUsername string `mapstructure:"POSTGRES_USERNAME"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDatabase string `mapstructure:"POSTGRES_DATABASE"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`
	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`
	RabbitMQURL      string `mapstructure:"RABBITMQ_URL"`
	ServiceName      string `mapstructure:"SERVICE_NAME"`
	GRPCPort         string `mapstructure:"GRPC_PORT"`
}

var envKeys = []string{
	"PORT",
	"APP_ENV",
	"DB_DRIVER",
	"POSTGRES_USERNAME",
	"POSTGRES_PASSWORD",
	"POSTGRES_DATABASE",
	"POSTGRES_SSLMODE",
	"POSTGRES_HOST",
	"POSTGRES_PORT",
	"SQLITE_PATH",
	"RABBITMQ_URL",
	"SERVICE_NAME",
	"GRPC_PORT",
}

// Read loads .env from the working directory when present, then lets the
// process environment override it.
func Read() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	setDefaults(v)

	var appConfig AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	appConfig.DBDriver = strings.ToLower(strings.TrimSpace(appConfig.DBDriver))
	switch appConfig.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", appConfig.DBDriver)
	}

	return &appConfig, nil
}

// MustRead is Read for process entry points.
func MustRead() *AppConfig {
	appConfig, err := Read()
	if err != nil {
		panic(fmt.Errorf("fatal error reading config: %w", err))
	}
	return appConfig
}

func (c *AppConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// PostgresDSN renders the lib/pq keyword/value connection string.
func (c *AppConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUsername, c.PostgresPassword, c.PostgresDatabase, c.PostgresSSLMode,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("SQLITE_PATH", "catalog.db")
	v.SetDefault("SERVICE_NAME", "catalog")
	v.SetDefault("GRPC_PORT", "9090")
}
