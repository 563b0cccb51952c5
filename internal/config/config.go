package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"   // Local file database (default)
	DatabaseDriverPostgres DatabaseDriver = "postgres" // Requires DATABASE_DSN
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		Metrics
	}

	HTTP struct {
		Port int32 `validate:"min=1,max=65535"`
		Host string
	}
	Global struct {
		Environment              string `validate:"oneof=development staging production test"`
		ShutdownTimeoutInSeconds int    `validate:"min=0"`
	}
	Database struct {
		Driver   DatabaseDriver `validate:"oneof=sqlite postgres"`
		Path     string         `validate:"required_if=Driver sqlite"`
		DSN      string         `validate:"required_if=Driver postgres"`
		LogLevel string         `validate:"oneof=silent error warn info"`
	}
	Log struct {
		Level      string `validate:"oneof=trace debug info warn error"`
		Format     string `validate:"oneof=console json"`
		File       string // Rotated with lumberjack when set
		MaxSizeMB  int    `validate:"min=1"`
		MaxBackups int    `validate:"min=0"`
		MaxAgeDays int    `validate:"min=0"`
	}
	Metrics struct {
		Enabled bool
	}
)

var validate = validator.New()

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return c.Global.Environment == "production"
}

// Validate fails fast on configuration the service cannot start with.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))
		switch e.Tag() {
		case "required", "required_if":
			errs = append(errs, fmt.Sprintf("%s is required", field))
		case "oneof":
			errs = append(errs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "min":
			errs = append(errs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			errs = append(errs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			errs = append(errs, fmt.Sprintf("%s failed validation: %s", field, e.Tag()))
		}
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// NewConfig reads configuration from the environment, loading a .env file
// from the working directory first when one exists.
func NewConfig() *Config {
	// Missing .env is the normal case outside local development
	_ = godotenv.Load()

	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("database_driver", string(DatabaseDriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 28)

	v.SetDefault("metrics_enabled", true)

	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			Environment:              strings.ToLower(v.GetString("APP_ENV")),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   DatabaseDriver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: strings.ToLower(v.GetString("DATABASE_LOG_LEVEL")),
		},
		Log: Log{
			Level:      strings.ToLower(v.GetString("LOG_LEVEL")),
			Format:     strings.ToLower(v.GetString("LOG_FORMAT")),
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}
}
