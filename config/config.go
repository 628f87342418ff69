package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port            string
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	}
	Database struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string `mapstructure:"sslmode"`
	}
	JWT struct {
		Secret     string
		Expiration time.Duration
	}
	Media struct {
		URL  string
		Root string
	}
	Admin struct {
		Username string
		Password string
	}
	Log struct {
		Level  string
		Format string
	}
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	}
}

const defaultJWTSecret = "your-secret-key-change-this-in-production"

// Load reads config/config.yaml when present and overlays environment
// variables. The variable names of the original deployment (PORT, DB_HOST,
// JWT_SECRET, ...) are bound explicitly.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Info("config file not found, using environment and defaults")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.JWT.Secret == defaultJWTSecret {
		slog.Warn("JWT_SECRET not set, using the built-in development secret")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "trickhub")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("jwt.secret", defaultJWTSecret)
	v.SetDefault("jwt.expiration", 24*time.Hour)

	v.SetDefault("media.url", "/media/")
	v.SetDefault("media.root", "media")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func bindEnv(v *viper.Viper) {
	bindings := map[string]string{
		"server.port":             "PORT",
		"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
		"database.driver":         "DB_DRIVER",
		"database.dsn":            "DB_DSN",
		"database.host":           "DB_HOST",
		"database.port":           "DB_PORT",
		"database.user":           "DB_USER",
		"database.password":       "DB_PASSWORD",
		"database.name":           "DB_NAME",
		"database.sslmode":        "DB_SSLMODE",
		"jwt.secret":              "JWT_SECRET",
		"jwt.expiration":          "JWT_EXPIRATION",
		"media.url":               "MEDIA_URL",
		"media.root":              "MEDIA_ROOT",
		"admin.username":          "ADMIN_USERNAME",
		"admin.password":          "ADMIN_PASSWORD",
		"log.level":               "LOG_LEVEL",
		"log.format":              "LOG_FORMAT",
		"cors.allowed_origins":    "CORS_ALLOWED_ORIGINS",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}
