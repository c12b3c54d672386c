package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type S3Config struct {
	Region  string
	Bucket  string
	BaseURL string // public base URL (CDN or bucket endpoint) for uploaded objects
}

type InferenceConfig struct {
	URL     string
	Timeout time.Duration
}

// Config holds everything the service needs at startup. It is built once in
// main and passed to constructors; nothing reads the environment after Load.
type Config struct {
	DB        DBConfig
	Auth      AuthConfig
	S3        S3Config
	Inference InferenceConfig
	Timezone  *time.Location // location for all calendar-date bucketing
	Port      string
}

// Load reads configuration from the environment, with .env support. Missing
// required variables are collected and reported together.
func Load(log *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system env")
	}

	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	optional := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		DB: DBConfig{
			Host:     required("DB_HOST"),
			Port:     optional("DB_PORT", "5432"),
			User:     required("DB_USER"),
			Password: required("DB_PASSWORD"),
			Name:     required("DB_NAME"),
			SSLMode:  optional("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: required("JWT_SECRET"),
		},
		S3: S3Config{
			Region:  required("S3_REGION"),
			Bucket:  required("S3_BUCKET"),
			BaseURL: required("CDN_BASE_URL"),
		},
		Inference: InferenceConfig{
			URL: required("INFERENCE_URL"),
		},
		Port: optional("PORT", "8080"),
	}

	ttl, err := time.ParseDuration(optional("JWT_EXPIRY", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY: %w", err)
	}
	cfg.Auth.TokenTTL = ttl

	timeout, err := time.ParseDuration(optional("INFERENCE_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid INFERENCE_TIMEOUT: %w", err)
	}
	cfg.Inference.Timeout = timeout

	loc, err := time.LoadLocation(optional("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	cfg.Timezone = loc

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
