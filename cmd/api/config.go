package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	sourceFile     = "file"
	sourcePostgres = "postgres"
)

type Config struct {
	Addr           string        `validate:"required"`
	Source         string        `validate:"oneof=file postgres"`
	CatalogPath    string        `validate:"required_if=Source file"`
	CatalogName    string        `validate:"required_if=Source postgres"`
	DatabaseDSN    string        `validate:"required_if=Source postgres"`
	PageSize       int           `validate:"gt=0"`
	ShowSongs      int           `validate:"gte=0"`
	RateLimitRPS   float64       `validate:"gt=0"`
	RateLimitBurst int           `validate:"gt=0"`
	AllowedOrigins []string      `validate:"dive,url"`
	LoadTimeout    time.Duration `validate:"gt=0"`
	EnableHSTS     bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() (Config, error) {
	cfg := Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		Source:         getEnv("CATALOG_SOURCE", sourceFile),
		CatalogPath:    getEnv("CATALOG_PATH", "bands_full.json"),
		CatalogName:    getEnv("CATALOG_NAME", "default"),
		DatabaseDSN:    os.Getenv("DB_DSN"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		EnableHSTS:     os.Getenv("ENABLE_HSTS") == "true",
	}

	var err error
	if cfg.PageSize, err = getEnvInt("PAGE_SIZE", 3); err != nil {
		return Config{}, err
	}
	if cfg.ShowSongs, err = getEnvInt("SHOW_SONGS", 8); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 40); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.LoadTimeout, err = time.ParseDuration(getEnv("LOAD_TIMEOUT", "2s")); err != nil {
		return Config{}, fmt.Errorf("invalid LOAD_TIMEOUT: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
