package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Store kinds supported by the STORE environment variable.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	// Store selects the persistence backend: "memory" or "postgres".
	Store string
	DBDSN string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration

	// AdminEmails are provisioned with the ADMIN role on first login.
	AdminEmails []string

	// MonthlyCapacityHours is the assumed bookable capacity of a resource per
	// month, used as the denominator for utilization stats.
	MonthlyCapacityHours int

	UploadDir     string
	HolidayICSURL string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.Store = getEnv("STORE", StoreMemory)
	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		return nil, fmt.Errorf("STORE must be %q or %q, got %q", StoreMemory, StorePostgres, cfg.Store)
	}

	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.Store == StorePostgres && cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required when STORE=postgres")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "12h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	for _, e := range strings.Split(getEnv("ADMIN_EMAILS", ""), ",") {
		if e = strings.TrimSpace(strings.ToLower(e)); e != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, e)
		}
	}

	// 160 hours ~ a 20-day month of 8-hour days.
	cfg.MonthlyCapacityHours, err = getEnvAsInt("MONTHLY_CAPACITY_HOURS", 160)
	if err != nil {
		return nil, fmt.Errorf("invalid MONTHLY_CAPACITY_HOURS: %w", err)
	}
	if cfg.MonthlyCapacityHours <= 0 {
		return nil, fmt.Errorf("MONTHLY_CAPACITY_HOURS must be positive")
	}

	cfg.UploadDir = getEnv("UPLOAD_DIR", "./uploads")
	cfg.HolidayICSURL = getEnv("HOLIDAY_ICS_URL", "https://www.officeholidays.com/ics-clean/sri-lanka")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
