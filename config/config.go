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

// Config is built once at startup and passed into the handlers.
// Request-handling code never reads the environment directly.
type Config struct {
	MongoURI        string
	DBName          string
	JWTSecret       string
	JWTExpiry       time.Duration
	CookieExpiry    time.Duration
	FrontendURL     string
	Env             string
	GCSBucket       string
	GCSCredentials  string
	StripeSecretKey string
	Port            string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the .env file (if present) and the environment.
// A missing JWT_SECRET is an error: tokens signed with a defaulted
// secret would be forgeable.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		MongoURI:        getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:          getEnvOrDefault("DATABASE_NAME", "bookstay"),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTExpiry:       getDurationEnv("JWT_EXPIRES_IN_MINUTES", 60, time.Minute),
		CookieExpiry:    getDurationEnv("JWT_COOKIE_EXPIRES_IN", 60, time.Minute),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		Env:             getEnvOrDefault("APP_ENV", "development"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
		GCSCredentials:  os.Getenv("CREDENTIALS_FILE_LOCATION"),
		StripeSecretKey: os.Getenv("STRIPE_API_KEY"),
		Port:            getEnvOrDefault("PORT", "8080"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
