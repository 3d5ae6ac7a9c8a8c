package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken        string
	WebhookSecret   string
	PublicURL       string
	ListenAddr      string
	CredentialsFile string
	StateFile       string
	DatabaseDSN     string
	StateTTL        time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		WebhookSecret:   os.Getenv("WEBHOOK_SECRET"),
		PublicURL:       os.Getenv("PUBLIC_URL"),
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		StateFile:       getEnv("STATE_FILE", "users.json"),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET is required")
	}
	if cfg.PublicURL == "" {
		return nil, fmt.Errorf("PUBLIC_URL is required")
	}
	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS_FILE is required")
	}

	ttl, err := time.ParseDuration(getEnv("STATE_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATE_TTL: %w", err)
	}
	cfg.StateTTL = ttl

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
