package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	AllowedUsers []int64
	DataFile     string
	PhotoDir     string
	HealthAddr   string
	Webhook      WebhookConfig
}

// WebhookConfig holds optional webhook delivery settings.
// When URL is empty the bot falls back to long-polling.
type WebhookConfig struct {
	URL    string
	Listen string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		DataFile:   getEnv("DATA_FILE", "db.json"),
		PhotoDir:   getEnv("PHOTO_DIR", "photos"),
		HealthAddr: getEnv("HEALTH_ADDR", ":8080"),
		Webhook: WebhookConfig{
			URL:    os.Getenv("WEBHOOK_URL"),
			Listen: getEnv("WEBHOOK_LISTEN", ":8443"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	users, err := parseAllowedUsers(os.Getenv("ALLOWED_USERS"))
	if err != nil {
		return nil, err
	}
	cfg.AllowedUsers = users

	return cfg, nil
}

// parseAllowedUsers parses the comma-separated list of Telegram user IDs
func parseAllowedUsers(raw string) ([]int64, error) {
	var users []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("ALLOWED_USERS contains invalid user id %q", part)
		}
		users = append(users, id)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("ALLOWED_USERS is required")
	}

	return users, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
