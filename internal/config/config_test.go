package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseAllowedUsers(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []int64
		expectError bool
	}{
		{
			name:     "single user",
			input:    "379415631",
			expected: []int64{379415631},
		},
		{
			name:     "multiple users",
			input:    "379415631,111",
			expected: []int64{379415631, 111},
		},
		{
			name:     "spaces around ids",
			input:    " 1 , 2 , 3 ",
			expected: []int64{1, 2, 3},
		},
		{
			name:     "trailing comma",
			input:    "1,2,",
			expected: []int64{1, 2},
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "only commas",
			input:       ",,",
			expectError: true,
		},
		{
			name:        "non-numeric id",
			input:       "1,abc",
			expectError: true,
		},
		{
			name:        "negative id",
			input:       "1,-2",
			expectError: true,
		},
		{
			name:        "zero id",
			input:       "0",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := parseAllowedUsers(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, users)
			}
		})
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	// Save original env
	originalBotToken := os.Getenv("BOT_TOKEN")
	originalAllowedUsers := os.Getenv("ALLOWED_USERS")

	// Clean up after test
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
		if originalAllowedUsers != "" {
			os.Setenv("ALLOWED_USERS", originalAllowedUsers)
		} else {
			os.Unsetenv("ALLOWED_USERS")
		}
	}()

	// Test missing BOT_TOKEN
	os.Unsetenv("BOT_TOKEN")
	os.Unsetenv("ALLOWED_USERS")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")

	// Test missing ALLOWED_USERS
	os.Setenv("BOT_TOKEN", "test-token")

	cfg, err = Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ALLOWED_USERS")
}

func TestLoad_WithDefaults(t *testing.T) {
	// Save original env
	saved := map[string]string{}
	keys := []string{"BOT_TOKEN", "ALLOWED_USERS", "DATA_FILE", "PHOTO_DIR", "HEALTH_ADDR", "WEBHOOK_URL", "WEBHOOK_LISTEN"}
	for _, key := range keys {
		saved[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	defer func() {
		for _, key := range keys {
			if saved[key] != "" {
				os.Setenv(key, saved[key])
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	os.Setenv("BOT_TOKEN", "test-token")
	os.Setenv("ALLOWED_USERS", "1,2")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, []int64{1, 2}, cfg.AllowedUsers)
	assert.Equal(t, "db.json", cfg.DataFile)
	assert.Equal(t, "photos", cfg.PhotoDir)
	assert.Equal(t, ":8080", cfg.HealthAddr)
	assert.Equal(t, "", cfg.Webhook.URL)
	assert.Equal(t, ":8443", cfg.Webhook.Listen)
}
