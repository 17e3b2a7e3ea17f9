package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	PracticeName       string
	CORSAllowedOrigins []string

	// Simulated latency for asynchronous work.
	SubmitDelay    time.Duration
	PaymentDelay   time.Duration
	SearchDebounce time.Duration

	// CompletionResetDelay overrides the per-flow auto-reset interval
	// when non-zero.
	CompletionResetDelay time.Duration

	// Failure injection. Both default to 0 (never fail); operators may
	// raise them to exercise the decline and retry paths.
	PaymentDeclineRate float64
	SubmitFailureRate  float64

	// MaxSubmitAttempts bounds retries after transient submit failures.
	// 0 means unlimited.
	MaxSubmitAttempts int

	// NotifyInbox receives intake-completion notifications.
	NotifyInbox string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		PracticeName:         getEnv("PRACTICE_NAME", "MindWell Therapy"),
		CORSAllowedOrigins:   getEnvAsList("CORS_ALLOWED_ORIGINS"),
		SubmitDelay:          getEnvAsDuration("SUBMIT_DELAY", 2*time.Second),
		PaymentDelay:         getEnvAsDuration("PAYMENT_DELAY", 3*time.Second),
		SearchDebounce:       getEnvAsDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		CompletionResetDelay: getEnvAsDuration("COMPLETION_RESET_DELAY", 0),
		PaymentDeclineRate:   getEnvAsFloat("PAYMENT_DECLINE_RATE", 0),
		SubmitFailureRate:    getEnvAsFloat("SUBMIT_FAILURE_RATE", 0),
		MaxSubmitAttempts:    getEnvAsInt("MAX_SUBMIT_ATTEMPTS", 0),
		NotifyInbox:          getEnv("NOTIFY_INBOX", "appointments@mindwelltherapy.com"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping
// empty entries.
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
