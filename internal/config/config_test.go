package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SubmitDelay != 2*time.Second {
		t.Errorf("expected 2s submit delay, got %s", cfg.SubmitDelay)
	}
	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Errorf("expected 300ms search debounce, got %s", cfg.SearchDebounce)
	}
	if cfg.PaymentDeclineRate != 0 {
		t.Errorf("expected declines disabled by default, got %f", cfg.PaymentDeclineRate)
	}
	if cfg.MaxSubmitAttempts != 0 {
		t.Errorf("expected unlimited submit attempts by default, got %d", cfg.MaxSubmitAttempts)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEBOUNCE", "150ms")
	t.Setenv("PAYMENT_DECLINE_RATE", "0.25")
	t.Setenv("MAX_SUBMIT_ATTEMPTS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://mindwelltherapy.com, https://staging.mindwelltherapy.com")

	cfg := Load()

	if cfg.SearchDebounce != 150*time.Millisecond {
		t.Errorf("expected 150ms search debounce, got %s", cfg.SearchDebounce)
	}
	if cfg.PaymentDeclineRate != 0.25 {
		t.Errorf("expected decline rate 0.25, got %f", cfg.PaymentDeclineRate)
	}
	if cfg.MaxSubmitAttempts != 3 {
		t.Errorf("expected 3 max attempts, got %d", cfg.MaxSubmitAttempts)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://staging.mindwelltherapy.com" {
		t.Errorf("expected trimmed origin, got %q", cfg.CORSAllowedOrigins[1])
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PAYMENT_DECLINE_RATE", "lots")
	t.Setenv("SUBMIT_DELAY", "soon")

	cfg := Load()

	if cfg.PaymentDeclineRate != 0 {
		t.Errorf("expected fallback decline rate 0, got %f", cfg.PaymentDeclineRate)
	}
	if cfg.SubmitDelay != 2*time.Second {
		t.Errorf("expected fallback 2s submit delay, got %s", cfg.SubmitDelay)
	}
}
