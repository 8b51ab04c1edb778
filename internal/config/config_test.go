package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobport")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.AppName != "jobport" || cfg.App.HTTPPort != "8080" {
		t.Errorf("app config = %+v", cfg.App)
	}
	if cfg.JWT.ExpiresIn != 7*24*time.Hour {
		t.Errorf("jwt expiry = %v, want 168h default", cfg.JWT.ExpiresIn)
	}
	if cfg.Upload.Dir != "./uploads" || cfg.Upload.MaxBytes != 5<<20 {
		t.Errorf("upload config = %+v", cfg.Upload)
	}
	if cfg.Database.DBHost != "localhost" || cfg.Database.DBPort != "5432" {
		t.Errorf("database config = %+v", cfg.Database)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Errorf("redis ttl = %v", cfg.Redis.TTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_EXPIRES_IN", "24h")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")
	t.Setenv("DB_POOL_MAX_CONNS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWT.ExpiresIn != 24*time.Hour {
		t.Errorf("jwt expiry = %v, want 24h", cfg.JWT.ExpiresIn)
	}
	if cfg.Upload.MaxBytes != 1<<20 {
		t.Errorf("upload max = %d, want 1 MiB", cfg.Upload.MaxBytes)
	}
	if cfg.Database.PoolMaxConns != 12 {
		t.Errorf("pool max conns = %d, want 12", cfg.Database.PoolMaxConns)
	}
}

// Every missing required variable is reported in one error, not just the
// first one hit.
func TestLoadAggregatesMissingEnv(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("err = %v, want errMissingRequiredEnv", err)
	}
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
}

func TestLoadIgnoresMalformedOptionals(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	t.Setenv("UPLOAD_MAX_BYTES", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWT.ExpiresIn != 7*24*time.Hour {
		t.Errorf("jwt expiry = %v, want default on parse failure", cfg.JWT.ExpiresIn)
	}
	if cfg.Upload.MaxBytes != 5<<20 {
		t.Errorf("upload max = %d, want default on non-positive value", cfg.Upload.MaxBytes)
	}
}
