package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %v, want 24h", cfg.SessionDuration)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_URL", "postgres://localhost/yamsoo")
	t.Setenv("SESSION_DURATION", "1h")
	t.Setenv("LOGIN_RATE_LIMIT", "3")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://localhost/yamsoo" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SessionDuration != time.Hour {
		t.Errorf("SessionDuration = %v, want 1h", cfg.SessionDuration)
	}
	if cfg.LoginRateLimit != 3 {
		t.Errorf("LoginRateLimit = %d, want 3", cfg.LoginRateLimit)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server_port: \"7070\"\ndefault_locale: fr\nses_from_email: noreply@example.com\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg := Load()

	if cfg.ServerPort != "7070" {
		t.Errorf("ServerPort = %q, want 7070", cfg.ServerPort)
	}
	if cfg.DefaultLocale != "fr" {
		t.Errorf("DefaultLocale = %q, want fr", cfg.DefaultLocale)
	}
	if cfg.SESFromEmail != "noreply@example.com" {
		t.Errorf("SESFromEmail = %q", cfg.SESFromEmail)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server_port: \"7070\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "6060")

	cfg := Load()

	if cfg.ServerPort != "6060" {
		t.Errorf("ServerPort = %q, want env override 6060", cfg.ServerPort)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_DURATION", "not-a-duration")
	t.Setenv("LOGIN_RATE_LIMIT", "many")

	cfg := Load()

	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %v, want default 24h", cfg.SessionDuration)
	}
	if cfg.LoginRateLimit != 10 {
		t.Errorf("LoginRateLimit = %d, want default 10", cfg.LoginRateLimit)
	}
}
