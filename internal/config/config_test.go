package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all SCHOOLNET_ env vars to test pure defaults
	envVars := []string{
		"SCHOOLNET_PORT", "SCHOOLNET_METRICS_PORT", "SCHOOLNET_ADMIN_TOKEN",
		"SCHOOLNET_DATABASE_URL", "SCHOOLNET_EVENTS_URL", "SCHOOLNET_CACHE_ADDR",
		"SCHOOLNET_CACHE_TTL_SECONDS", "SCHOOLNET_UPLOAD_DIR", "SCHOOLNET_UPLOAD_BASE_URL",
		"SCHOOLNET_LOG_LEVEL", "SCHOOLNET_LOG_FORMAT",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8001 {
		t.Errorf("expected metrics port 8001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Cache.TTLSeconds != 60 {
		t.Errorf("expected cache TTL 60s, got %d", cfg.Cache.TTLSeconds)
	}
	if cfg.Uploads.Dir != "data/profile-images" {
		t.Errorf("expected default upload dir, got %s", cfg.Uploads.Dir)
	}
	if cfg.Uploads.BaseURL != "http://localhost:8000" {
		t.Errorf("expected default upload base URL, got %s", cfg.Uploads.BaseURL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	if cfg.CacheTTL() != time.Minute {
		t.Errorf("expected CacheTTL 1m, got %v", cfg.CacheTTL())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCHOOLNET_PORT", "9000")
	t.Setenv("SCHOOLNET_METRICS_PORT", "9001")
	t.Setenv("SCHOOLNET_ADMIN_TOKEN", "secret-token")
	t.Setenv("SCHOOLNET_DATABASE_URL", "postgres://localhost/schoolnet_test")
	t.Setenv("SCHOOLNET_EVENTS_URL", "nats://nats:4222")
	t.Setenv("SCHOOLNET_CACHE_ADDR", "redis:6379")
	t.Setenv("SCHOOLNET_CACHE_TTL_SECONDS", "300")
	t.Setenv("SCHOOLNET_UPLOAD_DIR", "/var/lib/schoolnet/images")
	t.Setenv("SCHOOLNET_UPLOAD_BASE_URL", "https://api.schoolnet.example")
	t.Setenv("SCHOOLNET_LOG_LEVEL", "debug")
	t.Setenv("SCHOOLNET_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/schoolnet_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got '%s'", cfg.Events.URL)
	}
	if cfg.Cache.Addr != "redis:6379" {
		t.Errorf("expected cache addr, got '%s'", cfg.Cache.Addr)
	}
	if cfg.CacheTTL() != 5*time.Minute {
		t.Errorf("expected CacheTTL 5m, got %v", cfg.CacheTTL())
	}
	if cfg.Uploads.Dir != "/var/lib/schoolnet/images" {
		t.Errorf("expected upload dir override, got '%s'", cfg.Uploads.Dir)
	}
	if cfg.Uploads.BaseURL != "https://api.schoolnet.example" {
		t.Errorf("expected upload base URL override, got '%s'", cfg.Uploads.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format 'text', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	os.Unsetenv("SCHOOLNET_PORT")
	os.Unsetenv("SCHOOLNET_ADMIN_TOKEN")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 8080\n  admin_token: from-file\ncache:\n  addr: localhost:6379\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080 from file, got %d", cfg.Server.Port)
	}
	if cfg.Server.AdminToken != "from-file" {
		t.Errorf("expected admin token from file, got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Cache.Addr != "localhost:6379" {
		t.Errorf("expected cache addr from file, got '%s'", cfg.Cache.Addr)
	}
	// Values the file does not mention keep their defaults.
	if cfg.Server.MetricsPort != 8001 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
