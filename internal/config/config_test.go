package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  auto_migrate: true

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  session_ttl: "2h"
  admin_username: "root"
  admin_password: "hunter2hunter2"

certificate:
  code_prefix: "SM"
  public_base_url: "https://verify.sansmedia.example/"
  render_timeout: "45s"

cache:
  redis_addr: "localhost:6379"
  ttl: "1m"

rate_limit:
  requests_per_minute: 120

log:
  level: "debug"
  format: "text"
`

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{
			DSN: "postgres://u:p@localhost:5432/testdb",
		},
		Auth: AuthConfig{
			JWTSecret:     "this-is-a-very-long-jwt-secret-for-testing-32+",
			JWTIssuer:     "sans-intern-verify",
			SessionTTL:    8 * time.Hour,
			AdminUsername: "admin",
			AdminPassword: "sansmedia2024",
		},
		Certificate: CertificateConfig{
			CodePrefix:    "SM",
			PublicBaseURL: "http://localhost:8080",
			RenderTimeout: 30 * time.Second,
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be true")
	}

	if cfg.Auth.SessionTTL != 2*time.Hour {
		t.Errorf("auth.session_ttl = %v, want 2h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.AdminUsername != "root" {
		t.Errorf("auth.admin_username = %q", cfg.Auth.AdminUsername)
	}

	// Trailing slash is trimmed during validation.
	if cfg.Certificate.PublicBaseURL != "https://verify.sansmedia.example" {
		t.Errorf("certificate.public_base_url = %q", cfg.Certificate.PublicBaseURL)
	}
	if cfg.Certificate.RenderTimeout != 45*time.Second {
		t.Errorf("certificate.render_timeout = %v", cfg.Certificate.RenderTimeout)
	}
	if cfg.Certificate.Organization != "SANS MEDIA" {
		t.Errorf("certificate.organization default = %q", cfg.Certificate.Organization)
	}

	if !cfg.Cache.Enabled() {
		t.Error("cache should be enabled when redis_addr is set")
	}
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("rate_limit.requests_per_minute = %d", cfg.RateLimit.RequestsPerMinute)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("CERT_CODE_PREFIX", "SX")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Certificate.CodePrefix != "SX" {
		t.Errorf("certificate.code_prefix = %q, want SX (ENV override)", cfg.Certificate.CodePrefix)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Auth.AdminUsername != "admin" || cfg.Auth.AdminPassword != "sansmedia2024" {
		t.Errorf("unexpected default admin credentials: %q/%q", cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	}
	if cfg.Certificate.CodePrefix != "SM" {
		t.Errorf("certificate.code_prefix = %q, want SM", cfg.Certificate.CodePrefix)
	}
	if cfg.Cache.Enabled() {
		t.Error("cache should be disabled by default")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadFrom_ExplicitPathIgnoresConfigPathEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: "jwt_secret"},
		{name: "empty jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: "jwt_secret"},
		{name: "zero session ttl", mutate: func(c *Config) { c.Auth.SessionTTL = 0 }, wantErr: "session_ttl"},
		{name: "blank admin username", mutate: func(c *Config) { c.Auth.AdminUsername = "  " }, wantErr: "admin_username"},
		{
			name: "no admin password",
			mutate: func(c *Config) {
				c.Auth.AdminPassword = ""
				c.Auth.AdminPasswordHash = ""
			},
			wantErr: "admin_password",
		},
		{
			name: "hash only",
			mutate: func(c *Config) {
				c.Auth.AdminPassword = ""
				c.Auth.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
			},
		},
		{name: "lowercase prefix", mutate: func(c *Config) { c.Certificate.CodePrefix = "sm" }, wantErr: "code_prefix"},
		{name: "empty prefix", mutate: func(c *Config) { c.Certificate.CodePrefix = "" }, wantErr: "code_prefix"},
		{name: "relative base url", mutate: func(c *Config) { c.Certificate.PublicBaseURL = "/intern" }, wantErr: "public_base_url"},
		{name: "zero render timeout", mutate: func(c *Config) { c.Certificate.RenderTimeout = 0 }, wantErr: "render_timeout"},
		{
			name: "cache without ttl",
			mutate: func(c *Config) {
				c.Cache.RedisAddr = "localhost:6379"
				c.Cache.TTL = 0
			},
			wantErr: "cache.ttl",
		},
		{name: "ttl ignored when cache disabled", mutate: func(c *Config) { c.Cache.TTL = 0 }},
		{name: "negative rpm", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }, wantErr: "requests_per_minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
