package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CONFIG_FILE", "APP_ENV", "SERVER_ADDRESS", "POSTGRES_CONN", "POSTGRES_DATABASE",
		"MIGRATIONS_PATH", "JWT_SECRET", "TOKEN_TTL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != ":8080" || cfg.Auth.TokenTTL != 7*24*time.Hour || cfg.Postgres.MigrationsPath != "file://migrations" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.IsProduction() {
		t.Fatalf("default env must not be production")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
env: production
server:
  address: ":9090"
  shutdown_timeout: 5s
postgres:
  conn: postgres://file
  database: gigflow
auth:
  jwt_secret: from-file
  token_ttl: 1h
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != ":9090" || cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Postgres.Conn != "postgres://file" || cfg.Postgres.Database != "gigflow" {
		t.Fatalf("unexpected postgres config: %+v", cfg.Postgres)
	}
	if cfg.Auth.JWTSecret != "from-env" || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("env must override file: %+v", cfg.Auth)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TOKEN_TTL", "a week")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "TOKEN_TTL") {
			t.Fatalf("expected TOKEN_TTL error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.Auth.TokenTTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, part := range []string{"POSTGRES_CONN", "JWT_SECRET", "token ttl"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("expected %q in %q", part, err.Error())
		}
	}
}
