// Package config loads service settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"

	defaultServerAddress   = ":8080"
	defaultMigrationsPath  = "file://migrations"
	defaultTokenTTL        = 7 * 24 * time.Hour
	defaultShutdownTimeout = 30 * time.Second
)

type Config struct {
	Env      string         `yaml:"env"`
	Server   ServerConfig   `yaml:"server"`
	Postgres PostgresConfig `yaml:"postgres"`
	Auth     AuthConfig     `yaml:"auth"`
}

type ServerConfig struct {
	Address         string        `yaml:"address"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type PostgresConfig struct {
	Conn           string `yaml:"conn"`
	Database       string `yaml:"database"`
	MigrationsPath string `yaml:"migrations_path"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         defaultServerAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Postgres: PostgresConfig{
			MigrationsPath: defaultMigrationsPath,
		},
		Auth: AuthConfig{
			TokenTTL: defaultTokenTTL,
		},
	}
}

// Load reads CONFIG_FILE when set, then applies environment overrides.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Env, "APP_ENV")
	setString(&c.Server.Address, "SERVER_ADDRESS")
	setString(&c.Postgres.Conn, "POSTGRES_CONN")
	setString(&c.Postgres.Database, "POSTGRES_DATABASE")
	setString(&c.Postgres.MigrationsPath, "MIGRATIONS_PATH")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")

	if err := setDuration(&c.Auth.TokenTTL, "TOKEN_TTL"); err != nil {
		return err
	}

	return setDuration(&c.Server.ShutdownTimeout, "SHUTDOWN_TIMEOUT")
}

func (c *Config) Validate() error {
	var errs []error
	if c.Postgres.Conn == "" {
		errs = append(errs, errors.New("config: postgres connection string is required (POSTGRES_CONN)"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("config: jwt secret is required (JWT_SECRET)"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("config: token ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d

	return nil
}
