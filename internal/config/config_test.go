package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/curriculum")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("expected default address :8080, got %q", cfg.HTTPAddress)
	}
	if cfg.DatabaseDriver != DriverPostgres || cfg.LockBackend != LockBackendLocal {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LockTTL != 10*time.Second || cfg.LockRetryInterval != 50*time.Millisecond {
		t.Fatalf("unexpected lock timings %v/%v", cfg.LockTTL, cfg.LockRetryInterval)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:curriculum.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("LOCK_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOCK_TTL", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseDriver != DriverSQLite || cfg.LockBackend != LockBackendRedis || cfg.LockTTL != 3*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		HTTPAddress:       ":8080",
		DatabaseDriver:    DriverPostgres,
		DatabaseURL:       "postgres://localhost/curriculum",
		LockBackend:       LockBackendLocal,
		LockTTL:           time.Second,
		LockRetryInterval: time.Millisecond,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cases := map[string]func(c *Config){
		"unknown driver":     func(c *Config) { c.DatabaseDriver = "mysql" },
		"unknown lock":       func(c *Config) { c.LockBackend = "etcd" },
		"redis without addr": func(c *Config) { c.LockBackend = LockBackendRedis },
		"zero ttl":           func(c *Config) { c.LockTTL = 0 },
		"empty url":          func(c *Config) { c.DatabaseURL = "" },
		"negative redis db":  func(c *Config) { c.RedisDB = -1 },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidate_NamesEnvironmentVariables(t *testing.T) {
	cfg := Config{
		HTTPAddress:       ":8080",
		DatabaseDriver:    "mysql",
		DatabaseURL:       "postgres://localhost/curriculum",
		LockBackend:       LockBackendRedis,
		LockTTL:           time.Second,
		LockRetryInterval: -time.Millisecond,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"DATABASE_DRIVER", "REDIS_ADDR", "LOCK_RETRY_INTERVAL"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got %v", want, err)
		}
	}
}

func TestLoad_RejectsBlankDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "   ")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is blank")
	}
}
