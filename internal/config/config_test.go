package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  dsn: "database.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &Config{
		Env: "dev",
		Storage: Storage{
			Driver: DriverSQLite,
			DSN:    "database.db",
		},
		HTTPServer: HTTPServer{
			Addr:         ":5000",
			CORSOrigins:  []string{"*"},
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
storage:
  driver: "postgres"
  dsn: "postgres://localhost:5432/readiness?sslmode=disable"
http_server:
  address: ":8080"
  cors_origins: ["https://dashboard.example.com"]
  write_timeout: 3s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "prod" || cfg.Storage.Driver != DriverPostgres || cfg.HTTPServer.Addr != ":8080" {
		t.Fatalf("Unexpected config: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"https://dashboard.example.com"}, cfg.HTTPServer.CORSOrigins); diff != "" {
		t.Fatalf("Unexpected origins (-want +got):\n%s", diff)
	}
	if cfg.HTTPServer.WriteTimeout != 3*time.Second {
		t.Fatalf("Unexpected write timeout: %s", cfg.HTTPServer.WriteTimeout)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: "mongodb"
  dsn: "whatever"
`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown driver")
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	path := writeConfig(t, `env: "dev"`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error when storage.dsn is missing")
	}
}
