package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobscout.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"port": 3001, "log_level": "debug"},
		"catalog": {"path": "roles.json"},
		"database": {"postgres": {"dsn": "postgres://localhost/jobs"}},
		"gateway": {"discord": {"enabled": true, "bot_token": "tok"}},
		"metrics": {"enabled": true}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3001 || cfg.Catalog.Path != "roles.json" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.Gateway.Discord.Enabled || cfg.Gateway.Discord.BotToken != "tok" {
		t.Fatalf("discord = %+v", cfg.Gateway.Discord)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics should be enabled")
	}
}

func TestLoadEnvSubstitution(t *testing.T) {
	t.Setenv("JOBSCOUT_TEST_PORT", "4242")
	path := writeConfig(t, `{
		"server": {"port": ${JOBSCOUT_TEST_PORT:3001}, "log_level": "${JOBSCOUT_TEST_LEVEL:info}"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 4242 {
		t.Fatalf("port = %d, want env override", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Fatalf("log_level = %q, want default applied", cfg.Server.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config")
	}
}
