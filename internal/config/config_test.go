package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "izposoja.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("IZPOSOJA_DB", "/tmp/env.sqlite3")
	t.Setenv("IZPOSOJA_ADMIN_TOKEN", "env-token")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/env.sqlite3" {
		t.Errorf("expected env db path, got %q", cfg.DBPath)
	}
	if cfg.AdminToken != "env-token" {
		t.Errorf("expected env token, got %q", cfg.AdminToken)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("IZPOSOJA_DB", "/tmp/env.sqlite3")

	cfg, err := Load([]string{"-db", "/tmp/flag.sqlite3", "-addr", ":9090"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/flag.sqlite3" {
		t.Errorf("expected flag db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected flag addr, got %q", cfg.Addr)
	}
}

func TestUnexpectedArgument(t *testing.T) {
	if _, err := Load([]string{"leftover"}); err == nil {
		t.Error("expected error for unexpected argument")
	}
}
