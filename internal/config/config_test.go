package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if len(cfg.AuthInstances) != 1 {
		t.Errorf("expected one default auth instance, got %v", cfg.AuthInstances)
	}
	if !cfg.MigrateOnStart {
		t.Error("expected migrations enabled by default")
	}
}

func TestAuthInstanceList(t *testing.T) {
	t.Setenv("USER_AUTH_SERVICE_URL", "http://auth-1:8081/, http://auth-2:8081")
	cfg := Load()
	if len(cfg.AuthInstances) != 2 {
		t.Fatalf("expected 2 instances, got %v", cfg.AuthInstances)
	}
	if cfg.AuthInstances[0] != "http://auth-1:8081" {
		t.Errorf("expected trailing slash stripped, got %q", cfg.AuthInstances[0])
	}
	if cfg.AuthInstances[1] != "http://auth-2:8081" {
		t.Errorf("expected whitespace trimmed, got %q", cfg.AuthInstances[1])
	}
}
