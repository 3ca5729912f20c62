package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLAZA_SESSION_SECRET", "test-secret")
	t.Setenv("PLAZA_REMOTE_URL", "")
	t.Setenv("PLAZA_STORAGE_PATH", "")
	t.Setenv("PLAZA_REQUEST_TIMEOUT", "")
	t.Setenv("PLAZA_LOGIN_BY_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RemoteBaseURL != "http://localhost:8787" {
		t.Fatalf("remote base url = %q", cfg.RemoteBaseURL)
	}
	if cfg.StoragePath != "plaza.db" {
		t.Fatalf("storage path = %q", cfg.StoragePath)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("request timeout = %s", cfg.RequestTimeout)
	}
	if cfg.LoginByName {
		t.Fatal("expected login-by-name variant off by default")
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("PLAZA_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when session secret is missing")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PLAZA_SESSION_SECRET", "test-secret")
	t.Setenv("PLAZA_REMOTE_URL", "https://api.plaza.example")
	t.Setenv("PLAZA_REQUEST_TIMEOUT", "2s")
	t.Setenv("PLAZA_LOGIN_BY_NAME", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RemoteBaseURL != "https://api.plaza.example" {
		t.Fatalf("remote base url = %q", cfg.RemoteBaseURL)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Fatalf("request timeout = %s", cfg.RequestTimeout)
	}
	if !cfg.LoginByName {
		t.Fatal("expected login-by-name variant on")
	}
}
