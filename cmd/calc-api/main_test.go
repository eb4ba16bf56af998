package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListenAddr(t *testing.T) {
	t.Setenv("CALC_API_ADDR", "")
	if got := listenAddr(); got != ":8080" {
		t.Fatalf("expected default %q, got %q", ":8080", got)
	}

	t.Setenv("CALC_API_ADDR", "127.0.0.1:9090")
	if got := listenAddr(); got != "127.0.0.1:9090" {
		t.Fatalf("expected %q, got %q", "127.0.0.1:9090", got)
	}
}

func TestLoadDotEnvWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadDotEnvKeepsProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CALC_API_ADDR=:7070\nOTEL_SERVICE_NAME=from-file\n"), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	t.Setenv("OTEL_SERVICE_NAME", "from-process")
	t.Setenv("CALC_API_ADDR", "")
	os.Unsetenv("CALC_API_ADDR")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loading .env: %v", err)
	}

	if got := listenAddr(); got != ":7070" {
		t.Fatalf("expected addr from .env, got %q", got)
	}
	if got := os.Getenv("OTEL_SERVICE_NAME"); got != "from-process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
