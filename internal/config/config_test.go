package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("config/app.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreDriver != "sqlite" || cfg.MaxUploadBytes != 10*1024*1024 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "app.yaml")
	err := os.WriteFile(file, []byte("port: \"9000\"\nstore_driver: memory\napi_key: from-file\n"), 0o644)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SESSION_SECRET=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Cleanup(func() { os.Unsetenv("SESSION_SECRET") })
	t.Setenv("API_KEY", "from-env")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" || cfg.StoreDriver != "memory" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("env should override file, got %q", cfg.APIKey)
	}
	if cfg.SessionSecret != "from-dotenv" {
		t.Fatalf(".env not loaded, got %q", cfg.SessionSecret)
	}
	if cfg.MaxUploadBytes != 2048 {
		t.Fatalf("max upload = %d", cfg.MaxUploadBytes)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SECURE_COOKIES", "maybe")

	if _, err := Load("missing.yaml"); err == nil {
		t.Fatalf("expected parse error")
	}
}
