package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg == nil {
		t.Fatal("NewDefaultConfig returned nil")
	}

	if cfg.ListenAddr == "" {
		t.Error("default ListenAddr should not be empty")
	}
	if cfg.DefaultForm != "nfc" {
		t.Errorf("default form = %q, want nfc", cfg.DefaultForm)
	}
	if cfg.MaxTextBytes <= 0 {
		t.Errorf("MaxTextBytes should be positive, got %d", cfg.MaxTextBytes)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file should fall back to defaults, got %v", err)
	}
	if cfg.DefaultForm != "nfc" {
		t.Errorf("DefaultForm = %q, want the default", cfg.DefaultForm)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unorm.yaml")
	body := `
listen_addr: "127.0.0.1:9000"
default_form: nfkc
max_text_bytes: 4096
redis:
  addr: "localhost:6379"
  db: 2
  ttl: 30s
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DefaultForm != "nfkc" {
		t.Errorf("DefaultForm = %q, want nfkc", cfg.DefaultForm)
	}
	if cfg.MaxTextBytes != 4096 {
		t.Errorf("MaxTextBytes = %d, want 4096", cfg.MaxTextBytes)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis config = %+v", cfg.Redis)
	}
	if cfg.Redis.TTL.Std() != 30*time.Second {
		t.Errorf("Redis TTL = %v, want 30s", cfg.Redis.TTL.Std())
	}
}

func TestLoadRejectsBadForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unorm.yaml")
	if err := os.WriteFile(path, []byte("default_form: nfx\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unknown default_form")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("UNORM_LISTEN_ADDR", "0.0.0.0:7777")
	t.Setenv("UNORM_REDIS_ADDR", "redis:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:7777" {
		t.Errorf("ListenAddr = %q, want env override", cfg.ListenAddr)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis.Addr = %q, want env override", cfg.Redis.Addr)
	}
}
