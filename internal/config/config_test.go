package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GO_ENV", "")
	t.Setenv("MAX_FILE_SIZE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected default environment development, got %s", cfg.Environment)
	}
	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("expected default max file size 50MB, got %d", cfg.MaxFileSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GO_ENV", "production")
	t.Setenv("MAX_FILE_SIZE", "1024")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected environment production, got %s", cfg.Environment)
	}
	if cfg.MaxFileSize != 1024 {
		t.Errorf("expected max file size 1024, got %d", cfg.MaxFileSize)
	}
}

func TestLoadRejectsBadMaxFileSize(t *testing.T) {
	for _, bad := range []string{"not-a-number", "-5", "0"} {
		t.Setenv("MAX_FILE_SIZE", bad)
		if cfg := Load(); cfg.MaxFileSize != 50*1024*1024 {
			t.Errorf("MAX_FILE_SIZE=%q: expected fallback to default, got %d", bad, cfg.MaxFileSize)
		}
	}
}
