package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "zoznamy.db" {
		t.Errorf("db path = %q, want zoznamy.db", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.S3Region != "auto" {
		t.Errorf("s3 region = %q, want auto", cfg.S3Region)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ZOZNAMY_PORT", "9999")
	t.Setenv("ZOZNAMY_PASSWORD", "tajné")
	t.Setenv("ZOZNAMY_S3_BUCKET", "photos")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("port = %q, want 9999", cfg.Port)
	}
	if cfg.Password != "tajné" {
		t.Errorf("password = %q", cfg.Password)
	}
	if cfg.S3Bucket != "photos" {
		t.Errorf("s3 bucket = %q, want photos", cfg.S3Bucket)
	}
}
