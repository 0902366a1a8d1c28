package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	os.Unsetenv("GUARDIAN_API_KEY")
	os.Unsetenv("NEWSDATA_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Providers.Guardian.BaseURL != "https://content.guardianapis.com" {
		t.Errorf("Guardian.BaseURL: got %q", cfg.Providers.Guardian.BaseURL)
	}
	if cfg.Providers.NewsData.BaseURL != "https://newsdata.io/api/1" {
		t.Errorf("NewsData.BaseURL: got %q", cfg.Providers.NewsData.BaseURL)
	}
	if !cfg.Providers.RSS.Enabled {
		t.Error("RSS.Enabled should default to true")
	}

	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q, want %q", cfg.API.Host, "0.0.0.0")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}

	if cfg.Export.OutputDir != "reports" {
		t.Errorf("Export.OutputDir: got %q, want %q", cfg.Export.OutputDir, "reports")
	}
	if cfg.Export.ChartFile != "sentiment_chart.png" {
		t.Errorf("Export.ChartFile: got %q", cfg.Export.ChartFile)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	os.Unsetenv("GUARDIAN_API_KEY")
	os.Unsetenv("NEWSDATA_API_KEY")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
providers:
  guardian:
    api_key: file-guardian-key
  newsdata:
    api_key: file-newsdata-key
  rss:
    enabled: false
    feeds:
      - name: BBC News
        url: https://feeds.bbci.co.uk/news/rss.xml
        category: general
api:
  port: 9090
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Providers.Guardian.APIKey != "file-guardian-key" {
		t.Errorf("Guardian.APIKey: got %q", cfg.Providers.Guardian.APIKey)
	}
	if cfg.Providers.NewsData.APIKey != "file-newsdata-key" {
		t.Errorf("NewsData.APIKey: got %q", cfg.Providers.NewsData.APIKey)
	}
	if cfg.Providers.RSS.Enabled {
		t.Error("RSS.Enabled should be false from file")
	}
	if len(cfg.Providers.RSS.Feeds) != 1 || cfg.Providers.RSS.Feeds[0].Name != "BBC News" {
		t.Errorf("RSS.Feeds: got %+v", cfg.Providers.RSS.Feeds)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging: got %+v", cfg.Logging)
	}
	// Defaults still apply for keys the file does not set.
	if cfg.Providers.Guardian.BaseURL != "https://content.guardianapis.com" {
		t.Errorf("Guardian.BaseURL default lost: %q", cfg.Providers.Guardian.BaseURL)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

// ── Environment overrides ──

func TestEnvKeysOverrideFile(t *testing.T) {
	t.Setenv("GUARDIAN_API_KEY", "env-guardian-key")
	t.Setenv("NEWSDATA_API_KEY", "env-newsdata-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
providers:
  guardian:
    api_key: file-guardian-key
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Providers.Guardian.APIKey != "env-guardian-key" {
		t.Errorf("env should win: got %q", cfg.Providers.Guardian.APIKey)
	}
	if cfg.Providers.NewsData.APIKey != "env-newsdata-key" {
		t.Errorf("env should fill empty key: got %q", cfg.Providers.NewsData.APIKey)
	}
}

// ── Key status ──

func TestCheckAPIKeys(t *testing.T) {
	os.Unsetenv("GUARDIAN_API_KEY")
	os.Unsetenv("NEWSDATA_API_KEY")

	cfg := &Config{}
	cfg.Providers.Guardian.APIKey = "abcdefghijklmnop"

	statuses := CheckAPIKeys(cfg)
	if len(statuses) != 2 {
		t.Fatalf("expected 2 key statuses, got %d", len(statuses))
	}

	guardian := statuses[0]
	if !guardian.IsSet || guardian.Source != KeySourceConfig {
		t.Errorf("guardian status: %+v", guardian)
	}
	if guardian.Masked != "abc...nop" {
		t.Errorf("masked: got %q, want %q", guardian.Masked, "abc...nop")
	}

	newsdata := statuses[1]
	if newsdata.IsSet || newsdata.Source != KeySourceNone {
		t.Errorf("newsdata status: %+v", newsdata)
	}
}

func TestMaskKeyShort(t *testing.T) {
	if got := maskKey("short"); got != "***" {
		t.Errorf("maskKey: got %q, want ***", got)
	}
}
