// Package config handles configuration loading for NewsPulse.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Providers ProvidersConfig `mapstructure:"providers" yaml:"providers"`
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	Export    ExportConfig    `mapstructure:"export"    yaml:"export"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// ProvidersConfig holds per-provider settings.
type ProvidersConfig struct {
	Guardian GuardianConfig `mapstructure:"guardian" yaml:"guardian"`
	NewsData NewsDataConfig `mapstructure:"newsdata" yaml:"newsdata"`
	RSS      RSSConfig      `mapstructure:"rss"      yaml:"rss"`
}

// GuardianConfig holds Guardian content API settings.
type GuardianConfig struct {
	APIKey  string `mapstructure:"api_key"  yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// NewsDataConfig holds NewsData.io API settings.
type NewsDataConfig struct {
	APIKey  string `mapstructure:"api_key"  yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// RSSFeed is one configured RSS source.
type RSSFeed struct {
	Name     string `mapstructure:"name"     yaml:"name"`
	URL      string `mapstructure:"url"      yaml:"url"`
	Category string `mapstructure:"category" yaml:"category"`
}

// RSSConfig holds settings for the RSS fallback provider.
type RSSConfig struct {
	Enabled bool      `mapstructure:"enabled" yaml:"enabled"`
	Feeds   []RSSFeed `mapstructure:"feeds"   yaml:"feeds"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// ExportConfig holds PDF/chart export settings.
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	ChartFile string `mapstructure:"chart_file" yaml:"chart_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.newspulse/config.yaml (home directory)
//  3. /etc/newspulse/config.yaml (system)
//
// Environment variables override config file values.
// Format: NEWSPULSE_<SECTION>_<KEY>, e.g., NEWSPULSE_API_PORT.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".newspulse"))
	v.AddConfigPath("/etc/newspulse")

	v.SetEnvPrefix("NEWSPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("NEWSPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Provider defaults
	v.SetDefault("providers.guardian.base_url", "https://content.guardianapis.com")
	v.SetDefault("providers.newsdata.base_url", "https://newsdata.io/api/1")
	v.SetDefault("providers.rss.enabled", true)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Export defaults
	v.SetDefault("export.output_dir", "reports")
	v.SetDefault("export.chart_file", "sentiment_chart.png")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv reads the provider API keys from their original,
// unprefixed environment variables. These win over any file value so a
// key never needs to live on disk.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("GUARDIAN_API_KEY"); key != "" {
		cfg.Providers.Guardian.APIKey = key
	}
	if key := os.Getenv("NEWSDATA_API_KEY"); key != "" {
		cfg.Providers.NewsData.APIKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
