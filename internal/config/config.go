// Package config loads MacroMind settings from config.yaml, MACROMIND_*
// environment variables, .env files and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inovacc/macromind/internal/application"
	"github.com/inovacc/macromind/internal/encoding"
	"github.com/inovacc/macromind/internal/estimator"
	"github.com/inovacc/macromind/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	FileName  = "config.yaml"
	EnvPrefix = "MACROMIND"
)

// Config is the application configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
	Estimator EstimatorConfig `yaml:"estimator" mapstructure:"estimator"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StorageConfig selects the storage engine and where its files live.
type StorageConfig struct {
	Driver  string `yaml:"driver" mapstructure:"driver"`
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"` // empty means the application directory
}

// EstimatorConfig configures AI nutrition estimation.
type EstimatorConfig struct {
	Provider      string        `yaml:"provider" mapstructure:"provider"`
	Model         string        `yaml:"model" mapstructure:"model"`
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey        string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CacheTTL      time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	RatePerSecond float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	Burst         int           `yaml:"burst" mapstructure:"burst"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: string(store.DriverBolt),
		},
		Estimator: EstimatorConfig{
			Provider:      estimator.ProviderGemini,
			Model:         estimator.DefaultGeminiModel,
			Timeout:       estimator.DefaultTimeout,
			CacheTTL:      estimator.DefaultCacheTTL,
			RatePerSecond: estimator.DefaultRatePerSecond,
			Burst:         estimator.DefaultBurst,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns <app dir>/config.yaml.
func DefaultPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, FileName), nil
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	def := Default()

	v.SetDefault("storage.driver", def.Storage.Driver)
	v.SetDefault("storage.data_dir", def.Storage.DataDir)
	v.SetDefault("estimator.provider", def.Estimator.Provider)
	v.SetDefault("estimator.model", def.Estimator.Model)
	v.SetDefault("estimator.base_url", def.Estimator.BaseURL)
	v.SetDefault("estimator.api_key", def.Estimator.APIKey)
	v.SetDefault("estimator.timeout", def.Estimator.Timeout)
	v.SetDefault("estimator.cache_ttl", def.Estimator.CacheTTL)
	v.SetDefault("estimator.rate_per_second", def.Estimator.RatePerSecond)
	v.SetDefault("estimator.burst", def.Estimator.Burst)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags maps persistent command-line flags onto config keys. Flags
// that are absent from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"data-dir":  "storage.data_dir",
		"driver":    "storage.driver",
		"log-level": "log.level",
		"provider":  "estimator.provider",
	}

	for flag, key := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	return nil
}

// Load reads the configuration at path into v. A missing file is created
// with the defaults. An empty path means DefaultPath().
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}

		path = p
	}

	loadDotEnv(filepath.Join(filepath.Dir(path), ".env"))
	loadDotEnv(".env")

	if !encoding.FileExists(path) {
		if err := Save(Default(), path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		slog.Debug("wrote default config", slog.String("path", path))
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyKeyFallback()
	cfg.normalizeModel()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML with owner-only permissions.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	return encoding.WriteFileSecure(path, data)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch store.Driver(c.Storage.Driver) {
	case "", store.DriverBolt, store.DriverSQLite:
	default:
		return fmt.Errorf("invalid storage.driver %q: want bolt or sqlite", c.Storage.Driver)
	}

	switch strings.ToLower(c.Estimator.Provider) {
	case "", estimator.ProviderGemini, estimator.ProviderOpenAI:
	default:
		return fmt.Errorf("invalid estimator.provider %q: want gemini or openai", c.Estimator.Provider)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want text or json", c.Log.Format)
	}

	return nil
}

// DataDir returns the storage directory, creating it when needed.
func (c *Config) DataDir() (string, error) {
	return application.EnsureDirectory(c.Storage.DataDir)
}

// EstimatorOptions converts the estimator section for estimator.New.
func (c *Config) EstimatorOptions(logger *slog.Logger) estimator.Options {
	e := c.Estimator

	return estimator.Options{
		Provider:      e.Provider,
		Model:         e.Model,
		BaseURL:       e.BaseURL,
		APIKey:        e.APIKey,
		Timeout:       e.Timeout,
		CacheTTL:      e.CacheTTL,
		RatePerSecond: e.RatePerSecond,
		Burst:         e.Burst,
		Logger:        logger,
	}
}

// applyKeyFallback fills a missing API key from the provider's
// conventional environment variable.
func (c *Config) applyKeyFallback() {
	if c.Estimator.APIKey != "" {
		return
	}

	names := []string{"GEMINI_API_KEY", "API_KEY"}
	if strings.EqualFold(c.Estimator.Provider, estimator.ProviderOpenAI) {
		names = []string{"OPENAI_API_KEY", "API_KEY"}
	}

	for _, name := range names {
		if key := os.Getenv(name); key != "" {
			c.Estimator.APIKey = key
			return
		}
	}
}

// The default model is Gemini's; clear it when only the provider changed.
func (c *Config) normalizeModel() {
	if strings.EqualFold(c.Estimator.Provider, estimator.ProviderOpenAI) && c.Estimator.Model == estimator.DefaultGeminiModel {
		c.Estimator.Model = ""
	}
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: want debug, info, warn or error", s)
	}
}

func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load env file", slog.String("path", path), slog.String("error", err.Error()))
	}
}
