package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	drvgojson "github.com/reoring/skema/source/gojson"
)

// Config represents the skema CLI configuration
type Config struct {
	MaxBytes      int64  `mapstructure:"max_bytes"`
	MaxDepth      int    `mapstructure:"max_depth"`
	DuplicateKeys string `mapstructure:"duplicate_keys"`
	NumberMode    string `mapstructure:"number_mode"`
	Language      string `mapstructure:"language"`
	Driver        string `mapstructure:"driver"`
	LogLevel      string `mapstructure:"log_level"`
	NoColor       bool   `mapstructure:"no_color"`
}

// Keys lists every configuration key; flags with the same name (dashes for
// underscores) override file and environment values.
var Keys = []string{"max_bytes", "max_depth", "duplicate_keys", "number_mode", "language", "driver", "log_level", "no_color"}

// Load reads skema.yaml (or the explicit configFile), SKEMA_* environment
// variables and any changed flags in fs, in increasing precedence.
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("max_bytes", int64(64<<20))
	v.SetDefault("max_depth", 64)
	v.SetDefault("duplicate_keys", "ignore")
	v.SetDefault("number_mode", "float64")
	v.SetDefault("language", "en")
	v.SetDefault("driver", "go-json")
	v.SetDefault("log_level", "warn")
	v.SetDefault("no_color", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("skema")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "skema"))
		}
	}

	// Enable environment variable support
	v.SetEnvPrefix("SKEMA")
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range Keys {
			if f := fs.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the configuration into codec options.
func (c *Config) Options() skema.Options {
	opt := skema.Options{
		ParseOpt: skema.ParseOpt{MaxBytes: c.MaxBytes, MaxDepth: c.MaxDepth},
	}
	switch c.DuplicateKeys {
	case "warn":
		opt.Strictness.OnDuplicateKey = skema.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = skema.Error
	}
	if c.NumberMode == "json_number" {
		opt.NumberMode = skema.NumberJSONNumber
	}
	return opt
}

// Apply installs the process-wide settings: message language and JSON driver.
func (c *Config) Apply() {
	i18n.SetLanguage(c.Language)
	if c.Driver == "encoding/json" {
		skema.UseDefaultJSONDriver()
	} else {
		skema.SetJSONDriver(drvgojson.Driver())
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if !oneOf(cfg.DuplicateKeys, "ignore", "warn", "error") {
		return fmt.Errorf("duplicate_keys must be one of ignore, warn, error, got: %s", cfg.DuplicateKeys)
	}
	if !oneOf(cfg.NumberMode, "float64", "json_number") {
		return fmt.Errorf("number_mode must be float64 or json_number, got: %s", cfg.NumberMode)
	}
	if !oneOf(cfg.Language, "en", "ja") {
		return fmt.Errorf("language must be en or ja, got: %s", cfg.Language)
	}
	if !oneOf(cfg.Driver, "go-json", "encoding/json") {
		return fmt.Errorf("driver must be go-json or encoding/json, got: %s", cfg.Driver)
	}
	if cfg.MaxBytes < 0 || cfg.MaxDepth < 0 {
		return fmt.Errorf("max_bytes and max_depth must not be negative")
	}
	return nil
}

func oneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
