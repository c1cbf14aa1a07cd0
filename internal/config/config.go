package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/planbiir/groute/internal/format"
)

// Config holds the groute settings.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Format  FormatConfig  `mapstructure:"format"`
	Loader  LoaderConfig  `mapstructure:"loader"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type FormatConfig struct {
	// Default is used when no format flag is given.
	// Empty means detect from the file extension.
	Default string `mapstructure:"default"`
}

type LoaderConfig struct {
	AllowMissingElevation bool `mapstructure:"allow_missing_elevation"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// Load reads configuration from .env, an optional groute.yaml and
// GROUTE_* environment variables, in increasing priority.
// When no search paths are given, the working directory and
// $HOME/.config/groute are searched.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("format.default", "")
	v.SetDefault("loader.allow_missing_elevation", false)
	v.SetDefault("metrics.textfile", "")

	if len(paths) == 0 {
		paths = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".config", "groute"))
		}
	}

	v.SetConfigName("groute")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// GROUTE_LOADER_ALLOW_MISSING_ELEVATION → loader.allow_missing_elevation
	v.SetEnvPrefix("GROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the settings are known values.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if c.Format.Default != "" && !slices.Contains(format.Supported(), format.ID(c.Format.Default)) {
		errs = append(errs, fmt.Sprintf("format.default %q is not a supported format", c.Format.Default))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}
