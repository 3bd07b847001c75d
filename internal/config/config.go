// Package config loads the generator configuration.
//
// Values are layered, later sources winning: built-in defaults, the
// enumgen.yaml file, ENUMGEN_* environment variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"enum-generator/internal/schema"
)

// FileName is the configuration file name without extension.
const FileName = "enumgen"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ENUMGEN"

// Configuration keys. Flags with the same name (dashes for underscores)
// are bound to them.
const (
	KeyPackages    = "packages"
	KeyTypes       = "types"
	KeyRealization = "realization"
	KeySuffix      = "suffix"
	KeyWorkers     = "workers"
	KeyBuildTags   = "build_tags"
	KeyLogLevel    = "log_level"
	KeyDryRun      = "dry_run"
	KeyWatch       = "watch"
)

// Config holds the settings of one generator run.
type Config struct {
	// Packages are the Go package patterns to scan.
	Packages []string `mapstructure:"packages"`
	// Types restricts generation to these type names; empty means every
	// annotated type.
	Types []string `mapstructure:"types"`
	// Realization is the default enumerator layout: array or chain.
	Realization string `mapstructure:"realization"`
	// Suffix is appended to the snake-cased type name for output files.
	Suffix string `mapstructure:"suffix"`
	// Workers bounds concurrent enumerations; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// BuildTags are passed to the package loader.
	BuildTags []string `mapstructure:"build_tags"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// DryRun renders files without writing them.
	DryRun bool `mapstructure:"dry_run"`
	// Watch re-runs generation when sources change.
	Watch bool `mapstructure:"watch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Packages:    []string{"./..."},
		Types:       []string{},
		Realization: schema.RealizationArray.String(),
		Suffix:      "_enum.go",
		Workers:     0,
		BuildTags:   []string{},
		LogLevel:    "info",
	}
}

// New returns a viper instance with defaults, file search path and
// environment overrides configured.
func New() *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyPackages, def.Packages)
	v.SetDefault(KeyTypes, def.Types)
	v.SetDefault(KeyRealization, def.Realization)
	v.SetDefault(KeySuffix, def.Suffix)
	v.SetDefault(KeyWorkers, def.Workers)
	v.SetDefault(KeyBuildTags, def.BuildTags)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyDryRun, def.DryRun)
	v.SetDefault(KeyWatch, def.Watch)

	return v
}

// BindFlags binds every flag of fs that names a configuration key.
// Only flags set on the command line override the file and environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeyTypes, KeyRealization, KeySuffix, KeyWorkers,
		KeyBuildTags, KeyLogLevel, KeyDryRun, KeyWatch,
	} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	}

	return nil
}

// Load reads the configuration. An explicit path must exist; without one,
// enumgen.yaml is searched in the working directory and is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error

	if _, err := schema.ParseRealization(c.Realization); err != nil {
		errs = append(errs, fmt.Errorf("realization: %w", err))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers: must not be negative, got %d", c.Workers))
	}

	if !strings.HasSuffix(c.Suffix, ".go") || strings.ContainsAny(c.Suffix, `/\`) {
		errs = append(errs, fmt.Errorf("suffix: %q must end in .go and contain no path separator", c.Suffix))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return nil
}

// RealizationValue returns the parsed default realization.
func (c *Config) RealizationValue() schema.Realization {
	r, _ := schema.ParseRealization(c.Realization)
	return r.Or(schema.RealizationArray)
}

// ParseLogLevel converts a level name into a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}
