// Package config loads paramsql CLI configuration from defaults, a YAML
// file, PARAMSQL_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/andrewkroh/paramsql/internal/logger"
	"github.com/andrewkroh/paramsql/paramsql"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "PARAMSQL_"

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = logger.LogFormatTextValue
	DefaultOutputDir = "."
)

// Config holds all CLI configuration options.
type Config struct {
	ChunkSize int    `koanf:"chunk_size"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	OutputDir string `koanf:"output_dir"`
	Package   string `koanf:"package"`

	// ConfigFile is the path of the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > paramsql.yaml > paramsql.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"paramsql.yaml", "paramsql.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"chunk_size": paramsql.DefaultChunkSize,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
		"output_dir": DefaultOutputDir,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file.
	configFile := findConfigFile(cfgFile)
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// 3. Environment variables. PARAMSQL_CHUNK_SIZE -> chunk_size
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = configFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	switch c.LogFormat {
	case logger.LogFormatJsonValue, logger.LogFormatTextValue:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q",
			logger.LogFormatTextValue, logger.LogFormatJsonValue, c.LogFormat)
	}
	return nil
}
