package config

import (
	"context"

	"github.com/andrewkroh/paramsql/paramsql"
)

// configKey is used to store config in context.
type configKey struct{}

// WithContext returns a copy of ctx carrying cfg.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from ctx, falling back to defaults when
// none was stored.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return &Config{
		ChunkSize: paramsql.DefaultChunkSize,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		OutputDir: DefaultOutputDir,
	}
}
