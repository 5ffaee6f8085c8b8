package paramsql

// DefaultChunkSize is the maximum number of rows emitted in a single
// INSERT ... VALUES statement. SQL Server rejects row constructors with more
// than 1000 rows.
const DefaultChunkSize = 1000

// Option configures the behavior of Compile and Generate.
type Option func(*generateConfig)

type generateConfig struct {
	chunkSize int
}

// WithChunkSize overrides the number of rows per INSERT statement. Values
// less than one select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(c *generateConfig) {
		c.chunkSize = n
	}
}

func newGenerateConfig(opts []Option) *generateConfig {
	cfg := &generateConfig{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.chunkSize < 1 {
		cfg.chunkSize = DefaultChunkSize
	}
	return cfg
}
