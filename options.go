package timesystem

// Option configures a TimeSystem tool at construction time.
type Option func(*TimeSystem)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger Logger) Option {
	return func(t *TimeSystem) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// GenerateOption configures a single Generate call. Options are applied per
// invocation and never retained by the tool.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	depsOnly bool
}

// WithDepsOnly controls whether Generate skips registering the timeSystem
// output artifact. When true, only the transitive dependencies are
// registered. The default is false.
func WithDepsOnly(depsOnly bool) GenerateOption {
	return func(c *generateConfig) {
		c.depsOnly = depsOnly
	}
}

func newGenerateConfig(opts []GenerateOption) generateConfig {
	var cfg generateConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
