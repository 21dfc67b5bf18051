package acrotex

// FormatOption configures formatting behavior.
type FormatOption func(*formatConfig)

type formatConfig struct {
	escape bool
	jobs   int
}

func newFormatConfig(opts []FormatOption) formatConfig {
	cfg := formatConfig{jobs: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEscape enables or disables escaping of LaTeX reserved characters.
func WithEscape(enabled bool) FormatOption {
	return func(cfg *formatConfig) {
		cfg.escape = enabled
	}
}

// WithConcurrency formats entries on up to n goroutines. Output order is
// unaffected. Values below 1 mean 1.
func WithConcurrency(n int) FormatOption {
	return func(cfg *formatConfig) {
		if n < 1 {
			n = 1
		}
		cfg.jobs = n
	}
}
