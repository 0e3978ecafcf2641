package core

// DefaultMinVectorSpan is the shortest span handed to the vector Haar kernel.
const DefaultMinVectorSpan = 16

// TransformConfig defines common settings for the grid transforms.
type TransformConfig struct {
	// Workers is the number of goroutines used for the row and column passes
	// of one decomposition level. 1 runs synchronously.
	Workers int

	// MinVectorSpan is the shortest 1D span processed by the vector kernel.
	// Shorter spans use the scalar butterfly.
	MinVectorSpan int
}

// TransformOption mutates a TransformConfig.
type TransformOption func(*TransformConfig)

// DefaultTransformConfig returns a synchronous configuration.
func DefaultTransformConfig() TransformConfig {
	return TransformConfig{
		Workers:       1,
		MinVectorSpan: DefaultMinVectorSpan,
	}
}

// WithWorkers sets the row/column fan-out.
func WithWorkers(workers int) TransformOption {
	return func(cfg *TransformConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithMinVectorSpan sets the shortest span handled by the vector kernel.
func WithMinVectorSpan(span int) TransformOption {
	return func(cfg *TransformConfig) {
		if span > 1 {
			cfg.MinVectorSpan = span
		}
	}
}

// ApplyTransformOptions applies zero or more options to the default config.
func ApplyTransformOptions(opts ...TransformOption) TransformConfig {
	cfg := DefaultTransformConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
