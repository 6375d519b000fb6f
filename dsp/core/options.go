package core

// ProcessorConfig holds settings shared by signal sources and processors.
type ProcessorConfig struct {
	SampleRate float64
	// Seed drives every pseudo-random source, so equal seeds give equal
	// output.
	Seed int64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 48 kHz with seed 1.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		Seed:       1,
	}
}

// WithSampleRate sets the sample rate. Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSeed sets the pseudo-random seed.
func WithSeed(seed int64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.Seed = seed
	}
}

// ApplyProcessorOptions applies opts to the default config. Nil options
// are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
