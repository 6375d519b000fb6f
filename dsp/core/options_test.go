package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithSeed(7), nil)
	assert.Equal(t, ProcessorConfig{SampleRate: 96000, Seed: 7}, cfg)
}

func TestNonPositiveSampleRateIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithSampleRate(-44100))
	assert.Equal(t, DefaultProcessorConfig(), cfg)
}
