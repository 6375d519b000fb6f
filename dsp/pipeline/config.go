package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter"
	"github.com/cwbudde/algo-sigproc/dsp/filter/design"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

// Config describes a pipeline by stage names, for YAML files and the CLI.
//
//	sample_rate: 48000
//	stages:
//	  - type: window
//	    window: hann
//	  - type: forward
//	    backend: algofft
type Config struct {
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate"`
	Stages     []StageConfig `yaml:"stages" mapstructure:"stages"`
}

// StageConfig describes one stage. Fields that do not apply to Type are
// ignored.
type StageConfig struct {
	// Type is one of window, forward, inverse, filter.
	Type string `yaml:"type" mapstructure:"type"`

	// window
	Window   string  `yaml:"window,omitempty" mapstructure:"window"`
	Periodic bool    `yaml:"periodic,omitempty" mapstructure:"periodic"`
	Alpha    float64 `yaml:"alpha,omitempty" mapstructure:"alpha"`

	// forward, inverse
	Backend   string `yaml:"backend,omitempty" mapstructure:"backend"`
	Arbitrary string `yaml:"arbitrary,omitempty" mapstructure:"arbitrary"`
	Real      bool   `yaml:"real,omitempty" mapstructure:"real"`

	// filter
	Response       string  `yaml:"response,omitempty" mapstructure:"response"`
	Method         string  `yaml:"method,omitempty" mapstructure:"method"`
	Order          int     `yaml:"order,omitempty" mapstructure:"order"`
	Cutoff         float64 `yaml:"cutoff,omitempty" mapstructure:"cutoff"`
	CutoffHigh     float64 `yaml:"cutoff_high,omitempty" mapstructure:"cutoff_high"`
	Batch          bool    `yaml:"batch,omitempty" mapstructure:"batch"`
	StabilityCheck bool    `yaml:"stability_check,omitempty" mapstructure:"stability_check"`
}

// ParseConfig decodes a YAML pipeline description. Unknown keys are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("pipeline: parse config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// FromConfig builds a pipeline from cfg. Configuration errors wrap
// core.ErrInvalidSpecification.
func FromConfig(cfg Config) (*Pipeline, error) {
	stages := make([]Stage, 0, len(cfg.Stages))
	for i, sc := range cfg.Stages {
		s, err := buildStage(sc, cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("pipeline: stage %d (%s): %w", i, sc.Type, err)
		}
		stages = append(stages, s)
	}
	return New(stages...), nil
}

func buildStage(sc StageConfig, sampleRate float64) (Stage, error) {
	typ := strings.ToLower(strings.TrimSpace(sc.Type))
	switch typ {
	case "window":
		t, err := window.ParseType(sc.Window)
		if err != nil {
			return nil, err
		}
		var opts []window.Option
		if sc.Periodic {
			opts = append(opts, window.WithPeriodic())
		}
		if sc.Alpha != 0 {
			opts = append(opts, window.WithAlpha(sc.Alpha))
		}
		return WindowType(t, opts...), nil

	case "forward", "inverse":
		e, err := engineFromConfig(sc)
		if err != nil {
			return nil, err
		}
		if typ == "forward" {
			return Forward(e), nil
		}
		return Inverse(e, sc.Real), nil

	case "filter":
		spec, err := specFromConfig(sc, sampleRate)
		if err != nil {
			return nil, err
		}
		var opts []design.Option
		if sc.StabilityCheck {
			opts = append(opts, design.WithStabilityCheck())
		}
		f, err := filter.New(spec, opts...)
		if err != nil {
			return nil, err
		}
		if sc.Batch {
			return FilterBatch(f), nil
		}
		return Filter(f), nil

	default:
		return nil, fmt.Errorf("unknown stage type %q: %w", sc.Type, core.ErrInvalidSpecification)
	}
}

func engineFromConfig(sc StageConfig) (*transform.Engine, error) {
	b, err := transform.ParseBackend(sc.Backend)
	if err != nil {
		return nil, err
	}
	s, err := transform.ParseStrategy(sc.Arbitrary)
	if err != nil {
		return nil, err
	}
	return transform.New(transform.WithBackend(b), transform.WithArbitraryLength(s)), nil
}

func specFromConfig(sc StageConfig, sampleRate float64) (design.Spec, error) {
	r, err := design.ParseResponse(sc.Response)
	if err != nil {
		return design.Spec{}, err
	}
	m, err := design.ParseMethod(sc.Method)
	if err != nil {
		return design.Spec{}, err
	}
	return design.Spec{
		Response:   r,
		Order:      sc.Order,
		Cutoff:     sc.Cutoff,
		CutoffHigh: sc.CutoffHigh,
		SampleRate: sampleRate,
		Method:     m,
		Window:     sc.Window,
	}, nil
}
