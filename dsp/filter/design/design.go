package design

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/logging"
)

type config struct {
	checkStability bool
}

// Option configures Design.
type Option func(*config)

// WithStabilityCheck makes Design verify every IIR section after the
// design and fail with core.ErrNumericInstability when a pole lies on or
// outside the unit circle.
func WithStabilityCheck() Option {
	return func(c *config) { c.checkStability = true }
}

// Design derives filter coefficients from spec.
func Design(spec Spec, opts ...Option) (Coefficients, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	if err := spec.Validate(); err != nil {
		return Coefficients{}, err
	}

	var (
		out Coefficients
		err error
	)
	switch spec.Method {
	case WindowedSinc:
		out, err = designSinc(spec)
	default:
		out, err = designButterworth(spec)
	}
	if err != nil {
		return Coefficients{}, err
	}

	if cfg.checkStability {
		if err := checkStable(out); err != nil {
			return Coefficients{}, err
		}
	}

	logging.Named("design").Debug("designed filter",
		zap.Stringer("method", spec.Method),
		zap.Stringer("response", spec.Response),
		zap.Int("order", out.Order()),
		zap.Int("sections", len(out.Sections)),
		zap.Int("taps", len(out.Taps)),
	)
	return out, nil
}

func checkStable(c Coefficients) error {
	for i := range c.Sections {
		s := c.Sections[i]
		if !core.IsFinite(s.B0) || !core.IsFinite(s.B1) || !core.IsFinite(s.B2) ||
			!core.IsFinite(s.A1) || !core.IsFinite(s.A2) {
			return fmt.Errorf("design: section %d has non-finite coefficients: %w", i, core.ErrNumericInstability)
		}
		if !s.Stable() {
			return fmt.Errorf("design: section %d pole radius %.6f: %w",
				i, s.MaxPoleRadius(), core.ErrNumericInstability)
		}
	}
	for i, t := range c.Taps {
		if !core.IsFinite(t) {
			return fmt.Errorf("design: tap %d is not finite: %w", i, core.ErrNumericInstability)
		}
	}
	return nil
}
