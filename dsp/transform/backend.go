package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	godspfft "github.com/mjibson/go-dsp/fft"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-sigproc/logging"
)

// forwardKernel computes the unnormalized forward DFT of src into dst.
// Both slices have the same length.
type forwardKernel func(dst, src []complex128) error

func kernelFor(b Backend) forwardKernel {
	switch b {
	case BackendAlgoFFT:
		return forwardAlgoFFT
	case BackendGonum:
		return forwardGonum
	case BackendGoDSP:
		return forwardGoDSP
	default:
		return nil
	}
}

func forwardAlgoFFT(dst, src []complex128) error {
	plan, err := algofft.NewPlan64(len(src))
	if err != nil {
		return fmt.Errorf("transform: algofft plan for %d: %w", len(src), err)
	}
	return plan.Forward(dst, src)
}

func forwardGonum(dst, src []complex128) error {
	fourier.NewCmplxFFT(len(src)).Coefficients(dst, src)
	return nil
}

func forwardGoDSP(dst, src []complex128) error {
	copy(dst, godspfft.FFT(src))
	return nil
}

// logFallback records that a backend declined a length.
func logFallback(b Backend, n int, err error) {
	logging.Named("transform").Debug("backend fallback to native",
		zap.Stringer("backend", b),
		zap.Int("n", n),
		zap.Error(err),
	)
}
