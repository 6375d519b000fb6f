// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a fixed tap set through a delay line with a write
// cursor. The delay line is stored twice back to back so that the most
// recent N samples are always contiguous, which lets each output be a single
// SIMD dot product against the reversed taps.
//
// This package provides the processing runtime only. Windowed-sinc design
// lives in dsp/filter/design.
package fir
