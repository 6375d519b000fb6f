// Package biquad provides the second-order IIR section runtime.
//
// A [Section] runs Direct Form II Transposed over one set of [Coefficients],
// keeping its two-element delay line between calls so that consecutive
// blocks filter exactly like one long block. Higher orders cascade sections
// through a [Chain].
//
// Coefficient design lives in dsp/filter/design.
package biquad
