// Package spectrum derives magnitude, power and phase views from complex
// transform bins and locates spectral peaks.
//
// [Analyze] windows a real buffer, transforms it and returns the
// half spectrum as a [Spectrum]. The free functions work on any []complex128
// regardless of the transform that produced it. [Goertzel] evaluates a
// single bin without a full transform.
package spectrum
