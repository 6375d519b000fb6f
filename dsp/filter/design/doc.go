// Package design derives filter coefficients from a [Spec].
//
// IIR designs follow the Butterworth method: lowpass and highpass cascades
// are built from RBJ-form biquads at the Butterworth section Q values,
// which is the bilinear transform of the analog prototype prewarped at the
// cutoff. Bandpass and bandstop designs transform the analog prototype
// poles to the band, apply the bilinear transform in zero-pole-gain form
// and pair conjugate roots into second-order sections.
//
// FIR designs use the windowed-sinc method with Order+1 taps.
//
// Every validation failure wraps core.ErrInvalidSpecification.
package design
