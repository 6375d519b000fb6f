// Package conv provides linear and circular convolution of real sequences.
//
//   - [Direct]: time-domain O(N*M) linear convolution, best for short kernels
//   - [FFT]: linear convolution through a zero-padded power-of-two FFT
//   - [Circular]: N-point circular convolution of two equal-length sequences
//
// [Convolve] picks Direct or FFT from the kernel length, and [ConvolveMode]
// trims the full result to the "same" or "valid" region.
package conv
