// Package filter applies designed filters to sample buffers.
//
// A Filter is built from a design.Spec and owns its delay-line state. Apply
// carries that state across calls, so filtering a signal in consecutive
// chunks gives the same output as filtering it in one call. ApplyBatch
// resets the state before and after and behaves as a pure function of its
// input.
//
// A Filter is not safe for concurrent use. Use Clone to give each goroutine
// its own instance.
//
// Subpackages hold the building blocks: biquad (IIR sections and
// cascades), fir (direct-form FIR) and design (coefficient design).
package filter
