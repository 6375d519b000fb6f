// Package signal generates deterministic test signals as sample buffers.
package signal
