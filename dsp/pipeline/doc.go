// Package pipeline chains processing stages into a reusable graph.
//
// A Pipeline applies its stages in declared order. The first stage error
// stops processing and is returned unchanged, so errors.Is against the
// dsp/core sentinels works on pipeline errors exactly as on stage errors.
//
// The pipeline itself holds no numeric state. Window and transform stages
// are reentrant. Filter stages own delay lines: a pipeline that contains a
// streaming filter stage must not be shared between goroutines. Clone
// gives each caller independent filter state, and Multi does that per
// channel.
package pipeline
