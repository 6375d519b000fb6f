// Package buffer provides the sample containers shared by the rest of the
// module: a real-valued Buffer, a complex-valued Complex spectrum buffer and
// a Multi container for channels of equal length and rate. Every container
// carries its sample rate so that downstream stages can derive bin spacing
// and check that a filter and a signal live in the same domain.
//
// Library operations never write into a buffer they were given; they return
// a new one. Pool supplies zeroed scratch slices for hot paths.
package buffer
