// Package factory probes a serialized buffer to construct the correct
// (dims, scalar type) array variant without the caller needing to know it
// in advance.
//
// Every array's header is self-describing, so at most one of the six
// supported variants can parse a given buffer successfully; the factory
// tries each in a fixed order and returns the first success, swallowing
// every other variant's error along the way.
package factory
