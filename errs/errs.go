// Package errs collects the sentinel errors returned by the compac module.
//
// The deserializing array constructors return only these sentinels, so
// callers can compare with errors.Is; transport.SplitBatch also returns
// ErrBufferTooSmall for a truncated batch. The variant factory swallows them
// and reports only ok=false, and the transport codecs return their
// compression libraries' own errors.
package errs

import "errors"

var (
	// ErrBufferTooSmall is returned when a caller-supplied buffer is smaller
	// than the header, or smaller than header+payload once the payload size
	// is known from a parsed header.
	ErrBufferTooSmall = errors.New("compac: buffer too small")

	// ErrInvalidHeader is returned when the framed magic/meta does not parse
	// as a header of this family.
	ErrInvalidHeader = errors.New("compac: invalid header")

	// ErrScalarTypeMismatch is returned when a header's scalar type disagrees
	// with the concrete array variant being constructed.
	ErrScalarTypeMismatch = errors.New("compac: scalar type mismatch")

	// ErrDimensionalityMismatch is returned when a header's non-zero extents
	// do not match the declared dimensionality of the array variant being
	// constructed.
	ErrDimensionalityMismatch = errors.New("compac: dimensionality mismatch")
)
