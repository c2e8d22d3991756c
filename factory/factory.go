package factory

import (
	"github.com/compac/compac/array"
	"github.com/compac/compac/format"
)

// Any is the common surface every constructed array variant exposes,
// enough for a caller who does not know a buffer's concrete (dims, scalar
// type) ahead of time to inspect and re-serialize it.
type Any interface {
	Dims() format.Dims
	ScalarType() format.ScalarType
	Extents() (nx, ny, nz uint32)
	HeaderData() []byte
	HeaderSize() int
	CompressedData() []byte
	CompressedSize() int
}

// ConstructFromStream tries each supported (dims, scalar type) variant in
// turn and returns the first that successfully parses buf's header. All
// per-attempt errors are swallowed: a well-formed header for one variant
// is, by construction, not a well-formed header for any other, so failures
// carry no information beyond "not this one". Returns ok=false if no
// variant matches, e.g. a zeroed buffer.
func ConstructFromStream(buf []byte, maxBytes int) (a Any, ok bool) {
	if arr, err := array.DeserializeArray1D[float32](buf, maxBytes); err == nil {
		return arr, true
	}
	if arr, err := array.DeserializeArray1D[float64](buf, maxBytes); err == nil {
		return arr, true
	}
	if arr, err := array.DeserializeArray2D[float32](buf, maxBytes); err == nil {
		return arr, true
	}
	if arr, err := array.DeserializeArray2D[float64](buf, maxBytes); err == nil {
		return arr, true
	}
	if arr, err := array.DeserializeArray3D[float32](buf, maxBytes); err == nil {
		return arr, true
	}
	if arr, err := array.DeserializeArray3D[float64](buf, maxBytes); err == nil {
		return arr, true
	}

	return nil, false
}
