// Package format defines the small, closed enumerations shared across the
// compac module: the scalar element type and dimensionality of an array, and
// the optional wire-compression algorithm used when a serialized array is
// shipped over a transport (see the transport package).
//
// These are pure value types with no behavior beyond stringification and
// validation; other packages (header, codec, array, transport) refer to
// this closed set of constants instead of passing around raw integers.
package format

import "fmt"

// ScalarType identifies the floating-point element type of an array.
type ScalarType uint8

const (
	// ScalarNone is the zero value, used by a default-constructed array
	// descriptor before a concrete type has been bound to it.
	ScalarNone ScalarType = 0
	// ScalarFloat32 identifies 32-bit IEEE-754 elements.
	ScalarFloat32 ScalarType = 1
	// ScalarFloat64 identifies 64-bit IEEE-754 elements.
	ScalarFloat64 ScalarType = 2
)

func (t ScalarType) String() string {
	switch t {
	case ScalarFloat32:
		return "float32"
	case ScalarFloat64:
		return "float64"
	default:
		return "none"
	}
}

// Size returns the size in bytes of one scalar of this type, or 0 for ScalarNone.
func (t ScalarType) Size() int {
	switch t {
	case ScalarFloat32:
		return 4
	case ScalarFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the known non-zero scalar types.
func (t ScalarType) Valid() bool {
	return t == ScalarFloat32 || t == ScalarFloat64
}

// Dims identifies the dimensionality of an array. Only 1, 2 and 3 are
// supported; the zero value marks an unbound descriptor.
type Dims uint8

const (
	DimsNone Dims = 0
	Dims1    Dims = 1
	Dims2    Dims = 2
	Dims3    Dims = 3
)

func (d Dims) String() string {
	switch d {
	case Dims1:
		return "1d"
	case Dims2:
		return "2d"
	case Dims3:
		return "3d"
	default:
		return "none"
	}
}

// Valid reports whether d is one of the three supported dimensionalities.
func (d Dims) Valid() bool {
	return d == Dims1 || d == Dims2 || d == Dims3
}

// ValuesPerBlock returns 4^d, the number of scalars in one block along this dimensionality.
func (d Dims) ValuesPerBlock() int {
	switch d {
	case Dims1:
		return 4
	case Dims2:
		return 16
	case Dims3:
		return 64
	default:
		return 0
	}
}

// ValidExtents reports whether exactly the first d extents are non-zero, the
// array descriptor invariant that unused axes are zero and used axes are not.
func ValidExtents(d Dims, nx, ny, nz uint32) bool {
	switch d {
	case Dims1:
		return nx > 0 && ny == 0 && nz == 0
	case Dims2:
		return nx > 0 && ny > 0 && nz == 0
	case Dims3:
		return nx > 0 && ny > 0 && nz > 0
	default:
		return nx == 0 && ny == 0 && nz == 0
	}
}

// CompressionType identifies an optional whole-snapshot wire compressor
// applied by the transport package on top of an already-serialized array
// (header + fixed-rate payload). It has no bearing on the fixed-rate layout
// itself, which is always byte-stable regardless of transport.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionZstd CompressionType = 1
	CompressionS2   CompressionType = 2
	CompressionLZ4  CompressionType = 3
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}
