// Package compac provides a compressed, element-addressable floating-point
// array with a fixed per-value bit rate, modeled on ZFP's fixed-rate mode: a
// caller picks a bit budget per value up front, and every read or write
// after that goes through a small in-memory block cache that keeps only a
// handful of decompressed tiles resident at a time.
//
// # Core Features
//
//   - 1D, 2D and 3D arrays of float32 or float64, all sharing one on-disk
//     layout family
//   - Fixed-rate compression: a chosen bits-per-value budget, not exact
//     precision, bounds storage size
//   - Direct-mapped block cache so random element access stays cheap without
//     holding the whole array decompressed
//   - Self-describing 32-byte header so a buffer can be reconstructed without
//     out-of-band type information
//   - Whole-array bulk transfer (GetAll/SetAll): GetAll flushes the cache
//     first so it never misses a dirty Set/At write; SetAll bypasses the
//     cache entirely since it overwrites every element anyway
//   - Optional whole-snapshot wire compression (Zstd, S2, LZ4) via the
//     transport package, layered on top of the fixed-rate payload
//
// # Basic Usage
//
//	import "github.com/compac/compac"
//
//	a, err := compac.NewArray2D[float64](256, 256, 16, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a.Set(10, 20, 3.5)
//	fmt.Println(a.Get(10, 20))
//
//	blob := append(a.HeaderData(), a.CompressedData()...)
//	b, err := compac.DeserializeArray2D[float64](blob, len(blob))
//
// Reconstructing an array whose dimensionality and scalar type are not known
// ahead of time:
//
//	got, ok := compac.ConstructFromStream(blob, len(blob))
//	if ok {
//	    fmt.Println(got.Dims(), got.ScalarType())
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the array and
// factory packages, covering the common construction paths. For write-proxy
// access, iteration, cache tuning and deep copies, use the array package
// directly.
package compac

import (
	"github.com/compac/compac/array"
	"github.com/compac/compac/codec"
	"github.com/compac/compac/factory"
)

// NewArray1D constructs an nx-length compressed array at the given rate
// (bits per value). If source is non-nil its values are bulk-encoded in
// immediately.
func NewArray1D[S codec.Scalar](nx uint32, rate float64, source []S, opts ...array.Option) (*array.Array1D[S], error) {
	return array.NewArray1D[S](nx, rate, source, opts...)
}

// NewArray2D constructs an nx-by-ny compressed array at the given rate.
func NewArray2D[S codec.Scalar](nx, ny uint32, rate float64, source []S, opts ...array.Option) (*array.Array2D[S], error) {
	return array.NewArray2D[S](nx, ny, rate, source, opts...)
}

// NewArray3D constructs an nx-by-ny-by-nz compressed array at the given rate.
func NewArray3D[S codec.Scalar](nx, ny, nz uint32, rate float64, source []S, opts ...array.Option) (*array.Array3D[S], error) {
	return array.NewArray3D[S](nx, ny, nz, rate, source, opts...)
}

// DefaultArray1D returns a zero-extent, zero-rate 1D array: legal but not
// usable for element access until Resize and SetRate are both called.
func DefaultArray1D[S codec.Scalar]() *array.Array1D[S] {
	return array.DefaultArray1D[S]()
}

// DefaultArray2D returns a zero-extent, zero-rate 2D array: legal but not
// usable for element access until Resize and SetRate are both called.
func DefaultArray2D[S codec.Scalar]() *array.Array2D[S] {
	return array.DefaultArray2D[S]()
}

// DefaultArray3D returns a zero-extent, zero-rate 3D array: legal but not
// usable for element access until Resize and SetRate are both called.
func DefaultArray3D[S codec.Scalar]() *array.Array3D[S] {
	return array.DefaultArray3D[S]()
}

// DeserializeArray1D reconstructs a 1D array previously serialized as
// header+payload bytes.
func DeserializeArray1D[S codec.Scalar](buf []byte, maxBytes int) (*array.Array1D[S], error) {
	return array.DeserializeArray1D[S](buf, maxBytes)
}

// DeserializeArray2D reconstructs a 2D array previously serialized as
// header+payload bytes.
func DeserializeArray2D[S codec.Scalar](buf []byte, maxBytes int) (*array.Array2D[S], error) {
	return array.DeserializeArray2D[S](buf, maxBytes)
}

// DeserializeArray3D reconstructs a 3D array previously serialized as
// header+payload bytes.
func DeserializeArray3D[S codec.Scalar](buf []byte, maxBytes int) (*array.Array3D[S], error) {
	return array.DeserializeArray3D[S](buf, maxBytes)
}

// ConstructFromStream reconstructs whichever of the six (dims, scalar type)
// array variants buf's header describes, without the caller needing to know
// which one ahead of time.
func ConstructFromStream(buf []byte, maxBytes int) (factory.Any, bool) {
	return factory.ConstructFromStream(buf, maxBytes)
}
