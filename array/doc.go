// Package array implements the public, element-addressable compressed
// array: construction, resize, rate negotiation, element and bulk
// get/set/update, block-major iteration, deep copy, and serialization.
//
// It composes the lower packages the way the design calls for: a shared
// core owns the aligned buffer, the header, the bitstream view and the
// block cache; the per-dimensionality Array1D/Array2D/Array3D types add
// only the coordinate math and the strided bulk paths that genuinely
// differ by dimensionality. Every element access routes through the core's
// cache; only the bulk GetAll/SetAll methods talk to the bitstream
// directly, as the codec's strided variants already handle partial boundary
// blocks on their own. GetAll flushes the cache before decoding so dirty
// lines are seen; SetAll clears the cache after encoding.
package array
