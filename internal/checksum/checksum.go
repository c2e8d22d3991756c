// Package checksum computes deterministic content hashes over decoded
// scalar buffers and raw byte regions. It backs the array façade's ability
// to be checked for the round-trip and determinism properties described in
// the module's test suite: hashing a decompressed array is a pure function
// of its bit pattern, so two arrays built the same way always hash equal.
package checksum

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Bytes returns the xxHash64 of a raw byte region, e.g. a header or a
// compressed payload.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Float32s returns the xxHash64 of a float32 slice's bit pattern.
//
// NaN payload bits are hashed as-is: two decoded arrays are only expected to
// hash equal when their underlying bits are equal, which is the property
// the fixed-rate codec guarantees for identical inputs.
func Float32s(data []float32) uint64 {
	if len(data) == 0 {
		return xxhash.Sum64(nil)
	}

	buf := make([]byte, 4*len(data))
	for i, v := range data {
		bits := math.Float32bits(v)
		buf[4*i+0] = byte(bits)
		buf[4*i+1] = byte(bits >> 8)
		buf[4*i+2] = byte(bits >> 16)
		buf[4*i+3] = byte(bits >> 24)
	}

	return xxhash.Sum64(buf)
}

// Float64s returns the xxHash64 of a float64 slice's bit pattern.
func Float64s(data []float64) uint64 {
	if len(data) == 0 {
		return xxhash.Sum64(nil)
	}

	buf := make([]byte, 8*len(data))
	for i, v := range data {
		bits := math.Float64bits(v)
		for b := 0; b < 8; b++ {
			buf[8*i+b] = byte(bits >> (8 * b))
		}
	}

	return xxhash.Sum64(buf)
}
