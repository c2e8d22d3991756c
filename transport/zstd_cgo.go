//go:build cgo

package transport

import (
	"github.com/valyala/gozstd"

	"github.com/compac/compac/internal/pool"
)

// zstdLevel is a modest level: a fixed-rate payload is already close to its
// target entropy, so spending more CPU chasing a better ratio rarely pays
// for itself the way it would on raw floating-point data.
const zstdLevel = 3

// Compress compresses data using cgo-backed Zstandard, borrowing its
// destination scratch buffer from the snapshot pool.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	scratch := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(scratch)

	compressed := gozstd.CompressLevel(scratch.B[:0], data, zstdLevel)
	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Decompress reverses Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
