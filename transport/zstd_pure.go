//go:build !cgo

package transport

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/compac/compac/internal/pool"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation overhead.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // Disable CRC for performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// Compress compresses data with a pooled encoder. The destination scratch
// buffer is borrowed from the same snapshot pool transport.Assembler draws
// from, since a snapshot's compressed size is usually in the same ballpark
// as its uncompressed size (fixed-rate payloads are already dense).
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	scratch := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(scratch)

	// EncodeAll is stateless - safe to use with a pooled encoder. It may
	// grow scratch.B's backing array past the pool's threshold; Put
	// discards oversized buffers rather than retaining them.
	compressed := encoder.EncodeAll(data, scratch.B[:0])

	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Decompress decompresses Zstd-compressed data using a pooled decoder.
// Returns an error if data is corrupted or was not compressed with Zstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder. Even if this
	// call fails, the decoder can be reused for the next call.
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
