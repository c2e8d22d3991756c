package transport

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// snapshotLenBytes is the width of the uncompressed-length prefix Compress
// writes ahead of the LZ4 block, so Decompress can size its output buffer
// exactly instead of guessing. Every input here is an assembled snapshot
// (see Assembler/BatchAssembler), never an arbitrary stream, so its size is
// always known up front.
const snapshotLenBytes = 8

// Compress compresses data using LZ4 block compression, using a pooled
// lz4.Compressor for better performance. The output is framed as an 8-byte
// little-endian uncompressed length followed by the LZ4 block, so Decompress
// never has to guess-and-grow a destination buffer.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, snapshotLenBytes+dstSize)
	byteOrder.PutUint64(dst[:snapshotLenBytes], uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[snapshotLenBytes:])
	if err != nil {
		return nil, err
	}

	return dst[:snapshotLenBytes+n], nil
}

// Decompress decompresses data previously produced by Compress: it reads
// the uncompressed length prefix, allocates exactly that much, and
// decompresses the LZ4 block directly into it.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < snapshotLenBytes {
		return nil, lz4.ErrInvalidSourceShortBuffer
	}

	origLen := byteOrder.Uint64(data[:snapshotLenBytes])
	buf := make([]byte, origLen)

	n, err := lz4.UncompressBlock(data[snapshotLenBytes:], buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
