package transport

// ZstdCompressor provides Zstandard compression for a serialized array
// snapshot (header plus fixed-rate payload).
//
// This compressor favors ratio over speed, making it the right choice for:
//   - archiving snapshots to cold storage
//   - shipping snapshots over bandwidth-limited links
//   - any path where decompression happens far less often than compression
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
