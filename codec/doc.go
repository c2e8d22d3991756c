// Package codec implements the block encode/decode adapter the block cache
// calls on a miss or eviction: it turns a dense 4^d tile of scalars into
// exactly bits_per_block bits at the bitstream's current cursor, and back.
//
// The adapter is deliberately simple relative to a general-purpose transform
// coder: every value is quantized independently to a fixed number of bits
// around a shared, per-array exponent (Params.MinExp), the "mode-short" rate
// parameter carried in the header. This keeps the contract the block cache
// depends on - a fixed bits_per_block slot per block, byte-for-byte
// reproducible for identical input - without requiring per-block side
// channels. Swapping in a different numeric scheme only ever touches this
// package: the cache and array façade address it purely through the Codec1D/
// Codec2D/Codec3D interfaces below.
package codec
