// Package bitstream implements the bit-addressable read/write view over a
// byte buffer that the block cache and codec packages use to place and
// retrieve fixed-length compressed blocks.
//
// A Stream never allocates its own backing storage; it opens a caller-owned
// byte slice and exposes independent read and write cursors addressed in
// bits. Bits are packed little-endian within each word: bit i of word w
// lives at byte w*WordBytes+i/8, bit i%8, matching the byte order Stream
// uses when it later reads the same region back with encoding/binary.
//
// This package has no notion of arrays, blocks or scalar types; it is a
// narrow, reusable primitive consumed by the codec package (which encodes
// one block at a time) and the cache package (which decides when to call
// the codec).
package bitstream
