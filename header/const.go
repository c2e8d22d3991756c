package header

import "github.com/compac/compac/bitstream"

// Bit widths of the three framed atoms that make up a header. Their
// internal layout is treated as an implementation detail of this package;
// callers only ever see the parsed Header struct.
const (
	MagicBits     = 32
	MetaBits      = 128
	ModeShortBits = 64

	// HeaderBits is the total size of the framed header, before padding.
	HeaderBits = MagicBits + MetaBits + ModeShortBits

	// Magic identifies this header family. It is the first framed field,
	// stored as a little-endian uint32.
	Magic uint32 = 0x43415252 // "CARR"
)

// Offset is the number of zero padding bits placed before the framed
// header so that its last bit lands on the high bit of a bit-word. Payload
// data begins immediately after, on a word boundary.
func Offset() int {
	rem := HeaderBits % bitstream.WordBits
	if rem == 0 {
		return 0
	}

	return bitstream.WordBits - rem
}

// Bytes returns the total size in bytes of the header region: padding plus
// the framed header, rounded up to a whole number of words.
func Bytes() int {
	total := Offset() + HeaderBits

	return total / 8
}
