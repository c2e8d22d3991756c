package codec

import "github.com/compac/compac/bitstream"

// MaxBitsPerValue bounds BitsPerValue so the two's-complement quantizer in
// quantize.go can always work in int64 arithmetic without edge-of-range
// overflow; it is far above any rate a caller would realistically request.
const MaxBitsPerValue = 32

// Negotiate turns a caller-requested rate (bits per value) into a concrete
// bits_per_block for a block holding valuesPerBlock scalars.
//
// bits_per_block is rounded up to the next multiple of the bit-word width so
// every block starts on a word boundary, enabling O(1) random access to any
// block's slot; it is never less than one word. The rate actually achieved,
// bits_per_block/valuesPerBlock, is returned alongside it.
func Negotiate(rate float64, valuesPerBlock int) (bitsPerBlock int, bitsPerValue int) {
	if rate < 0 {
		rate = 0
	}

	want := int(rate*float64(valuesPerBlock) + 0.999999999)
	if want < 1 {
		want = 1
	}

	bitsPerBlock = roundUp(want, bitstream.WordBits)
	if bitsPerBlock < bitstream.WordBits {
		bitsPerBlock = bitstream.WordBits
	}

	bitsPerValue = bitsPerBlock / valuesPerBlock
	if bitsPerValue > MaxBitsPerValue {
		bitsPerValue = MaxBitsPerValue
		bitsPerBlock = bitsPerValue * valuesPerBlock
		bitsPerBlock = roundUp(bitsPerBlock, bitstream.WordBits)
		bitsPerValue = bitsPerBlock / valuesPerBlock
	}

	return bitsPerBlock, bitsPerValue
}

func roundUp(n, multiple int) int {
	rem := n % multiple
	if rem == 0 {
		return n
	}

	return n + (multiple - rem)
}
