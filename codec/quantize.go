package codec

import (
	"math"

	"github.com/compac/compac/bitstream"
)

// Params carries the per-array constants every block encode/decode needs:
// how many bits each value occupies and the fixed-point scale to quantize
// around. Both come from the header's rate parameters (MaxPrec, MinExp).
type Params struct {
	// BitsPerValue is bits_per_block/values_per_block, always a whole
	// number because bits_per_block is a multiple of the word width and
	// values_per_block (4, 16 or 64) always divides it.
	BitsPerValue int
	// MinExp is the exponent of the fixed-point scale step: step = 2^(MinExp-(BitsPerValue-1)).
	MinExp int16
}

// step returns the quantization step size for these params.
func (p Params) step() float64 {
	return math.Ldexp(1, int(p.MinExp)-(p.BitsPerValue-1))
}

// EncodeValue quantizes v to a BitsPerValue-bit two's-complement code and
// writes it to w at the current write cursor.
func EncodeValue[S Scalar](w *bitstream.Stream, v S, p Params) {
	w.WriteBits(quantize(float64(v), p), p.BitsPerValue)
}

// DecodeValue reads a BitsPerValue-bit two's-complement code from r at the
// current read cursor and dequantizes it to S.
func DecodeValue[S Scalar](r *bitstream.Stream, p Params) S {
	return S(dequantize(r.ReadBits(p.BitsPerValue), p))
}

func quantize(v float64, p Params) uint64 {
	if math.IsNaN(v) {
		v = 0
	}

	n := p.BitsPerValue
	lo := -(int64(1) << uint(n-1))
	hi := int64(1)<<uint(n-1) - 1

	scaled := math.Round(v / p.step())
	iq := int64(0)
	switch {
	case scaled <= float64(lo):
		iq = lo
	case scaled >= float64(hi):
		iq = hi
	default:
		iq = int64(scaled)
	}

	mask := uint64(1)<<uint(n) - 1

	return uint64(iq) & mask
}

func dequantize(code uint64, p Params) float64 {
	n := p.BitsPerValue
	sign := uint64(1) << uint(n-1)
	iq := int64(code)
	if code&sign != 0 {
		iq -= int64(1) << uint(n)
	}

	return float64(iq) * p.step()
}
