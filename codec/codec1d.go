package codec

import "github.com/compac/compac/bitstream"

// Codec1D is the block encode/decode adapter for one-dimensional arrays.
type Codec1D[S Scalar] interface {
	// EncodeBlock writes tile (len 4) as exactly Params.BitsPerValue*4 bits.
	EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p Params)
	// DecodeBlock reads a full 4-value tile back.
	DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p Params)
	// EncodeBlockStrided gathers up to 4 values from base starting at
	// offset with stride sx, honoring shapeCode's used extent, and encodes
	// them the same way EncodeBlock would encode a contiguous tile.
	EncodeBlockStrided(w *bitstream.Stream, base []S, offset, sx int, shapeCode uint8, p Params)
	// DecodeBlockStrided decodes a block and scatters only its used lanes
	// into base at offset with stride sx.
	DecodeBlockStrided(r *bitstream.Stream, base []S, offset, sx int, shapeCode uint8, p Params)
}

// FixedRate1D is the default Codec1D: independent fixed-point quantization
// of each value, no cross-lane state. See doc.go for the rationale.
type FixedRate1D[S Scalar] struct{}

var _ Codec1D[float64] = FixedRate1D[float64]{}

func (FixedRate1D[S]) EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p Params) {
	for i := 0; i < 4; i++ {
		EncodeValue(w, tile[i], p)
	}
}

func (FixedRate1D[S]) DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p Params) {
	for i := 0; i < 4; i++ {
		tile[i] = DecodeValue[S](r, p)
	}
}

func (FixedRate1D[S]) EncodeBlockStrided(w *bitstream.Stream, base []S, offset, sx int, shapeCode uint8, p Params) {
	used := UsedExtent1D(shapeCode)
	for i := 0; i < 4; i++ {
		var v S
		if i < used {
			v = base[offset+i*sx]
		}
		EncodeValue(w, v, p)
	}
}

func (FixedRate1D[S]) DecodeBlockStrided(r *bitstream.Stream, base []S, offset, sx int, shapeCode uint8, p Params) {
	used := UsedExtent1D(shapeCode)
	for i := 0; i < 4; i++ {
		v := DecodeValue[S](r, p)
		if i < used {
			base[offset+i*sx] = v
		}
	}
}
