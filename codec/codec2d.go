package codec

import "github.com/compac/compac/bitstream"

// Codec2D is the block encode/decode adapter for two-dimensional arrays.
// Tiles are 16 values in row-major (y major, x minor) order.
type Codec2D[S Scalar] interface {
	EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p Params)
	DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p Params)
	// EncodeBlockStrided gathers a 4x4 window from base starting at offset,
	// with row stride sx and column stride sy.
	EncodeBlockStrided(w *bitstream.Stream, base []S, offset, sx, sy int, shapeCode uint8, p Params)
	DecodeBlockStrided(r *bitstream.Stream, base []S, offset, sx, sy int, shapeCode uint8, p Params)
}

// FixedRate2D is the default Codec2D implementation; see FixedRate1D.
type FixedRate2D[S Scalar] struct{}

var _ Codec2D[float64] = FixedRate2D[float64]{}

func (FixedRate2D[S]) EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p Params) {
	for i := 0; i < 16; i++ {
		EncodeValue(w, tile[i], p)
	}
}

func (FixedRate2D[S]) DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p Params) {
	for i := 0; i < 16; i++ {
		tile[i] = DecodeValue[S](r, p)
	}
}

func (FixedRate2D[S]) EncodeBlockStrided(w *bitstream.Stream, base []S, offset, sx, sy int, shapeCode uint8, p Params) {
	usedX, usedY := UsedExtent2D(shapeCode)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			var v S
			if i < usedX && j < usedY {
				v = base[offset+i*sx+j*sy]
			}
			EncodeValue(w, v, p)
		}
	}
}

func (FixedRate2D[S]) DecodeBlockStrided(r *bitstream.Stream, base []S, offset, sx, sy int, shapeCode uint8, p Params) {
	usedX, usedY := UsedExtent2D(shapeCode)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			v := DecodeValue[S](r, p)
			if i < usedX && j < usedY {
				base[offset+i*sx+j*sy] = v
			}
		}
	}
}
