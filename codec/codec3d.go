package codec

import "github.com/compac/compac/bitstream"

// Codec3D is the block encode/decode adapter for three-dimensional arrays.
// Tiles are 64 values ordered z major, y, x minor.
type Codec3D[S Scalar] interface {
	EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p Params)
	DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p Params)
	EncodeBlockStrided(w *bitstream.Stream, base []S, offset, sx, sy, sz int, shapeCode uint8, p Params)
	DecodeBlockStrided(r *bitstream.Stream, base []S, offset, sx, sy, sz int, shapeCode uint8, p Params)
}

// FixedRate3D is the default Codec3D implementation; see FixedRate1D.
type FixedRate3D[S Scalar] struct{}

var _ Codec3D[float64] = FixedRate3D[float64]{}

func (FixedRate3D[S]) EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p Params) {
	for i := 0; i < 64; i++ {
		EncodeValue(w, tile[i], p)
	}
}

func (FixedRate3D[S]) DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p Params) {
	for i := 0; i < 64; i++ {
		tile[i] = DecodeValue[S](r, p)
	}
}

func (FixedRate3D[S]) EncodeBlockStrided(w *bitstream.Stream, base []S, offset, sx, sy, sz int, shapeCode uint8, p Params) {
	usedX, usedY, usedZ := UsedExtent3D(shapeCode)
	for k := 0; k < 4; k++ {
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				var v S
				if i < usedX && j < usedY && k < usedZ {
					v = base[offset+i*sx+j*sy+k*sz]
				}
				EncodeValue(w, v, p)
			}
		}
	}
}

func (FixedRate3D[S]) DecodeBlockStrided(r *bitstream.Stream, base []S, offset, sx, sy, sz int, shapeCode uint8, p Params) {
	usedX, usedY, usedZ := UsedExtent3D(shapeCode)
	for k := 0; k < 4; k++ {
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				v := DecodeValue[S](r, p)
				if i < usedX && j < usedY && k < usedZ {
					base[offset+i*sx+j*sy+k*sz] = v
				}
			}
		}
	}
}
