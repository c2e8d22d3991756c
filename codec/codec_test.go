package codec

import (
	"testing"

	"github.com/compac/compac/bitstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiateRoundsUpToWord(t *testing.T) {
	bpb, bpv := Negotiate(8, 4) // 1D
	assert.Equal(t, 64, bpb)
	assert.Equal(t, 16, bpv)

	bpb, bpv = Negotiate(1, 64) // 3D minimum
	assert.Equal(t, 64, bpb)
	assert.Equal(t, 1, bpv)
}

func TestNegotiateIdempotentSameLayout(t *testing.T) {
	bpb1, _ := Negotiate(16, 4)
	bpb2, _ := Negotiate(16, 4)
	assert.Equal(t, bpb1, bpb2)
}

func TestQuantizeRoundTripApprox(t *testing.T) {
	p := Params{BitsPerValue: 16, MinExp: 4}
	buf := make([]byte, 16)
	s := bitstream.Open(buf, len(buf))

	vals := []float64{0, 1, -1, 3.5, -7.25, 15.9}
	for _, v := range vals {
		EncodeValue(s, v, p)
	}
	s.Rewind()
	for _, v := range vals {
		got := DecodeValue[float64](s, p)
		assert.InDelta(t, v, got, p.step()+1e-9)
	}
}

func TestShapeCodeRoundTrip1D(t *testing.T) {
	for used := 1; used <= 4; used++ {
		code := ShapeCode1D(used)
		assert.Equal(t, used, UsedExtent1D(code))
	}
}

func TestShapeCodeRoundTrip2D(t *testing.T) {
	for ux := 1; ux <= 4; ux++ {
		for uy := 1; uy <= 4; uy++ {
			code := ShapeCode2D(ux, uy)
			gx, gy := UsedExtent2D(code)
			assert.Equal(t, ux, gx)
			assert.Equal(t, uy, gy)
		}
	}
}

func TestShapeCodeRoundTrip3D(t *testing.T) {
	code := ShapeCode3D(2, 3, 1)
	gx, gy, gz := UsedExtent3D(code)
	assert.Equal(t, 2, gx)
	assert.Equal(t, 3, gy)
	assert.Equal(t, 1, gz)
}

func TestFullBlockContiguousMatchesStridedUnitStep(t *testing.T) {
	p := Params{BitsPerValue: 16, MinExp: 4}
	tile := []float64{1, 2, 3, 4}

	buf1 := make([]byte, 16)
	s1 := bitstream.Open(buf1, len(buf1))
	FixedRate1D[float64]{}.EncodeBlock(s1, tile, ShapeFull, p)

	buf2 := make([]byte, 16)
	s2 := bitstream.Open(buf2, len(buf2))
	FixedRate1D[float64]{}.EncodeBlockStrided(s2, tile, 0, 1, ShapeFull, p)

	require.Equal(t, buf1, buf2)
}

func TestPartialBlockNeverObservesUnusedLanes(t *testing.T) {
	p := Params{BitsPerValue: 16, MinExp: 5} // range +-32 covers 20
	src := []float64{10, 20, 99, 99} // only first 2 are "real"
	code := ShapeCode1D(2)

	buf := make([]byte, 16)
	s := bitstream.Open(buf, len(buf))
	FixedRate1D[float64]{}.EncodeBlockStrided(s, src, 0, 1, code, p)

	dst := []float64{-1, -1, -1, -1}
	s.Rewind()
	FixedRate1D[float64]{}.DecodeBlockStrided(s, dst, 0, 1, code, p)

	assert.InDelta(t, 10, dst[0], p.step()+1e-9)
	assert.InDelta(t, 20, dst[1], p.step()+1e-9)
	assert.Equal(t, -1.0, dst[2])
	assert.Equal(t, -1.0, dst[3])
}
