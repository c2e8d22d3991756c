package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
)

func TestArray3DSetGetRoundTrip(t *testing.T) {
	a, err := NewArray3D[float64](5, 5, 5, 32, nil)
	require.NoError(t, err)

	a.Set(1, 2, 3, 8.25)
	assert.InDelta(t, 8.25, a.Get(1, 2, 3), 0.05)
}

func TestArray3DGetFlatOrderIsZYX(t *testing.T) {
	a, err := NewArray3D[float64](3, 3, 3, 32, nil)
	require.NoError(t, err)

	for i := 0; i < 27; i++ {
		a.SetFlat(i, float64(i))
	}

	nx, ny := 3, 3
	for idx := 0; idx < 27; idx++ {
		x := idx % nx
		y := (idx / nx) % ny
		z := idx / (nx * ny)
		assert.InDelta(t, float64(idx), a.Get(x, y, z), 0.5)
	}
}

func TestArray3DHeaderRoundTrip(t *testing.T) {
	a, err := NewArray3D[float32](6, 7, 8, 16, nil)
	require.NoError(t, err)

	h, err := header.Parse(a.HeaderData(), format.ScalarFloat32, format.Dims3)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), h.NX)
	assert.Equal(t, uint32(7), h.NY)
	assert.Equal(t, uint32(8), h.NZ)
}

func TestArray3DResizeToZeroFreesPayload(t *testing.T) {
	a, err := NewArray3D[float64](4, 4, 4, 32, nil)
	require.NoError(t, err)

	a.Resize(0, 0, 0, true)

	assert.Equal(t, 0, a.Size())
	assert.Empty(t, a.CompressedData())
	nx, ny, nz := a.Extents()
	assert.Zero(t, nx)
	assert.Zero(t, ny)
	assert.Zero(t, nz)
}

func TestArray3DGetAllSetAllRoundTrip(t *testing.T) {
	a, err := NewArray3D[float64](5, 3, 2, 32, nil)
	require.NoError(t, err)

	n := 5 * 3 * 2
	src := make([]float64, n)
	for i := range src {
		src[i] = float64(i) - 15
	}
	require.NoError(t, a.SetAll(src))

	dst := make([]float64, n)
	a.GetAll(dst)
	for i := range src {
		assert.InDelta(t, src[i], dst[i], 0.5)
	}
}

func TestArray3DGetAllSeesDirtyCacheLine(t *testing.T) {
	a, err := NewArray3D[float64](5, 3, 2, 32, nil)
	require.NoError(t, err)

	a.Set(1, 1, 1, 100) // dirty in cache, not yet in payload

	dst := make([]float64, 5*3*2)
	a.GetAll(dst)
	assert.InDelta(t, 100, dst[1*5*3+1*5+1], 0.5)
}

func TestArray3DSerializeDeserializeChecksumMatches(t *testing.T) {
	a, err := NewArray3D[float64](4, 4, 4, 32, nil)
	require.NoError(t, err)
	a.Set(0, 0, 0, 1)
	a.Set(3, 3, 3, 2)
	a.FlushCache()

	blob := append(append([]byte(nil), a.HeaderData()...), a.CompressedData()...)
	b, err := DeserializeArray3D[float64](blob, len(blob))
	require.NoError(t, err)

	assert.Equal(t, a.Checksum(), b.Checksum())
}
