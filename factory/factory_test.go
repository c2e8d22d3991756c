package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compac/compac/array"
	"github.com/compac/compac/format"
)

func TestConstructFromStreamRecoversDimsAndScalarType(t *testing.T) {
	a, err := array.NewArray2D[float32](8, 6, 16, nil)
	require.NoError(t, err)
	blob := append(append([]byte(nil), a.HeaderData()...), a.CompressedData()...)

	got, ok := ConstructFromStream(blob, len(blob))
	require.True(t, ok)
	assert.Equal(t, format.Dims2, got.Dims())
	assert.Equal(t, format.ScalarFloat32, got.ScalarType())

	nx, ny, _ := got.Extents()
	assert.Equal(t, uint32(8), nx)
	assert.Equal(t, uint32(6), ny)
}

func TestConstructFromStreamScalarTypeMismatchStillResolves(t *testing.T) {
	// A 2D float32 array's header is only ever valid as 2D float32: the 1D
	// float32 and float64 probes that run first must fail cleanly and fall
	// through to the right variant.
	a, err := array.NewArray2D[float32](8, 8, 16, nil)
	require.NoError(t, err)
	blob := append(append([]byte(nil), a.HeaderData()...), a.CompressedData()...)

	got, ok := ConstructFromStream(blob, len(blob))
	require.True(t, ok)
	assert.Equal(t, format.ScalarFloat32, got.ScalarType())
}

func TestConstructFromStreamDimensionalityDistinguishesVariants(t *testing.T) {
	a1, err := array.NewArray1D[float32](8, 16, nil)
	require.NoError(t, err)
	blob1 := append(append([]byte(nil), a1.HeaderData()...), a1.CompressedData()...)

	got, ok := ConstructFromStream(blob1, len(blob1))
	require.True(t, ok)
	assert.Equal(t, format.Dims1, got.Dims())
}

func TestConstructFromStreamBufferTooSmall(t *testing.T) {
	_, ok := ConstructFromStream(make([]byte, 1), 1)
	assert.False(t, ok)
}

func TestConstructFromStreamZeroBufferReturnsNotOK(t *testing.T) {
	_, ok := ConstructFromStream(make([]byte, 1024), 1024)
	assert.False(t, ok)
}

func TestConstructFromStreamRoundTripsAllSixVariants(t *testing.T) {
	a1f32, err := array.NewArray1D[float32](5, 16, nil)
	require.NoError(t, err)
	a1f64, err := array.NewArray1D[float64](5, 32, nil)
	require.NoError(t, err)
	a2f32, err := array.NewArray2D[float32](5, 5, 16, nil)
	require.NoError(t, err)
	a2f64, err := array.NewArray2D[float64](5, 5, 32, nil)
	require.NoError(t, err)
	a3f32, err := array.NewArray3D[float32](5, 5, 5, 16, nil)
	require.NoError(t, err)
	a3f64, err := array.NewArray3D[float64](5, 5, 5, 32, nil)
	require.NoError(t, err)

	cases := []struct {
		dims       format.Dims
		scalarType format.ScalarType
		blob       []byte
	}{
		{format.Dims1, format.ScalarFloat32, append(append([]byte(nil), a1f32.HeaderData()...), a1f32.CompressedData()...)},
		{format.Dims1, format.ScalarFloat64, append(append([]byte(nil), a1f64.HeaderData()...), a1f64.CompressedData()...)},
		{format.Dims2, format.ScalarFloat32, append(append([]byte(nil), a2f32.HeaderData()...), a2f32.CompressedData()...)},
		{format.Dims2, format.ScalarFloat64, append(append([]byte(nil), a2f64.HeaderData()...), a2f64.CompressedData()...)},
		{format.Dims3, format.ScalarFloat32, append(append([]byte(nil), a3f32.HeaderData()...), a3f32.CompressedData()...)},
		{format.Dims3, format.ScalarFloat64, append(append([]byte(nil), a3f64.HeaderData()...), a3f64.CompressedData()...)},
	}

	for _, c := range cases {
		got, ok := ConstructFromStream(c.blob, len(c.blob))
		require.True(t, ok)
		assert.Equal(t, c.dims, got.Dims())
		assert.Equal(t, c.scalarType, got.ScalarType())
	}
}
