package header

import (
	"testing"

	"github.com/compac/compac/errs"
	"github.com/compac/compac/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesLayout(t *testing.T) {
	assert.Equal(t, 32, Bytes())
	assert.Equal(t, 32, Offset())
}

func TestRoundTrip(t *testing.T) {
	h := New(format.ScalarFloat32, format.Dims1)
	h.SetExtents(55, 0, 0)
	h.SetRate(RateParams{MinBits: 64, MaxBits: 64, MaxPrec: 16, MinExp: -3})

	data := h.Bytes()
	require.Len(t, data, Bytes())

	got, err := Parse(data, format.ScalarFloat32, format.Dims1)
	require.NoError(t, err)
	assert.Equal(t, h.NX, got.NX)
	assert.Equal(t, h.NY, got.NY)
	assert.Equal(t, h.NZ, got.NZ)
	assert.Equal(t, h.Rate, got.Rate)
	assert.Equal(t, h.ScalarType, got.ScalarType)
	assert.Equal(t, h.Dims, got.Dims)
}

func TestParseTooSmall(t *testing.T) {
	_, err := Parse(make([]byte, 4), format.ScalarFloat32, format.Dims1)
	assert.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestParseInvalidMagic(t *testing.T) {
	data := make([]byte, Bytes())
	_, err := Parse(data, format.ScalarFloat32, format.Dims1)
	assert.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestParseScalarTypeMismatch(t *testing.T) {
	h := New(format.ScalarFloat32, format.Dims2)
	h.SetExtents(4, 4, 0)
	data := h.Bytes()

	_, err := Parse(data, format.ScalarFloat64, format.Dims2)
	assert.ErrorIs(t, err, errs.ErrScalarTypeMismatch)
}

func TestParseDimensionalityMismatch(t *testing.T) {
	h := New(format.ScalarFloat32, format.Dims2)
	h.SetExtents(4, 4, 0)
	data := h.Bytes()

	_, err := Parse(data, format.ScalarFloat32, format.Dims1)
	assert.ErrorIs(t, err, errs.ErrDimensionalityMismatch)
}
