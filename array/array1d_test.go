package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
)

func TestArray1DSetGetRoundTrip(t *testing.T) {
	a, err := NewArray1D[float64](10, 16, nil)
	require.NoError(t, err)

	a.Set(3, 42.5)
	assert.InDelta(t, 42.5, a.Get(3), 0.01)
}

func TestArray1DResizeClearZeroesPayload(t *testing.T) {
	a, err := NewArray1D[float32](8, 8, nil)
	require.NoError(t, err)

	a.Set(0, 1)
	a.Set(7, 2)

	a.Resize(8, true)
	for _, b := range a.CompressedData() {
		assert.Zero(t, b)
	}
}

func TestArray1DHeaderDataReflectsMutations(t *testing.T) {
	a, err := NewArray1D[float32](55, 16, nil)
	require.NoError(t, err)

	a.Set(0, 999)

	h, err := header.Parse(a.HeaderData(), format.ScalarFloat32, format.Dims1)
	require.NoError(t, err)
	assert.Equal(t, uint32(55), h.NX)
	assert.Equal(t, int(a.core.bitsPerBlock), int(h.Rate.MaxBits))
}

func TestArray1DDeepCopyPreservesDirtyCacheWithoutFlushingSource(t *testing.T) {
	a, err := NewArray1D[float64](8, 32, nil)
	require.NoError(t, err)

	a.Set(0, 7)   // dirty in a's cache, not yet in a's payload
	before := append([]byte(nil), a.core.buf.Bytes()...)

	b := a.DeepCopy()

	// The source's own payload bytes must be unaffected by the copy.
	assert.Equal(t, before, a.core.buf.Bytes())

	// Flushing the copy commits the dirty value into the copy's payload
	// without touching the source.
	b.FlushCache()
	assert.NotEqual(t, before, b.core.buf.Bytes())
	assert.Equal(t, before, a.core.buf.Bytes())

	assert.InDelta(t, 7, b.Get(0), 0.5)
}

func TestArray1DCacheSizeOneLineStillCorrect(t *testing.T) {
	a, err := NewArray1D[float64](20, 32, nil, WithCacheBytes(1))
	require.NoError(t, err)
	require.Equal(t, 1, a.core.cache.Len())

	for i := 0; i < 20; i++ {
		a.Set(i, float64(i))
	}
	for i := 0; i < 20; i++ {
		assert.InDelta(t, float64(i), a.Get(i), 0.5)
	}
}

func TestArray1DIteratorVisitsEveryElementOnce(t *testing.T) {
	a, err := NewArray1D[float64](10, 32, nil) // 10 not a multiple of 4: last block partial
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.Set(i, float64(i))
	}

	it := a.Iterator()
	seen := make([]bool, 10)
	count := 0
	for it.Next() {
		x, _, _ := it.Coord()
		require.False(t, seen[x], "coordinate %d visited twice", x)
		seen[x] = true
		assert.InDelta(t, float64(x), it.Value(), 0.5)
		count++
	}
	assert.Equal(t, 10, count)
	for i, s := range seen {
		assert.True(t, s, "coordinate %d never visited", i)
	}
}

func TestArray1DBulkSetThenGetMatchesElementAccess(t *testing.T) {
	a, err := NewArray1D[float64](9, 32, nil)
	require.NoError(t, err)

	src := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, a.SetAll(src))

	dst := make([]float64, 9)
	a.GetAll(dst)
	for i := range src {
		assert.InDelta(t, src[i], dst[i], 0.5)
	}
}

func TestArray1DGetAllSeesDirtyCacheLine(t *testing.T) {
	a, err := NewArray1D[float64](8, 32, nil)
	require.NoError(t, err)

	a.Set(0, 100) // dirty in cache, not yet in payload

	dst := make([]float64, 8)
	a.GetAll(dst)
	assert.InDelta(t, 100, dst[0], 0.5)
}

func TestArray1DSetAllClearsCache(t *testing.T) {
	a, err := NewArray1D[float64](8, 32, nil)
	require.NoError(t, err)

	a.Set(0, 100) // dirty cache line
	require.NoError(t, a.SetAll(make([]float64, 8)))

	_, dirty, ok := a.core.cache.Peek(0)
	if ok {
		assert.False(t, dirty)
	}
}

func TestArray1DDeserializeRoundTrip(t *testing.T) {
	a, err := NewArray1D[float64](12, 16, nil)
	require.NoError(t, err)
	a.Set(5, 3.5)

	blob := append(append([]byte(nil), a.HeaderData()...), a.CompressedData()...)

	b, err := DeserializeArray1D[float64](blob, len(blob))
	require.NoError(t, err)
	assert.Equal(t, a.Size(), b.Size())
	assert.InDelta(t, a.Get(5), b.Get(5), 0.01)
	assert.Equal(t, a.HeaderData(), b.HeaderData())
}

func TestArray1DDeserializeBufferTooSmall(t *testing.T) {
	_, err := DeserializeArray1D[float64](make([]byte, 1), 1)
	assert.Error(t, err)
}

func TestArray1DAtSwap(t *testing.T) {
	a, err := NewArray1D[float64](4, 32, nil)
	require.NoError(t, err)
	a.Set(0, 1)
	a.Set(1, 2)

	Swap(a.At(0), a.At(1))
	assert.InDelta(t, 2, a.Get(0), 0.5)
	assert.InDelta(t, 1, a.Get(1), 0.5)
}

func TestArray1DDefaultConstructorIsLegalButEmpty(t *testing.T) {
	a := DefaultArray1D[float64]()

	assert.Equal(t, 0, a.Size())
	assert.Zero(t, a.SizeX())
	assert.Len(t, a.CompressedData(), 0)

	a.Resize(4, true)
	a.SetRate(32)
	a.Set(0, 3.5)
	assert.InDelta(t, 3.5, a.Get(0), 0.01)
}

func TestArray1DCompoundUpdate(t *testing.T) {
	a, err := NewArray1D[float64](4, 32, nil)
	require.NoError(t, err)
	a.Set(0, 10)
	a.Add(0, 5)
	assert.InDelta(t, 15, a.Get(0), 0.5)
	a.Mul(0, 2)
	assert.InDelta(t, 30, a.Get(0), 0.5)
}
