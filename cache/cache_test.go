package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIO struct {
	decoded []int
	encoded map[int][]float64
}

func newFakeIO() *fakeIO {
	return &fakeIO{encoded: make(map[int][]float64)}
}

func (f *fakeIO) DecodeSlot(blockIndex int, tile []float64) {
	f.decoded = append(f.decoded, blockIndex)
	for i := range tile {
		tile[i] = float64(blockIndex)
	}
}

func (f *fakeIO) EncodeSlot(blockIndex int, tile []float64) {
	cp := make([]float64, len(tile))
	copy(cp, tile)
	f.encoded[blockIndex] = cp
}

func TestFetchMissDecodesOnce(t *testing.T) {
	c := New[float64](4, 4)
	io := newFakeIO()

	tile := c.Fetch(2, false, io)
	assert.Equal(t, []float64{2, 2, 2, 2}, tile)
	assert.Equal(t, []int{2}, io.decoded)

	tile2 := c.Fetch(2, false, io)
	assert.Equal(t, tile, tile2)
	assert.Equal(t, []int{2}, io.decoded, "second fetch of same block must hit")
}

func TestFetchForWriteMarksDirtyAndEvictionFlushes(t *testing.T) {
	c := New[float64](1, 4) // single line forces eviction on any other index
	io := newFakeIO()

	tile := c.Fetch(0, true, io)
	tile[0] = 99

	c.Fetch(1, false, io) // evicts block 0

	require.Contains(t, io.encoded, 0)
	assert.Equal(t, float64(99), io.encoded[0][0])
}

func TestFetchCleanEvictionDoesNotEncode(t *testing.T) {
	c := New[float64](1, 4)
	io := newFakeIO()

	c.Fetch(0, false, io)
	c.Fetch(1, false, io)

	assert.Empty(t, io.encoded)
}

func TestPeekDoesNotTouchIO(t *testing.T) {
	c := New[float64](2, 4)
	io := newFakeIO()

	_, _, ok := c.Peek(3)
	assert.False(t, ok)
	assert.Empty(t, io.decoded)

	c.Fetch(3, true, io)
	tile, dirty, ok := c.Peek(3)
	assert.True(t, ok)
	assert.True(t, dirty)
	assert.Len(t, tile, 4)
}

func TestFlushClearsDirtyWithoutEvicting(t *testing.T) {
	c := New[float64](2, 4)
	io := newFakeIO()

	tile := c.Fetch(5, true, io)
	tile[1] = 7

	c.Flush(io)
	require.Contains(t, io.encoded, 5)
	assert.Equal(t, float64(7), io.encoded[5][1])

	_, dirty, ok := c.Peek(5)
	require.True(t, ok)
	assert.False(t, dirty, "flush must clear the dirty bit")
}

func TestClearDiscardsWithoutEncoding(t *testing.T) {
	c := New[float64](2, 4)
	io := newFakeIO()

	c.Fetch(5, true, io)
	c.Clear()

	assert.Empty(t, io.encoded, "clear must never encode")
	_, _, ok := c.Peek(5)
	assert.False(t, ok)
}

func TestResizeDropsResidentLines(t *testing.T) {
	c := New[float64](2, 4)
	io := newFakeIO()
	c.Fetch(0, false, io)

	c.Resize(8)
	assert.Equal(t, 8, c.Len())
	_, _, ok := c.Peek(0)
	assert.False(t, ok)
}

func TestSnapshotPreservesDirtyStateWithoutEncoding(t *testing.T) {
	c := New[float64](2, 4)
	io := newFakeIO()
	tile := c.Fetch(3, true, io)
	tile[0] = 42

	snap := c.Snapshot()
	assert.Empty(t, io.encoded, "snapshot must never touch io")

	got, dirty, ok := snap.Peek(3)
	require.True(t, ok)
	assert.True(t, dirty)
	assert.Equal(t, float64(42), got[0])

	// mutating the source line's tile must not affect the snapshot.
	tile[0] = -1
	got2, _, _ := snap.Peek(3)
	assert.Equal(t, float64(42), got2[0])
}
