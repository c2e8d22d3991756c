package buffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func TestNewAlignedSatisfiesAlignment(t *testing.T) {
	for _, align := range []int{16, 64, 256} {
		a := NewAligned(1024, align)
		assert.Equal(t, 1024, a.Len())
		assert.Zero(t, addr(a.Bytes())%uintptr(align))
		for _, b := range a.Bytes() {
			assert.Zero(t, b)
		}
	}
}

func TestReallocateChangesSize(t *testing.T) {
	a := NewAligned(64, 256)
	a.Reallocate(128)
	assert.Equal(t, 128, a.Len())
	assert.Zero(t, addr(a.Bytes())%256)
}

func TestClonePreservesContentsAndIndependence(t *testing.T) {
	a := NewAligned(32, 256)
	for i := range a.Bytes() {
		a.Bytes()[i] = byte(i)
	}
	c := a.Clone(32)
	assert.Equal(t, a.Bytes(), c.Bytes())

	c.Bytes()[0] = 0xFF
	assert.NotEqual(t, a.Bytes()[0], c.Bytes()[0])
}

func TestZeroSizeAlloc(t *testing.T) {
	a := NewAligned(0, 256)
	assert.Equal(t, 0, a.Len())
}
