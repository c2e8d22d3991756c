package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReadRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	s := Open(buf, len(buf))

	values := []struct {
		v uint64
		n int
	}{
		{0x1, 1},
		{0x0, 1},
		{0x3F, 6},
		{0xFFFF, 16},
		{0x123456789ABCDEF0, 64},
		{0x7, 3},
	}

	for _, tc := range values {
		s.WriteBits(tc.v, tc.n)
	}
	s.Flush()

	s.Rewind()
	for _, tc := range values {
		got := s.ReadBits(tc.n)
		mask := uint64(1)<<uint(tc.n) - 1
		if tc.n == 64 {
			mask = ^uint64(0)
		}
		assert.Equal(t, tc.v&mask, got)
	}
}

func TestFlushPadsToWordBoundary(t *testing.T) {
	buf := make([]byte, 16)
	s := Open(buf, len(buf))
	s.WriteBits(0x1, 3)
	s.Flush()
	assert.Equal(t, WordBits, s.WritePos())
}

func TestPadWritesZeros(t *testing.T) {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = 0xFF
	}
	s := Open(buf, len(buf))
	s.Pad(40)
	s.Rewind()
	assert.Equal(t, uint64(0), s.ReadBits(40))
}

func TestIndependentCursors(t *testing.T) {
	buf := make([]byte, 32)
	s := Open(buf, len(buf))
	s.WriteBits(0xABCD, 16)
	s.SeekRead(0)
	assert.Equal(t, uint64(0xABCD), s.ReadBits(16))
	assert.Equal(t, 16, s.WritePos())
	assert.Equal(t, 16, s.ReadPos())
}

func TestCrossWordBoundary(t *testing.T) {
	buf := make([]byte, 32)
	s := Open(buf, len(buf))
	s.SeekWrite(60)
	s.WriteBits(0xF, 8) // straddles word 0 and word 1
	s.SeekRead(60)
	assert.Equal(t, uint64(0xF), s.ReadBits(8))
}
