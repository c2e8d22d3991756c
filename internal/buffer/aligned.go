// Package buffer implements the aligned byte-buffer primitive that backs
// every array's storage region.
//
// Go's allocator gives no alignment guarantee stronger than the platform
// pointer size, so Aligned over-allocates a raw slab and carves out a slice
// starting at the first address that satisfies the requested alignment.
// Unlike internal/pool.ByteBuffer, which reallocates with spare capacity for
// amortized growth, the carved view is sized exactly and never grown.
package buffer

import "unsafe"

// Aligned owns a contiguous byte region whose base address is a multiple of
// its alignment. It is exclusively owned: no aliasing, single writer.
type Aligned struct {
	raw   []byte
	data  []byte
	align int
}

// NewAligned allocates n bytes aligned to align, which must be a power of
// two. The contents are zeroed.
func NewAligned(n, align int) *Aligned {
	a := &Aligned{align: align}
	a.alloc(n)

	return a
}

// Bytes returns the aligned, exactly-sized view. Its address satisfies
// ptr % align == 0.
func (a *Aligned) Bytes() []byte { return a.data }

// Len returns the current size in bytes.
func (a *Aligned) Len() int { return len(a.data) }

// Reallocate resizes the region to n bytes. The new region is a fresh
// allocation and is zeroed; existing bytes are not preserved.
func (a *Aligned) Reallocate(n int) {
	a.alloc(n)
}

// Clone returns an independent aligned copy of the first n bytes (n must
// not exceed a.Len()), suitable for a deep-copy that must not alias the
// source's storage.
func (a *Aligned) Clone(n int) *Aligned {
	c := NewAligned(n, a.align)
	copy(c.data, a.data[:n])

	return c
}

func (a *Aligned) alloc(n int) {
	if n <= 0 {
		a.raw = nil
		a.data = nil

		return
	}

	a.raw = make([]byte, n+a.align)
	base := uintptr(unsafe.Pointer(&a.raw[0]))
	pad := (uintptr(a.align) - base%uintptr(a.align)) % uintptr(a.align)
	a.data = a.raw[pad : pad+uintptr(n)]
}
