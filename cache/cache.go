package cache

import "github.com/compac/compac/codec"

// SlotIO is the callback surface a Cache uses to spill a dirty tile back to
// the compressed stream and to pull a tile in on a miss. The array façade
// implements it; the cache never sees a bitstream, a codec, or a shape
// table directly.
type SlotIO[S codec.Scalar] interface {
	EncodeSlot(blockIndex int, tile []S)
	DecodeSlot(blockIndex int, tile []S)
}

type line[S codec.Scalar] struct {
	tile  []S
	tag   uint32 // block_index+1; 0 means empty
	dirty bool
}

// Cache is a direct-mapped cache of decoded 4^d tiles.
type Cache[S codec.Scalar] struct {
	lines         []line[S]
	valuesPerTile int
}

// New builds a cache with numLines lines, each holding valuesPerTile
// scalars. numLines is clamped to at least 1: a cache with zero lines
// cannot make forward progress.
func New[S codec.Scalar](numLines, valuesPerTile int) *Cache[S] {
	if numLines < 1 {
		numLines = 1
	}
	lines := make([]line[S], numLines)
	for i := range lines {
		lines[i].tile = make([]S, valuesPerTile)
	}
	return &Cache[S]{lines: lines, valuesPerTile: valuesPerTile}
}

// Len reports the number of lines.
func (c *Cache[S]) Len() int { return len(c.lines) }

func (c *Cache[S]) slot(blockIndex int) int {
	return blockIndex % len(c.lines)
}

// Fetch returns the tile for blockIndex, decoding it on a miss and, if the
// evicted line was dirty, encoding it first via io. When forWrite is true
// the returned line is marked dirty; callers must not retain the slice
// across a later Fetch that could evict it.
func (c *Cache[S]) Fetch(blockIndex int, forWrite bool, io SlotIO[S]) []S {
	idx := c.slot(blockIndex)
	ln := &c.lines[idx]
	want := uint32(blockIndex) + 1

	if ln.tag != want {
		if ln.tag != 0 && ln.dirty {
			io.EncodeSlot(int(ln.tag)-1, ln.tile)
		}
		io.DecodeSlot(blockIndex, ln.tile)
		ln.tag = want
		ln.dirty = false
	}
	if forWrite {
		ln.dirty = true
	}
	return ln.tile
}

// Peek reports whether blockIndex currently has a resident line, without
// causing any eviction, decode, or encode.
func (c *Cache[S]) Peek(blockIndex int) (tile []S, dirty, ok bool) {
	idx := c.slot(blockIndex)
	ln := &c.lines[idx]
	if ln.tag != uint32(blockIndex)+1 {
		return nil, false, false
	}
	return ln.tile, ln.dirty, true
}

// Flush encodes every dirty line and clears its dirty bit, without
// evicting the line from the cache.
func (c *Cache[S]) Flush(io SlotIO[S]) {
	for i := range c.lines {
		ln := &c.lines[i]
		if ln.tag != 0 && ln.dirty {
			io.EncodeSlot(int(ln.tag)-1, ln.tile)
			ln.dirty = false
		}
	}
}

// Clear empties every line without encoding, discarding any unflushed
// writes. Callers that need durability must Flush first.
func (c *Cache[S]) Clear() {
	for i := range c.lines {
		c.lines[i].tag = 0
		c.lines[i].dirty = false
	}
}

// Resize replaces the line set with n empty lines. Any state present
// before the call - flushed or not - is discarded; callers that need to
// preserve dirty data must Flush before resizing.
func (c *Cache[S]) Resize(n int) {
	if n < 1 {
		n = 1
	}
	lines := make([]line[S], n)
	for i := range lines {
		lines[i].tile = make([]S, c.valuesPerTile)
	}
	c.lines = lines
}

// Snapshot copies cache state (tags, dirty bits, and tile contents) into a
// fresh cache of the same shape, for use by deep-copy on the owning array.
// It does not flush and does not touch io.
func (c *Cache[S]) Snapshot() *Cache[S] {
	out := &Cache[S]{
		lines:         make([]line[S], len(c.lines)),
		valuesPerTile: c.valuesPerTile,
	}
	for i, ln := range c.lines {
		tile := make([]S, len(ln.tile))
		copy(tile, ln.tile)
		out.lines[i] = line[S]{tile: tile, tag: ln.tag, dirty: ln.dirty}
	}
	return out
}
