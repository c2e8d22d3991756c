package array

import "github.com/compac/compac/codec"

// Iterator visits every element of an array exactly once in block-major
// order: raster order over a tile's used extent, then on to the next tile
// in row-major block order. A single cache line services every step within
// one tile.
//
// Usage mirrors bufio.Scanner: call Next until it returns false, then read
// Value/Coord for the current position.
type Iterator[S codec.Scalar] struct {
	c *core[S]

	started  bool
	done     bool
	blockIdx int
	lane     int

	bi, bj, bk          int // current block's coordinates in block space
	usedX, usedY, usedZ int
	lx, ly, lz          int // local raster position within the used extent
}

func newIterator[S codec.Scalar](c *core[S]) *Iterator[S] {
	return &Iterator[S]{c: c}
}

func (it *Iterator[S]) loadBlock(idx int) {
	it.blockIdx = idx
	c := it.c

	switch c.dims {
	case 1:
		it.bi, it.bj, it.bk = idx, 0, 0
	case 2:
		it.bi, it.bj, it.bk = idx%c.bx, idx/c.bx, 0
	case 3:
		it.bi = idx % c.bx
		it.bj = (idx / c.bx) % c.by
		it.bk = idx / (c.bx * c.by)
	}

	shape := c.shapeCodeOf(idx)
	switch c.dims {
	case 1:
		it.usedX = codec.UsedExtent1D(shape)
		it.usedY, it.usedZ = 1, 1
	case 2:
		it.usedX, it.usedY = codec.UsedExtent2D(shape)
		it.usedZ = 1
	case 3:
		it.usedX, it.usedY, it.usedZ = codec.UsedExtent3D(shape)
	}
	it.lx, it.ly, it.lz = 0, 0, 0
}

// Next advances the iterator to the next element and reports whether one
// is available. It must be called before the first Value/Coord.
func (it *Iterator[S]) Next() bool {
	if it.done {
		return false
	}

	c := it.c
	if !it.started {
		it.started = true
		if c.blocks == 0 {
			it.done = true

			return false
		}
		it.loadBlock(0)
		it.lane = it.lz*16 + it.ly*4 + it.lx

		return true
	}

	it.lx++
	if it.lx >= it.usedX {
		it.lx = 0
		it.ly++
		if it.ly >= it.usedY {
			it.ly = 0
			it.lz++
			if it.lz >= it.usedZ {
				it.lz = 0
				next := it.blockIdx + 1
				if next >= c.blocks {
					it.done = true

					return false
				}
				it.loadBlock(next)
			}
		}
	}
	it.lane = it.lz*16 + it.ly*4 + it.lx

	return true
}

// Value returns the element at the iterator's current position.
func (it *Iterator[S]) Value() S {
	tile := it.c.fetch(it.blockIdx, false)

	return tile[it.lane]
}

// Coord returns the global coordinates of the iterator's current position.
// Unused axes for lower-dimensional arrays are always 0.
func (it *Iterator[S]) Coord() (i, j, k int) {
	return it.bi*4 + it.lx, it.bj*4 + it.ly, it.bk*4 + it.lz
}
