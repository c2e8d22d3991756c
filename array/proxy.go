package array

import "github.com/compac/compac/codec"

// cell is the narrow surface a Ref needs from whichever dimensionality
// produced it: get/set/compound-update one element by its already-resolved
// block index and lane.
type cell[S codec.Scalar] struct {
	c          *core[S]
	blockIndex int
	lane       int
}

func (r cell[S]) get() S {
	tile := r.c.fetch(r.blockIndex, false)

	return tile[r.lane]
}

func (r cell[S]) set(v S) {
	tile := r.c.fetch(r.blockIndex, true)
	tile[r.lane] = v
}

func (r cell[S]) update(f func(S) S) {
	tile := r.c.fetch(r.blockIndex, true)
	tile[r.lane] = f(tile[r.lane])
}

// Ref is a write-proxy for a single array element: a cheap, copyable
// handle capturing the array and a coordinate, letting compound updates
// reach the cache exactly once instead of a separate get then set.
type Ref[S codec.Scalar] struct {
	cell cell[S]
}

// Value reads the referenced element.
func (r Ref[S]) Value() S { return r.cell.get() }

// Set assigns v to the referenced element.
func (r Ref[S]) Set(v S) { r.cell.set(v) }

// Add adds v to the referenced element in a single cache access.
func (r Ref[S]) Add(v S) { r.cell.update(func(cur S) S { return cur + v }) }

// Sub subtracts v from the referenced element in a single cache access.
func (r Ref[S]) Sub(v S) { r.cell.update(func(cur S) S { return cur - v }) }

// Mul multiplies the referenced element by v in a single cache access.
func (r Ref[S]) Mul(v S) { r.cell.update(func(cur S) S { return cur * v }) }

// Div divides the referenced element by v in a single cache access.
func (r Ref[S]) Div(v S) { r.cell.update(func(cur S) S { return cur / v }) }

// Swap exchanges the values referenced by a and b, reading both before
// writing either so overlapping references behave as a true swap.
func Swap[S codec.Scalar](a, b Ref[S]) {
	va := a.Value()
	vb := b.Value()
	a.Set(vb)
	b.Set(va)
}
