package array

import (
	"github.com/compac/compac/codec"
	"github.com/compac/compac/errs"
	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
	"github.com/compac/compac/internal/options"
)

// Array2D is a compressed, element-addressable two-dimensional array of S.
type Array2D[S codec.Scalar] struct {
	core *core[S]
	cdc  codec.Codec2D[S]
}

// NewArray2D constructs an nx-by-ny array at the given rate (bits per
// value). If source is non-nil (row-major, y major x minor) its values are
// bulk-encoded in immediately.
func NewArray2D[S codec.Scalar](nx, ny uint32, rate float64, source []S, opts ...Option) (*Array2D[S], error) {
	cfg := defaultConfig(nx, scalarSizeOf[S]())
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	cdc := codec.FixedRate2D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims2, format.Dims2.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.cacheBytes = cfg.cacheBytes

	a := &Array2D[S]{core: c, cdc: cdc}
	a.core.resize(nx, ny, 0, true)
	a.core.setRate(rate, cfg.minExp)

	if source != nil {
		if err := a.SetAll(source); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// DefaultArray2D returns a zero-extent, zero-rate array: a legal value with
// an empty cache and a header-only storage region, not yet usable for
// element access until Resize and SetRate are both called.
func DefaultArray2D[S codec.Scalar]() *Array2D[S] {
	cdc := codec.FixedRate2D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims2, format.Dims2.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.resize(0, 0, 0, true)
	c.setRate(0, 0)

	return &Array2D[S]{core: c, cdc: cdc}
}

// DeserializeArray2D parses a header from buf and, if it describes a valid
// 2D array of S fitting within maxBytes, copies it into a new array.
func DeserializeArray2D[S codec.Scalar](buf []byte, maxBytes int) (*Array2D[S], error) {
	h, err := header.Parse(buf, scalarTypeOf[S](), format.Dims2)
	if err != nil {
		return nil, err
	}

	cdc := codec.FixedRate2D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims2, format.Dims2.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.nx, c.ny = h.NX, h.NY
	c.bx = blockExtent(h.NX)
	c.by = blockExtent(h.NY)
	c.blocks = c.bx * c.by
	c.shapeTable = shapeTable2D(h.NX, h.NY, c.bx, c.by)
	c.bitsPerBlock = int(h.Rate.MaxBits)
	c.params = codec.Params{BitsPerValue: int(h.Rate.MaxPrec), MinExp: h.Rate.MinExp}
	c.hdr = h
	c.cacheBytes = defaultConfig(h.NX, scalarSizeOf[S]()).cacheBytes

	need := c.headerBytes() + c.payloadBytes()
	if maxBytes < need || len(buf) < need {
		return nil, errs.ErrBufferTooSmall
	}

	c.adoptBuffer(buf, need)

	return &Array2D[S]{core: c, cdc: cdc}, nil
}

func (a *Array2D[S]) Rate() float64 { return float64(a.core.params.BitsPerValue) }
func (a *Array2D[S]) SetRate(rate float64) float64 {
	return a.core.setRate(rate, a.core.params.MinExp)
}

// Dims reports the array's fixed dimensionality.
func (a *Array2D[S]) Dims() format.Dims { return a.core.Dims() }

// ScalarType reports the array's fixed element type.
func (a *Array2D[S]) ScalarType() format.ScalarType { return a.core.ScalarType() }

// Extents reports the array's logical extents; unused axes are 0.
func (a *Array2D[S]) Extents() (nx, ny, nz uint32) { return a.core.Extents() }

func (a *Array2D[S]) Size() int      { return int(a.core.nx) * int(a.core.ny) }
func (a *Array2D[S]) SizeX() uint32  { return a.core.nx }
func (a *Array2D[S]) SizeY() uint32  { return a.core.ny }

// Resize changes the array's extents. Existing data is not preserved.
// Resize(0, 0, clear) frees the payload; Size() reads back as 0.
func (a *Array2D[S]) Resize(nx, ny uint32, clear bool) {
	a.core.resize(nx, ny, 0, clear)
}

func (a *Array2D[S]) CacheSize() int         { return a.core.cacheSize() }
func (a *Array2D[S]) SetCacheSize(bytes int) { a.core.setCacheSize(bytes) }
func (a *Array2D[S]) ClearCache()            { a.core.clearCache() }
func (a *Array2D[S]) FlushCache()            { a.core.flushCache() }
func (a *Array2D[S]) CompressedData() []byte { return a.core.compressedData() }
func (a *Array2D[S]) CompressedSize() int    { return a.core.compressedSize() }
func (a *Array2D[S]) HeaderData() []byte     { return a.core.headerData() }
func (a *Array2D[S]) HeaderSize() int        { return a.core.headerSize() }
func (a *Array2D[S]) Checksum() uint64       { return a.core.checksum() }

// Get returns the element at (x,y).
func (a *Array2D[S]) Get(x, y int) S {
	block, lane := blockLane2D(x, y, a.core.bx)

	return a.core.fetch(block, false)[lane]
}

// Set assigns v to the element at (x,y).
func (a *Array2D[S]) Set(x, y int, v S) {
	block, lane := blockLane2D(x, y, a.core.bx)
	a.core.fetch(block, true)[lane] = v
}

// At returns a write-proxy for the element at (x,y).
func (a *Array2D[S]) At(x, y int) Ref[S] {
	block, lane := blockLane2D(x, y, a.core.bx)

	return Ref[S]{cell: cell[S]{c: a.core, blockIndex: block, lane: lane}}
}

func (a *Array2D[S]) Add(x, y int, v S) { a.At(x, y).Add(v) }
func (a *Array2D[S]) Sub(x, y int, v S) { a.At(x, y).Sub(v) }
func (a *Array2D[S]) Mul(x, y int, v S) { a.At(x, y).Mul(v) }
func (a *Array2D[S]) Div(x, y int, v S) { a.At(x, y).Div(v) }

// GetFlat returns the element at flat row-major index idx (y major, x
// minor), distinct from the block-major layout used internally.
func (a *Array2D[S]) GetFlat(idx int) S {
	nx := int(a.core.nx)

	return a.Get(idx%nx, idx/nx)
}

// SetFlat assigns v to the element at flat row-major index idx.
func (a *Array2D[S]) SetFlat(idx int, v S) {
	nx := int(a.core.nx)
	a.Set(idx%nx, idx/nx, v)
}

// GetAll flushes the cache, then walks blocks in block-major order and
// strided-decodes each one directly into dest (row-major, y major x minor).
// Flushing first ensures values written via Set/At but not yet committed to
// the payload are still reflected here.
func (a *Array2D[S]) GetAll(dest []S) {
	c := a.core
	c.flushCache()
	nx := int(c.nx)
	for bj := 0; bj < c.by; bj++ {
		for bi := 0; bi < c.bx; bi++ {
			b := bj*c.bx + bi
			c.stream.SeekRead(c.slotBit(b))
			offset := bj*4*nx + bi*4
			a.cdc.DecodeBlockStrided(c.stream, dest, offset, 1, nx, c.shapeCodeOf(b), c.params)
		}
	}
}

// SetAll walks blocks in block-major order and strided-encodes each one
// directly from source (row-major, y major x minor), bypassing the cache.
// After SetAll the cache holds no dirty lines.
func (a *Array2D[S]) SetAll(source []S) error {
	c := a.core
	nx := int(c.nx)
	for bj := 0; bj < c.by; bj++ {
		for bi := 0; bi < c.bx; bi++ {
			b := bj*c.bx + bi
			c.stream.SeekWrite(c.slotBit(b))
			offset := bj*4*nx + bi*4
			a.cdc.EncodeBlockStrided(c.stream, source, offset, 1, nx, c.shapeCodeOf(b), c.params)
		}
	}
	c.clearCache()

	return nil
}

// Iterator returns a forward, block-major iterator over every element.
func (a *Array2D[S]) Iterator() *Iterator[S] { return newIterator(a.core) }

// DeepCopy returns an independent copy, preserving unflushed cache state.
func (a *Array2D[S]) DeepCopy() *Array2D[S] {
	dst := &core[S]{codec: a.core.codec}
	a.core.deepCopyInto(dst)

	return &Array2D[S]{core: dst, cdc: a.cdc}
}
