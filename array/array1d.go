package array

import (
	"github.com/compac/compac/codec"
	"github.com/compac/compac/errs"
	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
	"github.com/compac/compac/internal/options"
)

// Array1D is a compressed, element-addressable one-dimensional array of S.
type Array1D[S codec.Scalar] struct {
	core *core[S]
	cdc  codec.Codec1D[S]
}

func scalarTypeOf[S codec.Scalar]() format.ScalarType {
	var z S
	switch any(z).(type) {
	case float32:
		return format.ScalarFloat32
	default:
		return format.ScalarFloat64
	}
}

func scalarSizeOf[S codec.Scalar]() int {
	var z S
	switch any(z).(type) {
	case float32:
		return 4
	default:
		return 8
	}
}

// NewArray1D constructs an nx-length array at the given rate (bits per
// value). If source is non-nil its values are bulk-encoded in immediately.
func NewArray1D[S codec.Scalar](nx uint32, rate float64, source []S, opts ...Option) (*Array1D[S], error) {
	cfg := defaultConfig(nx, scalarSizeOf[S]())
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	cdc := codec.FixedRate1D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims1, format.Dims1.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.cacheBytes = cfg.cacheBytes

	a := &Array1D[S]{core: c, cdc: cdc}
	a.core.resize(nx, 0, 0, true)
	a.core.setRate(rate, cfg.minExp)

	if source != nil {
		if err := a.SetAll(source); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// DefaultArray1D returns a zero-extent, zero-rate array: a legal value with
// an empty cache and a header-only storage region, not yet usable for
// element access until Resize and SetRate are both called.
func DefaultArray1D[S codec.Scalar]() *Array1D[S] {
	cdc := codec.FixedRate1D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims1, format.Dims1.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.resize(0, 0, 0, true)
	c.setRate(0, 0)

	return &Array1D[S]{core: c, cdc: cdc}
}

// DeserializeArray1D parses a header from buf and, if it describes a valid
// 1D array of S fitting within maxBytes, copies it into a new array.
func DeserializeArray1D[S codec.Scalar](buf []byte, maxBytes int) (*Array1D[S], error) {
	h, err := header.Parse(buf, scalarTypeOf[S](), format.Dims1)
	if err != nil {
		return nil, err
	}

	cdc := codec.FixedRate1D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims1, format.Dims1.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.nx = h.NX
	c.bx = blockExtent(h.NX)
	c.blocks = c.bx
	c.shapeTable = shapeTable1D(h.NX, c.bx)
	c.bitsPerBlock = int(h.Rate.MaxBits)
	c.params = codec.Params{BitsPerValue: int(h.Rate.MaxPrec), MinExp: h.Rate.MinExp}
	c.hdr = h
	c.cacheBytes = defaultConfig(h.NX, scalarSizeOf[S]()).cacheBytes

	need := c.headerBytes() + c.payloadBytes()
	if maxBytes < need || len(buf) < need {
		return nil, errs.ErrBufferTooSmall
	}

	c.adoptBuffer(buf, need)

	return &Array1D[S]{core: c, cdc: cdc}, nil
}

// Rate returns the current rate in bits per value.
func (a *Array1D[S]) Rate() float64 { return float64(a.core.params.BitsPerValue) }

// SetRate negotiates a new rate, reallocating storage.
func (a *Array1D[S]) SetRate(rate float64) float64 {
	return a.core.setRate(rate, a.core.params.MinExp)
}

// Dims reports the array's fixed dimensionality.
func (a *Array1D[S]) Dims() format.Dims { return a.core.Dims() }

// ScalarType reports the array's fixed element type.
func (a *Array1D[S]) ScalarType() format.ScalarType { return a.core.ScalarType() }

// Extents reports the array's logical extents; unused axes are 0.
func (a *Array1D[S]) Extents() (nx, ny, nz uint32) { return a.core.Extents() }

// Size returns the total element count.
func (a *Array1D[S]) Size() int { return int(a.core.nx) }

// SizeX returns the x extent.
func (a *Array1D[S]) SizeX() uint32 { return a.core.nx }

// Resize changes the array's length. Existing data is not preserved.
// Resize(0, clear) frees the payload; Size() reads back as 0.
func (a *Array1D[S]) Resize(nx uint32, clear bool) {
	a.core.resize(nx, 0, 0, clear)
}

func (a *Array1D[S]) CacheSize() int         { return a.core.cacheSize() }
func (a *Array1D[S]) SetCacheSize(bytes int) { a.core.setCacheSize(bytes) }
func (a *Array1D[S]) ClearCache()            { a.core.clearCache() }
func (a *Array1D[S]) FlushCache()            { a.core.flushCache() }
func (a *Array1D[S]) CompressedData() []byte { return a.core.compressedData() }
func (a *Array1D[S]) CompressedSize() int    { return a.core.compressedSize() }
func (a *Array1D[S]) HeaderData() []byte     { return a.core.headerData() }
func (a *Array1D[S]) HeaderSize() int        { return a.core.headerSize() }
func (a *Array1D[S]) Checksum() uint64       { return a.core.checksum() }

// Get returns the element at x. There is no separate flat index in 1D: x
// already is the flat index.
func (a *Array1D[S]) Get(x int) S {
	block, lane := blockLane1D(x)

	return a.core.fetch(block, false)[lane]
}

// Set assigns v to the element at x.
func (a *Array1D[S]) Set(x int, v S) {
	block, lane := blockLane1D(x)
	a.core.fetch(block, true)[lane] = v
}

// At returns a write-proxy for the element at x.
func (a *Array1D[S]) At(x int) Ref[S] {
	block, lane := blockLane1D(x)

	return Ref[S]{cell: cell[S]{c: a.core, blockIndex: block, lane: lane}}
}

func (a *Array1D[S]) Add(x int, v S) { a.At(x).Add(v) }
func (a *Array1D[S]) Sub(x int, v S) { a.At(x).Sub(v) }
func (a *Array1D[S]) Mul(x int, v S) { a.At(x).Mul(v) }
func (a *Array1D[S]) Div(x int, v S) { a.At(x).Div(v) }

// GetAll flushes the cache, then walks blocks in block-major order and
// strided-decodes each one directly into dest. Flushing first ensures
// values written via Set/At but not yet committed to the payload are still
// reflected here. len(dest) must be at least Size().
func (a *Array1D[S]) GetAll(dest []S) {
	c := a.core
	c.flushCache()
	for b := 0; b < c.blocks; b++ {
		c.stream.SeekRead(c.slotBit(b))
		a.cdc.DecodeBlockStrided(c.stream, dest, b*4, 1, c.shapeCodeOf(b), c.params)
	}
}

// SetAll walks blocks in block-major order and strided-encodes each one
// directly from source, bypassing the cache. After SetAll the cache holds
// no dirty lines: the payload alone is authoritative. len(source) must be
// at least Size().
func (a *Array1D[S]) SetAll(source []S) error {
	c := a.core
	for b := 0; b < c.blocks; b++ {
		c.stream.SeekWrite(c.slotBit(b))
		a.cdc.EncodeBlockStrided(c.stream, source, b*4, 1, c.shapeCodeOf(b), c.params)
	}
	c.clearCache()

	return nil
}

// Iterator returns a forward, block-major iterator over every element.
func (a *Array1D[S]) Iterator() *Iterator[S] { return newIterator(a.core) }

// DeepCopy returns an independent copy, preserving unflushed cache state:
// the source is not flushed first, so a dirty source's modifications show
// up in the copy's cache, not yet in the copy's payload.
func (a *Array1D[S]) DeepCopy() *Array1D[S] {
	dst := &core[S]{codec: a.core.codec}
	a.core.deepCopyInto(dst)

	return &Array1D[S]{core: dst, cdc: a.cdc}
}
