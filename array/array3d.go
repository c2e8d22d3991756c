package array

import (
	"github.com/compac/compac/codec"
	"github.com/compac/compac/errs"
	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
	"github.com/compac/compac/internal/options"
)

// Array3D is a compressed, element-addressable three-dimensional array of S.
type Array3D[S codec.Scalar] struct {
	core *core[S]
	cdc  codec.Codec3D[S]
}

// NewArray3D constructs an nx-by-ny-by-nz array at the given rate (bits per
// value). If source is non-nil (z, y, x order) its values are bulk-encoded
// in immediately.
func NewArray3D[S codec.Scalar](nx, ny, nz uint32, rate float64, source []S, opts ...Option) (*Array3D[S], error) {
	cfg := defaultConfig(nx, scalarSizeOf[S]())
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	cdc := codec.FixedRate3D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims3, format.Dims3.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.cacheBytes = cfg.cacheBytes

	a := &Array3D[S]{core: c, cdc: cdc}
	a.core.resize(nx, ny, nz, true)
	a.core.setRate(rate, cfg.minExp)

	if source != nil {
		if err := a.SetAll(source); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// DefaultArray3D returns a zero-extent, zero-rate array: a legal value with
// an empty cache and a header-only storage region, not yet usable for
// element access until Resize and SetRate are both called.
func DefaultArray3D[S codec.Scalar]() *Array3D[S] {
	cdc := codec.FixedRate3D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims3, format.Dims3.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.resize(0, 0, 0, true)
	c.setRate(0, 0)

	return &Array3D[S]{core: c, cdc: cdc}
}

// DeserializeArray3D parses a header from buf and, if it describes a valid
// 3D array of S fitting within maxBytes, copies it into a new array.
func DeserializeArray3D[S codec.Scalar](buf []byte, maxBytes int) (*Array3D[S], error) {
	h, err := header.Parse(buf, scalarTypeOf[S](), format.Dims3)
	if err != nil {
		return nil, err
	}

	cdc := codec.FixedRate3D[S]{}
	c := newCore[S](scalarTypeOf[S](), format.Dims3, format.Dims3.ValuesPerBlock(), scalarSizeOf[S](), cdc)
	c.nx, c.ny, c.nz = h.NX, h.NY, h.NZ
	c.bx = blockExtent(h.NX)
	c.by = blockExtent(h.NY)
	c.bz = blockExtent(h.NZ)
	c.blocks = c.bx * c.by * c.bz
	c.shapeTable = shapeTable3D(h.NX, h.NY, h.NZ, c.bx, c.by, c.bz)
	c.bitsPerBlock = int(h.Rate.MaxBits)
	c.params = codec.Params{BitsPerValue: int(h.Rate.MaxPrec), MinExp: h.Rate.MinExp}
	c.hdr = h
	c.cacheBytes = defaultConfig(h.NX, scalarSizeOf[S]()).cacheBytes

	need := c.headerBytes() + c.payloadBytes()
	if maxBytes < need || len(buf) < need {
		return nil, errs.ErrBufferTooSmall
	}

	c.adoptBuffer(buf, need)

	return &Array3D[S]{core: c, cdc: cdc}, nil
}

func (a *Array3D[S]) Rate() float64 { return float64(a.core.params.BitsPerValue) }
func (a *Array3D[S]) SetRate(rate float64) float64 {
	return a.core.setRate(rate, a.core.params.MinExp)
}

// Dims reports the array's fixed dimensionality.
func (a *Array3D[S]) Dims() format.Dims { return a.core.Dims() }

// ScalarType reports the array's fixed element type.
func (a *Array3D[S]) ScalarType() format.ScalarType { return a.core.ScalarType() }

// Extents reports the array's logical extents; unused axes are 0.
func (a *Array3D[S]) Extents() (nx, ny, nz uint32) { return a.core.Extents() }

func (a *Array3D[S]) Size() int     { return int(a.core.nx) * int(a.core.ny) * int(a.core.nz) }
func (a *Array3D[S]) SizeX() uint32 { return a.core.nx }
func (a *Array3D[S]) SizeY() uint32 { return a.core.ny }
func (a *Array3D[S]) SizeZ() uint32 { return a.core.nz }

// Resize changes the array's extents. Existing data is not preserved.
// Resize(0, 0, 0, clear) frees the payload; Size() reads back as 0.
func (a *Array3D[S]) Resize(nx, ny, nz uint32, clear bool) {
	a.core.resize(nx, ny, nz, clear)
}

func (a *Array3D[S]) CacheSize() int         { return a.core.cacheSize() }
func (a *Array3D[S]) SetCacheSize(bytes int) { a.core.setCacheSize(bytes) }
func (a *Array3D[S]) ClearCache()            { a.core.clearCache() }
func (a *Array3D[S]) FlushCache()            { a.core.flushCache() }
func (a *Array3D[S]) CompressedData() []byte { return a.core.compressedData() }
func (a *Array3D[S]) CompressedSize() int    { return a.core.compressedSize() }
func (a *Array3D[S]) HeaderData() []byte     { return a.core.headerData() }
func (a *Array3D[S]) HeaderSize() int        { return a.core.headerSize() }
func (a *Array3D[S]) Checksum() uint64       { return a.core.checksum() }

// Get returns the element at (x,y,z).
func (a *Array3D[S]) Get(x, y, z int) S {
	block, lane := blockLane3D(x, y, z, a.core.bx, a.core.by)

	return a.core.fetch(block, false)[lane]
}

// Set assigns v to the element at (x,y,z).
func (a *Array3D[S]) Set(x, y, z int, v S) {
	block, lane := blockLane3D(x, y, z, a.core.bx, a.core.by)
	a.core.fetch(block, true)[lane] = v
}

// At returns a write-proxy for the element at (x,y,z).
func (a *Array3D[S]) At(x, y, z int) Ref[S] {
	block, lane := blockLane3D(x, y, z, a.core.bx, a.core.by)

	return Ref[S]{cell: cell[S]{c: a.core, blockIndex: block, lane: lane}}
}

func (a *Array3D[S]) Add(x, y, z int, v S) { a.At(x, y, z).Add(v) }
func (a *Array3D[S]) Sub(x, y, z int, v S) { a.At(x, y, z).Sub(v) }
func (a *Array3D[S]) Mul(x, y, z int, v S) { a.At(x, y, z).Mul(v) }
func (a *Array3D[S]) Div(x, y, z int, v S) { a.At(x, y, z).Div(v) }

// GetFlat returns the element at flat index idx ordered (z,y,x).
func (a *Array3D[S]) GetFlat(idx int) S {
	nx, ny := int(a.core.nx), int(a.core.ny)
	x := idx % nx
	y := (idx / nx) % ny
	z := idx / (nx * ny)

	return a.Get(x, y, z)
}

// SetFlat assigns v to the element at flat index idx ordered (z,y,x).
func (a *Array3D[S]) SetFlat(idx int, v S) {
	nx, ny := int(a.core.nx), int(a.core.ny)
	x := idx % nx
	y := (idx / nx) % ny
	z := idx / (nx * ny)
	a.Set(x, y, z, v)
}

// GetAll flushes the cache, then walks blocks in block-major order and
// strided-decodes each one directly into dest (z,y,x order). Flushing first
// ensures values written via Set/At but not yet committed to the payload
// are still reflected here.
func (a *Array3D[S]) GetAll(dest []S) {
	c := a.core
	c.flushCache()
	nx, ny := int(c.nx), int(c.ny)
	for bk := 0; bk < c.bz; bk++ {
		for bj := 0; bj < c.by; bj++ {
			for bi := 0; bi < c.bx; bi++ {
				b := (bk*c.by+bj)*c.bx + bi
				c.stream.SeekRead(c.slotBit(b))
				offset := bk*4*ny*nx + bj*4*nx + bi*4
				a.cdc.DecodeBlockStrided(c.stream, dest, offset, 1, nx, nx*ny, c.shapeCodeOf(b), c.params)
			}
		}
	}
}

// SetAll walks blocks in block-major order and strided-encodes each one
// directly from source (z,y,x order), bypassing the cache. After SetAll
// the cache holds no dirty lines.
func (a *Array3D[S]) SetAll(source []S) error {
	c := a.core
	nx, ny := int(c.nx), int(c.ny)
	for bk := 0; bk < c.bz; bk++ {
		for bj := 0; bj < c.by; bj++ {
			for bi := 0; bi < c.bx; bi++ {
				b := (bk*c.by+bj)*c.bx + bi
				c.stream.SeekWrite(c.slotBit(b))
				offset := bk*4*ny*nx + bj*4*nx + bi*4
				a.cdc.EncodeBlockStrided(c.stream, source, offset, 1, nx, nx*ny, c.shapeCodeOf(b), c.params)
			}
		}
	}
	c.clearCache()

	return nil
}

// Iterator returns a forward, block-major iterator over every element.
func (a *Array3D[S]) Iterator() *Iterator[S] { return newIterator(a.core) }

// DeepCopy returns an independent copy, preserving unflushed cache state.
func (a *Array3D[S]) DeepCopy() *Array3D[S] {
	dst := &core[S]{codec: a.core.codec}
	a.core.deepCopyInto(dst)

	return &Array3D[S]{core: dst, cdc: a.cdc}
}
