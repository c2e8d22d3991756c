package array

import (
	"github.com/compac/compac/bitstream"
	"github.com/compac/compac/cache"
	"github.com/compac/compac/codec"
	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
	"github.com/compac/compac/internal/buffer"
	"github.com/compac/compac/internal/checksum"
)

// core owns everything about an array that does not depend on its
// dimensionality: the aligned buffer, the header, the bitstream view, the
// shape table and the block cache. Array1D/2D/3D each embed a core and add
// only the coordinate math their dimensionality needs.
type core[S codec.Scalar] struct {
	scalarType format.ScalarType
	dims       format.Dims
	nx, ny, nz uint32
	bx, by, bz int
	blocks     int

	valuesPerBlock int
	bitsPerBlock   int
	params         codec.Params

	shapeTable []uint8 // nil when every block is full

	hdr    *header.Header
	buf    *buffer.Aligned
	stream *bitstream.Stream

	cache      *cache.Cache[S]
	cacheBytes int

	scalarSize int
	codec      dimsCodec[S]
}

// dimsCodec is the narrow, dims-independent slice of a Codec1D/2D/3D that
// the block cache needs on a miss or eviction: encode/decode one 4^d tile,
// contiguous. FixedRate1D/2D/3D all satisfy this identically-shaped
// interface, so core can hold whichever one its dims picked without a
// wrapper type.
type dimsCodec[S codec.Scalar] interface {
	EncodeBlock(w *bitstream.Stream, tile []S, shapeCode uint8, p codec.Params)
	DecodeBlock(r *bitstream.Stream, tile []S, shapeCode uint8, p codec.Params)
}

func newCore[S codec.Scalar](scalarType format.ScalarType, dims format.Dims, valuesPerBlock, scalarSize int, dc dimsCodec[S]) *core[S] {
	return &core[S]{
		scalarType:     scalarType,
		dims:           dims,
		valuesPerBlock: valuesPerBlock,
		scalarSize:     scalarSize,
		codec:          dc,
		hdr:            header.New(scalarType, dims),
		buf:            buffer.NewAligned(0, alignment),
	}
}

const alignment = 256

// resize updates extents, recomputes block geometry and the shape table,
// reallocates the storage region and rewrites the header. clear only
// affects the caller-visible contract: the underlying Aligned buffer is
// always zero-initialized on reallocation, so the payload is byte-zero
// either way.
//
// resize(0,…) is a first-class case, not an error: it frees the payload
// down to header_bytes and leaves blocks/shapeTable empty, so size() reads
// back as 0. blockExtent and the shapeTable builders already treat a zero
// extent as zero blocks, so no other branch is needed for it.
func (c *core[S]) resize(nx, ny, nz uint32, _ bool) {
	c.nx, c.ny, c.nz = nx, ny, nz
	c.bx = blockExtent(nx)
	c.by = blockExtent(ny)
	c.bz = blockExtent(nz)

	switch c.dims {
	case format.Dims1:
		c.blocks = c.bx
		c.shapeTable = shapeTable1D(nx, c.bx)
	case format.Dims2:
		c.blocks = c.bx * c.by
		c.shapeTable = shapeTable2D(nx, ny, c.bx, c.by)
	case format.Dims3:
		c.blocks = c.bx * c.by * c.bz
		c.shapeTable = shapeTable3D(nx, ny, nz, c.bx, c.by, c.bz)
	default:
		c.blocks = 0
		c.shapeTable = nil
	}

	c.alloc()
}

// setRate negotiates bits_per_block for the requested rate, then reallocs
// (payload geometry changes with bits_per_block) and returns the actual
// achieved rate in bits per value.
func (c *core[S]) setRate(rate float64, minExp int16) float64 {
	bitsPerBlock, bitsPerValue := codec.Negotiate(rate, c.valuesPerBlock)
	c.bitsPerBlock = bitsPerBlock
	c.params = codec.Params{BitsPerValue: bitsPerValue, MinExp: minExp}
	c.alloc()

	return float64(bitsPerValue)
}

// Dims reports the array's fixed dimensionality.
func (c *core[S]) Dims() format.Dims { return c.dims }

// ScalarType reports the array's fixed element type.
func (c *core[S]) ScalarType() format.ScalarType { return c.scalarType }

// Extents reports the array's logical extents; unused axes are 0.
func (c *core[S]) Extents() (nx, ny, nz uint32) { return c.nx, c.ny, c.nz }

func (c *core[S]) headerBytes() int { return header.Bytes() }

func (c *core[S]) payloadBytes() int {
	return c.blocks * c.bitsPerBlock / 8
}

// alloc (re)allocates the storage region to the current geometry, clears
// the cache and rewrites the header. It is called by both resize and
// setRate since either can change payload_bytes.
func (c *core[S]) alloc() {
	total := c.headerBytes() + c.payloadBytes()
	c.buf.Reallocate(total)

	c.hdr.SetExtents(c.nx, c.ny, c.nz)
	c.hdr.SetRate(header.RateParams{
		MinBits: uint16(c.bitsPerBlock),
		MaxBits: uint16(c.bitsPerBlock),
		MaxPrec: uint8(c.params.BitsPerValue),
		MinExp:  c.params.MinExp,
	})
	copy(c.buf.Bytes()[:c.headerBytes()], c.hdr.Bytes())

	c.stream = bitstream.Open(c.buf.Bytes(), total)
	c.cache = cache.New[S](c.linesForBudget(c.cacheBytes), c.valuesPerBlock)
}

// linesForBudget converts a cache byte budget into a line count, the way
// the block cache's constructor spec requires: lines = max(1, budget /
// sizeof(cache_line)), sizeof(cache_line) approximated as one tile's worth
// of scalars.
func (c *core[S]) linesForBudget(budgetBytes int) int {
	lineBytes := c.valuesPerBlock * c.scalarSize
	if lineBytes <= 0 || budgetBytes <= 0 {
		return 1
	}
	lines := budgetBytes / lineBytes
	if lines < 1 {
		lines = 1
	}

	return lines
}

// adoptBuffer is used by the deserializing constructors: it copies the
// first n bytes of src into a freshly allocated aligned buffer this array
// owns exclusively, reopens the bitstream over it, and builds a cache sized
// from the current cacheBytes budget.
func (c *core[S]) adoptBuffer(src []byte, n int) {
	c.buf = buffer.NewAligned(n, alignment)
	copy(c.buf.Bytes(), src[:n])
	c.stream = bitstream.Open(c.buf.Bytes(), n)
	c.cache = cache.New[S](c.linesForBudget(c.cacheBytes), c.valuesPerBlock)
}

func (c *core[S]) slotBit(blockIndex int) int {
	return c.headerBytes()*8 + blockIndex*c.bitsPerBlock
}

// EncodeSlot implements cache.SlotIO: it is called on a dirty eviction or
// on flush to write one tile back to its slot in the payload.
func (c *core[S]) EncodeSlot(blockIndex int, tile []S) {
	c.stream.SeekWrite(c.slotBit(blockIndex))
	c.codec.EncodeBlock(c.stream, tile, c.shapeCodeOf(blockIndex), c.params)
}

// DecodeSlot implements cache.SlotIO: it is called on a miss to pull one
// tile in from its slot in the payload.
func (c *core[S]) DecodeSlot(blockIndex int, tile []S) {
	c.stream.SeekRead(c.slotBit(blockIndex))
	c.codec.DecodeBlock(c.stream, tile, c.shapeCodeOf(blockIndex), c.params)
}

func (c *core[S]) shapeCodeOf(blockIndex int) uint8 {
	if c.shapeTable == nil {
		return codec.ShapeFull
	}

	return c.shapeTable[blockIndex]
}

// fetch returns the resident tile for blockIndex, decoding or evicting via
// the cache as needed.
func (c *core[S]) fetch(blockIndex int, forWrite bool) []S {
	return c.cache.Fetch(blockIndex, forWrite, c)
}

func (c *core[S]) flushCache() { c.cache.Flush(c) }
func (c *core[S]) clearCache() { c.cache.Clear() }

func (c *core[S]) setCacheSize(bytes int) {
	c.cacheBytes = bytes
	c.flushCache()
	c.cache.Resize(c.linesForBudget(bytes))
}

func (c *core[S]) cacheSize() int { return c.cacheBytes }

// compressedData flushes the cache and returns the payload region.
func (c *core[S]) compressedData() []byte {
	c.flushCache()

	return c.buf.Bytes()[c.headerBytes():]
}

func (c *core[S]) compressedSize() int { return c.payloadBytes() }

// headerData flushes the cache (invariant 3: the header must reflect all
// prior mutations before any observer reads either region) and returns the
// header region.
func (c *core[S]) headerData() []byte {
	c.flushCache()

	return c.buf.Bytes()[:c.headerBytes()]
}

func (c *core[S]) headerSize() int { return c.headerBytes() }

// checksum hashes the full storage region after a forced flush, for
// callers pinning bit-exact regression expectations.
func (c *core[S]) checksum() uint64 {
	c.flushCache()

	return checksum.Bytes(c.buf.Bytes())
}

// deepCopyInto clones buf, shape table and cache state (including dirty
// bits and unflushed tile contents) from c into dst, without flushing c.
// It also copies c's geometry (dims, extents and rate) and rebuilds dst's
// header from it, so dst may be a zero core carrying only its codec.
func (c *core[S]) deepCopyInto(dst *core[S]) {
	dst.scalarType = c.scalarType
	dst.dims = c.dims
	dst.nx, dst.ny, dst.nz = c.nx, c.ny, c.nz
	dst.bx, dst.by, dst.bz = c.bx, c.by, c.bz
	dst.blocks = c.blocks
	dst.valuesPerBlock = c.valuesPerBlock
	dst.bitsPerBlock = c.bitsPerBlock
	dst.params = c.params
	dst.cacheBytes = c.cacheBytes
	dst.scalarSize = c.scalarSize

	if c.shapeTable != nil {
		dst.shapeTable = append([]uint8(nil), c.shapeTable...)
	} else {
		dst.shapeTable = nil
	}

	dst.hdr = header.New(c.scalarType, c.dims)
	dst.hdr.SetExtents(c.nx, c.ny, c.nz)
	dst.hdr.SetRate(header.RateParams{
		MinBits: uint16(c.bitsPerBlock),
		MaxBits: uint16(c.bitsPerBlock),
		MaxPrec: uint8(c.params.BitsPerValue),
		MinExp:  c.params.MinExp,
	})

	dst.buf = c.buf.Clone(c.buf.Len())
	dst.stream = bitstream.Open(dst.buf.Bytes(), dst.buf.Len())
	dst.cache = c.cache.Snapshot()
}
