// Package header implements the fixed-width, self-describing header that
// precedes every array's compressed payload: scalar type, logical extents
// and fixed-rate parameters, framed so its last bit lands on a bit-word
// boundary and the payload that follows always starts word-aligned.
//
// The exact bit layout of the framed magic/meta/mode-short atoms is a
// private detail of this package (see const.go); callers only construct and
// parse the Header value below.
package header

import (
	"github.com/compac/compac/endian"
	"github.com/compac/compac/errs"
	"github.com/compac/compac/format"
)

var byteOrder = endian.GetLittleEndianEngine()

// RateParams mirrors the fixed-rate parameters carried in every header. In
// fixed-rate mode MinBits always equals MaxBits (every block consumes the
// same number of bits); MaxPrec is the per-value bit width and MinExp is
// the fixed-point scale exponent the codec package quantizes around.
type RateParams struct {
	MinBits uint16
	MaxBits uint16
	MaxPrec uint8
	MinExp  int16
}

// Header is the parsed content of an array's fixed header region.
type Header struct {
	ScalarType format.ScalarType
	Dims       format.Dims
	NX, NY, NZ uint32
	Rate       RateParams
}

// New creates a Header for a freshly-constructed array. Extents and rate
// parameters are filled in later via SetExtents/SetRate as the array's
// geometry becomes known.
func New(scalarType format.ScalarType, dims format.Dims) *Header {
	return &Header{ScalarType: scalarType, Dims: dims}
}

// SetExtents records the array's logical extents.
func (h *Header) SetExtents(nx, ny, nz uint32) {
	h.NX, h.NY, h.NZ = nx, ny, nz
}

// SetRate records the negotiated fixed-rate parameters.
func (h *Header) SetRate(r RateParams) {
	h.Rate = r
}

// Bytes serializes the header region: Offset() zero padding bits, then the
// framed magic/meta/mode-short fields, for a total of Bytes() bytes.
func (h *Header) Bytes() []byte {
	buf := make([]byte, Bytes())
	off := Offset() / 8

	byteOrder.PutUint32(buf[off:], Magic)
	meta := buf[off+4 : off+4+MetaBits/8]
	meta[0] = byte(h.ScalarType)
	meta[1] = byte(h.Dims)
	// meta[2:4] reserved, left zero
	byteOrder.PutUint32(meta[4:8], h.NX)
	byteOrder.PutUint32(meta[8:12], h.NY)
	byteOrder.PutUint32(meta[12:16], h.NZ)

	mode := buf[off+4+MetaBits/8:]
	byteOrder.PutUint16(mode[0:2], h.Rate.MinBits)
	byteOrder.PutUint16(mode[2:4], h.Rate.MaxBits)
	mode[4] = h.Rate.MaxPrec
	byteOrder.PutUint16(mode[5:7], uint16(h.Rate.MinExp))
	// mode[7] reserved, left zero

	return buf
}

// Parse reads a header from data, which must contain at least Bytes()
// bytes, and validates it against the caller's expected scalar type and
// dimensionality.
//
// It returns errs.ErrBufferTooSmall if data is shorter than the header,
// errs.ErrInvalidHeader if the magic does not match, errs.ErrScalarTypeMismatch
// if the scalar type disagrees with wantType, and errs.ErrDimensionalityMismatch
// if the header's non-zero extents are inconsistent with wantDims.
func Parse(data []byte, wantType format.ScalarType, wantDims format.Dims) (*Header, error) {
	if len(data) < Bytes() {
		return nil, errs.ErrBufferTooSmall
	}

	off := Offset() / 8
	magic := byteOrder.Uint32(data[off:])
	if magic != Magic {
		return nil, errs.ErrInvalidHeader
	}

	meta := data[off+4 : off+4+MetaBits/8]
	scalarType := format.ScalarType(meta[0])
	dims := format.Dims(meta[1])
	if !scalarType.Valid() || !dims.Valid() {
		return nil, errs.ErrInvalidHeader
	}

	nx := byteOrder.Uint32(meta[4:8])
	ny := byteOrder.Uint32(meta[8:12])
	nz := byteOrder.Uint32(meta[12:16])

	if scalarType != wantType {
		return nil, errs.ErrScalarTypeMismatch
	}
	if dims != wantDims || !format.ValidExtents(dims, nx, ny, nz) {
		return nil, errs.ErrDimensionalityMismatch
	}

	mode := data[off+4+MetaBits/8:]
	h := &Header{
		ScalarType: scalarType,
		Dims:       dims,
		NX:         nx,
		NY:         ny,
		NZ:         nz,
		Rate: RateParams{
			MinBits: byteOrder.Uint16(mode[0:2]),
			MaxBits: byteOrder.Uint16(mode[2:4]),
			MaxPrec: mode[4],
			MinExp:  int16(byteOrder.Uint16(mode[5:7])),
		},
	}

	return h, nil
}
