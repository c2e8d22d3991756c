package transport

import (
	"github.com/compac/compac/endian"
	"github.com/compac/compac/errs"
	"github.com/compac/compac/internal/pool"
)

var byteOrder = endian.GetLittleEndianEngine()

// batchCountBytes and batchLenBytes frame a BatchAssembler's output: a
// uint32 snapshot count followed by, for each snapshot, a uint64 byte length
// and that many bytes of header+payload.
const (
	batchCountBytes = 4
	batchLenBytes   = 8
)

// BatchAssembler concatenates several already-assembled array snapshots
// (each itself header+payload, as produced by Assembler.Assemble) into one
// self-describing multi-snapshot buffer, so a Compressor sees one payload to
// squeeze instead of many small ones. It borrows from the batch pool rather
// than the single-snapshot pool: its accumulated buffer routinely spans many
// arrays' worth of data.
type BatchAssembler struct {
	buf *pool.ByteBuffer
}

// NewBatchAssembler borrows a buffer from the shared batch pool.
func NewBatchAssembler() *BatchAssembler {
	return &BatchAssembler{buf: pool.GetBatchBuffer()}
}

// Assemble frames snapshots into one buffer: count, then each snapshot's
// length and bytes in order. The returned slice aliases the assembler's
// buffer and is only valid until the next Assemble call or Release.
func (a *BatchAssembler) Assemble(snapshots [][]byte) []byte {
	a.buf.Reset()

	var head [batchCountBytes]byte
	byteOrder.PutUint32(head[:], uint32(len(snapshots)))
	a.buf.MustWrite(head[:])

	for _, snap := range snapshots {
		var lenBuf [batchLenBytes]byte
		byteOrder.PutUint64(lenBuf[:], uint64(len(snap)))
		a.buf.MustWrite(lenBuf[:])
		a.buf.MustWrite(snap)
	}

	return a.buf.Bytes()
}

// Release returns the assembler's buffer to the shared batch pool. The
// assembler must not be used afterward.
func (a *BatchAssembler) Release() {
	pool.PutBatchBuffer(a.buf)
	a.buf = nil
}

// SplitBatch reverses BatchAssembler.Assemble, returning views into buf. The
// returned slices alias buf and are only valid as long as buf is.
func SplitBatch(buf []byte) ([][]byte, error) {
	if len(buf) < batchCountBytes {
		return nil, errs.ErrBufferTooSmall
	}

	count := byteOrder.Uint32(buf[:batchCountBytes])
	buf = buf[batchCountBytes:]

	snapshots := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(buf) < batchLenBytes {
			return nil, errs.ErrBufferTooSmall
		}
		n := byteOrder.Uint64(buf[:batchLenBytes])
		buf = buf[batchLenBytes:]

		if uint64(len(buf)) < n {
			return nil, errs.ErrBufferTooSmall
		}
		snapshots = append(snapshots, buf[:n])
		buf = buf[n:]
	}

	return snapshots, nil
}
