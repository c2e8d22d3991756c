package transport

import "github.com/compac/compac/internal/pool"

// Assembler concatenates a serialized array's header and payload into one
// contiguous buffer suitable for handing to a Compressor, borrowing a pooled
// byte slice across calls instead of allocating a fresh one every time.
type Assembler struct {
	buf *pool.ByteBuffer
}

// NewAssembler borrows a buffer from the shared snapshot pool.
func NewAssembler() *Assembler {
	return &Assembler{buf: pool.GetSnapshotBuffer()}
}

// Assemble resets the assembler's buffer and writes header followed by
// payload into it, returning the concatenated view. The returned slice
// aliases the assembler's buffer and is only valid until the next Assemble
// call or Release.
func (a *Assembler) Assemble(header, payload []byte) []byte {
	a.buf.Reset()
	a.buf.MustWrite(header)
	a.buf.MustWrite(payload)

	return a.buf.Bytes()
}

// Release returns the assembler's buffer to the shared pool. The assembler
// must not be used afterward.
func (a *Assembler) Release() {
	pool.PutSnapshotBuffer(a.buf)
	a.buf = nil
}
