// Package transport provides optional whole-snapshot compression for a
// serialized array (header bytes followed by its fixed-rate payload).
//
// The fixed-rate layout produced by the header and codec packages is
// already bit-packed at a chosen rate and is not itself further
// compressible in the general case, but the header is small and highly
// regular, and callers moving snapshots over a network or into cold
// storage often still want a final general-purpose pass. This package
// supplies that pass as a separate, optional step - it never runs inside
// the array façade itself.
//
// Four algorithms are available, selected by format.CompressionType:
//   - None: passthrough, for callers who compress upstream or downstream
//   - Zstd: best ratio, used for archival snapshots
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, for read-heavy paths
//
// All four share the Codec interface (Compress/Decompress), so callers
// can select an algorithm at runtime via CreateCodec or GetCodec without
// depending on a concrete type.
//
// Assembler and BatchAssembler frame the bytes a Codec compresses:
// Assembler concatenates one array's header and payload, BatchAssembler
// frames several arrays' assembled snapshots into one buffer so a single
// Codec call covers a whole batch.
package transport
