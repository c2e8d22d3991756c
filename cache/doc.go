// Package cache implements the bounded, associative cache of decompressed
// 4^d tiles that sits between the array façade and the compressed payload.
//
// A Cache owns a fixed number of lines, each holding one decoded tile plus a
// tag (block_index+1, or 0 for empty) and a dirty bit. Replacement is
// direct-mapped by block_index modulo the line count, which keeps eviction
// O(1) and the ordering guarantee (no reordering between a set and a later
// get) trivial to reason about.
//
// The cache never touches the bitstream or codec itself; on a miss or
// eviction it calls back into the SlotIO the array façade supplies, keeping
// this package free of any per-dimension or per-scalar-type codec wiring.
package cache
