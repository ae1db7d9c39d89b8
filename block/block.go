// Package block implements the bit-packed BWT block format from source spec
// §4.1: fixed-size, trivially-copyable records storing k parallel 64-bit
// bit-planes, one plane per bit of the "symbol-plus-one" alphabet used
// inside the BWT (sentinel = 0, real symbol i stored as i+1).
//
// Seven concrete types are provided, Block1 through Block7, for k = 1..7 —
// enough to cover Σ up to 127 (2^7 - 1), including the spec's own Σ=1
// boundary scenario. BLOCK_LEN is fixed at format.BlockLen (64); see
// DESIGN.md for why the vector width is not itself configurable per blob.
//
// Every exported value type here is a plain array of uint64 fields and is
// safe to reinterpret directly from blob bytes (little-endian, 8-byte
// aligned) without copying — that is the entire point of the format.
//
// Bit convention: within a block, logical position j (0 <= j < 64) is
// stored at bit-index 63-j of each plane, so position 0 lives at the most
// significant bit. Vectorize establishes this directly, including for a
// short final block (unused high-j positions simply stay unset, which are
// the low bit-indices — exactly the "zero low bits, data at the MSBs"
// layout that ShiftLastOffset exists to produce by a different
// construction path). Because Vectorize here already produces that layout
// for any chunk length, the builder does not need to invoke
// ShiftLastOffset in the main build pipeline; the method is still
// implemented and tested against the Block contract in source spec §4.1.
package block

// storedValue is the "symbol-plus-one" domain used inside a block: 0 is the
// sentinel, and a real alphabet symbol with index s (0 <= s < Σ) is stored
// as s+1. Every Block method operates in this domain directly; the caller
// (bwm.View) is responsible for the +1/-1 translation to/from the external
// symbol-index domain used by rank/step.
type storedValue = uint8

func bitAt(v uint64, j int) uint64 {
	return (v >> (63 - j)) & 1
}

func setBit(v *uint64, j int) {
	*v |= 1 << (63 - j)
}
