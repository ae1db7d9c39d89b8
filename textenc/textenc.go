// Package textenc implements the EncodingTable abstraction from source spec
// §4.2: a total mapping from raw input bytes to dense symbol indices, plus
// the pass-through variant used when the caller has already encoded both
// the corpus and the query pattern.
package textenc

import "github.com/arloliu/sview-fmindex/section"

// Encoder maps a raw input byte to its symbol index in [0, Sigma). Every
// byte value must map to something; bytes outside the configured alphabet
// collapse to the wildcard index.
type Encoder interface {
	// Encode returns the symbol index for b.
	Encode(b byte) uint8
	// Sigma returns the number of distinct symbol indices this encoder
	// produces (wildcard already folded in, per DESIGN.md's Open
	// Question resolution).
	Sigma() int
	// Table returns the flat 256-byte mapping, suitable for embedding
	// directly into a blob's EncodingTable section.
	Table() [section.EncodingTableSize]byte
}

// Table is a byte-to-symbol mapping built from named symbol groups. It
// implements Encoder.
type Table struct {
	table [section.EncodingTableSize]byte
	sigma int
}

// NewTable builds a Table from symbol groups, where groups[i] lists every
// input byte that maps to symbol index i. Bytes absent from every group
// map to the wildcard index, len(groups)-1 (the caller's last group is
// conventionally declared the wildcard class, per source spec §4.2).
func NewTable(groups [][]byte) *Table {
	t := &Table{sigma: len(groups)}
	wildcard := uint8(len(groups) - 1)
	for i := range t.table {
		t.table[i] = wildcard
	}
	for idx, group := range groups {
		for _, b := range group {
			t.table[b] = uint8(idx)
		}
	}

	return t
}

// NewTableWithWildcard builds a Table from named symbol groups plus a
// synthetic extra wildcard index, the second construction source spec
// §4.2 names: namedGroups[i] lists every input byte mapping to symbol
// index i, and any byte absent from every group maps to the new index
// len(namedGroups), distinct from every named group. Use this instead of
// NewTable when a named group (e.g. "Gg") must NOT also catch unrelated
// bytes the way NewTable's last-group convention would.
func NewTableWithWildcard(namedGroups [][]byte) *Table {
	wildcard := uint8(len(namedGroups))
	t := &Table{sigma: len(namedGroups) + 1}
	for i := range t.table {
		t.table[i] = wildcard
	}
	for idx, group := range namedGroups {
		for _, b := range group {
			t.table[b] = uint8(idx)
		}
	}

	return t
}

// NewTableFromBytes reconstructs a Table from a previously serialized
// 256-byte mapping (as stored in a blob's EncodingTable section).
func NewTableFromBytes(raw [section.EncodingTableSize]byte, sigma int) *Table {
	return &Table{table: raw, sigma: sigma}
}

// Encode implements Encoder.
func (t *Table) Encode(b byte) uint8 { return t.table[b] }

// Sigma implements Encoder.
func (t *Table) Sigma() int { return t.sigma }

// Table implements Encoder.
func (t *Table) Table() [section.EncodingTableSize]byte { return t.table }

// PassThrough is an identity Encoder: byte value b encodes to symbol index
// b directly. It is the encoder source spec's Testable Property 5
// ("encoder equivalence") uses to confirm pre-encoded text and EncodingTable
// produce identical results.
type PassThrough struct {
	sigma int
}

// NewPassThrough builds a PassThrough encoder for an alphabet of the given
// size; callers using it must have already mapped every text and pattern
// byte into [0, sigma).
func NewPassThrough(sigma int) *PassThrough {
	return &PassThrough{sigma: sigma}
}

// Encode implements Encoder.
func (p *PassThrough) Encode(b byte) uint8 { return b }

// Sigma implements Encoder.
func (p *PassThrough) Sigma() int { return p.sigma }

// Table implements Encoder, returning the identity mapping truncated to
// byte range (bytes beyond Sigma are never expected to appear in
// pre-encoded input, but the table itself must still be total).
func (p *PassThrough) Table() [section.EncodingTableSize]byte {
	var t [section.EncodingTableSize]byte
	for i := range t {
		t[i] = byte(i)
	}

	return t
}
