// Package zerocopy provides the unsafe-pointer reinterpretation helpers
// that let a loaded FmIndex borrow directly into blob bytes instead of
// copying them into freshly-allocated slices.
//
// This is the same pattern mebo's section.NumericHeader.Parse uses for a
// single field ("Use unsafe pointer conversion to interpret bytes as
// signed int64"), generalized here to whole slices of fixed-size values
// (Position counts, bit-packed blocks) via unsafe.Slice.
//
// Reinterpretation is only byte-correct when the host's native byte order
// matches the blob's (always little-endian, per source spec §3). Every
// caller in this module assumes a little-endian host, matching the amd64
// and arm64 targets this module ships for; endian.HostIsLittleEndian
// exists for a future big-endian load path (copy-and-swap instead of
// reinterpret) that is not implemented here.
package zerocopy

import "unsafe"

// Slice reinterprets b as a []T of length len(b)/sizeof(T), borrowing b's
// backing array rather than copying it. b must be at least
// len(b)/sizeof(T)*sizeof(T) bytes and aligned to T's alignment
// requirement; every caller in this module only invokes Slice on bytes
// drawn from a blob section padded to format.Align (8), which satisfies
// every concrete T used here (uint32, uint64, and the block.BlockN types,
// all composed solely of uint64 fields).
func Slice[T any](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(b) < size {
		return nil
	}
	n := len(b) / size

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// One reinterprets the first sizeof(T) bytes of b as a *T.
func One[T any](b []byte) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b) < size {
		return nil
	}

	return (*T)(unsafe.Pointer(&b[0]))
}
