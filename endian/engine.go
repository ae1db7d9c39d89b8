// Package endian provides the byte-order engine used to read and write every
// fixed-width integer in an FM-index blob.
//
// The blob format is little-endian only (unlike a general-purpose columnar
// format that might support either byte order per blob): every multi-byte
// field in a MagicHeader, CountArrayHeader, SuffixArrayHeader or BwmHeader is
// serialized with binary.LittleEndian, and the zero-copy views (block.Block1
// through block.Block7, Position slices) rely on the host also being
// little-endian when they reinterpret bytes in place instead of copying.
//
// # Basic usage
//
//	engine := endian.LittleEndian()
//	engine.PutUint32(buf[0:4], value)
//
// # Host byte order
//
// HostIsLittleEndian reports whether the running process is itself
// little-endian. The loaders in this module do not consult it: they always
// reinterpret body sections in place, which is only byte-correct on a
// little-endian host (amd64, arm64, …). There is no copy-and-swap path for
// big-endian hosts.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface, letting header Parse/Bytes methods stay byte-order
// agnostic even though this format always selects the little-endian
// implementation in practice.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the engine used for every field in the blob format.
func LittleEndian() Engine {
	return binary.LittleEndian
}

// HostIsLittleEndian reports whether the current process's native byte order
// is little-endian, which is what makes reinterpreting a blob's body bytes
// directly as []Position or []block.BlockN slices safe and correct.
func HostIsLittleEndian() bool {
	var probe uint16 = 0x0001
	b := (*[2]byte)(unsafe.Pointer(&probe))

	return b[0] == 0x01
}
