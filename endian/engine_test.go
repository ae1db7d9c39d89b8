package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianEngine(t *testing.T) {
	engine := LittleEndian()
	require.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 2)
	engine.PutUint16(buf, 0x0102)
	require.Equal(t, byte(0x02), buf[0])
	require.Equal(t, byte(0x01), buf[1])
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestHostIsLittleEndianMatchesProbe(t *testing.T) {
	var probe uint16 = 0x0001
	b := (*[2]byte)(unsafe.Pointer(&probe))
	want := b[0] == 0x01

	require.Equal(t, want, HostIsLittleEndian())
}

func TestHostIsLittleEndianConsistent(t *testing.T) {
	first := HostIsLittleEndian()
	for range 10 {
		require.Equal(t, first, HostIsLittleEndian())
	}
}
