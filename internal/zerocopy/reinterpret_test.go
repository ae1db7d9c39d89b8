package zerocopy

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceReinterpretsUint32(t *testing.T) {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[0:4], 1)
	binary.LittleEndian.PutUint32(b[4:8], 2)
	binary.LittleEndian.PutUint32(b[8:12], 3)

	got := Slice[uint32](b)
	require.Equal(t, []uint32{1, 2, 3}, got)
}

func TestSliceTruncatesPartialTrailingElement(t *testing.T) {
	b := make([]byte, 10) // 2 full uint32s plus 2 trailing bytes
	binary.LittleEndian.PutUint32(b[0:4], 7)
	binary.LittleEndian.PutUint32(b[4:8], 8)

	got := Slice[uint32](b)
	require.Len(t, got, 2)
	require.Equal(t, []uint32{7, 8}, got)
}

func TestSliceReturnsNilWhenTooSmall(t *testing.T) {
	require.Nil(t, Slice[uint64](make([]byte, 4)))
	require.Nil(t, Slice[uint64](nil))
}

func TestSliceSharesBackingArray(t *testing.T) {
	b := make([]byte, 8)
	got := Slice[uint64](b)
	require.Len(t, got, 1)

	got[0] = 0xAABBCCDDEEFF0011
	require.Equal(t, uint64(0xAABBCCDDEEFF0011), binary.LittleEndian.Uint64(b))
}

func TestOneReinterpretsValue(t *testing.T) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, 42)

	got := One[uint64](b)
	require.NotNil(t, got)
	require.Equal(t, uint64(42), *got)
}

func TestOneReturnsNilWhenTooSmall(t *testing.T) {
	require.Nil(t, One[uint64](make([]byte, 7)))
}
