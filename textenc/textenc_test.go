package textenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTableLastGroupIsWildcard(t *testing.T) {
	table := NewTable([][]byte{[]byte("Aa"), []byte("Cc"), []byte("Gg")})

	require.Equal(t, 3, table.Sigma())
	require.EqualValues(t, 0, table.Encode('A'))
	require.EqualValues(t, 0, table.Encode('a'))
	require.EqualValues(t, 1, table.Encode('C'))
	require.EqualValues(t, 2, table.Encode('G'))
	// Every byte outside the named groups collapses onto the last
	// group's index, including bytes that look like they should be
	// "their own" symbol.
	require.EqualValues(t, 2, table.Encode('T'))
	require.EqualValues(t, 2, table.Encode('X'))
}

func TestNewTableWithWildcardIsDistinctIndex(t *testing.T) {
	table := NewTableWithWildcard([][]byte{[]byte("Aa"), []byte("Cc"), []byte("Gg")})

	require.Equal(t, 4, table.Sigma())
	require.EqualValues(t, 0, table.Encode('A'))
	require.EqualValues(t, 1, table.Encode('C'))
	require.EqualValues(t, 2, table.Encode('G'))
	// T is unnamed, so it lands on the new synthetic index, not G's.
	require.EqualValues(t, 3, table.Encode('T'))
	require.EqualValues(t, 3, table.Encode('X'))
	require.NotEqual(t, table.Encode('G'), table.Encode('T'))
}

func TestNewTableFromBytesRoundTrip(t *testing.T) {
	original := NewTableWithWildcard([][]byte{[]byte("Aa"), []byte("Cc")})
	raw := original.Table()

	restored := NewTableFromBytes(raw, original.Sigma())
	for b := 0; b < 256; b++ {
		require.Equal(t, original.Encode(byte(b)), restored.Encode(byte(b)))
	}
	require.Equal(t, original.Sigma(), restored.Sigma())
}

func TestPassThroughIsIdentity(t *testing.T) {
	p := NewPassThrough(4)
	require.Equal(t, 4, p.Sigma())
	for b := 0; b < 4; b++ {
		require.EqualValues(t, b, p.Encode(byte(b)))
	}

	table := p.Table()
	for i := 0; i < 256; i++ {
		require.EqualValues(t, byte(i), table[i])
	}
}
