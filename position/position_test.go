package position

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidthForBoundary(t *testing.T) {
	require.Equal(t, Width32, WidthFor(0))
	require.Equal(t, Width32, WidthFor(math.MaxUint32-1))
	require.Equal(t, Width64, WidthFor(math.MaxUint32))
	require.Equal(t, Width64, WidthFor(math.MaxUint32+1))
}

func TestWidthBytes(t *testing.T) {
	require.Equal(t, 4, Width32.Bytes())
	require.Equal(t, 8, Width64.Bytes())
}

func TestWidthString(t *testing.T) {
	require.Equal(t, "32-bit", Width32.String())
	require.Equal(t, "64-bit", Width64.String())
}
