package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestParseCompressionType(t *testing.T) {
	cases := []struct {
		in   string
		want CompressionType
	}{
		{"none", CompressionNone},
		{"", CompressionNone},
		{"zstd", CompressionZstd},
		{"lz4", CompressionLZ4},
	}
	for _, tc := range cases {
		got, ok := ParseCompressionType(tc.in)
		require.True(t, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, ok := ParseCompressionType("gzip")
	require.False(t, ok)
}
