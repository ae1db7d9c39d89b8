package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagicNumberLayout(t *testing.T) {
	require.Equal(t, MagicLen, len(MagicNumber))
	require.Equal(t, [MagicLen]byte{'F', 'I', '0', '0', 0, 0, 0, 0}, MagicNumber)
}

func TestSuffixArrayConfigValidate(t *testing.T) {
	require.NoError(t, Uncompressed().Validate())
	require.NoError(t, Compressed(2).Validate())
	require.NoError(t, Compressed(16).Validate())

	require.Error(t, Compressed(1).Validate())
	require.Error(t, Compressed(0).Validate())
	require.Error(t, SuffixArrayConfig{Kind: SAUncompressed, Ratio: 2}.Validate())
	require.Error(t, SuffixArrayConfig{Kind: SAConfigKind(99)}.Validate())
}

func TestLookupTableConfigValidate(t *testing.T) {
	require.NoError(t, NoLookupTable().Validate())
	require.NoError(t, KmerSize(2).Validate())
	require.NoError(t, MaxMemory(1024).Validate())

	require.Error(t, KmerSize(1).Validate())
	require.Error(t, KmerSize(0).Validate())
	require.Error(t, MaxMemory(0).Validate())
	require.Error(t, LookupTableConfig{Kind: LTConfigKind(99)}.Validate())
}

func TestSAConfigKindString(t *testing.T) {
	require.Equal(t, "Uncompressed", SAUncompressed.String())
	require.Equal(t, "Compressed", SACompressed.String())
	require.Equal(t, "Unknown", SAConfigKind(99).String())
}

func TestLTConfigKindString(t *testing.T) {
	require.Equal(t, "None", LTNone.String())
	require.Equal(t, "KmerSize", LTKmerSize.String())
	require.Equal(t, "MaxMemory", LTMaxMemory.String())
	require.Equal(t, "Unknown", LTConfigKind(99).String())
}
