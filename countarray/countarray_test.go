package countarray

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sview-fmindex/textenc"
)

func TestBuildCountArrayIsCumulative(t *testing.T) {
	enc := textenc.NewTable([][]byte{[]byte("Aa"), []byte("Cc"), []byte("Gg"), []byte("Tt")})
	text := []byte("ACGTACGTAA")

	result, err := Build(append([]byte(nil), text...), enc, 1)
	require.NoError(t, err)

	// Brute-force count of each stored value (symbol index + 1) over the
	// original text, prefix-summed the same way Build does.
	counts := make([]uint64, enc.Sigma()+2)
	for _, b := range text {
		counts[enc.Encode(b)+1]++
	}
	var running uint64
	for i := range counts {
		running += counts[i]
		counts[i] = running
	}

	require.Equal(t, counts, result.CountArray)
}

func TestBuildRewritesTextInPlace(t *testing.T) {
	enc := textenc.NewTable([][]byte{[]byte("Aa"), []byte("Cc")})
	text := []byte("ACAC")

	_, err := Build(text, enc, 1)
	require.NoError(t, err)

	// Every byte is now its stored value, symbol index + 1.
	require.Equal(t, []byte{1, 2, 1, 2}, text)
}

func TestBuildKmerTableSumsToTextLength(t *testing.T) {
	enc := textenc.NewTable([][]byte{[]byte("Aa"), []byte("Cc"), []byte("Gg")})
	text := []byte("ACGACGACG")

	result, err := Build(append([]byte(nil), text...), enc, 2)
	require.NoError(t, err)

	// K is a prefix sum of per-k-mer occurrence counts, so its final
	// entry equals the number of k-mers observed, which equals len(text)
	// here since the rolling index is maintained for every position.
	require.Equal(t, uint64(len(text)), result.KmerCountTable[len(result.KmerCountTable)-1])
}

func TestBuildMultiplierWeightsMostRecentSymbolHighest(t *testing.T) {
	enc := textenc.NewTable([][]byte{[]byte("Aa"), []byte("Cc")})
	text := []byte("AC")

	result, err := Build(append([]byte(nil), text...), enc, 2)
	require.NoError(t, err)

	// base = Sigma+2 = 4; multiplier[0] weights the most-recently-seen
	// symbol (highest power), multiplier[k-1] the least recent.
	require.Equal(t, uint64(4), result.KmerMultiplier[0])
	require.Equal(t, uint64(1), result.KmerMultiplier[1])
}
