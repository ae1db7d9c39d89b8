package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKForSigma(t *testing.T) {
	require.Equal(t, 1, KForSigma(1))
	require.Equal(t, 2, KForSigma(2))
	require.Equal(t, 2, KForSigma(3))
	require.Equal(t, 3, KForSigma(4))
	require.Equal(t, 7, KForSigma(MaxSigma))
}

func TestSizeOf(t *testing.T) {
	require.Equal(t, 8, SizeOf(1))
	require.Equal(t, 56, SizeOf(7))
}

// TestBlock3VectorizeRoundTrip exercises the concrete Block3 type's full
// contract directly (Vectorize + GetSymIdxOf + GetRemainCountOf), the way
// bwm.BuildBlocks uses a concrete BlockK reinterpreted over blob bytes.
func TestBlock3VectorizeRoundTrip(t *testing.T) {
	var blk Block3 // k=3 covers stored values 0..4 (sigma=4)

	chunk := make([]uint8, 64)
	pattern := []uint8{0, 1, 2, 3, 4, 1, 2, 3}
	for i := range chunk {
		chunk[i] = pattern[i%len(pattern)]
	}

	rankPreCounts := make([]uint64, 4) // sigma=4 real symbols
	blk.Vectorize(chunk, rankPreCounts)

	for j, want := range chunk {
		require.Equal(t, want, blk.GetSymIdxOf(j), "position %d", j)
	}

	// rankPreCounts[s-1] counts every occurrence of stored value s across
	// the whole block; GetRemainCountOf(64, s) must agree.
	for s := uint8(1); s <= 4; s++ {
		require.Equal(t, rankPreCounts[s-1], blk.GetRemainCountOf(64, s), "symbol %d", s)
	}
}

func TestGetRemainCountOfPrefix(t *testing.T) {
	var blk Block2

	chunk := make([]uint8, 64)
	chunk[0] = 2
	chunk[1] = 2
	chunk[2] = 1
	rankPreCounts := make([]uint64, 3)
	blk.Vectorize(chunk, rankPreCounts)

	require.Equal(t, uint64(0), blk.GetRemainCountOf(0, 2))
	require.Equal(t, uint64(1), blk.GetRemainCountOf(1, 2))
	require.Equal(t, uint64(2), blk.GetRemainCountOf(2, 2))
	require.Equal(t, uint64(0), blk.GetRemainCountOf(2, 1))
	require.Equal(t, uint64(1), blk.GetRemainCountOf(3, 1))
}
