package bwm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sview-fmindex/block"
)

func TestNumBlocks(t *testing.T) {
	require.Equal(t, 1, NumBlocks(0))
	require.Equal(t, 1, NumBlocks(63))
	require.Equal(t, 2, NumBlocks(64))
	require.Equal(t, 2, NumBlocks(127))
}

func TestRankAgainstBruteForce(t *testing.T) {
	sigma, k := 3, 2
	// "symbol-plus-one" stream, sentinel 0 at index 2.
	bwt := []byte{1, 2, 0, 3, 2, 1}
	textLen := uint64(len(bwt) - 1)

	numBlocks := NumBlocks(textLen)
	dest := make([]byte, numBlocks*block.SizeOf(k))
	checkpoints, err := BuildBlocks(k, sigma, bwt, textLen, dest)
	require.NoError(t, err)
	require.Len(t, checkpoints, numBlocks*sigma)

	// Single block here (textLen=5 < BlockLen=64): the checkpoint row for
	// block 0 must be all zero (nothing precedes the first block).
	for _, c := range checkpoints[:sigma] {
		require.Zero(t, c)
	}

	blocks, err := newBlockArray(k, dest)
	require.NoError(t, err)

	for s := uint8(1); s <= uint8(sigma); s++ {
		var want uint64
		for i, v := range bwt {
			if v == s {
				want++
			}
			got := blocks.remainCountOf(0, i+1, s)
			require.Equal(t, want, got, "symbol %d prefix %d", s, i+1)
		}
	}
}

func TestSymIdxOfMatchesInput(t *testing.T) {
	sigma, k := 3, 2
	bwt := []byte{1, 2, 0, 3, 2, 1}
	textLen := uint64(len(bwt) - 1)

	numBlocks := NumBlocks(textLen)
	dest := make([]byte, numBlocks*block.SizeOf(k))
	_, err := BuildBlocks(k, sigma, bwt, textLen, dest)
	require.NoError(t, err)

	blocks, err := newBlockArray(k, dest)
	require.NoError(t, err)

	for i, want := range bwt {
		require.Equal(t, want, blocks.symIdxOf(0, i))
	}
}
