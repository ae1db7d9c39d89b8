// Package bwm implements BwmHeader, the bit-packed block array, and
// BwmView from source spec §4.4: the rank and reverse-step operations that
// drive backward search and locate.
package bwm

import (
	"fmt"

	"github.com/arloliu/sview-fmindex/block"
	"github.com/arloliu/sview-fmindex/errs"
	"github.com/arloliu/sview-fmindex/format"
	"github.com/arloliu/sview-fmindex/internal/zerocopy"
	"github.com/arloliu/sview-fmindex/position"
	"github.com/arloliu/sview-fmindex/section"
)

// NumBlocks returns the number of blocks a BWT of the given original text
// length is chunked into, per source spec §6's BwmHeader.BlocksLen formula.
func NumBlocks(textLen uint64) int {
	return int(textLen/uint64(format.BlockLen)) + 1
}

// BuildBlocks vectorizes bwt (the BWT in the stored-value domain with the
// sentinel removed, textLen values; View records the sentinel only as its
// row index) into dest, a byte slice sized for NumBlocks(textLen) blocks
// with k bit-planes each, and returns the rank checkpoint table R[b][s]
// (row-major, one row of sigma entries per block, holding the count of
// each symbol strictly before that block starts).
func BuildBlocks(k, sigma int, bwt []byte, textLen uint64, dest []byte) ([]uint64, error) {
	blockLen := format.BlockLen
	numBlocks := NumBlocks(textLen)
	size := block.SizeOf(k)
	if len(dest) < numBlocks*size {
		return nil, fmt.Errorf("bwm: block destination too small: need %d bytes, got %d", numBlocks*size, len(dest))
	}

	checkpoints := make([]uint64, numBlocks*sigma)
	running := make([]uint64, sigma)
	counts := make([]uint64, sigma)

	for b := 0; b < numBlocks; b++ {
		start := b * blockLen
		end := start + blockLen
		if end > len(bwt) {
			end = len(bwt)
		}
		chunk := bwt[start:end]

		copy(checkpoints[b*sigma:(b+1)*sigma], running)
		for i := range counts {
			counts[i] = 0
		}

		blockBytes := dest[b*size : (b+1)*size]
		if err := vectorizeOneBlock(k, chunk, counts, blockBytes); err != nil {
			return nil, err
		}

		for s := 0; s < sigma; s++ {
			running[s] += counts[s]
		}
	}

	return checkpoints, nil
}

func vectorizeOneBlock(k int, chunk []byte, counts []uint64, dest []byte) error {
	switch k {
	case 1:
		zerocopy.One[block.Block1](dest).Vectorize(chunk, counts)
	case 2:
		zerocopy.One[block.Block2](dest).Vectorize(chunk, counts)
	case 3:
		zerocopy.One[block.Block3](dest).Vectorize(chunk, counts)
	case 4:
		zerocopy.One[block.Block4](dest).Vectorize(chunk, counts)
	case 5:
		zerocopy.One[block.Block5](dest).Vectorize(chunk, counts)
	case 6:
		zerocopy.One[block.Block6](dest).Vectorize(chunk, counts)
	case 7:
		zerocopy.One[block.Block7](dest).Vectorize(chunk, counts)
	default:
		return fmt.Errorf("bwm: unsupported bit-plane count k=%d (must be 1..%d)", k, block.MaxK)
	}

	return nil
}

// blockArray abstracts over a zero-copy-reinterpreted []block.BlockK of
// whichever concrete width the loaded blob's Sigma selected, so View[P]
// does not need a type parameter for block shape on top of Position.
type blockArray interface {
	remainCountOf(idx, rem int, s uint8) uint64
	symIdxOf(idx, rem int) uint8
}

type blockArray1 []block.Block1
type blockArray2 []block.Block2
type blockArray3 []block.Block3
type blockArray4 []block.Block4
type blockArray5 []block.Block5
type blockArray6 []block.Block6
type blockArray7 []block.Block7

func (a blockArray1) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray1) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }
func (a blockArray2) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray2) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }
func (a blockArray3) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray3) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }
func (a blockArray4) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray4) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }
func (a blockArray5) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray5) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }
func (a blockArray6) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray6) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }
func (a blockArray7) remainCountOf(idx, rem int, s uint8) uint64 { return a[idx].GetRemainCountOf(rem, s) }
func (a blockArray7) symIdxOf(idx, rem int) uint8                { return a[idx].GetSymIdxOf(rem) }

func newBlockArray(k int, body []byte) (blockArray, error) {
	switch k {
	case 1:
		return blockArray1(zerocopy.Slice[block.Block1](body)), nil
	case 2:
		return blockArray2(zerocopy.Slice[block.Block2](body)), nil
	case 3:
		return blockArray3(zerocopy.Slice[block.Block3](body)), nil
	case 4:
		return blockArray4(zerocopy.Slice[block.Block4](body)), nil
	case 5:
		return blockArray5(zerocopy.Slice[block.Block5](body)), nil
	case 6:
		return blockArray6(zerocopy.Slice[block.Block6](body)), nil
	case 7:
		return blockArray7(zerocopy.Slice[block.Block7](body)), nil
	default:
		return nil, fmt.Errorf("bwm: unsupported bit-plane count k=%d (must be 1..%d)", k, block.MaxK)
	}
}

// View is the read-only, zero-copy binding over a loaded Bwm body: the
// sentinel row index, the rank checkpoint table, and the bit-packed blocks.
type View[P position.Position] struct {
	header          section.BwmHeader
	k               int
	bwtLen          uint64
	sentinelIndex   P
	rankCheckpoints []P
	blocks          blockArray
}

// Load binds a View over body: sentinel index (1 Position), then rank
// checkpoints (rank_checkpoints_len Positions), then the block array, each
// padded to format.Align as laid out in source spec §6.
func Load[P position.Position](header section.BwmHeader, k int, textLen uint64, body []byte) (*View[P], error) {
	v := &View[P]{header: header, k: k, bwtLen: textLen + 1}

	var zeroP P
	posSize := sizeOfPosition(zeroP)

	sentinelBytes := posSize
	if len(body) < sentinelBytes {
		return nil, fmt.Errorf("%w: bwm sentinel index truncated", errs.ErrMismatchedBlobSize)
	}
	v.sentinelIndex = *zerocopy.One[P](body[:sentinelBytes])
	rest := body[section.AlignUp(sentinelBytes):]

	checkpointBytes := int(header.RankCheckpointsLen) * posSize
	if len(rest) < checkpointBytes {
		return nil, fmt.Errorf("%w: bwm rank checkpoints truncated", errs.ErrMismatchedBlobSize)
	}
	v.rankCheckpoints = zerocopy.Slice[P](rest[:checkpointBytes])
	rest = rest[section.AlignUp(checkpointBytes):]

	blockBytes := int(header.BlocksLen) * block.SizeOf(k)
	if len(rest) < blockBytes {
		return nil, fmt.Errorf("%w: bwm blocks truncated", errs.ErrMismatchedBlobSize)
	}
	blocks, err := newBlockArray(k, rest[:blockBytes])
	if err != nil {
		return nil, err
	}
	v.blocks = blocks

	return v, nil
}

func sizeOfPosition[P position.Position](p P) int {
	var x P
	switch any(x).(type) {
	case uint32:
		return 4
	default:
		return 8
	}
}

// SentinelIndex returns p, the BWM row holding the sentinel.
func (v *View[P]) SentinelIndex() P { return v.sentinelIndex }

// Sigma returns the symbol count this view was built for.
func (v *View[P]) Sigma() int { return int(v.header.SymbolCount) }

// Rank implements rank(pos, s) from source spec §4.4 for stored value s
// (0 = sentinel, i = real symbol i-1). pos is a row number that leaves out
// the sentinel's own row, matching the count array and k-mer table; the
// result is the number of occurrences of s in the full BWT's first pos+1
// rows, counted over the sentinel-free stored blocks by stepping over p.
func (v *View[P]) Rank(pos P, s uint8) uint64 {
	p := uint64(v.sentinelIndex)
	up := uint64(pos)
	if up < p {
		up++
	}

	blockLen := uint64(format.BlockLen)
	q := up / blockLen
	r := int(up % blockLen)

	// Sentinel is never a queried symbol for Rank (callers only rank real
	// symbols 1..Sigma; Step handles the sentinel row directly), so s-1
	// always indexes a valid checkpoint column here.
	sigma := v.Sigma()
	base := v.rankCheckpoints[int(q)*sigma+int(s)-1]
	if r == 0 {
		return uint64(base)
	}

	return uint64(base) + v.blocks.remainCountOf(int(q), r, s)
}

// Step implements the reverse LF-mapping step from source spec §4.4,
// returning the predecessor row and the symbol consumed to reach it, or ok
// == false when pos has no predecessor (pos == p - 1, the string has
// wrapped all the way around).
func (v *View[P]) Step(pos P, countAt func(s int) P) (prevPos P, prevSym uint8, ok bool) {
	p := uint64(v.sentinelIndex)
	noPredecessor := uint64(pos) == p-1
	if p == 0 {
		// p - 1 wraps to the last BWM row, bwtLen - 1.
		noPredecessor = uint64(pos) == v.bwtLen-1
	}
	if noPredecessor {
		var zero P
		return zero, 0, false
	}

	up := uint64(pos)
	if up < p {
		up++
	}
	blockLen := uint64(format.BlockLen)
	q := up / blockLen
	r := int(up % blockLen)

	s := v.blocks.symIdxOf(int(q), r)

	sigma := v.Sigma()
	var checkpointBase uint64
	if s != 0 {
		checkpointBase = uint64(v.rankCheckpoints[int(q)*sigma+int(s)-1])
	}
	var rankVal uint64
	if r == 0 {
		rankVal = checkpointBase
	} else {
		rankVal = checkpointBase + v.blocks.remainCountOf(int(q), r, s)
	}

	c := countAt(int(s))
	prevPos = c + P(rankVal)

	return prevPos, s, true
}
