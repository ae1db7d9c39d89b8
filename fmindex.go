// Package fmindex is the public entry point of this module: FmIndex from
// source spec §4.7, the loaded, queryable counterpart to builder.Builder.
//
// A loaded FmIndex is an immutable value composed of read-only borrows
// into its blob; Count and Locate are safe to call concurrently from
// multiple goroutines against the same instance (source spec §5).
package fmindex

import (
	"fmt"

	"github.com/arloliu/sview-fmindex/block"
	"github.com/arloliu/sview-fmindex/bwm"
	"github.com/arloliu/sview-fmindex/countarray"
	"github.com/arloliu/sview-fmindex/digest"
	"github.com/arloliu/sview-fmindex/errs"
	"github.com/arloliu/sview-fmindex/format"
	"github.com/arloliu/sview-fmindex/position"
	"github.com/arloliu/sview-fmindex/section"
	"github.com/arloliu/sview-fmindex/suffixarray"
	"github.com/arloliu/sview-fmindex/textenc"
)

// FmIndex is the read-only, queryable FM-index. Obtain one with Load.
type FmIndex interface {
	// Count returns the number of occurrences of pattern in the indexed
	// text.
	Count(pattern []byte) uint64
	// Locate returns every starting offset at which pattern occurs,
	// unordered.
	Locate(pattern []byte) []uint64
	// LocateToBuffer appends every starting offset to buf and returns
	// the extended slice, reusing buf's backing array when it has
	// capacity.
	LocateToBuffer(pattern []byte, buf []uint64) []uint64
	// CountEncoded is the pre-encoded-indices variant of Count: pattern
	// is already a slice of symbol indices, not raw bytes.
	CountEncoded(pattern []uint8) uint64
	// LocateEncoded is the pre-encoded-indices variant of Locate.
	LocateEncoded(pattern []uint8) []uint64
	// CountFromIter is the reverse-iterator variant of Count: next yields
	// pattern bytes back-to-front, one per call, returning ok == false
	// once exhausted. Count, Locate and LocateToBuffer are thin wrappers
	// over this and LocateFromIterToBuffer; CountEncoded and LocateEncoded
	// share the same pull-based core with a pass-through encoder.
	CountFromIter(next ByteSource) uint64
	// LocateFromIter is the reverse-iterator variant of Locate.
	LocateFromIter(next ByteSource) []uint64
	// LocateFromIterToBuffer is the reverse-iterator variant of
	// LocateToBuffer.
	LocateFromIterToBuffer(next ByteSource, buf []uint64) []uint64
	// TextLen returns the length of the original indexed text.
	TextLen() uint64
	// Sigma returns the alphabet size Σ this index was built with.
	Sigma() int
	// SourceBytes returns the blob this index was loaded from.
	SourceBytes() []byte
	// DebugString returns a human-readable dump of the index's header
	// configuration, for diagnostics rather than machine parsing.
	DebugString() string
}

// Load reads and validates every header in blob, then binds zero-copy
// views over its body sections. blob's base address must be aligned to
// format.Align; callers that mmap a file typically get this for free.
func Load(blob []byte) (FmIndex, error) {
	if err := section.ValidateMagic(blob); err != nil {
		return nil, err
	}

	off := section.AlignUp(format.MagicLen)

	if len(blob) < off+section.EncodingTableSize {
		return nil, fmt.Errorf("%w: encoding table truncated", errs.ErrMismatchedBlobSize)
	}
	var rawTable [section.EncodingTableSize]byte
	copy(rawTable[:], blob[off:off+section.EncodingTableSize])
	off = section.AlignUp(off + section.EncodingTableSize)

	if len(blob) < off+section.CountArrayHeaderSize {
		return nil, fmt.Errorf("%w: count array header truncated", errs.ErrMismatchedBlobSize)
	}
	var caHeader section.CountArrayHeader
	if err := caHeader.Parse(blob[off : off+section.CountArrayHeaderSize]); err != nil {
		return nil, err
	}
	off = section.AlignUp(off + section.CountArrayHeaderSize)

	if len(blob) < off+section.SuffixArrayHeaderSize {
		return nil, fmt.Errorf("%w: suffix array header truncated", errs.ErrMismatchedBlobSize)
	}
	var saHeader section.SuffixArrayHeader
	if err := saHeader.Parse(blob[off : off+section.SuffixArrayHeaderSize]); err != nil {
		return nil, err
	}
	off = section.AlignUp(off + section.SuffixArrayHeaderSize)

	if len(blob) < off+section.BwmHeaderSize {
		return nil, fmt.Errorf("%w: bwm header truncated", errs.ErrMismatchedBlobSize)
	}
	var bwmHeader section.BwmHeader
	if err := bwmHeader.Parse(blob[off : off+section.BwmHeaderSize]); err != nil {
		return nil, err
	}
	off = section.AlignUp(off + section.BwmHeaderSize)

	posWidth := position.WidthFor(saHeader.TextLen)
	posSize := posWidth.Bytes()

	caBodyLen := section.AlignUp(int(caHeader.CountArrayLen)*posSize) +
		section.AlignUp(int(caHeader.KmerMultiplierLen)*8) +
		section.AlignUp(int(caHeader.KmerCountTableLen)*posSize)
	if len(blob) < off+caBodyLen {
		return nil, fmt.Errorf("%w: count array body truncated", errs.ErrMismatchedBlobSize)
	}
	caBody := blob[off : off+caBodyLen]
	off = section.AlignUp(off + caBodyLen)

	saEntries := int((saHeader.TextLen + 1 + uint64(saHeader.SamplingRatio) - 1) / uint64(saHeader.SamplingRatio))
	saBodyLen := section.AlignUp(saEntries * posSize)
	if len(blob) < off+saBodyLen {
		return nil, fmt.Errorf("%w: suffix array body truncated", errs.ErrMismatchedBlobSize)
	}
	saBody := blob[off : off+saBodyLen]
	off = section.AlignUp(off + saBodyLen)

	blockK := block.KForSigma(int(bwmHeader.SymbolCount))
	bwmBodyLen := section.AlignUp(posSize) +
		section.AlignUp(int(bwmHeader.RankCheckpointsLen)*posSize) +
		section.AlignUp(int(bwmHeader.BlocksLen)*block.SizeOf(blockK))
	if len(blob) < off+bwmBodyLen {
		return nil, fmt.Errorf("%w: bwm body truncated", errs.ErrMismatchedBlobSize)
	}
	bwmBody := blob[off : off+bwmBodyLen]
	off = section.AlignUp(off + bwmBodyLen)

	if off != len(blob) {
		return nil, fmt.Errorf("%w: expected %d, got %d", errs.ErrMismatchedBlobSize, off, len(blob))
	}

	encoder := textenc.NewTableFromBytes(rawTable, int(caHeader.SymbolCount))

	if posWidth == position.Width32 {
		return loadTyped[uint32](blob, caHeader, saHeader, bwmHeader, blockK, caBody, saBody, bwmBody, encoder)
	}

	return loadTyped[uint64](blob, caHeader, saHeader, bwmHeader, blockK, caBody, saBody, bwmBody, encoder)
}

func loadTyped[P position.Position](
	blob []byte,
	caHeader section.CountArrayHeader,
	saHeader section.SuffixArrayHeader,
	bwmHeader section.BwmHeader,
	blockK int,
	caBody, saBody, bwmBody []byte,
	encoder textenc.Encoder,
) (FmIndex, error) {
	ca, err := countarray.Load[P](caHeader, caBody)
	if err != nil {
		return nil, err
	}
	sa, err := suffixarray.Load[P](saHeader, saBody)
	if err != nil {
		return nil, err
	}
	bw, err := bwm.Load[P](bwmHeader, blockK, saHeader.TextLen, bwmBody)
	if err != nil {
		return nil, err
	}

	return &index[P]{
		blob:      blob,
		textLen:   saHeader.TextLen,
		sigma:     int(caHeader.SymbolCount),
		encoder:   encoder,
		countArr:  ca,
		suffixArr: sa,
		bwm:       bw,
	}, nil
}

// index is the generic implementation of FmIndex, parametrised over the
// Position width derived from the blob's text length at Load time.
type index[P position.Position] struct {
	blob      []byte
	textLen   uint64
	sigma     int
	encoder   textenc.Encoder
	countArr  *countarray.View[P]
	suffixArr *suffixarray.View[P]
	bwm       *bwm.View[P]
}

func (idx *index[P]) TextLen() uint64 { return idx.textLen }
func (idx *index[P]) Sigma() int      { return idx.sigma }
func (idx *index[P]) SourceBytes() []byte { return idx.blob }

func (idx *index[P]) DebugString() string {
	return fmt.Sprintf(
		"FmIndex{text_len=%d, sigma=%d, lookup_k=%d, sa_ratio=%d, blob_size=%d, blob_digest=%016x}",
		idx.textLen, idx.sigma, idx.countArr.K(), idx.suffixArr.Ratio(), len(idx.blob), digest.Blob(idx.blob),
	)
}
