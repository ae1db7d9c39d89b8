package builder

import (
	"github.com/arloliu/sview-fmindex/block"
	"github.com/arloliu/sview-fmindex/bwm"
	"github.com/arloliu/sview-fmindex/format"
	"github.com/arloliu/sview-fmindex/position"
	"github.com/arloliu/sview-fmindex/section"
)

// layout computes every section's byte offset and length for a given
// configuration, per the blob table in source spec §6. Both BlobSize and
// Build derive the same layout from the same inputs, so the two can never
// disagree about where a section starts.
type layout struct {
	sigma      int
	lookupK    int
	blockK     int
	ratio      uint32
	textLen    uint64
	posWidth   position.Width

	magicOff    int
	encTableOff int
	caHeaderOff int
	saHeaderOff int
	bwmHeaderOff int

	caBodyOff   int
	caBodyLen   int
	saBodyOff   int
	saBodyLen   int
	bwmBodyOff  int
	bwmBodyLen  int

	total int
}

func computeLayout(sigma, lookupK int, ratio uint32, textLen uint64) layout {
	posWidth := position.WidthFor(textLen)
	posSize := posWidth.Bytes()
	blockK := block.KForSigma(sigma)

	l := layout{
		sigma:    sigma,
		lookupK:  lookupK,
		blockK:   blockK,
		ratio:    ratio,
		textLen:  textLen,
		posWidth: posWidth,
	}

	off := 0
	l.magicOff = off
	off = section.AlignUp(off + format.MagicLen)

	l.encTableOff = off
	off = section.AlignUp(off + section.EncodingTableSize)

	l.caHeaderOff = off
	off = section.AlignUp(off + section.CountArrayHeaderSize)

	l.saHeaderOff = off
	off = section.AlignUp(off + section.SuffixArrayHeaderSize)

	l.bwmHeaderOff = off
	off = section.AlignUp(off + section.BwmHeaderSize)

	countArrayLen := sigma + 2
	kmerTableLen := ipow(countArrayLen, lookupK)
	// Each of the three sub-regions is itself aligned, matching source
	// spec §6's per-field "then pad" wording, rather than summing the
	// three raw sizes and aligning once.
	caBodyLen := section.AlignUp(countArrayLen * posSize)
	caBodyLen += section.AlignUp(lookupK * 8)
	caBodyLen += section.AlignUp(kmerTableLen * posSize)

	l.caBodyOff = off
	l.caBodyLen = caBodyLen
	off = section.AlignUp(off + caBodyLen)

	saEntries := int((textLen + 1 + uint64(ratio) - 1) / uint64(ratio))
	saBodyLen := section.AlignUp(saEntries * posSize)
	l.saBodyOff = off
	l.saBodyLen = saBodyLen
	off = section.AlignUp(off + saBodyLen)

	numBlocks := bwm.NumBlocks(textLen)
	rankCheckpointsLen := numBlocks * sigma
	bwmBodyLen := section.AlignUp(1 * posSize)
	bwmBodyLen += section.AlignUp(rankCheckpointsLen * posSize)
	bwmBodyLen += section.AlignUp(numBlocks * block.SizeOf(blockK))
	l.bwmBodyOff = off
	l.bwmBodyLen = bwmBodyLen
	off = section.AlignUp(off + bwmBodyLen)

	l.total = off

	return l
}

func ipow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}

	return r
}
