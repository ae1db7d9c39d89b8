// Package builder implements FmIndexBuilder from source spec §4.6: the
// configuration and single Build call that turns a raw text buffer into a
// byte-exact FM-index blob.
package builder

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/sview-fmindex/block"
	"github.com/arloliu/sview-fmindex/bwm"
	"github.com/arloliu/sview-fmindex/countarray"
	"github.com/arloliu/sview-fmindex/errs"
	"github.com/arloliu/sview-fmindex/format"
	"github.com/arloliu/sview-fmindex/internal/zerocopy"
	"github.com/arloliu/sview-fmindex/position"
	"github.com/arloliu/sview-fmindex/section"
	"github.com/arloliu/sview-fmindex/suffixarray"
	"github.com/arloliu/sview-fmindex/textenc"
)

// Builder accumulates the configuration source spec §4.6 describes, then
// produces a blob on Build.
type Builder struct {
	textLen uint64
	sigma   int
	encoder textenc.Encoder

	saConfig format.SuffixArrayConfig
	ltConfig format.LookupTableConfig
}

// New constructs a Builder for a text of the given length and alphabet
// size, encoding raw bytes via enc. It rejects configurations whose Σ
// exceeds the largest block type's MAX_SYMBOL.
func New(textLen uint64, sigma int, enc textenc.Encoder) (*Builder, error) {
	if sigma < 1 || sigma > block.MaxSigma {
		return nil, fmt.Errorf("%w: max %d, got %d", errs.ErrSymbolCountOver, block.MaxSigma, sigma)
	}

	return &Builder{
		textLen:  textLen,
		sigma:    sigma,
		encoder:  enc,
		saConfig: format.Uncompressed(),
		ltConfig: format.NoLookupTable(),
	}, nil
}

// SetSuffixArrayConfig sets the suffix array sampling configuration.
func (b *Builder) SetSuffixArrayConfig(cfg format.SuffixArrayConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	b.saConfig = cfg

	return nil
}

// SetLookupTableConfig sets the k-mer lookup table sizing configuration.
func (b *Builder) SetLookupTableConfig(cfg format.LookupTableConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	b.ltConfig = cfg

	return nil
}

func (b *Builder) resolvedRatio() uint32 {
	if b.saConfig.Kind == format.SAUncompressed {
		return 1
	}

	return b.saConfig.Ratio
}

func (b *Builder) resolvedLookupK() int {
	switch b.ltConfig.Kind {
	case format.LTKmerSize:
		return int(b.ltConfig.KmerSize)
	case format.LTMaxMemory:
		posSize := position.WidthFor(b.textLen).Bytes()
		base := b.sigma + 2
		k := 1
		for {
			tableBytes := ipow(base, k+1) * posSize
			if uint64(tableBytes) > b.ltConfig.MaxMemory {
				break
			}
			k++
		}

		return k
	default:
		return 1
	}
}

func (b *Builder) layout() layout {
	return computeLayout(b.sigma, b.resolvedLookupK(), b.resolvedRatio(), b.textLen)
}

// BlobSize returns the exact byte size Build requires its output buffer to
// be, computed purely from header-level configuration.
func (b *Builder) BlobSize() int {
	return b.layout().total
}

// Build writes a complete FM-index blob into blobOut, consuming text in
// the process: text is rewritten in place into the "symbol-plus-one"
// stream by the count-array build pass (source spec §4.3), read by the
// suffix array construction, and finally overwritten with the BWT (sentinel
// removed) that the Bwm blocks are vectorized from.
func (b *Builder) Build(text []byte, blobOut []byte) error {
	if uint64(len(text)) != b.textLen {
		return fmt.Errorf("%w: expected %d, got %d", errs.ErrUnmatchedTextLength, b.textLen, len(text))
	}

	if len(blobOut) > 0 {
		addr := uintptr(unsafe.Pointer(&blobOut[0]))
		if addr%uintptr(format.Align) != 0 {
			return fmt.Errorf("%w: required %d, offset %d", errs.ErrNotAlignedBlob, format.Align, addr%uintptr(format.Align))
		}
	}

	l := b.layout()
	if len(blobOut) != l.total {
		return fmt.Errorf("%w: expected %d, got %d", errs.ErrInvalidBlobSize, l.total, len(blobOut))
	}

	copy(blobOut[l.magicOff:], format.MagicNumber[:])

	encTable := b.encoder.Table()
	copy(blobOut[l.encTableOff:l.encTableOff+section.EncodingTableSize], encTable[:])

	caResult, err := countarray.Build(text, b.encoder, l.lookupK)
	if err != nil {
		return err
	}

	saResult, err := suffixarray.Build(text, l.ratio)
	if err != nil {
		return err
	}

	// The Bwm carries the sentinel only as its row index (bwm.View.Rank and
	// Step skip over it), so it is dropped from the vectorized BWT. The
	// remaining len(text) symbols overwrite text in place.
	bwt := append(text[:0], saResult.Bwt[:saResult.SentinelIndex]...)
	bwt = append(bwt, saResult.Bwt[saResult.SentinelIndex+1:]...)

	rankCheckpoints, err := bwm.BuildBlocks(l.blockK, b.sigma, bwt, b.textLen, blobOut[bwmBlocksOffset(l):])
	if err != nil {
		return err
	}

	caHeader := section.CountArrayHeader{
		SymbolCount:       uint32(b.sigma),
		KmerSize:          uint32(l.lookupK),
		CountArrayLen:     uint32(b.sigma + 2),
		KmerMultiplierLen: uint32(l.lookupK),
		KmerCountTableLen: uint64(len(caResult.KmerCountTable)),
	}
	copy(blobOut[l.caHeaderOff:], caHeader.Bytes())

	saHeader := section.SuffixArrayHeader{
		TextLen:       b.textLen,
		SamplingRatio: l.ratio,
	}
	copy(blobOut[l.saHeaderOff:], saHeader.Bytes())

	numBlocks := bwm.NumBlocks(b.textLen)
	bwmHeader := section.BwmHeader{
		SymbolCount:        uint32(b.sigma),
		RankCheckpointsLen: uint64(numBlocks * b.sigma),
		BlocksLen:          uint64(numBlocks),
	}
	copy(blobOut[l.bwmHeaderOff:], bwmHeader.Bytes())

	if l.posWidth == position.Width32 {
		writeCountArrayBody[uint32](blobOut, l, caResult)
		writeSuffixArrayBody[uint32](blobOut, l, saResult)
		writeBwmBody[uint32](blobOut, l, saResult, rankCheckpoints)
	} else {
		writeCountArrayBody[uint64](blobOut, l, caResult)
		writeSuffixArrayBody[uint64](blobOut, l, saResult)
		writeBwmBody[uint64](blobOut, l, saResult, rankCheckpoints)
	}

	return nil
}

func bwmBlocksOffset(l layout) int {
	posSize := l.posWidth.Bytes()
	numBlocks := bwm.NumBlocks(l.textLen)
	off := l.bwmBodyOff
	off += section.AlignUp(1 * posSize)
	off += section.AlignUp(numBlocks * l.sigma * posSize)

	return off
}

func writeCountArrayBody[P position.Position](blobOut []byte, l layout, r countarray.BuildResult) {
	posSize := l.posWidth.Bytes()
	off := l.caBodyOff

	countArrayLen := l.sigma + 2
	dst := zerocopy.Slice[P](blobOut[off : off+countArrayLen*posSize])
	for i, v := range r.CountArray {
		dst[i] = P(v)
	}
	off = section.AlignUp(off + countArrayLen*posSize)

	multBytes := l.lookupK * 8
	multDst := zerocopy.Slice[uint64](blobOut[off : off+multBytes])
	copy(multDst, r.KmerMultiplier)
	off = section.AlignUp(off + multBytes)

	tableBytes := len(r.KmerCountTable) * posSize
	tableDst := zerocopy.Slice[P](blobOut[off : off+tableBytes])
	for i, v := range r.KmerCountTable {
		tableDst[i] = P(v)
	}
}

func writeSuffixArrayBody[P position.Position](blobOut []byte, l layout, r suffixarray.BuildResult) {
	posSize := l.posWidth.Bytes()
	off := l.saBodyOff
	saBytes := len(r.Sampled) * posSize
	dst := zerocopy.Slice[P](blobOut[off : off+saBytes])
	for i, v := range r.Sampled {
		dst[i] = P(v)
	}
}

func writeBwmBody[P position.Position](blobOut []byte, l layout, sa suffixarray.BuildResult, checkpoints []uint64) {
	posSize := l.posWidth.Bytes()
	off := l.bwmBodyOff

	sentinelDst := zerocopy.One[P](blobOut[off : off+posSize])
	*sentinelDst = P(sa.SentinelIndex)
	off = section.AlignUp(off + posSize)

	cpBytes := len(checkpoints) * posSize
	cpDst := zerocopy.Slice[P](blobOut[off : off+cpBytes])
	for i, v := range checkpoints {
		cpDst[i] = P(v)
	}
	// Blocks were already vectorized directly into blobOut by
	// bwm.BuildBlocks before this function ran.
}
