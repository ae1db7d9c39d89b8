// Package countarray implements CountArrayHeader and CountArrayView from
// source spec §4.3: the cumulative per-symbol count array C and the dense
// k-mer lookup table K that resolves the first k backward-search steps in
// a single indexed read.
package countarray

import (
	"fmt"

	"github.com/arloliu/sview-fmindex/errs"
	"github.com/arloliu/sview-fmindex/internal/zerocopy"
	"github.com/arloliu/sview-fmindex/position"
	"github.com/arloliu/sview-fmindex/section"
	"github.com/arloliu/sview-fmindex/textenc"
)

// BuildResult holds the arrays produced by Build, ready to be serialized
// into a blob's CountArray body by the builder package.
type BuildResult struct {
	Sigma             int
	K                 int
	CountArray        []uint64 // length Sigma+2
	KmerMultiplier    []uint64 // length K
	KmerCountTable    []uint64 // length (Sigma+2)^K
}

// ipow returns base^exp for small non-negative exp, computed by repeated
// multiplication (exp never exceeds the k-mer size, a handful at most).
func ipow(base uint64, exp int) uint64 {
	r := uint64(1)
	for i := 0; i < exp; i++ {
		r *= base
	}

	return r
}

// Build performs the single reverse pass of source spec §4.3: it rewrites
// text in place with "symbol-plus-one" values (sentinel-ready for BWT/SA
// construction) and accumulates the cumulative count array C and the dense
// k-mer table K.
func Build(text []byte, enc textenc.Encoder, k int) (BuildResult, error) {
	sigma := enc.Sigma()
	base := uint64(sigma + 2)

	c := make([]uint64, sigma+2)
	tableLen := ipow(base, k)
	kmer := make([]uint64, tableLen)

	multiplier := make([]uint64, k)
	for j := 0; j < k; j++ {
		multiplier[j] = ipow(base, k-1-j)
	}

	var t uint64
	for i := len(text) - 1; i >= 0; i-- {
		sym := enc.Encode(text[i])
		stored := uint64(sym) + 1
		text[i] = byte(stored)
		c[stored]++
		t = (t / base) + stored*multiplier[0]
		kmer[t]++
	}

	// Prefix-sum both arrays in place (source spec §4.3 step 4).
	var running uint64
	for i := range c {
		running += c[i]
		c[i] = running
	}
	running = 0
	for i := range kmer {
		running += kmer[i]
		kmer[i] = running
	}

	return BuildResult{
		Sigma:          sigma,
		K:              k,
		CountArray:     c,
		KmerMultiplier: multiplier,
		KmerCountTable: kmer,
	}, nil
}

// View is the read-only, zero-copy binding over a loaded CountArray body.
type View[P position.Position] struct {
	header         section.CountArrayHeader
	countArray     []P
	kmerMultiplier []uint64
	kmerCountTable []P
}

// Load binds a View over body, which must be exactly the byte span the
// header describes (countArray, then kmerMultiplier, then kmerCountTable,
// each padded to format.Align as laid out in source spec §6).
func Load[P position.Position](header section.CountArrayHeader, body []byte) (*View[P], error) {
	v := &View[P]{header: header}

	var p P
	posSize := sizeOfPosition(p)

	countBytes := int(header.CountArrayLen) * posSize
	if len(body) < countBytes {
		return nil, fmt.Errorf("%w: count array body truncated", errs.ErrMismatchedBlobSize)
	}
	v.countArray = zerocopy.Slice[P](body[:countBytes])
	rest := body[section.AlignUp(countBytes):]

	multBytes := int(header.KmerMultiplierLen) * 8
	if len(rest) < multBytes {
		return nil, fmt.Errorf("%w: kmer multiplier body truncated", errs.ErrMismatchedBlobSize)
	}
	v.kmerMultiplier = zerocopy.Slice[uint64](rest[:multBytes])
	rest = rest[section.AlignUp(multBytes):]

	tableBytes := int(header.KmerCountTableLen) * posSize
	if len(rest) < tableBytes {
		return nil, fmt.Errorf("%w: kmer count table body truncated", errs.ErrMismatchedBlobSize)
	}
	v.kmerCountTable = zerocopy.Slice[P](rest[:tableBytes])

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

// Sigma returns the symbol count this view was built for.
func (v *View[P]) Sigma() int { return int(v.header.SymbolCount) }

// K returns the k-mer lookup table's digit width.
func (v *View[P]) K() int { return int(v.header.KmerSize) }

// CountAt returns C[s], the number of text symbols whose symbol index is
// strictly less than s (equivalently, whose stored value is at most s).
func (v *View[P]) CountAt(s int) P {
	if s < 0 {
		var zero P
		return zero
	}

	return v.countArray[s]
}

// InitialRange implements the §4.3 query algorithm, returning the initial
// (lo, hi) range and the number of pattern bytes still to be consumed via
// backward LF steps.
func (v *View[P]) InitialRange(pattern []byte, enc textenc.Encoder) (lo, hi P, cursor int) {
	k := v.K()
	base := uint64(v.Sigma() + 2)
	n := len(pattern)

	if n >= k {
		var t uint64
		for i := n - k; i < n; i++ {
			s := enc.Encode(pattern[i])
			t = t*base + uint64(s) + 1
		}
		lo = v.kAt(int64(t) - 1)
		hi = v.kAt(int64(t))

		return lo, hi, n - k
	}

	var t uint64
	for i := 0; i < n; i++ {
		s := enc.Encode(pattern[i])
		t = t*base + uint64(s) + 1
	}
	width := ipow(base, k-n)
	t *= width

	lo = v.kAt(int64(t) - 1)
	hi = v.kAt(int64(t) + int64(width) - 1)

	return lo, hi, 0
}

// InitialRangeFromIter is the reverse-iterator variant of InitialRange
// (source spec §4.7): next yields pattern bytes back-to-front, one per
// call, returning ok == false once the pattern is exhausted. It pulls at
// most k bytes to seed the k-mer lookup, mirroring the behavior of
// InitialRange(pattern, enc) for a pattern whose last min(k, n) bytes are
// exactly what next yields first.
func (v *View[P]) InitialRangeFromIter(next func() (byte, bool), enc textenc.Encoder) (lo, hi P) {
	k := v.K()
	base := uint64(v.Sigma() + 2)

	// buf[0] is the pattern's last byte, buf[1] the second-to-last, and so
	// on: the reverse order next yields them in.
	buf := make([]byte, 0, k)
	for len(buf) < k {
		b, ok := next()
		if !ok {
			break
		}
		buf = append(buf, b)
	}
	m := len(buf)

	// InitialRange's forward loop processes the k-mer's bytes left to
	// right; buf holds them right to left, so walk it backwards to match.
	var t uint64
	for i := m - 1; i >= 0; i-- {
		s := enc.Encode(buf[i])
		t = t*base + uint64(s) + 1
	}

	if m == k {
		lo = v.kAt(int64(t) - 1)
		hi = v.kAt(int64(t))

		return lo, hi
	}

	width := ipow(base, k-m)
	t *= width

	lo = v.kAt(int64(t) - 1)
	hi = v.kAt(int64(t) + int64(width) - 1)

	return lo, hi
}

// kAt returns K[idx], treating K[-1] as 0 per source spec §4.3's edge case.
func (v *View[P]) kAt(idx int64) P {
	if idx < 0 {
		var zero P
		return zero
	}

	return v.kmerCountTable[idx]
}
