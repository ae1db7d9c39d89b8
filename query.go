package fmindex

import "github.com/arloliu/sview-fmindex/textenc"

// ByteSource is the pull-based pattern source the reverse-iterator query
// variants consume (source spec §4.7, §6 "Reverse-iterator ... variants of
// the last three"). Next is called repeatedly, back-to-front over the
// pattern, until it returns ok == false.
type ByteSource func() (b byte, ok bool)

// sliceSource adapts a []byte pattern into a ByteSource that yields it
// back to front, the trivial adaptor source spec §9's "Pattern consumption
// as a stream" note describes: "the slice API is a trivial adaptor
// (iterate indices from end to start)".
func sliceSource(pattern []byte) ByteSource {
	i := len(pattern)

	return func() (byte, bool) {
		if i == 0 {
			return 0, false
		}
		i--

		return pattern[i], true
	}
}

// posRangeFromIter implements the reverse-iterator pos_range algorithm of
// source spec §4.7: seed the initial range from the k-mer table by pulling
// up to k bytes from next, then keep consuming one byte per backward
// LF-mapping step until the range collapses or next is exhausted. This is
// the core every query entry point (slice or pull-based) is a thin wrapper
// over.
func (idx *index[P]) posRangeFromIter(next ByteSource, enc textenc.Encoder) (lo, hi P) {
	lo, hi = idx.countArr.InitialRangeFromIter(next, enc)

	for lo < hi {
		b, ok := next()
		if !ok {
			break
		}
		symbolIdx := enc.Encode(b)
		stored := symbolIdx + 1
		c := idx.countArr.CountAt(int(symbolIdx))
		lo = c + P(idx.bwm.Rank(lo, stored))
		hi = c + P(idx.bwm.Rank(hi, stored))
	}

	return lo, hi
}

func (idx *index[P]) countAt(stored int) P {
	return idx.countArr.CountAt(stored - 1)
}

// Count implements FmIndex.Count.
func (idx *index[P]) Count(pattern []byte) uint64 {
	return idx.CountFromIter(sliceSource(pattern))
}

// CountEncoded implements FmIndex.CountEncoded.
func (idx *index[P]) CountEncoded(pattern []uint8) uint64 {
	lo, hi := idx.posRangeFromIter(sliceSource(pattern), textenc.NewPassThrough(idx.sigma))

	return uint64(hi) - uint64(lo)
}

// CountFromIter implements FmIndex.CountFromIter, the reverse-iterator
// variant of Count.
func (idx *index[P]) CountFromIter(next ByteSource) uint64 {
	lo, hi := idx.posRangeFromIter(next, idx.encoder)

	return uint64(hi) - uint64(lo)
}

// Locate implements FmIndex.Locate.
func (idx *index[P]) Locate(pattern []byte) []uint64 {
	return idx.LocateFromIterToBuffer(sliceSource(pattern), nil)
}

// LocateToBuffer implements FmIndex.LocateToBuffer.
func (idx *index[P]) LocateToBuffer(pattern []byte, buf []uint64) []uint64 {
	return idx.LocateFromIterToBuffer(sliceSource(pattern), buf)
}

// LocateEncoded implements FmIndex.LocateEncoded.
func (idx *index[P]) LocateEncoded(pattern []uint8) []uint64 {
	lo, hi := idx.posRangeFromIter(sliceSource(pattern), textenc.NewPassThrough(idx.sigma))

	return idx.locateRange(lo, hi, nil)
}

// LocateFromIter implements FmIndex.LocateFromIter, the reverse-iterator
// variant of Locate.
func (idx *index[P]) LocateFromIter(next ByteSource) []uint64 {
	return idx.LocateFromIterToBuffer(next, nil)
}

// LocateFromIterToBuffer implements FmIndex.LocateFromIterToBuffer, the
// reverse-iterator variant of LocateToBuffer.
func (idx *index[P]) LocateFromIterToBuffer(next ByteSource, buf []uint64) []uint64 {
	lo, hi := idx.posRangeFromIter(next, idx.encoder)

	return idx.locateRange(lo, hi, buf)
}

// locateRange implements the §4.7 locate loop over an already-computed
// [lo, hi) row range: walk each row backward through the Bwm, either
// until a sampled suffix-array index is reached or until the walk
// terminates at BWT position p, whose implicit suffix-array value is
// always 0. Row numbers here leave out the sentinel's own row (row 0 of
// the stored suffix array), so row cur's suffix-array index is cur+1.
func (idx *index[P]) locateRange(lo, hi P, buf []uint64) []uint64 {
	ratio := uint64(idx.suffixArr.Ratio())

	for pos := lo; pos < hi; pos++ {
		cur := pos
		var offset uint64
		landed := false

		for (uint64(cur)+1)%ratio != 0 {
			prev, _, ok := idx.bwm.Step(cur, idx.countAt)
			if !ok {
				buf = append(buf, offset)
				landed = true

				break
			}
			cur = prev
			offset++
		}

		if landed {
			continue
		}

		saVal, err := idx.suffixArr.At(uint64(cur) + 1)
		if err == nil {
			buf = append(buf, uint64(saVal)+offset)
		}
	}

	return buf
}
