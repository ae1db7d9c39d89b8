package block

// KForSigma returns the smallest bit-plane count k such that 2^k > sigma,
// per source spec §4.1. sigma is the post-wildcard-fold symbol count Σ.
func KForSigma(sigma int) int {
	k := 1
	for (1 << uint(k)) <= sigma {
		k++
	}

	return k
}

// MaxSymbolFor returns 2^k, the maximum number of distinct stored values
// (including the sentinel) a block with this many bit-planes can address.
func MaxSymbolFor(k int) int {
	return 1 << uint(k)
}

// SizeOf returns the size, in bytes, of a single block with k bit-planes.
func SizeOf(k int) int {
	return k * (format_BlockLen / 8)
}

// format_BlockLen mirrors format.BlockLen without importing the format
// package, to avoid an import cycle (format does not need to know about
// block, and block's only use of the constant is this byte-size helper).
const format_BlockLen = 64

// MaxK is the largest bit-plane count implemented, corresponding to the
// largest Sigma (127) this module supports.
const MaxK = 7

// MaxSigma is the largest post-wildcard-fold symbol count this module
// supports (2^MaxK - 1).
const MaxSigma = 1<<MaxK - 1
