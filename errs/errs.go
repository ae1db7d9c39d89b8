// Package errs defines the sentinel errors returned by every build-time,
// load-time and configuration operation in this module.
//
// Query-time operations (Count, Locate) are total functions over any byte
// string per source spec §7 and never return an error; unencodable pattern
// bytes simply collapse to the wildcard symbol class.
//
// Callers that need the dynamic detail (expected vs. got sizes, offsets)
// should use errors.Is against these sentinels; call sites wrap them with
// fmt.Errorf("%w: ...") to attach that detail without losing the sentinel.
package errs

import "errors"

// Build-time errors.
var (
	// ErrSymbolCountOver is returned by Builder construction when the
	// requested symbol count exceeds the largest block type's MAX_SYMBOL.
	ErrSymbolCountOver = errors.New("fmindex: symbol count exceeds maximum supported by block format")

	// ErrInvalidConfig is returned when a suffix-array or lookup-table
	// configuration is out of range (e.g. a sampling ratio or k-mer size
	// below the allowed minimum).
	ErrInvalidConfig = errors.New("fmindex: invalid builder configuration")

	// ErrUnmatchedTextLength is returned by Build when the supplied text
	// buffer's length does not match the length the builder was
	// constructed with.
	ErrUnmatchedTextLength = errors.New("fmindex: text length does not match builder configuration")

	// ErrNotAlignedBlob is returned by Build when the caller-supplied
	// output buffer's base address is not aligned to format.Align.
	ErrNotAlignedBlob = errors.New("fmindex: blob output buffer is not aligned")

	// ErrInvalidBlobSize is returned by Build when the caller-supplied
	// output buffer's length does not match BlobSize().
	ErrInvalidBlobSize = errors.New("fmindex: blob output buffer has wrong size")
)

// Load-time errors.
var (
	// ErrInvalidFormat is returned by Load when the magic number or
	// format version does not match.
	ErrInvalidFormat = errors.New("fmindex: invalid blob format or unsupported version")

	// ErrMismatchedBlobSize is returned by Load when the blob's declared
	// header sizes do not account for the number of remaining bytes.
	ErrMismatchedBlobSize = errors.New("fmindex: blob size does not match header-declared sizes")
)

// ErrSuffixArrayNotSampled is an internal invariant error: SuffixArrayView.At
// is only ever called by the locate loop at indices that are known to be
// sampled, so a call at an unsampled index indicates a bug in the caller
// rather than a malformed blob.
var ErrSuffixArrayNotSampled = errors.New("fmindex: suffix array index is not sampled")
