// Package digest computes a checksum over a loaded blob, reported as the
// blob_digest field of FmIndex.DebugString so two loaded indices can be
// compared without comparing their full blobs.
//
// Grounded on mebo's internal/hash.ID, which hashes a metric name through
// xxhash.Sum64String; here the whole blob is hashed with xxhash.Sum64
// instead, since we checksum bytes rather than identify strings.
package digest

import "github.com/cespare/xxhash/v2"

// Blob returns the xxHash64 checksum of a serialized FM-index blob.
func Blob(blob []byte) uint64 {
	return xxhash.Sum64(blob)
}
