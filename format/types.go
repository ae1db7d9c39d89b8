package format

// CompressionType identifies the compression codec applied to a corpus file
// on disk by the cmd/fmindex CLI collaborator. It has no bearing on the
// index blob format itself (source spec §1: the blob is "identical on disk
// and in RAM"); it only ever describes how a generated-text or pattern file
// was written to disk.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the file uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd stores the file zstd-compressed.
	CompressionLZ4  CompressionType = 0x3 // CompressionLZ4 stores the file lz4-compressed.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a CLI flag value to a CompressionType.
func ParseCompressionType(s string) (CompressionType, bool) {
	switch s {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
