package main

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/sview-fmindex/format"
)

// writeCorpus writes data to path, compressing it with codec first if
// requested. The codec is not recorded in the file itself; callers that
// round-trip a compressed corpus must already know which one they used.
func writeCorpus(path string, data []byte, codec format.CompressionType) error {
	switch codec {
	case format.CompressionZstd:
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			return err
		}
		if _, err := enc.Write(data); err != nil {
			enc.Close()

			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}

		return os.WriteFile(path, buf.Bytes(), 0o644)
	case format.CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			w.Close()

			return err
		}
		if err := w.Close(); err != nil {
			return err
		}

		return os.WriteFile(path, buf.Bytes(), 0o644)
	default:
		return os.WriteFile(path, data, 0o644)
	}
}

// readCorpus reads path, decompressing it with codec if needed.
func readCorpus(path string, codec format.CompressionType) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch codec {
	case format.CompressionZstd:
		dec, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		return io.ReadAll(dec)
	case format.CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(raw)))
	default:
		return raw, nil
	}
}

// codecForPath guesses a corpus file's codec from its extension, since the
// codec is not stored in the file (generate-text only reports it on stdout).
func codecForPath(path string) format.CompressionType {
	switch {
	case hasSuffix(path, ".zst"):
		return format.CompressionZstd
	case hasSuffix(path, ".lz4"):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
