package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		ErrSymbolCountOver,
		ErrInvalidConfig,
		ErrUnmatchedTextLength,
		ErrNotAlignedBlob,
		ErrInvalidBlobSize,
		ErrInvalidFormat,
		ErrMismatchedBlobSize,
		ErrSuffixArrayNotSampled,
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.NotEqual(t, a, b, "%v should not equal %v", a, b)
		}
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrInvalidConfig)
	require.ErrorIs(t, wrapped, ErrInvalidConfig)
	require.NotErrorIs(t, wrapped, ErrSymbolCountOver)
}
