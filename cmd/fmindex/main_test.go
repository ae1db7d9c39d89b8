package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationRegistersExpectedCommands(t *testing.T) {
	app := application()

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}

	require.ElementsMatch(t, []string{"generate-text", "generate-pattern", "build", "locate"}, names)
}

func TestEncoderForAlgo(t *testing.T) {
	enc, err := encoderForAlgo("dna4")
	require.NoError(t, err)
	require.EqualValues(t, 4, enc.Sigma())

	enc, err = encoderForAlgo("ascii-wildcard")
	require.NoError(t, err)
	require.EqualValues(t, 5, enc.Sigma())

	_, err = encoderForAlgo("bogus")
	require.Error(t, err)
}

func TestGenerateTextThenBuildThenLocateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "text.bin")
	blobPath := filepath.Join(dir, "index.bin")

	app := application()

	require.NoError(t, app.Run([]string{"fmindex", "generate-text", "--len", "200", "--out", textPath}))
	require.NoError(t, app.Run([]string{"fmindex", "build", "--text", textPath, "--algo", "dna4", "--out", blobPath}))
	require.NoError(t, app.Run([]string{"fmindex", "locate", "--index", blobPath, "--pattern", "A"}))
}
