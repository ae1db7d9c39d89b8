package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/arloliu/sview-fmindex/builder"
	"github.com/arloliu/sview-fmindex/fmindex"
	"github.com/arloliu/sview-fmindex/format"
	"github.com/arloliu/sview-fmindex/textenc"
)

// dna4Groups is the four-letter nucleotide alphabet used by the "dna4"
// --algo profile, upper and lower case folded onto the same symbol, per
// source spec §8's worked examples.
var dna4Groups = [][]byte{
	[]byte("Aa"),
	[]byte("Cc"),
	[]byte("Gg"),
	[]byte("Tt"),
}

func encoderForAlgo(algo string) (textenc.Encoder, error) {
	switch algo {
	case "dna4":
		return textenc.NewTable(dna4Groups), nil
	case "ascii-wildcard":
		// Every byte outside {A,C,G,T} collapses onto one synthetic
		// wildcard symbol, distinct from "Tt", matching source spec
		// §8's XXYYZZ scenario.
		return textenc.NewTableWithWildcard(dna4Groups), nil
	default:
		return nil, fmt.Errorf("unknown --algo %q, want dna4 or ascii-wildcard", algo)
	}
}

func generateTextCommand(c *cli.Context) error {
	n := c.Int("len")
	if n < 0 {
		return fmt.Errorf("--len must be >= 0")
	}

	alphabet := []byte("ACGT")
	wildcards := []byte("XYZ")

	text := make([]byte, n)
	for i := range text {
		if c.Bool("wildcard-t") && rand.IntN(20) == 0 {
			text[i] = wildcards[rand.IntN(len(wildcards))]

			continue
		}
		text[i] = alphabet[rand.IntN(len(alphabet))]
	}

	codec, ok := format.ParseCompressionType(c.String("compress"))
	if !ok {
		return fmt.Errorf("unknown --compress %q, want none, zstd or lz4", c.String("compress"))
	}

	if err := writeCorpus(c.String("out"), text, codec); err != nil {
		return err
	}

	fmt.Printf("wrote %d bytes to %s (%s)\n", n, c.String("out"), codec)

	return nil
}

func generatePatternCommand(c *cli.Context) error {
	minLen := c.Int("min-len")
	maxLen := c.Int("max-len")
	if minLen < 1 || maxLen < minLen {
		return fmt.Errorf("require 1 <= --min-len <= --max-len")
	}

	text, err := readCorpus(c.String("text"), codecForPath(c.String("text")))
	if err != nil {
		return fmt.Errorf("reading --text: %w", err)
	}
	if len(text) < minLen {
		return fmt.Errorf("text of length %d is shorter than --min-len %d", len(text), minLen)
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	count := c.Int("count")
	for i := 0; i < count; i++ {
		hi := maxLen
		if hi > len(text) {
			hi = len(text)
		}
		patLen := minLen
		if hi > minLen {
			patLen = minLen + rand.IntN(hi-minLen+1)
		}
		start := rand.IntN(len(text) - patLen + 1)
		if _, err := w.Write(text[start : start+patLen]); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return w.Flush()
}

func buildCommand(c *cli.Context) error {
	text, err := readCorpus(c.String("text"), codecForPath(c.String("text")))
	if err != nil {
		return fmt.Errorf("reading --text: %w", err)
	}

	enc, err := encoderForAlgo(c.String("algo"))
	if err != nil {
		return err
	}

	b, err := builder.New(uint64(len(text)), enc.Sigma(), enc)
	if err != nil {
		return err
	}

	ratio := c.Int("sampling-ratio")
	if ratio <= 1 {
		if err := b.SetSuffixArrayConfig(format.Uncompressed()); err != nil {
			return err
		}
	} else {
		if err := b.SetSuffixArrayConfig(format.Compressed(uint32(ratio))); err != nil {
			return err
		}
	}

	if k := c.Int("kmer-size"); k >= 2 {
		if err := b.SetLookupTableConfig(format.KmerSize(uint32(k))); err != nil {
			return err
		}
	}

	blob := make([]byte, b.BlobSize())
	if err := b.Build(text, blob); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if err := os.WriteFile(c.String("out"), blob, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %d-byte index to %s\n", len(blob), c.String("out"))

	return nil
}

func locateCommand(c *cli.Context) error {
	blob, err := os.ReadFile(c.String("index"))
	if err != nil {
		return err
	}

	idx, err := fmindex.Load(blob)
	if err != nil {
		return fmt.Errorf("loading --index: %w", err)
	}

	pattern := []byte(c.String("pattern"))
	offsets := idx.Locate(pattern)

	fmt.Printf("%d occurrence(s)\n", len(offsets))
	for _, off := range offsets {
		fmt.Println(off)
	}

	return nil
}
