// Command fmindex is the CLI collaborator from source spec §6: generate
// test corpora, build a blob, and run a single locate query against it.
// None of these subcommands affect the blob format itself.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "fmindex",
		Usage: "build and query byte-serialized FM-index blobs",
		Commands: []*cli.Command{
			{
				Name:  "generate-text",
				Usage: "write a random text corpus to disk",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "len", Required: true, Usage: "length of the generated text"},
					&cli.StringFlag{Name: "out", Required: true, Usage: "output file path"},
					&cli.BoolFlag{Name: "wildcard-t", Usage: "sprinkle wildcard bytes into the generated text"},
					&cli.StringFlag{Name: "compress", Value: "none", Usage: "none|zstd|lz4"},
				},
				Action: generateTextCommand,
			},
			{
				Name:  "generate-pattern",
				Usage: "sample substrings of an existing text corpus",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Required: true, Usage: "input text file path"},
					&cli.IntFlag{Name: "count", Required: true, Usage: "number of patterns to sample"},
					&cli.IntFlag{Name: "min-len", Value: 1, Usage: "minimum pattern length"},
					&cli.IntFlag{Name: "max-len", Value: 8, Usage: "maximum pattern length"},
					&cli.StringFlag{Name: "out", Required: true, Usage: "output file path, one pattern per line"},
				},
				Action: generatePatternCommand,
			},
			{
				Name:  "build",
				Usage: "build an FM-index blob from a text file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Required: true, Usage: "input text file path"},
					&cli.StringFlag{Name: "algo", Value: "dna4", Usage: "alphabet profile: dna4 or ascii-wildcard"},
					&cli.IntFlag{Name: "sampling-ratio", Value: 1, Usage: "suffix array sampling ratio"},
					&cli.IntFlag{Name: "kmer-size", Value: 0, Usage: "k-mer lookup table size (0 = minimal)"},
					&cli.StringFlag{Name: "out", Required: true, Usage: "output blob file path"},
				},
				Action: buildCommand,
			},
			{
				Name:  "locate",
				Usage: "load a blob and report every occurrence of a pattern",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "index", Required: true, Usage: "blob file path"},
					&cli.StringFlag{Name: "pattern", Required: true, Usage: "pattern to search for"},
				},
				Action: locateCommand,
			},
		},
	}
}
