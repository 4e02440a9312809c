package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dargueta/smaz"
	"github.com/dargueta/smaz/dictionaries"
	"github.com/urfave/cli/v2"
)

// loadCodec returns a codec for the dictionary given with --dictionary, or the
// built-in one if the flag isn't set.
func loadCodec(ctx *cli.Context) (*smaz.Codec, error) {
	path := ctx.String("dictionary")
	if path == "" {
		return smaz.New(), nil
	}

	terms, err := dictionaries.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	codec, err := smaz.NewWithTerms(terms)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary %q: %w", path, err)
	}
	if ctx.Bool("verbose") {
		log.Printf("loaded %d terms from %s", len(terms), path)
	}
	return codec, nil
}

// readInput returns the contents of the file given with --input if set, the
// command's arguments joined by spaces if there are any, or all of stdin.
func readInput(ctx *cli.Context) ([]byte, error) {
	if path := ctx.String("input"); path != "" {
		return os.ReadFile(path)
	}
	if ctx.Args().Present() {
		return []byte(strings.Join(ctx.Args().Slice(), " ")), nil
	}
	return io.ReadAll(ctx.App.Reader)
}

// writeOutput writes `data` to the file given with --output, or stdout if it's
// not set.
func writeOutput(ctx *cli.Context, data []byte) error {
	if path := ctx.String("output"); path != "" {
		return os.WriteFile(path, data, 0o644)
	}
	_, err := ctx.App.Writer.Write(data)
	return err
}

func logRatio(ctx *cli.Context, operation string, before, after int) {
	if !ctx.Bool("verbose") {
		return
	}
	if before == 0 {
		log.Printf("%s: %d -> %d bytes", operation, before, after)
		return
	}
	log.Printf(
		"%s: %d -> %d bytes (%.1f%%)",
		operation,
		before,
		after,
		100*float64(after)/float64(before))
}

func compressAction(ctx *cli.Context) error {
	codec, err := loadCodec(ctx)
	if err != nil {
		return err
	}

	input, err := readInput(ctx)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	compressed := codec.CompressBytes(input)
	logRatio(ctx, "compress", len(input), len(compressed))

	if ctx.Bool("hex") {
		compressed = []byte(hex.EncodeToString(compressed) + "\n")
	}
	return writeOutput(ctx, compressed)
}

func decompressAction(ctx *cli.Context) error {
	codec, err := loadCodec(ctx)
	if err != nil {
		return err
	}

	input, err := readInput(ctx)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if ctx.Bool("hex") {
		input, err = hex.DecodeString(strings.TrimSpace(string(input)))
		if err != nil {
			return fmt.Errorf("input isn't valid hexadecimal: %w", err)
		}
	}

	var decompressed []byte
	if bufferSize := ctx.Int("buffer-size"); bufferSize > 0 {
		buffer := make([]byte, bufferSize)
		n, err := codec.Decompress(input, buffer)
		if err != nil {
			return err
		}
		decompressed = buffer[:n]
	} else {
		decompressed, err = codec.DecompressBytes(input)
		if err != nil {
			return err
		}
	}

	logRatio(ctx, "decompress", len(input), len(decompressed))
	return writeOutput(ctx, decompressed)
}

func exportDictionaryAction(ctx *cli.Context) error {
	codec, err := loadCodec(ctx)
	if err != nil {
		return err
	}

	var output strings.Builder
	if err = dictionaries.Write(&output, codec.Dictionary().Terms()); err != nil {
		return err
	}
	return writeOutput(ctx, []byte(output.String()))
}

func dictionaryStatsAction(ctx *cli.Context) error {
	codec, err := loadCodec(ctx)
	if err != nil {
		return err
	}

	dict := codec.Dictionary()
	stats := dict.Stats()
	_, err = fmt.Fprintf(
		ctx.App.Writer,
		"terms: %d\nmax term size: %d\nmax verbatim length: %d\n"+
			"buckets: %d (%d empty)\nrecords: %d\nlongest bucket: %d\n",
		dict.TermCount(),
		dict.MaxTermSize(),
		dict.MaxVerbatimLength(),
		stats.Buckets,
		stats.EmptyBuckets,
		stats.Records,
		stats.LongestBucket,
	)
	return err
}
