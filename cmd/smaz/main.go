package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "read input from `FILE` instead of the arguments or stdin",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write output to `FILE` instead of stdout",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "smaz",
		Usage: "Compress short strings with a shared dictionary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Aliases: []string{"d"},
				Usage:   "use the terms in the CSV `FILE` instead of the built-in dictionary",
				EnvVars: []string{"SMAZ_DICTIONARY"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log sizes and compression ratios to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress text",
				ArgsUsage: "[TEXT...]",
				Action:    compressAction,
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
					&cli.BoolFlag{
						Name:  "hex",
						Usage: "write the compressed bytes as hexadecimal",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Decompress data produced by the compress command",
				ArgsUsage: "[HEX]",
				Action:    decompressAction,
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
					&cli.BoolFlag{
						Name:  "hex",
						Usage: "read the compressed bytes as hexadecimal",
					},
					&cli.IntFlag{
						Name:    "buffer-size",
						Aliases: []string{"b"},
						Usage:   "fail if the output is larger than `N` bytes (0 for no limit)",
						EnvVars: []string{"SMAZ_BUFFER_SIZE"},
					},
				},
			},
			{
				Name:  "dictionary",
				Usage: "Inspect the active dictionary",
				Subcommands: []*cli.Command{
					{
						Name:   "export",
						Usage:  "Write the dictionary's terms as CSV",
						Action: exportDictionaryAction,
						Flags:  []cli.Flag{outputFlag()},
					},
					{
						Name:   "stats",
						Usage:  "Show how the terms are spread across the hash table",
						Action: dictionaryStatsAction,
					},
				},
			},
		},
	}
}
