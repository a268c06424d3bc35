// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// app.go — the command tree.

package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/segfeat/config"
)

// NewApp returns the segfeat root command. --model and --env apply to every
// subcommand.
func NewApp() *cli.Command {
	inputUsage := "corpus file, one sequence per line (stdin when omitted or -)"

	return &cli.Command{
		Name:  "segfeat",
		Usage: "enumerate boundary-aware features for semi-Markov sequence labeling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "YAML model file (labels, windows, patterns, max_memory)",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "environment file with " + config.EnvMaxMemory + " and friends",
				Value: ".env",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "print the features of every sequence",
				ArgsUsage: inputUsage,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Usage: "all | gold | segment",
						Value: ModeAll,
					},
					&cli.StringFlag{
						Name:  "segment",
						Usage: "closed segment start,end for --mode segment",
					},
				},
				Action: ScanAction,
			},
			{
				Name:      "collect",
				Usage:     "build the feature dictionary of a corpus",
				ArgsUsage: inputUsage,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "parallel workers (default: " + config.EnvWorkers + " or one per CPU)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "dictionary YAML file (stdout when omitted or -)",
					},
				},
				Action: CollectAction,
			},
			{
				Name:  "windows",
				Usage: "show the boundary arithmetic of the model's windows",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "length",
						Usage: "sequence length to place the windows in",
					},
				},
				Action: WindowsAction,
			},
			{
				Name:  "synth",
				Usage: "write a random gold corpus",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Usage: "number of sequences",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "length",
						Usage: "tokens per sequence",
						Value: 12,
					},
					&cli.IntFlag{
						Name:  "vocabulary",
						Usage: "distinct tokens",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "random seed",
						Value: 1,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "corpus file (stdout when omitted or -)",
					},
				},
				Action: SynthAction,
			},
		},
	}
}
