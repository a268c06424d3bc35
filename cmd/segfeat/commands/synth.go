// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// synth.go — write a random gold corpus for smoke tests and benchmarks.

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/segfeat/builder"
)

// SynthAction writes --count random gold sequences of --length tokens over
// the model labels. Segment lengths are capped by max_memory; the same
// --seed always yields the same corpus.
func SynthAction(_ context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(cmd.Int64("seed")),
		builder.WithMaxSegmentLength(appCtx.Config.MaxMemory),
		builder.WithPrefixTokens("w"),
	}
	if v := cmd.Int("vocabulary"); v > 0 {
		opts = append(opts, builder.WithVocabularySize(v))
	}
	corpus, err := builder.BuildCorpus(appCtx.Config.NumLabels(), opts,
		builder.RandomSegmentation(cmd.Int("count"), cmd.Int("length")))
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}

	w, closeOut, err := output(cmd, cmd.String("out"))
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	if err := WriteCorpus(w, corpus.Sequences, appCtx.Config.Labels); err != nil {
		closeOut()
		return fmt.Errorf("synth: %w", err)
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	appCtx.Logger.Info("corpus written", "sequences", corpus.Len(), "tokens", corpus.Tokens())

	return nil
}
