// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// collect.go — build a feature dictionary over a corpus in parallel.
//
// The word dictionary is trained once and frozen, then shared read-only.
// Each worker owns a registry and a shard dictionary over a contiguous run
// of sequences; shards are merged in order, so the result does not depend
// on the worker count.

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/registry"
)

// CollectAction writes the feature dictionary of the input as YAML.
func CollectAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	seqs, err := appCtx.ReadInput(cmd, cmd.Args().First())
	if err != nil {
		return err
	}
	_, words, err := appCtx.Train(seqs)
	if err != nil {
		return err
	}

	workers := appCtx.Config.Workers
	if n := cmd.Int("workers"); n > 0 {
		workers = n
	}
	shards := shard(seqs, workers)
	parts := make([]*registry.Dictionary, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	for i, part := range shards {
		g.Go(func() error {
			reg, err := appCtx.NewRegistry(words)
			if err != nil {
				return err
			}
			d := registry.NewDictionary()
			for _, seq := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				if _, err := d.Collect(reg, seq); err != nil {
					return fmt.Errorf("shard %d: %w", i, err)
				}
			}
			parts[i] = d
			appCtx.Logger.Debug("shard collected", "shard", i, "sequences", len(part), "features", d.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	dict := registry.NewDictionary()
	for _, d := range parts {
		if err := dict.Merge(d); err != nil {
			return fmt.Errorf("collect: %w", err)
		}
	}
	dict.Freeze()

	w, closeOut, err := output(cmd, cmd.String("out"))
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	if err := dict.Write(w); err != nil {
		closeOut()
		return fmt.Errorf("collect: %w", err)
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	args := []any{"sequences", len(seqs), "workers", len(shards), "features", dict.Len()}
	stats := dict.Stats()
	for kind := core.Exact; kind <= core.BothOpen; kind++ {
		args = append(args, kind.String(), stats[kind])
	}
	appCtx.Logger.Info("dictionary collected", args...)

	return nil
}

// shard splits seqs into at most n contiguous, non-empty runs of near-equal size.
func shard(seqs []*core.LabeledSequence, n int) [][]core.Sequence {
	n = max(1, min(n, len(seqs)))
	out := make([][]core.Sequence, 0, n)
	for i := 0; i < n; i++ {
		lo, hi := i*len(seqs)/n, (i+1)*len(seqs)/n
		part := make([]core.Sequence, 0, hi-lo)
		for _, s := range seqs[lo:hi] {
			part = append(part, s)
		}
		out = append(out, part)
	}

	return out
}
