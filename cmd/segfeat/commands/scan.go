// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// scan.go — print the features a registry enumerates.

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/segfeat/core"
)

// Scan modes.
const (
	ModeAll     = "all"
	ModeGold    = "gold"
	ModeSegment = "segment"
)

var (
	// ErrUnknownMode indicates a --mode other than all, gold or segment.
	ErrUnknownMode = errors.New("commands: unknown scan mode")

	// ErrBadSegment indicates a --segment value that is not "start,end".
	ErrBadSegment = errors.New("commands: segment must be start,end")
)

// ScanAction prints one line per feature: sequence index, family name and
// the feature. Mode all scans every candidate boundary, gold keeps only
// features consistent with each gold segmentation, and segment reports the
// features of the closed segment given by --segment.
func ScanAction(ctx context.Context, cmd *cli.Command) error {
	mode := cmd.String("mode")
	var segStart, segEnd int
	switch mode {
	case ModeAll, ModeGold:
	case ModeSegment:
		var err error
		if segStart, segEnd, err = parseSegment(cmd.String("segment")); err != nil {
			return err
		}
	default:
		return fmt.Errorf("--mode %q: %w", mode, ErrUnknownMode)
	}

	appCtx, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	seqs, err := appCtx.ReadInput(cmd, cmd.Args().First())
	if err != nil {
		return err
	}
	reg, _, err := appCtx.Train(seqs)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.Root().Writer)
	total := 0
	for i, seq := range seqs {
		if err := ctx.Err(); err != nil {
			return err
		}
		var features iter.Seq[core.Feature]
		switch mode {
		case ModeAll:
			features = reg.All(seq)
		case ModeGold:
			if seq.NumSegments() == 0 {
				continue
			}
			features = reg.Gold(seq)
		case ModeSegment:
			if segEnd >= seq.Len() {
				appCtx.Logger.Warn("segment outside sequence", "sequence", i, "len", seq.Len())
				continue
			}
			features = reg.Segment(seq, segStart-1, segEnd)
		}
		for f := range features {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i, reg.FamilyName(f.Family), f)
			total++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	appCtx.Logger.Info("scan finished", "mode", mode, "sequences", len(seqs), "features", total)

	return nil
}

func parseSegment(s string) (start, end int, err error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("--segment %q: %w", s, ErrBadSegment)
	}
	if start, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, fmt.Errorf("--segment %q: %w", s, ErrBadSegment)
	}
	if end, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
		return 0, 0, fmt.Errorf("--segment %q: %w", s, ErrBadSegment)
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("--segment %q: %w", s, ErrBadSegment)
	}

	return start, end, nil
}
