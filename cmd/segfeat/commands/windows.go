// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// windows.go — show the boundary arithmetic of the configured windows.

package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/segfeat/config"
	"github.com/katalvlaran/segfeat/registry"
	"github.com/katalvlaran/segfeat/window"
)

// WindowsAction prints one row per window of the model: the fixed windows of
// the word and regex families, then the windowed families. With --length n
// it adds the anchor positions and feature boundaries for a sequence of n tokens.
func WindowsAction(_ context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	fixed := registry.DefaultWindows()
	if len(appCtx.Config.Windows) > 0 {
		if fixed, err = toWindows(appCtx.Config.Windows); err != nil {
			return err
		}
	}
	windowed, err := toWindows(appCtx.Config.Windowed)
	if err != nil {
		return err
	}
	n := cmd.Int("length")

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "FAMILY\tNAME\tREGIME\tSTART\tEND\tMIN\tMAX\tLEN\tMIN_SEQ\tBOUNDARY")
	if n > 0 {
		fmt.Fprint(tw, "\tUSABLE\tPOSITIONS\tFEATURES")
	}
	fmt.Fprintln(tw)
	row := func(family string, w window.Window) {
		maxLen := "-"
		if !w.Unbounded() {
			maxLen = strconv.Itoa(w.MaxLength())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%d\t%d\t%s",
			family, w.Name(), w.Regime(), w.Start(), w.End(),
			w.MinLength(), maxLen, w.SegmentLength(), w.MinSequenceLength(), shape(w))
		if n > 0 {
			fmt.Fprintf(tw, "\t%t\t%s\t%s", w.Usable(n), rng(w.PositionBounds(n)), rng(w.FeatureBounds(n)))
		}
		fmt.Fprintln(tw)
	}
	for _, w := range fixed {
		row("fixed", w)
	}
	for _, w := range windowed {
		row("windowed", w)
	}

	return tw.Flush()
}

func toWindows(list []config.WindowConfig) ([]window.Window, error) {
	out := make([]window.Window, 0, len(list))
	for _, wc := range list {
		w, err := wc.Window()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, nil
}

// shape renders the window's boundary flags with a placeholder span.
func shape(w window.Window) string {
	startOpen, endOpen := w.Flags()
	l, r := "[", "]"
	if startOpen {
		l = "("
	}
	if endOpen {
		r = ")"
	}

	return l + "s,e" + r
}

func rng(r window.Range) string {
	if r.Empty() {
		return "-"
	}

	return fmt.Sprintf("%d..%d", r.Lo, r.Hi)
}
