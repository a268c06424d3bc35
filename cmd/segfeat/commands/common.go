// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// common.go — per-invocation context shared by every command.

// Package commands implements the segfeat CLI actions.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/config"
	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/internal/logger"
	"github.com/katalvlaran/segfeat/registry"
)

// AppContext holds what every action needs: the loaded model, the logger and
// a run ID attached to every log line.
type AppContext struct {
	Config *config.Config
	Logger *slog.Logger
	RunID  uuid.UUID
}

// NewAppContext loads the model and .env files named by the global flags and
// builds the logger.
func NewAppContext(cmd *cli.Command) (*AppContext, error) {
	cfg, err := config.Load(cmd.String("model"), cmd.String("env"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	lc, err := cfg.LoggerConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	lc.Output = cmd.Root().ErrWriter

	id := uuid.New()

	return &AppContext{
		Config: cfg,
		Logger: logger.New(lc).With("run_id", id.String()),
		RunID:  id,
	}, nil
}

// NewRegistry returns a default registry over dict configured from the model.
func (ac *AppContext) NewRegistry(dict *atomic.Dictionary) (*registry.Registry, error) {
	opts, err := ac.Config.RegistryOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, registry.WithLogger(ac.Logger))

	return registry.NewDefault(ac.Config.NumLabels(), dict, opts...)
}

// Train builds a registry, trains it on the gold sequences and freezes the
// word dictionary. The frozen dictionary may back further registries.
func (ac *AppContext) Train(seqs []*core.LabeledSequence) (*registry.Registry, *atomic.Dictionary, error) {
	dict, err := atomic.NewDictionary(ac.Config.NumLabels())
	if err != nil {
		return nil, nil, err
	}
	reg, err := ac.NewRegistry(dict)
	if err != nil {
		return nil, nil, err
	}
	var gold []core.Sequence
	for _, s := range seqs {
		if s.NumSegments() > 0 {
			gold = append(gold, s)
		}
	}
	if err := reg.Train(gold...); err != nil {
		return nil, nil, fmt.Errorf("train: %w", err)
	}
	dict.Freeze()
	ac.Logger.Info("registry trained",
		"sequences", len(gold), "words", dict.Len(), "families", reg.NumFamilies(), "max_gap", reg.MaxBoundaryGap())

	return reg, dict, nil
}

// ReadInput reads a corpus from path, or from stdin when path is "" or "-".
func (ac *AppContext) ReadInput(cmd *cli.Command, path string) ([]*core.LabeledSequence, error) {
	var r io.Reader = cmd.Root().Reader
	if r == nil {
		r = os.Stdin
	}
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		defer f.Close()
		r = f
	}
	seqs, err := ReadCorpus(r, ac.Config.Labels)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	ac.Logger.Debug("input read", "path", path, "sequences", len(seqs))

	return seqs, nil
}

// output opens path for writing, or returns the command writer when path is
// "" or "-". The returned close func is always non-nil.
func output(cmd *cli.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.Root().Writer, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
