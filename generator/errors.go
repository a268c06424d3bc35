// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// errors.go — sentinel errors and the runtime boundary assertion.
//
// Policy:
//   • Configuration problems are returned from constructors as sentinels,
//     wrapped with the constructor name.
//   • A boundary outside [0, N) is an arithmetic bug, not an input problem:
//     mustContain panics instead of clamping, so corrupt features never reach
//     training.

package generator

import (
	"errors"

	"github.com/katalvlaran/segfeat/core"
)

var (
	// ErrNilSource indicates a generator built without an inner source.
	ErrNilSource = errors.New("generator: inner source is nil")

	// ErrNoWindows indicates a windowed generator built without windows.
	ErrNoWindows = errors.New("generator: at least one window is required")

	// ErrTooManyWindows indicates more than one window for a single-window generator.
	ErrTooManyWindows = errors.New("generator: only a single window is supported")

	// ErrBadMaxLength indicates a segment length or memory cap below 1.
	ErrBadMaxLength = errors.New("generator: max length must be ≥ 1")

	// ErrNoLabels indicates a label replicator built for fewer than one label.
	ErrNoLabels = errors.New("generator: numLabels must be ≥ 1")
)

// mustContain panics unless b lies in [0, n).
func mustContain(b core.Boundary, n int) {
	if err := b.Check(n); err != nil {
		panic(err)
	}
}
