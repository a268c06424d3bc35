// SPDX-License-Identifier: MIT
// Package: segfeat/registry
//
// errors.go — sentinel errors for the registry package.
//
// Callers branch with errors.Is; messages carry the operation as a prefix.

package registry

import "errors"

var (
	// ErrNilGenerator indicates Add was given a nil generator.
	ErrNilGenerator = errors.New("registry: generator is nil")

	// ErrNoLabels indicates a registry for fewer than one label.
	ErrNoLabels = errors.New("registry: numLabels must be ≥ 1")

	// ErrNilDictionary indicates NewDefault without a word dictionary.
	ErrNilDictionary = errors.New("registry: word dictionary is nil")

	// ErrFrozen indicates an insertion into a frozen feature dictionary.
	ErrFrozen = errors.New("registry: feature dictionary is frozen")

	// ErrCorruptDictionary indicates a persisted dictionary with missing or
	// duplicate indices or keys.
	ErrCorruptDictionary = errors.New("registry: corrupt feature dictionary")
)
