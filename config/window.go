// SPDX-License-Identifier: MIT
// Package: segfeat/config
//
// window.go — YAML form of a window.

package config

import (
	"fmt"

	"github.com/katalvlaran/segfeat/window"
)

// WindowConfig describes one window. Anchor is "left", "right" or "middle".
// Zero MinLength means 1; zero MaxLength means unbounded.
type WindowConfig struct {
	Name      string `yaml:"name"`
	Anchor    string `yaml:"anchor"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
}

// Window builds and validates the window.
func (wc WindowConfig) Window() (window.Window, error) {
	regime, err := window.ParseRegime(wc.Anchor)
	if err != nil {
		return window.Window{}, fmt.Errorf("window %q: %w: %w", wc.Name, ErrInvalidWindow, err)
	}
	if wc.MinLength < 0 || wc.MaxLength < 0 {
		return window.Window{}, fmt.Errorf("window %q: negative length: %w", wc.Name, ErrInvalidWindow)
	}
	var opts []window.Option
	if wc.MinLength > 0 {
		opts = append(opts, window.WithMinLength(wc.MinLength))
	}
	if wc.MaxLength > 0 {
		opts = append(opts, window.WithMaxLength(wc.MaxLength))
	}
	w, err := window.NewRegime(wc.Name, regime, wc.Start, wc.End, opts...)
	if err != nil {
		return window.Window{}, fmt.Errorf("window %q: %w: %w", wc.Name, ErrInvalidWindow, err)
	}

	return w, nil
}

// FromWindow is the inverse of Window.
func FromWindow(w window.Window) WindowConfig {
	wc := WindowConfig{
		Name:      w.Name(),
		Anchor:    w.Regime().String(),
		Start:     w.Start(),
		End:       w.End(),
		MinLength: w.MinLength(),
	}
	if !w.Unbounded() {
		wc.MaxLength = w.MaxLength()
	}

	return wc
}

func windows(list []WindowConfig) ([]window.Window, error) {
	out := make([]window.Window, len(list))
	for i, wc := range list {
		w, err := wc.Window()
		if err != nil {
			return nil, err
		}
		out[i] = w
	}

	return out, nil
}
