// SPDX-License-Identifier: MIT
// Package: segfeat/registry
//
// dictionary.go — dense indexing of feature keys, built from registry scans.
//
// Collection policy:
//   • Features of retained families are always indexed.
//   • Features of other families are indexed, for sequences that carry a
//     gold segmentation, only when Retain accepts them.
//   • Unsegmented sequences index everything.
//   • Indices are assigned in first-seen order, so the same corpus scanned in
//     the same order always yields the same dictionary.
//
// Persistence is YAML, one entry per index, read back frozen.

package registry

import (
	"fmt"
	"io"

	"github.com/katalvlaran/segfeat/core"
	"gopkg.in/yaml.v3"
)

// Dictionary maps feature keys to dense indices.
type Dictionary struct {
	index  map[core.Key]int
	keys   []core.Key
	names  []string
	stats  map[core.Kind]int
	frozen bool
}

// NewDictionary returns an empty, writable dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{index: make(map[core.Key]int), stats: make(map[core.Kind]int)}
}

// Add indexes f's key if new and returns its index. Once frozen, known keys
// still resolve and unknown keys return ErrFrozen.
func (d *Dictionary) Add(f *core.Feature) (int, error) {
	k := f.Key()
	if i, ok := d.index[k]; ok {
		return i, nil
	}
	if d.frozen {
		return -1, fmt.Errorf("Add(%s): %w", f.Name, ErrFrozen)
	}
	i := len(d.keys)
	d.index[k] = i
	d.keys = append(d.keys, k)
	d.names = append(d.names, f.Name)

	return i, nil
}

// Collect scans every sequence with r and indexes the features the
// collection policy keeps. It returns the number of new keys.
func (d *Dictionary) Collect(r *Registry, seqs ...core.Sequence) (int, error) {
	before := len(d.keys)
	var f core.Feature
	for _, seq := range seqs {
		seg, gold := seq.(core.Segmentation)
		gold = gold && seg.NumSegments() > 0
		for r.Scan(seq); r.HasNext(); {
			f.Reset()
			r.Next(&f)
			if gold && !r.Retained(f.Family) && !Retain(seg, &f) {
				continue
			}
			if _, err := d.Add(&f); err != nil {
				return len(d.keys) - before, fmt.Errorf("Collect: %w", err)
			}
			d.stats[f.Kind()]++
		}
	}

	return len(d.keys) - before, nil
}

// Merge indexes every key of other not yet known, in other's index order.
// Merging per-shard dictionaries in shard order reproduces a sequential Collect.
func (d *Dictionary) Merge(other *Dictionary) error {
	for i, k := range other.keys {
		if _, ok := d.index[k]; ok {
			continue
		}
		if d.frozen {
			return fmt.Errorf("Merge: %w", ErrFrozen)
		}
		d.index[k] = len(d.keys)
		d.keys = append(d.keys, k)
		d.names = append(d.names, other.names[i])
	}
	for k, v := range other.stats {
		d.stats[k] += v
	}

	return nil
}

// Freeze makes the dictionary read-only.
func (d *Dictionary) Freeze() { d.frozen = true }

// Frozen reports whether Freeze was called.
func (d *Dictionary) Frozen() bool { return d.frozen }

// Len returns the number of indexed keys.
func (d *Dictionary) Len() int { return len(d.keys) }

// Index returns the index of f's key, or -1.
func (d *Dictionary) Index(f *core.Feature) int {
	if i, ok := d.index[f.Key()]; ok {
		return i
	}

	return -1
}

// Key returns the key at index i.
func (d *Dictionary) Key(i int) core.Key { return d.keys[i] }

// Name returns the feature name recorded for index i.
func (d *Dictionary) Name(i int) string { return d.names[i] }

// Stats returns how many collected features fell in each boundary kind,
// counting repeats.
func (d *Dictionary) Stats() map[core.Kind]int {
	out := make(map[core.Kind]int, len(d.stats))
	for k, v := range d.stats {
		out[k] = v
	}

	return out
}

type entry struct {
	Index    int    `yaml:"index"`
	Name     string `yaml:"name"`
	core.Key `yaml:",inline"`
}

type dictFile struct {
	Features []entry `yaml:"features"`
}

// Write stores the dictionary as YAML.
func (d *Dictionary) Write(w io.Writer) error {
	file := dictFile{Features: make([]entry, len(d.keys))}
	for i, k := range d.keys {
		file.Features[i] = entry{Index: i, Name: d.names[i], Key: k}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return enc.Close()
}

// Read loads a dictionary written by Write. The result is frozen.
func Read(r io.Reader) (*Dictionary, error) {
	var file dictFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("Read: %w", err)
	}
	d := NewDictionary()
	d.keys = make([]core.Key, len(file.Features))
	d.names = make([]string, len(file.Features))
	seen := make([]bool, len(file.Features))
	for _, e := range file.Features {
		if e.Index < 0 || e.Index >= len(file.Features) || seen[e.Index] {
			return nil, fmt.Errorf("Read: index %d of %d: %w", e.Index, len(file.Features), ErrCorruptDictionary)
		}
		if _, dup := d.index[e.Key]; dup {
			return nil, fmt.Errorf("Read: duplicate key %+v: %w", e.Key, ErrCorruptDictionary)
		}
		seen[e.Index] = true
		d.index[e.Key] = e.Index
		d.keys[e.Index] = e.Key
		d.names[e.Index] = e.Name
	}
	d.Freeze()

	return d, nil
}
