// SPDX-License-Identifier: MIT
// Package: segfeat/config

// Package config loads a segfeat model description.
//
// A model file is YAML:
//
//	labels: [O, PER, ORG]
//	max_memory: 4
//	word_cutoff: 0
//	windows:                 # replaces the default word/regex windows
//	  - {name: first, anchor: left, start: 0, end: 0, min_length: 2}
//	windowed:                # one extra per-label regex family each
//	  - {name: inner, anchor: middle, start: 1, end: -1}
//	patterns:                # replaces the default token shapes
//	  - {name: digits, expr: '[0-9]+'}
//	candidates: true
//
// After the file, an optional .env file and then the process environment
// override SEGFEAT_MAX_MEMORY, SEGFEAT_LOG_LEVEL, SEGFEAT_LOG_FORMAT and
// SEGFEAT_WORKERS. Variables already set in the environment win over the
// .env file.
package config
