// Package builder assembles labeled corpora for tests, benchmarks, examples
// and the CLI's synthetic mode: deterministic, option-driven construction of
// inputs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildCorpus:       resolve options, run constructors in order.
//     – Constructor:       one corpus mutation (add sequences, add candidates).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     RNG, token scheme, vocabulary, segment length cap.
//   - Token schemes (TokenFn implementations):
//     – DecimalTokenFn:    "0","1",…
//     – LetterTokenFn:     spreadsheet-style "A","Z","AA",…
//     – PrefixTokenFn(p):  p+"0", p+"1",…
//   - Constructors:
//     – Segments:          one gold sequence from explicit segments.
//     – Labels:            one gold sequence from per-token labels.
//     – Unlabeled:         one sequence without gold labels.
//     – RandomSegmentation: seeded random gold sequences.
//     – Candidates / GoldCandidates / RandomCandidates: candidate segments.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same corpus.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name, for errors.Is.
package builder
