// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// impl_candidates.go — candidate-segment decorators.
//
// These constructors annotate every sequence built so far; place them after
// the constructors that add sequences.

package builder

// Candidates proposes every segment of length 1..maxLen in every sequence.
// O(total tokens × maxLen).
func Candidates(maxLen int) Constructor {
	return func(c *Corpus, _ builderConfig) error {
		if err := validateMin(MethodCandidates, maxLen, 1); err != nil {
			return err
		}
		for i, seq := range c.Sequences {
			for end := 0; end < seq.Len(); end++ {
				for start := max(0, end-maxLen+1); start <= end; start++ {
					if err := seq.AddCandidate(start, end); err != nil {
						return builderErrorf(MethodCandidates, ErrConstructFailed, "sequence %d: %v", i, err)
					}
				}
			}
		}

		return nil
	}
}

// GoldCandidates proposes each gold segment as a candidate.
func GoldCandidates() Constructor {
	return func(c *Corpus, _ builderConfig) error {
		for i, seq := range c.Sequences {
			for _, s := range seq.Segments() {
				if err := seq.AddCandidate(s.Start, s.End); err != nil {
					return builderErrorf(MethodCandidates, ErrConstructFailed, "sequence %d: %v", i, err)
				}
			}
		}

		return nil
	}
}

// RandomCandidates proposes each segment of length 1..maxLen independently
// with probability p. Requires an RNG unless p is 0 or 1.
func RandomCandidates(maxLen int, p float64) Constructor {
	return func(c *Corpus, cfg builderConfig) error {
		if err := validateMin(MethodRandomCandidates, maxLen, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomCandidates, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomCandidates, ErrNeedRandSource, "p=%f", p)
		}
		for i, seq := range c.Sequences {
			for end := 0; end < seq.Len(); end++ {
				for start := max(0, end-maxLen+1); start <= end; start++ {
					if !bernoulli(cfg, p) {
						continue
					}
					if err := seq.AddCandidate(start, end); err != nil {
						return builderErrorf(MethodRandomCandidates, ErrConstructFailed, "sequence %d: %v", i, err)
					}
				}
			}
		}

		return nil
	}
}

// bernoulli draws only for 0 < p < 1 so p ∈ {0,1} works without an RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
