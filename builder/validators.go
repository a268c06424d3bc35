// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// validators.go — parameter checks shared by constructors.
//
// Each returns a sentinel-wrapped error via builderErrorf when its
// precondition is violated, and nil otherwise. O(1) unless noted.

package builder

// validateMin ensures got ≥ min, reporting ErrBadSize otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateLabels ensures every label lies in [0, numLabels). O(len(labels)).
func validateLabels(method string, labels []int, numLabels int) error {
	for i, y := range labels {
		if y < 0 || y >= numLabels {
			return builderErrorf(method, ErrBadLabel, "label %d at %d, alphabet %d", y, i, numLabels)
		}
	}

	return nil
}
