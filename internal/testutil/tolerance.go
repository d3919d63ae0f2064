// Package testutil holds assertions shared by the package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-dynbuf/buffer"
)

// RequireBufferNearlyEqual fails t if b does not hold exactly len(want) live
// elements or if any element differs from want by more than eps. NaN matches
// NaN.
func RequireBufferNearlyEqual(t testing.TB, b *buffer.Buffer, want []float64, eps float64) {
	t.Helper()
	if b.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d (got %v)", b.Len(), len(want), b)
	}
	if d, err := MaxAbsDiff(b.Elements(), want); err != nil || d > eps {
		t.Fatalf("buffer = [%v], want %v (max diff %v > eps %v)", b, want, d, eps)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// A position where exactly one side is NaN counts as an infinite difference.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		an, bn := math.IsNaN(a[i]), math.IsNaN(b[i])
		switch {
		case an && bn:
			continue
		case an || bn:
			return math.Inf(1), nil
		}
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
