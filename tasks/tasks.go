package tasks

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dynbuf/buffer"
)

// ErrNoNegatives is returned by Delimiter when the buffer holds no negative
// element to derive the delimiter from.
var ErrNoNegatives = errors.New("tasks: no negative elements")

// Summary holds the aggregate appended by Aggregate.
type Summary struct {
	Sum     float64
	Average float64 // NaN for an empty buffer
}

// Sum returns the sum of the live elements of b.
func Sum(b *buffer.Buffer) float64 {
	var sum float64
	for v := range b.Values() {
		sum += v
	}
	return sum
}

// Aggregate appends the sum and then the average of the current elements
// to b. The average is taken over the elements present before the append.
// When b cannot take both values it is left unchanged.
func Aggregate(b *buffer.Buffer) (Summary, error) {
	if limit := b.Limits().Max; b.Len()+2 > limit {
		return Summary{}, fmt.Errorf("tasks: append aggregate: %w: len %d, max %d",
			buffer.ErrCapacityExceeded, b.Len(), limit)
	}

	sum := Sum(b)
	s := Summary{
		Sum:     sum,
		Average: sum / float64(b.Len()),
	}
	if err := b.PushBack(s.Sum); err != nil {
		return s, fmt.Errorf("tasks: append sum: %w", err)
	}
	if err := b.PushBack(s.Average); err != nil {
		_ = b.PopBack()
		return s, fmt.Errorf("tasks: append average: %w", err)
	}
	return s, nil
}

// Delimiter returns twice the sum of the first and last negative elements
// of b, or 1 when that sum is zero. The negatives are gathered into scratch,
// which must be empty and is left holding them.
func Delimiter(b, scratch *buffer.Buffer) (float64, error) {
	for v := range b.Values() {
		if v < 0 {
			if err := scratch.PushBack(v); err != nil {
				return 0, fmt.Errorf("tasks: collect negatives: %w", err)
			}
		}
	}

	first, err := scratch.Get(0)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoNegatives, err)
	}
	last, err := scratch.Get(scratch.Len() - 1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoNegatives, err)
	}

	d := (first + last) * 2
	if d == 0 {
		return 1, nil
	}
	return d, nil
}

// ScaleEveryThird multiplies the elements at positions 3, 6, 9, ...
// (1-based) by factor.
func ScaleEveryThird(b *buffer.Buffer, factor float64) {
	elems := b.Elements()
	if len(elems) == 0 {
		return
	}
	coeffs := make([]float64, len(elems))
	for i := range coeffs {
		coeffs[i] = 1
		if (i+1)%3 == 0 {
			coeffs[i] = factor
		}
	}
	vecmath.MulBlockInPlace(elems, coeffs)
}
