package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dynbuf/buffer"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.1, 3})
	require.NoError(t, err)
	require.InDelta(t, 0.1, d, 1e-15)
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	require.Error(t, err)
}

func TestMaxAbsDiffNaN(t *testing.T) {
	nan := math.NaN()

	d, err := MaxAbsDiff([]float64{nan, 1}, []float64{nan, 1})
	require.NoError(t, err)
	require.Zero(t, d)

	d, err = MaxAbsDiff([]float64{nan}, []float64{0})
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
}

func TestRequireBufferNearlyEqual(t *testing.T) {
	b, err := buffer.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	RequireBufferNearlyEqual(t, b, []float64{1, 2, 3 + 1e-13}, 1e-12)
}
