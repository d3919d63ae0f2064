package tasks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dynbuf/buffer"
	"github.com/cwbudde/algo-dynbuf/internal/testutil"
)

const tolerance = 1e-12

func newBuffer(t *testing.T, values ...float64) *buffer.Buffer {
	t.Helper()
	b, err := buffer.FromSlice(values)
	require.NoError(t, err)
	return b
}

func TestAggregateAppendsSumAndAverage(t *testing.T) {
	b := newBuffer(t, 1, -2, 3, -4)
	s, err := Aggregate(b)
	require.NoError(t, err)
	require.InDelta(t, -2.0, s.Sum, tolerance)
	require.InDelta(t, -0.5, s.Average, tolerance)
	testutil.RequireBufferNearlyEqual(t, b, []float64{1, -2, 3, -4, -2, -0.5}, tolerance)
}

func TestAggregateEmpty(t *testing.T) {
	b := newBuffer(t)
	s, err := Aggregate(b)
	require.NoError(t, err)
	require.Zero(t, s.Sum)
	require.True(t, math.IsNaN(s.Average))
	require.Equal(t, 2, b.Len())
}

func TestAggregateFullBuffer(t *testing.T) {
	b, err := buffer.FromSlice([]float64{1, 2, 3}, buffer.WithMinCapacity(3), buffer.WithMaxCapacity(4))
	require.NoError(t, err)
	_, err = Aggregate(b)
	require.ErrorIs(t, err, buffer.ErrCapacityExceeded)
	testutil.RequireBufferNearlyEqual(t, b, []float64{1, 2, 3}, tolerance)
	require.Equal(t, 3, b.Cap())
}

func TestAggregateRoomForOnlyOne(t *testing.T) {
	b, err := buffer.FromSlice([]float64{1, -2, 3}, buffer.WithMinCapacity(3), buffer.WithMaxCapacity(4))
	require.NoError(t, err)
	_, err = Aggregate(b)
	require.ErrorIs(t, err, buffer.ErrCapacityExceeded)
	require.Equal(t, "1.000 -2.000 3.000", b.String())
}

func TestDelimiter(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"first and last", []float64{1, -2, 3, -4}, -12},
		{"single negative", []float64{5, -1.5, 2}, -6},
		{"repeated negative", []float64{-3, 1, 3, -3, 3}, -12},
		{"opposite extremes", []float64{-0.5, 2}, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scratch, err := buffer.New(0)
			require.NoError(t, err)
			d, err := Delimiter(newBuffer(t, tc.values...), scratch)
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, tolerance)
		})
	}
}

func TestDelimiterIgnoresNegativeZero(t *testing.T) {
	scratch, err := buffer.New(0)
	require.NoError(t, err)
	b := newBuffer(t, math.Copysign(0, -1), 4)
	_, err = Delimiter(b, scratch)
	require.ErrorIs(t, err, ErrNoNegatives)
}

func TestDelimiterNoNegatives(t *testing.T) {
	scratch, err := buffer.New(0)
	require.NoError(t, err)
	_, err = Delimiter(newBuffer(t, 1, 2, 3), scratch)
	require.ErrorIs(t, err, ErrNoNegatives)
	require.ErrorIs(t, err, buffer.ErrIndexOutOfRange)
}

func TestScaleEveryThird(t *testing.T) {
	b := newBuffer(t, 1, 2, 3, 4, 5, 6, 7)
	ScaleEveryThird(b, -2)
	testutil.RequireBufferNearlyEqual(t, b, []float64{1, 2, -6, 4, 5, -12, 7}, tolerance)

	empty := newBuffer(t)
	ScaleEveryThird(empty, 10)
	require.Zero(t, empty.Len())
}

func TestRunScenario(t *testing.T) {
	b := newBuffer(t, 1, -2, 3, -4)

	var stages []Stage
	var snapshots []string
	r := NewRunner(WithObserver(func(s Stage, b *buffer.Buffer) {
		stages = append(stages, s)
		snapshots = append(snapshots, b.String())
	}))

	rep, err := r.Run(b)
	require.NoError(t, err)
	require.InDelta(t, -2.0, rep.Summary.Sum, tolerance)
	require.InDelta(t, -0.5, rep.Summary.Average, tolerance)
	require.InDelta(t, -5.0, rep.Delimiter, tolerance)
	testutil.RequireBufferNearlyEqual(t, b, []float64{1, -2, -15, -4, -2, 2.5}, tolerance)

	require.Equal(t, []Stage{StageInput, StageAggregated, StageScaled}, stages)
	require.Equal(t, []string{
		"1.000 -2.000 3.000 -4.000",
		"1.000 -2.000 3.000 -4.000 -2.000 -0.500",
		"1.000 -2.000 -15.000 -4.000 -2.000 2.500",
	}, snapshots)
}

func TestRunUsesPool(t *testing.T) {
	pool, err := buffer.NewPool()
	require.NoError(t, err)
	r := NewRunner(WithPool(pool))

	for i := 0; i < 3; i++ {
		b := newBuffer(t, -1, 2, 3)
		_, err := r.Run(b)
		require.NoError(t, err)
	}

	// A buffer with other limits still runs with its own scratch buffer.
	b, err := buffer.FromSlice([]float64{-1, 2, 3}, buffer.WithMaxCapacity(50))
	require.NoError(t, err)
	_, err = r.Run(b)
	require.NoError(t, err)
}

func TestRunWithoutNegatives(t *testing.T) {
	b := newBuffer(t, 1, 2)
	var stages []Stage
	_, err := NewRunner(WithObserver(func(s Stage, _ *buffer.Buffer) {
		stages = append(stages, s)
	})).Run(b)
	require.ErrorIs(t, err, ErrNoNegatives)
	require.Equal(t, []Stage{StageInput, StageAggregated}, stages)
	testutil.RequireBufferNearlyEqual(t, b, []float64{1, 2, 3, 1.5}, tolerance)
}

func TestStageString(t *testing.T) {
	require.Equal(t, "input", StageInput.String())
	require.Equal(t, "scaled", StageScaled.String())
	require.Equal(t, "Stage(9)", Stage(9).String())
}
