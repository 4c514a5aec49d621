package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalDistance(t *testing.T) {
	t.Run("overlap", func(t *testing.T) {
		d := IntervalDistance(Interval{Min: 0, Max: 5}, Interval{Min: 3, Max: 8})
		require.Less(t, d, 0.0)
		require.Equal(t, -2.0, d)
	})

	t.Run("separated", func(t *testing.T) {
		d := IntervalDistance(Interval{Min: 0, Max: 5}, Interval{Min: 6, Max: 8})
		require.Equal(t, 1.0, d)

		// order of the arguments does not matter
		d = IntervalDistance(Interval{Min: 6, Max: 8}, Interval{Min: 0, Max: 5})
		require.Equal(t, 1.0, d)
	})

	t.Run("contained", func(t *testing.T) {
		d := IntervalDistance(Interval{Min: 0, Max: 10}, Interval{Min: 2, Max: 3})
		require.Equal(t, -3.0, d)
	})

	t.Run("touching", func(t *testing.T) {
		d := IntervalDistance(Interval{Min: 0, Max: 5}, Interval{Min: 5, Max: 8})
		require.False(t, math.IsNaN(d))
		require.Equal(t, 0.0, d)
	})

	t.Run("identical degenerate", func(t *testing.T) {
		d := IntervalDistance(Interval{Min: 1, Max: 1}, Interval{Min: 1, Max: 1})
		require.False(t, math.IsNaN(d))
		require.Equal(t, 0.0, d)
	})
}

func TestInterval_DistanceTo(t *testing.T) {
	a := Interval{Min: -1, Max: 1}
	b := Interval{Min: 4, Max: 6}

	require.Equal(t, IntervalDistance(a, b), a.DistanceTo(b))
	require.Equal(t, 2.0, a.Length())
	require.Equal(t, "Interval(min=-1, max=1)", a.String())
}
