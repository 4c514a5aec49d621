package shape

import (
	"fmt"
	"math"
)

// Interval is the projection of a polygon onto an axis. Min is never greater than Max.
type Interval struct {
	Min, Max float64
}

// Length returns the extent of the interval.
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// DistanceTo returns the signed gap between both intervals,
// see IntervalDistance.
func (i Interval) DistanceTo(other Interval) float64 {
	return IntervalDistance(i, other)
}

func (i Interval) String() string {
	return fmt.Sprintf("Interval(min=%v, max=%v)", i.Min, i.Max)
}

// IntervalDistance returns the distance between both intervals.
// On overlap, the returned distance is negative. Touching intervals
// have a distance of zero.
func IntervalDistance(a, b Interval) float64 {
	d1 := b.Min - a.Max
	d2 := a.Min - b.Max

	// the sign is taken from the gap after the interval that starts first
	gap := d2
	if a.Min < b.Min {
		gap = d1
	}

	switch {
	case gap > 0:
		return min(math.Abs(d1), math.Abs(d2))
	case gap < 0:
		return -min(math.Abs(d1), math.Abs(d2))
	default:
		return 0
	}
}
