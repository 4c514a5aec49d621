package shape

import (
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/shapes/gm"
	"github.com/stretchr/testify/require"
)

func square(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// randomConvexPolygon returns the convex hull of a few random points around center.
func randomConvexPolygon(rng *rand.Rand, center gm.Vec, radius float64) Polygon {
	for {
		points := make(Polygon, gm.RandomInt(rng, 3, 12))
		for idx := range points {
			points[idx] = center.Add(gm.RandomPointInCircle(rng, radius))
		}

		hull := points.ConvexHull()
		if len(hull) >= 3 {
			return hull
		}
	}
}

func requireVecInDelta(t *testing.T, expected, actual gm.Vec) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, 1e-9, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, 1e-9, "y of %s", actual)
}

func requirePolygonInDelta(t *testing.T, expected, actual Polygon) {
	t.Helper()
	require.Len(t, actual, len(expected))

	for idx := range expected {
		requireVecInDelta(t, expected[idx], actual[idx])
	}
}
