package shape

import (
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/shapes/gm"
	"github.com/stretchr/testify/require"
)

func TestPolygon_ConvexHull(t *testing.T) {
	points := Polygon{
		{X: 2, Y: 2},
		{X: 0, Y: 4},
		{X: 4, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 0},
		{X: 4, Y: 4},
		{X: 2, Y: 0},
	}

	hull := points.ConvexHull()
	require.Equal(t, square(0, 0, 4, 4), hull)

	// input order is kept
	require.Equal(t, gm.Vec{X: 2, Y: 2}, points[0])
}

func TestPolygon_ConvexHullSmall(t *testing.T) {
	require.Nil(t, Polygon(nil).ConvexHull())
	require.Equal(t, Polygon{{X: 1, Y: 2}}, Polygon{{X: 1, Y: 2}}.ConvexHull())
}

func TestPolygon_ConvexHullIsConvex(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))

	for range 100 {
		hull := randomConvexPolygon(rng, gm.VecZero, 10)
		require.True(t, hull.IsConvex())
		require.Greater(t, hull.SignedArea(), 0.0)
	}
}
