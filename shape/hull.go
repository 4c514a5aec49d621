package shape

import (
	"cmp"
	"slices"

	"github.com/oliverbestmann/shapes/gm"
)

// cross3 returns the cross product of the vectors OA and OB.
func cross3(o, a, b gm.Vec) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// ConvexHull returns the convex hull of the vertices using Andrew's monotone chain algorithm.
// The result is ordered counter-clockwise (in a y-up coordinate system), collinear
// points are dropped. Polygons with less than three vertices are returned as a copy.
func (p Polygon) ConvexHull() Polygon {
	if len(p) < 3 {
		return p.Clone()
	}

	points := p.Clone()
	slices.SortFunc(points, func(a, b gm.Vec) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}

		return cmp.Compare(a.Y, b.Y)
	})

	var lower Polygon
	for _, point := range points {
		for len(lower) >= 2 && cross3(lower[len(lower)-2], lower[len(lower)-1], point) <= 0 {
			lower = lower[:len(lower)-1]
		}

		lower = append(lower, point)
	}

	var upper Polygon
	for idx := len(points) - 1; idx >= 0; idx-- {
		point := points[idx]
		for len(upper) >= 2 && cross3(upper[len(upper)-2], upper[len(upper)-1], point) <= 0 {
			upper = upper[:len(upper)-1]
		}

		upper = append(upper, point)
	}

	// last point of each half is the first point of the other one
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
