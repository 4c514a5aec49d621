package shape

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/shapes/gm"
)

// containsEpsilon is the minimum absolute winding angle of a point inside a polygon.
// Points inside accumulate ±2π, points outside accumulate roughly zero.
const containsEpsilon = 1e-6

// Contains returns true if the polygon contains the given point. It sums up the
// signed angles the edges of the polygon subtend at the point, which works for
// convex and concave polygons in either orientation.
//
// A polygon needs at least two vertices, otherwise ErrInvalidInput is returned.
func (p Polygon) Contains(point gm.Vec) (bool, error) {
	if len(p) < 2 {
		return false, fmt.Errorf("point containment needs at least 2 vertices, got %d: %w", len(p), ErrInvalidInput)
	}

	last := len(p) - 1

	// angle between the last and the first vertex
	totalAngle := gm.SignedAngle(p[last], point, p[0])

	// add the angles of all other pairs of vertices
	for idx := 0; idx < last; idx++ {
		totalAngle += gm.SignedAngle(p[idx], point, p[idx+1])
	}

	return math.Abs(float64(totalAngle)) > containsEpsilon, nil
}

// Contains returns true if the polygon contains the given point, see Polygon.Contains.
func Contains(polygon Polygon, point gm.Vec) (bool, error) {
	return polygon.Contains(point)
}
