package shape

import (
	"math"

	"github.com/oliverbestmann/shapes/gm"
)

// CollisionResult stores the result of a collision check between two polygons.
type CollisionResult struct {
	// Are the polygons currently intersecting?
	Intersects bool

	// Will the polygons intersect when the first one moves by the velocity
	// passed to CollisionMoving? Equal to Intersects for Collision.
	WillIntersect bool

	// The translation to apply to the first polygon to push the polygons apart.
	// Zero if the polygons will not intersect.
	MinimumTranslationVector gm.Vec
}

// Collision checks two polygons for intersection using the separating axis theorem.
// The result is only exact for convex polygons. If one of the polygons is empty,
// no collision is possible and the zero CollisionResult is returned.
//
// Zero-length edges define no axis. If neither polygon has an edge of non-zero
// length, e.g. two single points, no axis separates them and Intersects is true
// regardless of their distance.
func Collision(a, b Polygon) CollisionResult {
	return CollisionMoving(a, b, gm.VecZero)
}

// Collide checks this polygon against the other one, see Collision.
func (p Polygon) Collide(other Polygon) CollisionResult {
	return Collision(p, other)
}

// CollisionMoving checks two polygons for intersection and additionally checks
// if they will intersect once polygon a moves by velocity.
//
// The minimum translation vector is computed for the swept projection of a
// and points from b towards a.
func CollisionMoving(a, b Polygon, velocity gm.Vec) CollisionResult {
	if len(a) == 0 || len(b) == 0 {
		return CollisionResult{}
	}

	result := CollisionResult{
		Intersects:    true,
		WillIntersect: true,
	}

	centerOffset := a.Center().Sub(b.Center())

	minIntervalDistance := math.Inf(1)
	var translationAxis gm.Vec

	for _, edge := range edgesOf(a, b) {
		// find the axis perpendicular to the current edge
		axis, err := edge.Perpendicular().TryNormalized()
		if err != nil {
			// duplicate vertices do not define an axis
			continue
		}

		intervalA := a.Project(axis)
		intervalB := b.Project(axis)

		if IntervalDistance(intervalA, intervalB) > 0 {
			result.Intersects = false
		}

		// extend the projection of a by the movement along the axis
		velocityProjection := axis.Dot(velocity)
		if velocityProjection < 0 {
			intervalA.Min += velocityProjection
		} else {
			intervalA.Max += velocityProjection
		}

		distance := IntervalDistance(intervalA, intervalB)
		if distance > 0 {
			result.WillIntersect = false
		}

		if !result.Intersects && !result.WillIntersect {
			break
		}

		distance = math.Abs(distance)
		if distance < minIntervalDistance {
			minIntervalDistance = distance
			translationAxis = axis

			if centerOffset.Dot(translationAxis) < 0 {
				translationAxis = translationAxis.Mul(-1)
			}
		}
	}

	if result.WillIntersect && !math.IsInf(minIntervalDistance, 1) {
		result.MinimumTranslationVector = translationAxis.Mul(minIntervalDistance)
	}

	return result
}

// edgesOf returns the edge vectors of a followed by the edge vectors of b.
func edgesOf(a, b Polygon) []gm.Vec {
	edges := make([]gm.Vec, 0, len(a)+len(b))

	for _, polygon := range [2]Polygon{a, b} {
		for _, edge := range polygon.Edges() {
			edges = append(edges, edge)
		}
	}

	return edges
}
