package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shapes/gm"
)

// Contact describes the overlap of two shapes as reported by chipmunk.
type Contact struct {
	// Normal points from the first towards the second shape.
	Normal gm.Vec

	// Depth is the largest penetration depth of all contact points.
	Depth float64

	// Points are the contact points on the surface of the first shape.
	Points []gm.Vec
}

// staticShape creates the shape on a static body placed at the origin, so the
// shapes coordinates are used as world coordinates.
func staticShape(s ToShape) *cp.Shape {
	body := cp.NewStaticBody()
	shape := s.MakeShape(body)

	// update the cached world space vertices of the shape
	shape.CacheBB()

	return shape
}

// Overlap checks if both shapes overlap using chipmunks narrow phase collision.
func Overlap(a, b ToShape) (Contact, bool) {
	set := cp.ShapesCollide(staticShape(a), staticShape(b))
	if set.Count == 0 {
		return Contact{}, false
	}

	contact := Contact{Normal: gm.Vec(set.Normal)}
	for idx := 0; idx < set.Count; idx++ {
		point := set.Points[idx]
		contact.Points = append(contact.Points, gm.Vec(point.PointA))
		contact.Depth = max(contact.Depth, -point.Distance)
	}

	return contact, true
}

// ContainsPoint checks if the point lies within (or on the surface of) the shape.
func ContainsPoint(s ToShape, point gm.Vec) bool {
	info := staticShape(s).PointQuery(cpVecOf(point))
	return info.Distance <= 0
}
