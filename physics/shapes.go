package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shapes/gm"
	"github.com/oliverbestmann/shapes/shape"
)

// ToShape is implemented by all shape descriptions that can be turned
// into a chipmunk collision shape attached to the given body.
type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape
}

type CircleShape struct {
	Center gm.Vec
	Radius float64
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, s.Radius, cpVecOf(s.Center))
}

// SegmentShape is a line segment from A to B, rounded by Radius.
type SegmentShape struct {
	A, B   gm.Vec
	Radius float64
}

func (s SegmentShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, cpVecOf(s.A), cpVecOf(s.B), s.Radius)
}

// PolygonShape is a convex polygon. Non convex point lists are replaced by their convex hull.
type PolygonShape struct {
	Points []gm.Vec
	Radius float64
}

// PolygonShapeOf wraps the given polygon.
func PolygonShapeOf(polygon shape.Polygon) PolygonShape {
	return PolygonShape{Points: polygon}
}

// ShapeOfPolygon picks a shape for the convex hull of the polygon: a PolygonShape
// for three or more hull points, a SegmentShape for two distinct points.
// Returns false if the hull has no extent.
func ShapeOfPolygon(polygon shape.Polygon) (ToShape, bool) {
	hull := polygon.ConvexHull()

	switch {
	case len(hull) >= 3:
		return PolygonShape{Points: hull}, true
	case len(hull) == 2 && hull[0] != hull[1]:
		return SegmentShape{A: hull[0], B: hull[1]}, true
	default:
		return nil, false
	}
}

func (s PolygonShape) MakeShape(body *cp.Body) *cp.Shape {
	hull := shape.Polygon(s.Points).ConvexHull()
	if len(hull) < 3 {
		panic("invalid hull")
	}

	// the hull is already in counter-clockwise order as required by chipmunk
	points := make([]cp.Vector, len(hull))
	for idx := range hull {
		points[idx] = cpVecOf(hull[idx])
	}

	return cp.NewPolyShapeRaw(body, len(points), points, s.Radius)
}

func cpVecOf(vec gm.Vec) cp.Vector {
	return cp.Vector(vec)
}
