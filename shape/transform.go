package shape

import (
	"fmt"

	"github.com/oliverbestmann/shapes/gm"
)

// defaultFront is the orientation of an unrotated shape.
var defaultFront = gm.Vec{X: 0, Y: -10}

// Shape is a polygon in local space that is placed in the world at Origin
// and rotated around it. Shape is immutable: WithRotation and WithOrigin
// return updated copies with all derived values recomputed.
//
// Use NewShape or ShapeOf to create a Shape, the zero value has no vertex matrix.
type Shape struct {
	// Origin of the shape in world space.
	Origin gm.Vec

	// vertices in local space, one vertex per column
	local gm.Matrix

	// local vertices rotated by rotation
	transformed gm.Matrix

	rotation gm.Rad
	front    gm.Vec
	right    gm.Vec
}

// NewShape creates a new unrotated shape. The local matrix must store one vertex
// per column, with the x coordinates in the first and the y coordinates in the second row.
func NewShape(local gm.Matrix, origin gm.Vec) (Shape, error) {
	if local.Rows() < 2 {
		return Shape{}, fmt.Errorf("shape needs a vertex matrix with 2 rows, got %d: %w",
			local.Rows(), gm.ErrDimensionMismatch)
	}

	s := Shape{
		Origin: origin,
		local:  local.Clone(),
	}

	return s.WithRotation(0), nil
}

// ShapeOf creates a new unrotated shape from a polygon in local space.
func ShapeOf(local Polygon, origin gm.Vec) Shape {
	s, _ := NewShape(gm.VertexMatrix(local), origin)
	return s
}

// Rotation returns the current rotation, wrapped into [0, 2π)
func (s Shape) Rotation() gm.Rad {
	return s.rotation
}

// Front returns a vector pointing in the direction the shape is facing.
func (s Shape) Front() gm.Vec {
	return s.front
}

// Right returns the vector perpendicular to Front.
func (s Shape) Right() gm.Vec {
	return s.right
}

// Local returns the vertices in local space.
func (s Shape) Local() Polygon {
	return s.local.Vertices()
}

// WithRotation returns a copy of the shape rotated by the given angle.
func (s Shape) WithRotation(angle gm.Rad) Shape {
	s.rotation = angle.Positive()
	s.front = defaultFront.Rotated(s.rotation)
	s.right = s.front.Perpendicular()

	// the local matrix always has two rows, rotating can not fail
	transformed, err := s.local.Rotated(s.rotation)
	if err != nil {
		panic(err)
	}

	s.transformed = transformed
	return s
}

// WithOrigin returns a copy of the shape moved to the given origin.
func (s Shape) WithOrigin(origin gm.Vec) Shape {
	s.Origin = origin
	return s
}

// Polygon returns the rotated vertices of the shape in world space.
func (s Shape) Polygon() Polygon {
	return Polygon(s.transformed.Vertices()).Translated(s.Origin)
}

// Collide checks both shapes for intersection, see Collision.
func (s Shape) Collide(other Shape) CollisionResult {
	return Collision(s.Polygon(), other.Polygon())
}

// Contains checks if the world space point is inside the shape.
func (s Shape) Contains(point gm.Vec) (bool, error) {
	return s.Polygon().Contains(point)
}
