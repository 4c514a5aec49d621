package shape

import (
	"iter"
	"math"

	"github.com/oliverbestmann/shapes/gm"
)

// Polygon is an ordered list of vertices. The order defines the edges
// of the polygon: edge i goes from vertex i to vertex (i+1) mod n.
//
// Polygon is treated as an immutable value, all methods return new polygons.
type Polygon []gm.Vec

// FromRect returns the four corners of the rectangle as a polygon.
func FromRect(r gm.Rect) Polygon {
	corners := r.Corners()
	return Polygon(corners[:]).Clone()
}

// RegularPolygon returns a polygon with n vertices evenly distributed
// on a circle around center, counter-clockwise starting at the given angle.
func RegularPolygon(center gm.Vec, radius float64, n int, start gm.Rad) Polygon {
	polygon := make(Polygon, n)
	for idx := range polygon {
		angle := start + gm.Rad(float64(idx)/float64(n)*2*math.Pi)
		polygon[idx] = gm.PointOnCircle(center, radius, angle)
	}

	return polygon
}

func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}

	return append(Polygon(nil), p...)
}

// Center returns the average of all vertices.
func (p Polygon) Center() gm.Vec {
	var total gm.Vec
	for _, point := range p {
		total = total.Add(point)
	}

	return total.Mul(1 / float64(len(p)))
}

// Bounds returns the axis aligned bounding box of the polygon.
func (p Polygon) Bounds() gm.Rect {
	if len(p) == 0 {
		return gm.Rect{}
	}

	bounds := gm.Rect{Min: p[0], Max: p[0]}
	for _, point := range p[1:] {
		bounds = bounds.Extend(point)
	}

	return bounds
}

// Edges yields each edge of the polygon as start vertex and edge vector.
// The last edge wraps around to the first vertex.
func (p Polygon) Edges() iter.Seq2[gm.Vec, gm.Vec] {
	return func(yield func(gm.Vec, gm.Vec) bool) {
		for idx, start := range p {
			end := p[(idx+1)%len(p)]
			if !yield(start, end.Sub(start)) {
				return
			}
		}
	}
}

// Project returns the interval of this polygon projected onto the given axis.
// The polygon must have at least one vertex.
func (p Polygon) Project(axis gm.Vec) Interval {
	d := axis.Dot(p[0])
	interval := Interval{Min: d, Max: d}

	for _, point := range p[1:] {
		d = point.Dot(axis)
		interval.Min = min(interval.Min, d)
		interval.Max = max(interval.Max, d)
	}

	return interval
}

// Project returns the interval of the polygon projected onto the given axis.
func Project(polygon Polygon, axis gm.Vec) Interval {
	return polygon.Project(axis)
}

func (p Polygon) Translated(offset gm.Vec) Polygon {
	result := make(Polygon, len(p))
	for idx, point := range p {
		result[idx] = point.Add(offset)
	}

	return result
}

// Scaled scales the distance of each vertex to the given point by factor.
func (p Polygon) Scaled(around gm.Vec, factor float64) Polygon {
	result := make(Polygon, len(p))
	for idx, point := range p {
		result[idx] = around.Add(point.Sub(around).Mul(factor))
	}

	return result
}

// Reflected mirrors the x coordinates (reflectX) and/or the y coordinates (reflectY)
// of all vertices.
func (p Polygon) Reflected(reflectX, reflectY bool) Polygon {
	return p.Transformed(gm.Affine{Matrix: gm.ReflectionMat(reflectX, reflectY)})
}

// Transformed applies the affine transformation to each vertex.
func (p Polygon) Transformed(tr gm.Affine) Polygon {
	result := make(Polygon, len(p))
	for idx, point := range p {
		result[idx] = tr.Transform(point)
	}

	return result
}

// SignedArea returns the area of the polygon. The result is positive if
// the vertices are ordered counter-clockwise in a y-up coordinate system.
func (p Polygon) SignedArea() float64 {
	var area float64
	for start, edge := range p.Edges() {
		area += start.Cross(start.Add(edge))
	}

	return area / 2
}

func (p Polygon) Area() float64 {
	return max(p.SignedArea(), -p.SignedArea())
}

// IsConvex returns true if all corners of the polygon turn in the same direction.
// Collinear vertices are allowed.
func (p Polygon) IsConvex() bool {
	if len(p) < 3 {
		return false
	}

	var sign float64
	for idx, start := range p {
		edge := p[(idx+1)%len(p)].Sub(start)
		next := p[(idx+2)%len(p)].Sub(p[(idx+1)%len(p)])

		cross := edge.Cross(next)
		if cross == 0 {
			continue
		}

		if sign == 0 {
			sign = cross
			continue
		}

		if (cross > 0) != (sign > 0) {
			return false
		}
	}

	return sign != 0
}
