package gm

import "math"

// AngledVec is a vector of fixed length anchored at Origin, that can only
// be rotated within the range [Min, Max]. Rotation zero points along the
// positive x axis.
//
// AngledVec is immutable, WithRotation returns an updated copy.
type AngledVec struct {
	Origin   Vec
	Length   float64
	Min, Max Rad

	rotation Rad
}

// NewAngledVec creates a new AngledVec with rotation set to the lower bound
// of the allowed range. Both bounds are wrapped into [0, 2π). An upper bound of
// a full circle is kept as is, so the range [0, 2π] allows any rotation.
func NewAngledVec(min, max Rad, length float64, origin Vec) AngledVec {
	v := AngledVec{
		Origin: origin,
		Length: length,
		Min:    min.Positive(),
		Max:    wrapUpperBound(max),
	}

	return v.WithRotation(v.Min)
}

func wrapUpperBound(max Rad) Rad {
	if max == fullCircle {
		return max
	}

	return max.Positive()
}

const fullCircle = Rad(2 * math.Pi)

// Rotation returns the current, already clamped rotation.
func (v AngledVec) Rotation() Rad {
	return v.rotation
}

// WithRotation returns a copy with the rotation wrapped into [0, 2π)
// and clamped to the allowed range.
func (v AngledVec) WithRotation(angle Rad) AngledVec {
	angle = angle.Positive()
	v.rotation = min(max(angle, v.Min), v.Max)
	return v
}

// Vec returns the vector relative to Origin.
func (v AngledVec) Vec() Vec {
	return Vec{X: v.Length}.Rotated(v.rotation)
}

// WorldPoint returns the tip of the vector in world space.
func (v AngledVec) WorldPoint() Vec {
	return v.Origin.Add(v.Vec())
}
