package gm

import (
	"fmt"
	"math"
)

type Vec3 = Vec3Type[float64]
type Vec3F = Vec3Type[float32]
type IVec3 = Vec3Type[int32]

// Vec3Type is a point or vector in three dimensional space.
type Vec3Type[S Scalar] struct {
	X, Y, Z S
}

func Vec3Of[S Scalar](x, y, z S) Vec3Type[S] {
	return Vec3Type[S]{X: x, Y: y, Z: z}
}

func (v Vec3Type[S]) Add(other Vec3Type[S]) Vec3Type[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3Type[S]) Sub(other Vec3Type[S]) Vec3Type[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// AddScalar adds the value to each component.
func (v Vec3Type[S]) AddScalar(value S) Vec3Type[S] {
	v.X += value
	v.Y += value
	v.Z += value
	return v
}

// SubScalar subtracts the value from each component.
func (v Vec3Type[S]) SubScalar(value S) Vec3Type[S] {
	v.X -= value
	v.Y -= value
	v.Z -= value
	return v
}

func (v Vec3Type[S]) Mul(scalar S) Vec3Type[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// Div divides each component by the given value. For integer vectors
// this truncates towards zero.
func (v Vec3Type[S]) Div(scalar S) Vec3Type[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v Vec3Type[S]) Dot(other Vec3Type[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3Type[S]) Cross(other Vec3Type[S]) Vec3Type[S] {
	return Vec3Type[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3Type[S]) Length() S {
	return S(math.Sqrt(float64(v.Dot(v))))
}

// XY drops the z component.
func (v Vec3Type[S]) XY() VecType[S] {
	return VecType[S]{X: v.X, Y: v.Y}
}

func (v Vec3Type[S]) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
