package gm

import (
	"fmt"
	"image"
	"math"
)

type Scalar interface {
	~float32 | ~float64 | ~int32
}

type Vec32 = VecType[float32]
type Vec64 = VecType[float64]

type Vec = Vec64

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

type IVec = VecType[int32]

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

// VecSplat returns a vector with both components set to the given value.
func VecSplat[S Scalar](value S) VecType[S] {
	return VecType[S]{X: value, Y: value}
}

type VecType[S Scalar] struct {
	X, Y S
}

func (v VecType[S]) XY() (S, S) {
	return v.X, v.Y
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Dot returns the scalar product of both vectors. It is positive if both
// vectors point roughly in the same direction, negative if they point in
// opposite directions and zero if they are orthogonal.
func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of both vectors.
func (v VecType[S]) Cross(other VecType[S]) S {
	return v.X*other.Y - v.Y*other.X
}

// Perpendicular returns the vector rotated counter-clockwise by 90°.
func (v VecType[S]) Perpendicular() VecType[S] {
	return VecType[S]{X: -v.Y, Y: v.X}
}

// Rotated rotates the vector by the given angle, using the same
// orientation as RotationMat.
func (v VecType[S]) Rotated(angle Rad) VecType[S] {
	sin, cos := math.Sincos(float64(angle))
	x, y := float64(v.X), float64(v.Y)

	return VecType[S]{
		X: S(cos*x - sin*y),
		Y: S(sin*x + cos*y),
	}
}

// Angle returns the direction of the vector, measured from the positive x axis.
func (v VecType[S]) Angle() Rad {
	return Rad(math.Atan2(float64(v.Y), float64(v.X)))
}

// AngleTo returns the signed angle required to rotate v onto other.
func (v VecType[S]) AngleTo(other VecType[S]) Rad {
	return Rad(math.Atan2(float64(v.Cross(other)), float64(v.Dot(other))))
}

// AngleCos returns the cosine of the angle between both vectors.
// The result is NaN if one of the vectors has zero length.
func (v VecType[S]) AngleCos(other VecType[S]) float64 {
	return float64(v.Dot(other)) / (float64(v.Length()) * float64(other.Length()))
}

// Project returns the vector projection of v onto the given vector.
func (v VecType[S]) Project(onto VecType[S]) (VecType[S], error) {
	lengthSqr := onto.LengthSqr()
	if lengthSqr == 0 {
		return VecType[S]{}, ErrDegenerateVector
	}

	return onto.Mul(v.Dot(onto) / lengthSqr), nil
}

// VecTo returns the vector pointing from v to other.
func (v VecType[S]) VecTo(other VecType[S]) VecType[S] {
	return other.Sub(v)
}

func (v VecType[S]) DistanceTo(other VecType[S]) S {
	return v.VecTo(other).Length()
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

// Normalized returns a vector with the same direction and a length of one.
// This method panics if the vector has zero length, use TryNormalized
// if that can happen.
func (v VecType[S]) Normalized() VecType[S] {
	n, err := v.TryNormalized()
	if err != nil {
		panic(err)
	}

	return n
}

// TryNormalized returns a unit length vector with the same direction,
// or ErrDegenerateVector if the vector has zero length.
func (v VecType[S]) TryNormalized() (VecType[S], error) {
	length := v.Length()
	if length == 0 {
		return VecType[S]{}, ErrDegenerateVector
	}

	v.X /= length
	v.Y /= length
	return v, nil
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v VecType[S]) ToImagePoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// SignedAngle returns the angle at vertex between the rays to a and c.
// The sign of the result follows the orientation of the triangle (a, vertex, c).
func SignedAngle(a, vertex, c Vec) Rad {
	ba := a.Sub(vertex)
	bc := c.Sub(vertex)
	return Rad(math.Atan2(ba.Cross(bc), ba.Dot(bc)))
}

// AngleBetweenPoints returns the direction of the line going from one
// point to the other.
func AngleBetweenPoints(from, to Vec) Rad {
	return from.VecTo(to).Angle()
}
