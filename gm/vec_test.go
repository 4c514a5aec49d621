package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual Vec) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, 1e-9, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, 1e-9, "y of %s", actual)
}

func TestVec_Arithmetic(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 3, Y: -4}

	require.Equal(t, Vec{X: 4, Y: -2}, a.Add(b))
	require.Equal(t, Vec{X: -2, Y: 6}, a.Sub(b))
	require.Equal(t, Vec{X: 2, Y: 4}, a.Mul(2))
	require.Equal(t, Vec{X: 3, Y: -8}, a.MulEach(b))
	require.Equal(t, Vec{X: 3, Y: -2}, b.DivEach(Vec{X: 1, Y: 2}))

	require.Equal(t, -5.0, a.Dot(b))
	require.Equal(t, -10.0, a.Cross(b))
	require.Equal(t, 5.0, b.Length())
	require.Equal(t, 25.0, b.LengthSqr())
	require.Equal(t, 5.0, VecZero.DistanceTo(b))
}

func TestVec_IntegerVectors(t *testing.T) {
	v := VecOf[int32](3, 4)
	require.Equal(t, int32(5), v.Length())
	require.Equal(t, IVec{X: -4, Y: 3}, v.Perpendicular())
}

func TestVec_Rotated(t *testing.T) {
	v := Vec{X: 3, Y: -1.5}

	requireVecInDelta(t, v, v.Rotated(0))
	requireVecInDelta(t, v, v.Rotated(DegToRad(360)))
	requireVecInDelta(t, Vec{X: 1.5, Y: 3}, v.Rotated(DegToRad(90)))
	requireVecInDelta(t, v.Perpendicular(), v.Rotated(math.Pi/2))
}

func TestVec_Normalized(t *testing.T) {
	n := Vec{X: 3, Y: 4}.Normalized()
	requireVecInDelta(t, Vec{X: 0.6, Y: 0.8}, n)

	_, err := VecZero.TryNormalized()
	require.ErrorIs(t, err, ErrDegenerateVector)

	require.Panics(t, func() {
		VecZero.Normalized()
	})
}

func TestVec_Project(t *testing.T) {
	p, err := Vec{X: 2, Y: 3}.Project(Vec{X: 10, Y: 0})
	require.NoError(t, err)
	require.Equal(t, Vec{X: 2, Y: 0}, p)

	_, err = Vec{X: 2, Y: 3}.Project(VecZero)
	require.ErrorIs(t, err, ErrDegenerateVector)
}

func TestVec_Angles(t *testing.T) {
	require.InDelta(t, math.Pi/2, float64(Vec{Y: 1}.Angle()), 1e-9)
	require.InDelta(t, math.Pi/2, float64(Vec{X: 1}.AngleTo(Vec{Y: 2})), 1e-9)
	require.InDelta(t, -math.Pi/2, float64(Vec{Y: 2}.AngleTo(Vec{X: 1})), 1e-9)
	require.InDelta(t, 0.0, Vec{X: 1}.AngleCos(Vec{Y: 5}), 1e-9)
	require.InDelta(t, math.Pi/4, float64(AngleBetweenPoints(VecOne, Vec{X: 2, Y: 2})), 1e-9)
}

func TestSignedAngle(t *testing.T) {
	// counter-clockwise from a to c around the vertex
	angle := SignedAngle(Vec{X: 1}, VecZero, Vec{Y: 1})
	require.InDelta(t, math.Pi/2, float64(angle), 1e-9)

	angle = SignedAngle(Vec{Y: 1}, VecZero, Vec{X: 1})
	require.InDelta(t, -math.Pi/2, float64(angle), 1e-9)

	// degenerate rays do not produce NaN
	angle = SignedAngle(VecZero, VecZero, Vec{X: 1})
	require.Equal(t, Rad(0), angle)
}

func TestVec_String(t *testing.T) {
	require.Equal(t, "vec(x=1, y=2.5)", Vec{X: 1, Y: 2.5}.String())
}
