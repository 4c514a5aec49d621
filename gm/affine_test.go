package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAffine_Transform(t *testing.T) {
	tr := IdentityAffine().Translate(Vec{X: 2.0, Y: 1.0})
	require.Equal(t, Vec{X: 12.0, Y: 11.0}, tr.Transform(Vec{X: 10.0, Y: 10.0}))

	// rotate by 90° first, then move by (in local space) (10, 0)
	tr = IdentityAffine().Rotate(DegToRad(90)).Translate(Vec{X: 10.0, Y: 0.0})
	res := tr.Transform(Vec{X: 1, Y: 0})
	require.InDelta(t, 0.0, res.X, 1e-9)
	require.InDelta(t, 11.0, res.Y, 1e-9)

	// translate vector by (10, 0) first, then rotate by 90°
	tr = IdentityAffine().Translate(Vec{X: 10.0, Y: 0.0}).Rotate(DegToRad(90))
	res = tr.Transform(Vec{X: 1, Y: 0})
	require.InDelta(t, 10.0, res.X, 1e-9)
	require.InDelta(t, 1.0, res.Y, 1e-9)

	// scale by 2 first, then move by local 5 (10 real)
	tr = IdentityAffine().Scale(VecSplat(2.0)).Translate(Vec{X: 5})
	res = tr.Transform(Vec{X: 10})
	require.InDelta(t, 30.0, res.X, 1e-9)
}

func TestAffine_TransformVecIgnoresTranslation(t *testing.T) {
	tr := IdentityAffine().Translate(Vec{X: 100, Y: 100}).Scale(VecSplat(2.0))
	require.Equal(t, Vec{X: 2, Y: 4}, tr.TransformVec(Vec{X: 1, Y: 2}))
}

func TestAffine_Inverse(t *testing.T) {
	tr := IdentityAffine().
		Translate(Vec{X: 3, Y: -7}).
		Rotate(DegToRad(33)).
		Scale(Vec{X: 2, Y: 0.5})

	point := Vec{X: 4, Y: 9}
	requireVecInDelta(t, point, tr.Inverse().Transform(tr.Transform(point)))

	_, ok := IdentityAffine().Scale(VecZero).TryInverse()
	require.False(t, ok)
}

func TestAffine_ToF32(t *testing.T) {
	tr := IdentityAffine().Translate(Vec{X: 5, Y: 6}).Scale(Vec{X: 2, Y: 3})

	aff := tr.ToF32()
	require.Equal(t, float32(2), aff[0])
	require.Equal(t, float32(0), aff[1])
	require.Equal(t, float32(5), aff[2])
	require.Equal(t, float32(0), aff[3])
	require.Equal(t, float32(3), aff[4])
	require.Equal(t, float32(6), aff[5])

	v := ToF32(Vec{X: 1.5, Y: -2})
	require.Equal(t, float32(1.5), v[0])
	require.Equal(t, float32(-2), v[1])
}
