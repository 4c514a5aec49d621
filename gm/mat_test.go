package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMatInDelta(t *testing.T, expected, actual Mat) {
	t.Helper()
	requireVecInDelta(t, expected.XAxis, actual.XAxis)
	requireVecInDelta(t, expected.YAxis, actual.YAxis)
}

func TestMat_Inverse(t *testing.T) {
	m := RotationMat(2)
	require.NotEqual(t, m, m.Inverse())
	requireMatInDelta(t, m, m.Inverse().Inverse())
}

func TestMat_InverseIdentity(t *testing.T) {
	m := IdentityMat()
	require.Equal(t, m, m.Inverse())
}

func TestMat_TryInverseSingular(t *testing.T) {
	_, ok := ScaleMat(Vec{X: 1, Y: 0}).TryInverse()
	require.False(t, ok)

	require.Panics(t, func() {
		ScaleMat(VecZero).Inverse()
	})
}

func TestMat_Mul(t *testing.T) {
	m := RotationMat(math.Pi).Mul(RotationMat(math.Pi / 2))
	requireMatInDelta(t, RotationMat(math.Pi*1.5), m)
}

func TestMat_Reflection(t *testing.T) {
	r := ReflectionMat(true, false).Transform(Vec{X: 2, Y: 3})
	require.Equal(t, Vec{X: -2, Y: 3}, r)

	r = ReflectionMat(true, true).Transform(Vec{X: 2, Y: 3})
	require.Equal(t, Vec{X: -2, Y: -3}, r)
}

func TestMat_Transform(t *testing.T) {
	t.Run("rotate 180°", func(t *testing.T) {
		m := RotationMat(math.Pi)

		r := m.Transform(Vec{X: 1, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 0, Y: 1})
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)
	})

	t.Run("rotate 90°", func(t *testing.T) {
		m := RotationMat(math.Pi / 2)

		r := m.Transform(Vec{X: 1, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 1, Y: 0})
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 0, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 0, r.Y, 1e-6)
	})
}
