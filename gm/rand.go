package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](rng *rand.Rand, min, max S) S {
	return S(rng.Float64()*(float64(max)-float64(min))) + min
}

// RandomInt returns a random integer uniformly sampled from [min, max).
func RandomInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}

	return min + rng.IntN(max-min)
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle(rng *rand.Rand) Rad {
	return Rad(RandomIn(rng, 0, 2*math.Pi))
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec[S ~float32 | ~float64](rng *rand.Rand) VecType[S] {
	for {
		v := VecType[S]{
			X: RandomIn[S](rng, -1, 1),
			Y: RandomIn[S](rng, -1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomPointInCircle returns a random point within a circle of the given radius
// around the origin. Angle and distance are sampled uniformly, points are therefore
// denser towards the center.
func RandomPointInCircle(rng *rand.Rand, radius float64) Vec {
	angle := RandomAngle(rng)
	distance := RandomIn(rng, 0, radius)
	return Vec{X: distance}.Rotated(angle)
}
