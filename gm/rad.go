package gm

import "math"

type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// Positive returns the angle wrapped into the range [0, 2π)
func (r Rad) Positive() Rad {
	angle := math.Mod(float64(r), 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	// tiny negative angles round up to exactly 2π
	if angle >= 2*math.Pi {
		angle = 0
	}

	return Rad(angle)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}

func RadToDeg(rad Rad) float64 {
	return rad.Degrees()
}

// WrapDegrees wraps an angle given in degrees into the range [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	if deg >= 360 {
		deg = 0
	}

	return deg
}
