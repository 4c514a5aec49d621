package gm

// PointOnCircle returns the point on the circumference of the circle at the given angle.
func PointOnCircle(origin Vec, radius float64, angle Rad) Vec {
	return origin.Add(Vec{X: radius}.Rotated(angle))
}

// PointOnCircleTowards returns the point where the ray from the circles origin
// towards target crosses the circumference.
func PointOnCircleTowards(origin Vec, radius float64, target Vec) (Vec, error) {
	direction, err := origin.VecTo(target).TryNormalized()
	if err != nil {
		return Vec{}, err
	}

	return origin.Add(direction.Mul(radius)), nil
}
