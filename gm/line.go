package gm

// LineIntersection returns the intersection point of the infinite line through a1 and b1
// with the infinite line through a2 and b2. The second return value is false
// if the lines are parallel.
func LineIntersection(a1, b1, a2, b2 Vec) (Vec, bool) {
	// both lines in the form A*x + B*y = C
	lineA1 := b1.Y - a1.Y
	lineB1 := a1.X - b1.X
	lineC1 := lineA1*a1.X + lineB1*a1.Y

	lineA2 := b2.Y - a2.Y
	lineB2 := a2.X - b2.X
	lineC2 := lineA2*a2.X + lineB2*a2.Y

	delta := lineA1*lineB2 - lineA2*lineB1
	if delta == 0 {
		return Vec{}, false
	}

	point := Vec{
		X: (lineB2*lineC1 - lineB1*lineC2) / delta,
		Y: (lineA1*lineC2 - lineA2*lineC1) / delta,
	}

	return point, true
}
