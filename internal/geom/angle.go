package geom

import "math"

// Normalize maps any angle in degrees onto [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngleTo returns the bearing in degrees from p1 to p2. The result is in
// (-180, 180]; identical points give 0.
func AngleTo(p1, p2 Vec) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * 180 / math.Pi
}

// Diff returns the signed shortest rotation from current to target,
// in [-180, 180).
func Diff(current, target float64) float64 {
	return Normalize(target-current+180) - 180
}

// AngularDistance returns the unsigned size of the shortest rotation
// between a and b, in [0, 180].
func AngularDistance(a, b float64) float64 {
	return math.Abs(Diff(a, b))
}

// Steer turns current toward target by at most maxTurn degrees along the
// shorter arc. When the remaining gap is smaller than maxTurn the heading
// snaps onto target. The result is always in [0, 360).
func Steer(current, target, maxTurn float64) float64 {
	diff := Diff(current, target)
	switch {
	case math.Abs(diff) < maxTurn:
		current = target
	case diff > 0:
		current += maxTurn
	default:
		current -= maxTurn
	}
	return Normalize(current)
}
