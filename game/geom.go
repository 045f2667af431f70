package game

import "math"

// Point is a position in screen-pixel space.
type Point struct {
	X, Y float64
}

// Add returns p offset by dx, dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NormalizeAngle maps an angle into (-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// RotateToward advances current toward target along the shorter arc,
// moving at most maxStep radians. If the remaining difference is within
// maxStep the result snaps to target exactly.
func RotateToward(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)

	step := diff
	if math.Abs(step) > maxStep {
		if step > 0 {
			step = maxStep
		} else {
			step = -maxStep
		}
	}

	return current + step
}
