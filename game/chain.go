package game

import "math"

// Segment is one recorded head position, tagged with its creation order.
type Segment struct {
	P  Point
	ID uint64
}

// Chain is the snake body: an ordered history of past head positions,
// head first. It retains more raw samples than rendered segments because
// rendered spacing exceeds one tick's travel; the render pass resamples.
type Chain struct {
	segments []Segment
	nextID   uint64
}

// NewChain creates a chain of n samples trailing away from start against
// the given heading, one speed-step apart.
func NewChain(start Point, heading, speed float64, n int) *Chain {
	if n < 1 {
		n = 1
	}
	c := &Chain{segments: make([]Segment, n)}
	dx := math.Cos(heading) * speed
	dy := math.Sin(heading) * speed
	// The tail is the oldest sample, so creation order runs tail to head.
	for i := 0; i < n; i++ {
		c.segments[i] = Segment{
			P:  Point{X: start.X - dx*float64(i), Y: start.Y - dy*float64(i)},
			ID: uint64(n - 1 - i),
		}
	}
	c.nextID = uint64(n)
	return c
}

// Head returns the current head position.
func (c *Chain) Head() Point {
	return c.segments[0].P
}

// Len returns the number of retained raw samples.
func (c *Chain) Len() int {
	return len(c.segments)
}

// NextHead computes where the head lands this tick without committing it,
// so the collision engine can classify the move first.
func (c *Chain) NextHead(heading, speed float64) Point {
	h := c.Head()
	return Point{
		X: h.X + math.Cos(heading)*speed,
		Y: h.Y + math.Sin(heading)*speed,
	}
}

// Commit prepends head as the new first sample. With grew set the tail is
// kept as-is (net growth); otherwise the history is trimmed from the tail
// down to maxSamples. Trimming never removes mid-sequence samples.
func (c *Chain) Commit(head Point, grew bool, maxSamples int) {
	c.segments = append(c.segments, Segment{})
	copy(c.segments[1:], c.segments)
	c.segments[0] = Segment{P: head, ID: c.nextID}
	c.nextID++

	if grew {
		return
	}
	if maxSamples < 1 {
		maxSamples = 1
	}
	if len(c.segments) > maxSamples {
		c.segments = c.segments[:maxSamples]
	}
}

// SelfHit reports whether head is within radius of any sample whose arc
// distance behind the head exceeds skipArc. The exclusion window keeps the
// neck from registering as a collision.
func (c *Chain) SelfHit(head Point, radius, skipArc float64) bool {
	arc := 0.0
	for i := 1; i < len(c.segments); i++ {
		arc += c.segments[i-1].P.DistanceTo(c.segments[i].P)
		if arc <= skipArc {
			continue
		}
		if head.DistanceTo(c.segments[i].P) < radius {
			return true
		}
	}
	return false
}

// Resample walks the history and emits points spaced by spacing pixels of
// accumulated travel, at most target points, reusing dst to avoid per-frame
// allocation. The head is always the first emitted point. A short history
// yields fewer points, never an error.
func (c *Chain) Resample(dst []Point, spacing float64, target int) []Point {
	dst = dst[:0]
	if len(c.segments) == 0 || target < 1 {
		return dst
	}
	dst = append(dst, c.segments[0].P)

	acc := 0.0
	for i := 1; i < len(c.segments) && len(dst) < target; i++ {
		acc += c.segments[i-1].P.DistanceTo(c.segments[i].P)
		if acc >= spacing {
			dst = append(dst, c.segments[i].P)
			acc = 0
		}
	}
	return dst
}
