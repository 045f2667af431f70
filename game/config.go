package game

import "math"

// Config holds the gameplay tuning constants. Per-frame values assume
// ebiten's fixed 60 ticks per second.
type Config struct {
	// ScreenWidth is the initial window width in pixels.
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels.
	ScreenHeight int

	// Speed is the head travel distance per tick in pixels.
	Speed float64

	// TurnRate is the maximum heading change per tick in radians.
	TurnRate float64

	// WanderChance is the per-tick probability of a heading jitter while
	// no pointer signal is present.
	WanderChance float64

	// WanderMaxTurn bounds a single wander jitter in radians. Must stay
	// well below π so an unguided snake never reverses in place.
	WanderMaxTurn float64

	// HeadRadius is the collision radius of the head in pixels.
	HeadRadius float64

	// FoodRadius is the collision radius of the food in pixels.
	FoodRadius float64

	// FoodMargin is the inset from the play-field edges inside which
	// food may spawn, in pixels.
	FoodMargin float64

	// FoodValue is the score awarded per food eaten.
	FoodValue int

	// BaseSegments is the rendered chain length at score zero.
	BaseSegments int

	// GrowthPerFood is the number of rendered segments gained per food.
	GrowthPerFood int

	// SegmentSpacing is the travel distance between rendered segments
	// in pixels.
	SegmentSpacing float64

	// SelfCollideRadius is the distance below which the head collides
	// with its own body, in pixels.
	SelfCollideRadius float64

	// NeckExclusion is the arc length behind the head, in pixels, that
	// is exempt from self-collision. Without it a fresh chain would
	// collide with its own neck on the first frame.
	NeckExclusion float64

	// BurstParticles is the particle count spawned per food eaten.
	BurstParticles int

	// ParticleDecay is the per-tick life decrement of a particle.
	ParticleDecay float64

	// GridStep is the background grid spacing in pixels.
	GridStep float64

	// CommentaryEveryNFoods throttles eat commentary to every Nth food.
	CommentaryEveryNFoods int

	// PointerStaleAfterTicks is how many ticks a bridge sample stays
	// valid before it counts as signal loss.
	PointerStaleAfterTicks int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:            1024,
		ScreenHeight:           768,
		Speed:                  4.0,
		TurnRate:               0.18,
		WanderChance:           0.03,
		WanderMaxTurn:          0.9,
		HeadRadius:             12.0,
		FoodRadius:             12.0,
		FoodMargin:             40.0,
		FoodValue:              10,
		BaseSegments:           10,
		GrowthPerFood:          2,
		SegmentSpacing:         10.0,
		SelfCollideRadius:      10.0,
		NeckExclusion:          40.0,
		BurstParticles:         18,
		ParticleDecay:          0.03,
		GridStep:               48.0,
		CommentaryEveryNFoods:  3,
		PointerStaleAfterTicks: 12,
	}
}

// TargetSegments returns the rendered chain length for a score. It is a
// non-decreasing function of score.
func (c Config) TargetSegments(score int) int {
	return c.BaseSegments + score/c.FoodValue*c.GrowthPerFood
}

// HistoryBound returns the maximum raw samples the chain needs to retain
// to resample targetSegments rendered segments, plus slack so trimming
// never starves the render pass. The resampler consumes whole samples and
// only emits once a full spacing of travel has accumulated, so each
// rendered segment costs ceil(spacing/speed) samples, not the fractional
// ratio.
func (c Config) HistoryBound(targetSegments int) int {
	perSegment := int(math.Ceil(c.SegmentSpacing / c.Speed))
	return targetSegments*perSegment + int(c.NeckExclusion/c.Speed) + 4
}
