package game

import "math/rand"

// Outcome classifies a newly computed head position. Exactly one outcome
// resolves per tick; classification is purely geometric and cannot fail.
type Outcome int

const (
	// OutcomeNone commits the head and trims the tail per growth policy.
	OutcomeNone Outcome = iota

	// OutcomeAte awards score, respawns food and skips tail trimming.
	OutcomeAte

	// OutcomeCrashed ends the run: the head left the play field or hit
	// the body.
	OutcomeCrashed
)

// Classify resolves the head position computed for this tick against the
// play-field boundary, the chain's own body and the food.
//
// Boundary policy is hard: exiting the play-field rectangle crashes on
// that exact frame. There is no wrap-around.
func Classify(head Point, ch *Chain, food Point, width, height float64, cfg Config) Outcome {
	if head.X < 0 || head.Y < 0 || head.X > width || head.Y > height {
		return OutcomeCrashed
	}
	if ch.SelfHit(head, cfg.SelfCollideRadius, cfg.NeckExclusion) {
		return OutcomeCrashed
	}
	if head.DistanceTo(food) < cfg.HeadRadius+cfg.FoodRadius {
		return OutcomeAte
	}
	return OutcomeNone
}

// SpawnFood picks a uniformly random food position inset by cfg.FoodMargin
// from the current play-field edges.
func SpawnFood(width, height float64, cfg Config, rng *rand.Rand) Point {
	return Point{
		X: cfg.FoodMargin + rng.Float64()*(width-2*cfg.FoodMargin),
		Y: cfg.FoodMargin + rng.Float64()*(height-2*cfg.FoodMargin),
	}
}
