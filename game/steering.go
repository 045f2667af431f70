package game

import (
	"math"
	"math/rand"
)

// Steer computes the next heading from the current one. With a target the
// heading turns toward it along the shorter arc, clamped to cfg.TurnRate
// per tick. Without a target the heading mostly holds, with an occasional
// bounded jitter so the snake stays visibly alive while unguided.
//
// Pure apart from rng; the caller owns the heading scalar.
func Steer(heading float64, head Point, target *Point, cfg Config, rng *rand.Rand) float64 {
	if target == nil {
		if rng != nil && rng.Float64() < cfg.WanderChance {
			jitter := (rng.Float64()*2 - 1) * cfg.WanderMaxTurn
			return NormalizeAngle(heading + jitter)
		}
		return heading
	}

	desired := angleTo(head, *target)
	return NormalizeAngle(RotateToward(heading, desired, cfg.TurnRate))
}

func angleTo(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
