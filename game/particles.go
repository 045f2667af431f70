package game

import (
	"math"
	"math/rand"
)

// Particle is a cosmetic burst fragment. Life runs from 1 to 0; position
// advances by velocity each tick until life reaches zero.
type Particle struct {
	pos  Point
	vel  Point
	life float64
}

// ParticleSystem owns the transient food-burst particles. It is owned by
// the render pass and never feeds back into game logic.
type ParticleSystem struct {
	particles []Particle
	decay     float64
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system with the given per-tick decay.
func NewParticleSystem(decay float64, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 128),
		decay:     decay,
		rng:       rng,
	}
}

// Burst emits n particles radially from at with randomized speed.
func (ps *ParticleSystem) Burst(at Point, n int) {
	for i := 0; i < n; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 1.0 + ps.rng.Float64()*3.0
		ps.particles = append(ps.particles, Particle{
			pos:  at,
			vel:  Point{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			life: 1.0,
		})
	}
}

// Update advances positions and decays life, compacting out dead particles
// in place.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.pos.X += p.vel.X
		p.pos.Y += p.vel.Y
		p.life -= ps.decay
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Len returns the live particle count.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops all particles. Used on game restart.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
