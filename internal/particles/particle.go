package particles

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a drifting point mass. Radius and Opacity are fixed at creation.
type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec // units per frame
	Radius  float64
	Opacity float64
}

// newParticle places a particle uniformly within w×h.
func newParticle(rng *rand.Rand, w, h float64, o Options) Particle {
	return Particle{
		Pos: r2.Vec{X: rng.Float64() * w, Y: rng.Float64() * h},
		Vel: r2.Vec{
			X: (rng.Float64()*2 - 1) * o.MaxSpeed,
			Y: (rng.Float64()*2 - 1) * o.MaxSpeed,
		},
		Radius:  o.MinRadius + rng.Float64()*(o.MaxRadius-o.MinRadius),
		Opacity: o.MinOpacity + rng.Float64()*(o.MaxOpacity-o.MinOpacity),
	}
}

// Step advances the particle by one frame and reflects its velocity on any
// axis whose post-update coordinate left [0, w] or [0, h]. Position is never
// clamped, so a particle may overshoot by one frame's displacement.
func (p *Particle) Step(w, h float64) {
	p.Pos = r2.Add(p.Pos, p.Vel)
	if p.Pos.X < 0 || p.Pos.X > w {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > h {
		p.Vel.Y = -p.Vel.Y
	}
}

// LinkAlpha returns the alpha of the connecting line between two particles d
// units apart: maxAlpha at d=0 falling linearly to 0 at maxDist and beyond.
func LinkAlpha(d, maxDist, maxAlpha float64) float64 {
	if d >= maxDist {
		return 0
	}
	return maxAlpha * (1 - d/maxDist)
}

// EachLink calls fn once for every unordered pair i<j closer than maxDist.
// Every pair is tested; the cost is quadratic in len(ps).
func EachLink(ps []Particle, maxDist, maxAlpha float64, fn func(i, j int, alpha float64)) {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := r2.Norm(r2.Sub(ps[i].Pos, ps[j].Pos))
			if d < maxDist {
				fn(i, j, LinkAlpha(d, maxDist, maxAlpha))
			}
		}
	}
}
