package interferometer

import (
	"math"

	"github.com/meghashyamc/interferometer/geometry"
)

// Particle is a discrete unit of light travelling at constant velocity between
// interactions. It moves from normal to semiparticle to resultant, never back.
type Particle struct {
	ID        int // beam slot, index into the pattern
	Position  geometry.Vector
	Z         float64 // display offset, always zero in the physics
	Velocity  geometry.Vector
	Semi      bool
	Resultant bool
	Traveled  float64
	Emission  int // tick that emitted the particle
	Weight    int

	moved int // last tick the particle was advanced, zero before the first
}

// splittable: a normal particle heading into the splitter from the engine side.
func (p *Particle) splittable() bool {
	return !p.Semi && !p.Resultant && p.Velocity.X >= 0 && p.Velocity.Y >= 0
}

// returning: a semiparticle coming back to the splitter from one of the mirrors.
func (p *Particle) returning() bool {
	return p.Semi && !p.Resultant && (p.Velocity.X < 0 || p.Velocity.Y > 0)
}

func (p *Particle) advance(precision int) {
	from := p.Position
	p.Position = from.Add(p.Velocity).Round(precision)
	p.Traveled = geometry.Round(p.Traveled+geometry.Distance(from, p.Position), precision)
}

func (p *Particle) child(velocity geometry.Vector, precision int) *Particle {
	c := *p
	c.Velocity = velocity.Round(precision)
	c.Semi = true
	return &c
}

// Split duplicates a particle at the splitter into two semiparticles: one keeps the
// original velocity, the other turns 90° clockwise.
func Split(p *Particle, precision int) (*Particle, *Particle) {
	straight := p.child(p.Velocity, precision)
	turned := p.child(geometry.Vector{X: p.Velocity.Y, Y: -p.Velocity.X}, precision)
	return straight, turned
}

// upward returns the velocity a recombined particle leaves the splitter with.
func upward(v geometry.Vector) geometry.Vector {
	return geometry.Vector{X: 0, Y: math.Max(math.Abs(v.X), math.Abs(v.Y))}
}

// combinedWeight sums the weights of the contributors, counting each emission once.
func combinedWeight(parts []*Particle) int {
	seen := make(map[int]struct{}, len(parts))
	weight := 0
	for _, p := range parts {
		if _, ok := seen[p.Emission]; ok {
			continue
		}
		seen[p.Emission] = struct{}{}
		weight += p.Weight
	}
	return weight
}
