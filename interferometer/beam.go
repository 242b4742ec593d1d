package interferometer

import (
	"github.com/meghashyamc/interferometer/geometry"
)

// Beam describes one firing of the laser engine: Count particles stacked along Y,
// Spacing apart and centred on Origin.
type Beam struct {
	Origin    geometry.Vector
	Count     int
	Spacing   float64
	Velocity  geometry.Vector
	Precision int
}

// Emit fires the whole beam at once, tagging every particle with the given tick.
func (b Beam) Emit(tick int) []*Particle {
	if b.Count < 1 {
		return nil
	}
	out := make([]*Particle, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		out = append(out, b.particle(i, tick))
	}
	return out
}

// EmitWave fires a single particle whose slot sweeps the beam over successive calls,
// forwards on even passes and backwards on odd ones.
func (b Beam) EmitWave(order int) []*Particle {
	if b.Count < 1 || order < 0 {
		return nil
	}
	return []*Particle{b.particle(WaveSlot(order, b.Count), order)}
}

// WaveSlot is the slot fired by EmitWave for the given order.
func WaveSlot(order, n int) int {
	slot := order % n
	if (order/n)%2 == 1 {
		slot = n - 1 - slot
	}
	return slot
}

// SlotY is the Y coordinate of slot i.
func (b Beam) SlotY(i int) float64 {
	start := b.Origin.Y
	if b.Count%2 != 0 {
		start -= b.Spacing * float64(b.Count/2)
	} else {
		start += float64(1-b.Count) * b.Spacing / 2
	}
	return geometry.Round(start+float64(i)*b.Spacing, b.Precision)
}

func (b Beam) particle(i, tick int) *Particle {
	return &Particle{
		ID:       i,
		Position: geometry.Vector{X: geometry.Round(b.Origin.X, b.Precision), Y: b.SlotY(i)},
		Velocity: b.Velocity.Round(b.Precision),
		Emission: tick,
		Weight:   1,
	}
}
