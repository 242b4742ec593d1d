package interferometer

import (
	"testing"

	"github.com/meghashyamc/interferometer/geometry"
)

func testBeam(n int) Beam {
	return Beam{
		Origin:    geometry.Vector{X: -35, Y: 0},
		Count:     n,
		Spacing:   0.5,
		Velocity:  geometry.Vector{X: 0.25},
		Precision: 3,
	}
}

func TestEmitStacksAroundOrigin(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{"odd", 5, []float64{-1, -0.5, 0, 0.5, 1}},
		{"even", 4, []float64{-0.75, -0.25, 0.25, 0.75}},
		{"single", 1, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := testBeam(tt.n).Emit(9)
			if len(ps) != len(tt.want) {
				t.Fatalf("Emit returned %d particles, want %d", len(ps), len(tt.want))
			}
			for i, p := range ps {
				if p.ID != i {
					t.Errorf("particle %d has id %d", i, p.ID)
				}
				if p.Position != (geometry.Vector{X: -35, Y: tt.want[i]}) {
					t.Errorf("particle %d at %+v, want y=%v", i, p.Position, tt.want[i])
				}
				if p.Velocity != (geometry.Vector{X: 0.25}) {
					t.Errorf("particle %d velocity %+v", i, p.Velocity)
				}
				if p.Emission != 9 || p.Weight != 1 || p.Semi || p.Resultant {
					t.Errorf("particle %d not a fresh particle: %+v", i, p)
				}
			}
		})
	}
}

func TestEmitEmptyBeam(t *testing.T) {
	if ps := testBeam(0).Emit(1); len(ps) != 0 {
		t.Fatalf("Emit with n=0 returned %d particles", len(ps))
	}
	if ps := testBeam(-3).EmitWave(1); len(ps) != 0 {
		t.Fatalf("EmitWave with n<0 returned %d particles", len(ps))
	}
}

func TestWaveSlot(t *testing.T) {
	want := []int{0, 1, 2, 3, 4, 4, 3, 2, 1, 0, 0, 1}
	for order, slot := range want {
		if got := WaveSlot(order, 5); got != slot {
			t.Errorf("WaveSlot(%d, 5) = %d, want %d", order, got, slot)
		}
	}
}

func TestEmitWaveSingleParticle(t *testing.T) {
	// 7/5 = 1 is odd, so the sweep runs backwards: slot 4 - 7%5 = 2.
	ps := testBeam(5).EmitWave(7)
	if len(ps) != 1 {
		t.Fatalf("EmitWave returned %d particles, want 1", len(ps))
	}
	p := ps[0]
	if p.ID != 2 {
		t.Errorf("EmitWave(7) fired slot %d, want 2", p.ID)
	}
	if p.Position != (geometry.Vector{X: -35, Y: 0}) {
		t.Errorf("EmitWave(7) particle at %+v", p.Position)
	}
	if p.Emission != 7 {
		t.Errorf("emission tag = %d, want 7", p.Emission)
	}
}

func TestSplit(t *testing.T) {
	p := &Particle{ID: 3, Position: geometry.Vector{X: 0.5, Y: 0.5}, Velocity: geometry.Vector{X: 0.25}, Emission: 4, Weight: 1}

	a, b := Split(p, 3)
	for _, c := range []*Particle{a, b} {
		if c.ID != p.ID || c.Position != p.Position || c.Emission != p.Emission {
			t.Errorf("child does not inherit from parent: %+v", c)
		}
		if !c.Semi || c.Resultant {
			t.Errorf("child should be a semiparticle: %+v", c)
		}
	}
	if a.Velocity != (geometry.Vector{X: 0.25}) {
		t.Errorf("straight child velocity %+v", a.Velocity)
	}
	if b.Velocity != (geometry.Vector{X: 0, Y: -0.25}) {
		t.Errorf("turned child velocity %+v", b.Velocity)
	}
	if p.Semi {
		t.Error("Split modified the parent")
	}
}

func TestCombinedWeight(t *testing.T) {
	parts := []*Particle{
		{Emission: 1, Weight: 1},
		{Emission: 2, Weight: 3},
		{Emission: 1, Weight: 1},
	}
	if got := combinedWeight(parts); got != 4 {
		t.Fatalf("combinedWeight = %d, want 4", got)
	}
}
