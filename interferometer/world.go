package interferometer

import (
	"fmt"
	"math/rand"

	"github.com/meghashyamc/interferometer/geometry"
	"github.com/meghashyamc/interferometer/logger"
)

// Stats counts lifecycle events since the world was created.
type Stats struct {
	Emitted    int
	Split      int
	Recombined int
	Redirected int
	Reflected  int
	Absorbed   int
	Escaped    int
}

// ParticleView is what the presentation layer gets to see of a particle.
type ParticleView struct {
	ID        int
	Position  geometry.Vector
	Z         float64
	Visible   bool
	Semi      bool
	Resultant bool
}

// Snapshot is the state of the world at the end of a tick. Particles removed during
// the tick are listed once more with Visible set to false.
type Snapshot struct {
	Tick      int
	Particles []ParticleView
	Pattern   []int
}

// World owns the particle set, the optical elements and the interference pattern,
// and advances them one tick at a time. It is not safe for concurrent use.
type World struct {
	settings  Settings
	scene     Scene
	particles []*Particle
	added     []*Particle
	removed   map[*Particle]struct{}
	pattern   []int
	tick      int
	stats     Stats
	rand      *rand.Rand
	logger    logger.Logger
}

func NewWorld(settings Settings, scene Scene, rnd *rand.Rand, log logger.Logger) (*World, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = logger.NewNop()
	}

	w := &World{
		settings: settings,
		scene:    scene,
		removed:  make(map[*Particle]struct{}),
		pattern:  make([]int, settings.Particles),
		rand:     rnd,
		logger:   log,
	}

	w.emit()
	w.flush()

	w.logger.Info("world initialized",
		"mode", settings.Mode.String(),
		"splitter", settings.Splitter.String(),
		"pattern", settings.Pattern.String(),
		"particles", settings.Particles,
		"cap", settings.Cap)
	return w, nil
}

func (w *World) Settings() Settings { return w.settings }
func (w *World) Scene() Scene       { return w.scene }
func (w *World) TickCount() int     { return w.tick }
func (w *World) Stats() Stats       { return w.stats }

// Particles returns the active particles. The slice must not be modified.
func (w *World) Particles() []*Particle {
	return w.particles
}

// Pattern returns a copy of the interference pattern.
func (w *World) Pattern() []int {
	out := make([]int, len(w.pattern))
	copy(out, w.pattern)
	return out
}

// Beam is the beam the engine currently fires.
func (w *World) Beam() Beam {
	return Beam{
		Origin:    w.scene.BeamOrigin(),
		Count:     w.settings.Particles,
		Spacing:   w.settings.Spacing,
		Velocity:  geometry.Vector{X: w.settings.Speed},
		Precision: w.settings.Precision,
	}
}

// SetElementPosition moves one element along one axis, as requested by an external
// control. The new position takes effect on the next tick.
func (w *World) SetElementPosition(kind ElementKind, axis Axis, value float64) error {
	el, err := w.scene.Element(kind)
	if err != nil {
		return err
	}
	if err := el.SetPosition(axis, value); err != nil {
		return fmt.Errorf("failed to move %s: %w", kind, err)
	}
	w.logger.Info("element moved", "element", kind.String(), "position", el.Position)
	return nil
}

// Tick advances the world by one step: collisions, movement, emission and the
// deferred insertions and removals, in that order.
func (w *World) Tick() (Snapshot, error) {
	w.tick++

	if w.settings.Pattern == PatternReset {
		clear(w.pattern)
	}

	for _, p := range w.particles {
		if w.isRemoved(p) {
			continue
		}
		move, err := w.collide(p)
		if err != nil {
			return Snapshot{}, fmt.Errorf("tick %d: particle %d: %w", w.tick, p.ID, err)
		}
		if move {
			p.advance(w.settings.Precision)
			p.moved = w.tick
		}
	}

	w.emit()
	gone := w.flush()

	return w.snapshot(gone), nil
}

// collide applies the first interaction that matches p and reports whether p should
// still move this tick.
func (w *World) collide(p *Particle) (bool, error) {
	prec := w.settings.Precision
	pos := p.Position

	if w.scene.Splitter.Hits(pos, prec) {
		handled, move, err := w.crossSplitter(p)
		if err != nil || handled {
			return move, err
		}
	}
	if w.scene.MirrorRight.Hits(pos, prec) {
		return true, w.Bounce(p, w.scene.MirrorRight)
	}
	if w.scene.MirrorBottom.Hits(pos, prec) {
		return true, w.Bounce(p, w.scene.MirrorBottom)
	}
	if w.scene.Receptor.Hits(pos, prec) {
		w.Absorb(p)
		return false, nil
	}
	if w.scene.Outside(pos) {
		w.stats.Escaped++
		w.remove(p)
		return false, nil
	}
	return true, nil
}

func (w *World) crossSplitter(p *Particle) (handled, move bool, err error) {
	if w.settings.Splitter == SplitterProbabilistic {
		return w.coinFlip(p)
	}

	switch {
	case p.splittable():
		w.split(p)
		return true, false, nil
	case p.returning():
		w.Recombine(p)
		return true, false, nil
	}
	return false, false, nil
}

// coinFlip transmits or reflects p with equal odds. A particle transmitted straight
// back towards the engine is dropped.
func (w *World) coinFlip(p *Particle) (bool, bool, error) {
	if p.Resultant {
		return false, false, nil
	}
	if w.rand.Intn(2) == 1 {
		if p.Velocity.X < 0 && p.Velocity.Y == 0 {
			w.stats.Escaped++
			w.remove(p)
			return true, false, nil
		}
		p.Semi = true
		return true, true, nil
	}

	v, err := geometry.Reflect(p.Velocity, w.scene.Splitter.Angle, w.settings.Precision)
	if err != nil {
		return true, false, err
	}
	p.Velocity = v
	p.Semi = true
	w.stats.Reflected++
	return true, true, nil
}

func (w *World) split(p *Particle) {
	a, b := Split(p, w.settings.Precision)
	w.add(a, b)
	w.remove(p)
	w.stats.Split++
	w.logger.Debug("particle split", "id", p.ID, "position", p.Position, "tick", w.tick)
}

// Recombine merges p with every other semiparticle of the same slot that reaches the
// same point of the splitter this tick. Alone, p is sent upward as a resultant
// instead. It returns the particle that leaves the splitter.
func (w *World) Recombine(p *Particle) *Particle {
	matches := w.recombinable(p)
	if len(matches) < 2 {
		p.Velocity = upward(p.Velocity)
		p.Resultant = true
		w.stats.Redirected++
		w.logger.Debug("particle redirected", "id", p.ID, "position", p.Position, "tick", w.tick)
		return p
	}

	r := &Particle{
		ID:        p.ID,
		Position:  p.Position,
		Z:         p.Z,
		Velocity:  upward(p.Velocity),
		Semi:      true,
		Resultant: true,
		Emission:  p.Emission,
		Weight:    combinedWeight(matches),
	}
	for _, m := range matches {
		r.Traveled = max(r.Traveled, m.Traveled)
		r.Emission = min(r.Emission, m.Emission)
		w.remove(m)
	}
	w.add(r)
	w.stats.Recombined++
	w.logger.Debug("particles recombined", "id", p.ID, "position", p.Position, "contributors", len(matches), "weight", r.Weight)
	return r
}

// recombinable lists the live semiparticles, p included, that share p's slot and
// position and are heading back through the splitter. Particles that already moved
// this tick only arrive there on the next one.
func (w *World) recombinable(p *Particle) []*Particle {
	var out []*Particle
	for _, q := range w.particles {
		if w.isRemoved(q) || !q.returning() || (q.moved != 0 && q.moved == w.tick) {
			continue
		}
		if q.ID == p.ID && q.Position == p.Position {
			out = append(out, q)
		}
	}
	return out
}

// Bounce reflects p off a fully reflective wall.
func (w *World) Bounce(p *Particle, wall Element) error {
	v, err := geometry.ReflectOffWall(p.Velocity, wall.Angle, wall.Kind.Bottom(), w.settings.Precision)
	if err != nil {
		return fmt.Errorf("bounce off %s: %w", wall.Kind, err)
	}
	p.Velocity = v
	w.stats.Reflected++
	return nil
}

// Absorb records p on the receptor and schedules its removal.
func (w *World) Absorb(p *Particle) {
	w.pattern[p.ID] += p.Weight
	w.stats.Absorbed++
	w.remove(p)
}

// emit fires the next burst when it fits under the cap in full. Bursts are never
// truncated, so every slot is fired equally often.
func (w *World) emit() {
	beam := w.Beam()
	var fresh []*Particle
	if w.settings.Mode == ModeWave {
		fresh = beam.EmitWave(w.tick)
	} else {
		fresh = beam.Emit(w.tick)
	}
	if len(fresh) == 0 || w.load()+len(fresh)*w.splitFactor() > w.settings.Cap {
		return
	}
	w.add(fresh...)
	w.stats.Emitted += len(fresh)
}

// population is the number of particles that will be active once the pending
// insertions and removals are applied.
func (w *World) population() int {
	return len(w.particles) + len(w.added) - len(w.removed)
}

// load is the population the pending particles can grow into. A normal particle
// still ahead of a deterministic splitter counts twice, since it will split.
func (w *World) load() int {
	n := 0
	count := func(p *Particle) {
		if p.Semi || p.Resultant {
			n++
			return
		}
		n += w.splitFactor()
	}
	for _, p := range w.particles {
		if !w.isRemoved(p) {
			count(p)
		}
	}
	for _, p := range w.added {
		count(p)
	}
	return n
}

func (w *World) splitFactor() int {
	if w.settings.Splitter == SplitterDeterministic {
		return 2
	}
	return 1
}

func (w *World) add(ps ...*Particle) {
	w.added = append(w.added, ps...)
}

// remove schedules p for removal at the end of the tick. Removing twice is harmless.
func (w *World) remove(p *Particle) {
	w.removed[p] = struct{}{}
}

func (w *World) isRemoved(p *Particle) bool {
	_, ok := w.removed[p]
	return ok
}

// flush applies the pending insertions and removals and returns the removed particles.
func (w *World) flush() []*Particle {
	var gone []*Particle
	kept := w.particles[:0]
	for _, p := range w.particles {
		if w.isRemoved(p) {
			gone = append(gone, p)
			continue
		}
		kept = append(kept, p)
	}
	clear(w.particles[len(kept):])
	w.particles = append(kept, w.added...)
	w.added = nil
	clear(w.removed)
	return gone
}

func (w *World) snapshot(gone []*Particle) Snapshot {
	views := make([]ParticleView, 0, len(w.particles)+len(gone))
	for _, p := range w.particles {
		views = append(views, view(p, true))
	}
	for _, p := range gone {
		views = append(views, view(p, false))
	}
	return Snapshot{
		Tick:      w.tick,
		Particles: views,
		Pattern:   w.Pattern(),
	}
}

func view(p *Particle, visible bool) ParticleView {
	return ParticleView{
		ID:        p.ID,
		Position:  p.Position,
		Z:         p.Z,
		Visible:   visible,
		Semi:      p.Semi,
		Resultant: p.Resultant,
	}
}
