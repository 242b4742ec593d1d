package interferometer

import (
	"fmt"
	"math"

	"github.com/meghashyamc/interferometer/geometry"
)

type ElementKind int

const (
	LaserEngine ElementKind = iota
	BeamSplitter
	MirrorRight
	MirrorBottom
	Receptor
)

var elementNames = map[ElementKind]string{
	LaserEngine:  "engine",
	BeamSplitter: "splitter",
	MirrorRight:  "mirror_right",
	MirrorBottom: "mirror_bottom",
	Receptor:     "receptor",
}

func (k ElementKind) String() string {
	if name, ok := elementNames[k]; ok {
		return name
	}
	return fmt.Sprintf("element(%d)", int(k))
}

// ParseElementKind maps an element name, as used by external controls, to its kind.
func ParseElementKind(name string) (ElementKind, error) {
	for kind, n := range elementNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", name)
}

// Bottom reports whether the element reflects off a horizontal-normal surface.
func (k ElementKind) Bottom() bool {
	return k == MirrorBottom || k == Receptor
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Element is one of the static optical parts of the interferometer. Position is the
// centre of the element and Length its extent along its own surface.
type Element struct {
	Kind     ElementKind
	Position geometry.Vector
	Length   float64
	Angle    float64 // radians from +X
}

func NewElement(kind ElementKind, x, y, length, angleDeg float64) (Element, error) {
	if err := geometry.CheckFinite("new "+kind.String(), x, y, length, angleDeg); err != nil {
		return Element{}, err
	}
	return Element{
		Kind:     kind,
		Position: geometry.Vector{X: x, Y: y},
		Length:   length,
		Angle:    angleDeg * math.Pi / 180,
	}, nil
}

// Vertical reports whether the surface is parallel to the Y axis, in which case it has
// no slope function and is tested on X alone.
func (e Element) Vertical() bool {
	return geometry.Round(math.Cos(e.Angle), 9) == 0
}

// SurfaceY returns the Y coordinate the reflecting surface occupies at x.
// The laser engine and vertical elements have no such value.
func (e Element) SurfaceY(x float64, precision int) (float64, bool) {
	if e.Kind == LaserEngine || e.Vertical() {
		return 0, false
	}
	return geometry.Round((x-e.Position.X)*math.Tan(e.Angle)+e.Position.Y, precision), true
}

// OnSurface reports whether p lies exactly on the element's reflecting line.
func (e Element) OnSurface(p geometry.Vector, precision int) bool {
	if e.Kind != LaserEngine && e.Vertical() {
		return p.X == e.Position.X
	}
	y, ok := e.SurfaceY(p.X, precision)
	return ok && y == p.Y
}

// InBounds reports whether p is inside the element's square bounding box.
func (e Element) InBounds(p geometry.Vector) bool {
	half := e.Length / 2
	return p.X >= e.Position.X-half && p.X <= e.Position.X+half &&
		p.Y >= e.Position.Y-half && p.Y <= e.Position.Y+half
}

// Hits is the per-kind contact test used by the world on every tick.
func (e Element) Hits(p geometry.Vector, precision int) bool {
	half := e.Length / 2
	switch e.Kind {
	case BeamSplitter:
		return e.InBounds(p) && e.OnSurface(p, precision)
	case MirrorRight:
		return math.Abs(p.Y-e.Position.Y) <= half && e.OnSurface(p, precision)
	case MirrorBottom:
		return math.Abs(p.X-e.Position.X) <= half && e.OnSurface(p, precision)
	case Receptor:
		return p.Y >= e.Position.Y && math.Abs(p.X-e.Position.X) <= half && e.OnSurface(p, precision)
	}
	return false
}

// SetPosition moves the element along one axis. Nothing else about it changes.
func (e *Element) SetPosition(axis Axis, value float64) error {
	if err := geometry.CheckFinite("set "+e.Kind.String()+" position", value); err != nil {
		return err
	}
	switch axis {
	case AxisX:
		e.Position.X = value
	case AxisY:
		e.Position.Y = value
	default:
		return fmt.Errorf("unknown axis %d", axis)
	}
	return nil
}

// Ends returns the two end points of the element's surface, for drawing.
func (e Element) Ends() (geometry.Vector, geometry.Vector) {
	up := geometry.FromAngle(e.Angle).Scale(e.Length / 2)
	if e.Kind == LaserEngine {
		return e.Position, e.Position.Add(geometry.Vector{X: e.Length})
	}
	return e.Position.Sub(up), e.Position.Add(up)
}
