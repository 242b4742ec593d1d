package interferometer

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/meghashyamc/interferometer/geometry"
)

// Scene is the fixed set of optical elements the particles travel through.
type Scene struct {
	Engine       Element
	Splitter     Element
	MirrorRight  Element
	MirrorBottom Element
	Receptor     Element
}

type elementFile struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Length float64 `toml:"length"`
	Angle  float64 `toml:"angle"` // degrees
}

type sceneFile struct {
	Engine       elementFile `toml:"engine"`
	Splitter     elementFile `toml:"splitter"`
	MirrorRight  elementFile `toml:"mirror_right"`
	MirrorBottom elementFile `toml:"mirror_bottom"`
	Receptor     elementFile `toml:"receptor"`
}

var defaultSceneFile = sceneFile{
	Engine:       elementFile{X: -45, Y: 0, Length: 10},
	Splitter:     elementFile{X: 0, Y: 0, Length: 10, Angle: 45},
	MirrorRight:  elementFile{X: 30, Y: 0, Length: 10, Angle: 90},
	MirrorBottom: elementFile{X: 0, Y: -30, Length: 10, Angle: 0},
	Receptor:     elementFile{X: 0, Y: 30, Length: 10, Angle: 0},
}

// DefaultScene is the classic layout: the engine fires along +X into a 45° splitter,
// with one mirror to the right, one below and the receptor above.
func DefaultScene() Scene {
	scene, err := defaultSceneFile.build()
	if err != nil {
		panic(err)
	}
	return scene
}

// LoadScene reads a TOML scene file. Missing tables and keys keep their default values.
func LoadScene(path string) (Scene, error) {
	file := defaultSceneFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Scene{}, fmt.Errorf("failed to decode scene file %s: %w", path, err)
	}
	return file.build()
}

func (f sceneFile) build() (Scene, error) {
	var scene Scene
	entries := []struct {
		kind ElementKind
		file elementFile
		dst  *Element
	}{
		{LaserEngine, f.Engine, &scene.Engine},
		{BeamSplitter, f.Splitter, &scene.Splitter},
		{MirrorRight, f.MirrorRight, &scene.MirrorRight},
		{MirrorBottom, f.MirrorBottom, &scene.MirrorBottom},
		{Receptor, f.Receptor, &scene.Receptor},
	}
	for _, entry := range entries {
		el, err := NewElement(entry.kind, entry.file.X, entry.file.Y, entry.file.Length, entry.file.Angle)
		if err != nil {
			return Scene{}, err
		}
		if el.Length <= 0 {
			return Scene{}, fmt.Errorf("%s length must be positive, got %v", entry.kind, el.Length)
		}
		*entry.dst = el
	}
	return scene, nil
}

// Element returns a pointer to the element of the given kind.
func (s *Scene) Element(kind ElementKind) (*Element, error) {
	switch kind {
	case LaserEngine:
		return &s.Engine, nil
	case BeamSplitter:
		return &s.Splitter, nil
	case MirrorRight:
		return &s.MirrorRight, nil
	case MirrorBottom:
		return &s.MirrorBottom, nil
	case Receptor:
		return &s.Receptor, nil
	}
	return nil, fmt.Errorf("unknown element kind %d", int(kind))
}

// Elements lists the elements in collision priority order, engine first.
func (s Scene) Elements() []Element {
	return []Element{s.Engine, s.Splitter, s.MirrorRight, s.MirrorBottom, s.Receptor}
}

// BeamOrigin is the point at the mouth of the laser engine.
func (s Scene) BeamOrigin() geometry.Vector {
	return geometry.Vector{X: s.Engine.Position.X + s.Engine.Length, Y: s.Engine.Position.Y}
}

// Outside reports whether p has left the field of play.
func (s Scene) Outside(p geometry.Vector) bool {
	return p.X > s.MirrorRight.Position.X ||
		p.X < s.Engine.Position.X+s.Engine.Length ||
		p.Y < s.MirrorBottom.Position.Y ||
		p.Y > s.Receptor.Position.Y
}
