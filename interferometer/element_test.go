package interferometer

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/meghashyamc/interferometer/geometry"
)

func TestSurfaceY(t *testing.T) {
	scene := DefaultScene()

	tests := []struct {
		name   string
		el     Element
		x      float64
		want   float64
		wantOK bool
	}{
		{"splitter on its diagonal", scene.Splitter, -1, -1, true},
		{"splitter at the edge", scene.Splitter, 4.75, 4.75, true},
		{"flat mirror", scene.MirrorBottom, 3, -30, true},
		{"receptor", scene.Receptor, -2, 30, true},
		{"vertical mirror has no slope", scene.MirrorRight, 30, 0, false},
		{"engine has no surface", scene.Engine, -40, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.el.SurfaceY(tt.x, 3)
			if ok != tt.wantOK {
				t.Fatalf("SurfaceY ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SurfaceY(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestElementHits(t *testing.T) {
	scene := DefaultScene()

	tests := []struct {
		name string
		el   Element
		p    geometry.Vector
		want bool
	}{
		{"splitter surface", scene.Splitter, geometry.Vector{X: 0.5, Y: 0.5}, true},
		{"splitter box but off surface", scene.Splitter, geometry.Vector{X: 0.5, Y: -0.5}, false},
		{"splitter surface outside box", scene.Splitter, geometry.Vector{X: 5.25, Y: 5.25}, false},
		{"right mirror", scene.MirrorRight, geometry.Vector{X: 30, Y: -1}, true},
		{"right mirror beyond its end", scene.MirrorRight, geometry.Vector{X: 30, Y: 5.5}, false},
		{"right mirror short of it", scene.MirrorRight, geometry.Vector{X: 29.75, Y: 0}, false},
		{"bottom mirror", scene.MirrorBottom, geometry.Vector{X: 1, Y: -30}, true},
		{"bottom mirror beyond its end", scene.MirrorBottom, geometry.Vector{X: -5.25, Y: -30}, false},
		{"receptor", scene.Receptor, geometry.Vector{X: 0.5, Y: 30}, true},
		{"receptor below", scene.Receptor, geometry.Vector{X: 0.5, Y: 29.75}, false},
		{"engine never hits", scene.Engine, geometry.Vector{X: -40, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Hits(tt.p, 3); got != tt.want {
				t.Errorf("Hits(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	splitter := DefaultScene().Splitter
	if !splitter.InBounds(geometry.Vector{X: 5, Y: -5}) {
		t.Error("corner of the box should be in bounds")
	}
	if splitter.InBounds(geometry.Vector{X: 5.25, Y: 0}) {
		t.Error("point right of the box should be out of bounds")
	}
	if splitter.InBounds(geometry.Vector{X: 0, Y: -5.25}) {
		t.Error("point below the box should be out of bounds")
	}
}

func TestSetPosition(t *testing.T) {
	scene := DefaultScene()
	mirror := scene.MirrorRight

	if err := mirror.SetPosition(AxisX, 28); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if mirror.Position != (geometry.Vector{X: 28, Y: 0}) {
		t.Errorf("unexpected position %+v", mirror.Position)
	}
	if mirror.Angle != scene.MirrorRight.Angle || mirror.Length != scene.MirrorRight.Length {
		t.Error("SetPosition changed more than the position")
	}

	err := mirror.SetPosition(AxisY, math.NaN())
	var geomErr *geometry.GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected *GeometryError, got %v", err)
	}
	if mirror.Position.Y != 0 {
		t.Errorf("failed SetPosition modified the element: %+v", mirror.Position)
	}
}

func TestParseElementKind(t *testing.T) {
	for kind := LaserEngine; kind <= Receptor; kind++ {
		got, err := ParseElementKind(kind.String())
		if err != nil {
			t.Fatalf("ParseElementKind(%q): %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseElementKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
	if _, err := ParseElementKind("prism"); err == nil {
		t.Error("expected an error for an unknown element")
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	data := []byte("[mirror_right]\nx = 28\n\n[splitter]\nangle = 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	scene, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.MirrorRight.Position.X != 28 {
		t.Errorf("mirror_right.x = %v, want 28", scene.MirrorRight.Position.X)
	}
	if scene.MirrorRight.Length != 10 {
		t.Errorf("unset key lost its default: length = %v", scene.MirrorRight.Length)
	}
	if math.Abs(scene.Splitter.Angle-math.Pi/6) > 1e-12 {
		t.Errorf("splitter angle = %v, want π/6", scene.Splitter.Angle)
	}
	if scene.Receptor != DefaultScene().Receptor {
		t.Errorf("receptor changed: %+v", scene.Receptor)
	}
}

func TestLoadSceneRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadScene(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[receptor]\nlength = -1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadScene(path); err == nil {
		t.Error("expected an error for a negative length")
	}
}

func TestSceneOutside(t *testing.T) {
	scene := DefaultScene()

	inside := []geometry.Vector{{X: -35, Y: 0}, {X: 30, Y: 0}, {X: 0, Y: -30}, {X: 0, Y: 30}}
	for _, p := range inside {
		if scene.Outside(p) {
			t.Errorf("%+v reported outside the field", p)
		}
	}
	outside := []geometry.Vector{{X: -35.25, Y: 0}, {X: 30.25, Y: 0}, {X: 0, Y: -30.25}, {X: 0, Y: 30.25}}
	for _, p := range outside {
		if !scene.Outside(p) {
			t.Errorf("%+v reported inside the field", p)
		}
	}
}
