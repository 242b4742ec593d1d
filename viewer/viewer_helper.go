package viewer

import (
	"cmp"

	"github.com/meghashyamc/interferometer/geometry"
)

const (
	pixelsPerUnit = 10.0
	originX       = screenWidth/2 + 75.0
	originY       = screenHeight / 2.0
)

// toScreen maps world coordinates, Y up, to screen pixels, Y down.
func toScreen(p geometry.Vector) (float32, float32) {
	return float32(originX + p.X*pixelsPerUnit), float32(originY - p.Y*pixelsPerUnit)
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
