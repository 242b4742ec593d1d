package geometry

import (
	"math"
)

// Reflect bounces v off a semi-reflective surface tilted rad from +X.
//
// The outgoing direction is |v|·(cos 2θ, sin 2θ). It is flipped when v points away
// from the surface's up vector (cos θ, sin θ), and its components are swapped for
// steep incidence (|vy| > |vx|) so that both faces of the surface reflect consistently.
func Reflect(v Vector, rad float64, precision int) (Vector, error) {
	if err := CheckFinite("reflect", v.X, v.Y, rad); err != nil {
		return Vector{}, err
	}

	x, y := mirror(v.Magnitude(), rad, precision)

	deg := Round(v.AngleTo(FromAngle(rad))*180/math.Pi, 3)
	if deg > 90 {
		x, y = -x, -y
	}
	if math.Abs(v.Y) > math.Abs(v.X) {
		x, y = y, x
	}

	return Vector{x, y}.Round(precision), nil
}

// ReflectOffWall bounces v off a fully reflective wall tilted rad from +X.
// Walls facing down or up (bottom walls) reflect off their normal, so π/2 is added to
// their angle; horizontal walls swap the outgoing components. The outgoing vector keeps
// the sign of each incoming component.
func ReflectOffWall(v Vector, rad float64, bottom bool, precision int) (Vector, error) {
	if err := CheckFinite("reflect off wall", v.X, v.Y, rad); err != nil {
		return Vector{}, err
	}

	theta := rad
	if bottom {
		theta += math.Pi / 2
	}
	x, y := mirror(v.Magnitude(), theta, precision)

	if rad == 0 {
		x, y = y, x
	}
	if v.X < 0 {
		x *= -1
	}
	if v.Y < 0 {
		y *= -1
	}

	return Vector{x, y}.Round(precision), nil
}

func mirror(mag, rad float64, precision int) (float64, float64) {
	sin, cos := math.Sincos(rad)
	x := Round(mag*(cos*cos-sin*sin), precision)
	y := Round(2*mag*sin*cos, precision)
	return x, y
}
