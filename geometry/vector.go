package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vector) AngleTo(other Vector) float64 {
	dot := v.DotProduct(other)
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := dot / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Round rounds both components to the given number of decimals.
func (v Vector) Round(precision int) Vector {
	return Vector{Round(v.X, precision), Round(v.Y, precision)}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// FromAngle returns the unit vector pointing at angle rad from +X.
func FromAngle(rad float64) Vector {
	return Vector{math.Cos(rad), math.Sin(rad)}
}
