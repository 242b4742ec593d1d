package geometry

import (
	"errors"
	"fmt"
)

// ErrNonFinite is wrapped by every GeometryError.
var ErrNonFinite = errors.New("non-finite geometry input")

// GeometryError reports a NaN or infinite value handed to a geometric operation.
type GeometryError struct {
	Op    string
	Value float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Value, ErrNonFinite)
}

func (e *GeometryError) Unwrap() error {
	return ErrNonFinite
}

// CheckFinite returns a GeometryError for the first non-finite value.
func CheckFinite(op string, values ...float64) error {
	for _, v := range values {
		if !isFinite(v) {
			return &GeometryError{Op: op, Value: v}
		}
	}
	return nil
}
