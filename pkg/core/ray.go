package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRay indicates a ray with a zero-length or non-unit direction.
// Direction normalization is a precondition the caller must uphold.
var ErrInvalidRay = errors.New("invalid ray direction")

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Validate checks that the ray direction is a finite unit vector.
// Returns ErrInvalidRay (wrapped with the offending length) otherwise.
func (r Ray) Validate() error {
	if !r.Direction.IsFinite() {
		return fmt.Errorf("%w: non-finite components", ErrInvalidRay)
	}
	length := r.Direction.Length()
	if math.Abs(length-1.0) > 1e-6 {
		return fmt.Errorf("%w: length %g", ErrInvalidRay, length)
	}
	return nil
}
