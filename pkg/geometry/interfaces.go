package geometry

import (
	"errors"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
)

// ErrDegenerateGeometry indicates a primitive with a non-positive
// radius or extent. Such primitives are excluded from the scene at
// construction time rather than failing during rendering.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Shape interface for primitives that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
