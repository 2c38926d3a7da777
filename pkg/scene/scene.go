package scene

import (
	"math"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/geometry"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
)

// Glow is a static point-light preset attached to an emissive feature
// of the scene. Its effective intensity is the preset intensity scaled
// by the day-cycle glow factor at render time.
type Glow struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// Scene holds the primitives, glow presets and light-cycle presets for
// a diorama. Read-only during a frame render; safe for concurrent use
// once finalized.
type Scene struct {
	Shapes []geometry.Shape
	Glows  []Glow
	Cycle  daycycle.Source

	bvh         *bvh
	diagnostics []error
}

// NewScene creates an empty scene with the given light-cycle presets
func NewScene(cycle daycycle.Source) *Scene {
	return &Scene{Cycle: cycle}
}

// Add appends primitives to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddChecked appends the primitive when its constructor succeeded, and
// records the construction diagnostic otherwise. Degenerate primitives
// are excluded from the store rather than aborting construction.
func (s *Scene) AddChecked(shape geometry.Shape, err error) {
	if err != nil {
		s.diagnostics = append(s.diagnostics, err)
		return
	}
	s.Add(shape)
}

// AddGlow registers a point glow source preset
func (s *Scene) AddGlow(position, color core.Vec3, intensity float64) {
	s.Glows = append(s.Glows, Glow{Position: position, Color: color, Intensity: intensity})
}

// Diagnostics returns construction-time diagnostics for primitives that
// were excluded from the scene
func (s *Scene) Diagnostics() []error {
	return s.diagnostics
}

// Finalize builds the acceleration structure. Must be called before
// rendering from multiple goroutines; Hit falls back to a linear scan
// when it has not been called.
func (s *Scene) Finalize() {
	s.bvh = newBVH(s.Shapes)
}

// Hit returns the nearest intersection along the ray within [tMin, tMax].
// The ray direction must be a finite unit vector; Hit panics with a
// wrapped ErrInvalidRay otherwise, since intersection distances along a
// non-unit direction are silently wrong.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if err := ray.Validate(); err != nil {
		panic(err)
	}
	if s.bvh != nil {
		return s.bvh.Hit(ray, tMin, tMax)
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax
	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}
	return closestHit, closestHit != nil
}

// Occluded reports whether any primitive blocks the segment from origin
// along dir (unit length) strictly before maxDist. Used for shadow rays.
func (s *Scene) Occluded(origin, dir core.Vec3, maxDist float64) bool {
	ray := core.NewRay(origin, dir)
	_, isHit := s.Hit(ray, ShadowEpsilon, maxDist-ShadowEpsilon)
	return isHit
}

// ShadowEpsilon offsets shadow-ray origins along the surface normal to
// avoid self-intersection artifacts (shadow acne)
const ShadowEpsilon = 1e-4

// Infinity is the far bound for unbounded ray queries
var Infinity = math.Inf(1)
