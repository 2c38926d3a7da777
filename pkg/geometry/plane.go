package geometry

import (
	"fmt"
	"math"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal vector
	Material *material.Material
}

// NewPlane creates a new plane. Returns ErrDegenerateGeometry for a
// zero-length normal.
func NewPlane(point, normal core.Vec3, mat *material.Material) (*Plane, error) {
	if normal.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: plane with zero normal", ErrDegenerateGeometry)
	}
	return &Plane{Point: point, Normal: normal.Normalize(), Material: mat}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Near-parallel rays resolve to no-hit rather than NaN/Inf
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox returns a bounding box for this plane
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001 // Small thickness to avoid a zero-width box

	// Axis-aligned planes get tight slabs for better BVH behavior
	switch {
	case math.Abs(p.Normal.X) > 1-1e-9:
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -largeValue, -largeValue),
			core.NewVec3(x+epsilon, largeValue, largeValue),
		)
	case math.Abs(p.Normal.Y) > 1-1e-9:
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-largeValue, y-epsilon, -largeValue),
			core.NewVec3(largeValue, y+epsilon, largeValue),
		)
	case math.Abs(p.Normal.Z) > 1-1e-9:
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, z-epsilon),
			core.NewVec3(largeValue, largeValue, z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
