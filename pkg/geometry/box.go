package geometry

import (
	"fmt"
	"math"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
)

// Box represents an axis-aligned box primitive defined by two corners
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material *material.Material
}

// NewBox creates a new axis-aligned box from opposite corners.
// Returns ErrDegenerateGeometry if any extent is non-positive.
func NewBox(boxMin, boxMax core.Vec3, mat *material.Material) (*Box, error) {
	size := boxMax.Subtract(boxMin)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("%w: box extent %v", ErrDegenerateGeometry, size)
	}
	return &Box{Min: boxMin, Max: boxMax, Material: mat}, nil
}

// Hit tests if a ray intersects the box using the slab method.
// The normal is taken from the slab axis that bounds the interval.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	enterAxis, exitAxis := -1, -1

	boxMin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	boxMax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(direction[axis]) < 1e-8 {
			// Parallel to this slab: miss unless the origin lies inside it
			if origin[axis] < boxMin[axis] || origin[axis] > boxMax[axis] {
				return nil, false
			}
			continue
		}

		invDirection := 1.0 / direction[axis]
		t1 := (boxMin[axis] - origin[axis]) * invDirection
		t2 := (boxMax[axis] - origin[axis]) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tEnter {
			tEnter = t1
			enterAxis = axis
		}
		if t2 < tExit {
			tExit = t2
			exitAxis = axis
		}
		if tEnter > tExit {
			return nil, false
		}
	}

	// Prefer the entering intersection; fall back to the exit when the
	// ray starts inside the box (needed for refraction).
	t := tEnter
	axis := enterAxis
	if t < tMin || axis < 0 {
		t = tExit
		axis = exitAxis
	}
	if t < tMin || t > tMax || axis < 0 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: b.Material,
	}
	hitRecord.SetFaceNormal(ray, b.faceNormal(axis, hitRecord.Point))

	return hitRecord, true
}

// faceNormal returns the outward normal for the face on the given axis
func (b *Box) faceNormal(axis int, point core.Vec3) core.Vec3 {
	center := b.Min.Add(b.Max).Multiply(0.5)
	var normal core.Vec3
	var sign float64
	switch axis {
	case 0:
		sign = math.Copysign(1, point.X-center.X)
		normal = core.NewVec3(sign, 0, 0)
	case 1:
		sign = math.Copysign(1, point.Y-center.Y)
		normal = core.NewVec3(0, sign, 0)
	default:
		sign = math.Copysign(1, point.Z-center.Z)
		normal = core.NewVec3(0, 0, sign)
	}
	return normal
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
