package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	boundsMin := points[0]
	boundsMax := points[0]
	for _, point := range points[1:] {
		boundsMin.X = math.Min(boundsMin.X, point.X)
		boundsMin.Y = math.Min(boundsMin.Y, point.Y)
		boundsMin.Z = math.Min(boundsMin.Z, point.Z)

		boundsMax.X = math.Max(boundsMax.X, point.X)
		boundsMax.Y = math.Max(boundsMax.Y, point.Y)
		boundsMax.Z = math.Max(boundsMax.Z, point.Z)
	}

	return AABB{Min: boundsMin, Max: boundsMax}
}

// Hit tests if a ray intersects this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var slabMin, slabMax, origin, direction float64
		switch axis {
		case 0:
			slabMin, slabMax = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			slabMin, slabMax = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			slabMin, slabMax = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// Ray parallel to this slab: inside or miss, no interval update
		if math.Abs(direction) < 1e-8 {
			if origin < slabMin || origin > slabMax {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (slabMin - origin) * invDirection
		t2 := (slabMax - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
