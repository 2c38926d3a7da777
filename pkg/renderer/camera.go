package renderer

import (
	"math"
	"math/rand"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
)

// CameraConfig describes a look-at camera
type CameraConfig struct {
	Center core.Vec3 // Eye position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
}

// DefaultCameraConfig frames the diorama from the front, slightly
// elevated, matching the scene's proportions
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 5, 35),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
	}
}

// Camera generates world-space rays for pixel coordinates
type Camera struct {
	config     CameraConfig
	u, v, w    core.Vec3 // orthonormal basis: w back, u right, v up
	halfHeight float64   // tan(vfov/2)
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	return &Camera{
		config:     config,
		u:          u,
		v:          v,
		w:          w,
		halfHeight: math.Tan(config.VFov * math.Pi / 360.0),
	}
}

// GetRay maps pixel (x, y) on a width×height image to a world-space
// ray through the view plane. When rnd is non-nil the sample point is
// jittered within the pixel for anti-aliasing; otherwise it goes
// through the pixel center. The returned direction is unit length.
func (c *Camera) GetRay(x, y, width, height int, rnd *rand.Rand) core.Ray {
	dx, dy := 0.5, 0.5
	if rnd != nil {
		dx, dy = rnd.Float64(), rnd.Float64()
	}

	// Map to [-1, 1] with y up
	screenX := 2.0*(float64(x)+dx)/float64(width) - 1.0
	screenY := 1.0 - 2.0*(float64(y)+dy)/float64(height)

	aspectRatio := float64(width) / float64(height)
	screenX *= aspectRatio * c.halfHeight
	screenY *= c.halfHeight

	direction := c.u.Multiply(screenX).
		Add(c.v.Multiply(screenY)).
		Subtract(c.w).
		Normalize()

	return core.NewRay(c.config.Center, direction)
}
