package material

import (
	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
)

// Kind tags the shading model a material uses
type Kind int

const (
	Diffuse    Kind = iota // Lambertian only
	Reflective             // Fresnel-weighted mirror reflection over a diffuse base
	Refractive             // Fresnel-weighted reflection blended with transmission
	Emissive               // constant emission, independent of scene lights
)

// Material describes the surface response of a primitive.
// Immutable once constructed; primitives share materials by pointer.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // base surface color
	Reflectivity    float64   // base reflectance R0 for reflective surfaces
	RefractiveIndex float64   // index of refraction for refractive surfaces
	Emission        core.Vec3 // emitted color for emissive surfaces
	EmissionScale   float64   // emission multiplier before the day-cycle glow factor
}

// NewDiffuse creates a purely Lambertian material
func NewDiffuse(albedo core.Vec3) *Material {
	return &Material{Kind: Diffuse, Albedo: albedo}
}

// NewReflective creates a specular material with the given base reflectance.
// Reflectivity is the reflectance at normal incidence (Schlick R0).
func NewReflective(albedo core.Vec3, reflectivity float64) *Material {
	return &Material{Kind: Reflective, Albedo: albedo, Reflectivity: reflectivity}
}

// NewRefractive creates a transparent material like water or glass
func NewRefractive(albedo core.Vec3, refractiveIndex float64) *Material {
	return &Material{Kind: Refractive, Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// NewEmissive creates a glowing material. The emitted color is scaled by
// emissionScale and by the day-cycle glow factor at shading time; albedo
// still participates in the diffuse term so the surface reads under sunlight.
func NewEmissive(albedo, emission core.Vec3, emissionScale float64) *Material {
	return &Material{
		Kind:          Emissive,
		Albedo:        albedo,
		Emission:      emission,
		EmissionScale: emissionScale,
	}
}

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, opposing the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  *Material // Material of the hit primitive
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
