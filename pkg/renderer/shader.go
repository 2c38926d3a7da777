package renderer

import (
	"math"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/scene"
)

// Shader computes colors for rays against an immutable scene and a
// fixed light-state snapshot. Pure: identical inputs produce identical
// colors, so shaders are shared freely across render workers.
type Shader struct {
	scene    *scene.Scene
	state    daycycle.LightState
	lights   []daycycle.Light
	maxDepth int
}

// NewShader snapshots the active lights for one frame: sun and moon
// from the light state plus the scene's glow sources scaled by the
// state's glow factor.
func NewShader(sc *scene.Scene, state daycycle.LightState, maxDepth int) *Shader {
	lights := state.Lights()
	for _, g := range sc.Glows {
		intensity := g.Intensity * state.Glow
		if intensity <= 1e-4 {
			continue
		}
		lights = append(lights, daycycle.Light{
			Kind:      daycycle.Point,
			Position:  g.Position,
			Color:     g.Color,
			Intensity: intensity,
		})
	}

	return &Shader{scene: sc, state: state, lights: lights, maxDepth: maxDepth}
}

// Shade traces the ray into the scene and returns its color. Rays that
// miss every primitive shade as the sky gradient. Depth starts at 0 for
// camera rays; recursion stops contributing specular bounces at maxDepth.
func (sh *Shader) Shade(ray core.Ray, depth int) core.Vec3 {
	hit, isHit := sh.scene.Hit(ray, scene.ShadowEpsilon, scene.Infinity)
	if !isHit {
		return sh.state.SkyColor(ray.Direction)
	}

	mat := hit.Material

	// Emission contributes unconditionally, independent of light
	// visibility, scaled by the day-cycle glow factor.
	color := core.Vec3{}
	if mat.Kind == material.Emissive {
		color = mat.Emission.Multiply(mat.EmissionScale * sh.state.Glow)
	}

	switch mat.Kind {
	case material.Refractive:
		if depth >= sh.maxDepth {
			return color.Add(sh.directLight(ray, hit))
		}
		return color.Add(sh.refractiveColor(ray, hit, depth))

	case material.Reflective:
		local := sh.directLight(ray, hit)
		if depth >= sh.maxDepth {
			return color.Add(local)
		}
		cosTheta := math.Min(ray.Direction.Negate().Dot(hit.Normal), 1.0)
		reflectance := Schlick(math.Max(cosTheta, 0), mat.Reflectivity)
		reflected := sh.reflectedColor(ray, hit, depth).MultiplyVec(mat.Albedo)
		return color.Add(local.Multiply(1 - reflectance)).Add(reflected.Multiply(reflectance))

	default: // Diffuse, Emissive
		return color.Add(sh.directLight(ray, hit))
	}
}

// Phong exponent for the specular highlight on lit surfaces
const specularShininess = 32

// directLight evaluates the ambient term plus the Lambertian diffuse
// and Phong specular contributions of every unoccluded light at the
// hit point. The specular highlight is weighted by the albedo's
// luminance so brighter surfaces catch stronger glints.
func (sh *Shader) directLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	color := sh.state.Ambient.MultiplyVec(hit.Material.Albedo)
	view := ray.Direction.Negate()

	// Offset shadow-ray origins along the normal to avoid shadow acne
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(scene.ShadowEpsilon))

	for _, light := range sh.lights {
		lightDir, lightDist, intensity := sh.lightSample(light, hit.Point)

		nDotL := hit.Normal.Dot(lightDir)
		if nDotL <= 0 || intensity <= 0 {
			continue
		}
		if sh.scene.Occluded(shadowOrigin, lightDir, lightDist) {
			continue
		}

		diffuse := hit.Material.Albedo.MultiplyVec(light.Color).Multiply(nDotL * intensity)
		color = color.Add(diffuse)

		specDot := reflectVector(lightDir.Negate(), hit.Normal).Dot(view)
		if specDot > 0 {
			strength := math.Pow(specDot, specularShininess) * intensity * hit.Material.Albedo.Luminance()
			color = color.Add(light.Color.Multiply(strength))
		}
	}

	return color
}

// lightSample returns the unit direction toward the light, the distance
// to it, and its effective intensity at the given point. Point glows
// fall off with the square of the distance.
func (sh *Shader) lightSample(light daycycle.Light, point core.Vec3) (core.Vec3, float64, float64) {
	if light.Kind == daycycle.Directional {
		return light.Direction, scene.Infinity, light.Intensity
	}

	toLight := light.Position.Subtract(point)
	dist := toLight.Length()
	if dist < scene.ShadowEpsilon {
		return core.NewVec3(0, 1, 0), dist, 0
	}
	return toLight.Multiply(1 / dist), dist, light.Intensity / (dist * dist)
}

// reflectedColor traces the mirror bounce off the hit point
func (sh *Shader) reflectedColor(ray core.Ray, hit *material.HitRecord, depth int) core.Vec3 {
	reflectDir := reflectVector(ray.Direction, hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(scene.ShadowEpsilon))
	return sh.Shade(core.NewRay(origin, reflectDir), depth+1)
}

// refractiveColor blends a traced reflection against a traced
// transmission using Schlick's approximation of the Fresnel equations.
// Total internal reflection falls back to pure reflection.
func (sh *Shader) refractiveColor(ray core.Ray, hit *material.HitRecord, depth int) core.Vec3 {
	mat := hit.Material

	// Entering vs. exiting determines the refraction ratio n1/n2
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / mat.RefractiveIndex
	} else {
		refractionRatio = mat.RefractiveIndex
	}

	cosTheta := math.Min(ray.Direction.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	reflected := sh.reflectedColor(ray, hit, depth)

	// Total internal reflection: nothing transmits
	if refractionRatio*sinTheta > 1.0 {
		return reflected
	}

	reflectance := Schlick(cosTheta, R0FromRatio(refractionRatio))

	refractDir := refractVector(ray.Direction, hit.Normal, refractionRatio)
	transmitOrigin := hit.Point.Subtract(hit.Normal.Multiply(scene.ShadowEpsilon))
	transmitted := sh.Shade(core.NewRay(transmitOrigin, refractDir), depth+1).
		MultiplyVec(mat.Albedo)

	return reflected.Multiply(reflectance).Add(transmitted.Multiply(1 - reflectance))
}

// Schlick approximates Fresnel reflectance: R(θ) = R0 + (1-R0)(1-cosθ)⁵
func Schlick(cosTheta, r0 float64) float64 {
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// R0FromRatio computes the base reflectance at normal incidence from a
// refraction ratio n1/n2: R0 = ((n1-n2)/(n1+n2))²
func R0FromRatio(ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	return r0 * r0
}

// reflectVector calculates the reflection of v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector calculates the refraction of a unit vector using Snell's law
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
