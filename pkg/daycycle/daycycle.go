// Package daycycle derives sun, moon, ambient and glow lighting
// parameters from a single cyclical time scalar. Every derived output
// is a pure function of the time value: two calls with the same time
// produce identical parameters.
package daycycle

import (
	"math"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
)

// Period is the length of one full day/night cycle in time units
const Period = 2 * math.Pi

// TimeOfDay is a scalar in [0, Period). Zero is sunrise; the sun is
// highest at Period/4 and the moon is highest at 3*Period/4.
type TimeOfDay float64

// Advance moves the time forward by dt and wraps modulo the period.
// Negative deltas wrap backwards.
func Advance(t TimeOfDay, dt float64) TimeOfDay {
	wrapped := math.Mod(float64(t)+dt, Period)
	if wrapped < 0 {
		wrapped += Period
	}
	return TimeOfDay(wrapped)
}

// Source produces lighting parameters from a time scalar. Implemented
// by Cycle (stylized arc) and SolarCycle (astronomical positions).
type Source interface {
	State(t TimeOfDay) LightState
}

// LightKind distinguishes directional lights (sun, moon) from point
// glow sources
type LightKind int

const (
	Directional LightKind = iota
	Point
)

// Light is a single light source derived from the cycle state or from
// a scene glow preset
type Light struct {
	Kind      LightKind
	Direction core.Vec3 // unit vector toward the light (directional only)
	Position  core.Vec3 // world position (point only)
	Color     core.Vec3
	Intensity float64
}

// LightState is the full set of illumination parameters for one instant
type LightState struct {
	Time      TimeOfDay
	Sun       Light
	Moon      Light
	Ambient   core.Vec3 // ambient sky contribution
	SkyTop    core.Vec3 // sky gradient at the zenith
	SkyBottom core.Vec3 // sky gradient at the horizon
	DayFactor float64   // smooth blend, 1 at midday and 0 at midnight
	Glow      float64   // emissive intensity factor, inverse to the sun
}

// Cycle holds the static day and night lighting presets a scene renders
// under. The zero value is unusable; use DefaultCycle.
type Cycle struct {
	SunColor     core.Vec3
	SunIntensity float64

	MoonColor     core.Vec3
	MoonIntensity float64

	AmbientDay   core.Vec3
	AmbientNight core.Vec3

	SkyTopDay      core.Vec3
	SkyBottomDay   core.Vec3
	SkyTopNight    core.Vec3
	SkyBottomNight core.Vec3

	// GlowFloor keeps emissive surfaces faintly visible at midday;
	// glow ramps from GlowFloor up to 1 as the sun sets.
	GlowFloor float64
}

// DefaultCycle returns the diorama's day/night presets: a warm daylight
// sun, a cool blue moon, and sky ramps between afternoon blue and a
// deep night sky.
func DefaultCycle() Cycle {
	return Cycle{
		SunColor:     core.NewVec3(1.0, 1.0, 0.88),
		SunIntensity: 1.0,

		MoonColor:     core.NewVec3(0.53, 0.81, 0.92),
		MoonIntensity: 0.5,

		AmbientDay:   core.NewVec3(0.22, 0.24, 0.28),
		AmbientNight: core.NewVec3(0.04, 0.05, 0.10),

		SkyTopDay:      core.NewVec3(0.25, 0.38, 0.74),
		SkyBottomDay:   core.NewVec3(0.65, 0.78, 0.95),
		SkyTopNight:    core.NewVec3(0.02, 0.02, 0.08),
		SkyBottomNight: core.NewVec3(0.04, 0.04, 0.12),

		GlowFloor: 0.15,
	}
}

// sunOrbit places the sun on a tilted circular arc over the diorama,
// matching the scene's proportions: wide in X, high in Y, offset in Z.
func sunOrbit(angle float64) core.Vec3 {
	return core.NewVec3(
		15*math.Cos(angle),
		25*math.Sin(angle),
		15,
	).Normalize()
}

// State derives the full lighting parameters for the given time.
// Pure: no state beyond the explicit time scalar.
func (c Cycle) State(t TimeOfDay) LightState {
	angle := float64(Advance(t, 0)) // normalize into [0, Period)

	// Smooth cosine-based blend between night (0) and day (1), keyed
	// by the sun's elevation on its arc.
	dayFactor := 0.5 * (1 + math.Sin(angle))

	sunDir := sunOrbit(angle)
	moonDir := sunOrbit(angle + math.Pi) // complementary phase offset

	glow := c.GlowFloor + (1-c.GlowFloor)*(1-dayFactor)

	return LightState{
		Time:      TimeOfDay(angle),
		DayFactor: dayFactor,
		Sun: Light{
			Kind:      Directional,
			Direction: sunDir,
			Color:     c.SunColor,
			Intensity: c.SunIntensity * dayFactor,
		},
		Moon: Light{
			Kind:      Directional,
			Direction: moonDir,
			Color:     c.MoonColor,
			Intensity: c.MoonIntensity * (1 - dayFactor),
		},
		Ambient:   c.AmbientNight.Lerp(c.AmbientDay, dayFactor),
		SkyTop:    c.SkyTopNight.Lerp(c.SkyTopDay, dayFactor),
		SkyBottom: c.SkyBottomNight.Lerp(c.SkyBottomDay, dayFactor),
		Glow:      glow,
	}
}

// Lights returns the active directional lights for this state.
// Lights whose intensity has blended to (near) zero are dropped so the
// shading loop never casts shadow rays for them.
func (s LightState) Lights() []Light {
	lights := make([]Light, 0, 2)
	if s.Sun.Intensity > 1e-4 {
		lights = append(lights, s.Sun)
	}
	if s.Moon.Intensity > 1e-4 {
		lights = append(lights, s.Moon)
	}
	return lights
}

// SkyColor returns the background color for a ray direction, blending
// the state's sky gradient on the vertical component.
func (s LightState) SkyColor(dir core.Vec3) core.Vec3 {
	t := 0.5 * (dir.Normalize().Y + 1.0)
	return s.SkyBottom.Lerp(s.SkyTop, t)
}
