package daycycle

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
)

// SolarCycle derives sun and moon directions from real astronomical
// positions instead of the stylized circular arc. The cycle's TimeOfDay
// maps onto one wall-clock day at the configured location: t=0 is
// midnight local to Date, t=Period is midnight the next day.
//
// Same purity contract as Cycle: the state is a deterministic function
// of the time scalar and the immutable configuration.
type SolarCycle struct {
	Latitude  float64   // degrees, north positive
	Longitude float64   // degrees, east positive
	Date      time.Time // midnight anchoring the rendered day
	Presets   Cycle     // colors, intensities and glow floor
}

// NewSolarCycle creates an astronomical cycle for the given location,
// anchored at the start of the given day, with default presets.
func NewSolarCycle(latitude, longitude float64, date time.Time) SolarCycle {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return SolarCycle{
		Latitude:  latitude,
		Longitude: longitude,
		Date:      midnight,
		Presets:   DefaultCycle(),
	}
}

// wallClock maps a time scalar onto the anchored day
func (sc SolarCycle) wallClock(t TimeOfDay) time.Time {
	fraction := float64(Advance(t, 0)) / Period
	return sc.Date.Add(time.Duration(fraction * 24 * float64(time.Hour)))
}

// horizonDir converts suncalc alt-azimuth angles (radians; azimuth
// measured from south, positive westward) into a world direction with
// +X east, +Y up, +Z south.
func horizonDir(azimuth, altitude float64) core.Vec3 {
	return core.NewVec3(
		-math.Sin(azimuth)*math.Cos(altitude),
		math.Sin(altitude),
		math.Cos(azimuth)*math.Cos(altitude),
	).Normalize()
}

// twilightBlend ramps 0..1 across civil twilight (-6° to +6° altitude)
// with a cosine ease, so lighting never jumps at the horizon crossing.
func twilightBlend(altitude float64) float64 {
	const halfWidth = 6 * math.Pi / 180
	x := (altitude + halfWidth) / (2 * halfWidth)
	x = max(0, min(1, x))
	return 0.5 * (1 - math.Cos(x*math.Pi))
}

// State derives the full lighting parameters for the given time using
// astronomical sun and moon positions.
func (sc SolarCycle) State(t TimeOfDay) LightState {
	at := sc.wallClock(t)

	sunPos := suncalc.GetPosition(at, sc.Latitude, sc.Longitude)
	moonPos := suncalc.GetMoonPosition(at, sc.Latitude, sc.Longitude)
	moonIllum := suncalc.GetMoonIllumination(at)

	dayFactor := twilightBlend(sunPos.Altitude)
	moonFactor := twilightBlend(moonPos.Altitude) * moonIllum.Fraction

	c := sc.Presets
	glow := c.GlowFloor + (1-c.GlowFloor)*(1-dayFactor)

	return LightState{
		Time:      Advance(t, 0),
		DayFactor: dayFactor,
		Sun: Light{
			Kind:      Directional,
			Direction: horizonDir(sunPos.Azimuth, sunPos.Altitude),
			Color:     c.SunColor,
			Intensity: c.SunIntensity * dayFactor,
		},
		Moon: Light{
			Kind:      Directional,
			Direction: horizonDir(moonPos.Azimuth, moonPos.Altitude),
			Color:     c.MoonColor,
			Intensity: c.MoonIntensity * (1 - dayFactor) * moonFactor,
		},
		Ambient:   c.AmbientNight.Lerp(c.AmbientDay, dayFactor),
		SkyTop:    c.SkyTopNight.Lerp(c.SkyTopDay, dayFactor),
		SkyBottom: c.SkyBottomNight.Lerp(c.SkyBottomDay, dayFactor),
		Glow:      glow,
	}
}
