// Package astro converts catalogued sky positions into observer-relative
// horizontal coordinates. The spherical astronomy itself is delegated to the
// meeus library; this package fixes the conventions used everywhere else in
// the program: azimuth 0°=North increasing eastward, altitude 0°=horizon.
package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// Equatorial is a direction on the celestial sphere, J2000.
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Horizontal is an observer-relative sky position.
//
// Azimuth is raw (0-360, 0=North, 90=East). Centering to the plotting range
// happens exactly once, at the presentation boundary, via CenterAzimuth.
type Horizontal struct {
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith, negative below)
}

// EquatorialToHorizontal converts an equatorial position to horizontal
// coordinates for the given observer and instant. The instant is normalized
// to UTC internally.
//
// Altitude may be negative (object below the horizon); filtering is the
// caller's responsibility. Pole declinations are well defined and pass
// through without special handling.
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	jd := julian.TimeToJD(t.UTC())
	st := sidereal.Apparent(jd)

	// meeus wants geographic longitude positive westward.
	A, h := coord.EqToHz(
		unit.RAFromDeg(eq.RAdeg),
		unit.AngleFromDeg(eq.DecDeg),
		unit.AngleFromDeg(obs.LatDeg),
		unit.AngleFromDeg(-obs.LonDeg),
		st,
	)

	// meeus measures azimuth westward from South; shift to 0=North,
	// increasing eastward.
	az := math.Mod(A.Deg()+180, 360)
	if az < 0 {
		az += 360
	}

	return Horizontal{AzDeg: az, AltDeg: h.Deg()}
}

// CenterAzimuth remaps a raw azimuth from [0,360) to [-180,180) with North
// kept at 0. Fixed points: 0→0, 180→-180, 359→-1.
//
// Uses a floored modulus so the result is identical for any real input,
// including azimuths already outside [0,360).
func CenterAzimuth(azDeg float64) float64 {
	m := math.Mod(azDeg-180, 360)
	if m < 0 {
		m += 360
	}
	return m - 180
}

// AngularSeparation returns the great-circle separation of two equatorial
// positions in degrees.
func AngularSeparation(a, b Equatorial) float64 {
	ra1 := a.RAdeg * math.Pi / 180
	dec1 := a.DecDeg * math.Pi / 180
	ra2 := b.RAdeg * math.Pi / 180
	dec2 := b.DecDeg * math.Pi / 180

	// Haversine form, stable for small separations.
	sdRA := math.Sin((ra2 - ra1) / 2)
	sdDec := math.Sin((dec2 - dec1) / 2)
	x := sdDec*sdDec + math.Cos(dec1)*math.Cos(dec2)*sdRA*sdRA
	if x > 1 {
		x = 1
	}
	return 2 * math.Asin(math.Sqrt(x)) * 180 / math.Pi
}
