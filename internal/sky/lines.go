package sky

import (
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/ephem"
)

// lineStepDeg is the sampling step for reference great circles. 15 degrees
// is coarse enough to be cheap and fine enough that the drawn line stays
// smooth after seam wrapping.
const lineStepDeg = 15.0

// SkyLine is a reference line traced across the observer's sky, already in
// plot space (centered azimuth, altitude) and split at the ±180° seam.
type SkyLine struct {
	Name      string
	Polylines [][]Point
}

// CelestialEquator traces the celestial equator (declination zero) across
// the observer's sky at t, keeping the part above the horizon.
func CelestialEquator(obs astro.Observer, t time.Time) SkyLine {
	return traceLine("Celestial Equator", obs, t, func(deg float64) astro.Equatorial {
		return astro.Equatorial{RAdeg: deg, DecDeg: 0}
	})
}

// Ecliptic traces the ecliptic across the observer's sky at t, keeping the
// part above the horizon.
func Ecliptic(obs astro.Observer, t time.Time) SkyLine {
	return traceLine("Ecliptic", obs, t, func(deg float64) astro.Equatorial {
		return ephem.EclipticToEquatorial(deg, t)
	})
}

// traceLine samples a parameterized equatorial curve every lineStepDeg,
// transforms each sample, drops those below the horizon and wraps the rest
// at the seam. Horizon gaps naturally break the line into polylines too:
// a dip below the horizon ends one polyline and the next visible sample
// starts another.
func traceLine(name string, obs astro.Observer, t time.Time, at func(deg float64) astro.Equatorial) SkyLine {
	line := SkyLine{Name: name}
	horizon := obs.HorizonAltitude()

	var run []Point
	flush := func() {
		if len(run) >= 2 {
			line.Polylines = append(line.Polylines, WrapPolyline(run)...)
		}
		run = nil
	}

	for deg := 0.0; deg <= 360; deg += lineStepDeg {
		pos := astro.EquatorialToHorizontal(at(deg), obs, t)
		if pos.AltDeg <= horizon {
			flush()
			continue
		}
		run = append(run, Point{X: astro.CenterAzimuth(pos.AzDeg), Y: pos.AltDeg})
	}
	flush()
	return line
}

// LabelAnchor returns the highest vertex of the line, where the on-screen
// label goes. False when the line is entirely below the horizon.
func (l SkyLine) LabelAnchor() (Point, bool) {
	found := false
	var best Point
	for _, poly := range l.Polylines {
		for _, p := range poly {
			if !found || p.Y > best.Y {
				best, found = p, true
			}
		}
	}
	return best, found
}
