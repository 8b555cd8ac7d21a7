package ephem

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/parallax"
	"github.com/soniakeys/meeus/v3/rise"

	"github.com/litescript/ls-skymap/internal/astro"
)

// kmPerAU converts the moon distance from moonposition (km) to AU for the
// parallax computation.
const kmPerAU = 149597870.7

// Moon is the moon.
type Moon struct{}

func (Moon) Name() string { return "Moon" }

// Position returns the geocentric equatorial position of the moon,
// converted from the ecliptic position through the mean obliquity.
func (Moon) Position(t time.Time) astro.Equatorial {
	jd := julian.TimeToJD(t.UTC())
	lon, lat, _ := moonposition.Position(jd)
	obl := nutation.MeanObliquity(jd)
	s, c := math.Sincos(obl.Rad())
	ra, dec := coord.EclToEq(lon, lat, s, c)
	return astro.Equatorial{RAdeg: ra.Deg(), DecDeg: dec.Deg()}
}

// StandardAltitude varies with the moon's distance: the horizontal parallax
// term dominates and flips the sign relative to other bodies.
func (Moon) StandardAltitude(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	_, _, distKm := moonposition.Position(jd)
	hp := parallax.Horizontal(distKm / kmPerAU)
	return rise.Stdh0Lunar(hp).Deg()
}
