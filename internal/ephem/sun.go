package ephem

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/rise"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/litescript/ls-skymap/internal/astro"
)

// Sun is the apparent sun.
type Sun struct{}

func (Sun) Name() string { return "Sun" }

// Position returns the apparent geocentric equatorial position of the sun.
func (Sun) Position(t time.Time) astro.Equatorial {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	return astro.Equatorial{RAdeg: ra.Deg(), DecDeg: dec.Deg()}
}

// StandardAltitude is the conventional -50′: 34′ refraction plus 16′
// semidiameter, so sunrise is the upper limb touching the horizon.
func (Sun) StandardAltitude(time.Time) float64 {
	return rise.Stdh0Solar.Deg()
}
