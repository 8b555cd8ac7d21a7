package ephem

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/logging"
)

// Provider owns the set of orbiting bodies available to the pipeline.
// The sun and moon are always available; planets depend on the VSOP87
// dataset and are disabled, with a logged reason, when it cannot be loaded.
// A missing dataset never affects sun, moon, or star computations.
type Provider struct {
	sun     Sun
	moon    Moon
	planets []Body
}

// NewProvider builds a provider, loading planets from vsop87Dir. Pass an
// empty dir to fall back to the VSOP87 environment variable.
func NewProvider(vsop87Dir string, logger *logging.Logger) *Provider {
	planets, errs := LoadPlanets(vsop87Dir)
	for _, err := range errs {
		logger.Warn("ephem: planets unavailable: %v", err)
	}
	if len(planets) > 0 {
		logger.Debug("ephem: loaded %d planets", len(planets))
	}
	return &Provider{planets: planets}
}

// Sun returns the sun body.
func (p *Provider) Sun() Body { return p.sun }

// Moon returns the moon body.
func (p *Provider) Moon() Body { return p.moon }

// Planets returns the loaded planet bodies, possibly empty.
func (p *Provider) Planets() []Body { return p.planets }

// Bodies returns sun, moon, and all loaded planets.
func (p *Provider) Bodies() []Body {
	bodies := make([]Body, 0, len(p.planets)+2)
	bodies = append(bodies, p.sun, p.moon)
	bodies = append(bodies, p.planets...)
	return bodies
}

// EclipticToEquatorial converts an ecliptic longitude on the ecliptic plane
// (latitude 0) to an equatorial position using the mean obliquity at t.
// Used to trace the ecliptic line across the sky.
func EclipticToEquatorial(lonDeg float64, t time.Time) astro.Equatorial {
	jd := julian.TimeToJD(t.UTC())
	obl := nutation.MeanObliquity(jd)
	s, c := math.Sincos(obl.Rad())
	ra, dec := coord.EclToEq(unit.AngleFromDeg(lonDeg), 0, s, c)
	return astro.Equatorial{RAdeg: ra.Deg(), DecDeg: dec.Deg()}
}
