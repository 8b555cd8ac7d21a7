// Package ephem models the celestial bodies the sky map can place: fixed
// stars identified by catalogue coordinates, and orbiting bodies (sun, moon,
// planets) whose positions are computed from the meeus ephemeris algorithms.
package ephem

import (
	"time"

	"github.com/soniakeys/meeus/v3/rise"

	"github.com/litescript/ls-skymap/internal/astro"
)

// Body is anything that can be located on the celestial sphere at an instant.
// A body's horizontal position is always a function of (body, observer,
// instant); nothing here caches positions across instants.
type Body interface {
	// Name returns the display name of the body.
	Name() string

	// Position returns the body's geocentric equatorial position at t.
	Position(t time.Time) astro.Equatorial

	// StandardAltitude returns the altitude of the body's center, in
	// degrees, at which its upper limb sits on the astronomical horizon.
	// It folds in atmospheric refraction and, where it matters, the
	// body's semidiameter and parallax — so rise and set are upper-limb
	// events, not center crossings.
	StandardAltitude(t time.Time) float64
}

// FixedBody is a star or other object fixed at catalogue coordinates.
type FixedBody struct {
	BodyName string
	Eq       astro.Equatorial
}

// NewFixedBody creates a fixed body at the given J2000 position.
func NewFixedBody(name string, eq astro.Equatorial) FixedBody {
	return FixedBody{BodyName: name, Eq: eq}
}

func (b FixedBody) Name() string { return b.BodyName }

func (b FixedBody) Position(time.Time) astro.Equatorial { return b.Eq }

// StandardAltitude for a point source is refraction only.
func (b FixedBody) StandardAltitude(time.Time) float64 {
	return rise.Stdh0Stellar.Deg()
}
