package sky

import (
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/ephem"
)

// VisibleBodies evaluates each body at one instant and returns the names
// and positions of those above the observer's horizon. Every body gets its
// own transform call against the same immutable observer and instant, so
// evaluation order cannot affect results.
func VisibleBodies(bodies []ephem.Body, obs astro.Observer, t time.Time) map[string]astro.Horizontal {
	visible := make(map[string]astro.Horizontal)
	horizon := obs.HorizonAltitude()
	for _, b := range bodies {
		pos := astro.EquatorialToHorizontal(b.Position(t), obs, t)
		if pos.AltDeg > horizon {
			visible[b.Name()] = pos
		}
	}
	return visible
}
