// Package sky derives the renderable sky scene from the coordinate pipeline:
// rise/set events, body paths, ranked visible stars, moon phase, and the
// polyline geometry handed to presentation collaborators.
package sky

import (
	"errors"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/ephem"
)

// ErrNoEventInWindow reports that a body does not cross the horizon within
// the bounded search window: circumpolar or never-rising at this latitude.
// Callers must branch on it explicitly rather than treat it as fatal.
var ErrNoEventInWindow = errors.New("no horizon crossing in search window")

const (
	// eventScanStep is the coarse step used to bracket a horizon crossing
	// before bisection. Small enough that the moon (the fastest mover,
	// ~0.5°/hour against the stars) cannot rise and set inside one step.
	eventScanStep = 5 * time.Minute

	// eventSearchWindow bounds the forward scan. Two days covers every
	// non-circumpolar case, moonrise skipping a calendar day included.
	eventSearchWindow = 48 * time.Hour
)

// RiseSetEvent is a horizon crossing of a body's upper limb.
type RiseSetEvent struct {
	Body string
	Time time.Time
	// Pos is the body's position at the crossing. Altitude sits at the
	// body's standard altitude (≈0 for the centered horizon); treat it as
	// a validity check, not a contract.
	Pos astro.Horizontal
}

// FindRiseSet returns the next rising of body after start and the setting
// that follows that rising. Both crossings are upper-limb events: the
// body's standard altitude folds in refraction and semidiameter, and the
// observer's horizon offset shifts the threshold.
//
// Identical inputs always produce identical results.
func FindRiseSet(body ephem.Body, obs astro.Observer, start time.Time) (rise, set RiseSetEvent, err error) {
	riseTime, err := nextCrossing(body, obs, start, true)
	if err != nil {
		return rise, set, err
	}
	setTime, err := nextCrossing(body, obs, riseTime.Add(eventScanStep), false)
	if err != nil {
		return rise, set, err
	}
	return eventAt(body, obs, riseTime), eventAt(body, obs, setTime), nil
}

// eventAt evaluates the body at an event instant.
func eventAt(body ephem.Body, obs astro.Observer, t time.Time) RiseSetEvent {
	return RiseSetEvent{
		Body: body.Name(),
		Time: t,
		Pos:  astro.EquatorialToHorizontal(body.Position(t), obs, t),
	}
}

// relAltitude is the body's altitude relative to its rise/set threshold;
// zero exactly at a crossing.
func relAltitude(body ephem.Body, obs astro.Observer, t time.Time) float64 {
	h := astro.EquatorialToHorizontal(body.Position(t), obs, t)
	return h.AltDeg - body.StandardAltitude(t) - obs.HorizonAltitude()
}

// nextCrossing scans forward from start for the first threshold crossing in
// the requested direction, then bisects the bracketing step down to
// sub-second precision.
func nextCrossing(body ephem.Body, obs astro.Observer, start time.Time, rising bool) (time.Time, error) {
	deadline := start.Add(eventSearchWindow)
	prevT := start
	prev := relAltitude(body, obs, prevT)

	for t := start.Add(eventScanStep); !t.After(deadline); t = t.Add(eventScanStep) {
		cur := relAltitude(body, obs, t)
		crossed := (rising && prev <= 0 && cur > 0) || (!rising && prev > 0 && cur <= 0)
		if crossed {
			return bisectCrossing(body, obs, prevT, t, rising), nil
		}
		prevT, prev = t, cur
	}
	return time.Time{}, ErrNoEventInWindow
}

// bisectCrossing narrows a bracketed crossing to within a second.
func bisectCrossing(body ephem.Body, obs astro.Observer, lo, hi time.Time, rising bool) time.Time {
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		above := relAltitude(body, obs, mid) > 0
		if above == rising {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi.Round(time.Second)
}
