package ephem

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonillum"
	"github.com/soniakeys/meeus/v3/moonphase"
)

// meanSynodicDays seeds the lunation search; the actual month length used by
// callers comes from the surrounding new moon instants, not this constant.
const meanSynodicDays = 29.530588

// MoonIllumination returns the illuminated fraction of the moon's disk at t,
// in [0,1].
func MoonIllumination(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	i := moonillum.PhaseAngle3(jd)
	return base.Illuminated(i)
}

// SurroundingNewMoons returns the new moon instants bracketing t.
func SurroundingNewMoons(t time.Time) (prev, next time.Time) {
	return surroundingPhase(t, moonphase.New)
}

// NextFullMoon returns the first full moon after t.
func NextFullMoon(t time.Time) time.Time {
	_, next := surroundingPhase(t, moonphase.Full)
	return next
}

// surroundingPhase brackets t with the given lunation event. The meeus phase
// functions take a decimal year and return the event nearest it, so stepping
// the year argument by one synodic month in each direction is guaranteed to
// produce candidates on both sides of t.
func surroundingPhase(t time.Time, phase func(float64) float64) (prev, next time.Time) {
	jd := julian.TimeToJD(t.UTC())
	yearStep := meanSynodicDays / base.JulianYear

	var prevJD, nextJD float64
	for k := -2; k <= 2; k++ {
		y := base.JDEToJulianYear(jd) + float64(k)*yearStep
		cand := phase(y)
		if cand <= jd && (prevJD == 0 || cand > prevJD) {
			prevJD = cand
		}
		if cand > jd && (nextJD == 0 || cand < nextJD) {
			nextJD = cand
		}
	}
	return julian.JDToTime(prevJD), julian.JDToTime(nextJD)
}
