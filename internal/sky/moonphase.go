package sky

import (
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/ephem"
)

// PhaseName is a human-readable moon phase bucket.
type PhaseName string

const (
	PhaseNew            PhaseName = "New Moon"
	PhaseWaxingCrescent PhaseName = "Waxing Crescent"
	PhaseWaningCrescent PhaseName = "Waning Crescent"
	PhaseFirstQuarter   PhaseName = "First Quarter"
	PhaseLastQuarter    PhaseName = "Last Quarter"
	PhaseWaxingGibbous  PhaseName = "Waxing Gibbous"
	PhaseWaningGibbous  PhaseName = "Waning Gibbous"
	PhaseFull           PhaseName = "Full Moon"
)

// MoonPhaseState describes the moon at one instant. Recomputed per query,
// never persisted.
type MoonPhaseState struct {
	Illumination float64 // illuminated disk fraction, 0-1
	Name         PhaseName
	Waxing       bool
	LunarDay     float64   // days since the previous new moon
	Elongation   float64   // angular separation from the sun, degrees
	NextNewMoon  time.Time // UTC
	NextFullMoon time.Time // UTC
}

// MoonPhase derives the moon phase state for the given instant. Waxing is
// judged against half the actual surrounding synodic month — the real
// month varies by about half a day around its 29.53-day mean, so a fixed
// constant would misclassify instants near the quarters.
func MoonPhase(t time.Time) MoonPhaseState {
	illum := ephem.MoonIllumination(t)
	prevNew, nextNew := ephem.SurroundingNewMoons(t)
	nextFull := ephem.NextFullMoon(t)

	lunarDay := t.UTC().Sub(prevNew).Hours() / 24
	monthDays := nextNew.Sub(prevNew).Hours() / 24
	waxing := lunarDay < monthDays/2

	var sun ephem.Sun
	var moon ephem.Moon
	elongation := astro.AngularSeparation(sun.Position(t), moon.Position(t))

	return MoonPhaseState{
		Illumination: illum,
		Name:         ClassifyPhase(illum, waxing),
		Waxing:       waxing,
		LunarDay:     lunarDay,
		Elongation:   elongation,
		NextNewMoon:  nextNew,
		NextFullMoon: nextFull,
	}
}

// ClassifyPhase buckets an illumination fraction into a named phase. The
// breakpoints are contract values:
//
//	< 0.03 New, < 0.25 Crescent, < 0.45 Quarter, < 0.75 Gibbous, else Full
//
// with crescent/quarter/gibbous split by the waxing flag.
func ClassifyPhase(illumination float64, waxing bool) PhaseName {
	switch {
	case illumination < 0.03:
		return PhaseNew
	case illumination < 0.25:
		if waxing {
			return PhaseWaxingCrescent
		}
		return PhaseWaningCrescent
	case illumination < 0.45:
		if waxing {
			return PhaseFirstQuarter
		}
		return PhaseLastQuarter
	case illumination < 0.75:
		if waxing {
			return PhaseWaxingGibbous
		}
		return PhaseWaningGibbous
	default:
		return PhaseFull
	}
}
