package sky

import (
	"math"
	"testing"
	"time"
)

func TestClassifyPhase(t *testing.T) {
	tests := []struct {
		illum  float64
		waxing bool
		want   PhaseName
	}{
		{0.0, true, PhaseNew},
		{0.029, false, PhaseNew},
		{0.03, true, PhaseWaxingCrescent},
		{0.1, false, PhaseWaningCrescent},
		{0.249, true, PhaseWaxingCrescent},
		{0.25, true, PhaseFirstQuarter},
		{0.44, false, PhaseLastQuarter},
		{0.45, true, PhaseWaxingGibbous},
		{0.6, false, PhaseWaningGibbous},
		{0.749, true, PhaseWaxingGibbous},
		{0.75, true, PhaseFull},
		{0.75, false, PhaseFull},
		{1.0, true, PhaseFull},
	}
	for _, tt := range tests {
		if got := ClassifyPhase(tt.illum, tt.waxing); got != tt.want {
			t.Errorf("ClassifyPhase(%v, %v) = %v, want %v", tt.illum, tt.waxing, got, tt.want)
		}
	}
}

// The phase state for any instant must be internally consistent: the
// illumination fraction is physical, the lunar day fits inside one synodic
// month, and the next full moon falls on the correct side of the next new
// moon depending on waxing or waning.
func TestMoonPhaseConsistency(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 20, 3, 30, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 11, 18, 0, 0, 0, time.UTC),
	}
	for _, instant := range instants {
		state := MoonPhase(instant)

		if state.Illumination < 0 || state.Illumination > 1 {
			t.Errorf("%v: illumination %v out of [0,1]", instant, state.Illumination)
		}
		if state.LunarDay < 0 || state.LunarDay > 30.5 {
			t.Errorf("%v: lunar day %v out of range", instant, state.LunarDay)
		}
		if !state.NextNewMoon.After(instant) {
			t.Errorf("%v: next new moon %v not in the future", instant, state.NextNewMoon)
		}
		if !state.NextFullMoon.After(instant) {
			t.Errorf("%v: next full moon %v not in the future", instant, state.NextFullMoon)
		}
		if state.Waxing && state.NextFullMoon.After(state.NextNewMoon) {
			t.Errorf("%v: waxing but next full %v after next new %v",
				instant, state.NextFullMoon, state.NextNewMoon)
		}
		if !state.Waxing && state.NextNewMoon.After(state.NextFullMoon) {
			t.Errorf("%v: waning but next new %v after next full %v",
				instant, state.NextNewMoon, state.NextFullMoon)
		}
		if got := ClassifyPhase(state.Illumination, state.Waxing); got != state.Name {
			t.Errorf("%v: name %v inconsistent with classification %v", instant, state.Name, got)
		}
		if state.Elongation < 0 || state.Elongation > 180 {
			t.Errorf("%v: elongation %v out of [0,180]", instant, state.Elongation)
		}
		// The illuminated fraction follows the elongation geometrically:
		// k = (1 - cos ψ) / 2, up to the small sun-moon distance correction.
		geo := (1 - math.Cos(state.Elongation*math.Pi/180)) / 2
		if math.Abs(geo-state.Illumination) > 0.02 {
			t.Errorf("%v: illumination %v inconsistent with elongation %v (geometric %v)",
				instant, state.Illumination, state.Elongation, geo)
		}
	}
}
