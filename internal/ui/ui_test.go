package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/sky"
	"github.com/litescript/ls-skymap/internal/state"
)

func TestModel_DetailsView(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	obs := astro.Observer{Name: "Brisbane", LatDeg: -27.47, LonDeg: 153.02}

	base := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	scene1 := &sky.Scene{
		Time:     base,
		Observer: obs,
		Visible:  map[string]astro.Horizontal{"Sun": {AzDeg: 300, AltDeg: 25}},
	}
	scene1.MoonPhase.Name = sky.PhaseFull
	mgr.Update(scene1, 0, nil)

	scene2 := &sky.Scene{
		Time:     base.Add(5 * time.Minute),
		Observer: obs,
		Visible: map[string]astro.Horizontal{
			"Sun":  {AzDeg: 301, AltDeg: 26},
			"Moon": {AzDeg: 90, AltDeg: 2},
		},
	}
	scene2.MoonPhase.Name = sky.PhaseFull
	mgr.Update(scene2, 0, nil)

	m := New(mgr, obs, time.UTC, Options{LabelMagLimit: 1.5, ShowMagnitude: true})
	m.snapshot = mgr.Snapshot()

	out := m.renderDetails()
	for _, want := range []string{"Brisbane", "27.47°S", "Sun", "Moon rose"} {
		if !strings.Contains(out, want) {
			t.Errorf("details view missing %q:\n%s", want, out)
		}
	}
}
