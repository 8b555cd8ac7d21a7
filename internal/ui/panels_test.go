package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/sky"
	"github.com/litescript/ls-skymap/internal/state"
)

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		deg        float64
		isLatitude bool
		want       string
	}{
		{-27.47, true, "27.47°S"},
		{51.48, true, "51.48°N"},
		{153.02, false, "153.02°E"},
		{-73.97, false, "73.97°W"},
		{0, true, "0.00°N"},
		{0, false, "0.00°E"},
	}

	for _, tt := range tests {
		got := FormatCoordinate(tt.deg, tt.isLatitude)
		if got != tt.want {
			t.Errorf("FormatCoordinate(%v, %v) = %q, want %q", tt.deg, tt.isLatitude, got, tt.want)
		}
	}
}

func TestRenderLocationPanel(t *testing.T) {
	obs := astro.Observer{
		Name:   "Brisbane",
		LatDeg: -27.47,
		LonDeg: 153.02,
	}
	at := time.Date(2026, 3, 20, 2, 30, 0, 0, time.UTC)

	out := RenderLocationPanel(obs, at, time.UTC)

	for _, want := range []string{"Brisbane", "27.47°S", "153.02°E", "2026-03-20", "2:30am", "UTC"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMoonPanel(t *testing.T) {
	phase := sky.MoonPhaseState{
		Name:         sky.PhaseWaxingGibbous,
		Illumination: 0.75,
		Waxing:       true,
		LunarDay:     10.3,
		Elongation:   120.4,
		NextNewMoon:  time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
		NextFullMoon: time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC),
	}

	out := RenderMoonPanel(phase, time.UTC)

	for _, want := range []string{string(sky.PhaseWaxingGibbous), "waxing", "75%", "10.3", "120° from the sun", "2026-04-02", "2026-03-25"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}

func TestRenderIllumBar(t *testing.T) {
	tests := []struct {
		fraction   float64
		wantFilled int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.5, 20}, // clamped
		{-0.2, 0}, // clamped
	}

	for _, tt := range tests {
		bar := renderIllumBar(tt.fraction)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled != tt.wantFilled {
			t.Errorf("renderIllumBar(%v) filled = %d, want %d", tt.fraction, filled, tt.wantFilled)
		}
		if filled+empty != illumBarWidth {
			t.Errorf("renderIllumBar(%v) width = %d, want %d", tt.fraction, filled+empty, illumBarWidth)
		}
	}
}

func TestRenderBodiesPanel(t *testing.T) {
	scene := &sky.Scene{
		Visible: map[string]astro.Horizontal{
			"Sun":  {AzDeg: 300, AltDeg: 25},
			"Mars": {AzDeg: 90, AltDeg: 40},
		},
	}
	rate := func(name string) float64 {
		if name == "Sun" {
			return -3.2
		}
		return 4.8
	}
	history := func(name string) *state.BodyHistory {
		if name != "Mars" {
			return nil
		}
		return &state.BodyHistory{
			Body: name,
			AltitudeHistory: []state.TimeSeries{
				{Value: 10}, {Value: 20}, {Value: 40},
			},
		}
	}

	out := RenderBodiesPanel(scene, rate, history)

	for _, want := range []string{"Sun", "Mars", "↓", "-3.2", "↑", "+4.8"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
	// Mars' altitude history scales to a min, mid, max sparkline.
	if !strings.Contains(out, "▁▃█") {
		t.Errorf("panel missing sparkline:\n%s", out)
	}

	if out := RenderBodiesPanel(&sky.Scene{}, rate, history); !strings.Contains(out, "No bodies") {
		t.Errorf("empty panel = %q", out)
	}
}

func TestAltitudeSparkline(t *testing.T) {
	if got := altitudeSparkline(nil, 12); got != "" {
		t.Errorf("nil history sparkline = %q", got)
	}
	one := &state.BodyHistory{AltitudeHistory: []state.TimeSeries{{Value: 5}}}
	if got := altitudeSparkline(one, 12); got != "" {
		t.Errorf("single-point sparkline = %q", got)
	}

	// Flat history stays at the baseline glyph.
	flat := &state.BodyHistory{AltitudeHistory: []state.TimeSeries{{Value: 5}, {Value: 5}, {Value: 5}}}
	if got := altitudeSparkline(flat, 12); got != "▁▁▁" {
		t.Errorf("flat sparkline = %q", got)
	}

	// Only the last width points are shown.
	long := &state.BodyHistory{AltitudeHistory: make([]state.TimeSeries, 20)}
	for i := range long.AltitudeHistory {
		long.AltitudeHistory[i].Value = float64(i)
	}
	got := altitudeSparkline(long, 12)
	if n := len([]rune(got)); n != 12 {
		t.Errorf("sparkline length = %d, want 12", n)
	}
}

func TestRenderEventsPanel(t *testing.T) {
	base := time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC)
	events := []state.Event{
		{Type: state.EventBodyRisen, Timestamp: base, Body: "Moon"},
		{Type: state.EventBodySet, Timestamp: base.Add(time.Hour), Body: "Venus"},
		{Type: state.EventPhaseChanged, Timestamp: base.Add(2 * time.Hour), Body: "Moon", NewPhase: "Full Moon"},
	}

	out := RenderEventsPanel(events, time.UTC, 10)

	for _, want := range []string{"Moon rose", "Venus set", "Moon entered Full Moon", "18:00", "19:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}

	// Truncation keeps the newest events
	out = RenderEventsPanel(events, time.UTC, 2)
	if strings.Contains(out, "Moon rose") {
		t.Error("truncated panel should drop the oldest event")
	}
	if !strings.Contains(out, "Venus set") {
		t.Error("truncated panel should keep newer events")
	}

	if out := RenderEventsPanel(nil, time.UTC, 10); !strings.Contains(out, "No events") {
		t.Errorf("empty panel = %q", out)
	}
}

func TestRenderStarsPanel(t *testing.T) {
	stars := []sky.VisibleStar{
		{Name: "Sirius", Pos: astro.Horizontal{AzDeg: 200, AltDeg: 45.2}, Mag: -1.46},
		{Name: "Canopus", Pos: astro.Horizontal{AzDeg: 190, AltDeg: 30.1}, Mag: -0.74},
		{Name: "Vega", Pos: astro.Horizontal{AzDeg: 10, AltDeg: 60.0}, Mag: 0.03},
	}

	out := RenderStarsPanel(stars, 10, true)
	for _, want := range []string{"Sirius", "Canopus", "Vega", "-1.46", "45.2"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}

	// Truncation keeps the brightest (first) stars
	out = RenderStarsPanel(stars, 2, false)
	if strings.Contains(out, "Vega") {
		t.Error("truncated panel should drop trailing stars")
	}
	if strings.Contains(out, "-1.46") {
		t.Error("showMag=false should omit magnitudes")
	}

	if out := RenderStarsPanel(nil, 10, true); !strings.Contains(out, "No stars") {
		t.Errorf("empty panel = %q", out)
	}
}
