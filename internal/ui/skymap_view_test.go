package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/sky"
	"github.com/litescript/ls-skymap/internal/state"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{360, 0},
		{-360, 0},
		{350, -10},   // wraps to -10
		{370, 10},    // wraps to 10
		{-190, 170},  // wraps to 170
		{540, 180},   // multiple wraps
		{-540, -180}, // multiple wraps
	}

	for _, tt := range tests {
		got := normalizeAngle(tt.input)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWrapAzimuth(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{365, 5},
		{-15, 345},
		{-360, 0},
		{725, 5},
	}

	for _, tt := range tests {
		got := wrapAzimuth(tt.input)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("wrapAzimuth(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLerpAngle_ShortestPath(t *testing.T) {
	tests := []struct {
		from     float64
		to       float64
		t        float64
		expected float64
	}{
		// Simple cases
		{0, 90, 0.5, 45},
		{0, 180, 0.5, 90},

		// Wrap-around: 350 to 10 should go +20, not -340
		{350, 10, 0.5, 360}, // halfway is 360 (or 0)
		{350, 10, 0.0, 350},
		{350, 10, 1.0, 370}, // ends at 370, normalizes to 10

		// Other direction: 10 to 350 should go -20
		{10, 350, 0.5, 0},
		{10, 350, 1.0, -10}, // ends at -10, normalizes to 350
	}

	for _, tt := range tests {
		got := lerpAngle(tt.from, tt.to, tt.t)
		// Normalize both for comparison
		gotNorm := normalizeAngle(got)
		expNorm := normalizeAngle(tt.expected)

		// Handle the -180/180 edge case
		diff := math.Abs(gotNorm - expNorm)
		if diff > 180 {
			diff = 360 - diff
		}

		if diff > 0.001 {
			t.Errorf("lerpAngle(%v, %v, %v) = %v (norm: %v), want %v (norm: %v)",
				tt.from, tt.to, tt.t, got, gotNorm, tt.expected, expNorm)
		}
	}
}

func TestProjectToScreen(t *testing.T) {
	m := SkyMapModel{
		camAz: 180,
		camEl: 45,
	}

	width := 100
	height := 50

	tests := []struct {
		az, el  float64
		visible bool
		desc    string
	}{
		{180, 45, true, "center of view"},
		{180, 70, true, "high elevation within FOV"},
		{180, 20, true, "low elevation within FOV"},
		{180, 90, false, "above FOV (camEl=45, fov=60)"},
		{180, 0, false, "below FOV"},
		{0, 45, false, "opposite side (180 away)"},
		{240, 45, true, "within FOV right"},
		{120, 45, true, "within FOV left"},
		{300, 45, false, "outside FOV"},
	}

	for _, tt := range tests {
		_, _, visible := m.projectToScreen(tt.az, tt.el, width, height)
		if visible != tt.visible {
			t.Errorf("projectToScreen(%v, %v) visible = %v, want %v (%s)",
				tt.az, tt.el, visible, tt.visible, tt.desc)
		}
	}
}

func TestProjectToScreen_CenterIsCenter(t *testing.T) {
	m := SkyMapModel{
		camAz: 180,
		camEl: 30,
	}

	width := 100
	height := 50

	// Object at camera center should be near screen center
	x, y, visible := m.projectToScreen(180, 30, width, height)

	if !visible {
		t.Fatal("center object should be visible")
	}

	// Should be roughly center horizontally
	if x < 40 || x > 60 {
		t.Errorf("center x = %d, expected near 50", x)
	}

	// Y depends on FOV mapping, but should be somewhere in middle region
	if y < 10 || y > 40 {
		t.Errorf("center y = %d, expected in middle region", y)
	}
}

func TestVisibleBodiesOrdered(t *testing.T) {
	scene := &sky.Scene{
		Visible: map[string]astro.Horizontal{
			"Venus":   {AzDeg: 100, AltDeg: 20},
			"Sun":     {AzDeg: 180, AltDeg: 40},
			"Jupiter": {AzDeg: 250, AltDeg: 10},
			"Moon":    {AzDeg: 90, AltDeg: 30},
		},
	}

	bodies := visibleBodiesOrdered(scene)
	if len(bodies) != 4 {
		t.Fatalf("got %d bodies, want 4", len(bodies))
	}

	want := []string{"Moon", "Sun", "Jupiter", "Venus"}
	for i, name := range want {
		if bodies[i].name != name {
			t.Errorf("bodies[%d] = %q, want %q", i, bodies[i].name, name)
		}
	}

	if got := visibleBodiesOrdered(nil); got != nil {
		t.Errorf("nil scene should yield nil, got %v", got)
	}
}

func TestSkyMapModel_UpdateDataResetsFocus(t *testing.T) {
	m := NewSkyMapModel(1.5)
	m.focusIdx = 5

	scene := &sky.Scene{
		Visible: map[string]astro.Horizontal{
			"Sun": {AzDeg: 180, AltDeg: 40},
		},
	}
	m = m.UpdateData(state.Snapshot{Scene: scene, LastCompute: time.Now()})

	if m.focusIdx != 0 {
		t.Errorf("focusIdx = %d, want 0 after shrink", m.focusIdx)
	}
	if len(m.bodies) != 1 {
		t.Errorf("bodies = %d, want 1", len(m.bodies))
	}
}

func TestSkyMapView_BrightStarLabels(t *testing.T) {
	m := NewSkyMapModel(1.5)
	m = m.SetSize(80, 24)
	m.labelMode = LabelAll

	scene := &sky.Scene{
		Stars: []sky.VisibleStar{
			{Name: "Sirius", Pos: astro.Horizontal{AzDeg: 5, AltDeg: 48}, Mag: -1.46},
			{Name: "Castor", Pos: astro.Horizontal{AzDeg: 350, AltDeg: 42}, Mag: 1.58},
		},
	}
	m = m.UpdateData(state.Snapshot{Scene: scene})

	out := m.View()
	if !strings.Contains(out, "Sirius") {
		t.Error("bright star should be labeled in label-all mode")
	}
	if strings.Contains(out, "Castor") {
		t.Error("star fainter than the label limit should not be labeled")
	}

	// Labels stay off the canvas in focused-label mode with nothing focused.
	m.labelMode = LabelFocused
	if out := m.View(); strings.Contains(out, "Sirius") {
		t.Error("star labels should only appear in label-all mode")
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag  float64
		want rune
	}{
		{-1.46, glyphStarBright},
		{1.49, glyphStarBright},
		{1.5, glyphStarMedium},
		{2.9, glyphStarMedium},
		{3.0, glyphStarDim},
		{6.5, glyphStarDim},
	}

	for _, tt := range tests {
		got, _ := starGlyph(tt.mag)
		if got != tt.want {
			t.Errorf("starGlyph(%v) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestBodyGlyph(t *testing.T) {
	if g, _ := bodyGlyph("Sun"); g != glyphSun {
		t.Errorf("Sun glyph = %q", g)
	}
	if g, _ := bodyGlyph("Moon"); g != glyphMoon {
		t.Errorf("Moon glyph = %q", g)
	}
	if g, _ := bodyGlyph("Saturn"); g != glyphPlanet {
		t.Errorf("planet glyph = %q", g)
	}
}
