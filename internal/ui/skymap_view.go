package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/sky"
	"github.com/litescript/ls-skymap/internal/state"
)

const (
	// Field of view in degrees
	fovAz = 120.0 // horizontal FOV
	fovEl = 60.0  // vertical FOV

	// Camera pan step per keypress
	panStep = 15.0

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Body glyphs
	glyphSun         = '☉'
	glyphMoon        = '☽'
	glyphPlanet      = '✦'
	glyphBodyFocused = '◆'

	// Body colors
	colorSun         = "220" // warm gold
	colorMoon        = "252" // pale gray
	colorPlanet      = "#d0c8ff"
	colorBodyFocused = "229" // bright gold

	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·' // mag > 3.0

	// Star colors (grayscale to not compete with bodies)
	colorStarBright = "255" // bright white
	colorStarMedium = "250" // medium gray
	colorStarDim    = "244" // dim gray

	// Path trace colors
	colorSunPath  = "94"  // dim amber
	colorMoonPath = "60"  // muted purple
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only focused body
	LabelAll                      // All bodies
)

// skyBody is a visible body prepared for rendering, in a stable order.
type skyBody struct {
	name string
	pos  astro.Horizontal
}

// SkyMapModel renders the sky dome with stars, bodies, and their arcs.
type SkyMapModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz float64
	camEl float64

	// Animation state
	animating   bool
	animStartAz float64
	animStartEl float64
	animTargAz  float64
	animTargEl  float64
	animStart   time.Time

	// Focus cycles through the visible bodies
	focusIdx int
	bodies   []skyBody

	// Display toggles
	labelMode LabelMode
	showPaths bool

	// starLabelMag is the faintest magnitude that still gets a name label
	// in label-all mode.
	starLabelMag float64

	// Scene data (computed elsewhere, consumed here)
	scene *sky.Scene
}

// NewSkyMapModel creates a new sky map model.
func NewSkyMapModel(starLabelMag float64) SkyMapModel {
	return SkyMapModel{
		camAz:        0, // face north
		camEl:        45,
		labelMode:    LabelFocused,
		showPaths:    true,
		starLabelMag: starLabelMag,
	}
}

// SetSize updates the viewport size.
func (m SkyMapModel) SetSize(width, height int) SkyMapModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new scene snapshot.
func (m SkyMapModel) UpdateData(snapshot state.Snapshot) SkyMapModel {
	m.scene = snapshot.Scene
	m.bodies = visibleBodiesOrdered(m.scene)

	if m.focusIdx >= len(m.bodies) {
		m.focusIdx = 0
	}
	return m
}

// visibleBodiesOrdered flattens the scene's visible body map into a stable
// sun-moon-planets order for focus cycling.
func visibleBodiesOrdered(scene *sky.Scene) []skyBody {
	if scene == nil {
		return nil
	}
	var bodies []skyBody
	var planets []skyBody
	for name, pos := range scene.Visible {
		switch name {
		case "Sun", "Moon":
			bodies = append(bodies, skyBody{name: name, pos: pos})
		default:
			planets = append(planets, skyBody{name: name, pos: pos})
		}
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].name < bodies[j].name })
	sort.Slice(planets, func(i, j int) bool { return planets[i].name < planets[j].name })
	return append(bodies, planets...)
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyMapModel) Update(msg tea.Msg) (SkyMapModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "n":
			return m.focusNext()
		case "k", "N":
			return m.focusPrev()
		case "left", "h":
			m.camAz = wrapAzimuth(m.camAz - panStep)
			m.animating = false
		case "right", "l":
			m.camAz = wrapAzimuth(m.camAz + panStep)
			m.animating = false
		case "up":
			m.camEl = math.Min(m.camEl+panStep, 90)
			m.animating = false
		case "down":
			m.camEl = math.Max(m.camEl-panStep, 0)
			m.animating = false
		case "L":
			m.labelMode = (m.labelMode + 1) % 3
		case "p":
			m.showPaths = !m.showPaths
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyMapModel) focusNext() (SkyMapModel, tea.Cmd) {
	if len(m.bodies) == 0 {
		return m, nil
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.bodies)
	return m.startAnimation()
}

func (m SkyMapModel) focusPrev() (SkyMapModel, tea.Cmd) {
	if len(m.bodies) == 0 {
		return m, nil
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.bodies) - 1
	}
	return m.startAnimation()
}

func (m SkyMapModel) startAnimation() (SkyMapModel, tea.Cmd) {
	if len(m.bodies) == 0 || m.focusIdx >= len(m.bodies) {
		return m, nil
	}

	pos := m.bodies[m.focusIdx].pos
	m.animating = true
	m.animStartAz = m.camAz
	m.animStartEl = m.camEl
	m.animTargAz = pos.AzDeg
	m.animTargEl = pos.AltDeg
	m.animStart = time.Now()

	return m, animTick()
}

func (m SkyMapModel) updateAnimation() (SkyMapModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		// Animation complete
		m.animating = false
		m.camAz = m.animTargAz
		m.camEl = m.animTargEl
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	// Interpolate azimuth with wrap-around handling
	m.camAz = lerpAngle(m.animStartAz, m.animTargAz, t)
	m.camEl = lerp(m.animStartEl, m.animTargEl, t)

	return m, animTick()
}

// View renders the sky map.
func (m SkyMapModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky map requires larger terminal"
	}
	if m.scene == nil {
		return "Computing sky scene..."
	}

	// Reserve lines for header and status
	viewHeight := m.height - 4
	viewWidth := m.width

	canvas := m.renderSkyCanvas(viewWidth, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyMapModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")) // violet
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))               // muted purple
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPlanet))

	title := titleStyle.Render("Sky Map")

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = accentStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = accentStyle.Render("Labels: all")
	}

	pathStr := dimStyle.Render("Paths: off")
	if m.showPaths {
		pathStr = accentStyle.Render("Paths: on")
	}

	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° El:%.0f°", m.camAz, m.camEl))
	stars := dimStyle.Render(fmt.Sprintf("%d stars", len(m.scene.Stars)))

	return fmt.Sprintf("%s | %s | %s | %s | %s", title, labelStr, pathStr, compass, stars)
}

func (m SkyMapModel) renderStatus() string {
	if len(m.bodies) == 0 {
		return "No bodies above the horizon"
	}
	if m.focusIdx >= len(m.bodies) {
		return ""
	}

	body := m.bodies[m.focusIdx]
	line := fmt.Sprintf(">>> %s | Az:%.0f° Alt:%.0f°", body.name, body.pos.AzDeg, body.pos.AltDeg)

	if track, ok := m.bodyTrack(body.name); ok && !track.Rise.IsZero() {
		line += fmt.Sprintf(" | Rise %s Set %s",
			track.Rise.Format("15:04"), track.Set.Format("15:04"))
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return accentStyle.Render(line)
}

// bodyTrack finds the scene track for a body name.
func (m SkyMapModel) bodyTrack(name string) (sky.BodyTrack, bool) {
	switch name {
	case "Sun":
		return m.scene.Sun, true
	case "Moon":
		return m.scene.Moon, true
	}
	for _, t := range m.scene.Planets {
		if t.Name == name {
			return t, true
		}
	}
	return sky.BodyTrack{}, false
}

// bodyPos tracks body position for label rendering
type bodyPos struct {
	x, y       int
	name       string
	isFocused  bool
	labelStart int
	labelEnd   int
}

func (m SkyMapModel) renderSkyCanvas(width, height int) string {
	// Initialize canvas with empty space (very dark background)
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236" // very dark background
		}
	}

	horizonY := height - 2

	// Draw sun and moon arcs first so stars and bodies overwrite them
	if m.showPaths {
		m.drawPath(canvas, colors, width, horizonY, m.scene.Sun, colorSunPath)
		m.drawPath(canvas, colors, width, horizonY, m.scene.Moon, colorMoonPath)
	}

	// Collect glyph positions for label rendering
	var positions []bodyPos

	// Draw ranked stars
	for _, star := range m.scene.Stars {
		x, y, visible := m.projectToScreen(star.Pos.AzDeg, star.Pos.AltDeg, width, height)
		if !visible {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color

		// Bright stars get name labels when all labels are shown.
		if m.labelMode == LabelAll && star.Mag <= m.starLabelMag {
			positions = append(positions, bodyPos{x: x, y: y, name: star.Name})
		}
	}

	// Draw horizon line (purple tint)
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}

	// Draw cardinal directions on horizon
	m.drawCardinal(canvas, colors, width, height, "N", 0)
	m.drawCardinal(canvas, colors, width, height, "E", 90)
	m.drawCardinal(canvas, colors, width, height, "S", 180)
	m.drawCardinal(canvas, colors, width, height, "W", 270)

	for i, body := range m.bodies {
		x, y, visible := m.projectToScreen(body.pos.AzDeg, body.pos.AltDeg, width, height)
		if !visible {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		isFocused := i == m.focusIdx

		sym, color := bodyGlyph(body.name)
		if isFocused {
			sym = glyphBodyFocused
			color = colorBodyFocused
		}

		canvas[y][x] = sym
		colors[y][x] = color

		positions = append(positions, bodyPos{
			x:         x,
			y:         y,
			name:      body.name,
			isFocused: isFocused,
		})
	}

	// Draw labels based on label mode
	m.renderLabels(canvas, colors, width, horizonY, positions)

	// Observer marker at bottom center
	siteX := width / 2
	siteY := height - 1
	if siteY >= 0 && siteX >= 0 && siteX < width {
		canvas[siteY][siteX] = '▲'
		colors[siteY][siteX] = "46"
	}

	// Render canvas to string
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// drawPath plots a body's sampled arc as dim trace dots.
func (m SkyMapModel) drawPath(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, track sky.BodyTrack, color lipgloss.Color) {
	for _, s := range track.Path.Samples {
		x, y, visible := m.projectToScreen(s.Pos.AzDeg, s.Pos.AltDeg, width, horizonY+2)
		if !visible {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		if canvas[y][x] == ' ' {
			canvas[y][x] = '∙'
			colors[y][x] = color
		}
	}
}

// renderLabels draws body labels on the canvas based on label mode.
// Focused body labels take priority in overlapping regions.
func (m SkyMapModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	// Calculate label positions (to the right of the glyph with 1-char gap)
	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		labelLen := len(pos.name)
		if pos.isFocused {
			labelLen += 2
		}
		pos.labelEnd = pos.labelStart + labelLen
	}

	// Track which x positions on each row are claimed by focused labels
	focusedClaims := make(map[int]map[int]bool) // y -> x -> claimed

	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = true
		}
		if !showLabel {
			continue
		}

		labelColor := lipgloss.Color(colorPlanet)
		if pos.isFocused {
			labelColor = colorBodyFocused
		}

		// Arrow prefix points back at the focused body's glyph.
		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		labelRunes := []rune(labelText)
		for i, r := range labelRunes {
			x := pos.labelStart + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = labelColor
		}
	}
}

// starGlyph returns the glyph and color for a star by magnitude. Brighter
// stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

// bodyGlyph returns the glyph and color for a solar system body.
func bodyGlyph(name string) (rune, lipgloss.Color) {
	switch name {
	case "Sun":
		return glyphSun, colorSun
	case "Moon":
		return glyphMoon, colorMoon
	default:
		return glyphPlanet, colorPlanet
	}
}

func (m SkyMapModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2 // horizon line

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = rune(label[0])
		colors[y][x] = "252"
	}
}

// projectToScreen converts az/alt to screen coordinates relative to camera
func (m SkyMapModel) projectToScreen(az, alt float64, width, height int) (int, int, bool) {
	// Calculate angular offset from camera center
	dAz := normalizeAngle(az - m.camAz)
	dEl := alt - m.camEl

	// Check if within FOV
	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dEl < -fovEl/2 || dEl > fovEl/2 {
		return 0, 0, false
	}

	// Map to screen coordinates
	// X: -fovAz/2..+fovAz/2 -> 0..width
	// Y: +fovEl/2..-fovEl/2 -> 0..height (inverted, higher alt = higher on screen)
	horizonY := height - 2

	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovEl/2 - dEl) / fovEl * float64(horizonY))

	return x, y, true
}

// wrapAzimuth keeps a camera azimuth in 0..360
func wrapAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

// lerp linear interpolation
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Init returns nil cmd
func (m SkyMapModel) Init() tea.Cmd {
	return nil
}
