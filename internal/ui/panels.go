package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/sky"
	"github.com/litescript/ls-skymap/internal/state"
)

// Panel colors
const (
	colorPanelLabel = "135" // violet
	colorPanelDim   = "60"  // muted purple
	colorPanelText  = "252" // pale gray
	colorPanelGold  = "229"
)

const illumBarWidth = 20

// FormatCoordinate renders a latitude or longitude with its hemisphere
// letter, e.g. 27.47°S or 153.02°E.
func FormatCoordinate(deg float64, isLatitude bool) string {
	direction := "N"
	if isLatitude {
		if deg < 0 {
			direction = "S"
		}
	} else {
		direction = "E"
		if deg < 0 {
			direction = "W"
		}
	}
	return fmt.Sprintf("%.2f°%s", math.Abs(deg), direction)
}

// RenderLocationPanel renders the observing site and local time summary.
func RenderLocationPanel(obs astro.Observer, at time.Time, loc *time.Location) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelLabel)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelText))

	name := obs.Name
	if name == "" {
		name = "Observer"
	}

	local := at.In(loc)
	coords := fmt.Sprintf("%s (%s; %s)", name,
		FormatCoordinate(obs.LatDeg, true),
		FormatCoordinate(obs.LonDeg, false))

	var b strings.Builder
	b.WriteString(labelStyle.Render("Location: "))
	b.WriteString(textStyle.Render(coords))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Time:     "))
	b.WriteString(textStyle.Render(fmt.Sprintf("%s %s %s",
		local.Format("2006-01-02"),
		strings.ToLower(local.Format("3:04pm")),
		loc.String())))
	return b.String()
}

// RenderMoonPanel renders the moon phase summary: name, illumination bar,
// lunar day, and the next new and full moons in local time.
func RenderMoonPanel(phase sky.MoonPhaseState, loc *time.Location) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelLabel)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelText))
	goldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelGold))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim))

	trend := "waning"
	if phase.Waxing {
		trend = "waxing"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Moon: "))
	b.WriteString(goldStyle.Render(string(phase.Name)))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", trend)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Illumination: "))
	b.WriteString(renderIllumBar(phase.Illumination))
	b.WriteString(textStyle.Render(fmt.Sprintf(" %.0f%%", phase.Illumination*100)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Lunar day: "))
	b.WriteString(textStyle.Render(fmt.Sprintf("%.1f", phase.LunarDay)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Elongation: "))
	b.WriteString(textStyle.Render(fmt.Sprintf("%.0f° from the sun", phase.Elongation)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Next new:  "))
	b.WriteString(textStyle.Render(phase.NextNewMoon.In(loc).Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Next full: "))
	b.WriteString(textStyle.Render(phase.NextFullMoon.In(loc).Format("2006-01-02 15:04")))

	return b.String()
}

// renderIllumBar draws a fixed-width bar filled to the illuminated fraction.
func renderIllumBar(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*illumBarWidth + 0.5)

	goldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelGold))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim))
	return goldStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", illumBarWidth-filled))
}

// RenderBodiesPanel renders the visible bodies with their climb rate and a
// short altitude history sparkline. rate and history are typically
// Manager.AltitudeRate and Manager.GetBodyHistory.
func RenderBodiesPanel(scene *sky.Scene, rate func(string) float64, history func(string) *state.BodyHistory) string {
	bodies := visibleBodiesOrdered(scene)
	if len(bodies) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim)).Render("No bodies above the horizon")
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelLabel)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelText))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim))

	var lines []string
	lines = append(lines, labelStyle.Render(
		fmt.Sprintf("%-10s %8s %8s %9s  %s", "Body", "Az", "Alt", "Rate", "Trend")))

	for _, body := range bodies {
		r := rate(body.name)
		arrow := "→"
		if r > 0.5 {
			arrow = "↑"
		} else if r < -0.5 {
			arrow = "↓"
		}
		row := textStyle.Render(fmt.Sprintf("%-10s %7.1f° %7.1f° %s %+5.1f°/h",
			body.name, astro.CenterAzimuth(body.pos.AzDeg), body.pos.AltDeg, arrow, r))
		if spark := altitudeSparkline(history(body.name), 12); spark != "" {
			row += "  " + dimStyle.Render(spark)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// altitudeSparkline scales the last width history points into block glyphs.
// Fewer than two points yields nothing to trend, so an empty string.
func altitudeSparkline(hist *state.BodyHistory, width int) string {
	if hist == nil || len(hist.AltitudeHistory) < 2 {
		return ""
	}
	points := hist.AltitudeHistory
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}

	var b strings.Builder
	for _, p := range points {
		idx := 0
		if hi > lo {
			idx = int((p.Value - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// RenderEventsPanel renders the most recent sky change events, newest last.
func RenderEventsPanel(events []state.Event, loc *time.Location, max int) string {
	if len(events) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim)).Render("No events yet")
	}
	if max > 0 && len(events) > max {
		events = events[len(events)-max:]
	}

	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelText))

	var lines []string
	for _, e := range events {
		stamp := timeStyle.Render(e.Timestamp.In(loc).Format("15:04"))
		var desc string
		switch e.Type {
		case state.EventBodyRisen:
			desc = fmt.Sprintf("%s rose", e.Body)
		case state.EventBodySet:
			desc = fmt.Sprintf("%s set", e.Body)
		case state.EventPhaseChanged:
			desc = fmt.Sprintf("Moon entered %s", e.NewPhase)
		default:
			desc = string(e.Type)
		}
		lines = append(lines, stamp+" "+textStyle.Render(desc))
	}
	return strings.Join(lines, "\n")
}

// RenderStarsPanel renders the brightest ranked stars as a table.
func RenderStarsPanel(stars []sky.VisibleStar, max int, showMag bool) string {
	if len(stars) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim)).Render("No stars above the horizon")
	}
	if max > 0 && len(stars) > max {
		stars = stars[:max]
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelLabel)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelText))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelDim))

	var lines []string
	header := fmt.Sprintf("%-16s %7s %7s", "Star", "Az", "Alt")
	if showMag {
		header += fmt.Sprintf(" %6s", "Mag")
	}
	lines = append(lines, labelStyle.Render(header))

	for _, s := range stars {
		row := textStyle.Render(fmt.Sprintf("%-16s %6.1f° %6.1f°", s.Name,
			astro.CenterAzimuth(s.Pos.AzDeg), s.Pos.AltDeg))
		if showMag {
			row += dimStyle.Render(fmt.Sprintf(" %6.2f", s.Mag))
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}
