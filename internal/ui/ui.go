// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/state"
	"github.com/litescript/ls-skymap/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSkyMap ViewMode = iota
	ViewDetails
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// SceneUpdateMsg signals a freshly computed scene is available.
	SceneUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a scene computation error.
	ErrorMsg struct {
		Error error
	}
)

// Options are display settings carried in from configuration.
type Options struct {
	// LabelMagLimit is the faintest magnitude that still gets a name label
	// on the sky canvas when all labels are shown.
	LabelMagLimit float64

	// ShowMagnitude toggles the magnitude column in the stars panel.
	ShowMagnitude bool
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state    *state.Manager
	observer astro.Observer
	location *time.Location
	opts     Options

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	// Sub-models
	skyMap SkyMapModel

	// Data snapshot (updated on SceneUpdateMsg and ticks)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, obs astro.Observer, loc *time.Location, opts Options) Model {
	if loc == nil {
		loc = time.UTC
	}
	return Model{
		state:    stateMgr,
		observer: obs,
		location: loc,
		opts:     opts,
		viewMode: ViewSkyMap,
		skyMap:   NewSkyMapModel(opts.LabelMagLimit),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewSkyMap
		case "2", "i":
			m.viewMode = ViewDetails

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~8 lines, footer ~2 lines
		contentHeight := msg.Height - 10
		m.skyMap = m.skyMap.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()
		m.skyMap = m.skyMap.UpdateData(m.snapshot)

	case SceneUpdateMsg:
		m.snapshot = msg.Snapshot
		m.skyMap = m.skyMap.UpdateData(m.snapshot)
		m.statusMsg = ""

	case ErrorMsg:
		m.statusMsg = fmt.Sprintf("Scene computation failed: %v", msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSkyMap:
		m.skyMap, cmd = m.skyMap.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSkyMap:
		content = m.skyMap.View()
	case ViewDetails:
		content = m.renderDetails()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

// renderDetails stacks the location, moon, stars, and events panels.
func (m Model) renderDetails() string {
	scene := m.snapshot.Scene
	if scene == nil {
		return "Computing sky scene..."
	}

	sections := []string{
		RenderLocationPanel(scene.Observer, scene.Time, m.location),
		RenderMoonPanel(scene.MoonPhase, m.location),
		RenderBodiesPanel(scene, m.state.AltitudeRate, m.state.GetBodyHistory),
		RenderStarsPanel(scene.Stars, 15, m.opts.ShowMagnitude),
		RenderEventsPanel(m.state.RecentEvents(8), m.location, 8),
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderHeader() string {
	logo := []string{
		`  ██╗     ███████╗      ███████╗██╗  ██╗██╗   ██╗███╗   ███╗ █████╗ ██████╗ `,
		`  ██║     ██╔════╝      ██╔════╝██║ ██╔╝╚██╗ ██╔╝████╗ ████║██╔══██╗██╔══██╗`,
		`  ██║     ███████╗█████╗███████╗█████╔╝  ╚████╔╝ ██╔████╔██║███████║██████╔╝`,
		`  ██║     ╚════██║╚════╝╚════██║██╔═██╗   ╚██╔╝  ██║╚██╔╝██║██╔══██║██╔═══╝ `,
		`  ███████╗███████║      ███████║██║  ██╗   ██║   ██║ ╚═╝ ██║██║  ██║██║     `,
		`  ╚══════╝╚══════╝      ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝     `,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	tagline := fmt.Sprintf("  Night Sky · %s · v%s", m.observer.Name, version.Version)
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// blue through purple and magenta to pink, fading toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.33 {
		// Blue to Purple
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		// Purple to Magenta
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		// Magenta to Pink
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	// Brighter at top, darker toward the bottom
	brightness := 1.0 - yRatio*0.5
	return fmt.Sprintf("#%02X%02X%02X", int(r*brightness), int(g*brightness), int(b*brightness))
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	keys := "[1]sky [2]details [tab]switch [j/k]focus [←→↑↓]pan [L]labels [p]paths [q]quit"
	footer := dimStyle.Render("  " + keys)

	if m.statusMsg != "" {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		footer += "\n" + warnStyle.Render("  "+m.statusMsg)
	}

	if !m.snapshot.LastCompute.IsZero() {
		stamp := fmt.Sprintf("  Scene computed %s in %s",
			m.snapshot.LastCompute.In(m.location).Format("15:04:05"),
			m.snapshot.ComputeDuration.Round(time.Millisecond))
		footer += "\n" + dimStyle.Render(stamp)
	}

	return footer
}
