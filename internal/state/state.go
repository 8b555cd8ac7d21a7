// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-skymap/internal/sky"
)

// EventType represents the type of sky change event.
type EventType string

const (
	EventBodyRisen    EventType = "BODY_RISEN"
	EventBodySet      EventType = "BODY_SET"
	EventPhaseChanged EventType = "PHASE_CHANGED"
)

// Event represents a change detected between two computed scenes.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body,omitempty"`
	OldPhase  string    `json:"old_phase,omitempty"`
	NewPhase  string    `json:"new_phase,omitempty"`
}

// HistoryEntry represents a single point in the scene history buffer.
type HistoryEntry struct {
	Timestamp time.Time
	Scene     *sky.Scene
}

// BodyHistory tracks a body's altitude over successive scenes.
type BodyHistory struct {
	Body            string
	AltitudeHistory []TimeSeries
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time
	Value     float64
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *sky.Scene
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// Previous scene facts for event detection
	prevVisible map[string]bool
	prevPhase   sky.PhaseName

	// History buffers
	history       []HistoryEntry
	maxHistoryLen int
	bodyHistory   map[string]*BodyHistory
	maxBodyHist   int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxBodyHist     int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   24, // 2 hours of scenes at one recompute / 5 min
		MaxBodyHist:     48, // 4 hours of per-body altitude data
		MaxEvents:       50, // Last 50 events
		RefreshInterval: 5 * time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxHistoryLen:   cfg.MaxHistoryLen,
		maxBodyHist:     cfg.MaxBodyHist,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		bodyHistory:     make(map[string]*BodyHistory),
		prevVisible:     make(map[string]bool),
	}
}

// Update atomically replaces the current scene. A nil scene records the
// error without disturbing the last good scene.
func (m *Manager) Update(scene *sky.Scene, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if scene == nil {
		return
	}

	// Detect events before updating current state
	m.detectEvents(scene)

	m.current = scene

	// Add to history
	entry := HistoryEntry{
		Timestamp: scene.Time,
		Scene:     scene,
	}
	m.history = append(m.history, entry)
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}

	// Update per-body altitude history
	m.updateBodyHistory(scene)

	// Remember visibility and phase for the next comparison
	m.prevVisible = make(map[string]bool, len(scene.Visible))
	for name := range scene.Visible {
		m.prevVisible[name] = true
	}
	m.prevPhase = scene.MoonPhase.Name
}

// detectEvents compares a new scene with the previous one and generates
// events for bodies crossing the horizon and moon phase transitions.
func (m *Manager) detectEvents(scene *sky.Scene) {
	now := time.Now()

	for name := range scene.Visible {
		if m.current != nil && !m.prevVisible[name] {
			m.addEvent(Event{
				Type:      EventBodyRisen,
				Timestamp: now,
				Body:      name,
			})
		}
	}
	for name := range m.prevVisible {
		if _, up := scene.Visible[name]; !up {
			m.addEvent(Event{
				Type:      EventBodySet,
				Timestamp: now,
				Body:      name,
			})
		}
	}

	if m.current != nil && scene.MoonPhase.Name != m.prevPhase {
		m.addEvent(Event{
			Type:      EventPhaseChanged,
			Timestamp: now,
			Body:      "Moon",
			OldPhase:  string(m.prevPhase),
			NewPhase:  string(scene.MoonPhase.Name),
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

func (m *Manager) updateBodyHistory(scene *sky.Scene) {
	for name, pos := range scene.Visible {
		hist, ok := m.bodyHistory[name]
		if !ok {
			hist = &BodyHistory{
				Body:            name,
				AltitudeHistory: make([]TimeSeries, 0, m.maxBodyHist),
			}
			m.bodyHistory[name] = hist
		}

		hist.AltitudeHistory = append(hist.AltitudeHistory, TimeSeries{
			Timestamp: scene.Time,
			Value:     pos.AltDeg,
		})
		if len(hist.AltitudeHistory) > m.maxBodyHist {
			hist.AltitudeHistory = hist.AltitudeHistory[1:]
		}
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Scene           *sky.Scene
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Scene:           m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// GetBodyHistory returns altitude history for a specific body.
func (m *Manager) GetBodyHistory(body string) *BodyHistory {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.bodyHistory[body]
	if !ok {
		return nil
	}

	// Return a copy
	copyHist := &BodyHistory{
		Body:            hist.Body,
		AltitudeHistory: make([]TimeSeries, len(hist.AltitudeHistory)),
	}
	copy(copyHist.AltitudeHistory, hist.AltitudeHistory)
	return copyHist
}

// AltitudeRate estimates a body's climb rate in degrees per hour from its
// last two history points. Positive while climbing toward culmination.
func (m *Manager) AltitudeRate(body string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.bodyHistory[body]
	if !ok || len(hist.AltitudeHistory) < 2 {
		return 0
	}

	n := len(hist.AltitudeHistory)
	p1 := hist.AltitudeHistory[n-2]
	p2 := hist.AltitudeHistory[n-1]

	deltaHours := p2.Timestamp.Sub(p1.Timestamp).Hours()
	if deltaHours <= 0 {
		return 0
	}
	return (p2.Value - p1.Value) / deltaHours
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one scene has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
