package state

import (
	"sync"
	"testing"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/sky"
)

// testScene fabricates a scene with the given visible bodies; altitude
// encodes the body's position in the slice so history tests can assert
// values.
func testScene(at time.Time, phase sky.PhaseName, visible ...string) *sky.Scene {
	s := &sky.Scene{
		Time:    at,
		Visible: make(map[string]astro.Horizontal, len(visible)),
	}
	s.MoonPhase.Name = phase
	for i, name := range visible {
		s.Visible[name] = astro.Horizontal{AzDeg: 90, AltDeg: float64(10 + i)}
	}
	return s
}

func TestNewManager(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg)

	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.RefreshInterval() != cfg.RefreshInterval {
		t.Errorf("RefreshInterval = %v, want %v", m.RefreshInterval(), cfg.RefreshInterval)
	}
	if m.HasData() {
		t.Error("HasData should be false initially")
	}
}

func TestManager_Update(t *testing.T) {
	m := NewManager(DefaultConfig())

	scene := testScene(time.Now(), sky.PhaseFull, "Sun", "Moon")
	m.Update(scene, 100*time.Millisecond, nil)

	if !m.HasData() {
		t.Error("HasData should be true after Update")
	}

	snap := m.Snapshot()
	if snap.Scene != scene {
		t.Error("Snapshot Scene doesn't match")
	}
	if snap.ComputeDuration != 100*time.Millisecond {
		t.Errorf("ComputeDuration = %v, want 100ms", snap.ComputeDuration)
	}
	if snap.LastError != nil {
		t.Errorf("LastError = %v, want nil", snap.LastError)
	}
}

func TestManager_UpdateWithError(t *testing.T) {
	m := NewManager(DefaultConfig())

	testErr := &testError{msg: "compute failed"}
	m.Update(nil, 50*time.Millisecond, testErr)

	snap := m.Snapshot()
	if snap.Scene != nil {
		t.Error("Scene should be nil on error")
	}
	if snap.LastError != testErr {
		t.Errorf("LastError = %v, want %v", snap.LastError, testErr)
	}
}

func TestManager_ErrorKeepsLastScene(t *testing.T) {
	m := NewManager(DefaultConfig())

	scene := testScene(time.Now(), sky.PhaseFull, "Moon")
	m.Update(scene, 0, nil)
	m.Update(nil, 0, &testError{msg: "transient"})

	snap := m.Snapshot()
	if snap.Scene != scene {
		t.Error("error update should keep the last good scene")
	}
	if snap.LastError == nil {
		t.Error("error should be recorded")
	}
}

func TestManager_HistoryBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistoryLen = 3
	m := NewManager(cfg)

	for i := 0; i < 5; i++ {
		at := time.Now().Add(time.Duration(i) * time.Minute)
		m.Update(testScene(at, sky.PhaseFull, "Moon"), 0, nil)
	}

	m.mu.RLock()
	histLen := len(m.history)
	m.mu.RUnlock()

	if histLen != 3 {
		t.Errorf("history length = %d, want 3", histLen)
	}
}

func TestManager_BodyHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBodyHist = 5
	m := NewManager(cfg)

	base := time.Now()
	for i := 0; i < 10; i++ {
		scene := testScene(base.Add(time.Duration(i)*time.Minute), sky.PhaseFull)
		scene.Visible["Jupiter"] = astro.Horizontal{AzDeg: 120, AltDeg: float64(30 + i)}
		m.Update(scene, 0, nil)
	}

	hist := m.GetBodyHistory("Jupiter")
	if hist == nil {
		t.Fatal("GetBodyHistory returned nil")
	}
	if hist.Body != "Jupiter" {
		t.Errorf("Body = %q, want Jupiter", hist.Body)
	}
	if len(hist.AltitudeHistory) != 5 {
		t.Errorf("AltitudeHistory length = %d, want 5", len(hist.AltitudeHistory))
	}
	// Ten updates against a buffer of five leaves entries 5..9.
	if hist.AltitudeHistory[0].Value != 35 {
		t.Errorf("first altitude = %v, want 35", hist.AltitudeHistory[0].Value)
	}
}

func TestManager_AltitudeRate(t *testing.T) {
	m := NewManager(DefaultConfig())

	base := time.Now()
	scene1 := testScene(base, sky.PhaseFull)
	scene1.Visible["Mars"] = astro.Horizontal{AltDeg: 20}
	m.Update(scene1, 0, nil)

	if rate := m.AltitudeRate("Mars"); rate != 0 {
		t.Errorf("rate with single point = %v, want 0", rate)
	}

	scene2 := testScene(base.Add(30*time.Minute), sky.PhaseFull)
	scene2.Visible["Mars"] = astro.Horizontal{AltDeg: 25}
	m.Update(scene2, 0, nil)

	// 5 degrees in half an hour is 10 degrees per hour.
	if rate := m.AltitudeRate("Mars"); rate != 10 {
		t.Errorf("rate = %v, want 10", rate)
	}

	if rate := m.AltitudeRate("Unknown"); rate != 0 {
		t.Errorf("rate for unknown body = %v, want 0", rate)
	}
}

func TestManager_EventDetection_Risen(t *testing.T) {
	m := NewManager(DefaultConfig())

	base := time.Now()
	m.Update(testScene(base, sky.PhaseFull, "Sun"), 0, nil)

	// The initial scene populates state without generating events.
	if events := m.RecentEvents(10); len(events) != 0 {
		t.Fatalf("initial scene generated %d events", len(events))
	}

	m.Update(testScene(base.Add(5*time.Minute), sky.PhaseFull, "Sun", "Moon"), 0, nil)

	events := m.RecentEvents(10)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventBodyRisen {
		t.Errorf("event type = %q, want BODY_RISEN", events[0].Type)
	}
	if events[0].Body != "Moon" {
		t.Errorf("body = %q, want Moon", events[0].Body)
	}
}

func TestManager_EventDetection_Set(t *testing.T) {
	m := NewManager(DefaultConfig())

	base := time.Now()
	m.Update(testScene(base, sky.PhaseFull, "Sun", "Venus"), 0, nil)
	m.Update(testScene(base.Add(5*time.Minute), sky.PhaseFull, "Sun"), 0, nil)

	events := m.RecentEvents(10)
	var setEvent *Event
	for i := range events {
		if events[i].Type == EventBodySet {
			setEvent = &events[i]
			break
		}
	}
	if setEvent == nil {
		t.Fatal("no BODY_SET event found")
	}
	if setEvent.Body != "Venus" {
		t.Errorf("body = %q, want Venus", setEvent.Body)
	}
}

func TestManager_EventDetection_PhaseChange(t *testing.T) {
	m := NewManager(DefaultConfig())

	base := time.Now()
	m.Update(testScene(base, sky.PhaseWaxingGibbous, "Moon"), 0, nil)
	m.Update(testScene(base.Add(5*time.Minute), sky.PhaseFull, "Moon"), 0, nil)

	events := m.RecentEvents(10)
	var phase *Event
	for i := range events {
		if events[i].Type == EventPhaseChanged {
			phase = &events[i]
			break
		}
	}
	if phase == nil {
		t.Fatal("no PHASE_CHANGED event found")
	}
	if phase.OldPhase != string(sky.PhaseWaxingGibbous) || phase.NewPhase != string(sky.PhaseFull) {
		t.Errorf("phase transition = %q -> %q", phase.OldPhase, phase.NewPhase)
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 5
	m := NewManager(cfg)

	// Alternate visibility so every update past the first produces a
	// risen and a set event.
	base := time.Now()
	bodies := []string{"Mercury", "Venus"}
	for i := 0; i < 10; i++ {
		m.Update(testScene(base.Add(time.Duration(i)*time.Minute), sky.PhaseFull, bodies[i%2]), 0, nil)
	}

	events := m.RecentEvents(100)
	if len(events) != 5 {
		t.Errorf("events count = %d, want 5 (max)", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("events not in chronological order at index %d", i)
		}
	}
}

func TestManager_Snapshot_EventsAreCopy(t *testing.T) {
	m := NewManager(DefaultConfig())

	base := time.Now()
	m.Update(testScene(base, sky.PhaseFull, "Sun"), 0, nil)
	m.Update(testScene(base.Add(time.Minute), sky.PhaseFull, "Sun", "Moon"), 0, nil)

	snap := m.Snapshot()
	if len(snap.Events) == 0 {
		t.Fatal("Snapshot should include events")
	}
	snap.Events[0].Body = "tampered"

	snap2 := m.Snapshot()
	if snap2.Events[0].Body == "tampered" {
		t.Error("Snapshot modification affected manager state")
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())

	var wg sync.WaitGroup
	iterations := 100

	// Writer goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		base := time.Now()
		for i := 0; i < iterations; i++ {
			scene := testScene(base.Add(time.Duration(i)*time.Second), sky.PhaseFull, "Sun", "Moon")
			m.Update(scene, time.Duration(i)*time.Millisecond, nil)
		}
	}()

	// Reader goroutines
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				_ = m.Snapshot()
				_ = m.HasData()
				_ = m.RefreshInterval()
				_ = m.GetBodyHistory("Sun")
				_ = m.AltitudeRate("Moon")
			}
		}()
	}

	wg.Wait()
}

func TestManager_SetRefreshInterval(t *testing.T) {
	m := NewManager(DefaultConfig())

	newInterval := 30 * time.Second
	m.SetRefreshInterval(newInterval)

	if m.RefreshInterval() != newInterval {
		t.Errorf("RefreshInterval = %v, want %v", m.RefreshInterval(), newInterval)
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
