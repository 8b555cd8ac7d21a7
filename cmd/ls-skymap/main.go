// Command ls-skymap is a terminal sky map: it computes and renders the night
// sky for an observing site, with headless summary and JSON export modes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-skymap/internal/config"
	"github.com/litescript/ls-skymap/internal/ephem"
	"github.com/litescript/ls-skymap/internal/logging"
	"github.com/litescript/ls-skymap/internal/sky"
	"github.com/litescript/ls-skymap/internal/state"
	"github.com/litescript/ls-skymap/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	exportPath    string
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	lat := flag.Float64("lat", 91, "Observer latitude in degrees (overrides config)")
	lon := flag.Float64("lon", 181, "Observer longitude in degrees (overrides config)")
	elev := flag.Float64("elev", -1, "Observer elevation in meters (overrides config)")
	site := flag.String("site", "", "Observer site name (overrides config)")
	atFlag := flag.String("time", "", "Scene time as RFC 3339 (default: now)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 5m)")
	flag.StringVar(&exportPath, "json", "", "Export scene JSON to file (use - for stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if *lat <= 90 && *lat >= -90 {
		cfg.Observer.Latitude = *lat
	}
	if *lon <= 180 && *lon >= -180 {
		cfg.Observer.Longitude = *lon
	}
	if *elev >= 0 {
		cfg.Observer.Elevation = *elev
	}
	if *site != "" {
		cfg.Observer.Name = *site
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	at := time.Now()
	if *atFlag != "" {
		at, err = time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -time must be RFC 3339: %v\n", err)
			os.Exit(1)
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Observational inputs
	obs := cfg.SiteObserver()
	provider := ephem.NewProvider(cfg.VSOP87Dir, logger.Component("ephem"))

	cat := sky.DefaultCatalog()
	if cfg.StarCatalog != "" {
		cat, err = sky.LoadCatalog(cfg.StarCatalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	var constellations *sky.ConstellationSet
	if cfg.ConstellationLines != "" {
		constellations, err = sky.LoadConstellations(cfg.ConstellationLines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := sky.SceneOptions{
		MagLimit:           cfg.Stars.NakedEyeMagLimit,
		MaxStars:           cfg.Stars.MaxStarsToPlot,
		SampleStep:         cfg.SampleStep(),
		Constellations:     constellations,
		ConstellationsOnly: cfg.Constellations.ShowOnly,
		MaxConstellations:  cfg.Constellations.MaxToPlot,
	}

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = cfg.RefreshInterval()
	stateMgr := state.NewManager(stateCfg)

	sceneLog := logger.Component("scene")
	compute := func(at time.Time) (*sky.Scene, time.Duration) {
		started := time.Now()
		scene := sky.BuildScene(provider, cat, obs, at, opts, sceneLog)
		return scene, time.Since(started)
	}

	// Headless mode: no TUI
	if summaryMode || exportPath != "" {
		runHeadless(ctx, compute, at, *atFlag != "", loc, cfg.Stars.MaxStarsToPlot)
		return
	}

	model := ui.New(stateMgr, obs, loc, ui.Options{
		LabelMagLimit: cfg.Stars.LabelMagLimit,
		ShowMagnitude: cfg.Stars.ShowMagnitude,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, compute, stateMgr, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runComputeLoop recomputes the scene at the refresh interval and pushes
// snapshots into the running TUI.
func runComputeLoop(ctx context.Context, compute func(time.Time) (*sky.Scene, time.Duration), stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	doCompute(compute, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(compute, stateMgr, p, logger)
		}
	}
}

func doCompute(compute func(time.Time) (*sky.Scene, time.Duration), stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	logger.Debug("Computing sky scene...")

	scene, elapsed := compute(time.Now())

	logger.Debug("Scene complete: %d stars, %d bodies in %v",
		len(scene.Stars), len(scene.Visible), elapsed)

	stateMgr.Update(scene, elapsed, nil)
	p.Send(ui.SceneUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless handles summary and JSON export modes without starting the TUI.
func runHeadless(ctx context.Context, compute func(time.Time) (*sky.Scene, time.Duration), at time.Time, fixedTime bool, loc *time.Location, maxStars int) {
	outputOnce := func(t time.Time) error {
		scene, _ := compute(t)

		if exportPath != "" {
			export := sky.ExportScene(scene)
			if exportPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(exportPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			sky.WriteSummary(os.Stdout, scene, loc, maxStars)
		}
		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(at); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval, advancing the scene time unless it
	// was pinned with -time.
	if err := outputOnce(at); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if isTTY && summaryMode {
				fmt.Println()
			}
			next := time.Now()
			if fixedTime {
				next = at
			}
			if err := outputOnce(next); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
