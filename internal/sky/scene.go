package sky

import (
	"errors"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/ephem"
	"github.com/litescript/ls-skymap/internal/logging"
)

// planetSampleStep is the cadence for planet day arcs. Planets move slowly
// against the sky, so a coarser step than the sun/moon default is fine.
const planetSampleStep = 30 * time.Minute

// SceneOptions control how much of the sky a scene computes.
type SceneOptions struct {
	MagLimit   float64       // faintest star magnitude to rank
	MaxStars   int           // 0 = unlimited
	SampleStep time.Duration // 0 = DefaultSampleStep

	// Constellation figures; nil disables them.
	Constellations     *ConstellationSet
	ConstellationsOnly []string
	MaxConstellations  int
}

// BodyTrack is one body's arc across the sky for the scene interval, with
// rise/set times when they fall inside the search window.
type BodyTrack struct {
	Name        string
	Path        Path
	Annotations Annotations
	Annotated   bool
	Rise        time.Time // zero when no rise inside the window
	Set         time.Time // zero when no set inside the window
}

// Scene is everything a renderer needs for one observer and instant. It is
// immutable once built; refreshing means building a new one.
type Scene struct {
	Time     time.Time
	Observer astro.Observer

	Stars      []VisibleStar
	StarReport BatchReport

	Sun     BodyTrack
	Moon    BodyTrack
	Planets []BodyTrack

	Visible   map[string]astro.Horizontal
	MoonPhase MoonPhaseState

	Equator        SkyLine
	Ecliptic       SkyLine
	Constellations []ConstellationFigure
}

// BuildScene computes a full scene for the observer at t. Every component
// is derived independently from (observer, t), so a failure in one body's
// event search degrades that track rather than the scene.
func BuildScene(provider *ephem.Provider, cat *Catalog, obs astro.Observer, t time.Time, opts SceneOptions, log *logging.Logger) *Scene {
	t = t.UTC()
	scene := &Scene{Time: t, Observer: obs}

	scene.Stars, scene.StarReport = RankVisibleStars(cat, obs, t, opts.MagLimit, opts.MaxStars)
	if scene.StarReport.Skipped > 0 {
		log.Warn("star ranking skipped %d rows: %v", scene.StarReport.Skipped, scene.StarReport.Reasons)
	}
	log.Debug("ranked stars: %d visible of %d processed (%d below horizon, %d too faint)",
		scene.StarReport.Visible, scene.StarReport.Processed,
		scene.StarReport.BelowHorizon, scene.StarReport.TooFaint)

	step := opts.SampleStep
	if step <= 0 {
		step = DefaultSampleStep
	}

	scene.Sun = trackBody(provider.Sun(), obs, t, step, log)
	scene.Moon = trackBody(provider.Moon(), obs, t, step, log)
	for _, p := range provider.Planets() {
		track := BodyTrack{Name: p.Name(), Path: SamplePath(p, obs, t, t.Add(24*time.Hour), planetSampleStep)}
		track.Annotations, track.Annotated = Annotate(track.Path)
		scene.Planets = append(scene.Planets, track)
	}

	scene.Visible = VisibleBodies(provider.Bodies(), obs, t)
	scene.MoonPhase = MoonPhase(t)

	scene.Equator = CelestialEquator(obs, t)
	scene.Ecliptic = Ecliptic(obs, t)
	if opts.Constellations != nil {
		scene.Constellations = PlaceConstellations(opts.Constellations, obs, t,
			opts.ConstellationsOnly, opts.MaxConstellations)
	}
	return scene
}

// trackBody samples one body's arc between its next rise and set, with the
// exact rise and set positions spliced on. When the body never crosses the
// horizon inside the search window it falls back to a plain day arc, which
// is empty for a never-rising body and continuous for a circumpolar one.
func trackBody(body ephem.Body, obs astro.Observer, t time.Time, step time.Duration, log *logging.Logger) BodyTrack {
	track := BodyTrack{Name: body.Name()}

	rise, set, err := FindRiseSet(body, obs, t)
	switch {
	case err == nil:
		track.Rise, track.Set = rise.Time, set.Time
		track.Path = SamplePathWithEndpoints(body, obs, rise.Time, set.Time, step)
	case errors.Is(err, ErrNoEventInWindow):
		log.Debug("%s: no horizon crossing in window, sampling full day", body.Name())
		track.Path = SamplePath(body, obs, t, t.Add(24*time.Hour), step)
	default:
		log.Warn("%s: rise/set search failed: %v", body.Name(), err)
		track.Path = SamplePath(body, obs, t, t.Add(24*time.Hour), step)
	}

	track.Annotations, track.Annotated = Annotate(track.Path)
	return track
}
