package sky

import (
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/ephem"
)

// DefaultSampleStep is the path sampling cadence when the configuration
// does not override it. Smaller steps trade latency for smoothness.
const DefaultSampleStep = 20 * time.Minute

// PathSample is a body's horizontal position at one instant. Azimuth is
// raw (0-360); centering happens at the presentation boundary.
type PathSample struct {
	Time time.Time
	Pos  astro.Horizontal
}

// Path is a chronological sequence of samples for one body across one
// interval. Samples below the observer's horizon are dropped, so the
// sequence may have gaps relative to the full time range.
type Path struct {
	Body    string
	Samples []PathSample
}

// SamplePath samples the body's horizontal position from start to end at
// the given cadence, keeping only samples above the observer's horizon.
// An end before start is taken to wrap past midnight and is shifted
// forward by 24 hours. A zero-length interval yields an empty path.
func SamplePath(body ephem.Body, obs astro.Observer, start, end time.Time, step time.Duration) Path {
	if step <= 0 {
		step = DefaultSampleStep
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	p := Path{Body: body.Name()}
	horizon := obs.HorizonAltitude()
	for t := start; t.Before(end); t = t.Add(step) {
		pos := astro.EquatorialToHorizontal(body.Position(t), obs, t)
		if pos.AltDeg > horizon {
			p.Samples = append(p.Samples, PathSample{Time: t, Pos: pos})
		}
	}
	return p
}

// SamplePathWithEndpoints is SamplePath plus the body's exact positions at
// start and end spliced onto the ends, horizon filter not applied. Rise and
// set markers must sit exactly on the horizon line, not at the nearest
// sampling tick.
func SamplePathWithEndpoints(body ephem.Body, obs astro.Observer, start, end time.Time, step time.Duration) Path {
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	p := SamplePath(body, obs, start, end, step)
	if end.Equal(start) {
		return p
	}

	first := PathSample{Time: start, Pos: astro.EquatorialToHorizontal(body.Position(start), obs, start)}
	last := PathSample{Time: end, Pos: astro.EquatorialToHorizontal(body.Position(end), obs, end)}

	samples := make([]PathSample, 0, len(p.Samples)+2)
	samples = append(samples, first)
	for _, s := range p.Samples {
		// The first tick coincides with the start endpoint.
		if s.Time.Equal(start) {
			continue
		}
		samples = append(samples, s)
	}
	samples = append(samples, last)
	p.Samples = samples
	return p
}

// Annotations are the key moments of a sampled path, for labelling.
type Annotations struct {
	First PathSample // rise marker when endpoints were spliced
	Last  PathSample // set marker when endpoints were spliced
	Peak  PathSample // highest sample, time refined parabolically

	// Half-altitude waypoints on the climbing and descending branches.
	// Absent (ok=false in Annotate) when the path is too short.
	MorningHalf PathSample
	EveningHalf PathSample
	HasHalves   bool
}

// Annotate extracts the key moments from a path. Returns false when the
// path has no samples.
func Annotate(p Path) (Annotations, bool) {
	if len(p.Samples) == 0 {
		return Annotations{}, false
	}

	peakIdx := 0
	for i, s := range p.Samples {
		if s.Pos.AltDeg > p.Samples[peakIdx].Pos.AltDeg {
			peakIdx = i
		}
	}

	a := Annotations{
		First: p.Samples[0],
		Last:  p.Samples[len(p.Samples)-1],
		Peak:  refinePeak(p.Samples, peakIdx),
	}

	if peakIdx > 0 && peakIdx < len(p.Samples)-1 {
		half := p.Samples[peakIdx].Pos.AltDeg / 2
		a.MorningHalf = p.Samples[nearestAltitude(p.Samples[:peakIdx], half)]
		down := p.Samples[peakIdx:]
		a.EveningHalf = down[nearestAltitude(down, half)]
		a.HasHalves = true
	}
	return a, true
}

// nearestAltitude returns the index of the sample closest to the target
// altitude.
func nearestAltitude(samples []PathSample, target float64) int {
	best := 0
	bestDiff := -1.0
	for i, s := range samples {
		diff := s.Pos.AltDeg - target
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// refinePeak fits a parabola through the discrete maximum and its
// neighbors to estimate the true culmination between ticks. Falls back to
// the discrete maximum at the path edges or when the fit is degenerate.
func refinePeak(samples []PathSample, idx int) PathSample {
	if idx == 0 || idx == len(samples)-1 {
		return samples[idx]
	}
	y0 := samples[idx-1].Pos.AltDeg
	y1 := samples[idx].Pos.AltDeg
	y2 := samples[idx+1].Pos.AltDeg

	// Parabola through (-1,y0) (0,y1) (1,y2); vertex at -b/2a.
	a := (y0+y2)/2 - y1
	b := (y2 - y0) / 2
	if a >= 0 {
		return samples[idx]
	}
	v := -b / (2 * a)
	if v < -1 {
		v = -1
	} else if v > 1 {
		v = 1
	}

	dt := samples[idx].Time.Sub(samples[idx-1].Time)
	return PathSample{
		Time: samples[idx].Time.Add(time.Duration(float64(dt) * v)),
		Pos: astro.Horizontal{
			AzDeg:  samples[idx].Pos.AzDeg,
			AltDeg: a*v*v + b*v + y1,
		},
	}
}
