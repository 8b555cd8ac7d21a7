package sky

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
)

// SceneExport is the JSON-serializable representation of a computed scene.
// Azimuths in exported positions are centered (-180..180, north at 0) so a
// renderer can plot them directly.
type SceneExport struct {
	Time     time.Time      `json:"time"`
	Observer ObserverExport `json:"observer"`

	Stars   []StarExport  `json:"stars"`
	Sun     TrackExport   `json:"sun"`
	Moon    TrackExport   `json:"moon"`
	Planets []TrackExport `json:"planets"`

	Visible   map[string]PositionExport `json:"visible_bodies"`
	MoonPhase MoonPhaseExport           `json:"moon_phase"`

	Equator        LineExport            `json:"celestial_equator"`
	Ecliptic       LineExport            `json:"ecliptic"`
	Constellations []ConstellationExport `json:"constellations,omitempty"`
}

// ObserverExport is a JSON-friendly observer location.
type ObserverExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation_m"`
}

// PositionExport is a plotted position: centered azimuth plus altitude.
type PositionExport struct {
	Azimuth  float64 `json:"azimuth"`
	Altitude float64 `json:"altitude"`
}

// StarExport is a JSON-friendly ranked star.
type StarExport struct {
	Name          string  `json:"name"`
	Azimuth       float64 `json:"azimuth"`
	Altitude      float64 `json:"altitude"`
	Magnitude     float64 `json:"magnitude"`
	Color         string  `json:"color"`
	Constellation string  `json:"constellation,omitempty"`
}

// TrackExport is a JSON-friendly body arc with its key moments.
type TrackExport struct {
	Name    string         `json:"name"`
	Rise    *time.Time     `json:"rise,omitempty"`
	Set     *time.Time     `json:"set,omitempty"`
	Peak    *SampleExport  `json:"peak,omitempty"`
	Samples []SampleExport `json:"samples"`
}

// SampleExport is one timestamped position on a track.
type SampleExport struct {
	Time     time.Time `json:"time"`
	Azimuth  float64   `json:"azimuth"`
	Altitude float64   `json:"altitude"`
}

// MoonPhaseExport is a JSON-friendly moon phase state.
type MoonPhaseExport struct {
	Illumination float64   `json:"illumination"`
	Name         string    `json:"name"`
	Waxing       bool      `json:"waxing"`
	LunarDay     float64   `json:"lunar_day"`
	Elongation   float64   `json:"elongation"`
	NextNewMoon  time.Time `json:"next_new_moon"`
	NextFullMoon time.Time `json:"next_full_moon"`
}

// LineExport is a seam-wrapped reference line.
type LineExport struct {
	Name      string             `json:"name"`
	Polylines [][]PositionExport `json:"polylines"`
}

// ConstellationExport is a JSON-friendly constellation figure.
type ConstellationExport struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Label     PositionExport     `json:"label"`
	Polylines [][]PositionExport `json:"polylines"`
}

// ExportScene converts a scene to its exportable form.
func ExportScene(s *Scene) *SceneExport {
	export := &SceneExport{
		Time: s.Time,
		Observer: ObserverExport{
			Name:      s.Observer.Name,
			Latitude:  s.Observer.LatDeg,
			Longitude: s.Observer.LonDeg,
			Elevation: s.Observer.ElevM,
		},
		Visible: make(map[string]PositionExport, len(s.Visible)),
		MoonPhase: MoonPhaseExport{
			Illumination: s.MoonPhase.Illumination,
			Name:         string(s.MoonPhase.Name),
			Waxing:       s.MoonPhase.Waxing,
			LunarDay:     s.MoonPhase.LunarDay,
			Elongation:   s.MoonPhase.Elongation,
			NextNewMoon:  s.MoonPhase.NextNewMoon,
			NextFullMoon: s.MoonPhase.NextFullMoon,
		},
		Equator:  exportLine(s.Equator),
		Ecliptic: exportLine(s.Ecliptic),
	}

	for _, star := range s.Stars {
		export.Stars = append(export.Stars, StarExport{
			Name:          star.Name,
			Azimuth:       astro.CenterAzimuth(star.Pos.AzDeg),
			Altitude:      star.Pos.AltDeg,
			Magnitude:     star.Mag,
			Color:         StarColor(star.TempK),
			Constellation: star.Constellation,
		})
	}

	export.Sun = exportTrack(s.Sun)
	export.Moon = exportTrack(s.Moon)
	for _, p := range s.Planets {
		export.Planets = append(export.Planets, exportTrack(p))
	}

	for name, pos := range s.Visible {
		export.Visible[name] = exportPosition(pos)
	}

	for _, fig := range s.Constellations {
		ce := ConstellationExport{
			ID:    fig.ID,
			Name:  fig.Name,
			Label: PositionExport{Azimuth: fig.Label.X, Altitude: fig.Label.Y},
		}
		for _, poly := range fig.Polylines {
			ce.Polylines = append(ce.Polylines, exportPolyline(poly))
		}
		export.Constellations = append(export.Constellations, ce)
	}
	return export
}

// WriteJSON writes the scene as indented JSON to the given writer.
func (s *SceneExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func exportTrack(t BodyTrack) TrackExport {
	te := TrackExport{Name: t.Name}
	if !t.Rise.IsZero() {
		rise := t.Rise
		te.Rise = &rise
	}
	if !t.Set.IsZero() {
		set := t.Set
		te.Set = &set
	}
	if t.Annotated {
		peak := exportSample(t.Annotations.Peak)
		te.Peak = &peak
	}
	for _, s := range t.Path.Samples {
		te.Samples = append(te.Samples, exportSample(s))
	}
	return te
}

func exportSample(s PathSample) SampleExport {
	return SampleExport{
		Time:     s.Time,
		Azimuth:  astro.CenterAzimuth(s.Pos.AzDeg),
		Altitude: s.Pos.AltDeg,
	}
}

func exportPosition(pos astro.Horizontal) PositionExport {
	return PositionExport{
		Azimuth:  astro.CenterAzimuth(pos.AzDeg),
		Altitude: pos.AltDeg,
	}
}

func exportLine(l SkyLine) LineExport {
	le := LineExport{Name: l.Name}
	for _, poly := range l.Polylines {
		le.Polylines = append(le.Polylines, exportPolyline(poly))
	}
	return le
}

func exportPolyline(poly []Point) []PositionExport {
	out := make([]PositionExport, len(poly))
	for i, p := range poly {
		out[i] = PositionExport{Azimuth: p.X, Altitude: p.Y}
	}
	return out
}
