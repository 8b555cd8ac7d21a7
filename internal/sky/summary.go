package sky

import (
	"fmt"
	"io"
	"strings"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-skymap/internal/astro"
)

// WriteSummary writes a plain-text scene summary for headless use: visible
// bodies with their rise and set times, the brightest ranked stars, and the
// moon phase. Times are shown in loc.
func WriteSummary(w io.Writer, s *Scene, loc *time.Location, maxStars int) {
	if loc == nil {
		loc = time.UTC
	}
	local := s.Time.In(loc)

	name := s.Observer.Name
	if name == "" {
		name = "Observer"
	}
	fmt.Fprintf(w, "Sky over %s (%.2f, %.2f) @ %s\n",
		name, s.Observer.LatDeg, s.Observer.LonDeg, local.Format("2006-01-02 15:04 MST"))
	fmt.Fprintln(w, strings.Repeat("─", 72))

	// Bodies
	fmt.Fprintf(w, "%-10s %8s %8s %7s %7s\n", "Body", "Az", "Alt", "Rise", "Set")
	writeTrackRow(w, s.Sun, s.Visible, loc)
	writeTrackRow(w, s.Moon, s.Visible, loc)
	for _, p := range s.Planets {
		writeTrackRow(w, p, s.Visible, loc)
	}

	// Moon phase
	trend := "waning"
	if s.MoonPhase.Waxing {
		trend = "waxing"
	}
	fmt.Fprintf(w, "\nMoon: %s (%s), %.0f%% illuminated, lunar day %.1f, %.0f° from the sun\n",
		s.MoonPhase.Name, trend, s.MoonPhase.Illumination*100, s.MoonPhase.LunarDay,
		s.MoonPhase.Elongation)
	fmt.Fprintf(w, "Next new moon  %s\n", s.MoonPhase.NextNewMoon.In(loc).Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Next full moon %s\n", s.MoonPhase.NextFullMoon.In(loc).Format("2006-01-02 15:04"))

	// Brightest stars with catalog coordinates
	stars := s.Stars
	if maxStars > 0 && len(stars) > maxStars {
		stars = stars[:maxStars]
	}
	if len(stars) > 0 {
		fmt.Fprintf(w, "\n%-16s %13s %13s %8s %8s %6s\n", "Star", "RA", "Dec", "Az", "Alt", "Mag")
		fmt.Fprintln(w, strings.Repeat("─", 72))
		for _, star := range stars {
			fmt.Fprintf(w, "%-16s %13v %13v %7.1f° %7.1f° %6.2f\n",
				star.Name,
				sexa.FmtRA(unit.RAFromDeg(star.Eq.RAdeg)),
				sexa.FmtAngle(unit.AngleFromDeg(star.Eq.DecDeg)),
				astro.CenterAzimuth(star.Pos.AzDeg), star.Pos.AltDeg, star.Mag)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d stars above the horizon of %d processed\n",
		s.StarReport.Visible, s.StarReport.Processed)
}

func writeTrackRow(w io.Writer, t BodyTrack, visible map[string]astro.Horizontal, loc *time.Location) {
	rise, set := "--:--", "--:--"
	if !t.Rise.IsZero() {
		rise = t.Rise.In(loc).Format("15:04")
	}
	if !t.Set.IsZero() {
		set = t.Set.In(loc).Format("15:04")
	}

	if pos, up := visible[t.Name]; up {
		fmt.Fprintf(w, "%-10s %7.1f° %7.1f° %7s %7s\n",
			t.Name, astro.CenterAzimuth(pos.AzDeg), pos.AltDeg, rise, set)
		return
	}
	fmt.Fprintf(w, "%-10s %8s %8s %7s %7s\n", t.Name, "below", "horizon", rise, set)
}
