package sky

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
)

// VisibleStar is one catalog star placed on the observer's sky, ready for
// rendering. Azimuth in Pos is raw (0-360).
type VisibleStar struct {
	Name          string
	Eq            astro.Equatorial
	Pos           astro.Horizontal
	Mag           float64
	TempK         float64
	Constellation string
}

// BatchReport summarizes one ranking pass over a catalog. Skipped rows
// never abort the pass; they are counted here with their reasons so a bad
// catalog shows up in logs instead of as silently missing stars.
type BatchReport struct {
	Processed    int // rows that passed the magnitude pre-filter
	Visible      int
	BelowHorizon int
	TooFaint     int
	Skipped      int
	Reasons      map[string]int
}

// RankVisibleStars transforms the catalog onto the observer's sky at the
// given instant and returns the stars above the horizon, brightest first.
// Rows fainter than magLimit are dropped before any coordinate work.
// maxStars > 0 truncates the sorted result. Rows whose coordinates fail to
// parse are skipped and counted in the report.
//
// The per-star transforms are pure and independent, so they run on a
// bounded worker pool; ordering is restored by the magnitude sort after
// all workers finish.
func RankVisibleStars(cat *Catalog, obs astro.Observer, t time.Time, magLimit float64, maxStars int) ([]VisibleStar, BatchReport) {
	report := BatchReport{Reasons: make(map[string]int)}

	// Magnitude pre-filter. Sorting by brightness would let us stop at
	// magLimit early, but the catalog is small and unsorted input must
	// work, so a plain scan is fine.
	var candidates []CatalogStar
	for _, s := range cat.Stars {
		if s.Mag > magLimit {
			report.TooFaint++
			continue
		}
		candidates = append(candidates, s)
	}
	report.Processed = len(candidates)
	if len(candidates) == 0 {
		return nil, report
	}

	results := make([]starResult, len(candidates))
	horizon := obs.HorizonAltitude()

	idxCh := make(chan int)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > len(candidates) {
		workers = len(candidates)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				results[i] = rankOne(candidates[i], i, obs, t, horizon)
			}
		}()
	}
	for i := range candidates {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	visible := make([]VisibleStar, 0, len(results))
	for _, r := range results {
		switch {
		case r.reason != "":
			report.Skipped++
			report.Reasons[r.reason]++
		case !r.above:
			report.BelowHorizon++
		default:
			visible = append(visible, r.star)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Mag < visible[j].Mag
	})
	if maxStars > 0 && len(visible) > maxStars {
		visible = visible[:maxStars]
	}
	report.Visible = len(visible)
	return visible, report
}

// starResult is one worker's output for one candidate row.
type starResult struct {
	star   VisibleStar
	above  bool
	reason string // non-empty when the row was skipped
}

func rankOne(s CatalogStar, idx int, obs astro.Observer, t time.Time, horizon float64) (r starResult) {
	eq, err := astro.ParseEquatorial(s.RA, s.Dec)
	if err != nil {
		r.reason = err.Error()
		return r
	}

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Star-%d", idx+1)
	}

	pos := astro.EquatorialToHorizontal(eq, obs, t)
	r.star = VisibleStar{
		Name:          name,
		Eq:            eq,
		Pos:           pos,
		Mag:           s.Mag,
		TempK:         s.TempK,
		Constellation: s.Constellation,
	}
	r.above = pos.AltDeg > horizon
	return r
}
