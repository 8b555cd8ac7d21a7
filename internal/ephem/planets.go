package ephem

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/elliptic"
	"github.com/soniakeys/meeus/v3/julian"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"github.com/soniakeys/meeus/v3/rise"

	"github.com/litescript/ls-skymap/internal/astro"
)

// Planet is a major planet positioned from the VSOP87 theory.
type Planet struct {
	name   string
	planet *pp.V87Planet
	earth  *pp.V87Planet
}

func (p *Planet) Name() string { return p.name }

// Position returns the planet's apparent geocentric equatorial position.
func (p *Planet) Position(t time.Time) astro.Equatorial {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := elliptic.Position(p.planet, p.earth, jd)
	return astro.Equatorial{RAdeg: ra.Deg(), DecDeg: dec.Deg()}
}

// StandardAltitude for planets is the stellar value; their semidiameter is
// too small to matter for rise and set.
func (p *Planet) StandardAltitude(time.Time) float64 {
	return rise.Stdh0Stellar.Deg()
}

// Pluto keeps its seat in the lineup even if the IAU disagrees. It has its
// own theory in meeus, separate from VSOP87.
type Pluto struct {
	earth *pp.V87Planet
}

func (p *Pluto) Name() string { return "Pluto" }

func (p *Pluto) Position(t time.Time) astro.Equatorial {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := pluto.Astrometric(jd, p.earth)
	return astro.Equatorial{RAdeg: ra.Deg(), DecDeg: dec.Deg()}
}

func (p *Pluto) StandardAltitude(time.Time) float64 {
	return rise.Stdh0Stellar.Deg()
}

// vsopBodies maps display names to VSOP87 body indexes, in display order.
var vsopBodies = []struct {
	name  string
	ibody int
}{
	{"Mercury", pp.Mercury},
	{"Venus", pp.Venus},
	{"Mars", pp.Mars},
	{"Jupiter", pp.Jupiter},
	{"Saturn", pp.Saturn},
	{"Uranus", pp.Uranus},
	{"Neptune", pp.Neptune},
}

// LoadPlanets loads the VSOP87 data for Earth and the other major planets
// from dir and returns the planet bodies, Pluto included. A missing or
// unreadable Earth dataset fails the whole load (every geocentric position
// needs it); failures on individual planets skip just that planet.
func LoadPlanets(dir string) ([]Body, []error) {
	earth, err := loadVSOP(pp.Earth, dir)
	if err != nil {
		return nil, []error{fmt.Errorf("load Earth ephemeris: %w", err)}
	}

	var bodies []Body
	var errs []error
	for _, vb := range vsopBodies {
		v, err := loadVSOP(vb.ibody, dir)
		if err != nil {
			errs = append(errs, fmt.Errorf("load %s ephemeris: %w", vb.name, err))
			continue
		}
		bodies = append(bodies, &Planet{name: vb.name, planet: v, earth: earth})
	}
	bodies = append(bodies, &Pluto{earth: earth})
	return bodies, errs
}

func loadVSOP(ibody int, dir string) (*pp.V87Planet, error) {
	if dir != "" {
		return pp.LoadPlanetPath(ibody, dir)
	}
	return pp.LoadPlanet(ibody)
}
