package sky

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
)

// ConstellationSet holds constellation stick figures as equatorial line
// segments, keyed by IAU abbreviation. Loaded once from a GeoJSON dataset.
type ConstellationSet struct {
	Figures []ConstellationLines
}

// ConstellationLines is one constellation's line segments in J2000
// equatorial coordinates.
type ConstellationLines struct {
	ID       string // IAU abbreviation, e.g. "Ori"
	Segments [][]astro.Equatorial
}

// geojson wire types for the constellation line dataset.
type constellationFile struct {
	Features []constellationFeature `json:"features"`
}

type constellationFeature struct {
	ID       string `json:"id"`
	Geometry struct {
		Coordinates [][][2]float64 `json:"coordinates"`
	} `json:"geometry"`
}

// LoadConstellations reads a GeoJSON constellation line dataset. Segment
// right ascensions arrive in -180..180 and are normalized to 0..360.
func LoadConstellations(path string) (*ConstellationSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read constellation data: %w", err)
	}
	var file constellationFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode constellation data %s: %w", path, err)
	}

	set := &ConstellationSet{Figures: make([]ConstellationLines, 0, len(file.Features))}
	for _, f := range file.Features {
		lines := ConstellationLines{ID: f.ID}
		for _, seg := range f.Geometry.Coordinates {
			points := make([]astro.Equatorial, 0, len(seg))
			for _, c := range seg {
				ra := c[0]
				if ra < 0 {
					ra += 360
				}
				points = append(points, astro.Equatorial{RAdeg: ra, DecDeg: c[1]})
			}
			lines.Segments = append(lines.Segments, points)
		}
		set.Figures = append(set.Figures, lines)
	}
	return set, nil
}

// ConstellationFigure is one constellation placed on the observer's sky:
// seam-wrapped polylines in plot space plus a label anchor near the
// figure's visual center.
type ConstellationFigure struct {
	ID        string
	Name      string
	Polylines [][]Point
	Label     Point
}

// PlaceConstellations transforms constellation figures onto the observer's
// sky at t. Only segments with at least two points above the horizon are
// kept, and constellations with nothing visible are dropped. only, when
// non-empty, restricts output to the listed abbreviations; max > 0 caps
// the number of figures, in dataset order.
func PlaceConstellations(set *ConstellationSet, obs astro.Observer, t time.Time, only []string, max int) []ConstellationFigure {
	wanted := make(map[string]bool, len(only))
	for _, id := range only {
		wanted[id] = true
	}

	horizon := obs.HorizonAltitude()
	var figures []ConstellationFigure
	for _, lines := range set.Figures {
		if len(only) > 0 && !wanted[lines.ID] {
			continue
		}
		if max > 0 && len(figures) >= max {
			break
		}

		fig := ConstellationFigure{ID: lines.ID, Name: ConstellationName(lines.ID)}
		var all []Point
		for _, seg := range lines.Segments {
			var points []Point
			for _, eq := range seg {
				pos := astro.EquatorialToHorizontal(eq, obs, t)
				if pos.AltDeg <= horizon {
					continue
				}
				points = append(points, Point{X: astro.CenterAzimuth(pos.AzDeg), Y: pos.AltDeg})
			}
			if len(points) < 2 {
				continue
			}
			fig.Polylines = append(fig.Polylines, WrapPolyline(points)...)
			all = append(all, points...)
		}
		if len(fig.Polylines) == 0 {
			continue
		}
		fig.Label = centroidNearest(all)
		figures = append(figures, fig)
	}
	return figures
}

// centroidNearest returns the vertex closest to the centroid of all
// vertices. Anchoring the label to a real vertex keeps it on the figure
// even when the centroid falls in empty sky.
func centroidNearest(points []Point) Point {
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	best := points[0]
	bestDist := math.Inf(1)
	for _, p := range points {
		d := (p.X-cx)*(p.X-cx) + (p.Y-cy)*(p.Y-cy)
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// ConstellationName expands an IAU constellation abbreviation to its full
// name, returning the abbreviation unchanged when unknown.
func ConstellationName(abbrev string) string {
	if name, ok := constellationNames[abbrev]; ok {
		return name
	}
	return abbrev
}

// constellationNames maps the 88 IAU abbreviations to full names.
var constellationNames = map[string]string{
	"And": "Andromeda", "Ant": "Antlia", "Aps": "Apus", "Aqr": "Aquarius",
	"Aql": "Aquila", "Ara": "Ara", "Ari": "Aries", "Aur": "Auriga",
	"Boo": "Boötes", "Cae": "Caelum", "Cam": "Camelopardalis", "Cnc": "Cancer",
	"CVn": "Canes Venatici", "CMa": "Canis Major", "CMi": "Canis Minor",
	"Cap": "Capricornus", "Car": "Carina", "Cas": "Cassiopeia",
	"Cen": "Centaurus", "Cep": "Cepheus", "Cet": "Cetus",
	"Cha": "Chamaeleon", "Cir": "Circinus", "Col": "Columba",
	"Com": "Coma Berenices", "CrA": "Corona Australis", "CrB": "Corona Borealis",
	"Crv": "Corvus", "Crt": "Crater", "Cru": "Crux", "Cyg": "Cygnus",
	"Del": "Delphinus", "Dor": "Dorado", "Dra": "Draco", "Equ": "Equuleus",
	"Eri": "Eridanus", "For": "Fornax", "Gem": "Gemini", "Gru": "Grus",
	"Her": "Hercules", "Hor": "Horologium", "Hya": "Hydra", "Hyi": "Hydrus",
	"Ind": "Indus", "Lac": "Lacerta", "Leo": "Leo", "LMi": "Leo Minor",
	"Lep": "Lepus", "Lib": "Libra", "Lup": "Lupus", "Lyn": "Lynx",
	"Lyr": "Lyra", "Men": "Mensa", "Mic": "Microscopium", "Mon": "Monoceros",
	"Mus": "Musca", "Nor": "Norma", "Oct": "Octans", "Oph": "Ophiuchus",
	"Ori": "Orion", "Pav": "Pavo", "Peg": "Pegasus", "Per": "Perseus",
	"Phe": "Phoenix", "Pic": "Pictor", "Psc": "Pisces",
	"PsA": "Piscis Austrinus", "Pup": "Puppis", "Pyx": "Pyxis",
	"Ret": "Reticulum", "Sge": "Sagitta", "Sgr": "Sagittarius",
	"Sco": "Scorpius", "Scl": "Sculptor", "Sct": "Scutum",
	"Ser": "Serpens", "Sex": "Sextans", "Tau": "Taurus",
	"Tel": "Telescopium", "Tri": "Triangulum", "TrA": "Triangulum Australe",
	"Tuc": "Tucana", "UMa": "Ursa Major", "UMi": "Ursa Minor",
	"Vel": "Vela", "Vir": "Virgo", "Vol": "Volans", "Vul": "Vulpecula",
}
