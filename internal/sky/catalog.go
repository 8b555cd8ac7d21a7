package sky

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CatalogStar is one row of a star catalog as loaded from disk. RA and Dec
// stay in their catalogue string form; they are parsed when a ranking pass
// needs them, and a row that fails to parse is skipped there with a reason.
type CatalogStar struct {
	Name          string
	RA            string
	Dec           string
	Mag           float64
	TempK         float64 // surface temperature in Kelvin, 0 when unknown
	Constellation string  // IAU abbreviation, empty when unknown
}

// Catalog is a read-only star catalog, loaded once and shared by reference
// for the lifetime of a rendering pass.
type Catalog struct {
	Stars []CatalogStar

	// Dropped counts rows discarded at load time for having no usable
	// magnitude. Kept for diagnostics; callers log it.
	Dropped int
}

// rawCatalogStar matches the catalogue file schema (Yale BSC derived):
// single-letter keys, magnitude and temperature sometimes quoted.
type rawCatalogStar struct {
	Name  string     `json:"N"`
	RA    string     `json:"RA"`
	Dec   string     `json:"Dec"`
	V     flexNumber `json:"V"`
	TempK flexNumber `json:"K"`
	Con   string     `json:"C"`
}

// flexNumber decodes a JSON number that may arrive quoted.
type flexNumber struct {
	Value float64
	OK    bool
}

// UnmarshalJSON never fails: a malformed number leaves OK false so the one
// bad row can be dropped without aborting the whole catalog decode.
func (f *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = v
	f.OK = true
	return nil
}

// LoadCatalog reads a JSON star catalog from path. Rows without a usable
// magnitude are dropped here — magnitude drives the pre-filter, so a row
// without one can never be ranked. A failure to read or decode the file is
// an error for the caller; it must not take down unrelated computations.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read star catalog: %w", err)
	}

	var raw []rawCatalogStar
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode star catalog %s: %w", path, err)
	}

	cat := &Catalog{Stars: make([]CatalogStar, 0, len(raw))}
	for _, r := range raw {
		if !r.V.OK {
			cat.Dropped++
			continue
		}
		star := CatalogStar{
			Name:          r.Name,
			RA:            r.RA,
			Dec:           r.Dec,
			Mag:           r.V.Value,
			Constellation: r.Con,
		}
		if r.TempK.OK {
			star.TempK = r.TempK.Value
		}
		cat.Stars = append(cat.Stars, star)
	}
	return cat, nil
}
