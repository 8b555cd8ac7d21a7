package sky

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/litescript/ls-skymap/internal/astro"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stars.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"N": "Rigel", "RA": "78.634", "Dec": "-8.202", "V": "0.13", "K": "11000", "C": "Ori"},
		{"N": "Betelgeuse", "RA": "88.793", "Dec": "7.407", "V": 0.42},
		{"N": "NoMagnitude", "RA": "10", "Dec": "20"},
		{"N": "BadMagnitude", "RA": "10", "Dec": "20", "V": "bright"}
	]`)

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.Stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(cat.Stars))
	}
	if cat.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", cat.Dropped)
	}

	rigel := cat.Stars[0]
	if rigel.Name != "Rigel" || rigel.Mag != 0.13 || rigel.TempK != 11000 || rigel.Constellation != "Ori" {
		t.Errorf("rigel = %+v", rigel)
	}
	// Quoted and bare numbers must decode alike.
	if cat.Stars[1].Mag != 0.42 {
		t.Errorf("betelgeuse mag = %v", cat.Stars[1].Mag)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadCatalogBadJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"not": "an array"`)
	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

// Every built-in row must survive a ranking pass: parseable coordinates
// and a plausible magnitude.
func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat.Stars) < 100 {
		t.Fatalf("default catalog has only %d stars", len(cat.Stars))
	}

	seen := make(map[string]bool)
	for _, s := range cat.Stars {
		if s.Name == "" {
			t.Error("default catalog contains an unnamed star")
		}
		if seen[s.Name] {
			t.Errorf("duplicate star %q", s.Name)
		}
		seen[s.Name] = true

		if _, err := astro.ParseEquatorial(s.RA, s.Dec); err != nil {
			t.Errorf("%s: %v", s.Name, err)
		}
		if s.Mag < -2 || s.Mag > 7 {
			t.Errorf("%s: magnitude %v implausible", s.Name, s.Mag)
		}
	}
	if !seen["Sirius"] || !seen["Vega"] {
		t.Error("expected Sirius and Vega in the default catalog")
	}
}

func TestStarColor(t *testing.T) {
	tests := []struct {
		tempK float64
		want  string
	}{
		{0, "#FFFFFF"},
		{40000, "#FFFFFF"},
		{8000, "#FFFFFF"},
		{20000, "#E6E6FF"},
		{6000, "#FFFF99"},
		{5000, "#FFCC66"},
		{3000, "#FF4500"},
	}
	for _, tt := range tests {
		if got := StarColor(tt.tempK); got != tt.want {
			t.Errorf("StarColor(%v) = %q, want %q", tt.tempK, got, tt.want)
		}
	}
}
