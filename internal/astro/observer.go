package astro

import "math"

// Observer is a ground-based observing site. It carries location only; the
// evaluation instant is always an explicit parameter so one Observer value
// can be shared freely across sequential and concurrent computations.
type Observer struct {
	LatDeg     float64 // Latitude in degrees (north positive)
	LonDeg     float64 // Longitude in degrees (east positive)
	ElevM      float64 // Elevation above sea level in meters
	HorizonDeg float64 // Horizon offset in degrees (0 = astronomical horizon)
	Name       string  // Optional site name
}

// HorizonAltitude returns the altitude an object must exceed to count as
// above this observer's horizon: the configured offset lowered by the
// horizon dip from elevation (1.76′ per √meter).
func (o Observer) HorizonAltitude() float64 {
	dip := 0.0
	if o.ElevM > 0 {
		dip = 1.76 / 60 * math.Sqrt(o.ElevM)
	}
	return o.HorizonDeg - dip
}
