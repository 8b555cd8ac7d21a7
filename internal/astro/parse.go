package astro

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Catalog files carry coordinates in several formats. ParseRA and ParseDec
// normalize all of them to decimal degrees:
//
//	RA:  "12h 34m 56.7s", "12h34m56.7s", "12:34:56.7" (hours), "188.59" (degrees)
//	Dec: "+45° 30′ 15.3″", "+45° 30' 15.3\"", "-45:30:15.3", "-16.72" (degrees)
//
// Unparseable input is an error; callers skip the entry and log the reason
// rather than substituting a position.

var (
	raSexaRe  = regexp.MustCompile(`^\s*(\d+)\s*[h:]\s*(\d+)\s*[m:]\s*([\d.]+)\s*s?\s*$`)
	raHMRe    = regexp.MustCompile(`^\s*(\d+)\s*[h:]\s*([\d.]+)\s*m?\s*$`)
	decSexaRe = regexp.MustCompile(`^\s*([+-]?\d+)\s*[°d:]\s*(\d+)\s*[′':]\s*([\d.]+)\s*[″"]?\s*$`)
	decDMRe   = regexp.MustCompile(`^\s*([+-]?\d+)\s*[°d:]\s*([\d.]+)\s*[′']?\s*$`)
)

// ParseRA parses a right ascension string and returns degrees in [0,360).
// Sexagesimal forms are hours; a bare decimal is taken as degrees.
func ParseRA(s string) (float64, error) {
	if m := raSexaRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		min, _ := strconv.ParseFloat(m[2], 64)
		sec, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, fmt.Errorf("parse RA %q: %w", s, err)
		}
		if min >= 60 || sec >= 60 {
			return 0, fmt.Errorf("parse RA %q: minutes/seconds out of range", s)
		}
		deg := (h + min/60 + sec/3600) * 15
		return normalize360(deg), nil
	}
	if m := raHMRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		min, err := strconv.ParseFloat(m[2], 64)
		if err != nil || min >= 60 {
			return 0, fmt.Errorf("parse RA %q: bad minutes", s)
		}
		return normalize360((h + min/60) * 15), nil
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse RA %q: unrecognized format", s)
	}
	return normalize360(deg), nil
}

// ParseDec parses a declination string and returns degrees in [-90,90].
func ParseDec(s string) (float64, error) {
	var deg float64
	switch {
	case decSexaRe.MatchString(s):
		m := decSexaRe.FindStringSubmatch(s)
		d, _ := strconv.ParseFloat(m[1], 64)
		min, _ := strconv.ParseFloat(m[2], 64)
		sec, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, fmt.Errorf("parse Dec %q: %w", s, err)
		}
		if min >= 60 || sec >= 60 {
			return 0, fmt.Errorf("parse Dec %q: minutes/seconds out of range", s)
		}
		deg = d + min/60 + sec/3600
		if strings.HasPrefix(strings.TrimSpace(m[1]), "-") {
			deg = d - min/60 - sec/3600
		}
	case decDMRe.MatchString(s):
		m := decDMRe.FindStringSubmatch(s)
		d, _ := strconv.ParseFloat(m[1], 64)
		min, err := strconv.ParseFloat(m[2], 64)
		if err != nil || min >= 60 {
			return 0, fmt.Errorf("parse Dec %q: bad minutes", s)
		}
		deg = d + min/60
		if strings.HasPrefix(strings.TrimSpace(m[1]), "-") {
			deg = d - min/60
		}
	default:
		d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("parse Dec %q: unrecognized format", s)
		}
		deg = d
	}
	if deg < -90 || deg > 90 {
		return 0, fmt.Errorf("parse Dec %q: %.4f out of range", s, deg)
	}
	return deg, nil
}

// ParseEquatorial parses an RA/Dec string pair into an Equatorial position.
func ParseEquatorial(ra, dec string) (Equatorial, error) {
	raDeg, err := ParseRA(ra)
	if err != nil {
		return Equatorial{}, err
	}
	decDeg, err := ParseDec(dec)
	if err != nil {
		return Equatorial{}, err
	}
	return Equatorial{RAdeg: raDeg, DecDeg: decDeg}, nil
}

func normalize360(deg float64) float64 {
	d := deg
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
