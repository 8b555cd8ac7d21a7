// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Constellation figures from GeoJSON, celestial equator and ecliptic lines
// 0.3.0 - VSOP87 planet tracks, moon phase engine, event log
// 0.2.0 - Star catalog ranking, rise/set finder, path sampling with peak annotation
// 0.1.0 - Initial release: TUI sky map, headless summary, JSON scene export
