package geo

import (
	m "math"
)

// NewPosition creates a position from a longitude, latitude pair in
// degrees. The argument order matches GeoJSON coordinate order.
func NewPosition(lonDeg, latDeg float64) Position {
	return Position{longitudeDeg: lonDeg, latitudeDeg: latDeg}
}

type Position struct {
	longitudeDeg float64
	latitudeDeg  float64
}

func (p Position) Lon() float64 {
	return p.longitudeDeg
}

func (p Position) Lat() float64 {
	return p.latitudeDeg
}

// Finite reports whether both coordinates are finite real numbers.
func (p Position) Finite() bool {
	return !m.IsNaN(p.longitudeDeg) && !m.IsInf(p.longitudeDeg, 0) &&
		!m.IsNaN(p.latitudeDeg) && !m.IsInf(p.latitudeDeg, 0)
}

// Bounds returns the degenerate box covering only the position itself.
func (p Position) Bounds() Box {
	return Box{MinPos: p, MaxPos: p}
}

func (p Position) Equals(other Position) bool {
	return p.latitudeDeg == other.latitudeDeg && p.longitudeDeg == other.longitudeDeg
}
