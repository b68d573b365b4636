package geo

import (
	m "math"
)

type Box struct {
	MinPos Position
	MaxPos Position
}

// Empty returns the box representing "no coordinates seen". It is the
// identity for Union: min coordinates start at +Inf and max coordinates
// at -Inf, so unioning it with any real box returns that box unchanged.
func Empty() Box {
	return Box{
		MinPos: NewPosition(m.Inf(1), m.Inf(1)),
		MaxPos: NewPosition(m.Inf(-1), m.Inf(-1)),
	}
}

// IsEmpty distinguishes the empty sentinel from every real box,
// including degenerate single-point boxes.
func (b Box) IsEmpty() bool {
	return b.MinPos.Lon() > b.MaxPos.Lon() || b.MinPos.Lat() > b.MaxPos.Lat()
}

// Union returns the elementwise bounding box of both boxes. It is
// associative and commutative, so a sequence of boxes may be unioned in
// any grouping and order with an identical result.
func (b Box) Union(other Box) Box {
	return Box{
		MinPos: NewPosition(
			m.Min(b.MinPos.Lon(), other.MinPos.Lon()),
			m.Min(b.MinPos.Lat(), other.MinPos.Lat()),
		),
		MaxPos: NewPosition(
			m.Max(b.MaxPos.Lon(), other.MaxPos.Lon()),
			m.Max(b.MaxPos.Lat(), other.MaxPos.Lat()),
		),
	}
}

func (b Box) PosInside(p Position) bool {
	return p.Lat() >= b.MinPos.Lat() && p.Lat() <= b.MaxPos.Lat() && p.Lon() >= b.MinPos.Lon() && p.Lon() <= b.MaxPos.Lon()
}

func (a Box) Contains(b Box) bool {
	bMinInside := a.PosInside(b.MinPos)
	bMaxInside := a.PosInside(b.MaxPos)
	return bMinInside && bMaxInside
}

func (a Box) Equals(b Box) bool {
	return a.MinPos.Equals(b.MinPos) && a.MaxPos.Equals(b.MaxPos)
}
