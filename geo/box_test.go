package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func box(xmin, ymin, xmax, ymax float64) Box {
	return Box{MinPos: NewPosition(xmin, ymin), MaxPos: NewPosition(xmax, ymax)}
}

func TestUnionAssociative(t *testing.T) {
	a := box(-10, 0, 5, 3)
	b := box(2, -7, 3, 12)
	c := box(0, 0, 40, 1)

	ab := a.Union(b)
	bc := b.Union(c)
	require.True(t, ab.Union(c).Equals(a.Union(bc)))
}

func TestUnionCommutative(t *testing.T) {
	a := box(-10, 0, 5, 3)
	b := box(2, -7, 3, 12)

	ab := a.Union(b)
	ba := b.Union(a)
	require.True(t, ab.Equals(ba))
}

func TestUnionIdentity(t *testing.T) {
	a := box(-10, 0, 5, 3)
	empty := Empty()

	require.True(t, a.Union(empty).Equals(a))
	require.True(t, empty.Union(a).Equals(a))
}

func TestEmptyBox(t *testing.T) {
	empty := Empty()
	require.True(t, empty.IsEmpty())

	// the empty sentinel must stay distinct from a degenerate box at
	// the origin
	origin := box(0, 0, 0, 0)
	require.False(t, origin.IsEmpty())
	require.False(t, empty.Equals(origin))

	union := empty.Union(empty)
	require.True(t, union.IsEmpty())
}

func TestPositionBounds(t *testing.T) {
	p := NewPosition(-83.06, 39.87)
	b := p.Bounds()

	require.Equal(t, -83.06, b.MinPos.Lon())
	require.Equal(t, -83.06, b.MaxPos.Lon())
	require.Equal(t, 39.87, b.MinPos.Lat())
	require.Equal(t, 39.87, b.MaxPos.Lat())
	require.False(t, b.IsEmpty())
}

func TestUnionValid(t *testing.T) {
	boxes := []Box{
		box(3, 3, 4, 4),
		box(-1, 0, 0, 2),
		box(0, -5, 9, -1),
	}

	result := Empty()
	for _, b := range boxes {
		result = result.Union(b)
	}
	require.LessOrEqual(t, result.MinPos.Lon(), result.MaxPos.Lon())
	require.LessOrEqual(t, result.MinPos.Lat(), result.MaxPos.Lat())
	require.True(t, result.Equals(box(-1, -5, 9, 4)))
}

func TestPosInside(t *testing.T) {
	b := box(0, 0, 10, 5)

	inside := NewPosition(5, 2)
	edge := NewPosition(10, 5)
	outside := NewPosition(11, 2)
	require.True(t, b.PosInside(inside))
	require.True(t, b.PosInside(edge))
	require.False(t, b.PosInside(outside))
}

func TestContains(t *testing.T) {
	outer := box(0, 0, 10, 10)
	inner := box(2, 2, 4, 4)
	crossing := box(8, 8, 12, 12)

	require.True(t, outer.Contains(inner))
	require.False(t, outer.Contains(crossing))
	require.False(t, inner.Contains(outer))
}

func TestFinite(t *testing.T) {
	p := NewPosition(1, 2)
	require.True(t, p.Finite())

	nan := NewPosition(math.NaN(), 2)
	require.False(t, nan.Finite())

	inf := NewPosition(1, math.Inf(-1))
	require.False(t, inf.Finite())
}
