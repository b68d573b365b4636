package bounds

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"parbox.dev/parbox/geo"
)

func positionBounds(p *geo.Position) (geo.Box, error) {
	return p.Bounds(), nil
}

func TestReduceEmptySlice(t *testing.T) {
	box, err := reduceSlice(NewPool(1), []geo.Position{}, 1, positionBounds)
	require.NoError(t, err)
	require.True(t, box.IsEmpty())
}

func TestReduceSingleElement(t *testing.T) {
	items := []geo.Position{geo.NewPosition(7, -3)}

	box, err := reduceSlice(NewPool(1), items, 1, positionBounds)
	require.NoError(t, err)
	require.True(t, box.Equals(items[0].Bounds()))
}

func TestReduceMatchesSequentialFold(t *testing.T) {
	items := make([]geo.Position, 0, 10000)
	for i := range 10000 {
		items = append(items, geo.NewPosition(float64(i%719)-300, float64(i%311)-150))
	}

	sequential, err := reduceSlice(NewPool(1), items, len(items), positionBounds)
	require.NoError(t, err)

	parallel, err := reduceSlice(NewPool(8), items, 16, positionBounds)
	require.NoError(t, err)
	require.True(t, sequential.Equals(parallel))
}

func TestReduceErrorPropagates(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	fn := func(v *int) (geo.Box, error) {
		if *v == 73 {
			return geo.Empty(), errors.New("boom")
		}
		p := geo.NewPosition(float64(*v), float64(*v))
		return p.Bounds(), nil
	}

	for _, workers := range []int{1, 4} {
		_, err := reduceSlice(NewPool(workers), items, 3, fn)
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
	}
}

func TestReduceThresholdFloor(t *testing.T) {
	items := []geo.Position{geo.NewPosition(1, 1), geo.NewPosition(2, 2)}

	// a nonsensical threshold is clamped to 1, not trusted
	box, err := reduceSlice(NewPool(1), items, -5, positionBounds)
	require.NoError(t, err)
	require.Equal(t, 1.0, box.MinPos.Lon())
	require.Equal(t, 2.0, box.MaxPos.Lat())
}

func TestNilPoolRunsInline(t *testing.T) {
	var pool *Pool
	items := []geo.Position{geo.NewPosition(-1, -1), geo.NewPosition(4, 0), geo.NewPosition(0, 9)}

	box, err := reduceSlice(pool, items, 1, positionBounds)
	require.NoError(t, err)
	require.Equal(t, -1.0, box.MinPos.Lon())
	require.Equal(t, 9.0, box.MaxPos.Lat())
}
