package maps

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/require"

	"parbox.dev/parbox/bounds"
	"parbox.dev/parbox/geo"
	"parbox.dev/parbox/geojson"
)

func TestWayFeature(t *testing.T) {
	way := &osm.Way{
		Tags: osm.Tags{
			{Key: "highway", Value: "residential"},
			{Key: "name", Value: "High Street"},
			{Key: "surface", Value: "asphalt"},
		},
		Nodes: osm.WayNodes{
			{Lat: 39.87, Lon: -83.06},
			{Lat: 39.88, Lon: -83.01},
		},
	}

	f := WayFeature(way)
	require.NotNil(t, f.Geometry)
	require.Equal(t, geojson.TypeLineString, f.Geometry.Type)
	require.Len(t, f.Geometry.LineString, 2)
	require.True(t, f.Geometry.LineString[0].Equals(geo.NewPosition(-83.06, 39.87)))

	require.Equal(t, "High Street", f.Properties["name"])
	require.Equal(t, "residential", f.Properties["highway"])
	// only the tags the tool cares about survive conversion
	require.NotContains(t, f.Properties, "surface")
}

func TestWayFeatureBounds(t *testing.T) {
	way := &osm.Way{
		Nodes: osm.WayNodes{
			{Lat: 1, Lon: 2},
			{Lat: 3, Lon: 4},
			{Lat: -1, Lon: 0},
		},
	}

	f := WayFeature(way)
	box, err := bounds.OfFeature(&f, bounds.Options{})
	require.NoError(t, err)
	require.Equal(t, 0.0, box.MinPos.Lon())
	require.Equal(t, -1.0, box.MinPos.Lat())
	require.Equal(t, 4.0, box.MaxPos.Lon())
	require.Equal(t, 3.0, box.MaxPos.Lat())
}
