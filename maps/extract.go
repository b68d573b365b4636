package maps

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"

	"parbox.dev/parbox/geo"
	"parbox.dev/parbox/geojson"
)

type ExtractSettings struct {
	InputFile  string
	OutputFile string
	// AllWays keeps every way instead of just highways.
	AllWays bool
}

// WayFeature converts a scanned way into a LineString feature. The
// way's nodes must carry locations, as they do in the map extracts this
// tool consumes.
func WayFeature(way *osm.Way) geojson.Feature {
	tags := way.TagMap()
	positions := make([]geo.Position, 0, len(way.Nodes))
	for _, n := range way.Nodes {
		positions = append(positions, geo.NewPosition(n.Lon, n.Lat))
	}

	properties := map[string]any{}
	for _, key := range []string{"name", "ref", "highway"} {
		if tags[key] != "" {
			properties[key] = tags[key]
		}
	}

	return geojson.Feature{
		Geometry:   &geojson.Geometry{Type: geojson.TypeLineString, LineString: positions},
		Properties: properties,
	}
}

// Extract scans an OSM PBF file and writes its ways as a GeoJSON
// FeatureCollection that the bbox pipeline can consume.
func Extract(s ExtractSettings) error {
	slog.Info("Extracting ways", "input", s.InputFile)
	file, err := os.Open(s.InputFile)
	if err != nil {
		return errors.Wrap(err, "could not open map pbf file")
	}
	defer file.Close()

	// The third parameter is the number of parallel decoders to use.
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	scanner.SkipRelations = true
	defer scanner.Close()

	fc := geojson.FeatureCollection{}
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 {
			continue
		}
		if !s.AllWays && way.TagMap()["highway"] == "" {
			continue
		}
		fc.Features = append(fc.Features, WayFeature(way))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not scan map pbf file")
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return errors.Wrap(err, "could not marshal feature collection")
	}
	err = os.WriteFile(s.OutputFile, data, 0o644)
	if err != nil {
		return errors.Wrap(err, "could not write geojson output file")
	}

	slog.Info("Done extracting ways", "features", len(fc.Features), "output", s.OutputFile)
	return nil
}
