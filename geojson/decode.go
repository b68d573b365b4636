package geojson

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"parbox.dev/parbox/geo"
)

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometries  []rawGeometry   `json:"geometries"`
}

type rawFeature struct {
	Type       string         `json:"type"`
	Geometry   *rawGeometry   `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type rawDocument struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometries  []rawGeometry   `json:"geometries"`
	Geometry    *rawGeometry    `json:"geometry"`
	Properties  map[string]any  `json:"properties"`
	Features    []rawFeature    `json:"features"`
}

// ParseFile reads and parses a GeoJSON document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read geojson file")
	}
	return Parse(data)
}

// Parse builds the geometry tree from a serialized GeoJSON document.
// The root may be a bare geometry, a Feature, or a FeatureCollection.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "could not parse geojson document")
	}

	switch raw.Type {
	case "":
		return nil, errors.New("geojson document has no type")
	case "Feature":
		f, err := decodeFeature(&rawFeature{Type: raw.Type, Geometry: raw.Geometry, Properties: raw.Properties})
		if err != nil {
			return nil, err
		}
		return &Document{Feature: f}, nil
	case "FeatureCollection":
		fc, err := decodeCollection(raw.Features)
		if err != nil {
			return nil, err
		}
		return &Document{Collection: fc}, nil
	default:
		g, err := decodeGeometry(&rawGeometry{Type: raw.Type, Coordinates: raw.Coordinates, Geometries: raw.Geometries})
		if err != nil {
			return nil, err
		}
		return &Document{Geometry: g}, nil
	}
}

func decodeCollection(raws []rawFeature) (*FeatureCollection, error) {
	fc := FeatureCollection{Features: make([]Feature, 0, len(raws))}
	for i := range raws {
		f, err := decodeFeature(&raws[i])
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, *f)
	}
	return &fc, nil
}

func decodeFeature(raw *rawFeature) (*Feature, error) {
	f := Feature{Properties: raw.Properties}
	if raw.Geometry != nil {
		g, err := decodeGeometry(raw.Geometry)
		if err != nil {
			return nil, err
		}
		f.Geometry = g
	}
	return &f, nil
}

func decodeGeometry(raw *rawGeometry) (*Geometry, error) {
	switch GeometryType(raw.Type) {
	case TypePoint:
		var c []float64
		if err := json.Unmarshal(raw.Coordinates, &c); err != nil {
			return nil, errors.Wrap(err, "could not decode point coordinates")
		}
		p, err := position(c)
		if err != nil {
			return nil, err
		}
		return &Geometry{Type: TypePoint, Point: p}, nil
	case TypeMultiPoint:
		ps, err := decodePositions(raw.Coordinates)
		if err != nil {
			return nil, err
		}
		return &Geometry{Type: TypeMultiPoint, MultiPoint: ps}, nil
	case TypeLineString:
		ps, err := decodePositions(raw.Coordinates)
		if err != nil {
			return nil, err
		}
		return &Geometry{Type: TypeLineString, LineString: ps}, nil
	case TypeMultiLineString:
		rs, err := decodeRings(raw.Coordinates)
		if err != nil {
			return nil, err
		}
		return &Geometry{Type: TypeMultiLineString, MultiLineString: rs}, nil
	case TypePolygon:
		rs, err := decodeRings(raw.Coordinates)
		if err != nil {
			return nil, err
		}
		return &Geometry{Type: TypePolygon, Polygon: rs}, nil
	case TypeMultiPolygon:
		var c [][][][]float64
		if err := json.Unmarshal(raw.Coordinates, &c); err != nil {
			return nil, errors.Wrap(err, "could not decode multipolygon coordinates")
		}
		polys := make([][][]geo.Position, 0, len(c))
		for _, rawPoly := range c {
			poly, err := rings(rawPoly)
			if err != nil {
				return nil, err
			}
			polys = append(polys, poly)
		}
		return &Geometry{Type: TypeMultiPolygon, MultiPolygon: polys}, nil
	case TypeGeometryCollection:
		geoms := make([]Geometry, 0, len(raw.Geometries))
		for i := range raw.Geometries {
			g, err := decodeGeometry(&raw.Geometries[i])
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, *g)
		}
		return &Geometry{Type: TypeGeometryCollection, Geometries: geoms}, nil
	}
	return nil, errors.Errorf("unrecognized geometry type: %s", raw.Type)
}

func decodePositions(data json.RawMessage) ([]geo.Position, error) {
	var c [][]float64
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "could not decode coordinate sequence")
	}
	return positions(c)
}

func decodeRings(data json.RawMessage) ([][]geo.Position, error) {
	var c [][][]float64
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "could not decode nested coordinate sequence")
	}
	return rings(c)
}

// A GeoJSON coordinate is [longitude, latitude] with optional extra
// dimensions; anything past the first two values is ignored.
func position(c []float64) (geo.Position, error) {
	if len(c) < 2 {
		return geo.Position{}, errors.Errorf("coordinate has %d values, expected at least 2", len(c))
	}
	return geo.NewPosition(c[0], c[1]), nil
}

func positions(c [][]float64) ([]geo.Position, error) {
	ps := make([]geo.Position, 0, len(c))
	for _, rawPos := range c {
		p, err := position(rawPos)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func rings(c [][][]float64) ([][]geo.Position, error) {
	rs := make([][]geo.Position, 0, len(c))
	for _, rawRing := range c {
		r, err := positions(rawRing)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}
