package geojson

import (
	"encoding/json"

	"github.com/pkg/errors"

	"parbox.dev/parbox/geo"
)

func (g *Geometry) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        GeometryType `json:"type"`
		Coordinates any          `json:"coordinates,omitempty"`
		Geometries  []Geometry   `json:"geometries,omitempty"`
	}{Type: g.Type}

	switch g.Type {
	case TypePoint:
		out.Coordinates = coord(g.Point)
	case TypeMultiPoint:
		out.Coordinates = coords(g.MultiPoint)
	case TypeLineString:
		out.Coordinates = coords(g.LineString)
	case TypeMultiLineString:
		out.Coordinates = ringCoords(g.MultiLineString)
	case TypePolygon:
		out.Coordinates = ringCoords(g.Polygon)
	case TypeMultiPolygon:
		polys := make([][][][2]float64, 0, len(g.MultiPolygon))
		for _, poly := range g.MultiPolygon {
			polys = append(polys, ringCoords(poly))
		}
		out.Coordinates = polys
	case TypeGeometryCollection:
		out.Geometries = g.Geometries
		if out.Geometries == nil {
			out.Geometries = []Geometry{}
		}
	default:
		return nil, errors.Errorf("unrecognized geometry type: %s", g.Type)
	}

	return json.Marshal(out)
}

func (f *Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string         `json:"type"`
		Geometry   *Geometry      `json:"geometry"`
		Properties map[string]any `json:"properties"`
	}{Type: "Feature", Geometry: f.Geometry, Properties: f.Properties})
}

func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	features := fc.Features
	if features == nil {
		features = []Feature{}
	}
	return json.Marshal(struct {
		Type     string    `json:"type"`
		Features []Feature `json:"features"`
	}{Type: "FeatureCollection", Features: features})
}

func coord(p geo.Position) [2]float64 {
	return [2]float64{p.Lon(), p.Lat()}
}

func coords(ps []geo.Position) [][2]float64 {
	out := make([][2]float64, 0, len(ps))
	for i := range ps {
		out = append(out, coord(ps[i]))
	}
	return out
}

func ringCoords(rs [][]geo.Position) [][][2]float64 {
	out := make([][][2]float64, 0, len(rs))
	for _, r := range rs {
		out = append(out, coords(r))
	}
	return out
}
