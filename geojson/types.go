package geojson

import (
	"parbox.dev/parbox/geo"
)

type GeometryType string

const (
	TypePoint              GeometryType = "Point"
	TypeMultiPoint         GeometryType = "MultiPoint"
	TypeLineString         GeometryType = "LineString"
	TypeMultiLineString    GeometryType = "MultiLineString"
	TypePolygon            GeometryType = "Polygon"
	TypeMultiPolygon       GeometryType = "MultiPolygon"
	TypeGeometryCollection GeometryType = "GeometryCollection"
)

// Geometry is a closed tagged union over the GeoJSON geometry variants.
// Exactly the payload field named after Type is populated; consumers
// switch on Type exhaustively and treat any other tag as an error.
type Geometry struct {
	Type            GeometryType
	Point           geo.Position
	MultiPoint      []geo.Position
	LineString      []geo.Position
	MultiLineString [][]geo.Position
	Polygon         [][]geo.Position
	MultiPolygon    [][][]geo.Position
	Geometries      []Geometry
}

// Feature pairs a geometry with its properties. The geometry is
// optional in GeoJSON, so it may be nil. Properties are carried through
// parsing but never interpreted.
type Feature struct {
	Geometry   *Geometry
	Properties map[string]any
}

type FeatureCollection struct {
	Features []Feature
}

// Document is the root of a parsed file: a bare geometry, a single
// feature, or a feature collection. Exactly one field is set.
type Document struct {
	Geometry   *Geometry
	Feature    *Feature
	Collection *FeatureCollection
}
