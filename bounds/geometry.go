package bounds

import (
	"github.com/pkg/errors"

	"parbox.dev/parbox/geo"
	"parbox.dev/parbox/geojson"
)

// DefaultThreshold is the sequence length at or below which splitting
// stops being worth the task overhead.
const DefaultThreshold = 64

type Options struct {
	// Threshold is the element count at or below which a sequence is
	// folded sequentially instead of split further. Minimum 1; zero
	// selects DefaultThreshold.
	Threshold int
	// Workers caps how many reductions run concurrently. Zero or
	// negative uses one worker per available execution unit; one
	// worker is fully sequential.
	Workers int
}

// Compute returns the bounding box of every coordinate referenced by
// the document. A document referencing no coordinates yields the empty
// box. A non-finite coordinate anywhere in the tree is an error.
func Compute(doc *geojson.Document, opts Options) (geo.Box, error) {
	c := newComputation(opts)
	switch {
	case doc == nil:
		return geo.Empty(), nil
	case doc.Geometry != nil:
		return c.geometry(doc.Geometry)
	case doc.Feature != nil:
		return c.feature(doc.Feature)
	case doc.Collection != nil:
		return c.collection(doc.Collection)
	}
	return geo.Empty(), nil
}

// Of returns the bounding box of a single geometry.
func Of(g *geojson.Geometry, opts Options) (geo.Box, error) {
	c := newComputation(opts)
	return c.geometry(g)
}

// OfFeature returns the bounding box of a feature's geometry.
// Properties are ignored; a feature without a geometry is empty.
func OfFeature(f *geojson.Feature, opts Options) (geo.Box, error) {
	c := newComputation(opts)
	return c.feature(f)
}

// OfCollection returns the bounding box of every feature in the
// collection.
func OfCollection(fc *geojson.FeatureCollection, opts Options) (geo.Box, error) {
	c := newComputation(opts)
	return c.collection(fc)
}

type computation struct {
	pool      *Pool
	threshold int
}

func newComputation(opts Options) computation {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return computation{pool: NewPool(opts.Workers), threshold: threshold}
}

// position is the base case of the recursion: a degenerate box around
// a single coordinate pair. Non-finite coordinates are rejected here,
// uniformly for every variant.
func (c *computation) position(p *geo.Position) (geo.Box, error) {
	if !p.Finite() {
		return geo.Empty(), errors.Errorf("invalid coordinate: lon=%v lat=%v", p.Lon(), p.Lat())
	}
	return p.Bounds(), nil
}

func (c *computation) ring(ps []geo.Position) (geo.Box, error) {
	return reduceSlice(c.pool, ps, c.threshold, c.position)
}

func (c *computation) rings(rs [][]geo.Position) (geo.Box, error) {
	return reduceSlice(c.pool, rs, c.threshold, func(r *[]geo.Position) (geo.Box, error) {
		return c.ring(*r)
	})
}

// geometry dispatches on the closed variant set. The nesting is finite
// and strictly decreases toward single positions, so every case
// terminates. An unknown tag can only come from a hand-built tree.
func (c *computation) geometry(g *geojson.Geometry) (geo.Box, error) {
	if g == nil {
		return geo.Empty(), nil
	}
	switch g.Type {
	case geojson.TypePoint:
		return c.position(&g.Point)
	case geojson.TypeMultiPoint:
		return c.ring(g.MultiPoint)
	case geojson.TypeLineString:
		return c.ring(g.LineString)
	case geojson.TypeMultiLineString:
		return c.rings(g.MultiLineString)
	case geojson.TypePolygon:
		return c.rings(g.Polygon)
	case geojson.TypeMultiPolygon:
		return reduceSlice(c.pool, g.MultiPolygon, c.threshold, func(poly *[][]geo.Position) (geo.Box, error) {
			return c.rings(*poly)
		})
	case geojson.TypeGeometryCollection:
		return reduceSlice(c.pool, g.Geometries, c.threshold, func(sub *geojson.Geometry) (geo.Box, error) {
			return c.geometry(sub)
		})
	}
	return geo.Empty(), errors.Errorf("unrecognized geometry type: %s", g.Type)
}

func (c *computation) feature(f *geojson.Feature) (geo.Box, error) {
	if f == nil || f.Geometry == nil {
		return geo.Empty(), nil
	}
	return c.geometry(f.Geometry)
}

func (c *computation) collection(fc *geojson.FeatureCollection) (geo.Box, error) {
	if fc == nil {
		return geo.Empty(), nil
	}
	return reduceSlice(c.pool, fc.Features, c.threshold, func(f *geojson.Feature) (geo.Box, error) {
		return c.feature(f)
	})
}
