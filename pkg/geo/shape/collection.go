// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import "github.com/cockroachdb/geocodec/pkg/geo/geopb"

// collection is the representation shared by the collection kinds.
type collection[T Geometry] struct {
	base
	geoms []T
}

func newCollection[T Geometry](t geopb.ShapeType, cs CoordinateSystem, geoms []T) (collection[T], error) {
	for i, g := range geoms {
		if err := checkMember(t, cs, i, g); err != nil {
			return collection[T]{}, err
		}
	}
	return collection[T]{base: base{cs: cs}, geoms: append([]T(nil), geoms...)}, nil
}

// IsEmpty implements the Geometry interface. A collection is empty when it
// has no members or only empty members.
func (c collection[T]) IsEmpty() bool {
	for _, g := range c.geoms {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// NumGeometries returns the number of members.
func (c collection[T]) NumGeometries() int { return len(c.geoms) }

// GeometryN returns the i-th member, zero indexed.
func (c collection[T]) GeometryN(i int) T { return c.geoms[i] }

// Geometries returns a copy of the members.
func (c collection[T]) Geometries() []T { return append([]T(nil), c.geoms...) }

func (c collection[T]) withSRID(srid geopb.SRID) collection[T] {
	geoms := make([]T, len(c.geoms))
	for i, g := range c.geoms {
		geoms[i] = g.WithSRID(srid).(T)
	}
	return collection[T]{base: base{cs: c.cs.WithSRID(srid)}, geoms: geoms}
}

// MultiPoint is a collection of Points.
type MultiPoint struct {
	collection[Point]
}

// NewMultiPoint returns a MultiPoint.
func NewMultiPoint(cs CoordinateSystem, points ...Point) (MultiPoint, error) {
	c, err := newCollection(geopb.ShapeType_MultiPoint, cs, points)
	return MultiPoint{c}, err
}

// ShapeType implements the Geometry interface.
func (MultiPoint) ShapeType() geopb.ShapeType { return geopb.ShapeType_MultiPoint }

// WithSRID implements the Geometry interface.
func (m MultiPoint) WithSRID(srid geopb.SRID) Geometry {
	return MultiPoint{m.collection.withSRID(srid)}
}

// MultiLineString is a collection of LineStrings.
type MultiLineString struct {
	collection[LineString]
}

// NewMultiLineString returns a MultiLineString.
func NewMultiLineString(cs CoordinateSystem, lines ...LineString) (MultiLineString, error) {
	c, err := newCollection(geopb.ShapeType_MultiLineString, cs, lines)
	return MultiLineString{c}, err
}

// ShapeType implements the Geometry interface.
func (MultiLineString) ShapeType() geopb.ShapeType { return geopb.ShapeType_MultiLineString }

// WithSRID implements the Geometry interface.
func (m MultiLineString) WithSRID(srid geopb.SRID) Geometry {
	return MultiLineString{m.collection.withSRID(srid)}
}

// MultiCurve is a collection of curves of any kind.
type MultiCurve struct {
	collection[Curve]
}

// NewMultiCurve returns a MultiCurve.
func NewMultiCurve(cs CoordinateSystem, curves ...Curve) (MultiCurve, error) {
	c, err := newCollection(geopb.ShapeType_MultiCurve, cs, curves)
	return MultiCurve{c}, err
}

// ShapeType implements the Geometry interface.
func (MultiCurve) ShapeType() geopb.ShapeType { return geopb.ShapeType_MultiCurve }

// WithSRID implements the Geometry interface.
func (m MultiCurve) WithSRID(srid geopb.SRID) Geometry {
	return MultiCurve{m.collection.withSRID(srid)}
}

// MultiPolygon is a collection of Polygons.
type MultiPolygon struct {
	collection[Polygon]
}

// NewMultiPolygon returns a MultiPolygon.
func NewMultiPolygon(cs CoordinateSystem, polygons ...Polygon) (MultiPolygon, error) {
	c, err := newCollection(geopb.ShapeType_MultiPolygon, cs, polygons)
	return MultiPolygon{c}, err
}

// ShapeType implements the Geometry interface.
func (MultiPolygon) ShapeType() geopb.ShapeType { return geopb.ShapeType_MultiPolygon }

// WithSRID implements the Geometry interface.
func (m MultiPolygon) WithSRID(srid geopb.SRID) Geometry {
	return MultiPolygon{m.collection.withSRID(srid)}
}

// MultiSurface is a collection of surfaces of any kind.
type MultiSurface struct {
	collection[Surface]
}

// NewMultiSurface returns a MultiSurface.
func NewMultiSurface(cs CoordinateSystem, surfaces ...Surface) (MultiSurface, error) {
	c, err := newCollection(geopb.ShapeType_MultiSurface, cs, surfaces)
	return MultiSurface{c}, err
}

// ShapeType implements the Geometry interface.
func (MultiSurface) ShapeType() geopb.ShapeType { return geopb.ShapeType_MultiSurface }

// WithSRID implements the Geometry interface.
func (m MultiSurface) WithSRID(srid geopb.SRID) Geometry {
	return MultiSurface{m.collection.withSRID(srid)}
}

// GeometryCollection is a heterogeneous collection. It may contain other
// GeometryCollections; codecs only accept those when asked to.
type GeometryCollection struct {
	collection[Geometry]
}

// NewGeometryCollection returns a GeometryCollection.
func NewGeometryCollection(cs CoordinateSystem, geoms ...Geometry) (GeometryCollection, error) {
	c, err := newCollection(geopb.ShapeType_GeometryCollection, cs, geoms)
	return GeometryCollection{c}, err
}

// ShapeType implements the Geometry interface.
func (GeometryCollection) ShapeType() geopb.ShapeType { return geopb.ShapeType_GeometryCollection }

// WithSRID implements the Geometry interface.
func (m GeometryCollection) WithSRID(srid geopb.SRID) Geometry {
	return GeometryCollection{m.collection.withSRID(srid)}
}

// PolyhedralSurface is a collection of Polygon patches.
type PolyhedralSurface struct {
	collection[Polygon]
}

// NewPolyhedralSurface returns a PolyhedralSurface.
func NewPolyhedralSurface(cs CoordinateSystem, patches ...Polygon) (PolyhedralSurface, error) {
	c, err := newCollection(geopb.ShapeType_PolyhedralSurface, cs, patches)
	return PolyhedralSurface{c}, err
}

// ShapeType implements the Geometry interface.
func (PolyhedralSurface) ShapeType() geopb.ShapeType { return geopb.ShapeType_PolyhedralSurface }

// WithSRID implements the Geometry interface.
func (m PolyhedralSurface) WithSRID(srid geopb.SRID) Geometry {
	return PolyhedralSurface{m.collection.withSRID(srid)}
}

// TIN is a triangulated irregular network: a collection of Triangle
// patches.
type TIN struct {
	collection[Triangle]
}

// NewTIN returns a TIN.
func NewTIN(cs CoordinateSystem, patches ...Triangle) (TIN, error) {
	c, err := newCollection(geopb.ShapeType_TIN, cs, patches)
	return TIN{c}, err
}

// ShapeType implements the Geometry interface.
func (TIN) ShapeType() geopb.ShapeType { return geopb.ShapeType_TIN }

// WithSRID implements the Geometry interface.
func (m TIN) WithSRID(srid geopb.SRID) Geometry { return TIN{m.collection.withSRID(srid)} }

var (
	_ Geometry = MultiPoint{}
	_ Geometry = MultiLineString{}
	_ Geometry = MultiCurve{}
	_ Geometry = MultiPolygon{}
	_ Geometry = MultiSurface{}
	_ Geometry = GeometryCollection{}
	_ Geometry = PolyhedralSurface{}
	_ Geometry = TIN{}
)
