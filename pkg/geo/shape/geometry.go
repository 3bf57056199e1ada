// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package shape contains the immutable geometry model: points, curves,
// surfaces and their collections, following the OGC Simple Features model
// plus the SQL/MM curve and polyhedral extensions.
//
// Every geometry is a value type carrying a CoordinateSystem. Geometries are
// built bottom-up by the New* constructors, which enforce the structural
// invariants of each kind (arc point counts, curve continuity, ring closure
// and consistent dimensionality across members). Nothing in this package
// mutates a geometry once built; accessors return copies.
package shape

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
)

// Geometry is implemented by every geometry kind of this package. The set of
// implementations is closed.
type Geometry interface {
	// ShapeType returns the kind of the geometry.
	ShapeType() geopb.ShapeType
	// CoordinateSystem returns the coordinate system of the geometry.
	CoordinateSystem() CoordinateSystem
	// SRID returns the spatial reference identifier.
	SRID() geopb.SRID
	// IsEmpty returns whether the geometry holds no coordinates.
	IsEmpty() bool
	// Is3D returns whether points carry a Z ordinate.
	Is3D() bool
	// IsMeasured returns whether points carry an M ordinate.
	IsMeasured() bool
	// WithSRID returns a copy of the geometry tree with srid applied to every
	// node.
	WithSRID(srid geopb.SRID) Geometry

	geometry()
}

// Curve is a one dimensional geometry: LineString, CircularString or
// CompoundCurve.
type Curve interface {
	Geometry
	// StartPoint returns the first point, or an empty point if the curve is
	// empty.
	StartPoint() Point
	// EndPoint returns the last point, or an empty point if the curve is
	// empty.
	EndPoint() Point
	// IsClosed returns whether the curve is non-empty and its start and end
	// points are equal.
	IsClosed() bool
	// NumPoints returns the number of distinct control points.
	NumPoints() int

	curve()
}

// Surface is a two dimensional geometry: Polygon, CurvePolygon or Triangle.
type Surface interface {
	Geometry
	// NumRings returns the number of rings, exterior ring included.
	NumRings() int

	surface()
}

// base carries the coordinate system shared by every geometry kind.
type base struct {
	cs CoordinateSystem
}

func (b base) CoordinateSystem() CoordinateSystem { return b.cs }
func (b base) SRID() geopb.SRID                   { return b.cs.srid }
func (b base) Is3D() bool                         { return b.cs.hasZ }
func (b base) IsMeasured() bool                   { return b.cs.hasM }
func (base) geometry()                            {}

func checkMember(parent geopb.ShapeType, cs CoordinateSystem, i int, member Geometry) error {
	if member == nil {
		return structureErrorf(parent, "member %d is nil", i)
	}
	if !member.CoordinateSystem().SameDimensions(cs) {
		return structureErrorf(parent, "member %d has layout %s, expected %s",
			i, member.CoordinateSystem(), cs)
	}
	return nil
}

// Parts returns the immediate members of g: the points of a LineString or
// CircularString, the curves of a CompoundCurve, the rings of a surface, or
// the elements of a collection. A Point has no parts.
func Parts(g Geometry) []Geometry {
	switch g := g.(type) {
	case Point:
		return nil
	case LineString:
		return toGeometries(g.points)
	case CircularString:
		return toGeometries(g.points)
	case CompoundCurve:
		return toGeometries(g.curves)
	case Polygon:
		return toGeometries(g.rings)
	case CurvePolygon:
		return toGeometries(g.rings)
	case Triangle:
		return toGeometries(g.rings)
	case MultiPoint:
		return toGeometries(g.geoms)
	case MultiLineString:
		return toGeometries(g.geoms)
	case MultiCurve:
		return toGeometries(g.geoms)
	case MultiPolygon:
		return toGeometries(g.geoms)
	case MultiSurface:
		return toGeometries(g.geoms)
	case GeometryCollection:
		return toGeometries(g.geoms)
	case PolyhedralSurface:
		return toGeometries(g.geoms)
	case TIN:
		return toGeometries(g.geoms)
	default:
		panic(errors.AssertionFailedf("unknown geometry type %T", g))
	}
}

func toGeometries[T Geometry](geoms []T) []Geometry {
	ret := make([]Geometry, len(geoms))
	for i, g := range geoms {
		ret[i] = g
	}
	return ret
}

// Equal returns whether a and b are the same kind of geometry with the same
// coordinate systems (SRIDs included) and exactly equal ordinates, member by
// member.
func Equal(a, b Geometry) bool {
	if a.ShapeType() != b.ShapeType() || a.CoordinateSystem() != b.CoordinateSystem() {
		return false
	}
	if pa, ok := a.(Point); ok {
		return pa.Equals(b.(Point))
	}
	partsA, partsB := Parts(a), Parts(b)
	if len(partsA) != len(partsB) {
		return false
	}
	for i := range partsA {
		if !Equal(partsA[i], partsB[i]) {
			return false
		}
	}
	return true
}

// Walk calls fn for every non-empty control point of g in order. Points
// shared between consecutive members of a CompoundCurve are visited once per
// member.
func Walk(g Geometry, fn func(Point)) {
	if p, ok := g.(Point); ok {
		if !p.IsEmpty() {
			fn(p)
		}
		return
	}
	for _, part := range Parts(g) {
		Walk(part, fn)
	}
}

// NumPoints returns the number of points visited by Walk.
func NumPoints(g Geometry) int {
	n := 0
	Walk(g, func(Point) { n++ })
	return n
}

// BoundingBox returns the XY extent of the control points of g, or nil if g
// is empty. Arcs may bulge beyond the extent of their control points.
func BoundingBox(g Geometry) *geopb.BoundingBox {
	var bbox *geopb.BoundingBox
	Walk(g, func(p Point) {
		if bbox == nil {
			bbox = geopb.NewBoundingBox()
		}
		bbox.Update(p.X(), p.Y())
	})
	return bbox
}
