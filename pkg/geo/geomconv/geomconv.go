// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geomconv converts between shape geometries and the geom.T values of
// github.com/twpayne/go-geom, so that go-geom's encoders and algorithms can
// be used on them.
package geomconv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/twpayne/go-geom"
)

const targetName = "go-geom"

func layoutOf(cs shape.CoordinateSystem) geom.Layout {
	switch {
	case cs.HasZ() && cs.HasM():
		return geom.XYZM
	case cs.HasZ():
		return geom.XYZ
	case cs.HasM():
		return geom.XYM
	default:
		return geom.XY
	}
}

func coordinateSystemOf(l geom.Layout, srid geopb.SRID) (shape.CoordinateSystem, error) {
	switch l {
	case geom.NoLayout, geom.XY:
		return shape.XY(srid), nil
	case geom.XYZ:
		return shape.XYZ(srid), nil
	case geom.XYM:
		return shape.XYM(srid), nil
	case geom.XYZM:
		return shape.XYZM(srid), nil
	default:
		return shape.CoordinateSystem{}, errors.Newf("unsupported layout %s", l)
	}
}

// ToGeomT converts g to the equivalent go-geom geometry. The SRID is set on
// the outermost geometry only. Curves, triangles and polyhedral surfaces
// have no go-geom equivalent and fail with shape.ErrUnsupported.
func ToGeomT(g shape.Geometry) (geom.T, error) {
	t, err := toGeomT(g)
	if err != nil {
		return nil, err
	}
	srid := int(g.SRID())
	switch t := t.(type) {
	case *geom.Point:
		return t.SetSRID(srid), nil
	case *geom.LineString:
		return t.SetSRID(srid), nil
	case *geom.Polygon:
		return t.SetSRID(srid), nil
	case *geom.MultiPoint:
		return t.SetSRID(srid), nil
	case *geom.MultiLineString:
		return t.SetSRID(srid), nil
	case *geom.MultiPolygon:
		return t.SetSRID(srid), nil
	case *geom.GeometryCollection:
		return t.SetSRID(srid), nil
	default:
		return nil, errors.AssertionFailedf("unexpected go-geom type %T", t)
	}
}

func flatCoords(points []shape.Point) []float64 {
	var ret []float64
	for _, p := range points {
		ret = append(ret, p.Ordinates()...)
	}
	return ret
}

func toPoint(p shape.Point) *geom.Point {
	if p.IsEmpty() {
		return geom.NewPointEmpty(layoutOf(p.CoordinateSystem()))
	}
	return geom.NewPointFlat(layoutOf(p.CoordinateSystem()), p.Ordinates())
}

func toLineString(ls shape.LineString) *geom.LineString {
	return geom.NewLineStringFlat(layoutOf(ls.CoordinateSystem()), flatCoords(ls.Points()))
}

func toPolygon(p shape.Polygon) *geom.Polygon {
	var flat []float64
	var ends []int
	for _, r := range p.Rings() {
		flat = append(flat, flatCoords(r.Points())...)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(layoutOf(p.CoordinateSystem()), flat, ends)
}

func toGeomT(g shape.Geometry) (geom.T, error) {
	layout := layoutOf(g.CoordinateSystem())
	switch g := g.(type) {
	case shape.Point:
		return toPoint(g), nil
	case shape.LineString:
		return toLineString(g), nil
	case shape.Polygon:
		return toPolygon(g), nil
	case shape.MultiPoint:
		ret := geom.NewMultiPoint(layout)
		for _, p := range g.Geometries() {
			if err := ret.Push(toPoint(p)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case shape.MultiLineString:
		ret := geom.NewMultiLineString(layout)
		for _, ls := range g.Geometries() {
			if err := ret.Push(toLineString(ls)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case shape.MultiPolygon:
		ret := geom.NewMultiPolygon(layout)
		for _, p := range g.Geometries() {
			if err := ret.Push(toPolygon(p)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case shape.GeometryCollection:
		ret := geom.NewGeometryCollection()
		if err := ret.SetLayout(layout); err != nil {
			return nil, err
		}
		for _, member := range g.Geometries() {
			t, err := toGeomT(member)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(t); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case shape.CircularString, shape.CompoundCurve, shape.CurvePolygon, shape.MultiCurve,
		shape.MultiSurface, shape.PolyhedralSurface, shape.TIN, shape.Triangle:
		return nil, shape.NewUnsupportedError(g.ShapeType(), targetName)
	default:
		return nil, errors.AssertionFailedf("unknown geometry type %T", g)
	}
}

// FromGeomT converts a go-geom geometry to a shape geometry. The SRID of t
// is applied to the whole tree. A geometry without a layout is XY, except
// for a collection, which go-geom gives the layout of its members.
func FromGeomT(t geom.T) (shape.Geometry, error) {
	cs, err := coordinateSystemOf(t.Layout(), geopb.SRID(t.SRID()))
	if err != nil {
		return nil, err
	}
	switch t := t.(type) {
	case *geom.Point:
		return fromPoint(cs, t)
	case *geom.LineString:
		return fromLineString(cs, t.FlatCoords(), t.Stride())
	case *geom.Polygon:
		return fromPolygon(cs, t)
	case *geom.MultiPoint:
		points := make([]shape.Point, t.NumPoints())
		for i := range points {
			if points[i], err = fromPoint(cs, t.Point(i)); err != nil {
				return nil, err
			}
		}
		return shape.NewMultiPoint(cs, points...)
	case *geom.MultiLineString:
		lines := make([]shape.LineString, t.NumLineStrings())
		for i := range lines {
			ls := t.LineString(i)
			if lines[i], err = fromLineString(cs, ls.FlatCoords(), ls.Stride()); err != nil {
				return nil, err
			}
		}
		return shape.NewMultiLineString(cs, lines...)
	case *geom.MultiPolygon:
		polygons := make([]shape.Polygon, t.NumPolygons())
		for i := range polygons {
			if polygons[i], err = fromPolygon(cs, t.Polygon(i)); err != nil {
				return nil, err
			}
		}
		return shape.NewMultiPolygon(cs, polygons...)
	case *geom.GeometryCollection:
		geoms := make([]shape.Geometry, t.NumGeoms())
		for i := range geoms {
			g, err := FromGeomT(t.Geom(i))
			if err != nil {
				return nil, err
			}
			geoms[i] = g.WithSRID(cs.SRID())
		}
		return shape.NewGeometryCollection(cs, geoms...)
	default:
		return nil, errors.Newf("unsupported go-geom type %T", t)
	}
}

func fromPoint(cs shape.CoordinateSystem, p *geom.Point) (shape.Point, error) {
	if p.Empty() {
		return shape.NewEmptyPoint(cs), nil
	}
	return shape.NewPoint(cs, p.FlatCoords()...)
}

func fromPoints(cs shape.CoordinateSystem, flat []float64, stride int) ([]shape.Point, error) {
	if stride == 0 {
		return nil, nil
	}
	points := make([]shape.Point, len(flat)/stride)
	for i := range points {
		var err error
		if points[i], err = shape.NewPoint(cs, flat[i*stride:(i+1)*stride]...); err != nil {
			return nil, err
		}
	}
	return points, nil
}

func fromLineString(cs shape.CoordinateSystem, flat []float64, stride int) (shape.LineString, error) {
	points, err := fromPoints(cs, flat, stride)
	if err != nil {
		return shape.LineString{}, err
	}
	return shape.NewLineString(cs, points...)
}

func fromPolygon(cs shape.CoordinateSystem, p *geom.Polygon) (shape.Polygon, error) {
	rings := make([]shape.LineString, p.NumLinearRings())
	for i := range rings {
		lr := p.LinearRing(i)
		var err error
		if rings[i], err = fromLineString(cs, lr.FlatCoords(), lr.Stride()); err != nil {
			return shape.Polygon{}, err
		}
	}
	return shape.NewPolygon(cs, rings...)
}
