// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkt

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
)

// Reader reads geometries from Well Known Text. The zero value is ready to
// use. Keywords are case insensitive.
type Reader struct {
	// AllowNestedCollections accepts GEOMETRYCOLLECTION members inside a
	// GEOMETRYCOLLECTION.
	AllowNestedCollections bool
}

// Read parses text as WKT, attaching srid to every node of the result.
func (r Reader) Read(text string, srid geopb.SRID) (shape.Geometry, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	return r.readTop(p, srid)
}

// EWKTReader reads geometries from Extended Well Known Text, the PostGIS
// dialect prefixing WKT with SRID=<srid>;.
type EWKTReader struct {
	// AllowNestedCollections accepts GEOMETRYCOLLECTION members inside a
	// GEOMETRYCOLLECTION.
	AllowNestedCollections bool
}

// Read parses text as EWKT. The SRID prefix is optional; without it the
// geometry has SRID 0.
func (r EWKTReader) Read(text string) (shape.Geometry, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	var srid geopb.SRID
	if t := p.peek(); t.kind == tokenSRID {
		srid = t.srid
		p.next()
	}
	return Reader(r).readTop(p, srid)
}

func (r Reader) readTop(p *parser, srid geopb.SRID) (shape.Geometry, error) {
	rd := reader{p: p, srid: srid, allowNested: r.AllowNestedCollections}
	g, err := rd.readGeometry(nil /* inherited */)
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.unexpected(p.peek(), "end of input")
	}
	return g, nil
}

// reader holds the state of one parse.
type reader struct {
	p           *parser
	srid        geopb.SRID
	allowNested bool
}

const emptyKeyword = "EMPTY"

// parseShapeType resolves a geometry type keyword, which may carry a glued
// dimension suffix as in POINTZ or LINESTRINGZM.
func parseShapeType(word string) (t geopb.ShapeType, hasZ, hasM, marked, ok bool) {
	if t, ok := geopb.ShapeTypeFromKeyword(word); ok {
		return t, false, false, false, true
	}
	for _, suffix := range []string{"ZM", "Z", "M"} {
		if base, found := strings.CutSuffix(word, suffix); found {
			if t, ok := geopb.ShapeTypeFromKeyword(base); ok {
				return t, strings.Contains(suffix, "Z"), strings.Contains(suffix, "M"), true, true
			}
		}
	}
	return 0, false, false, false, false
}

// readGeometry reads a keyworded geometry. Members of a composite geometry
// that carry no dimension marker take the coordinate system of their parent,
// passed as inherited.
func (r *reader) readGeometry(inherited *shape.CoordinateSystem) (shape.Geometry, error) {
	typeTok := r.p.peek()
	word, err := r.p.nextWord()
	if err != nil {
		return nil, err
	}
	t, hasZ, hasM, marked, ok := parseShapeType(word)
	if !ok {
		return nil, r.p.errorAt(typeTok, fmt.Sprintf("syntax error: unknown geometry type %q", word), "")
	}
	if !marked {
		if w, ok := r.p.peekWord(); ok {
			switch w {
			case "Z":
				hasZ, marked = true, true
			case "M":
				hasM, marked = true, true
			case "ZM":
				hasZ, hasM, marked = true, true, true
			}
			if marked {
				r.p.next()
			}
		}
	}

	cs := shape.NewCoordinateSystem(hasZ, hasM, r.srid)
	if !marked && inherited != nil {
		cs = *inherited
	}

	if w, ok := r.p.peekWord(); ok && w == emptyKeyword {
		r.p.next()
		return emptyGeometry(t, cs)
	}
	return r.readBody(t, cs)
}

// emptyGeometry returns the canonical empty value of a geometry type.
func emptyGeometry(t geopb.ShapeType, cs shape.CoordinateSystem) (shape.Geometry, error) {
	switch t {
	case geopb.ShapeType_Point:
		return shape.NewEmptyPoint(cs), nil
	case geopb.ShapeType_LineString:
		return shape.NewLineString(cs)
	case geopb.ShapeType_CircularString:
		return shape.NewCircularString(cs)
	case geopb.ShapeType_CompoundCurve:
		return shape.NewCompoundCurve(cs)
	case geopb.ShapeType_Polygon:
		return shape.NewPolygon(cs)
	case geopb.ShapeType_CurvePolygon:
		return shape.NewCurvePolygon(cs)
	case geopb.ShapeType_Triangle:
		return shape.NewTriangle(cs)
	case geopb.ShapeType_MultiPoint:
		return shape.NewMultiPoint(cs)
	case geopb.ShapeType_MultiLineString:
		return shape.NewMultiLineString(cs)
	case geopb.ShapeType_MultiCurve:
		return shape.NewMultiCurve(cs)
	case geopb.ShapeType_MultiPolygon:
		return shape.NewMultiPolygon(cs)
	case geopb.ShapeType_MultiSurface:
		return shape.NewMultiSurface(cs)
	case geopb.ShapeType_GeometryCollection:
		return shape.NewGeometryCollection(cs)
	case geopb.ShapeType_PolyhedralSurface:
		return shape.NewPolyhedralSurface(cs)
	case geopb.ShapeType_TIN:
		return shape.NewTIN(cs)
	default:
		return nil, errors.AssertionFailedf("unhandled shape type %s", t)
	}
}

func (r *reader) readBody(t geopb.ShapeType, cs shape.CoordinateSystem) (shape.Geometry, error) {
	switch t {
	case geopb.ShapeType_Point:
		return r.readPointText(cs)
	case geopb.ShapeType_LineString:
		return r.readLineStringText(cs)
	case geopb.ShapeType_CircularString:
		points, err := r.readPointList(cs)
		if err != nil {
			return nil, err
		}
		return shape.NewCircularString(cs, points...)
	case geopb.ShapeType_CompoundCurve:
		curves, err := readList(r, func() (shape.Curve, error) {
			return r.readCurveMember(cs, t)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewCompoundCurve(cs, curves...)
	case geopb.ShapeType_Polygon:
		return r.readPolygonText(cs)
	case geopb.ShapeType_CurvePolygon:
		rings, err := readList(r, func() (shape.Curve, error) {
			return r.readCurveMember(cs, t)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewCurvePolygon(cs, rings...)
	case geopb.ShapeType_Triangle:
		return r.readTriangleText(cs)
	case geopb.ShapeType_MultiPoint:
		points, err := readList(r, func() (shape.Point, error) {
			return r.readMultiPointMember(cs)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewMultiPoint(cs, points...)
	case geopb.ShapeType_MultiLineString:
		lines, err := readList(r, func() (shape.LineString, error) {
			if r.optionalEmpty() {
				return shape.NewLineString(cs)
			}
			return r.readLineStringText(cs)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewMultiLineString(cs, lines...)
	case geopb.ShapeType_MultiCurve:
		curves, err := readList(r, func() (shape.Curve, error) {
			return r.readCurveMember(cs, t)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewMultiCurve(cs, curves...)
	case geopb.ShapeType_MultiPolygon, geopb.ShapeType_PolyhedralSurface:
		polygons, err := readList(r, func() (shape.Polygon, error) {
			if r.optionalEmpty() {
				return shape.NewPolygon(cs)
			}
			return r.readPolygonText(cs)
		})
		if err != nil {
			return nil, err
		}
		if t == geopb.ShapeType_PolyhedralSurface {
			return shape.NewPolyhedralSurface(cs, polygons...)
		}
		return shape.NewMultiPolygon(cs, polygons...)
	case geopb.ShapeType_MultiSurface:
		surfaces, err := readList(r, func() (shape.Surface, error) {
			return r.readSurfaceMember(cs)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewMultiSurface(cs, surfaces...)
	case geopb.ShapeType_TIN:
		triangles, err := readList(r, func() (shape.Triangle, error) {
			if r.optionalEmpty() {
				return shape.NewTriangle(cs)
			}
			return r.readTriangleText(cs)
		})
		if err != nil {
			return nil, err
		}
		return shape.NewTIN(cs, triangles...)
	case geopb.ShapeType_GeometryCollection:
		geoms, err := readList(r, func() (shape.Geometry, error) {
			tok := r.p.peek()
			g, err := r.readGeometry(&cs)
			if err != nil {
				return nil, err
			}
			if g.ShapeType() == geopb.ShapeType_GeometryCollection && !r.allowNested {
				return nil, r.p.errorAt(tok, "syntax error: nested GEOMETRYCOLLECTION",
					"nested collections must be enabled explicitly")
			}
			return g, nil
		})
		if err != nil {
			return nil, err
		}
		return shape.NewGeometryCollection(cs, geoms...)
	default:
		return nil, errors.AssertionFailedf("unhandled shape type %s", t)
	}
}

// readList reads "(" member {"," member} ")".
func readList[T any](r *reader, readMember func() (T, error)) ([]T, error) {
	if err := r.p.matchOpener(); err != nil {
		return nil, err
	}
	var ret []T
	for {
		m, err := readMember()
		if err != nil {
			return nil, err
		}
		ret = append(ret, m)
		closed, err := r.p.nextCloserOrComma()
		if err != nil {
			return nil, err
		}
		if closed {
			return ret, nil
		}
	}
}

// optionalEmpty consumes an EMPTY keyword if one is next.
func (r *reader) optionalEmpty() bool {
	if w, ok := r.p.peekWord(); ok && w == emptyKeyword {
		r.p.next()
		return true
	}
	return false
}

// readPoint reads the ordinates of one point, without parentheses.
func (r *reader) readPoint(cs shape.CoordinateSystem) (shape.Point, error) {
	var ords [4]float64
	dim := cs.CoordinateDimension()
	for i := 0; i < dim; i++ {
		f, err := r.p.nextNumber()
		if err != nil {
			return shape.Point{}, err
		}
		ords[i] = f
	}
	return shape.NewPoint(cs, ords[:dim]...)
}

func (r *reader) readPointText(cs shape.CoordinateSystem) (shape.Point, error) {
	if err := r.p.matchOpener(); err != nil {
		return shape.Point{}, err
	}
	pt, err := r.readPoint(cs)
	if err != nil {
		return shape.Point{}, err
	}
	return pt, r.p.matchCloser()
}

func (r *reader) readPointList(cs shape.CoordinateSystem) ([]shape.Point, error) {
	return readList(r, func() (shape.Point, error) {
		return r.readPoint(cs)
	})
}

func (r *reader) readLineStringText(cs shape.CoordinateSystem) (shape.LineString, error) {
	points, err := r.readPointList(cs)
	if err != nil {
		return shape.LineString{}, err
	}
	return shape.NewLineString(cs, points...)
}

func (r *reader) readRings(cs shape.CoordinateSystem) ([]shape.LineString, error) {
	return readList(r, func() (shape.LineString, error) {
		return r.readLineStringText(cs)
	})
}

func (r *reader) readPolygonText(cs shape.CoordinateSystem) (shape.Polygon, error) {
	rings, err := r.readRings(cs)
	if err != nil {
		return shape.Polygon{}, err
	}
	return shape.NewPolygon(cs, rings...)
}

func (r *reader) readTriangleText(cs shape.CoordinateSystem) (shape.Triangle, error) {
	rings, err := r.readRings(cs)
	if err != nil {
		return shape.Triangle{}, err
	}
	return shape.NewTriangle(cs, rings...)
}

// readMultiPointMember reads a MultiPoint member given as "x y", "(x y)",
// EMPTY or a keyworded POINT.
func (r *reader) readMultiPointMember(cs shape.CoordinateSystem) (shape.Point, error) {
	if r.p.peekChar("(") {
		return r.readPointText(cs)
	}
	if w, ok := r.p.peekWord(); ok {
		if w == emptyKeyword {
			r.p.next()
			return shape.NewEmptyPoint(cs), nil
		}
		tok := r.p.peek()
		g, err := r.readGeometry(&cs)
		if err != nil {
			return shape.Point{}, err
		}
		pt, ok := g.(shape.Point)
		if !ok {
			return shape.Point{}, r.memberTypeError(tok, geopb.ShapeType_MultiPoint, g)
		}
		return pt, nil
	}
	return r.readPoint(cs)
}

// readCurveMember reads a member of a CompoundCurve, MultiCurve or the ring
// of a CurvePolygon: a bare "(...)" LineString, EMPTY for the empty
// LineString, or a keyworded curve.
func (r *reader) readCurveMember(
	cs shape.CoordinateSystem, parent geopb.ShapeType,
) (shape.Curve, error) {
	if r.p.peekChar("(") {
		return r.readLineStringText(cs)
	}
	if r.optionalEmpty() {
		return shape.NewLineString(cs)
	}
	tok := r.p.peek()
	g, err := r.readGeometry(&cs)
	if err != nil {
		return nil, err
	}
	c, ok := g.(shape.Curve)
	if !ok {
		return nil, r.memberTypeError(tok, parent, g)
	}
	return c, nil
}

// readSurfaceMember reads a member of a MultiSurface: a bare "((...))"
// Polygon, EMPTY for the empty Polygon, or a keyworded surface.
func (r *reader) readSurfaceMember(cs shape.CoordinateSystem) (shape.Surface, error) {
	if r.p.peekChar("(") {
		return r.readPolygonText(cs)
	}
	if r.optionalEmpty() {
		return shape.NewPolygon(cs)
	}
	tok := r.p.peek()
	g, err := r.readGeometry(&cs)
	if err != nil {
		return nil, err
	}
	s, ok := g.(shape.Surface)
	if !ok {
		return nil, r.memberTypeError(tok, geopb.ShapeType_MultiSurface, g)
	}
	return s, nil
}

func (r *reader) memberTypeError(tok token, parent geopb.ShapeType, g shape.Geometry) error {
	return r.p.errorAt(tok,
		fmt.Sprintf("syntax error: %s cannot contain a %s", parent.Keyword(), g.ShapeType().Keyword()), "")
}
