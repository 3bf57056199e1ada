// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkt

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
)

// Writer writes geometries as Well Known Text. The zero value writes the
// compact form, e.g. POINT Z(1 2 3) and MULTIPOINT(1 2,3 4).
type Writer struct {
	// PrettyPrint puts a space before the opening parenthesis of a geometry
	// and after every comma.
	PrettyPrint bool
}

// Write returns the WKT of g.
func (w Writer) Write(g shape.Geometry) (string, error) {
	wr := writer{pretty: w.PrettyPrint}
	if err := wr.writeGeometry(g); err != nil {
		return "", err
	}
	return string(wr.buf), nil
}

// EWKTWriter writes geometries as Extended Well Known Text, which is WKT
// prefixed with SRID=<srid>;.
type EWKTWriter struct {
	// PrettyPrint puts a space after the SRID prefix, before the opening
	// parenthesis of a geometry and after every comma.
	PrettyPrint bool
}

// Write returns the EWKT of g. The SRID prefix is always written, even for
// SRID 0.
func (w EWKTWriter) Write(g shape.Geometry) (string, error) {
	wr := writer{pretty: w.PrettyPrint}
	wr.buf = append(wr.buf, sridPrefix...)
	wr.buf = strconv.AppendInt(wr.buf, int64(g.SRID()), 10)
	wr.buf = append(wr.buf, ';')
	if wr.pretty {
		wr.buf = append(wr.buf, ' ')
	}
	if err := wr.writeGeometry(g); err != nil {
		return "", err
	}
	return string(wr.buf), nil
}

// writer accumulates the output of one Write call.
type writer struct {
	buf    []byte
	pretty bool
}

// ErrNonFinite is returned when writing an infinite or NaN ordinate, which
// WKT cannot represent.
var ErrNonFinite = errors.Mark(errors.New("non-finite ordinates cannot be represented as WKT"), shape.ErrUnsupported)

func (w *writer) comma() {
	w.buf = append(w.buf, ',')
	if w.pretty {
		w.buf = append(w.buf, ' ')
	}
}

// hasNoParts reports whether g is written as EMPTY. A collection of empty
// members is not: its members are written.
func hasNoParts(g shape.Geometry) bool {
	if p, ok := g.(shape.Point); ok {
		return p.IsEmpty()
	}
	return len(shape.Parts(g)) == 0
}

// writeGeometry writes the keyword, dimension marker and body of g.
func (w *writer) writeGeometry(g shape.Geometry) error {
	w.buf = append(w.buf, g.ShapeType().Keyword()...)
	cs := g.CoordinateSystem()
	switch {
	case cs.HasZ() && cs.HasM():
		w.buf = append(w.buf, " ZM"...)
	case cs.HasZ():
		w.buf = append(w.buf, " Z"...)
	case cs.HasM():
		w.buf = append(w.buf, " M"...)
	}
	if hasNoParts(g) {
		w.buf = append(w.buf, " EMPTY"...)
		return nil
	}
	if w.pretty {
		w.buf = append(w.buf, ' ')
	}
	return w.writeBody(g)
}

func (w *writer) writeBody(g shape.Geometry) error {
	switch g := g.(type) {
	case shape.Point:
		w.buf = append(w.buf, '(')
		if err := w.writePoint(g); err != nil {
			return err
		}
		w.buf = append(w.buf, ')')
		return nil
	case shape.LineString:
		return w.writePoints(g.Points())
	case shape.CircularString:
		return w.writePoints(g.Points())
	case shape.CompoundCurve:
		return writeList(w, g.Curves(), w.writeCurveMember)
	case shape.Polygon:
		return writeList(w, g.Rings(), w.writeBareLineString)
	case shape.Triangle:
		return writeList(w, g.Rings(), w.writeBareLineString)
	case shape.CurvePolygon:
		return writeList(w, g.Rings(), w.writeCurveMember)
	case shape.MultiPoint:
		return writeList(w, g.Geometries(), func(p shape.Point) error {
			if p.IsEmpty() {
				w.buf = append(w.buf, emptyKeyword...)
				return nil
			}
			return w.writePoint(p)
		})
	case shape.MultiLineString:
		return writeList(w, g.Geometries(), w.writeBareLineString)
	case shape.MultiCurve:
		return writeList(w, g.Geometries(), w.writeCurveMember)
	case shape.MultiPolygon:
		return writeList(w, g.Geometries(), w.writeBarePolygon)
	case shape.PolyhedralSurface:
		return writeList(w, g.Geometries(), w.writeBarePolygon)
	case shape.MultiSurface:
		return writeList(w, g.Geometries(), func(s shape.Surface) error {
			if p, ok := s.(shape.Polygon); ok {
				return w.writeBarePolygon(p)
			}
			return w.writeGeometry(s)
		})
	case shape.TIN:
		return writeList(w, g.Geometries(), func(t shape.Triangle) error {
			if t.IsEmpty() {
				w.buf = append(w.buf, emptyKeyword...)
				return nil
			}
			return writeList(w, t.Rings(), w.writeBareLineString)
		})
	case shape.GeometryCollection:
		return writeList(w, g.Geometries(), w.writeGeometry)
	default:
		return errors.AssertionFailedf("unknown geometry type %T", g)
	}
}

// writeList writes "(" member {"," member} ")".
func writeList[T any](w *writer, members []T, writeMember func(T) error) error {
	w.buf = append(w.buf, '(')
	for i, m := range members {
		if i > 0 {
			w.comma()
		}
		if err := writeMember(m); err != nil {
			return err
		}
	}
	w.buf = append(w.buf, ')')
	return nil
}

// writePoint writes the ordinates of a non-empty point separated by spaces.
func (w *writer) writePoint(p shape.Point) error {
	for i, f := range p.Ordinates() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNonFinite
		}
		if i > 0 {
			w.buf = append(w.buf, ' ')
		}
		w.buf = strconv.AppendFloat(w.buf, f, 'f', -1, 64)
	}
	return nil
}

func (w *writer) writePoints(points []shape.Point) error {
	return writeList(w, points, w.writePoint)
}

// writeBareLineString writes a LineString without its keyword, or EMPTY.
func (w *writer) writeBareLineString(ls shape.LineString) error {
	if ls.IsEmpty() {
		w.buf = append(w.buf, emptyKeyword...)
		return nil
	}
	return w.writePoints(ls.Points())
}

// writeBarePolygon writes a Polygon without its keyword, or EMPTY.
func (w *writer) writeBarePolygon(p shape.Polygon) error {
	if p.IsEmpty() {
		w.buf = append(w.buf, emptyKeyword...)
		return nil
	}
	return writeList(w, p.Rings(), w.writeBareLineString)
}

// writeCurveMember writes a LineString member bare and any other curve with
// its keyword.
func (w *writer) writeCurveMember(c shape.Curve) error {
	if ls, ok := c.(shape.LineString); ok {
		return w.writeBareLineString(ls)
	}
	return w.writeGeometry(c)
}
