// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkb

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
)

// ErrEmptyPoint is returned when writing an empty point without
// EmptyPointAsNaN.
var ErrEmptyPoint = errors.Mark(errors.New("empty points have no WKB representation"), shape.ErrUnsupported)

// emptyPointOrdinate is the quiet NaN PostGIS writes for the ordinates of
// an empty point.
var emptyPointOrdinate = math.Float64frombits(0x7FF8000000000000)

// Writer writes geometries as ISO WKB, encoding the dimensions as
// type + 1000*dimension. The zero value writes big endian (XDR).
type Writer struct {
	ByteOrder ByteOrder
	// EmptyPointAsNaN writes empty points as points with all ordinates NaN,
	// as PostGIS does. Otherwise writing an empty point fails.
	EmptyPointAsNaN bool
}

// Write returns the WKB of g.
func (w Writer) Write(g shape.Geometry) ([]byte, error) {
	return write(g, w.ByteOrder, w.EmptyPointAsNaN, false /* extended */)
}

// EWKBWriter writes geometries as EWKB. The SRID is written once, on the
// outermost geometry, and only when it is not 0.
type EWKBWriter struct {
	ByteOrder ByteOrder
	// EmptyPointAsNaN writes empty points as points with all ordinates NaN.
	// Otherwise writing an empty point fails.
	EmptyPointAsNaN bool
}

// Write returns the EWKB of g.
func (w EWKBWriter) Write(g shape.Geometry) ([]byte, error) {
	return write(g, w.ByteOrder, w.EmptyPointAsNaN, true /* extended */)
}

func write(g shape.Geometry, bo ByteOrder, emptyPointAsNaN, extended bool) ([]byte, error) {
	buf, err := newWriteBuffer(bo)
	if err != nil {
		return nil, err
	}
	w := writer{buf: buf, emptyPointAsNaN: emptyPointAsNaN, extended: extended}
	if err := w.writeGeometry(g, true /* outer */); err != nil {
		return nil, err
	}
	return buf.buf, nil
}

type writer struct {
	buf             *writeBuffer
	emptyPointAsNaN bool
	extended        bool
}

// encodeHeader returns the type word of g.
func (w *writer) encodeHeader(g shape.Geometry, outer bool) uint32 {
	v := uint32(g.ShapeType())
	cs := g.CoordinateSystem()
	if !w.extended {
		switch {
		case cs.HasZ() && cs.HasM():
			v += 3 * isoDimensionStep
		case cs.HasZ():
			v += isoDimensionStep
		case cs.HasM():
			v += 2 * isoDimensionStep
		}
		return v
	}
	if cs.HasZ() {
		v |= ewkbZFlag
	}
	if cs.HasM() {
		v |= ewkbMFlag
	}
	if outer && g.SRID() != 0 {
		v |= ewkbSRIDFlag
	}
	return v
}

func (w *writer) writeGeometry(g shape.Geometry, outer bool) error {
	w.buf.writeByteOrder()
	h := w.encodeHeader(g, outer)
	w.buf.writeUint32(h)
	if h&ewkbSRIDFlag != 0 && w.extended {
		w.buf.writeUint32(uint32(int32(g.SRID())))
	}

	switch g := g.(type) {
	case shape.Point:
		return w.writePoint(g)
	case shape.LineString:
		return w.writePoints(g.Points())
	case shape.CircularString:
		return w.writePoints(g.Points())
	case shape.Polygon:
		return w.writeRings(g.Rings())
	case shape.Triangle:
		return w.writeRings(g.Rings())
	case shape.CompoundCurve:
		return writeMembers(w, g.Curves())
	case shape.CurvePolygon:
		return writeMembers(w, g.Rings())
	case shape.MultiPoint:
		return writeMembers(w, g.Geometries())
	case shape.MultiLineString:
		return writeMembers(w, g.Geometries())
	case shape.MultiCurve:
		return writeMembers(w, g.Geometries())
	case shape.MultiPolygon:
		return writeMembers(w, g.Geometries())
	case shape.MultiSurface:
		return writeMembers(w, g.Geometries())
	case shape.PolyhedralSurface:
		return writeMembers(w, g.Geometries())
	case shape.TIN:
		return writeMembers(w, g.Geometries())
	case shape.GeometryCollection:
		return writeMembers(w, g.Geometries())
	default:
		return errors.AssertionFailedf("unknown geometry type %T", g)
	}
}

func (w *writer) writePoint(p shape.Point) error {
	if p.IsEmpty() {
		if !w.emptyPointAsNaN {
			return ErrEmptyPoint
		}
		for i := 0; i < p.CoordinateSystem().CoordinateDimension(); i++ {
			w.buf.writeDouble(emptyPointOrdinate)
		}
		return nil
	}
	for _, f := range p.Ordinates() {
		w.buf.writeDouble(f)
	}
	return nil
}

// writePoints writes a point count followed by the ordinates of the points.
func (w *writer) writePoints(points []shape.Point) error {
	w.buf.writeCount(len(points))
	for _, p := range points {
		if err := w.writePoint(p); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeRings(rings []shape.LineString) error {
	w.buf.writeCount(len(rings))
	for _, r := range rings {
		if err := w.writePoints(r.Points()); err != nil {
			return err
		}
	}
	return nil
}

// writeMembers writes a member count followed by the complete encoding of
// every member.
func writeMembers[T shape.Geometry](w *writer, members []T) error {
	w.buf.writeCount(len(members))
	for _, m := range members {
		if err := w.writeGeometry(m, false /* outer */); err != nil {
			return err
		}
	}
	return nil
}

// Marshal returns the ISO WKB of g in byte order bo.
func Marshal(g shape.Geometry, bo ByteOrder) ([]byte, error) {
	return Writer{ByteOrder: bo}.Write(g)
}

// Unmarshal decodes WKB or EWKB data.
func Unmarshal(b []byte) (shape.Geometry, error) {
	return Reader{}.Read(b, 0)
}

// MarshalEWKB returns the EWKB of g in byte order bo, writing empty points
// as NaN points.
func MarshalEWKB(g shape.Geometry, bo ByteOrder) ([]byte, error) {
	return EWKBWriter{ByteOrder: bo, EmptyPointAsNaN: true}.Write(g)
}

// UnmarshalEWKB decodes EWKB data.
func UnmarshalEWKB(b []byte) (shape.Geometry, error) {
	return EWKBReader{}.Read(b)
}
