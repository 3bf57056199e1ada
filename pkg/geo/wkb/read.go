// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkb

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
)

const (
	ewkbZFlag    uint32 = 0x80000000
	ewkbMFlag    uint32 = 0x40000000
	ewkbSRIDFlag uint32 = 0x20000000
	ewkbFlags           = ewkbZFlag | ewkbMFlag | ewkbSRIDFlag
	ewkbTypeMask uint32 = 0xFFF

	isoDimensionStep uint32 = 1000
	isoHeaderLimit   uint32 = 4000
)

// Minimum encoded sizes, used to bound element counts by the remaining
// input.
const (
	minGeometrySize = 1 + 4 + 4
	minRingSize     = 4
)

// header is a decoded geometry type word.
type header struct {
	shapeType geopb.ShapeType
	hasZ      bool
	hasM      bool
	hasSRID   bool
}

// decodeHeader decodes both the ISO form, where the dimensions are encoded
// as type + 1000*dimension, and the EWKB form, where they are flag bits.
func decodeHeader(v uint32) (header, error) {
	var h header
	var t uint32
	if v < isoHeaderLimit {
		t = v % isoDimensionStep
		switch v / isoDimensionStep {
		case 0:
		case 1:
			h.hasZ = true
		case 2:
			h.hasM = true
		case 3:
			h.hasZ, h.hasM = true, true
		}
	} else {
		t = v & ewkbTypeMask
		if v&^(ewkbFlags|ewkbTypeMask) != 0 {
			return header{}, parseErrorf("unsupported WKB type %d", v)
		}
		h.hasZ = v&ewkbZFlag != 0
		h.hasM = v&ewkbMFlag != 0
		h.hasSRID = v&ewkbSRIDFlag != 0
	}
	h.shapeType = geopb.ShapeType(t)
	if !h.shapeType.Valid() {
		return header{}, parseErrorf("unsupported WKB type %d", v)
	}
	return h, nil
}

// Reader reads geometries from ISO WKB. It also accepts EWKB input, taking
// the SRID from the data when present.
type Reader struct {
	// AllowNestedCollections accepts GeometryCollection members inside a
	// GeometryCollection.
	AllowNestedCollections bool
}

// Read decodes b, attaching srid to geometries that carry no SRID of their
// own.
func (r Reader) Read(b []byte, srid geopb.SRID) (shape.Geometry, error) {
	rd := reader{buf: readBuffer{data: b}, allowNested: r.AllowNestedCollections}
	g, err := rd.readGeometry(srid)
	if err != nil {
		return nil, err
	}
	if rd.buf.remaining() != 0 {
		return nil, parseErrorf("unexpected data at end of stream")
	}
	return g, nil
}

// EWKBReader reads geometries from EWKB, the PostGIS extension of WKB
// carrying dimension and SRID flags in the type word. ISO headers are also
// accepted.
type EWKBReader struct {
	// AllowNestedCollections accepts GeometryCollection members inside a
	// GeometryCollection.
	AllowNestedCollections bool
}

// Read decodes b. A geometry without an SRID has SRID 0.
func (r EWKBReader) Read(b []byte) (shape.Geometry, error) {
	return Reader(r).Read(b, 0)
}

// reader holds the state of one decode.
type reader struct {
	buf         readBuffer
	allowNested bool
}

// readGeometry reads one geometry with its own byte order and header. The
// byte order of the enclosing geometry is restored on return.
func (r *reader) readGeometry(srid geopb.SRID) (shape.Geometry, error) {
	defer func(swap bool) { r.buf.swap = swap }(r.buf.swap)

	if err := r.buf.readByteOrder(); err != nil {
		return nil, err
	}
	v, err := r.buf.readUint32()
	if err != nil {
		return nil, err
	}
	h, err := decodeHeader(v)
	if err != nil {
		return nil, err
	}
	if h.hasSRID {
		s, err := r.buf.readUint32()
		if err != nil {
			return nil, err
		}
		srid = geopb.SRID(int32(s))
	}
	cs := shape.NewCoordinateSystem(h.hasZ, h.hasM, srid)

	switch h.shapeType {
	case geopb.ShapeType_Point:
		ords, err := r.buf.readDoubles(cs.CoordinateDimension())
		if err != nil {
			return nil, err
		}
		for _, f := range ords {
			if !math.IsNaN(f) {
				return shape.NewPoint(cs, ords...)
			}
		}
		return shape.NewEmptyPoint(cs), nil
	case geopb.ShapeType_LineString:
		points, err := r.readPoints(cs)
		if err != nil {
			return nil, err
		}
		return shape.NewLineString(cs, points...)
	case geopb.ShapeType_CircularString:
		points, err := r.readPoints(cs)
		if err != nil {
			return nil, err
		}
		return shape.NewCircularString(cs, points...)
	case geopb.ShapeType_Polygon:
		rings, err := r.readRings(cs)
		if err != nil {
			return nil, err
		}
		return shape.NewPolygon(cs, rings...)
	case geopb.ShapeType_Triangle:
		rings, err := r.readRings(cs)
		if err != nil {
			return nil, err
		}
		return shape.NewTriangle(cs, rings...)
	case geopb.ShapeType_CompoundCurve:
		curves, err := readMembers[shape.Curve](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewCompoundCurve(cs, curves...)
	case geopb.ShapeType_CurvePolygon:
		rings, err := readMembers[shape.Curve](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewCurvePolygon(cs, rings...)
	case geopb.ShapeType_MultiPoint:
		points, err := readMembers[shape.Point](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewMultiPoint(cs, points...)
	case geopb.ShapeType_MultiLineString:
		lines, err := readMembers[shape.LineString](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewMultiLineString(cs, lines...)
	case geopb.ShapeType_MultiCurve:
		curves, err := readMembers[shape.Curve](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewMultiCurve(cs, curves...)
	case geopb.ShapeType_MultiPolygon:
		polygons, err := readMembers[shape.Polygon](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewMultiPolygon(cs, polygons...)
	case geopb.ShapeType_MultiSurface:
		surfaces, err := readMembers[shape.Surface](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewMultiSurface(cs, surfaces...)
	case geopb.ShapeType_PolyhedralSurface:
		patches, err := readMembers[shape.Polygon](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewPolyhedralSurface(cs, patches...)
	case geopb.ShapeType_TIN:
		patches, err := readMembers[shape.Triangle](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewTIN(cs, patches...)
	case geopb.ShapeType_GeometryCollection:
		geoms, err := readMembers[shape.Geometry](r, h.shapeType, srid)
		if err != nil {
			return nil, err
		}
		return shape.NewGeometryCollection(cs, geoms...)
	default:
		return nil, errors.AssertionFailedf("unhandled shape type %s", h.shapeType)
	}
}

// readPoints reads a point count followed by the ordinates of that many
// points.
func (r *reader) readPoints(cs shape.CoordinateSystem) ([]shape.Point, error) {
	dim := cs.CoordinateDimension()
	n, err := r.buf.readCount(8 * dim)
	if err != nil {
		return nil, err
	}
	ords, err := r.buf.readDoubles(n * dim)
	if err != nil {
		return nil, err
	}
	points := make([]shape.Point, n)
	for i := range points {
		if points[i], err = shape.NewPoint(cs, ords[i*dim:(i+1)*dim]...); err != nil {
			return nil, err
		}
	}
	return points, nil
}

func (r *reader) readRings(cs shape.CoordinateSystem) ([]shape.LineString, error) {
	n, err := r.buf.readCount(minRingSize)
	if err != nil {
		return nil, err
	}
	rings := make([]shape.LineString, n)
	for i := range rings {
		points, err := r.readPoints(cs)
		if err != nil {
			return nil, err
		}
		if rings[i], err = shape.NewLineString(cs, points...); err != nil {
			return nil, err
		}
	}
	return rings, nil
}

// readMembers reads a member count followed by that many complete
// geometries, each of which must be a T.
func readMembers[T shape.Geometry](
	r *reader, parent geopb.ShapeType, srid geopb.SRID,
) ([]T, error) {
	n, err := r.buf.readCount(minGeometrySize)
	if err != nil {
		return nil, err
	}
	members := make([]T, n)
	for i := range members {
		g, err := r.readGeometry(srid)
		if err != nil {
			return nil, err
		}
		if g.ShapeType() == geopb.ShapeType_GeometryCollection &&
			parent == geopb.ShapeType_GeometryCollection && !r.allowNested {
			return nil, parseErrorf("nested GeometryCollection at member %d", i)
		}
		m, ok := g.(T)
		if !ok {
			return nil, parseErrorf("%s cannot contain a %s", parent, g.ShapeType())
		}
		members[i] = m
	}
	return members, nil
}
