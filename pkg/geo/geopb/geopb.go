// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geopb contains the scalar types shared by the geometry model and
// its codecs: spatial reference identifiers, geometry type codes, the named
// byte and string types of each interchange format, and bounding boxes.
package geopb

import "github.com/cockroachdb/redact"

// SRID is a Spatial Reference System Identifier.
type SRID int32

// DefaultGeographySRID is the SRID implied by formats that are always WGS84,
// such as GeoJSON.
const DefaultGeographySRID SRID = 4326

// WKT is the Well Known Text form of a spatial object.
type WKT string

// EWKT is the Extended Well Known Text form of a spatial object.
type EWKT string

// WKB is the Well Known Bytes form of a spatial object.
type WKB []byte

// EWKB is the Extended Well Known Bytes form of a spatial object.
type EWKB []byte

// ShapeType is the type of a geometry. The numeric values are the geometry
// type codes used by WKB and EWKB headers.
type ShapeType uint32

// Shape types and their WKB codes. 13 and 14 (Curve, Surface) are abstract
// and never appear on the wire.
const (
	ShapeType_Unset              ShapeType = 0
	ShapeType_Point              ShapeType = 1
	ShapeType_LineString         ShapeType = 2
	ShapeType_Polygon            ShapeType = 3
	ShapeType_MultiPoint         ShapeType = 4
	ShapeType_MultiLineString    ShapeType = 5
	ShapeType_MultiPolygon       ShapeType = 6
	ShapeType_GeometryCollection ShapeType = 7
	ShapeType_CircularString     ShapeType = 8
	ShapeType_CompoundCurve      ShapeType = 9
	ShapeType_CurvePolygon       ShapeType = 10
	ShapeType_MultiCurve         ShapeType = 11
	ShapeType_MultiSurface       ShapeType = 12
	ShapeType_PolyhedralSurface  ShapeType = 15
	ShapeType_TIN                ShapeType = 16
	ShapeType_Triangle           ShapeType = 17
)

var shapeTypeKeywords = map[ShapeType]string{
	ShapeType_Point:              "POINT",
	ShapeType_LineString:         "LINESTRING",
	ShapeType_Polygon:            "POLYGON",
	ShapeType_MultiPoint:         "MULTIPOINT",
	ShapeType_MultiLineString:    "MULTILINESTRING",
	ShapeType_MultiPolygon:       "MULTIPOLYGON",
	ShapeType_GeometryCollection: "GEOMETRYCOLLECTION",
	ShapeType_CircularString:     "CIRCULARSTRING",
	ShapeType_CompoundCurve:      "COMPOUNDCURVE",
	ShapeType_CurvePolygon:       "CURVEPOLYGON",
	ShapeType_MultiCurve:         "MULTICURVE",
	ShapeType_MultiSurface:       "MULTISURFACE",
	ShapeType_PolyhedralSurface:  "POLYHEDRALSURFACE",
	ShapeType_TIN:                "TIN",
	ShapeType_Triangle:           "TRIANGLE",
}

var shapeTypeNames = map[ShapeType]string{
	ShapeType_Point:              "Point",
	ShapeType_LineString:         "LineString",
	ShapeType_Polygon:            "Polygon",
	ShapeType_MultiPoint:         "MultiPoint",
	ShapeType_MultiLineString:    "MultiLineString",
	ShapeType_MultiPolygon:       "MultiPolygon",
	ShapeType_GeometryCollection: "GeometryCollection",
	ShapeType_CircularString:     "CircularString",
	ShapeType_CompoundCurve:      "CompoundCurve",
	ShapeType_CurvePolygon:       "CurvePolygon",
	ShapeType_MultiCurve:         "MultiCurve",
	ShapeType_MultiSurface:       "MultiSurface",
	ShapeType_PolyhedralSurface:  "PolyhedralSurface",
	ShapeType_TIN:                "TIN",
	ShapeType_Triangle:           "Triangle",
}

var keywordShapeTypes = func() map[string]ShapeType {
	m := make(map[string]ShapeType, len(shapeTypeKeywords))
	for t, kw := range shapeTypeKeywords {
		m[kw] = t
	}
	return m
}()

// String implements the fmt.Stringer interface.
func (t ShapeType) String() string {
	if s, ok := shapeTypeNames[t]; ok {
		return s
	}
	return "Unset"
}

// SafeValue implements the redact.SafeValue interface.
func (ShapeType) SafeValue() {}

var _ redact.SafeValue = ShapeType(0)

// Valid returns whether t is a concrete geometry type.
func (t ShapeType) Valid() bool {
	_, ok := shapeTypeKeywords[t]
	return ok
}

// Keyword returns the upper-case WKT keyword for the shape type.
func (t ShapeType) Keyword() string {
	return shapeTypeKeywords[t]
}

// ShapeTypeFromKeyword returns the shape type named by an upper-case WKT
// keyword.
func ShapeTypeFromKeyword(kw string) (ShapeType, bool) {
	t, ok := keywordShapeTypes[kw]
	return t, ok
}
