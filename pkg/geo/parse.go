// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geojson"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/cockroachdb/geocodec/pkg/geo/wkb"
	"github.com/cockroachdb/geocodec/pkg/geo/wkt"
)

// ParseGeometry parses a Geometry from text in any of the forms PostGIS
// accepts when casting a string to GEOMETRY: hex EWKB, raw EWKB bytes,
// GeoJSON or EWKT.
func ParseGeometry(str string) (Geometry, error) {
	return parseAmbiguous(str, 0)
}

// ParseGeometryWithSRID is ParseGeometry, attaching srid when the input
// carries no SRID of its own.
func ParseGeometryWithSRID(str string, srid geopb.SRID) (Geometry, error) {
	return parseAmbiguous(str, srid)
}

// MustParseGeometry behaves like ParseGeometry but panics on error.
func MustParseGeometry(str string) Geometry {
	g, err := ParseGeometry(str)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGeometryFromEWKB decodes EWKB.
func NewGeometryFromEWKB(b geopb.EWKB) (Geometry, error) {
	g, err := wkb.UnmarshalEWKB(b)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometry(g)
}

// NewGeometryFromWKB decodes WKB, attaching srid.
func NewGeometryFromWKB(b geopb.WKB, srid geopb.SRID) (Geometry, error) {
	g, err := wkb.Reader{}.Read(b, srid)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometry(g)
}

// NewGeometryFromEWKT parses EWKT, attaching srid when the text has no
// SRID prefix.
func NewGeometryFromEWKT(s geopb.EWKT, srid geopb.SRID) (Geometry, error) {
	g, err := wkt.EWKTReader{}.Read(string(s))
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometry(defaultSRID(g, srid))
}

// NewGeometryFromGeoJSON decodes a GeoJSON geometry object. Without an
// explicit srid the geometry has the WGS84 SRID GeoJSON implies.
func NewGeometryFromGeoJSON(b []byte, srid geopb.SRID) (Geometry, error) {
	if srid == 0 {
		srid = geojson.DefaultSRID
	}
	g, err := geojson.UnmarshalWithSRID(b, srid)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometry(g)
}

// defaultSRID attaches srid to g unless g has an SRID of its own. An
// explicit SRID=0 prefix does not override srid, as in PostGIS.
func defaultSRID(g shape.Geometry, srid geopb.SRID) shape.Geometry {
	if srid != 0 && g.SRID() == 0 {
		return g.WithSRID(srid)
	}
	return g
}

// parseAmbiguous parses str using its first character to tell the formats
// apart.
func parseAmbiguous(str string, srid geopb.SRID) (Geometry, error) {
	if len(str) == 0 {
		return Geometry{}, errors.New("parsing empty string to geometry")
	}
	switch str[0] {
	case '0':
		b, err := hex.DecodeString(str)
		if err != nil {
			return Geometry{}, errors.Wrap(err, "decoding hex EWKB")
		}
		return fromEWKB(b, srid)
	case 0x00, 0x01:
		return fromEWKB([]byte(str), srid)
	case '{':
		return NewGeometryFromGeoJSON([]byte(str), srid)
	default:
		return NewGeometryFromEWKT(geopb.EWKT(str), srid)
	}
}

func fromEWKB(b []byte, srid geopb.SRID) (Geometry, error) {
	g, err := wkb.UnmarshalEWKB(b)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometry(defaultSRID(g, srid))
}
