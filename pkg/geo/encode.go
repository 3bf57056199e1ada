// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geojson"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/wkb"
	"github.com/cockroachdb/geocodec/pkg/geo/wkt"
	"github.com/pierrre/geohash"
)

// DefaultGeoJSONDecimalDigits is the default number of digits coordinates in GeoJSON.
const DefaultGeoJSONDecimalDigits = geojson.DefaultMaxDecimalDigits

// AsText returns the WKT of g.
func (g Geometry) AsText() (geopb.WKT, error) {
	s, err := wkt.Writer{}.Write(g.shape)
	return geopb.WKT(s), err
}

// AsEWKT returns the EWKT of g, which always carries the SRID.
func (g Geometry) AsEWKT() (geopb.EWKT, error) {
	s, err := wkt.EWKTWriter{}.Write(g.shape)
	return geopb.EWKT(s), err
}

// AsBinary returns the ISO WKB of g in the default byte order.
func (g Geometry) AsBinary() (geopb.WKB, error) {
	return g.AsWKB(wkb.DefaultByteOrder)
}

// AsWKB returns the ISO WKB of g in byte order bo. Empty points are written
// with NaN ordinates.
func (g Geometry) AsWKB(bo wkb.ByteOrder) (geopb.WKB, error) {
	b, err := wkb.Writer{ByteOrder: bo, EmptyPointAsNaN: true}.Write(g.shape)
	return geopb.WKB(b), err
}

// AsEWKB returns the EWKB of g in the default byte order.
func (g Geometry) AsEWKB() (geopb.EWKB, error) {
	b, err := wkb.MarshalEWKB(g.shape, wkb.DefaultByteOrder)
	return geopb.EWKB(b), err
}

// AsHexEWKB returns the EWKB of g as upper case hex, the text form PostGIS
// outputs for geometries.
func (g Geometry) AsHexEWKB() (string, error) {
	b, err := g.AsEWKB()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// GeoJSONFlag maps to the ST_AsGeoJSON flags for PostGIS.
type GeoJSONFlag int

// These should be kept with ST_AsGeoJSON in PostGIS.
// 0: means no option
// 1: GeoJSON BBOX
// 2: GeoJSON Short CRS (e.g EPSG:4326)
// 4: GeoJSON Long CRS (e.g urn:ogc:def:crs:EPSG::4326)
// 8: GeoJSON Short CRS if not EPSG:4326 (default)
const (
	GeoJSONFlagIncludeBBox GeoJSONFlag = 1 << (iota)
	GeoJSONFlagShortCRS
	GeoJSONFlagLongCRS
	GeoJSONFlagShortCRSIfNot4326

	GeoJSONFlagZero = 0
)

// crsName returns the name of the EPSG coordinate reference system srid.
func crsName(srid geopb.SRID, long bool) string {
	if long {
		return fmt.Sprintf("urn:ogc:def:crs:EPSG::%d", srid)
	}
	return fmt.Sprintf("EPSG:%d", srid)
}

// AsGeoJSON returns the GeoJSON of g with at most maxDecimalDigits decimal
// digits per coordinate.
func (g Geometry) AsGeoJSON(maxDecimalDigits int, flag GeoJSONFlag) ([]byte, error) {
	opts := []geojson.Option{geojson.WithMaxDecimalDigits(maxDecimalDigits)}
	if flag&GeoJSONFlagIncludeBBox != 0 {
		opts = append(opts, geojson.WithBBox())
	}
	// Take CRS flag in order of precedence.
	if srid := g.SRID(); srid != 0 {
		if flag&GeoJSONFlagLongCRS != 0 {
			opts = append(opts, geojson.WithCRS(crsName(srid, true /* long */)))
		} else if flag&GeoJSONFlagShortCRS != 0 {
			opts = append(opts, geojson.WithCRS(crsName(srid, false /* long */)))
		} else if flag&GeoJSONFlagShortCRSIfNot4326 != 0 && srid != geopb.DefaultGeographySRID {
			opts = append(opts, geojson.WithCRS(crsName(srid, false /* long */)))
		}
	}
	return geojson.Marshal(g.shape, opts...)
}

// GeoHashAutoPrecision means to calculate the precision of GeoHash
// based on input, up to 32 characters.
const GeoHashAutoPrecision = 0

// GeoHashMaxPrecision is the maximum precision for GeoHashes.
// 20 is picked as doubles have 51 decimals of precision, and each base32 position
// can contain 5 bits of data. As we have two points, we use floor((2 * 51) / 5) = 20.
const GeoHashMaxPrecision = 20

// GeoHash returns the GeoHash of the center of the bounding box of g, whose
// coordinates must be longitudes and latitudes. An empty geometry has an
// empty GeoHash.
func (g Geometry) GeoHash(p int) (string, error) {
	bbox := g.BoundingBox()
	if bbox == nil {
		return "", nil
	}
	if bbox.MinX < -180 || bbox.MaxX > 180 || bbox.MinY < -90 || bbox.MaxY > 90 {
		return "", errors.Newf(
			"object has bounds greater than the bounds of lat/lng, got (%f %f, %f %f)",
			bbox.MinX, bbox.MinY,
			bbox.MaxX, bbox.MaxY,
		)
	}

	// Get precision using the bounding box if required.
	if p <= GeoHashAutoPrecision {
		p = getPrecisionForBBox(bbox)
	}

	// Support up to 20, which is the same as PostGIS.
	if p > GeoHashMaxPrecision {
		p = GeoHashMaxPrecision
	}

	bbCenterLng := bbox.MinX + (bbox.MaxX-bbox.MinX)/2.0
	bbCenterLat := bbox.MinY + (bbox.MaxY-bbox.MinY)/2.0

	return geohash.Encode(bbCenterLat, bbCenterLng, p), nil
}

// getPrecisionForBBox halves the world bounding box until it no longer
// contains the given bounding box on one side, counting the bits of
// precision gained. The result is the precision of the smallest GeoHash
// cell that still covers the whole box.
func getPrecisionForBBox(bbox *geopb.BoundingBox) int {
	bitPrecision := 0

	// This is a point, for points we use the full bitPrecision.
	if bbox.MinX == bbox.MaxX && bbox.MinY == bbox.MaxY {
		return GeoHashMaxPrecision
	}

	lonMin, lonMax := -180.0, 180.0
	latMin, latMax := -90.0, 90.0

	for {
		lonWidth := lonMax - lonMin
		latWidth := latMax - latMin
		latMaxDelta, lonMaxDelta, latMinDelta, lonMinDelta := 0.0, 0.0, 0.0, 0.0

		if bbox.MinX > lonMin+lonWidth/2.0 {
			lonMinDelta = lonWidth / 2.0
		} else if bbox.MaxX < lonMax-lonWidth/2.0 {
			lonMaxDelta = lonWidth / -2.0
		}
		if bbox.MinY > latMin+latWidth/2.0 {
			latMinDelta = latWidth / 2.0
		} else if bbox.MaxY < latMax-latWidth/2.0 {
			latMaxDelta = latWidth / -2.0
		}

		// Every split adds a bit; stop at the first dimension that cannot
		// be split.
		precisionDelta := 0
		if lonMinDelta != 0.0 || lonMaxDelta != 0.0 {
			lonMin += lonMinDelta
			lonMax += lonMaxDelta
			precisionDelta++
		} else {
			break
		}
		if latMinDelta != 0.0 || latMaxDelta != 0.0 {
			latMin += latMinDelta
			latMax += latMaxDelta
			precisionDelta++
		} else {
			break
		}
		bitPrecision += precisionDelta
	}
	// Each character can represent 5 bits of bitPrecision.
	return bitPrecision / 5
}
