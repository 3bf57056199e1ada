// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geojson encodes and decodes shape geometries as GeoJSON geometry
// objects (RFC 7946).
package geojson

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geomconv"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// DefaultSRID is the SRID of decoded GeoJSON, whose coordinates are WGS84
// longitudes and latitudes.
const DefaultSRID geopb.SRID = 4326

// DefaultMaxDecimalDigits is the default number of decimal digits written
// for each coordinate.
const DefaultMaxDecimalDigits = 9

type options struct {
	maxDecimalDigits int
	bbox             bool
	crs              string
}

// Option configures Marshal.
type Option func(*options)

// WithMaxDecimalDigits limits each coordinate to n decimal digits.
func WithMaxDecimalDigits(n int) Option {
	return func(o *options) { o.maxDecimalDigits = n }
}

// WithBBox adds a bbox member to non-empty geometries.
func WithBBox() Option {
	return func(o *options) { o.bbox = true }
}

// WithCRS adds a named crs member, such as "EPSG:4326". The member is
// deprecated by RFC 7946 but still read by many consumers.
func WithCRS(name string) Option {
	return func(o *options) { o.crs = name }
}

// Marshal returns the GeoJSON geometry object of g. Only the kinds GeoJSON
// defines can be encoded; others fail with shape.ErrUnsupported.
func Marshal(g shape.Geometry, opts ...Option) ([]byte, error) {
	o := options{maxDecimalDigits: DefaultMaxDecimalDigits}
	for _, opt := range opts {
		opt(&o)
	}
	t, err := geomconv.ToGeomT(g)
	if err != nil {
		return nil, errors.Wrap(err, "encoding GeoJSON")
	}
	encodeOpts := []geojson.EncodeGeometryOption{
		geojson.EncodeGeometryWithMaxDecimalDigits(o.maxDecimalDigits),
	}
	// Do not encode empty bounding boxes.
	if o.bbox && !g.IsEmpty() {
		encodeOpts = append(encodeOpts, geojson.EncodeGeometryWithBBox())
	}
	if o.crs != "" {
		encodeOpts = append(encodeOpts, geojson.EncodeGeometryWithCRS(&geojson.CRS{
			Type:       "name",
			Properties: map[string]interface{}{"name": o.crs},
		}))
	}
	return geojson.Marshal(t, encodeOpts...)
}

// Unmarshal decodes a GeoJSON geometry object, attaching DefaultSRID.
func Unmarshal(data []byte) (shape.Geometry, error) {
	return UnmarshalWithSRID(data, DefaultSRID)
}

// UnmarshalWithSRID decodes a GeoJSON geometry object, attaching srid.
func UnmarshalWithSRID(data []byte, srid geopb.SRID) (shape.Geometry, error) {
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "decoding GeoJSON")
	}
	if t == nil {
		return nil, errors.New("decoding GeoJSON: null geometry")
	}
	g, err := geomconv.FromGeomT(t)
	if err != nil {
		return nil, errors.Wrap(err, "decoding GeoJSON")
	}
	return g.WithSRID(srid), nil
}
