// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geo contains the Geometry type, the boundary through which spatial
// values enter and leave the codecs.
//
// Subpackages implement the pieces behind it:
//   - geo/shape is the immutable geometry model.
//   - geo/wkt and geo/wkb are the text and binary codecs, including the
//     PostGIS EWKT and EWKB extensions.
//   - geo/geojson encodes the Simple Features kinds as GeoJSON.
//   - geo/geomconv converts to and from github.com/twpayne/go-geom.
package geo

import (
	"database/sql"
	"database/sql/driver"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
)

// Geometry is a planar spatial object. The zero value is not valid; use one
// of the constructors.
type Geometry struct {
	shape shape.Geometry
}

var _ sql.Scanner = (*Geometry)(nil)
var _ driver.Valuer = Geometry{}

// MakeGeometry wraps g.
func MakeGeometry(g shape.Geometry) (Geometry, error) {
	if g == nil {
		return Geometry{}, errors.AssertionFailedf("nil geometry")
	}
	return Geometry{shape: g}, nil
}

// Shape returns the underlying geometry tree.
func (g Geometry) Shape() shape.Geometry { return g.shape }

// ShapeType returns the kind of g.
func (g Geometry) ShapeType() geopb.ShapeType { return g.shape.ShapeType() }

// SRID returns the spatial reference identifier of g.
func (g Geometry) SRID() geopb.SRID { return g.shape.SRID() }

// IsEmpty returns whether g has no points.
func (g Geometry) IsEmpty() bool { return g.shape.IsEmpty() }

// Is3D returns whether g has Z ordinates.
func (g Geometry) Is3D() bool { return g.shape.Is3D() }

// IsMeasured returns whether g has M ordinates.
func (g Geometry) IsMeasured() bool { return g.shape.IsMeasured() }

// NumPoints returns the number of non-empty points of g.
func (g Geometry) NumPoints() int { return shape.NumPoints(g.shape) }

// BoundingBox returns the XY extent of g, or nil if g is empty.
func (g Geometry) BoundingBox() *geopb.BoundingBox { return shape.BoundingBox(g.shape) }

// CloneWithSRID returns g with its SRID replaced.
func (g Geometry) CloneWithSRID(srid geopb.SRID) Geometry {
	return Geometry{shape: g.shape.WithSRID(srid)}
}

// Equal returns whether g and o have the same structure, dimensions,
// ordinates and SRID.
func (g Geometry) Equal(o Geometry) bool {
	return g.SRID() == o.SRID() && shape.Equal(g.shape, o.shape)
}

// String returns the EWKT of g.
func (g Geometry) String() string {
	s, err := g.AsEWKT()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(s)
}

// Scan implements sql.Scanner. It accepts EWKB, or any text ParseGeometry
// accepts, as returned by drivers in binary or text mode.
func (g *Geometry) Scan(src interface{}) error {
	var err error
	switch src := src.(type) {
	case []byte:
		*g, err = parseAmbiguous(string(src), 0)
	case string:
		*g, err = parseAmbiguous(src, 0)
	case nil:
		return errors.New("cannot scan NULL into a Geometry")
	default:
		return errors.Newf("cannot scan %T into a Geometry", src)
	}
	return err
}

// Value implements driver.Valuer, returning the EWKB of g.
func (g Geometry) Value() (driver.Value, error) {
	b, err := g.AsEWKB()
	if err != nil {
		return nil, err
	}
	return []byte(b), nil
}
