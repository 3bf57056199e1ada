// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
)

// Point is a single position. The zero value is the empty XY point.
type Point struct {
	base
	// ords holds x, y, z, m in fixed slots; z and m are zero when absent.
	ords     [4]float64
	nonEmpty bool
}

var _ Geometry = Point{}

// NewPoint returns a point with the given ordinates, ordered x, y, then z
// and m when present in cs. No ordinates make the empty point.
func NewPoint(cs CoordinateSystem, ords ...float64) (Point, error) {
	if len(ords) == 0 {
		return NewEmptyPoint(cs), nil
	}
	if len(ords) != cs.CoordinateDimension() {
		return Point{}, structureErrorf(geopb.ShapeType_Point,
			"layout %s requires %d ordinates, got %d", cs, cs.CoordinateDimension(), len(ords))
	}
	p := Point{base: base{cs: cs}, nonEmpty: true}
	p.ords[0], p.ords[1] = ords[0], ords[1]
	i := 2
	if cs.hasZ {
		p.ords[2] = ords[i]
		i++
	}
	if cs.hasM {
		p.ords[3] = ords[i]
	}
	return p, nil
}

// NewEmptyPoint returns the empty point of the given coordinate system.
func NewEmptyPoint(cs CoordinateSystem) Point {
	return Point{base: base{cs: cs}}
}

// ShapeType implements the Geometry interface.
func (Point) ShapeType() geopb.ShapeType { return geopb.ShapeType_Point }

// IsEmpty implements the Geometry interface.
func (p Point) IsEmpty() bool { return !p.nonEmpty }

// WithSRID implements the Geometry interface.
func (p Point) WithSRID(srid geopb.SRID) Geometry {
	p.cs = p.cs.WithSRID(srid)
	return p
}

// X returns the X ordinate, or 0 for the empty point.
func (p Point) X() float64 { return p.ords[0] }

// Y returns the Y ordinate, or 0 for the empty point.
func (p Point) Y() float64 { return p.ords[1] }

// Z returns the Z ordinate and whether the point has one.
func (p Point) Z() (float64, bool) { return p.ords[2], p.nonEmpty && p.cs.hasZ }

// M returns the M ordinate and whether the point has one.
func (p Point) M() (float64, bool) { return p.ords[3], p.nonEmpty && p.cs.hasM }

// Ordinates returns the ordinates of the point in x, y, z, m order, omitting
// those absent from the coordinate system. The empty point has none.
func (p Point) Ordinates() []float64 {
	if !p.nonEmpty {
		return nil
	}
	ret := make([]float64, 0, 4)
	ret = append(ret, p.ords[0], p.ords[1])
	if p.cs.hasZ {
		ret = append(ret, p.ords[2])
	}
	if p.cs.hasM {
		ret = append(ret, p.ords[3])
	}
	return ret
}

// Equals returns whether both points are empty, or both are non-empty with
// the same dimensions and exactly equal ordinates. SRIDs are ignored.
func (p Point) Equals(o Point) bool {
	if p.nonEmpty != o.nonEmpty || !p.cs.SameDimensions(o.cs) {
		return false
	}
	return p.ords == o.ords
}

// String returns the ordinates separated by spaces, or EMPTY.
func (p Point) String() string {
	if !p.nonEmpty {
		return "EMPTY"
	}
	var b strings.Builder
	for i, o := range p.Ordinates() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(o, 'g', -1, 64))
	}
	return b.String()
}

// checkPoints verifies that every point of a curve is non-empty and shares
// the curve's dimensions.
func checkPoints(t geopb.ShapeType, cs CoordinateSystem, points []Point) error {
	for i, p := range points {
		if p.IsEmpty() {
			return structureErrorf(t, "point %d is empty", i)
		}
		if err := checkMember(t, cs, i, p); err != nil {
			return err
		}
	}
	return nil
}
