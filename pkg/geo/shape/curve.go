// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import "github.com/cockroachdb/geocodec/pkg/geo/geopb"

// pointSequence is the representation shared by LineString and
// CircularString.
type pointSequence struct {
	base
	points []Point
}

// NumPoints returns the number of points.
func (s pointSequence) NumPoints() int { return len(s.points) }

// PointN returns the i-th point, zero indexed.
func (s pointSequence) PointN(i int) Point { return s.points[i] }

// Points returns a copy of the points.
func (s pointSequence) Points() []Point { return append([]Point(nil), s.points...) }

// IsEmpty implements the Geometry interface.
func (s pointSequence) IsEmpty() bool { return len(s.points) == 0 }

// StartPoint implements the Curve interface.
func (s pointSequence) StartPoint() Point {
	if len(s.points) == 0 {
		return NewEmptyPoint(s.cs)
	}
	return s.points[0]
}

// EndPoint implements the Curve interface.
func (s pointSequence) EndPoint() Point {
	if len(s.points) == 0 {
		return NewEmptyPoint(s.cs)
	}
	return s.points[len(s.points)-1]
}

// IsClosed implements the Curve interface.
func (s pointSequence) IsClosed() bool {
	return len(s.points) > 0 && s.points[0].Equals(s.points[len(s.points)-1])
}

func (s pointSequence) withSRID(srid geopb.SRID) pointSequence {
	points := make([]Point, len(s.points))
	for i, p := range s.points {
		points[i] = p.WithSRID(srid).(Point)
	}
	return pointSequence{base: base{cs: s.cs.WithSRID(srid)}, points: points}
}

func (pointSequence) curve() {}

// LineString is a curve made of straight segments between consecutive
// points. Closure is only required when it is used as a polygon ring.
type LineString struct {
	pointSequence
}

var _ Curve = LineString{}

// NewLineString returns a LineString through the given points.
func NewLineString(cs CoordinateSystem, points ...Point) (LineString, error) {
	if err := checkPoints(geopb.ShapeType_LineString, cs, points); err != nil {
		return LineString{}, err
	}
	return LineString{pointSequence{base: base{cs: cs}, points: append([]Point(nil), points...)}}, nil
}

// ShapeType implements the Geometry interface.
func (LineString) ShapeType() geopb.ShapeType { return geopb.ShapeType_LineString }

// WithSRID implements the Geometry interface.
func (ls LineString) WithSRID(srid geopb.SRID) Geometry {
	return LineString{ls.pointSequence.withSRID(srid)}
}

// CircularString is a curve made of circular arcs. Each arc is defined by
// three consecutive points (start, interior, end) and consecutive arcs share
// their boundary point, so a non-empty CircularString has an odd number of
// points, at least 3.
type CircularString struct {
	pointSequence
}

var _ Curve = CircularString{}

// NewCircularString returns a CircularString through the given points.
func NewCircularString(cs CoordinateSystem, points ...Point) (CircularString, error) {
	if n := len(points); n != 0 && (n < 3 || n%2 == 0) {
		return CircularString{}, structureErrorf(geopb.ShapeType_CircularString,
			"a non-empty CircularString must have an odd number of points, at least 3, got %d", n)
	}
	if err := checkPoints(geopb.ShapeType_CircularString, cs, points); err != nil {
		return CircularString{}, err
	}
	return CircularString{pointSequence{base: base{cs: cs}, points: append([]Point(nil), points...)}}, nil
}

// ShapeType implements the Geometry interface.
func (CircularString) ShapeType() geopb.ShapeType { return geopb.ShapeType_CircularString }

// WithSRID implements the Geometry interface.
func (c CircularString) WithSRID(srid geopb.SRID) Geometry {
	return CircularString{c.pointSequence.withSRID(srid)}
}

// CompoundCurve is a continuous sequence of LineStrings and CircularStrings:
// every member starts where the previous one ends.
type CompoundCurve struct {
	base
	curves []Curve
}

var _ Curve = CompoundCurve{}

// NewCompoundCurve returns a CompoundCurve made of the given members, which
// must be non-empty LineStrings or CircularStrings.
func NewCompoundCurve(cs CoordinateSystem, curves ...Curve) (CompoundCurve, error) {
	const t = geopb.ShapeType_CompoundCurve
	for i, c := range curves {
		if err := checkMember(t, cs, i, c); err != nil {
			return CompoundCurve{}, err
		}
		switch c.(type) {
		case LineString, CircularString:
		default:
			return CompoundCurve{}, structureErrorf(t, "member %d is a %s, expected LineString or CircularString",
				i, c.ShapeType())
		}
		if c.IsEmpty() {
			return CompoundCurve{}, structureErrorf(t, "member %d is empty", i)
		}
		if i > 0 {
			end, start := curves[i-1].EndPoint(), c.StartPoint()
			if !end.Equals(start) {
				return CompoundCurve{}, structureErrorf(t,
					"member %d starts at (%s) but member %d ends at (%s)", i, start, i-1, end)
			}
		}
	}
	return CompoundCurve{base: base{cs: cs}, curves: append([]Curve(nil), curves...)}, nil
}

// ShapeType implements the Geometry interface.
func (CompoundCurve) ShapeType() geopb.ShapeType { return geopb.ShapeType_CompoundCurve }

// IsEmpty implements the Geometry interface.
func (c CompoundCurve) IsEmpty() bool { return len(c.curves) == 0 }

// WithSRID implements the Geometry interface.
func (c CompoundCurve) WithSRID(srid geopb.SRID) Geometry {
	curves := make([]Curve, len(c.curves))
	for i, member := range c.curves {
		curves[i] = member.WithSRID(srid).(Curve)
	}
	return CompoundCurve{base: base{cs: c.cs.WithSRID(srid)}, curves: curves}
}

// NumCurves returns the number of members.
func (c CompoundCurve) NumCurves() int { return len(c.curves) }

// CurveN returns the i-th member, zero indexed. It is a LineString or a
// CircularString.
func (c CompoundCurve) CurveN(i int) Curve { return c.curves[i] }

// Curves returns a copy of the members.
func (c CompoundCurve) Curves() []Curve { return append([]Curve(nil), c.curves...) }

// StartPoint implements the Curve interface.
func (c CompoundCurve) StartPoint() Point {
	if len(c.curves) == 0 {
		return NewEmptyPoint(c.cs)
	}
	return c.curves[0].StartPoint()
}

// EndPoint implements the Curve interface.
func (c CompoundCurve) EndPoint() Point {
	if len(c.curves) == 0 {
		return NewEmptyPoint(c.cs)
	}
	return c.curves[len(c.curves)-1].EndPoint()
}

// IsClosed implements the Curve interface.
func (c CompoundCurve) IsClosed() bool {
	return len(c.curves) > 0 && c.StartPoint().Equals(c.EndPoint())
}

// NumPoints implements the Curve interface. Points shared by consecutive
// members are counted once.
func (c CompoundCurve) NumPoints() int {
	n := 0
	for i, member := range c.curves {
		n += member.NumPoints()
		if i > 0 {
			n--
		}
	}
	return n
}

func (CompoundCurve) curve() {}
