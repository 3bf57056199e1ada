// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import "github.com/cockroachdb/geocodec/pkg/geo/geopb"

// ringSet is the representation shared by the surface kinds. The first ring
// is the exterior ring; the others are interior rings.
type ringSet[T Curve] struct {
	base
	rings []T
}

func newRingSet[T Curve](t geopb.ShapeType, cs CoordinateSystem, rs []T) (ringSet[T], error) {
	for i, r := range rs {
		if err := checkMember(t, cs, i, r); err != nil {
			return ringSet[T]{}, err
		}
		if r.IsEmpty() {
			return ringSet[T]{}, structureErrorf(t, "ring %d is empty", i)
		}
		if !r.IsClosed() {
			return ringSet[T]{}, structureErrorf(t, "ring %d is not closed: starts at (%s) and ends at (%s)",
				i, r.StartPoint(), r.EndPoint())
		}
	}
	return ringSet[T]{base: base{cs: cs}, rings: append([]T(nil), rs...)}, nil
}

// IsEmpty implements the Geometry interface.
func (s ringSet[T]) IsEmpty() bool { return len(s.rings) == 0 }

// NumRings implements the Surface interface.
func (s ringSet[T]) NumRings() int { return len(s.rings) }

// RingN returns the i-th ring, zero indexed, the exterior ring first.
func (s ringSet[T]) RingN(i int) T { return s.rings[i] }

// Rings returns a copy of the rings.
func (s ringSet[T]) Rings() []T { return append([]T(nil), s.rings...) }

// ExteriorRing returns the exterior ring. It panics if the surface is empty.
func (s ringSet[T]) ExteriorRing() T { return s.rings[0] }

// NumInteriorRings returns the number of interior rings.
func (s ringSet[T]) NumInteriorRings() int {
	if len(s.rings) == 0 {
		return 0
	}
	return len(s.rings) - 1
}

// InteriorRingN returns the i-th interior ring, zero indexed.
func (s ringSet[T]) InteriorRingN(i int) T { return s.rings[i+1] }

func (s ringSet[T]) withSRID(srid geopb.SRID) ringSet[T] {
	rs := make([]T, len(s.rings))
	for i, r := range s.rings {
		rs[i] = r.WithSRID(srid).(T)
	}
	return ringSet[T]{base: base{cs: s.cs.WithSRID(srid)}, rings: rs}
}

func (ringSet[T]) surface() {}

// Polygon is a surface bounded by closed LineString rings.
type Polygon struct {
	ringSet[LineString]
}

var _ Surface = Polygon{}

// NewPolygon returns a Polygon with the given rings, exterior ring first.
// No rings make the empty polygon.
func NewPolygon(cs CoordinateSystem, rs ...LineString) (Polygon, error) {
	r, err := newRingSet(geopb.ShapeType_Polygon, cs, rs)
	if err != nil {
		return Polygon{}, err
	}
	return Polygon{r}, nil
}

// ShapeType implements the Geometry interface.
func (Polygon) ShapeType() geopb.ShapeType { return geopb.ShapeType_Polygon }

// WithSRID implements the Geometry interface.
func (p Polygon) WithSRID(srid geopb.SRID) Geometry { return Polygon{p.ringSet.withSRID(srid)} }

// CurvePolygon is a surface bounded by closed rings of any curve kind.
type CurvePolygon struct {
	ringSet[Curve]
}

var _ Surface = CurvePolygon{}

// NewCurvePolygon returns a CurvePolygon with the given rings, exterior ring
// first. No rings make the empty CurvePolygon.
func NewCurvePolygon(cs CoordinateSystem, rs ...Curve) (CurvePolygon, error) {
	r, err := newRingSet(geopb.ShapeType_CurvePolygon, cs, rs)
	if err != nil {
		return CurvePolygon{}, err
	}
	return CurvePolygon{r}, nil
}

// ShapeType implements the Geometry interface.
func (CurvePolygon) ShapeType() geopb.ShapeType { return geopb.ShapeType_CurvePolygon }

// WithSRID implements the Geometry interface.
func (p CurvePolygon) WithSRID(srid geopb.SRID) Geometry {
	return CurvePolygon{p.ringSet.withSRID(srid)}
}

// Triangle is a polygon with a single ring of three distinct vertices.
type Triangle struct {
	ringSet[LineString]
}

var _ Surface = Triangle{}

// NewTriangle returns a Triangle bounded by ring, which must hold exactly 4
// points, the last equal to the first. No ring makes the empty triangle.
func NewTriangle(cs CoordinateSystem, rs ...LineString) (Triangle, error) {
	const t = geopb.ShapeType_Triangle
	if len(rs) > 1 {
		return Triangle{}, structureErrorf(t, "a Triangle has exactly one ring, got %d", len(rs))
	}
	if len(rs) == 1 {
		if n := rs[0].NumPoints(); n != 4 {
			return Triangle{}, structureErrorf(t, "the ring of a Triangle must have 4 points, got %d", n)
		}
	}
	r, err := newRingSet(t, cs, rs)
	if err != nil {
		return Triangle{}, err
	}
	if len(rs) == 1 {
		a, b, c := rs[0].PointN(0), rs[0].PointN(1), rs[0].PointN(2)
		if a.Equals(b) || b.Equals(c) || a.Equals(c) {
			return Triangle{}, structureErrorf(t, "the vertices of a Triangle must be distinct")
		}
	}
	return Triangle{r}, nil
}

// ShapeType implements the Geometry interface.
func (Triangle) ShapeType() geopb.ShapeType { return geopb.ShapeType_Triangle }

// WithSRID implements the Geometry interface.
func (tr Triangle) WithSRID(srid geopb.SRID) Geometry { return Triangle{tr.ringSet.withSRID(srid)} }
