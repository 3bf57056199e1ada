// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/stretchr/testify/require"
)

func pt(t *testing.T, cs CoordinateSystem, ords ...float64) Point {
	p, err := NewPoint(cs, ords...)
	require.NoError(t, err)
	return p
}

func line(t *testing.T, cs CoordinateSystem, coords ...[]float64) LineString {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = pt(t, cs, c...)
	}
	ls, err := NewLineString(cs, points...)
	require.NoError(t, err)
	return ls
}

func circ(t *testing.T, cs CoordinateSystem, coords ...[]float64) CircularString {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = pt(t, cs, c...)
	}
	c, err := NewCircularString(cs, points...)
	require.NoError(t, err)
	return c
}

func xy(x, y float64) []float64 { return []float64{x, y} }

func TestCoordinateSystem(t *testing.T) {
	testCases := []struct {
		cs   CoordinateSystem
		dim  int
		name string
	}{
		{XY(0), 2, "XY"},
		{XYZ(0), 3, "XYZ"},
		{XYM(0), 3, "XYM"},
		{XYZM(4326), 4, "XYZM"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.dim, tc.cs.CoordinateDimension())
			require.Equal(t, tc.name, tc.cs.String())
			require.Equal(t, tc.cs, NewCoordinateSystem(tc.cs.HasZ(), tc.cs.HasM(), tc.cs.SRID()))
		})
	}
	require.True(t, XYZ(1).SameDimensions(XYZ(2)))
	require.False(t, XYZ(1).SameDimensions(XYM(1)))
	require.Equal(t, geopb.SRID(3857), XY(4326).WithSRID(3857).SRID())
}

func TestPoint(t *testing.T) {
	p := pt(t, XYZM(4326), 1, 2, 3, 4)
	require.False(t, p.IsEmpty())
	require.Equal(t, []float64{1, 2, 3, 4}, p.Ordinates())
	z, ok := p.Z()
	require.True(t, ok)
	require.Equal(t, 3.0, z)
	m, ok := p.M()
	require.True(t, ok)
	require.Equal(t, 4.0, m)
	require.True(t, p.Is3D())
	require.True(t, p.IsMeasured())
	require.Equal(t, geopb.SRID(4326), p.SRID())
	require.Equal(t, "1 2 3 4", p.String())

	pm := pt(t, XYM(0), 1, 2, 5)
	_, ok = pm.Z()
	require.False(t, ok)
	m, ok = pm.M()
	require.True(t, ok)
	require.Equal(t, 5.0, m)
	require.Equal(t, []float64{1, 2, 5}, pm.Ordinates())

	empty := pt(t, XYZ(0))
	require.True(t, empty.IsEmpty())
	require.Nil(t, empty.Ordinates())
	require.Equal(t, "EMPTY", empty.String())
	require.True(t, Point{}.IsEmpty())

	_, err := NewPoint(XYZ(0), 1, 2)
	require.True(t, errors.Is(err, ErrInvalidStructure))
	require.EqualError(t, err, "invalid Point: layout XYZ requires 3 ordinates, got 2")
}

func TestCircularStringArity(t *testing.T) {
	cs := XY(0)
	for n := 0; n <= 7; n++ {
		points := make([]Point, n)
		for i := range points {
			points[i] = pt(t, cs, float64(i), float64(i))
		}
		_, err := NewCircularString(cs, points...)
		if n == 0 || (n >= 3 && n%2 == 1) {
			require.NoError(t, err, "%d points", n)
		} else {
			require.True(t, errors.Is(err, ErrInvalidStructure), "%d points", n)
		}
	}
}

func TestCompoundCurve(t *testing.T) {
	cs := XY(0)
	ls := line(t, cs, xy(1, 1), xy(2, 2))

	t.Run("continuous", func(t *testing.T) {
		cc, err := NewCompoundCurve(cs, ls, circ(t, cs, xy(2, 2), xy(3, 3), xy(5, 5)))
		require.NoError(t, err)
		require.Equal(t, 2, cc.NumCurves())
		require.Equal(t, 4, cc.NumPoints())
		require.True(t, cc.StartPoint().Equals(pt(t, cs, 1, 1)))
		require.True(t, cc.EndPoint().Equals(pt(t, cs, 5, 5)))
		require.False(t, cc.IsClosed())
		require.Equal(t, 5, NumPoints(cc))
	})
	t.Run("discontinuous", func(t *testing.T) {
		_, err := NewCompoundCurve(cs, ls, circ(t, cs, xy(1, 1), xy(2, 2), xy(4, 4)))
		require.True(t, errors.Is(err, ErrInvalidStructure))
		require.EqualError(t, err,
			"invalid CompoundCurve: member 1 starts at (1 1) but member 0 ends at (2 2)")
	})
	t.Run("nested compound", func(t *testing.T) {
		inner, err := NewCompoundCurve(cs, ls)
		require.NoError(t, err)
		_, err = NewCompoundCurve(cs, inner)
		require.True(t, errors.Is(err, ErrInvalidStructure))
	})
	t.Run("empty member", func(t *testing.T) {
		empty, err := NewLineString(cs)
		require.NoError(t, err)
		_, err = NewCompoundCurve(cs, ls, empty)
		require.True(t, errors.Is(err, ErrInvalidStructure))
	})
	t.Run("empty", func(t *testing.T) {
		cc, err := NewCompoundCurve(cs)
		require.NoError(t, err)
		require.True(t, cc.IsEmpty())
		require.Equal(t, 0, cc.NumCurves())
		require.True(t, cc.StartPoint().IsEmpty())
	})
	t.Run("mixed dimensions", func(t *testing.T) {
		_, err := NewCompoundCurve(XYZ(0), ls)
		require.EqualError(t, err, "invalid CompoundCurve: member 0 has layout XY, expected XYZ")
	})
}

func TestPolygonRings(t *testing.T) {
	cs := XY(0)
	closed := line(t, cs, xy(0, 0), xy(1, 0), xy(1, 1), xy(0, 0))
	open := line(t, cs, xy(0, 0), xy(1, 0), xy(1, 1))

	p, err := NewPolygon(cs, closed, closed)
	require.NoError(t, err)
	require.Equal(t, 2, p.NumRings())
	require.Equal(t, 1, p.NumInteriorRings())
	require.Equal(t, closed, p.ExteriorRing())
	require.Equal(t, closed, p.InteriorRingN(0))

	_, err = NewPolygon(cs, open)
	require.True(t, errors.Is(err, ErrInvalidStructure))
	require.EqualError(t, err, "invalid Polygon: ring 0 is not closed: starts at (0 0) and ends at (1 1)")

	empty, err := NewPolygon(cs)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.NumInteriorRings())

	arc := circ(t, cs, xy(0, 0), xy(1, 1), xy(0, 0))
	cp, err := NewCurvePolygon(cs, arc, closed)
	require.NoError(t, err)
	require.Equal(t, 2, cp.NumRings())

	_, err = NewCurvePolygon(cs, open)
	require.True(t, errors.Is(err, ErrInvalidStructure))
}

func TestTriangle(t *testing.T) {
	cs := XY(0)
	tri, err := NewTriangle(cs, line(t, cs, xy(0, 0), xy(1, 0), xy(0, 1), xy(0, 0)))
	require.NoError(t, err)
	require.False(t, tri.IsEmpty())

	testCases := []struct {
		name string
		ring LineString
	}{
		{"too many points", line(t, cs, xy(0, 0), xy(1, 0), xy(1, 1), xy(0, 1), xy(0, 0))},
		{"too few points", line(t, cs, xy(0, 0), xy(1, 0), xy(0, 0))},
		{"not closed", line(t, cs, xy(0, 0), xy(1, 0), xy(0, 1), xy(0, 2))},
		{"repeated vertex", line(t, cs, xy(0, 0), xy(1, 0), xy(1, 0), xy(0, 0))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTriangle(cs, tc.ring)
			require.True(t, errors.Is(err, ErrInvalidStructure))
		})
	}

	ring := line(t, cs, xy(0, 0), xy(1, 0), xy(0, 1), xy(0, 0))
	_, err = NewTriangle(cs, ring, ring)
	require.True(t, errors.Is(err, ErrInvalidStructure))
}

func TestCollections(t *testing.T) {
	cs := XYZ(4326)
	a, b := pt(t, cs, 1, 2, 3), pt(t, cs, 4, 5, 6)

	mp, err := NewMultiPoint(cs, a, b)
	require.NoError(t, err)
	require.Equal(t, 2, mp.NumGeometries())
	require.Equal(t, b, mp.GeometryN(1))
	require.False(t, mp.IsEmpty())

	_, err = NewMultiPoint(cs, a, pt(t, XY(4326), 1, 2))
	require.True(t, errors.Is(err, ErrInvalidStructure))

	onlyEmpty, err := NewMultiPoint(cs, NewEmptyPoint(cs))
	require.NoError(t, err)
	require.True(t, onlyEmpty.IsEmpty())

	gc, err := NewGeometryCollection(cs, mp, a)
	require.NoError(t, err)
	nested, err := NewGeometryCollection(cs, gc)
	require.NoError(t, err)
	require.Equal(t, 3, NumPoints(nested))

	_, err = NewGeometryCollection(cs, nil)
	require.EqualError(t, err, "invalid GeometryCollection: member 0 is nil")
}

func TestWithSRID(t *testing.T) {
	cs := XY(0)
	ring := line(t, cs, xy(0, 0), xy(1, 0), xy(0, 1), xy(0, 0))
	poly, err := NewPolygon(cs, ring)
	require.NoError(t, err)
	mpoly, err := NewMultiPolygon(cs, poly)
	require.NoError(t, err)

	g := mpoly.WithSRID(4326)
	require.Equal(t, geopb.SRID(4326), g.SRID())
	Walk(g, func(p Point) {
		require.Equal(t, geopb.SRID(4326), p.SRID())
	})
	// The original is untouched.
	require.Equal(t, geopb.SRID(0), mpoly.GeometryN(0).ExteriorRing().PointN(0).SRID())
	require.False(t, Equal(g, mpoly))
	require.True(t, Equal(g, mpoly.WithSRID(4326)))
}

func TestBoundingBox(t *testing.T) {
	cs := XY(0)
	ls := line(t, cs, xy(1, 5), xy(-2, 3), xy(4, -1))
	require.Equal(t, &geopb.BoundingBox{MinX: -2, MaxX: 4, MinY: -1, MaxY: 5}, BoundingBox(ls))

	empty, err := NewLineString(cs)
	require.NoError(t, err)
	require.Nil(t, BoundingBox(empty))
}

func TestAccessorsCopy(t *testing.T) {
	cs := XY(0)
	ls := line(t, cs, xy(1, 1), xy(2, 2))
	points := ls.Points()
	points[0] = pt(t, cs, 9, 9)
	require.True(t, ls.PointN(0).Equals(pt(t, cs, 1, 1)))
}
