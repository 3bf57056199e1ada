// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomconv

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/cockroachdb/geocodec/pkg/geo/wkb"
	"github.com/cockroachdb/geocodec/pkg/geo/wkt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	gowkb "github.com/twpayne/go-geom/encoding/wkb"
	gowkt "github.com/twpayne/go-geom/encoding/wkt"
)

func mustRead(t *testing.T, text string) shape.Geometry {
	g, err := wkt.EWKTReader{}.Read(text)
	require.NoError(t, err, text)
	return g
}

var convertibleCases = []string{
	"POINT(1 2)",
	"POINT Z(1 2 3)",
	"POINT M(1 2 3)",
	"POINT ZM(1 2 3 4)",
	"LINESTRING(0 0,1 1,2 0)",
	"POLYGON((0 0,10 0,10 10,0 10,0 0),(1 1,2 1,2 2,1 1))",
	"MULTIPOINT(1 2,3 4)",
	"MULTILINESTRING Z((0 0 0,1 1 1),(2 2 2,3 3 3))",
	"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
	"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1))",
	"SRID=4326;POINT(-122.4 37.8)",
	"SRID=3857;GEOMETRYCOLLECTION M(POINT M(1 2 3),MULTIPOINT M(4 5 6))",
}

func TestRoundTrip(t *testing.T) {
	for _, text := range convertibleCases {
		t.Run(text, func(t *testing.T) {
			g := mustRead(t, text)
			gt, err := ToGeomT(g)
			require.NoError(t, err)
			require.Equal(t, int(g.SRID()), gt.SRID())

			again, err := FromGeomT(gt)
			require.NoError(t, err)
			require.True(t, shape.Equal(g, again))
			require.Equal(t, g.SRID(), again.SRID())
		})
	}
}

// The encoders of go-geom and of this module must agree on every geometry
// both can represent.
func TestEncodingsAgree(t *testing.T) {
	for _, text := range convertibleCases {
		t.Run(text, func(t *testing.T) {
			g := mustRead(t, text)
			gt, err := ToGeomT(g)
			require.NoError(t, err)

			for _, tc := range []struct {
				ours wkb.ByteOrder
				std  binary.ByteOrder
			}{
				{wkb.BigEndian, binary.BigEndian},
				{wkb.LittleEndian, binary.LittleEndian},
			} {
				want, err := ewkb.Marshal(gt, tc.std)
				require.NoError(t, err)
				got, err := wkb.MarshalEWKB(g, tc.ours)
				require.NoError(t, err)
				require.Equal(t, want, got)

				want, err = gowkb.Marshal(gt, tc.std)
				require.NoError(t, err)
				got, err = wkb.Marshal(g, tc.ours)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

// Text written by go-geom must read back as the geometry it was written from.
func TestReadsGoGeomWKT(t *testing.T) {
	for _, text := range convertibleCases {
		t.Run(text, func(t *testing.T) {
			g := mustRead(t, text)
			gt, err := ToGeomT(g)
			require.NoError(t, err)
			written, err := gowkt.Marshal(gt)
			require.NoError(t, err)
			again, err := wkt.Reader{}.Read(written, g.SRID())
			require.NoError(t, err, written)
			require.True(t, shape.Equal(g, again), written)
		})
	}
}

func TestToGeomTCoordinates(t *testing.T) {
	gt, err := ToGeomT(mustRead(t, "SRID=4326;POLYGON Z((0 0 1,4 0 1,4 4 1,0 0 1),(1 1 2,2 1 2,2 2 2,1 1 2))"))
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, gt.Layout())
	require.Equal(t, 4326, gt.SRID())
	if diff := cmp.Diff([]int{12, 24}, gt.Ends()); diff != "" {
		t.Errorf("unexpected ends (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]float64{0, 0, 1, 4, 0, 1, 4, 4, 1, 0, 0, 1, 1, 1, 2, 2, 1, 2, 2, 2, 2, 1, 1, 2},
		gt.FlatCoords(),
	); diff != "" {
		t.Errorf("unexpected coordinates (-want +got):\n%s", diff)
	}

	// Members of a collection carry no SRID of their own.
	gt, err = ToGeomT(mustRead(t, "SRID=4326;GEOMETRYCOLLECTION(POINT(1 2))"))
	require.NoError(t, err)
	gc := gt.(*geom.GeometryCollection)
	require.Equal(t, 4326, gc.SRID())
	require.Equal(t, 0, gc.Geom(0).SRID())
}

func TestEmpty(t *testing.T) {
	for _, text := range []string{
		"POINT EMPTY",
		"LINESTRING EMPTY",
		"POLYGON EMPTY",
		"MULTIPOINT EMPTY",
		"GEOMETRYCOLLECTION EMPTY",
	} {
		t.Run(text, func(t *testing.T) {
			g := mustRead(t, text)
			gt, err := ToGeomT(g)
			require.NoError(t, err)
			require.True(t, gt.Empty())
			again, err := FromGeomT(gt)
			require.NoError(t, err)
			require.True(t, again.IsEmpty())
			require.Equal(t, g.ShapeType(), again.ShapeType())
		})
	}
}

func TestFromGeomTNoLayout(t *testing.T) {
	g, err := FromGeomT(geom.NewGeometryCollection().SetSRID(4326))
	require.NoError(t, err)
	require.Equal(t, geopb.ShapeType_GeometryCollection, g.ShapeType())
	require.Equal(t, shape.XY(4326), g.CoordinateSystem())

	gc := geom.NewGeometryCollection()
	require.NoError(t, gc.Push(geom.NewPointFlat(geom.XYM, []float64{1, 2, 3})))
	g, err = FromGeomT(gc)
	require.NoError(t, err)
	require.True(t, g.IsMeasured())
	require.False(t, g.Is3D())
}

func TestUnsupported(t *testing.T) {
	for _, text := range []string{
		"CIRCULARSTRING(0 0,1 1,2 0)",
		"COMPOUNDCURVE((0 0,1 1),(1 1,2 2))",
		"CURVEPOLYGON((0 0,1 0,1 1,0 0))",
		"MULTICURVE((0 0,1 1))",
		"MULTISURFACE(((0 0,1 0,1 1,0 0)))",
		"TRIANGLE((0 0,1 0,0 1,0 0))",
		"TIN(((0 0,1 0,0 1,0 0)))",
		"POLYHEDRALSURFACE(((0 0,1 0,0 1,0 0)))",
		"GEOMETRYCOLLECTION(POINT(1 2),CIRCULARSTRING(0 0,1 1,2 0))",
	} {
		_, err := ToGeomT(mustRead(t, text))
		require.True(t, errors.Is(err, shape.ErrUnsupported), "%s: %v", text, err)
	}
}
