// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geojson

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/cockroachdb/geocodec/pkg/geo/wkt"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, text string) shape.Geometry {
	g, err := wkt.EWKTReader{}.Read(text)
	require.NoError(t, err, text)
	return g
}

func TestMarshal(t *testing.T) {
	testCases := []struct {
		wkt      string
		opts     []Option
		expected string
	}{
		{"POINT(1 2)", nil, `{"type":"Point","coordinates":[1,2]}`},
		{"POINT Z(1 2 3)", nil, `{"type":"Point","coordinates":[1,2,3]}`},
		{"POINT(1.23456 2.5)", []Option{WithMaxDecimalDigits(2)}, `{"type":"Point","coordinates":[1.23,2.5]}`},
		{"LINESTRING(0 0,1 1)", nil, `{"type":"LineString","coordinates":[[0,0],[1,1]]}`},
		{
			"POLYGON((0 0,2 0,2 3,0 0))",
			[]Option{WithBBox()},
			`{"type":"Polygon","bbox":[0,0,2,3],"coordinates":[[[0,0],[2,0],[2,3],[0,0]]]}`,
		},
		{
			"POINT(1 2)",
			[]Option{WithCRS("EPSG:3857")},
			`{"type":"Point","crs":{"type":"name","properties":{"name":"EPSG:3857"}},"coordinates":[1,2]}`,
		},
		{"MULTIPOINT(1 2,3 4)", nil, `{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`},
		{
			"SRID=4326;GEOMETRYCOLLECTION(POINT(1 2))",
			nil,
			`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]}]}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.wkt, func(t *testing.T) {
			b, err := Marshal(mustRead(t, tc.wkt), tc.opts...)
			require.NoError(t, err)
			require.JSONEq(t, tc.expected, string(b))
		})
	}
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := Marshal(mustRead(t, "CIRCULARSTRING(0 0,1 1,2 0)"))
	require.True(t, errors.Is(err, shape.ErrUnsupported), "%v", err)
}

func TestUnmarshal(t *testing.T) {
	g, err := Unmarshal([]byte(`{"type":"Point","coordinates":[1,2]}`))
	require.NoError(t, err)
	require.True(t, shape.Equal(mustRead(t, "SRID=4326;POINT(1 2)"), g))
	require.Equal(t, DefaultSRID, g.SRID())

	g, err = UnmarshalWithSRID([]byte(`{"type":"LineString","coordinates":[[1,2,3],[4,5,6]]}`), 3857)
	require.NoError(t, err)
	require.True(t, shape.Equal(mustRead(t, "SRID=3857;LINESTRING Z(1 2 3,4 5 6)"), g))
	require.Equal(t, geopb.SRID(3857), g.SRID())

	g, err = Unmarshal([]byte(
		`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]},` +
			`{"type":"LineString","coordinates":[[0,0],[1,1]]}]}`,
	))
	require.NoError(t, err)
	require.True(t, shape.Equal(mustRead(t, "SRID=4326;GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1))"), g))
	shape.Walk(g, func(p shape.Point) {
		require.Equal(t, DefaultSRID, p.SRID())
	})

	for _, bad := range []string{`null`, `{"type":`, `{"type":"Circle","coordinates":[1,2]}`} {
		_, err := Unmarshal([]byte(bad))
		require.Error(t, err, bad)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		"SRID=4326;POINT(-122.5 37.75)",
		"SRID=4326;MULTILINESTRING((0 0,1 1),(2 2,3 3))",
		"SRID=4326;MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
		"SRID=4326;POLYGON Z((0 0 1,4 0 1,4 4 1,0 0 1))",
	} {
		t.Run(text, func(t *testing.T) {
			g := mustRead(t, text)
			b, err := Marshal(g)
			require.NoError(t, err)
			again, err := Unmarshal(b)
			require.NoError(t, err)
			require.True(t, shape.Equal(g, again))
			require.Equal(t, g.SRID(), again.SRID())
		})
	}
}
