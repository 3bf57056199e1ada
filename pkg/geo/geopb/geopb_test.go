// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geopb

import (
	"math"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestShapeTypeKeywords(t *testing.T) {
	for st, kw := range shapeTypeKeywords {
		got, ok := ShapeTypeFromKeyword(kw)
		require.True(t, ok, kw)
		require.Equal(t, st, got)
		require.True(t, st.Valid())
	}
	_, ok := ShapeTypeFromKeyword("CURVE")
	require.False(t, ok)
	require.False(t, ShapeType(13).Valid())
	require.Equal(t, "Unset", ShapeType(99).String())
	require.Equal(t, uint32(17), uint32(ShapeType_Triangle))
}

func TestShapeTypeIsSafe(t *testing.T) {
	s := redact.Sprintf("type %s", ShapeType_CompoundCurve)
	require.Equal(t, "type CompoundCurve", string(s.Redact()))
}

func TestBoundingBox(t *testing.T) {
	b := NewBoundingBox()
	b.Update(1, -2)
	b.Update(-3, 4)
	require.Equal(t, &BoundingBox{MinX: -3, MaxX: 1, MinY: -2, MaxY: 4}, b)
	require.Equal(t, "BOX(-3 -2,1 4)", b.String())

	// Negative-only boxes must not be clamped by the initial maxima.
	b = NewBoundingBox()
	b.Update(-5, -6)
	require.Equal(t, -5.0, b.MaxX)
	require.Equal(t, -6.0, b.MaxY)
	require.False(t, math.IsInf(b.MinX, 0))

	var nilBox *BoundingBox
	require.Equal(t, "<empty>", nilBox.String())
}
