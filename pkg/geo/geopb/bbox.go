// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geopb

import (
	"fmt"
	"math"
)

// BoundingBox is the XY extent of a spatial object.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBoundingBox returns a properly initialized bounding box.
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{
		MinX: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// Update updates the BoundingBox coordinates.
func (b *BoundingBox) Update(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// String implements the fmt.Stringer interface.
func (b *BoundingBox) String() string {
	if b == nil {
		return "<empty>"
	}
	return fmt.Sprintf("BOX(%g %g,%g %g)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
