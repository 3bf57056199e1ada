// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import (
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/redact"
)

// CoordinateSystem describes the ordinates carried by every point of a
// geometry and the spatial reference the coordinates are expressed in.
type CoordinateSystem struct {
	hasZ bool
	hasM bool
	srid geopb.SRID
}

// NewCoordinateSystem returns a CoordinateSystem.
func NewCoordinateSystem(hasZ, hasM bool, srid geopb.SRID) CoordinateSystem {
	return CoordinateSystem{hasZ: hasZ, hasM: hasM, srid: srid}
}

// XY returns a two dimensional coordinate system.
func XY(srid geopb.SRID) CoordinateSystem { return CoordinateSystem{srid: srid} }

// XYZ returns a three dimensional coordinate system.
func XYZ(srid geopb.SRID) CoordinateSystem { return CoordinateSystem{hasZ: true, srid: srid} }

// XYM returns a two dimensional coordinate system with measures.
func XYM(srid geopb.SRID) CoordinateSystem { return CoordinateSystem{hasM: true, srid: srid} }

// XYZM returns a three dimensional coordinate system with measures.
func XYZM(srid geopb.SRID) CoordinateSystem {
	return CoordinateSystem{hasZ: true, hasM: true, srid: srid}
}

// HasZ returns whether points carry a Z ordinate.
func (cs CoordinateSystem) HasZ() bool { return cs.hasZ }

// HasM returns whether points carry an M ordinate.
func (cs CoordinateSystem) HasM() bool { return cs.hasM }

// SRID returns the spatial reference identifier.
func (cs CoordinateSystem) SRID() geopb.SRID { return cs.srid }

// CoordinateDimension returns the number of ordinates of each point, between
// 2 and 4.
func (cs CoordinateSystem) CoordinateDimension() int {
	d := 2
	if cs.hasZ {
		d++
	}
	if cs.hasM {
		d++
	}
	return d
}

// WithSRID returns a copy of cs with the given SRID.
func (cs CoordinateSystem) WithSRID(srid geopb.SRID) CoordinateSystem {
	cs.srid = srid
	return cs
}

// SameDimensions returns whether both coordinate systems carry the same
// ordinates. SRIDs are not compared.
func (cs CoordinateSystem) SameDimensions(other CoordinateSystem) bool {
	return cs.hasZ == other.hasZ && cs.hasM == other.hasM
}

// String returns the layout name: XY, XYZ, XYM or XYZM.
func (cs CoordinateSystem) String() string {
	switch {
	case cs.hasZ && cs.hasM:
		return "XYZM"
	case cs.hasZ:
		return "XYZ"
	case cs.hasM:
		return "XYM"
	default:
		return "XY"
	}
}

// SafeValue implements the redact.SafeValue interface.
func (CoordinateSystem) SafeValue() {}

var _ redact.SafeValue = CoordinateSystem{}
