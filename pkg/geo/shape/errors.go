// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package shape

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
)

// ErrInvalidStructure marks errors raised when a geometry would violate a
// structural invariant, regardless of which format produced the data.
var ErrInvalidStructure = errors.New("invalid geometry structure")

// ErrUnsupported marks errors raised when a geometry cannot be represented in
// a target format.
var ErrUnsupported = errors.New("unsupported geometry")

func structureErrorf(t geopb.ShapeType, format string, args ...interface{}) error {
	return errors.Mark(
		errors.Wrapf(errors.Newf(format, args...), "invalid %s", t),
		ErrInvalidStructure,
	)
}

// NewUnsupportedError returns an error marked with ErrUnsupported, naming the
// geometry type that cannot be represented in the given format.
func NewUnsupportedError(t geopb.ShapeType, format string) error {
	return errors.Mark(
		errors.Newf("%s geometries cannot be represented as %s", t, errors.Safe(format)),
		ErrUnsupported,
	)
}
