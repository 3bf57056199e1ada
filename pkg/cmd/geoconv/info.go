// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/geocodec/pkg/geo"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   "info [input-file]",
		Short: "describe geometries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runLines(cmd, args, s, describe)
		},
	}
	f.register(cmd.Flags(), false /* withOutput */)
	return cmd
}

// describe summarizes g on one line.
func describe(g shape.Geometry) (string, error) {
	gg, err := geo.MakeGeometry(g)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s SRID=%d %s empty=%t points=%d bbox=%s",
		gg.ShapeType(), gg.SRID(), g.CoordinateSystem(), gg.IsEmpty(), gg.NumPoints(), gg.BoundingBox()), nil
}
