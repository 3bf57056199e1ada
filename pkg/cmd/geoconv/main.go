// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// geoconv converts geometries between WKT, EWKT, WKB, EWKB and GeoJSON.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geoconv",
		Short: "convert geometries between spatial interchange formats",
		Long: `geoconv converts geometries between WKT, EWKT, WKB, EWKB and GeoJSON.

Input is read one geometry per line from the named file, or from stdin. Binary
formats are read and written as hex, one geometry per line.

Examples:

  echo 'SRID=4326;POINT(1 2)' | geoconv convert --to=ewkb
  geoconv convert --from=ewkb --to=geojson shapes.txt
  geoconv info --config=geoconv.yaml shapes.txt
`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newConvertCmd(), newInfoCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
