// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo"
	"github.com/cockroachdb/geocodec/pkg/geo/geojson"
	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/cockroachdb/geocodec/pkg/geo/wkb"
	"github.com/cockroachdb/geocodec/pkg/geo/wkt"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   "convert [input-file]",
		Short: "convert geometries from one format to another",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runLines(cmd, args, s, func(g shape.Geometry) (string, error) {
				return encode(g, s)
			})
		},
	}
	f.register(cmd.Flags(), true /* withOutput */)
	return cmd
}

// runLines decodes every line of the input and writes the result of fn for
// each to stdout. A line that fails is logged and skipped; the command
// fails after all lines have been processed.
func runLines(
	cmd *cobra.Command, args []string, s settings, fn func(shape.Geometry) (string, error),
) error {
	in, name := cmd.InOrStdin(), "stdin"
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in, name = file, args[0]
	}
	ctx := logtags.AddTag(cmd.Context(), "input", name)
	ctx = logtags.AddTag(ctx, "from", string(s.from))
	logger := newLogger(cmd.ErrOrStderr(), s.logLevel)
	return processLines(ctx, logger, in, cmd.OutOrStdout(), s, fn)
}

func processLines(
	ctx context.Context,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
	s settings,
	fn func(shape.Geometry) (string, error),
) error {
	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(nil, 64<<20)
	var lines, failed int
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines++
		result, err := func() (string, error) {
			g, err := decode(line, s)
			if err != nil {
				return "", err
			}
			return fn(g)
		}()
		if err != nil {
			failed++
			logger.ErrorContext(ctx, "cannot convert geometry", slog.Int("line", lineNum), slog.Any("error", err))
			continue
		}
		logger.DebugContext(ctx, "converted geometry", slog.Int("line", lineNum))
		if _, err := fmt.Fprintln(w, result); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Newf("%d of %d geometries could not be converted", failed, lines)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	return b, errors.Wrap(err, "decoding hex")
}

// decode parses one line of input.
func decode(line string, s settings) (shape.Geometry, error) {
	srid := geopb.SRID(s.srid)
	withDefaultSRID := func(g shape.Geometry, err error) (shape.Geometry, error) {
		if err != nil {
			return nil, err
		}
		if g.SRID() == 0 {
			g = g.WithSRID(srid)
		}
		return g, nil
	}
	switch s.from {
	case formatAuto:
		g, err := geo.ParseGeometryWithSRID(line, srid)
		if err != nil {
			return nil, err
		}
		return g.Shape(), nil
	case formatWKT:
		return wkt.Reader{AllowNestedCollections: s.allowNestedCollections}.Read(line, srid)
	case formatEWKT:
		return withDefaultSRID(wkt.EWKTReader{AllowNestedCollections: s.allowNestedCollections}.Read(line))
	case formatWKB:
		b, err := decodeHex(line)
		if err != nil {
			return nil, err
		}
		return wkb.Reader{AllowNestedCollections: s.allowNestedCollections}.Read(b, srid)
	case formatEWKB, formatHex:
		b, err := decodeHex(line)
		if err != nil {
			return nil, err
		}
		return withDefaultSRID(wkb.EWKBReader{AllowNestedCollections: s.allowNestedCollections}.Read(b))
	case formatGeoJSON:
		g, err := geo.NewGeometryFromGeoJSON([]byte(line), srid)
		if err != nil {
			return nil, err
		}
		return g.Shape(), nil
	default:
		return nil, errors.AssertionFailedf("unknown input format %q", s.from)
	}
}

// encode formats g as one line of output.
func encode(g shape.Geometry, s settings) (string, error) {
	switch s.to {
	case formatWKT:
		return wkt.Writer{PrettyPrint: s.pretty}.Write(g)
	case formatEWKT:
		return wkt.EWKTWriter{PrettyPrint: s.pretty}.Write(g)
	case formatWKB:
		b, err := wkb.Writer{ByteOrder: s.byteOrder, EmptyPointAsNaN: s.emptyPointAsNaN}.Write(g)
		return strings.ToUpper(hex.EncodeToString(b)), err
	case formatEWKB:
		b, err := wkb.EWKBWriter{ByteOrder: s.byteOrder, EmptyPointAsNaN: s.emptyPointAsNaN}.Write(g)
		return strings.ToUpper(hex.EncodeToString(b)), err
	case formatHex:
		gg, err := geo.MakeGeometry(g)
		if err != nil {
			return "", err
		}
		return gg.AsHexEWKB()
	case formatGeoJSON:
		b, err := geojson.Marshal(g, geojson.WithMaxDecimalDigits(s.maxDecimalDigits))
		return string(b), err
	default:
		return "", errors.AssertionFailedf("unknown output format %q", s.to)
	}
}
