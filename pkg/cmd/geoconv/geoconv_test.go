// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/geocodec/pkg/geo/shape"
	"github.com/cockroachdb/geocodec/pkg/geo/wkb"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/geoconv", func(t *testing.T, d *datadriven.TestData) string {
		args := []string{d.Cmd}
		for _, arg := range d.CmdArgs {
			if len(arg.Vals) == 0 {
				args = append(args, "--"+arg.Key)
			} else {
				args = append(args, fmt.Sprintf("--%s=%s", arg.Key, arg.Vals[0]))
			}
		}
		var stdout, stderr bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs(args)
		cmd.SetIn(strings.NewReader(d.Input))
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		if err := cmd.Execute(); err != nil {
			return fmt.Sprintf("%serror: %v\n", stdout.String(), err)
		}
		return stdout.String()
	})
}

func writeFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestConfigFile(t *testing.T) {
	configPath := writeFile(t, "geoconv.yaml", `
to: wkb
byte_order: xdr
srid: 4326
pretty: true
`)
	inputPath := writeFile(t, "input.txt", "POINT(1 2)\n")

	run := func(args ...string) string {
		var stdout bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs(args)
		cmd.SetOut(&stdout)
		cmd.SetErr(&bytes.Buffer{})
		require.NoError(t, cmd.Execute())
		return stdout.String()
	}

	require.Equal(t, "00000000013FF00000000000004000000000000000\n",
		run("convert", "--config", configPath, inputPath))
	// Flags override the file.
	require.Equal(t, "SRID=4326; POINT (1 2)\n",
		run("convert", "--config", configPath, "--to=ewkt", inputPath))
	require.Equal(t, "SRID=4326;POINT(1 2)\n",
		run("convert", "--config", configPath, "--to=ewkt", "--pretty=false", inputPath))
}

func TestResolve(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f cliFlags
	f.register(flags, true /* withOutput */)

	// Without a config file or flags the defaults apply.
	s, err := f.resolve(flags)
	require.NoError(t, err)
	require.Equal(t, formatAuto, s.from)
	require.Equal(t, formatEWKT, s.to)
	require.Equal(t, wkb.DefaultByteOrder, s.byteOrder)
	require.Equal(t, slog.LevelInfo, s.logLevel)

	require.NoError(t, flags.Parse([]string{"--from=EWKB", "--byte-order=xdr", "--log-level=debug"}))
	s, err = f.resolve(flags)
	require.NoError(t, err)
	require.Equal(t, formatEWKB, s.from)
	require.Equal(t, wkb.BigEndian, s.byteOrder)
	require.Equal(t, slog.LevelDebug, s.logLevel)

	for _, bad := range []config{
		{From: "kml", To: "wkt", LogLevel: "info"},
		{From: "auto", To: "auto", LogLevel: "info"},
		{From: "auto", To: "wkt", LogLevel: "loud"},
		{From: "auto", To: "wkt", LogLevel: "info", MaxDecimalDigits: -1},
	} {
		_, err := bad.validate()
		require.Error(t, err, "%+v", bad)
	}
}

func TestDecodeConfig(t *testing.T) {
	c := defaultConfig()
	require.NoError(t, decodeConfig(strings.NewReader(""), &c))
	require.Equal(t, defaultConfig(), c)

	require.NoError(t, decodeConfig(strings.NewReader("from: ewkt\nallow_nested_collections: true\n"), &c))
	require.Equal(t, "ewkt", c.From)
	require.True(t, c.AllowNestedCollections)
	require.Equal(t, "ewkt", defaultConfig().To)

	require.Error(t, decodeConfig(strings.NewReader("colour: red\n"), &c))
}

func TestProcessLinesLogging(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(tagHandler{slog.NewTextHandler(&logs, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})})
	ctx := logtags.AddTag(context.Background(), "input", "test")

	s, err := defaultConfig().validate()
	require.NoError(t, err)
	err = processLines(ctx, logger, strings.NewReader("POINT(1 2)\n\n  \nPOINT(\n"), &out, s,
		func(g shape.Geometry) (string, error) { return g.ShapeType().String(), nil })
	require.EqualError(t, err, "1 of 2 geometries could not be converted")
	require.Equal(t, "Point\n", out.String())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `level=DEBUG msg="converted geometry" line=1 input=test`)
	require.Contains(t, lines[1], `level=ERROR msg="cannot convert geometry" line=4`)
	require.Contains(t, lines[1], "input=test")
}
