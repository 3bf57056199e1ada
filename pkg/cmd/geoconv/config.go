// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geocodec/pkg/geo/geojson"
	"github.com/cockroachdb/geocodec/pkg/geo/wkb"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// format is an interchange format accepted by --from and --to.
type format string

const (
	formatAuto    format = "auto"
	formatWKT     format = "wkt"
	formatEWKT    format = "ewkt"
	formatWKB     format = "wkb"
	formatEWKB    format = "ewkb"
	formatHex     format = "hex"
	formatGeoJSON format = "geojson"
)

var inputFormats = []format{formatAuto, formatWKT, formatEWKT, formatWKB, formatEWKB, formatHex, formatGeoJSON}
var outputFormats = []format{formatWKT, formatEWKT, formatWKB, formatEWKB, formatHex, formatGeoJSON}

func parseFormat(s string, allowed []format) (format, error) {
	f := format(strings.ToLower(s))
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", errors.Newf("unknown format %q, expected one of %s", s, strings.Join(names, ", "))
}

// config holds the settings of a run. It can be loaded from a YAML file and
// is then overridden by the flags set on the command line.
type config struct {
	From                   string `yaml:"from"`
	To                     string `yaml:"to"`
	SRID                   int32  `yaml:"srid"`
	Pretty                 bool   `yaml:"pretty"`
	ByteOrder              string `yaml:"byte_order"`
	EmptyPointAsNaN        bool   `yaml:"empty_point_nan"`
	AllowNestedCollections bool   `yaml:"allow_nested_collections"`
	MaxDecimalDigits       int    `yaml:"max_decimal_digits"`
	LogLevel               string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		From:             string(formatAuto),
		To:               string(formatEWKT),
		MaxDecimalDigits: geojson.DefaultMaxDecimalDigits,
		LogLevel:         "info",
	}
}

// settings is a validated config.
type settings struct {
	from                   format
	to                     format
	srid                   int32
	pretty                 bool
	byteOrder              wkb.ByteOrder
	emptyPointAsNaN        bool
	allowNestedCollections bool
	maxDecimalDigits       int
	logLevel               slog.Level
}

func (c config) validate() (settings, error) {
	s := settings{
		srid:                   c.SRID,
		pretty:                 c.Pretty,
		emptyPointAsNaN:        c.EmptyPointAsNaN,
		allowNestedCollections: c.AllowNestedCollections,
		maxDecimalDigits:       c.MaxDecimalDigits,
	}
	var err error
	if s.from, err = parseFormat(c.From, inputFormats); err != nil {
		return settings{}, errors.Wrap(err, "from")
	}
	if s.to, err = parseFormat(c.To, outputFormats); err != nil {
		return settings{}, errors.Wrap(err, "to")
	}
	if s.byteOrder, err = wkb.StringToByteOrder(c.ByteOrder); err != nil {
		return settings{}, err
	}
	if s.maxDecimalDigits < 0 {
		return settings{}, errors.Newf("max decimal digits must not be negative, got %d", s.maxDecimalDigits)
	}
	if err := s.logLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return settings{}, errors.Wrapf(err, "log level")
	}
	return s, nil
}

// decodeConfig reads YAML settings over c. Unknown keys are rejected.
func decodeConfig(r io.Reader, c *config) error {
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func loadConfigFile(path string, c *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(decodeConfig(f, c), "reading config file %s", path)
}

// cliFlags are the command line flags shared by all subcommands.
type cliFlags struct {
	configFile string
	values     config
}

func (f *cliFlags) register(flags *pflag.FlagSet, withOutput bool) {
	d := defaultConfig()
	flags.StringVar(&f.configFile, "config", "", "YAML file with default settings")
	flags.StringVar(&f.values.From, "from", d.From, "input format: auto, wkt, ewkt, wkb, ewkb, hex or geojson")
	flags.Int32Var(&f.values.SRID, "srid", d.SRID, "SRID of input geometries that carry none")
	flags.BoolVar(&f.values.AllowNestedCollections, "allow-nested", d.AllowNestedCollections,
		"accept collections nested in collections")
	flags.StringVar(&f.values.LogLevel, "log-level", d.LogLevel, "debug, info, warn or error")
	if !withOutput {
		return
	}
	flags.StringVar(&f.values.To, "to", d.To, "output format: wkt, ewkt, wkb, ewkb, hex or geojson")
	flags.BoolVar(&f.values.Pretty, "pretty", d.Pretty, "space out WKT and EWKT output")
	flags.StringVar(&f.values.ByteOrder, "byte-order", d.ByteOrder, "WKB byte order: ndr or xdr")
	flags.BoolVar(&f.values.EmptyPointAsNaN, "empty-point-nan", d.EmptyPointAsNaN,
		"write empty points in WKB as NaN ordinates")
	flags.IntVar(&f.values.MaxDecimalDigits, "max-decimal-digits", d.MaxDecimalDigits,
		"maximum decimal digits in GeoJSON output")
}

// resolve returns the defaults, overridden by the config file, overridden by
// the flags set on the command line.
func (f *cliFlags) resolve(flags *pflag.FlagSet) (settings, error) {
	c := defaultConfig()
	if f.configFile != "" {
		if err := loadConfigFile(f.configFile, &c); err != nil {
			return settings{}, err
		}
	}
	flags.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "from":
			c.From = f.values.From
		case "to":
			c.To = f.values.To
		case "srid":
			c.SRID = f.values.SRID
		case "pretty":
			c.Pretty = f.values.Pretty
		case "byte-order":
			c.ByteOrder = f.values.ByteOrder
		case "empty-point-nan":
			c.EmptyPointAsNaN = f.values.EmptyPointAsNaN
		case "allow-nested":
			c.AllowNestedCollections = f.values.AllowNestedCollections
		case "max-decimal-digits":
			c.MaxDecimalDigits = f.values.MaxDecimalDigits
		case "log-level":
			c.LogLevel = f.values.LogLevel
		}
	})
	return c.validate()
}
