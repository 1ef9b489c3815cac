// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides chart files, which describe a figure with
// one flex line mark: its size, scales and mark attributes. Chart
// files can be written in TOML, YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/marks/base/errors"
	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the chart file format version written by this package.
const SchemaVersion = "1.0.0"

// SchemaConstraint is the range of chart file versions that can be read.
const SchemaConstraint = "^1"

var schemaConstraint = errors.Must1(semver.NewConstraint(SchemaConstraint))

// Chart is the contents of a chart file.
type Chart struct {

	// Schema is the version of the chart file format.
	Schema string `toml:"schema" yaml:"schema" json:"schema"`

	// Width is the figure width in pixels.
	Width int `toml:"width" yaml:"width" json:"width"`

	// Height is the figure height in pixels.
	Height int `toml:"height" yaml:"height" json:"height"`

	// Margins are the figure margins in pixels.
	Margins Margins `toml:"margins" yaml:"margins" json:"margins"`

	// AnimationDuration is the duration of mark transitions in milliseconds.
	AnimationDuration int `toml:"animation_duration" yaml:"animation_duration" json:"animation_duration"`

	// Scales are the scales of the mark.
	Scales Scales `toml:"scales" yaml:"scales" json:"scales"`

	// Mark has the attributes of the mark.
	Mark Mark `toml:"mark" yaml:"mark" json:"mark"`
}

// Margins are the figure margins.
type Margins struct {
	Top    float64 `toml:"top" yaml:"top" json:"top"`
	Bottom float64 `toml:"bottom" yaml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" yaml:"left" json:"left"`
	Right  float64 `toml:"right" yaml:"right" json:"right"`
}

// Scales has the configuration of each scale of the mark.
// Color and Width are optional.
type Scales struct {
	X     Scale  `toml:"x" yaml:"x" json:"x"`
	Y     Scale  `toml:"y" yaml:"y" json:"y"`
	Color *Scale `toml:"color" yaml:"color" json:"color"`
	Width *Scale `toml:"width" yaml:"width" json:"width"`
}

// Scale is the configuration of one scale.
type Scale struct {

	// Kind is the kind of scale: "linear" (the default), "log",
	// "identity", or "color" for the color scale.
	Kind string `toml:"kind" yaml:"kind" json:"kind"`

	// Min and Max are optional fixed domain bounds.
	Min *float64 `toml:"min" yaml:"min" json:"min"`
	Max *float64 `toml:"max" yaml:"max" json:"max"`

	// Colors is the color scheme of a color scale.
	Colors []string `toml:"colors" yaml:"colors" json:"colors"`
}

// Mark has the model attributes of the mark. Nil values
// leave the model attribute unchanged.
type Mark struct {
	Colors           []string    `toml:"colors" yaml:"colors" json:"colors"`
	Labels           []string    `toml:"labels" yaml:"labels" json:"labels"`
	LabelsVisibility string      `toml:"labels_visibility" yaml:"labels_visibility" json:"labels_visibility"`
	StrokeWidth      *float64    `toml:"stroke_width" yaml:"stroke_width" json:"stroke_width"`
	Visible          *bool       `toml:"visible" yaml:"visible" json:"visible"`
	DisplayLegend    *bool       `toml:"display_legend" yaml:"display_legend" json:"display_legend"`
	X                [][]float64 `toml:"x" yaml:"x" json:"x"`
	Y                [][]float64 `toml:"y" yaml:"y" json:"y"`
	Color            [][]float64 `toml:"color" yaml:"color" json:"color"`
	Width            [][]float64 `toml:"width" yaml:"width" json:"width"`
}

// Default returns a chart with the default settings and no data.
func Default() *Chart {
	return &Chart{
		Schema:  SchemaVersion,
		Width:   640,
		Height:  480,
		Margins: Margins{Top: 60, Bottom: 60, Left: 60, Right: 60},
		Scales:  Scales{X: Scale{Kind: "linear"}, Y: Scale{Kind: "linear"}},
	}
}

// Open reads the chart file at the given path, using the format
// given by its extension (.toml, .yaml, .yml or .json), on top of
// the defaults, and validates it.
func Open(path string) (*Chart, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Open: %w", err)
	}
	c, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", path, err)
	}
	return c, nil
}

// Parse parses chart data in the format given by the file
// extension ext on top of the defaults, and validates it.
func Parse(b []byte, ext string) (*Chart, error) {
	c := Default()
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	case ".json":
		err = json.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("unsupported chart file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the schema version, the scale kinds,
// the figure size and the shape of the data.
func (c *Chart) Validate() error {
	if c.Schema == "" {
		c.Schema = SchemaVersion
	}
	v, err := semver.NewVersion(c.Schema)
	if err != nil {
		return fmt.Errorf("invalid schema version %q: %w", c.Schema, err)
	}
	if !schemaConstraint.Check(v) {
		return fmt.Errorf("unsupported schema version %s (need %s)", v, SchemaConstraint)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid figure size %dx%d", c.Width, c.Height)
	}
	for i, sc := range []*Scale{&c.Scales.X, &c.Scales.Y, c.Scales.Width} {
		if sc == nil {
			continue
		}
		switch sc.Kind {
		case "", "linear", "log", "identity":
		default:
			return fmt.Errorf("scale %s: unknown kind %q", []string{"x", "y", "width"}[i], sc.Kind)
		}
	}
	if cs := c.Scales.Color; cs != nil && cs.Kind != "" && cs.Kind != "color" {
		return fmt.Errorf("scale color: unknown kind %q", cs.Kind)
	}
	mk := &c.Mark
	if len(mk.X) > 1 && len(mk.X) != len(mk.Y) {
		return fmt.Errorf("x has %d rows but y has %d", len(mk.X), len(mk.Y))
	}
	if len(mk.Y) > 0 && len(mk.X) == 0 {
		return fmt.Errorf("y has %d rows but x is empty", len(mk.Y))
	}
	for i, yr := range mk.Y {
		xr := mk.X[0]
		if len(mk.X) > 1 {
			xr = mk.X[i]
		}
		if len(xr) != len(yr) {
			return fmt.Errorf("row %d: x has %d points but y has %d", i, len(xr), len(yr))
		}
	}
	return nil
}
