// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"slices"

	"cogentcore.org/marks/base/errors"
	"cogentcore.org/marks/colors"
	"cogentcore.org/marks/events"
)

// DefaultColors is the default color scheme of a [Color] scale.
var DefaultColors = []string{"#ffffff", "#1f77b4"}

// Color maps data values to CSS colors, by interpolating between
// an ordered list of colors spread evenly over the domain.
// Values outside of the domain are clamped.
type Color struct {
	Base

	colors []string
}

// NewColor returns a new color scale with domain [0, 1]
// and the given colors, or [DefaultColors] if none are given.
func NewColor(cs ...string) *Color {
	c := &Color{}
	c.this = c
	c.domain = [2]float64{0, 1}
	if len(cs) == 0 {
		cs = DefaultColors
	}
	c.colors = slices.Clone(cs)
	return c
}

// Colors returns the color scheme.
func (c *Color) Colors() []string {
	return c.colors
}

// SetColors sets the color scheme, sending [events.ColorRangeChanged]
// if it changed.
func (c *Color) SetColors(cs ...string) {
	if slices.Equal(cs, c.colors) {
		return
	}
	c.colors = slices.Clone(cs)
	c.Send(events.ColorRangeChanged, c)
}

// MapColor returns the color for the given data value.
func (c *Color) MapColor(v float64) string {
	n := len(c.colors)
	switch {
	case n == 0:
		return "black"
	case n == 1 || math.IsNaN(v):
		return c.colors[0]
	}
	t := min(max(normalize(v, c.domain[0], c.domain[1]), 0), 1)
	seg := t * float64(n-1)
	i := min(int(seg), n-2)
	cs, err := colors.BlendString(c.colors[i], c.colors[i+1], seg-float64(i))
	if errors.Log(err) != nil {
		return c.colors[i]
	}
	return cs
}

// Map returns the normalized position of v in the domain,
// so that a Color scale can stand in where a [Scale] is expected.
func (c *Color) Map(v float64) float64 {
	return min(max(normalize(v, c.domain[0], c.domain[1]), 0), 1)
}
