// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing, formatting and blending
// for plot styling, where colors are given as CSS color strings.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Standard colors.
var (
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Transparent = color.RGBA{}
)

// FromString returns the color for the given CSS color string,
// which can be a named color ("steelblue"), a hex value
// ("#1f77b4", "#abc", "#1f77b4cc"), or "none" / "transparent".
func FromString(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return Transparent, fmt.Errorf("colors.FromString: unknown color %q", s)
}

// FromHex parses a "#rgb", "#rrggbb" or "#rrggbbaa" hex color.
func FromHex(s string) (color.RGBA, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Transparent, fmt.Errorf("colors.FromHex: bad alpha in %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := cf.RGB255()
	return WithAlpha(color.RGBA{r, g, b, 255}, alpha), nil
}

// WithAlpha returns the given opaque color with the given alpha,
// premultiplying the color channels.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	if alpha == 255 {
		return c
	}
	m := uint16(alpha)
	return color.RGBA{
		uint8(uint16(c.R) * m / 255),
		uint8(uint16(c.G) * m / 255),
		uint8(uint16(c.B) * m / 255),
		alpha,
	}
}

// ApplyOpacity returns the given premultiplied color
// scaled by the given opacity in [0, 1].
func ApplyOpacity(c color.RGBA, opacity float32) color.RGBA {
	if opacity >= 1 {
		return c
	}
	sc := func(v uint8) uint8 { return uint8(float32(v) * max(opacity, 0)) }
	return color.RGBA{sc(c.R), sc(c.G), sc(c.B), sc(c.A)}
}

// BlendString blends the two CSS colors in the perceptually uniform
// CIE-L*a*b* space, with t = 0 giving a and t = 1 giving b,
// and returns the result as a hex string.
func BlendString(a, b string, t float64) (string, error) {
	ca, err := FromString(a)
	if err != nil {
		return "", err
	}
	cb, err := FromString(b)
	if err != nil {
		return "", err
	}
	fa, _ := colorful.MakeColor(ca)
	fb, _ := colorful.MakeColor(cb)
	return fa.BlendLab(fb, t).Clamped().Hex(), nil
}
