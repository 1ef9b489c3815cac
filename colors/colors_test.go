// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{" SteelBlue ", color.RGBA{70, 130, 180, 255}},
		{"#1f77b4", color.RGBA{0x1f, 0x77, 0xb4, 255}},
		{"#fff", White},
		{"none", Transparent},
		{"#ff000080", color.RGBA{128, 0, 0, 128}},
	}
	for _, tt := range tests {
		c, err := FromString(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
	_, err := FromString("notacolor")
	assert.Error(t, err)
	_, err = FromString("#12")
	assert.Error(t, err)
}

func TestApplyOpacity(t *testing.T) {
	assert.Equal(t, color.RGBA{127, 0, 0, 127}, ApplyOpacity(color.RGBA{255, 0, 0, 255}, 0.5))
	assert.Equal(t, Black, ApplyOpacity(Black, 1))
	assert.Equal(t, Transparent, ApplyOpacity(Black, -1))
}

func TestBlendString(t *testing.T) {
	c, err := BlendString("white", "black", 0)
	assert.NoError(t, err)
	assert.Equal(t, "#ffffff", c)
	c, err = BlendString("white", "black", 1)
	assert.NoError(t, err)
	assert.Equal(t, "#000000", c)
	_, err = BlendString("white", "bogus", 0.5)
	assert.Error(t, err)
}

func TestSpaced(t *testing.T) {
	cs := SpacedList(10)
	assert.Len(t, cs, 10)
	seen := map[string]bool{}
	for _, c := range cs[:8] {
		assert.Len(t, c, 7)
		seen[c] = true
	}
	assert.Len(t, seen, 8)
}
