// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/marks/colors"
	"cogentcore.org/marks/scene"
	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	root := scene.New("svg")
	g := root.Append("g").SetAttr("transform", "translate(10, 5)")
	g.Append("line").SetAttr("x1", 0.0).SetAttr("y1", 10.0).SetAttr("x2", 40.0).SetAttr("y2", 10.0).
		SetAttr("stroke", "red").SetAttr("stroke-width", 4.0)

	img := Render(root, image.Pt(64, 32))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(30, 15))
	assert.Equal(t, colors.White, img.RGBAAt(30, 25))
	assert.Equal(t, colors.White, img.RGBAAt(5, 15), "translate moves the line right")
}

func TestHiddenAndOpacity(t *testing.T) {
	root := scene.New("svg")
	hidden := root.Append("g").SetStyle("display", "none")
	hidden.Append("rect").SetAttr("width", 10.0).SetAttr("height", 10.0).SetAttr("fill", "black")
	faded := root.Append("g").SetAttr("opacity", 0.0)
	faded.Append("rect").SetAttr("width", 10.0).SetAttr("height", 10.0).SetAttr("fill", "black")
	half := root.Append("rect").SetAttr("x", 20.0).SetAttr("width", 10.0).SetAttr("height", 10.0).
		SetAttr("fill", "black").SetAttr("opacity", 0.5)
	_ = half

	img := Render(root, image.Pt(32, 16))
	assert.Equal(t, colors.White, img.RGBAAt(5, 5))
	c := img.RGBAAt(25, 5)
	assert.InDelta(t, 128, int(c.R), 2)
}

func TestText(t *testing.T) {
	root := scene.New("svg")
	root.Append("text").SetAttr("x", 2.0).SetAttr("y", 10.0).SetAttr("dy", "0.35em").
		SetText("MMMM").SetStyle("fill", "black")
	img := Render(root, image.Pt(64, 24))
	dark := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 10)
	assert.Greater(t, TextWidth("MMMM"), TextWidth("M"))
}

func TestWritePNG(t *testing.T) {
	root := scene.New("svg")
	var b bytes.Buffer
	require.NoError(t, WritePNG(&b, root, image.Pt(8, 8)))
	kind, err := filetype.Match(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "image/png", kind.MIME.Value)
}

func TestTranslate(t *testing.T) {
	x, y := Translate("translate(0, 20.5)")
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(20.5), y)
	x, y = Translate("translate(7)")
	assert.Equal(t, float32(7), x)
	assert.Equal(t, float32(0), y)
	x, y = Translate("scale(2)")
	assert.Equal(t, float32(0), x+y)
}

func TestLength(t *testing.T) {
	assert.Equal(t, float32(6), Length("0.5em", 12))
	assert.Equal(t, float32(3), Length("3px", 12))
	assert.Equal(t, float32(3), Length("3", 12))
	assert.Equal(t, float32(0), Length("", 12))
}
