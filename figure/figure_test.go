// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cogentcore.org/marks/figure"
	"cogentcore.org/marks/flexline"
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLine(t *testing.T, fig *figure.Figure, labels ...string) (*flexline.FlexLine, *model.Model) {
	t.Helper()
	m := model.New(model.Scales{X: scale.NewLinear(), Y: scale.NewLinear()})
	ys := make([][]float64, len(labels))
	for i := range ys {
		ys[i] = []float64{float64(i), float64(i + 1)}
	}
	require.NoError(t, m.Set(model.Labels, labels))
	require.NoError(t, m.Set(model.X, []float64{0, 1}))
	require.NoError(t, m.Set(model.Y, ys))
	require.NoError(t, m.Set(model.DisplayLegend, true))
	m.UpdateData()
	fl := flexline.New(fig, m)
	require.NoError(t, fig.AddMark(context.Background(), fl))
	return fl, m
}

func TestPaddedRange(t *testing.T) {
	fig := figure.New(400, 300)
	lo, hi := fig.PaddedRange("x")
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 280.0, hi)
	lo, hi = fig.PaddedRange("y")
	assert.Equal(t, 180.0, lo)
	assert.Equal(t, 0.0, hi)

	fig.Margins = figure.Margins{}
	fig.Resize(100, 50)
	_, hi = fig.PaddedRange("x")
	assert.Equal(t, 100.0, hi)
}

func TestLegendStacking(t *testing.T) {
	fig := figure.New(400, 300)
	_, m1 := newLine(t, fig, "a", "bb")
	newLine(t, fig, "ccc")

	groups := fig.LegendLayer().SelectAll("mark-legend")
	require.Len(t, groups, 2)
	// second mark's rows start below the first mark's two rows
	second := groups[1].Children[0]
	assert.Equal(t, "translate(0, 40)", second.AttrString("transform"))
	box := fig.LegendLayer().SelectAll("legend-box")
	require.Len(t, box, 1)
	assert.Equal(t, 65.0, box[0].Float("height"))

	require.NoError(t, m1.Set(model.DisplayLegend, false))
	assert.Len(t, fig.LegendLayer().SelectAll("mark-legend"), 1)
	assert.Equal(t, 25.0, fig.LegendLayer().SelectAll("legend-box")[0].Float("height"))

	// changing labels rekeys the legend
	require.NoError(t, m1.Set(model.DisplayLegend, true))
	require.NoError(t, m1.Set(model.Labels, []string{"x", "y"}))
	g := fig.LegendLayer().SelectAll("mark-legend")
	var keys []string
	for _, e := range g[len(g)-1].Children {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestAxes(t *testing.T) {
	fig := figure.New(400, 300)
	fl, m := newLine(t, fig, "a")
	require.Len(t, fig.Axes, 2)
	x := fig.Axes[0]
	assert.Equal(t, "x", x.Dim)
	assert.Equal(t, "translate(0, 180)", x.Node.AttrString("transform"))
	ticks := x.Node.SelectAll("tick")
	require.Len(t, ticks, figure.NumTicks+1)
	assert.Equal(t, "0", ticks[0].Children[1].Text)
	assert.Equal(t, "1", ticks[figure.NumTicks].Children[1].Text)

	m.Scales.X.SetDomain(0, 10)
	assert.Equal(t, "10", ticks[figure.NumTicks].Children[1].Text)

	fig.SetAxisBold(m.Scales.X, true)
	assert.Equal(t, "bold", x.Node.Style("font-weight"))
	assert.False(t, fig.Axes[1].IsBold())
	fig.SetAxisBold(m.Scales.X, false)
	assert.Equal(t, "", x.Node.Style("font-weight"))

	// a second mark on the same scales shares the axes
	fl2 := flexline.New(fig, m)
	require.NoError(t, fig.AddMark(context.Background(), fl2))
	assert.Len(t, fig.Axes, 2)
	fig.RemoveMark(fl)
	assert.Len(t, fig.Marks, 1)
}

func TestResizeAxes(t *testing.T) {
	fig := figure.New(400, 300)
	newLine(t, fig, "a")
	x, y := fig.Axes[0], fig.Axes[1]

	fig.Resize(520, 400)
	fig.Settle()
	xt := x.Node.SelectAll("tick")
	require.Len(t, xt, figure.NumTicks+1)
	assert.Equal(t, "translate(400, 0)", xt[figure.NumTicks].AttrString("transform"))
	assert.Equal(t, 400.0, x.Node.SelectAll("domain")[0].Float("x2"))
	yt := y.Node.SelectAll("tick")
	require.Len(t, yt, figure.NumTicks+1)
	assert.Equal(t, "translate(0, 280)", yt[0].AttrString("transform"))
	assert.Equal(t, "translate(0, 0)", yt[figure.NumTicks].AttrString("transform"))
}

func TestOutput(t *testing.T) {
	fig := figure.New(200, 150)
	newLine(t, fig, "a")
	var b bytes.Buffer
	require.NoError(t, fig.WriteSVG(&b))
	svg := b.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `class="line-elem"`)
	assert.Contains(t, svg, `class="legendtext"`)

	img := fig.RenderImage()
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	fig.Close()
	assert.Empty(t, fig.Marks)
	assert.Empty(t, fig.MarkLayer().Children)
}
