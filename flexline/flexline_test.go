// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexline

import (
	"context"
	"testing"
	"time"

	"cogentcore.org/marks/events"
	"cogentcore.org/marks/figure"
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scale"
	"cogentcore.org/marks/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTest returns a rendered flex line in a 400x300 figure with
// the given scales and the given y data over x = 0, 1, 2, ...
func newTest(t *testing.T, sc model.Scales, labels []string, ys ...[]float64) (*figure.Figure, *FlexLine, *model.Model) {
	t.Helper()
	m := model.New(sc)
	require.NoError(t, m.Set(model.Labels, labels))
	if len(ys) > 0 {
		x := make([]float64, len(ys[0]))
		for i := range x {
			x[i] = float64(i)
		}
		require.NoError(t, m.Set(model.X, x))
		require.NoError(t, m.Set(model.Y, ys))
	}
	m.UpdateData()
	fig := figure.New(400, 300)
	fl := New(fig, m)
	require.NoError(t, fig.AddMark(context.Background(), fl))
	return fig, fl, m
}

func linearScales() model.Scales {
	return model.Scales{X: scale.NewLinear(), Y: scale.NewLinear()}
}

func curveKeys(fl *FlexLine) []string {
	var ks []string
	for _, c := range fl.Group.SelectAll(CurveClass) {
		ks = append(ks, c.Key)
	}
	return ks
}

func TestIdentityScenario(t *testing.T) {
	sc := model.Scales{X: scale.NewIdentity(), Y: scale.NewIdentity()}
	_, fl, _ := newTest(t, sc, nil, []float64{0, 1})

	assert.Equal(t, []string{"C0"}, curveKeys(fl))
	lines := fl.Group.FindAll(LineClass)
	require.Len(t, lines, 1)
	ln := lines[0]
	assert.Equal(t, 0.0, ln.Float("x1"))
	assert.Equal(t, 0.0, ln.Float("y1"))
	assert.Equal(t, 1.0, ln.Float("x2"))
	assert.Equal(t, 1.0, ln.Float("y2"))
	assert.Equal(t, "steelblue", ln.AttrString("stroke"))
	assert.Equal(t, 1.5, ln.Float("stroke-width"))
}

func TestDrawKeysAndCounts(t *testing.T) {
	fig, fl, m := newTest(t, linearScales(), []string{"a", "b"},
		[]float64{0, 1, 2}, []float64{2, 1, 0})

	assert.Equal(t, []string{"a", "b"}, curveKeys(fl))
	for _, c := range fl.Group.SelectAll(CurveClass) {
		assert.Len(t, c.SelectAll(LineClass), 2)
	}

	// pixel endpoints: x domain [0, 2] to [0, 280], y domain [0, 2] to [180, 0]
	a := fl.Group.SelectAll(CurveClass)[0].SelectAll(LineClass)
	assert.InDelta(t, 0, a[0].Float("x1"), 1e-9)
	assert.InDelta(t, 180, a[0].Float("y1"), 1e-9)
	assert.InDelta(t, 140, a[0].Float("x2"), 1e-9)
	assert.InDelta(t, 90, a[0].Float("y2"), 1e-9)

	// fewer segments: stale lines are removed
	require.NoError(t, m.Set(model.Y, [][]float64{{0, 1}, {2, 1, 0}}))
	a = fl.Group.SelectAll(CurveClass)[0].SelectAll(LineClass)
	assert.Len(t, a, 1)
	assert.Len(t, fl.Group.SelectAll(CurveClass)[0].Children, 1)

	// series b exits with a fade
	fig.Duration = 100 * time.Millisecond
	require.NoError(t, m.Set(model.Y, [][]float64{{0, 1, 2}}))
	assert.Equal(t, []string{"a"}, curveKeys(fl))
	assert.Len(t, fl.Group.Children, 2)
	assert.Equal(t, 1, fig.Timeline().NumActive())
	fig.Settle()
	assert.Len(t, fl.Group.Children, 1)
	assert.Equal(t, "a", fl.Group.Children[0].Key)
}

func TestDrawIdempotent(t *testing.T) {
	_, fl, _ := newTest(t, linearScales(), []string{"a", "b"},
		[]float64{0, 1, 2}, []float64{2, 1, 0})
	before := scene.SVGString(fl.Group)
	fl.Draw()
	assert.Equal(t, before, scene.SVGString(fl.Group))
}

func TestColorResolution(t *testing.T) {
	_, fl, m := newTest(t, linearScales(), nil, []float64{0, 1, 2})
	require.NoError(t, m.Set(model.Colors, []string{"red", "blue"}))
	for _, ln := range fl.Group.FindAll(LineClass) {
		assert.Equal(t, "red", ln.AttrString("stroke"))
	}
	require.NoError(t, m.Set(model.Colors, []string{}))
	for _, ln := range fl.Group.FindAll(LineClass) {
		assert.Equal(t, "black", ln.AttrString("stroke"))
	}

	sc := linearScales()
	cs := scale.NewColor("#000000", "#ffffff")
	sc.Color = cs
	_, fl, m = newTest(t, sc, nil, []float64{0, 1, 2})
	require.NoError(t, m.Set(model.Color, [][]float64{{0, 1}}))
	lines := fl.Group.FindAll(LineClass)
	require.Len(t, lines, 2)
	assert.Equal(t, cs.MapColor(0), lines[0].AttrString("stroke"))
	assert.Equal(t, cs.MapColor(1), lines[1].AttrString("stroke"))

	// a range change redraws
	cs.SetColors("#ff0000", "#0000ff")
	assert.Equal(t, cs.MapColor(0), lines[0].AttrString("stroke"))

	// segments without a color value fall back to colors[0]
	require.NoError(t, m.Set(model.Color, [][]float64{{0}}))
	assert.Equal(t, "steelblue", fl.Group.FindAll(LineClass)[1].AttrString("stroke"))
}

func TestWidthResolution(t *testing.T) {
	_, fl, m := newTest(t, linearScales(), nil, []float64{0, 1, 2})
	require.NoError(t, m.Set(model.StrokeWidth, 4))
	for _, ln := range fl.Group.FindAll(LineClass) {
		assert.Equal(t, 4.0, ln.Float("stroke-width"))
	}

	sc := linearScales()
	ws := scale.NewLinear()
	sc.Width = ws
	_, fl, m = newTest(t, sc, nil, []float64{0, 1, 2})
	require.NoError(t, m.Set(model.StrokeWidth, 4))
	require.NoError(t, m.Set(model.Width, [][]float64{{0, 10}}))
	lo, hi := ws.Range()
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 4.0, hi)
	lines := fl.Group.FindAll(LineClass)
	assert.Equal(t, 0.5, lines[0].Float("stroke-width"))
	assert.Equal(t, 4.0, lines[1].Float("stroke-width"))
}

func TestElementFallbacks(t *testing.T) {
	v := 3.0
	sg := model.Segment{Color: &v, Size: &v}
	assert.Equal(t, "black", elementColor(sg, nil, nil))
	assert.Equal(t, "green", elementColor(sg, nil, []string{"green", "red"}))
	assert.Equal(t, 2.0, elementWidth(sg, nil, 2))
	assert.Equal(t, 2.0, elementWidth(model.Segment{}, scale.NewLinear(), 2))
	assert.Equal(t, "red", legendColor([]string{"green", "red"}, 3))
	assert.Equal(t, "black", legendColor(nil, 3))
}

func TestPlanIsPure(t *testing.T) {
	m := model.New(linearScales())
	require.NoError(t, m.Set(model.X, []float64{0, 1}))
	require.NoError(t, m.Set(model.Y, []float64{0, 1}))
	m.UpdateData()
	snap := m.Snapshot()
	p := plan(snap, m.Scales)
	require.Len(t, p, 1)
	m.MarkData[0].Values[0].X2 = 5
	assert.Equal(t, 1.0, snap.MarkData[0].Values[0].X2)
	assert.Equal(t, p, plan(snap, m.Scales))
}

func TestDirtySuppressesRedraw(t *testing.T) {
	fig, fl, m := newTest(t, linearScales(), nil, []float64{0, 1})
	pw, _ := fig.PlotSize()
	ln := fl.Group.FindAll(LineClass)[0]
	assert.Equal(t, pw, ln.Float("x2"))

	require.NoError(t, m.Batch(func() error {
		m.Scales.X.SetDomain(0, 2)
		return nil
	}))
	assert.Equal(t, pw, ln.Float("x2"))

	m.Scales.X.SetDomain(0, 4)
	assert.Equal(t, pw/4, ln.Float("x2"))
}

func TestColorDomainRedrawsWhenDirty(t *testing.T) {
	sc := linearScales()
	cs := scale.NewColor("#000000", "#ffffff")
	sc.Color = cs
	_, fl, m := newTest(t, sc, nil, []float64{0, 1, 2})
	require.NoError(t, m.Set(model.Color, [][]float64{{0, 1}}))
	cs.SetDomain(0, 1)
	lines := fl.Group.FindAll(LineClass)
	require.Len(t, lines, 2)
	white := lines[1].AttrString("stroke")

	require.NoError(t, m.Batch(func() error {
		assert.True(t, m.Dirty())
		cs.SetDomain(0, 2)
		assert.Equal(t, cs.MapColor(1), lines[1].AttrString("stroke"))
		return nil
	}))
	assert.NotEqual(t, white, lines[1].AttrString("stroke"))
}

func TestReorderReusesLines(t *testing.T) {
	_, fl, m := newTest(t, linearScales(), nil, []float64{0, 1, 2})
	before := fl.Group.FindAll(LineClass)
	require.Len(t, before, 2)
	y1 := before[0].Float("y1")

	require.NoError(t, m.Set(model.Y, [][]float64{{2, 1, 0}}))
	after := fl.Group.FindAll(LineClass)
	require.Len(t, after, 2)
	for i := range before {
		assert.Same(t, before[i], after[i])
	}
	assert.NotEqual(t, y1, after[0].Float("y1"))
	assert.Equal(t, m.Scales.Y.Map(2), after[0].Float("y1"))
	assert.Equal(t, m.Scales.Y.Map(0), after[1].Float("y2"))
}

func TestRelayout(t *testing.T) {
	fig, fl, _ := newTest(t, linearScales(), nil, []float64{0, 1})
	fig.Duration = 100 * time.Millisecond
	fig.Resize(520, 300)
	ln := fl.Group.FindAll(LineClass)[0]
	assert.Equal(t, 280.0, ln.Float("x2"))
	assert.Equal(t, 1, fig.Timeline().NumActive())
	fig.Settle()
	assert.Equal(t, 400.0, ln.Float("x2"))
	assert.Len(t, fl.Group.FindAll(LineClass), 1)

	// a draw interrupts the relayout
	fig.Resize(400, 300)
	fl.Draw()
	assert.Equal(t, 0, fig.Timeline().NumActive())
	assert.Equal(t, 280.0, ln.Float("x2"))
}

func TestLegend(t *testing.T) {
	fig, fl, m := newTest(t, linearScales(), []string{"A", "BB", "CCC"},
		[]float64{0, 1}, []float64{1, 0}, []float64{1, 1})
	require.NoError(t, m.Set(model.Colors, []string{"red", "blue"}))

	elem := scene.New("g")
	n, maxLen := fl.DrawLegend(elem, 0, 0, 0, 20)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, maxLen)

	entries := elem.SelectAll(fl.legendClass())
	require.Len(t, entries, 3)
	assert.Equal(t, "translate(0, 20)", entries[1].AttrString("transform"))
	ln := entries[2].SelectAll(LineClass)[0]
	assert.InDelta(t, 16, ln.Float("x2"), 1e-9)
	assert.InDelta(t, 8, ln.Float("y1"), 1e-9)
	assert.Equal(t, "red", ln.Style("stroke"))
	tx := entries[1].SelectAll(LegendTextClass)[0]
	assert.Equal(t, "BB", tx.Text)
	assert.Equal(t, "blue", tx.Style("fill"))
	assert.InDelta(t, 19.2, tx.Float("x"), 1e-9)
	assert.Equal(t, "0.35em", tx.AttrString("dy"))

	// colors update recolors the legend
	require.NoError(t, m.Set(model.Colors, []string{"green"}))
	assert.Equal(t, "green", entries[1].SelectAll(LegendTextClass)[0].Style("fill"))

	// hover highlights the axes
	entries[0].Dispatch(events.NewEvent(events.MouseOver, nil))
	require.Len(t, fig.Axes, 2)
	assert.True(t, fig.Axes[0].IsBold())
	assert.True(t, fig.Axes[1].IsBold())
	entries[0].Dispatch(events.NewEvent(events.MouseOut, nil))
	assert.False(t, fig.Axes[0].IsBold())

	// label visibility
	require.NoError(t, m.Set(model.LabelsVisibility, "label"))
	assert.Equal(t, "none", tx.Style("display"))
	require.NoError(t, m.Set(model.LabelsVisibility, "legend"))
	assert.Equal(t, "", tx.Style("display"))

	// removed series are removed immediately
	require.NoError(t, m.Set(model.Y, [][]float64{{0, 1}}))
	n, _ = fl.DrawLegend(elem, 0, 0, 0, 20)
	assert.Equal(t, 1, n)
	assert.Len(t, elem.Children, 1)
	assert.Equal(t, "A", elem.Children[0].Key)
}

func TestLabelWidth(t *testing.T) {
	assert.Equal(t, 3, LabelWidth("CCC"))
	assert.Equal(t, 2, LabelWidth("<b>x</b>²"))
	assert.Equal(t, 4, LabelWidth("日本"))
	assert.Equal(t, 0, LabelWidth(""))
}

func TestVisibleAndRemove(t *testing.T) {
	fig, fl, m := newTest(t, linearScales(), nil, []float64{0, 1})
	require.NoError(t, m.Set(model.Visible, false))
	assert.Equal(t, "none", fl.Group.Style("display"))
	require.NoError(t, m.Set(model.Visible, true))
	assert.True(t, fl.Group.IsDisplayed())

	assert.Equal(t, 1, m.NumListeners(events.Change(model.X)))
	fig.RemoveMark(fl)
	assert.Equal(t, 0, m.NumListeners(events.Change(model.X)))
	assert.Empty(t, fig.MarkLayer().Children)
	assert.False(t, fl.IsRendered())
}
