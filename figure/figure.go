// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure provides [Figure], the container that marks are
// rendered in. It owns the scene graph, the transition timeline,
// the axes of the mark scales and the shared legend.
package figure

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/marks/events"
	"cogentcore.org/marks/mark"
	"cogentcore.org/marks/raster"
	"cogentcore.org/marks/scale"
	"cogentcore.org/marks/scene"
)

// Margins are the space around the plot area, in pixels.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// DefaultMargins are the default figure margins.
var DefaultMargins = Margins{Top: 60, Bottom: 60, Left: 60, Right: 60}

// LegendRowHeight is the vertical displacement between legend rows.
const LegendRowHeight = 20.0

// Figure is a plot figure holding marks and their axes.
// It implements [mark.Parent]. It is not safe for concurrent use.
type Figure struct {

	// Width and Height are the figure size in pixels.
	Width, Height int

	// Margins are the margins around the plot area.
	Margins Margins

	// Duration is the duration of mark transitions.
	Duration time.Duration

	// Root is the root svg node.
	Root *scene.Node

	// Marks are the marks in the figure, in drawing order.
	Marks []mark.Mark

	// Axes are the axes of the mark scales.
	Axes []*Axis

	marks    *scene.Node
	axes     *scene.Node
	legend   *scene.Node
	timeline *scene.Timeline

	// legendGroups are the legend groups of the marks
	// that display a legend.
	legendGroups map[mark.Mark]*scene.Node

	subs events.Subscriptions
}

var _ mark.Parent = (*Figure)(nil)

// New returns a new figure of the given size with default margins.
func New(width, height int) *Figure {
	f := &Figure{Width: width, Height: height, Margins: DefaultMargins,
		timeline: scene.NewTimeline(), legendGroups: map[mark.Mark]*scene.Node{}}
	f.Root = scene.New("svg").
		SetAttr("xmlns", "http://www.w3.org/2000/svg")
	f.Root.Append("rect").SetClass("background").SetAttr("fill", "white")
	f.marks = f.Root.Append("g").SetClass("marks")
	f.axes = f.Root.Append("g").SetClass("axes")
	f.legend = f.Root.Append("g").SetClass("legend")
	f.layout()
	return f
}

// AnimationDuration returns the duration of mark transitions.
func (f *Figure) AnimationDuration() time.Duration {
	return f.Duration
}

// Timeline returns the figure transition timeline.
func (f *Figure) Timeline() *scene.Timeline {
	return f.timeline
}

// MarkLayer returns the group that marks are drawn in.
func (f *Figure) MarkLayer() *scene.Node {
	return f.marks
}

// LegendLayer returns the group that legends are drawn in.
func (f *Figure) LegendLayer() *scene.Node {
	return f.legend
}

// PlotSize returns the size of the plot area inside the margins.
func (f *Figure) PlotSize() (w, h float64) {
	w = max(float64(f.Width)-f.Margins.Left-f.Margins.Right, 0)
	h = max(float64(f.Height)-f.Margins.Top-f.Margins.Bottom, 0)
	return
}

// PaddedRange returns the pixel range for the given dimension:
// [0, plot width] for "x" and [plot height, 0] for "y".
func (f *Figure) PaddedRange(dim string) (lo, hi float64) {
	w, h := f.PlotSize()
	if dim == "y" {
		return h, 0
	}
	return 0, w
}

// layout sets the root size and the plot area offsets.
func (f *Figure) layout() {
	f.Root.SetAttr("width", float64(f.Width)).SetAttr("height", float64(f.Height))
	if bg := f.Root.SelectAll("background"); len(bg) > 0 {
		bg[0].SetAttr("width", float64(f.Width)).SetAttr("height", float64(f.Height))
	}
	tr := translate(f.Margins.Left, f.Margins.Top)
	f.marks.SetAttr("transform", tr)
	f.axes.SetAttr("transform", tr)
}

// AddMark adds the given mark, rendering it, adding axes for its x
// and y scales, and updating the legend.
func (f *Figure) AddMark(ctx context.Context, m mark.Mark) error {
	if err := m.Render(ctx); err != nil {
		return fmt.Errorf("figure.AddMark: %w", err)
	}
	f.Marks = append(f.Marks, m)
	sc := m.Model().Scales
	f.addAxis(sc.X, "x")
	f.addAxis(sc.Y, "y")
	f.UpdateLegend()
	return nil
}

// RemoveMark removes the given mark and its legend entries.
func (f *Figure) RemoveMark(m mark.Mark) {
	i := slices.Index(f.Marks, m)
	if i < 0 {
		return
	}
	f.Marks = slices.Delete(f.Marks, i, i+1)
	m.Remove()
	if g := f.legendGroups[m]; g != nil {
		g.Remove()
		delete(f.legendGroups, m)
	}
	f.UpdateLegend()
}

// Resize sets the figure size and relayouts the axes, marks and legend.
func (f *Figure) Resize(width, height int) {
	if width == f.Width && height == f.Height {
		return
	}
	f.Width, f.Height = width, height
	f.layout()
	// marks set the scale ranges the axes are drawn with
	for _, m := range f.Marks {
		m.Relayout()
	}
	for _, ax := range f.Axes {
		ax.Draw(f)
	}
	f.UpdateLegend()
	slog.Debug("figure resized", "width", width, "height", height)
}

// UpdateLegend redraws the legend rows of all marks that display a
// legend, stacked vertically, and sizes the legend box to fit them.
func (f *Figure) UpdateLegend() {
	yDisp := 0.0
	rows, maxLen := 0, 0
	for _, m := range f.Marks {
		g := f.legendGroups[m]
		if !m.Model().DisplaysLegend() {
			if g != nil {
				g.Remove()
				delete(f.legendGroups, m)
			}
			continue
		}
		if g == nil {
			g = f.legend.Append("g").SetClass("mark-legend")
			f.legendGroups[m] = g
		}
		n, ml := m.DrawLegend(g, 0, yDisp, 0, LegendRowHeight)
		yDisp += float64(n) * LegendRowHeight
		rows += n
		maxLen = max(maxLen, ml)
	}
	f.layoutLegend(rows, maxLen)
}

// layoutLegend places the legend box at the top right of
// the plot area, sized for the given rows and label length.
func (f *Figure) layoutLegend(rows, maxLen int) {
	box := f.legend.SelectAll("legend-box")
	if rows == 0 {
		for _, b := range box {
			b.Remove()
		}
		return
	}
	var bg *scene.Node
	if len(box) == 0 {
		bg = scene.New("rect").SetClass("legend-box")
		bg.Parent = f.legend
		f.legend.Children = append([]*scene.Node{bg}, f.legend.Children...)
	} else {
		bg = box[0]
	}
	d := 0.8 * LegendRowHeight
	w := 1.2*d + float64(maxLen)*float64(raster.TextWidth("0")) + 10
	h := float64(rows) * LegendRowHeight
	bg.SetAttr("x", -5.0).SetAttr("y", -5.0).
		SetAttr("width", w).SetAttr("height", h+5).
		SetAttr("fill", "white").SetAttr("stroke", "lightgray")
	pw, _ := f.PlotSize()
	f.legend.SetAttr("transform", translate(f.Margins.Left+pw-w, f.Margins.Top))
}

// SetAxisBold sets whether the axis of the given scale is highlighted.
func (f *Figure) SetAxisBold(sc scale.Scale, bold bool) {
	for _, ax := range f.Axes {
		if ax.Scale == sc {
			ax.SetBold(bold)
		}
	}
}

// Settle finishes all running transitions.
func (f *Figure) Settle() {
	f.timeline.Settle()
}

// WriteSVG writes the figure as an SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	return scene.WriteSVG(w, f.Root)
}

// RenderImage renders the figure to an image.
func (f *Figure) RenderImage() *image.RGBA {
	return raster.Render(f.Root, image.Pt(f.Width, f.Height))
}

// Close removes all marks and releases the axis subscriptions.
func (f *Figure) Close() {
	for _, m := range slices.Clone(f.Marks) {
		f.RemoveMark(m)
	}
	f.subs.Release()
}

func translate(x, y float64) string {
	return "translate(" + scene.FormatValue(x) + ", " + scene.FormatValue(y) + ")"
}
