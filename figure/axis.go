// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"
	"strconv"

	"cogentcore.org/marks/events"
	"cogentcore.org/marks/scale"
	"cogentcore.org/marks/scene"
)

// NumTicks is the number of tick intervals on an axis.
const NumTicks = 4

// Axis is the axis drawn for one scale.
type Axis struct {

	// Scale is the scale the axis shows.
	Scale scale.Scale

	// Dim is the dimension of the axis, "x" or "y".
	Dim string

	// Node is the axis group.
	Node *scene.Node

	bold bool
}

// addAxis adds an axis for the given scale if it is non-nil
// and does not already have one.
func (f *Figure) addAxis(sc scale.Scale, dim string) {
	if sc == nil {
		return
	}
	for _, ax := range f.Axes {
		if ax.Scale == sc {
			return
		}
	}
	ax := &Axis{Scale: sc, Dim: dim, Node: f.axes.Append("g").SetClass("axis")}
	ax.Node.Key = dim
	f.Axes = append(f.Axes, ax)
	f.subs.Add(sc.Events().On(events.DomainChanged, func(ev *events.Event) { ax.Draw(f) }))
	ax.Draw(f)
}

// Draw draws the axis line and ticks for the current scale.
func (ax *Axis) Draw(f *Figure) {
	pw, ph := f.PlotSize()
	if ax.Dim == "x" {
		ax.Node.SetAttr("transform", translate(0, ph))
	}
	dom := ax.Node.JoinIndexed("line", "domain", 1, nil, nil)[0]
	if ax.Dim == "x" {
		dom.SetAttr("x1", 0.0).SetAttr("x2", pw).SetAttr("y1", 0.0).SetAttr("y2", 0.0)
	} else {
		dom.SetAttr("x1", 0.0).SetAttr("x2", 0.0).SetAttr("y1", 0.0).SetAttr("y2", ph)
	}
	dom.SetAttr("stroke", "black")

	lo, hi := ax.Scale.Domain()
	nt := NumTicks + 1
	if math.IsNaN(lo) || math.IsNaN(hi) {
		nt = 0
	}
	ticks := ax.Node.JoinIndexed("g", "tick", nt, func(c *scene.Node, i int) {
		c.Append("line").SetAttr("stroke", "black")
		c.Append("text").SetAttr("fill", "black")
	}, nil)
	for i, tk := range ticks {
		v := lo + float64(i)*(hi-lo)/NumTicks
		p := ax.Scale.Map(v)
		ln, tx := tk.Children[0], tk.Children[1]
		if ax.Dim == "x" {
			tk.SetAttr("transform", translate(p, 0))
			ln.SetAttr("y2", 6.0)
			tx.SetAttr("y", 9.0).SetAttr("dy", "0.71em").SetAttr("text-anchor", "middle")
		} else {
			tk.SetAttr("transform", translate(0, p))
			ln.SetAttr("x2", -6.0)
			tx.SetAttr("x", -9.0).SetAttr("dy", "0.32em").SetAttr("text-anchor", "end")
		}
		tx.SetText(strconv.FormatFloat(v, 'g', 3, 64))
	}
	ax.SetBold(ax.bold)
}

// SetBold sets whether the axis is highlighted.
func (ax *Axis) SetBold(bold bool) {
	ax.bold = bold
	if bold {
		ax.Node.SetStyle("font-weight", "bold")
	} else {
		ax.Node.SetStyle("font-weight", "")
	}
}

// IsBold returns whether the axis is highlighted.
func (ax *Axis) IsBold() bool {
	return ax.bold
}
