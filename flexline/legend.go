// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexline

import (
	"fmt"

	"cogentcore.org/marks/events"
	"cogentcore.org/marks/scene"
	strip "github.com/grokify/html-strip-tags-go"
	"golang.org/x/text/width"
)

func (fl *FlexLine) legendClass() string {
	return "legend" + fl.UUID
}

// DrawLegend reconciles one legend entry per series inside elem,
// keyed by series name. Entry i is placed at yDisp + i*interYDisp and
// has a sample line and a label in the i-th color. Entries for removed
// series are removed immediately. It returns the number of series and
// the display width of the longest label.
func (fl *FlexLine) DrawLegend(elem *scene.Node, xDisp, yDisp, interXDisp, interYDisp float64) (int, int) {
	fl.legend = elem
	m := fl.Model()
	keys := make([]string, len(m.MarkData))
	for i, sr := range m.MarkData {
		keys[i] = sr.Name
	}
	d := 0.8 * interYDisp
	entries := elem.JoinKeyed("g", fl.legendClass(), keys, func(c *scene.Node, i int) {
		c.On(events.MouseOver, fl.MakeAxisBold)
		c.On(events.MouseOut, fl.MakeAxisNonBold)
		c.Append("line").SetClass(LineClass)
		c.Append("text").SetClass(LegendTextClass)
	}, nil)

	colors := m.ColorList()
	labels := m.LabelList()
	for i, e := range entries {
		c := legendColor(colors, i)
		e.SetAttr("transform", fmt.Sprintf("translate(0, %s)", scene.FormatValue(float64(i)*interYDisp+yDisp)))
		for _, ln := range e.SelectAll(LineClass) {
			ln.SetAttr("x1", 0.0).SetAttr("x2", d).
				SetAttr("y1", d/2).SetAttr("y2", d/2).
				SetStyle("stroke", c).
				SetStyle("stroke-width", scene.FormatValue(m.StrokeWidthValue()))
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		for _, tx := range e.SelectAll(LegendTextClass) {
			tx.SetAttr("x", 1.2*d).SetAttr("y", d/2).SetAttr("dy", "0.35em").
				SetText(label).SetStyle("fill", c)
		}
		fl.showLegendText(e)
	}

	maxLen := 0
	for _, l := range labels {
		maxLen = max(maxLen, LabelWidth(l))
	}
	return len(m.MarkData), maxLen
}

// LabelWidth returns the display width of a label in character
// cells, ignoring any HTML tags. East Asian wide and fullwidth
// characters count as two cells.
func LabelWidth(label string) int {
	n := 0
	for _, r := range strip.StripTags(label) {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
