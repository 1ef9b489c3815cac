// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexline

import (
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scale"
)

// curvePlan is the desired state of one curve group.
type curvePlan struct {
	Name  string
	Lines []linePlan
}

// linePlan is the desired state of one line element, in pixels.
type linePlan struct {
	Segment model.Segment

	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
}

// plan computes the desired curve groups and line elements for the
// given model state and scales. It has no side effects.
func plan(snap model.Snapshot, sc model.Scales) []curvePlan {
	p := make([]curvePlan, len(snap.MarkData))
	for i, sr := range snap.MarkData {
		cp := curvePlan{Name: sr.Name, Lines: make([]linePlan, len(sr.Values))}
		for j, sg := range sr.Values {
			cp.Lines[j] = linePlan{
				Segment:     sg,
				X1:          sc.X.Map(sg.X1),
				X2:          sc.X.Map(sg.X2),
				Y1:          sc.Y.Map(sg.Y1),
				Y2:          sc.Y.Map(sg.Y2),
				Stroke:      elementColor(sg, sc.Color, snap.Colors),
				StrokeWidth: elementWidth(sg, sc.Width, snap.StrokeWidth),
			}
		}
		p[i] = cp
	}
	return p
}

// elementColor returns the stroke color of a segment: the color scale
// value of its color if both are present, and otherwise the first of
// the colors, or black if there are none.
func elementColor(sg model.Segment, cs *scale.Color, colors []string) string {
	if cs != nil && sg.Color != nil {
		return cs.MapColor(*sg.Color)
	}
	if len(colors) == 0 {
		return "black"
	}
	return colors[0]
}

// elementWidth returns the stroke width of a segment: the width scale
// value of its size if both are present, and otherwise strokeWidth.
func elementWidth(sg model.Segment, ws scale.Scale, strokeWidth float64) float64 {
	if ws != nil && sg.Size != nil {
		return ws.Map(*sg.Size)
	}
	return strokeWidth
}

// legendColor returns the legend color of entry i, cycling through
// the colors, or black if there are none.
func legendColor(colors []string, i int) string {
	if len(colors) == 0 {
		return "black"
	}
	return colors[i%len(colors)]
}
