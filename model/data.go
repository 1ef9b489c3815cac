// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"strconv"

	"cogentcore.org/marks/base/errors"
	"cogentcore.org/marks/scale"
	"github.com/jinzhu/copier"
)

// Segment is the data for one line segment, in data-space units.
type Segment struct {
	X1, Y1, X2, Y2 float64

	// Color is the optional value mapped through the color scale.
	Color *float64

	// Size is the optional value mapped through the width scale.
	Size *float64
}

// Series is a named list of segments, drawn as one group and
// shown as one legend entry. Name is its stable identity.
type Series struct {
	Name   string
	Values []Segment
}

// SeriesName returns the name of series i: the label at that
// index if there is a non-empty one, and "C<i>" otherwise.
func SeriesName(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return "C" + strconv.Itoa(i)
}

// UpdateData recomputes [Model.MarkData] from the x, y, color, width
// and labels attributes and then updates the scale domains, all with
// the model marked dirty. It sends [DataUpdated] when done.
//
// Curve i uses row i of y and row i of x, or row 0 of x when x has a
// single row. Segment j joins points j and j+1. Color and width values
// at [i][j] become the segment overrides when present and not NaN.
func (m *Model) UpdateData() {
	wasDirty := m.dirty
	m.dirty = true
	xs, ys := m.Data(X), m.Data(Y)
	cs, ws := m.Data(Color), m.Data(Width)
	labels := m.LabelList()

	md := make([]Series, len(ys))
	for i, yr := range ys {
		var xr []float64
		switch {
		case i < len(xs):
			xr = xs[i]
		case len(xs) == 1:
			xr = xs[0]
		}
		np := min(len(xr), len(yr))
		sr := Series{Name: SeriesName(labels, i), Values: make([]Segment, max(np-1, 0))}
		for j := range sr.Values {
			sr.Values[j] = Segment{
				X1: xr[j], Y1: yr[j], X2: xr[j+1], Y2: yr[j+1],
				Color: at(cs, i, j),
				Size:  at(ws, i, j),
			}
		}
		md[i] = sr
	}
	m.MarkData = md
	m.UpdateDomains()
	m.dirty = wasDirty
	m.Send(DataUpdated, m)
}

// at returns a pointer to a copy of d[i][j], or nil if it is
// out of range or NaN.
func at(d [][]float64, i, j int) *float64 {
	if i >= len(d) || j >= len(d[i]) || math.IsNaN(d[i][j]) {
		return nil
	}
	v := d[i][j]
	return &v
}

// UpdateDomains sets the domains of the scales from the extents
// of the current mark data.
func (m *Model) UpdateDomains() {
	var xs, ys, cs, ws []float64
	for _, sr := range m.MarkData {
		for _, sg := range sr.Values {
			xs = append(xs, sg.X1, sg.X2)
			ys = append(ys, sg.Y1, sg.Y2)
			if sg.Color != nil {
				cs = append(cs, *sg.Color)
			}
			if sg.Size != nil {
				ws = append(ws, *sg.Size)
			}
		}
	}
	sc := m.Scales
	if sc.X != nil {
		sc.X.UpdateDomain(scale.Extent(xs))
	}
	if sc.Y != nil {
		sc.Y.UpdateDomain(scale.Extent(ys))
	}
	if sc.Color != nil {
		sc.Color.UpdateDomain(scale.Extent(cs))
	}
	if sc.Width != nil {
		sc.Width.UpdateDomain(scale.Extent(ws))
	}
}

// Snapshot is a deep copy of the model state that a view reads
// while planning a draw, so that planning is independent of any
// later mutation of the model.
type Snapshot struct {
	MarkData         []Series
	Colors           []string
	Labels           []string
	LabelsVisibility string
	StrokeWidth      float64
	Visible          bool
}

// Snapshot returns a deep copy of the current model state.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{
		LabelsVisibility: m.LabelsVisibilityValue(),
		StrokeWidth:      m.StrokeWidthValue(),
		Visible:          m.IsVisible(),
	}
	src := struct {
		MarkData []Series
		Colors   []string
		Labels   []string
	}{m.MarkData, m.ColorList(), m.LabelList()}
	dst := struct {
		MarkData []Series
		Colors   []string
		Labels   []string
	}{}
	errors.Log(copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}))
	snap.MarkData, snap.Colors, snap.Labels = dst.MarkData, dst.Colors, dst.Labels
	return snap
}
