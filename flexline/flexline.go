// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flexline provides the flex line mark, which draws each
// series as a set of independently styled line segments. Segment
// colors and widths can vary along a series through optional color
// and width scales.
package flexline

import (
	"context"
	"log/slog"

	"cogentcore.org/marks/events"
	"cogentcore.org/marks/mark"
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scene"
)

// Scene classes used by the flex line.
const (
	CurveClass      = "curve"
	LineClass       = "line-elem"
	LegendTextClass = "legendtext"
)

// Transition names.
const (
	drawTransition     = "draw"
	relayoutTransition = "relayout"
)

// FlexLine is the flex line mark.
type FlexLine struct {
	mark.Base

	// legend is the legend element last passed to DrawLegend.
	legend *scene.Node

	// legendTextHidden is whether the legend label texts are hidden,
	// as set by the last labels_visibility change.
	legendTextHidden bool
}

var _ mark.Mark = (*FlexLine)(nil)

// New returns a new flex line in the given parent, bound to the given
// model. It is not drawn until [FlexLine.Render] is called.
func New(p mark.Parent, m *model.Model) *FlexLine {
	fl := &FlexLine{}
	fl.Init(p, m)
	return fl
}

// Render creates the mark group, subscribes to the model and scale
// events, and draws the mark.
func (fl *FlexLine) Render(ctx context.Context) error {
	if fl.IsRendered() {
		return nil
	}
	if err := fl.Base.Render(ctx); err != nil {
		return err
	}
	fl.CreateListeners()
	fl.Draw()
	return nil
}

// SetRanges sets the x and y ranges from the parent, and the width
// scale range, if there is a width scale, to [0.5, stroke_width].
func (fl *FlexLine) SetRanges() {
	fl.Base.SetRanges()
	if ws := fl.Scales().Width; ws != nil {
		ws.SetRange(0.5, fl.Model().StrokeWidthValue())
	}
}

// CreateListeners subscribes to the model attributes and scale
// events that the flex line reacts to.
func (fl *FlexLine) CreateListeners() {
	fl.ListenModel(func(ev *events.Event) { fl.updateColors() }, model.Colors)
	fl.ListenModel(func(ev *events.Event) { fl.updateLegendLabels() }, model.LabelsVisibility)
	fl.ListenModel(func(ev *events.Event) { fl.updateAndDraw() },
		model.Color, model.Width, model.X, model.Y, model.Labels)
	fl.ListenModel(func(ev *events.Event) { fl.Draw() }, model.StrokeWidth)
	fl.Base.CreateListeners()
	fl.setPositionalScales()
	fl.initializeAdditionalScales()
}

// setPositionalScales redraws on x and y domain changes, except
// while the model is updating its data.
func (fl *FlexLine) setPositionalScales() {
	sc := fl.Scales()
	redraw := func(ev *events.Event) {
		if !fl.Model().Dirty() {
			fl.Draw()
		}
	}
	if sc.X != nil {
		fl.Listen(sc.X.Events(), events.DomainChanged, redraw)
	}
	if sc.Y != nil {
		fl.Listen(sc.Y.Events(), events.DomainChanged, redraw)
	}
}

// initializeAdditionalScales redraws on color scale changes.
func (fl *FlexLine) initializeAdditionalScales() {
	cs := fl.Scales().Color
	if cs == nil {
		return
	}
	redraw := func(ev *events.Event) { fl.Draw() }
	fl.Listen(cs.Events(), events.DomainChanged, redraw)
	fl.Listen(cs.Events(), events.ColorRangeChanged, redraw)
}

// updateAndDraw recomputes the mark data and draws it.
func (fl *FlexLine) updateAndDraw() {
	fl.Model().UpdateData()
	fl.Draw()
}

// Draw reconciles the curve groups and their line elements with
// the current mark data.
func (fl *FlexLine) Draw() {
	if !fl.IsRendered() {
		return
	}
	fl.SetRanges()
	fl.apply(plan(fl.Model().Snapshot(), fl.Scales()))
}

// apply reconciles the mark group to the given plan.
func (fl *FlexLine) apply(p []curvePlan) {
	tl := fl.Parent.Timeline()
	dur := fl.AnimationDuration()
	keys := make([]string, len(p))
	for i, cp := range p {
		keys[i] = cp.Name
	}
	curves := fl.Group.JoinKeyed("g", CurveClass, keys, nil, func(c *scene.Node) {
		tl.Transition(c, drawTransition, dur).Attr("opacity", 0.0).Remove()
	})
	for i, curve := range curves {
		cp := p[i]
		lines := curve.JoinIndexed("line", LineClass, len(cp.Lines), nil, nil)
		for j, ln := range lines {
			lp := cp.Lines[j]
			tl.Interrupt(ln, relayoutTransition)
			ln.Datum = lp.Segment
			ln.SetAttr("x1", lp.X1).SetAttr("x2", lp.X2).
				SetAttr("y1", lp.Y1).SetAttr("y2", lp.Y2).
				SetAttr("stroke", lp.Stroke).SetAttr("stroke-width", lp.StrokeWidth)
		}
	}
	slog.Debug("flexline drawn", "mark", fl.UUID, "curves", len(curves))
}

// Relayout sets the ranges and moves the endpoints of all existing
// line elements to their new positions with a transition.
func (fl *FlexLine) Relayout() {
	fl.Base.Relayout()
	if !fl.IsRendered() {
		return
	}
	fl.SetRanges()
	sc := fl.Scales()
	tl := fl.Parent.Timeline()
	dur := fl.AnimationDuration()
	for _, ln := range fl.Group.FindAll(LineClass) {
		sg, ok := ln.Datum.(model.Segment)
		if !ok || ln.IsExiting() {
			continue
		}
		tl.Transition(ln, relayoutTransition, dur).
			Attr("x1", sc.X.Map(sg.X1)).Attr("x2", sc.X.Map(sg.X2)).
			Attr("y1", sc.Y.Map(sg.Y1)).Attr("y2", sc.Y.Map(sg.Y2))
	}
}

// updateColors redraws the lines and recolors the legend entries.
func (fl *FlexLine) updateColors() {
	fl.Draw()
	if fl.legend == nil {
		return
	}
	colors := fl.Model().ColorList()
	for i, e := range fl.legend.SelectAll(fl.legendClass()) {
		c := legendColor(colors, i)
		for _, ln := range e.SelectAll(LineClass) {
			ln.SetStyle("stroke", c)
		}
		for _, tx := range e.SelectAll(LegendTextClass) {
			tx.SetStyle("fill", c)
		}
	}
}

// updateLegendLabels shows or hides the legend label texts according
// to labels_visibility: they are shown only for values other than
// "none" and "label". The flex line has no on-curve labels.
func (fl *FlexLine) updateLegendLabels() {
	switch fl.Model().LabelsVisibilityValue() {
	case "none", "label":
		fl.legendTextHidden = true
	default:
		fl.legendTextHidden = false
	}
	if fl.legend == nil {
		return
	}
	for _, e := range fl.legend.SelectAll(fl.legendClass()) {
		fl.showLegendText(e)
	}
}

func (fl *FlexLine) showLegendText(entry *scene.Node) {
	disp := ""
	if fl.legendTextHidden {
		disp = "none"
	}
	for _, tx := range entry.SelectAll(LegendTextClass) {
		tx.SetStyle("display", disp)
	}
}

// Remove removes the mark and its legend entries.
func (fl *FlexLine) Remove() {
	if fl.legend != nil {
		for _, e := range fl.legend.SelectAll(fl.legendClass()) {
			e.Remove()
		}
		fl.legend = nil
	}
	fl.Base.Remove()
}
