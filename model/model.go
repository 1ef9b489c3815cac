// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the shared, mutable data and style model
// of a flex line mark. The model is owned by the host application,
// which sets its named attributes; views only read it and listen to
// its change events.
package model

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/marks/base/metadata"
	"cogentcore.org/marks/events"
	"cogentcore.org/marks/scale"
)

// Standard attribute names.
const (
	Colors           = "colors"
	Labels           = "labels"
	LabelsVisibility = "labels_visibility"
	StrokeWidth      = "stroke_width"
	Visible          = "visible"
	DisplayLegend    = "display_legend"
	X                = "x"
	Y                = "y"
	Color            = "color"
	Width            = "width"
)

// DataUpdated is the event sent after [Model.UpdateData] recomputes the mark data.
const DataUpdated = "data_updated"

// Scales are the scales used by a mark. X and Y are required;
// Color and Width are optional and nil if absent.
type Scales struct {
	X     scale.Scale
	Y     scale.Scale
	Color *scale.Color
	Width scale.Scale
}

// Model is the shared model of a flex line mark.
// Setting an attribute sends a "change:name" event (see [events.Change])
// with the old and new values, if the value changed.
// It is not safe for concurrent use.
type Model struct {
	events.Source

	// Scales are the scales the mark data is plotted with.
	Scales Scales

	// MarkData is the per-series segment data derived from the
	// raw attributes by [Model.UpdateData].
	MarkData []Series

	attrs    metadata.Data
	dirty    bool
	batching bool
	pending  []*events.Event
}

// New returns a new model with default attribute values and the given scales.
func New(sc Scales) *Model {
	m := &Model{Scales: sc}
	m.attrs.Set(Colors, []string{"steelblue"})
	m.attrs.Set(Labels, []string{})
	m.attrs.Set(LabelsVisibility, "none")
	m.attrs.Set(StrokeWidth, 1.5)
	m.attrs.Set(Visible, true)
	m.attrs.Set(DisplayLegend, false)
	m.attrs.Set(X, [][]float64{})
	m.attrs.Set(Y, [][]float64{})
	m.attrs.Set(Color, [][]float64{})
	m.attrs.Set(Width, [][]float64{})
	return m
}

// Set sets the named attribute, converting the value to the
// standard type for standard attribute names. It sends the change
// event unless the value is unchanged; during [Model.Batch] the
// events are sent when the batch ends.
func (m *Model) Set(name string, value any) error {
	v, err := convert(name, value)
	if err != nil {
		return fmt.Errorf("model.Set %q: %w", name, err)
	}
	old := m.attrs[name]
	if !m.attrs.Set(name, v) {
		return nil
	}
	ev := &events.Event{Type: events.Change(name), Source: m, Old: old, New: v}
	if m.batching {
		i := slices.IndexFunc(m.pending, func(e *events.Event) bool { return e.Type == ev.Type })
		if i >= 0 {
			ev.Old = m.pending[i].Old
			m.pending = slices.Delete(m.pending, i, i+1)
		}
		m.pending = append(m.pending, ev)
		return nil
	}
	m.Emit(ev)
	return nil
}

// Get returns the raw value of the named attribute (nil if unset).
func (m *Model) Get(name string) any {
	return m.attrs[name]
}

// Dirty returns whether the model is in the middle of an update,
// during which scale domain changes should not trigger redraws.
func (m *Model) Dirty() bool {
	return m.dirty
}

// Batch calls fun with the model marked dirty, collecting the change
// events of all attributes set by fun and sending them, once per
// attribute, after fun returns and the model is clean again.
func (m *Model) Batch(fun func() error) error {
	if m.batching {
		return fun()
	}
	m.batching, m.dirty = true, true
	err := fun()
	m.batching, m.dirty = false, false
	pend := m.pending
	m.pending = nil
	for _, ev := range pend {
		m.Emit(ev)
	}
	slog.Debug("model batch", "changes", len(pend))
	return err
}

// ColorList returns the "colors" attribute.
func (m *Model) ColorList() []string {
	return metadata.GetOr[[]string](m.attrs, Colors, nil)
}

// LabelList returns the "labels" attribute.
func (m *Model) LabelList() []string {
	return metadata.GetOr[[]string](m.attrs, Labels, nil)
}

// LabelsVisibilityValue returns the "labels_visibility" attribute.
func (m *Model) LabelsVisibilityValue() string {
	return metadata.GetOr(m.attrs, LabelsVisibility, "none")
}

// StrokeWidthValue returns the "stroke_width" attribute.
func (m *Model) StrokeWidthValue() float64 {
	return metadata.GetOr(m.attrs, StrokeWidth, 1.5)
}

// IsVisible returns the "visible" attribute.
func (m *Model) IsVisible() bool {
	return metadata.GetOr(m.attrs, Visible, true)
}

// DisplaysLegend returns the "display_legend" attribute.
func (m *Model) DisplaysLegend() bool {
	return metadata.GetOr(m.attrs, DisplayLegend, false)
}

// Data returns the named two-dimensional data attribute
// ("x", "y", "color" or "width").
func (m *Model) Data(name string) [][]float64 {
	return metadata.GetOr[[][]float64](m.attrs, name, nil)
}
