// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mark

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"cogentcore.org/marks/events"
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scene"
)

// lastID is the last assigned mark id.
var lastID atomic.Uint64

// Base implements the parts of [Mark] that are common to all marks.
// Concrete marks embed it and call its methods explicitly from their
// own implementations of the same methods.
type Base struct {

	// Parent is the container the mark is rendered in.
	Parent Parent

	// Group is the scene group holding the mark's nodes,
	// created by [Base.Render].
	Group *scene.Node

	// UUID is a unique id for the mark, used to make
	// the class names of its legend entries unique.
	UUID string

	// Subs are the mark's event subscriptions.
	Subs events.Subscriptions

	model *model.Model
}

// Init initializes the base for the given parent and model.
func (b *Base) Init(p Parent, m *model.Model) {
	b.Parent = p
	b.model = m
	b.UUID = "m" + strconv.FormatUint(lastID.Add(1), 10)
}

// Model returns the mark's model.
func (b *Base) Model() *model.Model {
	return b.model
}

// Scales returns the model's scales.
func (b *Base) Scales() model.Scales {
	return b.model.Scales
}

// AnimationDuration returns the parent's animation duration.
func (b *Base) AnimationDuration() time.Duration {
	return b.Parent.AnimationDuration()
}

// IsRendered returns whether [Base.Render] has completed.
func (b *Base) IsRendered() bool {
	return b.Group != nil
}

// Render creates the mark group in the parent's mark layer.
// It is a no-op if the mark is already rendered, and returns
// the context error if the context is done.
func (b *Base) Render(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mark %s render: %w", b.UUID, err)
	}
	if b.Group != nil {
		return nil
	}
	b.Group = b.Parent.MarkLayer().Append("g").SetClass("mark")
	b.Group.Key = b.UUID
	b.UpdateVisibility()
	slog.Debug("mark rendered", "mark", b.UUID)
	return nil
}

// SetRanges sets the x and y scale ranges to the parent's padded ranges.
func (b *Base) SetRanges() {
	sc := b.Scales()
	if sc.X != nil {
		sc.X.SetRange(b.Parent.PaddedRange("x"))
	}
	if sc.Y != nil {
		sc.Y.SetRange(b.Parent.PaddedRange("y"))
	}
}

// Listen subscribes fun to events of the given type from src,
// keeping the handle in [Base.Subs].
func (b *Base) Listen(src *events.Source, typ string, fun func(ev *events.Event)) {
	b.Subs.Add(src.On(typ, fun))
}

// ListenModel subscribes fun to the change events of the named
// model attributes.
func (b *Base) ListenModel(fun func(ev *events.Event), attrs ...string) {
	for _, attr := range attrs {
		b.Listen(&b.model.Source, events.Change(attr), fun)
	}
}

// CreateListeners subscribes to the model attributes that all marks
// react to: visibility, and the labels and legend display that the
// parent's legend depends on. Marks that derive their data from the
// labels should subscribe to them before calling this, so that the
// legend is drawn from the updated data.
func (b *Base) CreateListeners() {
	b.ListenModel(func(ev *events.Event) { b.UpdateVisibility() }, model.Visible)
	b.ListenModel(func(ev *events.Event) { b.Parent.UpdateLegend() }, model.Labels, model.DisplayLegend)
}

// UpdateVisibility shows or hides the mark group
// according to the "visible" attribute.
func (b *Base) UpdateVisibility() {
	if b.Group == nil {
		return
	}
	if b.model.IsVisible() {
		b.Group.SetStyle("display", "")
	} else {
		b.Group.SetStyle("display", "none")
	}
}

// Relayout is called when the parent changes size. The base
// implementation does nothing; marks reposition their nodes.
func (b *Base) Relayout() {}

// MakeAxisBold highlights the axes of the mark's x and y scales.
func (b *Base) MakeAxisBold(ev *events.Event) {
	b.setAxisBold(true)
}

// MakeAxisNonBold removes the highlight from the axes
// of the mark's x and y scales.
func (b *Base) MakeAxisNonBold(ev *events.Event) {
	b.setAxisBold(false)
}

func (b *Base) setAxisBold(bold bool) {
	sc := b.Scales()
	if sc.X != nil {
		b.Parent.SetAxisBold(sc.X, bold)
	}
	if sc.Y != nil {
		b.Parent.SetAxisBold(sc.Y, bold)
	}
}

// Remove releases all subscriptions and removes the mark group.
func (b *Base) Remove() {
	b.Subs.Release()
	if b.Group != nil {
		b.Parent.Timeline().Interrupt(b.Group, "")
		b.Group.Remove()
		b.Group = nil
	}
}
