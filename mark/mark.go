// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mark defines the capability shared by all renderable plot
// marks, and [Base], which implements the common parts of it for
// embedding in concrete mark types.
package mark

import (
	"context"
	"time"

	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scale"
	"cogentcore.org/marks/scene"
)

// Mark is a renderable chart element type bound to a shared model.
type Mark interface {

	// Render creates the mark's scene nodes in its parent, subscribes
	// to model and scale events, and draws the mark for the first time.
	Render(ctx context.Context) error

	// SetRanges sets the output ranges of the mark's scales.
	SetRanges()

	// CreateListeners subscribes to the model and scale events
	// that the mark reacts to.
	CreateListeners()

	// Draw reconciles the mark's scene nodes with the current model.
	Draw()

	// Relayout updates the positions of the existing scene nodes
	// after the parent has changed size.
	Relayout()

	// DrawLegend reconciles the mark's legend entries inside elem,
	// starting at the given displacements and advancing by the given
	// inter-entry displacements. It returns the number of entries and
	// the length of the longest label, for sizing the legend.
	DrawLegend(elem *scene.Node, xDisp, yDisp, interXDisp, interYDisp float64) (int, int)

	// Model returns the mark's model.
	Model() *model.Model

	// Remove releases all subscriptions and removes the mark's scene nodes.
	Remove()
}

// Parent is the container that marks are rendered in.
type Parent interface {

	// AnimationDuration is the duration of mark transitions.
	AnimationDuration() time.Duration

	// PaddedRange returns the pixel output range for the
	// given dimension ("x" or "y").
	PaddedRange(dim string) (lo, hi float64)

	// MarkLayer returns the scene node that mark groups are added to.
	MarkLayer() *scene.Node

	// Timeline returns the timeline that runs transitions.
	Timeline() *scene.Timeline

	// SetAxisBold sets whether the axis drawn for the given scale
	// is highlighted.
	SetAxisBold(sc scale.Scale, bold bool)

	// UpdateLegend redraws the legend of all marks.
	UpdateLegend()
}
