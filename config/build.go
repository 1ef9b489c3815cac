// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"time"

	"cogentcore.org/marks/base/errors"
	"cogentcore.org/marks/colors"
	"cogentcore.org/marks/figure"
	"cogentcore.org/marks/flexline"
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scale"
)

// NewScale returns a new positional scale of the configured kind.
func (sc *Scale) NewScale() scale.Scale {
	var s scale.Scale
	var b *scale.Base
	switch sc.Kind {
	case "log":
		ls := scale.NewLog()
		s, b = ls, &ls.Base
	case "identity":
		is := scale.NewIdentity()
		s, b = is, &is.Base
	default:
		ls := scale.NewLinear()
		s, b = ls, &ls.Base
	}
	b.SetBounds(sc.Min, sc.Max)
	return s
}

// NewColorScale returns a new color scale with the configured colors.
func (sc *Scale) NewColorScale() *scale.Color {
	cs := scale.NewColor(sc.Colors...)
	cs.SetBounds(sc.Min, sc.Max)
	return cs
}

// NewScales returns new scales as configured.
func (c *Chart) NewScales() model.Scales {
	ms := model.Scales{X: c.Scales.X.NewScale(), Y: c.Scales.Y.NewScale()}
	if c.Scales.Color != nil {
		ms.Color = c.Scales.Color.NewColorScale()
	}
	if c.Scales.Width != nil {
		ms.Width = c.Scales.Width.NewScale()
	}
	return ms
}

// Build returns a new figure with a flex line mark for the chart.
// Charts with several series and no colors get widely spaced colors.
func (c *Chart) Build(ctx context.Context) (*figure.Figure, *flexline.FlexLine, error) {
	fig := figure.New(c.Width, c.Height)
	fig.Margins = figure.Margins(c.Margins)
	fig.Duration = time.Duration(c.AnimationDuration) * time.Millisecond
	m := model.New(c.NewScales())
	if c.Mark.Colors == nil && len(c.Mark.Y) > 1 {
		errors.Log(m.Set(model.Colors, colors.SpacedList(len(c.Mark.Y))))
	}
	if err := c.Apply(m); err != nil {
		return nil, nil, fmt.Errorf("config.Build: %w", err)
	}
	m.UpdateData()
	fl := flexline.New(fig, m)
	if err := fig.AddMark(ctx, fl); err != nil {
		return nil, nil, fmt.Errorf("config.Build: %w", err)
	}
	return fig, fl, nil
}

// Apply sets the configured mark attributes on the model in one
// batch, so that the mark redraws only after all of them are set,
// and updates the color scheme and bounds of the model's color scale.
func (c *Chart) Apply(m *model.Model) error {
	if cs := m.Scales.Color; cs != nil && c.Scales.Color != nil {
		if len(c.Scales.Color.Colors) > 0 {
			cs.SetColors(c.Scales.Color.Colors...)
		}
		cs.SetBounds(c.Scales.Color.Min, c.Scales.Color.Max)
	}
	mk := &c.Mark
	return m.Batch(func() error {
		var errs []error
		set := func(name string, v any) {
			errs = append(errs, m.Set(name, v))
		}
		if mk.Colors != nil {
			set(model.Colors, mk.Colors)
		}
		if mk.Labels != nil {
			set(model.Labels, mk.Labels)
		}
		if mk.LabelsVisibility != "" {
			set(model.LabelsVisibility, mk.LabelsVisibility)
		}
		if mk.StrokeWidth != nil {
			set(model.StrokeWidth, *mk.StrokeWidth)
		}
		if mk.Visible != nil {
			set(model.Visible, *mk.Visible)
		}
		if mk.DisplayLegend != nil {
			set(model.DisplayLegend, *mk.DisplayLegend)
		}
		if mk.X != nil {
			set(model.X, mk.X)
		}
		if mk.Y != nil {
			set(model.Y, mk.Y)
		}
		if mk.Color != nil {
			set(model.Color, mk.Color)
		}
		if mk.Width != nil {
			set(model.Width, mk.Width)
		}
		return errors.Join(errs...)
	})
}
