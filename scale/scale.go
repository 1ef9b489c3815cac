// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides mappings from data-space values to
// pixel-space values (and colors), with settable output ranges and
// domain-changed notification.
package scale

import (
	"math"

	"cogentcore.org/marks/events"
)

// Scale maps data-space values to pixel-space values.
type Scale interface {

	// Map returns the pixel-space value for the given data value.
	Map(v float64) float64

	// SetRange sets the pixel-space output range.
	SetRange(lo, hi float64)

	// Range returns the pixel-space output range.
	Range() (lo, hi float64)

	// SetDomain sets the data-space input domain, sending
	// [events.DomainChanged] if it changed.
	SetDomain(lo, hi float64)

	// Domain returns the data-space input domain.
	Domain() (lo, hi float64)

	// UpdateDomain sets the domain from the given data extent,
	// keeping any fixed bounds. It sends [events.DomainChanged]
	// if the domain changed.
	UpdateDomain(lo, hi float64)

	// Events returns the event source for domain-changed events.
	Events() *events.Source
}

// Base has the domain, range and events shared by all scales.
// It is embedded in each concrete scale type.
type Base struct {
	events.Source

	// Min is a fixed lower domain bound, ignored by UpdateDomain if nil.
	Min *float64

	// Max is a fixed upper domain bound, ignored by UpdateDomain if nil.
	Max *float64

	domain [2]float64
	rng    [2]float64

	// this is the object sent as the event source
	this any
}

func (b *Base) Events() *events.Source { return &b.Source }

func (b *Base) SetRange(lo, hi float64) { b.rng = [2]float64{lo, hi} }

func (b *Base) Range() (lo, hi float64) { return b.rng[0], b.rng[1] }

func (b *Base) Domain() (lo, hi float64) { return b.domain[0], b.domain[1] }

func (b *Base) SetDomain(lo, hi float64) {
	nd := [2]float64{lo, hi}
	if nd == b.domain {
		return
	}
	b.domain = nd
	b.Send(events.DomainChanged, b.this)
}

func (b *Base) UpdateDomain(lo, hi float64) {
	if b.Min != nil {
		lo = *b.Min
	}
	if b.Max != nil {
		hi = *b.Max
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return
	}
	b.SetDomain(lo, hi)
}

// SetBounds sets fixed domain bounds; nil leaves the bound free.
// If both are set, the domain is set to them.
func (b *Base) SetBounds(lo, hi *float64) {
	b.Min, b.Max = lo, hi
	if lo != nil && hi != nil {
		b.SetDomain(*lo, *hi)
	}
}

// normalize returns the position of v within [lo, hi] as a
// proportion, or 0.5 for an empty domain.
func normalize(v, lo, hi float64) float64 {
	d := hi - lo
	if d == 0 || math.IsNaN(d) {
		return 0.5
	}
	return (v - lo) / d
}

// Extent returns the minimum and maximum of all non-NaN values,
// or NaN, NaN if there are none.
func Extent(values ...[]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) {
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}
