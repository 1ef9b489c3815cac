// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides named event notification between
// the shared model, scales, and scene nodes of a plot.
// Publishers embed a [Source], and subscribers hold the returned
// [Handle]s (typically in [Subscriptions]) so that they can
// release them on teardown.
package events

// Standard event type names.
const (
	// DomainChanged is sent by a scale when its input domain changes.
	DomainChanged = "domain_changed"

	// ColorRangeChanged is sent by a color scale when its output colors change.
	ColorRangeChanged = "color_scale_range_changed"

	// MouseOver is sent to a scene node when the pointer enters it.
	MouseOver = "mouseover"

	// MouseOut is sent to a scene node when the pointer leaves it.
	MouseOut = "mouseout"
)

// Change returns the event type sent when the named model attribute changes,
// in the form "change:name".
func Change(attr string) string {
	return "change:" + attr
}

// Event is a single notification.
type Event struct {

	// Type is the event type name, such as "change:colors" or [DomainChanged].
	Type string

	// Source is the object that sent the event.
	Source any

	// Old is the previous value for change events (nil if none).
	Old any

	// New is the new value for change events.
	New any

	handled bool
}

// NewEvent returns a new event of the given type from the given source.
func NewEvent(typ string, src any) *Event {
	return &Event{Type: typ, Source: src}
}

// SetHandled marks the event as handled, which stops
// any further [Listeners] from receiving it.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}
