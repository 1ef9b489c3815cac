// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"
	"time"
)

// Timeline runs timed attribute transitions on scene nodes.
// It is advanced explicitly with [Timeline.Advance], typically once
// per frame by the event loop, so that all scene changes happen on
// a single goroutine.
type Timeline struct {

	// Now returns the current time; it defaults to [time.Now]
	// and can be replaced for testing.
	Now func() time.Time

	active []*Transition
}

// NewTimeline returns a new timeline using [time.Now].
func NewTimeline() *Timeline {
	return &Timeline{Now: time.Now}
}

// Transition is a named transition of some attributes of one node
// from their current values to target values over a duration,
// optionally removing the node at the end.
type Transition struct {

	// Name is the transition name; starting a transition with the
	// same name on the same node interrupts the previous one.
	Name string

	// Node is the node being transitioned.
	Node *Node

	// Duration is the length of the transition.
	Duration time.Duration

	start  time.Time
	from   map[string]float64
	to     map[string]any
	order  []string
	remove bool
	tl     *Timeline
}

// Transition starts a new transition with the given name and duration
// on the given node, interrupting any active transition of the same
// name on it. A zero or negative duration applies targets immediately.
func (tl *Timeline) Transition(n *Node, name string, d time.Duration) *Transition {
	tl.Interrupt(n, name)
	tr := &Transition{Name: name, Node: n, Duration: d, start: tl.now(), tl: tl}
	if d > 0 {
		tl.active = append(tl.active, tr)
	}
	return tr
}

// Attr sets the target value of the named attribute. Numeric
// attributes are interpolated; others are set at the end.
func (tr *Transition) Attr(name string, value any) *Transition {
	if tr.Duration <= 0 {
		tr.Node.SetAttr(name, value)
		return tr
	}
	if tr.to == nil {
		tr.from = make(map[string]float64)
		tr.to = make(map[string]any)
	}
	if _, has := tr.to[name]; !has {
		tr.order = append(tr.order, name)
	}
	tr.to[name] = value
	if fv, ok := tr.Node.Attr(name).(float64); ok {
		tr.from[name] = fv
	} else if name == "opacity" {
		tr.from[name] = 1
	}
	return tr
}

// Remove marks the node as exiting and removes it at the end
// of the transition.
func (tr *Transition) Remove() *Transition {
	if tr.Duration <= 0 {
		tr.Node.Remove()
		return tr
	}
	tr.remove = true
	tr.Node.exiting = true
	return tr
}

// Interrupt stops the active transitions with the given name on the
// given node, leaving their attributes at their current values.
// An empty name interrupts all transitions on the node.
func (tl *Timeline) Interrupt(n *Node, name string) {
	tl.active = slices.DeleteFunc(tl.active, func(tr *Transition) bool {
		return tr.Node == n && (name == "" || tr.Name == name)
	})
}

// NumActive returns the number of active transitions.
func (tl *Timeline) NumActive() int {
	return len(tl.active)
}

// Advance applies all active transitions at the current time,
// finishing the ones that are complete. It returns whether any
// transitions remain active.
func (tl *Timeline) Advance() bool {
	now := tl.now()
	act := tl.active
	tl.active = nil
	for _, tr := range act {
		if tr.Node.removed {
			continue
		}
		t := float64(now.Sub(tr.start)) / float64(tr.Duration)
		if t >= 1 {
			tr.finish()
			continue
		}
		tr.apply(EaseCubicInOut(max(t, 0)))
		tl.active = append(tl.active, tr)
	}
	return len(tl.active) > 0
}

// Settle immediately finishes all active transitions.
func (tl *Timeline) Settle() {
	act := tl.active
	tl.active = nil
	for _, tr := range act {
		if !tr.Node.removed {
			tr.finish()
		}
	}
}

func (tl *Timeline) now() time.Time {
	if tl.Now == nil {
		return time.Now()
	}
	return tl.Now()
}

func (tr *Transition) apply(t float64) {
	for _, name := range tr.order {
		fv, ok := tr.from[name]
		tv, isNum := tr.to[name].(float64)
		if !ok || !isNum {
			continue
		}
		tr.Node.SetAttr(name, fv+t*(tv-fv))
	}
}

func (tr *Transition) finish() {
	for _, name := range tr.order {
		tr.Node.SetAttr(name, tr.to[name])
	}
	if tr.remove {
		tr.Node.Remove()
	}
}

// EaseCubicInOut is the symmetric cubic easing function,
// mapping [0, 1] onto [0, 1].
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
