// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners holds the pointer event handlers of one scene node,
// by event type. Unlike [Source] subscriptions, listeners live as
// long as the node they are registered on, so they have no handles.
type Listeners map[string][]func(ev *Event)

// Add adds a handler for the given event type.
func (ls *Listeners) Add(typ string, fun func(ev *Event)) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls the handlers for the event type, most recently added
// first, stopping once the event is handled. Later handlers can
// thus override earlier ones by marking the event as handled.
func (ls Listeners) Call(ev *Event) {
	hs := ls[ev.Type]
	for i := len(hs) - 1; i >= 0 && !ev.IsHandled(); i-- {
		hs[i](ev)
	}
}
