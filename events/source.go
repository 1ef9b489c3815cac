// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "slices"

// Source is an event publisher that can be embedded in any type.
// Its zero value is ready to use. It is not safe for concurrent use;
// all calls must happen on the same goroutine (the plot event loop).
type Source struct {
	subs   map[string][]subscription
	nextID uint64
}

type subscription struct {
	id  uint64
	fun func(ev *Event)
}

// Handle identifies one subscription made with [Source.On].
// The zero Handle is valid and releasing it does nothing.
type Handle struct {
	src *Source
	typ string
	id  uint64
}

// On subscribes fun to events of the given type,
// returning a [Handle] that can be used to release it.
func (s *Source) On(typ string, fun func(ev *Event)) Handle {
	if s.subs == nil {
		s.subs = make(map[string][]subscription)
	}
	s.nextID++
	s.subs[typ] = append(s.subs[typ], subscription{id: s.nextID, fun: fun})
	return Handle{src: s, typ: typ, id: s.nextID}
}

// Off releases the given subscription.
func (s *Source) Off(h Handle) {
	if h.src != s || s.subs == nil {
		return
	}
	subs := s.subs[h.typ]
	i := slices.IndexFunc(subs, func(sb subscription) bool { return sb.id == h.id })
	if i < 0 {
		return
	}
	subs = slices.Delete(slices.Clone(subs), i, i+1)
	if len(subs) == 0 {
		delete(s.subs, h.typ)
		return
	}
	s.subs[h.typ] = subs
}

// Emit sends the event to all subscribers of its type,
// in the order in which they subscribed. Subscriptions made or
// released while emitting take effect for the next event.
func (s *Source) Emit(ev *Event) {
	if s.subs == nil {
		return
	}
	for _, sb := range s.subs[ev.Type] {
		sb.fun(ev)
	}
}

// Send is a convenience for emitting an event of the given type
// with no values from the given source object.
func (s *Source) Send(typ string, src any) {
	s.Emit(NewEvent(typ, src))
}

// NumListeners returns the number of subscribers for the given type.
func (s *Source) NumListeners(typ string) int {
	return len(s.subs[typ])
}

// Release releases the subscription from its source.
func (h Handle) Release() {
	if h.src != nil {
		h.src.Off(h)
	}
}

// Subscriptions is a list of owned subscription handles.
type Subscriptions []Handle

// Add adds the handle to the list.
func (ss *Subscriptions) Add(h Handle) {
	*ss = append(*ss, h)
}

// Release releases all handles and empties the list.
func (ss *Subscriptions) Release() {
	for _, h := range *ss {
		h.Release()
	}
	*ss = nil
}
