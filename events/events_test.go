// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	var src Source
	var got []string
	h1 := src.On(Change("colors"), func(ev *Event) { got = append(got, "a:"+ev.New.(string)) })
	src.On(Change("colors"), func(ev *Event) { got = append(got, "b:"+ev.New.(string)) })
	src.On(DomainChanged, func(ev *Event) { got = append(got, "domain") })

	src.Emit(&Event{Type: Change("colors"), New: "red"})
	assert.Equal(t, []string{"a:red", "b:red"}, got)
	assert.Equal(t, 2, src.NumListeners(Change("colors")))

	got = nil
	h1.Release()
	h1.Release()
	src.Emit(&Event{Type: Change("colors"), New: "blue"})
	src.Send(DomainChanged, nil)
	assert.Equal(t, []string{"b:blue", "domain"}, got)
}

func TestSubscriptions(t *testing.T) {
	var a, b Source
	n := 0
	var subs Subscriptions
	subs.Add(a.On(DomainChanged, func(ev *Event) { n++ }))
	subs.Add(b.On(ColorRangeChanged, func(ev *Event) { n++ }))
	subs.Add(Handle{})

	a.Send(DomainChanged, nil)
	b.Send(ColorRangeChanged, nil)
	assert.Equal(t, 2, n)

	subs.Release()
	assert.Empty(t, subs)
	a.Send(DomainChanged, nil)
	b.Send(ColorRangeChanged, nil)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, a.NumListeners(DomainChanged))
}

func TestReleaseWhileEmitting(t *testing.T) {
	var src Source
	calls := 0
	var h Handle
	h = src.On(DomainChanged, func(ev *Event) {
		calls++
		h.Release()
	})
	src.On(DomainChanged, func(ev *Event) { calls++ })
	src.Send(DomainChanged, nil)
	assert.Equal(t, 2, calls)
	src.Send(DomainChanged, nil)
	assert.Equal(t, 3, calls)
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var got []int
	ls.Add(MouseOver, func(ev *Event) { got = append(got, 1) })
	ls.Add(MouseOver, func(ev *Event) {
		got = append(got, 2)
		ev.SetHandled()
	})
	ls.Call(NewEvent(MouseOver, nil))
	assert.Equal(t, []int{2}, got)

	got = nil
	ls.Call(NewEvent(MouseOut, nil))
	assert.Empty(t, got)
}
