// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loop provides the single goroutine on which all scene,
// model and scale updates of a figure happen.
package loop

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/marks/scene"
)

// FrameRate is the default rate at which transitions are advanced.
const FrameRate = time.Second / 60

// Loop runs posted tasks in order and advances a transition timeline
// once per frame while it has active transitions. Tasks are the only
// way for other goroutines to touch the figure.
type Loop struct {

	// Timeline is the timeline advanced on each frame.
	Timeline *scene.Timeline

	// Rate is the frame interval.
	Rate time.Duration

	// OnSettle, if non-nil, is called on the loop goroutine each time
	// the scene becomes still: after a task that starts no transitions,
	// and after the frame in which the last transition finishes.
	OnSettle func()

	tasks   chan func()
	stopped chan struct{}
}

// New returns a new loop for the given timeline.
func New(tl *scene.Timeline) *Loop {
	return &Loop{Timeline: tl, Rate: FrameRate,
		tasks: make(chan func(), 64), stopped: make(chan struct{})}
}

// Post queues the task to run on the loop goroutine. It blocks if the
// queue is full, and returns false without queueing if the loop has
// stopped. It must not be called from a task.
func (l *Loop) Post(task func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}
	select {
	case l.tasks <- task:
		return true
	case <-l.stopped:
		return false
	}
}

// Do runs the task on the loop goroutine and waits for it to finish.
func (l *Loop) Do(ctx context.Context, task func()) error {
	done := make(chan struct{})
	if !l.Post(func() { task(); close(done) }) {
		return context.Canceled
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run runs the loop until the context is done, returning its error.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)
	tick := time.NewTicker(l.Rate)
	defer tick.Stop()
	slog.Debug("loop started", "rate", l.Rate)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("loop stopped", "err", ctx.Err())
			return ctx.Err()
		case task := <-l.tasks:
			task()
			if l.Timeline.NumActive() == 0 {
				l.settled()
			}
		case <-tick.C:
			if l.Timeline.NumActive() > 0 && !l.Timeline.Advance() {
				l.settled()
			}
		}
	}
}

func (l *Loop) settled() {
	if l.OnSettle != nil {
		l.OnSettle()
	}
}
