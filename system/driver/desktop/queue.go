// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import "cogentcore.org/sceneview/system"

// queue holds events received from glfw callbacks until the
// event loop dispatches them.
type queue struct {
	events []system.Event
}

// push adds an event. Consecutive size and scale events are
// coalesced, keeping the latest.
func (q *queue) push(ev system.Event) {
	if n := len(q.events); n > 0 {
		switch ev.(type) {
		case system.Resized:
			if _, ok := q.events[n-1].(system.Resized); ok {
				q.events[n-1] = ev
				return
			}
		case system.ScaleFactorChanged:
			if _, ok := q.events[n-1].(system.ScaleFactorChanged); ok {
				q.events[n-1] = ev
				return
			}
		case system.MouseMoved:
			if _, ok := q.events[n-1].(system.MouseMoved); ok {
				q.events[n-1] = ev
				return
			}
		}
	}
	q.events = append(q.events, ev)
}

// drain calls f for each queued event in order, including events
// pushed while draining, until the queue is empty or f returns false.
func (q *queue) drain(f func(system.Event) bool) {
	for len(q.events) > 0 {
		ev := q.events[0]
		q.events = q.events[1:]
		if !f(ev) {
			return
		}
	}
}

// len returns the number of queued events.
func (q *queue) len() int { return len(q.events) }
