// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "time"

// Time is the frame timer. The zero value is ready to use.
type Time struct {
	start time.Time
	last  time.Time
	delta time.Duration

	// now is the clock, time.Now if nil.
	now func() time.Time
}

func (t *Time) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Reset starts the timer over.
func (t *Time) Reset() {
	t.start = t.clock()
	t.last = t.start
	t.delta = 0
}

// Update records the start of a new frame.
func (t *Time) Update() {
	now := t.clock()
	if t.start.IsZero() {
		t.start, t.last = now, now
	}
	t.delta = now.Sub(t.last)
	t.last = now
}

// Delta returns the time between the last two frames, in seconds.
func (t *Time) Delta() float32 { return float32(t.delta.Seconds()) }

// Elapsed returns the time since the timer started, in seconds.
func (t *Time) Elapsed() float32 {
	if t.start.IsZero() {
		return 0
	}
	return float32(t.clock().Sub(t.start).Seconds())
}
