// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "cogentcore.org/sceneview/base/errors"

// Stage is a step of window and context creation.
type Stage string

const (
	// StageWindow is creating the native window and its context.
	StageWindow Stage = "window"

	// StageContext is making the context current.
	StageContext Stage = "context"

	// StageLoader is loading the OpenGL functions.
	StageLoader Stage = "loader"
)

// ErrReleased is returned when presenting a released window.
var ErrReleased = errors.New("system: window has been released")

// FatalInitError is returned when the window or its context cannot
// be created. The application cannot continue.
type FatalInitError struct {
	Stage Stage
	Err   error
}

func (e *FatalInitError) Error() string {
	return "system: " + string(e.Stage) + " initialization failed: " + e.Err.Error()
}

func (e *FatalInitError) Unwrap() error { return e.Err }

// PresentationError is returned when a frame cannot be presented.
// The frame is dropped; later frames may succeed.
type PresentationError struct {
	Err error
}

func (e *PresentationError) Error() string {
	return "system: present failed: " + e.Err.Error()
}

func (e *PresentationError) Unwrap() error { return e.Err }
