// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"

	"cogentcore.org/sceneview/math32"
)

// Event is a platform event delivered to the application by the event
// loop. The set of events is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// Resumed is sent when the application may create or use its window:
// once at startup, and again when the window is restored after being
// minimized.
type Resumed struct{}

// Suspended is sent when the window is minimized. Rendering should
// stop until the next [Resumed].
type Suspended struct{}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// Resized is sent when the framebuffer size of the window changes.
type Resized struct {
	// Size is the new framebuffer size in physical pixels.
	Size image.Point
}

// ScaleFactorChanged is sent when the window moves to a display
// with a different device pixel ratio, or the ratio changes.
type ScaleFactorChanged struct {
	Ratio float32
}

// RedrawRequested is sent when the window should render a frame.
type RedrawRequested struct{}

// MouseMoved is sent when the cursor moves over the window.
type MouseMoved struct {
	// Pos is in logical units relative to the top left of the window.
	Pos math32.Vector2
}

// MouseButton is sent when a mouse button is pressed or released.
type MouseButton struct {
	// Button is 0 for the primary button, 1 for the secondary
	// and 2 for the middle button.
	Button int

	Pressed bool

	// Pos is the cursor position in logical units.
	Pos math32.Vector2
}

func (Resumed) isEvent()            {}
func (Suspended) isEvent()          {}
func (CloseRequested) isEvent()     {}
func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (RedrawRequested) isEvent()    {}
func (MouseMoved) isEvent()         {}
func (MouseButton) isEvent()        {}

func (Resumed) String() string              { return "Resumed" }
func (Suspended) String() string            { return "Suspended" }
func (CloseRequested) String() string       { return "CloseRequested" }
func (e Resized) String() string            { return fmt.Sprintf("Resized(%v)", e.Size) }
func (e ScaleFactorChanged) String() string { return fmt.Sprintf("ScaleFactorChanged(%g)", e.Ratio) }
func (RedrawRequested) String() string      { return "RedrawRequested" }
func (e MouseMoved) String() string         { return fmt.Sprintf("MouseMoved(%g, %g)", e.Pos.X, e.Pos.Y) }
func (e MouseButton) String() string {
	return fmt.Sprintf("MouseButton(%d, pressed=%t, %g, %g)", e.Button, e.Pressed, e.Pos.X, e.Pos.Y)
}
