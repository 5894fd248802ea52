// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the native window and OpenGL context that
// the application renders into, and the platform events that drive it.
// The windowing system itself is behind the [Platform] interface; the
// glfw implementation is in driver/desktop.
package system

import (
	"fmt"

	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/math32"
)

// Platform creates native windows with OpenGL contexts and loads
// the OpenGL functions. All methods must be called on the main thread.
type Platform interface {
	// CreateWindow creates a window with a context of the given version
	// and the default pixel format: RGBA8 color, 24 bit depth, 8 bit
	// stencil, double buffered. It returns an error if the version
	// is not available.
	CreateWindow(opts *WindowOptions, version ContextVersion) (NativeWindow, error)

	// SwapInterval sets the number of vertical blanks to wait
	// for in SwapBuffers, for the current context.
	SwapInterval(interval int)

	// LoadGL loads the OpenGL functions of the current context.
	LoadGL() (gpu.GL, error)

	// RequestRedraw asks the event loop to send a [RedrawRequested]
	// event once the pending events have been handled.
	RequestRedraw()
}

// NativeWindow is a platform window with its presentation surface and
// OpenGL context. *glfw.Window satisfies it.
type NativeWindow interface {
	// MakeContextCurrent makes the context of the window current
	// on the calling thread.
	MakeContextCurrent()

	// SwapBuffers presents the back buffer, blocking according
	// to the swap interval.
	SwapBuffers()

	// GetFramebufferSize returns the size of the default
	// framebuffer in physical pixels.
	GetFramebufferSize() (width, height int)

	// GetContentScale returns the ratio between physical
	// pixels and logical units.
	GetContentScale() (x, y float32)

	// Destroy destroys the window and its context.
	Destroy()
}

// ContextVersion is an OpenGL core profile version.
type ContextVersion struct {
	Major, Minor int
}

func (v ContextVersion) String() string {
	return fmt.Sprintf("%d.%d core", v.Major, v.Minor)
}

// DefaultContextVersions are the versions tried, in order,
// when [WindowOptions.ContextVersions] is empty.
var DefaultContextVersions = []ContextVersion{{Major: 4, Minor: 1}, {Major: 3, Minor: 3}}

// WindowOptions are the options used to create a window.
type WindowOptions struct {
	Title string

	// Size is the initial size in logical units.
	Size math32.Vector2

	// MinSize is the minimum size in logical units; zero means no limit.
	MinSize math32.Vector2

	// ContextVersions are the context versions to try, in order.
	ContextVersions []ContextVersion
}

// Fixup fills in default values for unset options.
func (o *WindowOptions) Fixup() {
	if o.Title == "" {
		o.Title = "Scene Viewer"
	}
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		o.Size = math32.Vec2(1280, 800)
	}
	if len(o.ContextVersions) == 0 {
		o.ContextVersions = DefaultContextVersions
	}
}
