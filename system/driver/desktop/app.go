// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements [system.Platform] on desktop operating
// systems using glfw, and runs the platform event loop.
package desktop

import (
	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/gpu/glcore"
	"cogentcore.org/sceneview/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App is the [system.Platform] for desktop operating systems.
// It supports a single window. All methods must be called on the
// main thread, which must be locked with runtime.LockOSThread.
type App struct {
	window *window

	events queue

	// redraw is whether a redraw has been requested.
	redraw bool

	// exit is whether the event loop should return.
	exit bool
}

// Init initializes glfw and returns a new [App].
// [App.Terminate] must be called when done.
func Init() (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	return &App{}, nil
}

// Terminate destroys any remaining window and terminates glfw.
func (a *App) Terminate() {
	if a.window != nil {
		a.window.Destroy()
	}
	glfw.Terminate()
}

// CreateWindow creates the window with an OpenGL core profile context
// of the given version.
func (a *App) CreateWindow(opts *system.WindowOptions, version system.ContextVersion) (system.NativeWindow, error) {
	if a.window != nil {
		return nil, errors.New("desktop: only one window is supported")
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, version.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	glw, err := glfw.CreateWindow(int(opts.Size.X), int(opts.Size.Y), opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	if opts.MinSize.X > 0 && opts.MinSize.Y > 0 {
		glw.SetSizeLimits(int(opts.MinSize.X), int(opts.MinSize.Y), glfw.DontCare, glfw.DontCare)
	}
	a.window = &window{Window: glw, app: a}
	a.window.setCallbacks()
	return a.window, nil
}

// SwapInterval sets the swap interval of the current context.
func (a *App) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// LoadGL loads the OpenGL functions of the current context.
func (a *App) LoadGL() (gpu.GL, error) {
	gl, err := glcore.New()
	if err != nil {
		return nil, err
	}
	return gl, nil
}

// RequestRedraw asks for a [system.RedrawRequested] event once the
// pending events have been handled. Multiple requests before then
// result in a single redraw.
func (a *App) RequestRedraw() {
	a.redraw = true
	glfw.PostEmptyEvent()
}

// Exit makes [App.Run] return once the current event has been handled.
func (a *App) Exit() {
	a.exit = true
	glfw.PostEmptyEvent()
}

// Run runs the event loop on the main thread, calling handle for each
// event, until [App.Exit] is called. A [system.Resumed] event is sent
// first. When no redraw is pending the loop waits for events.
func (a *App) Run(handle func(system.Event)) {
	a.exit = false
	a.events.push(system.Resumed{})
	for {
		a.events.drain(func(ev system.Event) bool {
			handle(ev)
			return !a.exit
		})
		if a.exit {
			return
		}
		if a.redraw {
			a.redraw = false
			handle(system.RedrawRequested{})
			if a.exit {
				return
			}
			glfw.PollEvents()
			continue
		}
		glfw.WaitEvents()
	}
}
