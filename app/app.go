// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the application lifecycle: it creates the window,
// the scene renderer and the client in order when the platform resumes
// the application, drives frames, and releases everything in reverse
// order on shutdown.
package app

import (
	"fmt"
	"log/slog"

	"cogentcore.org/sceneview/scene"
	"cogentcore.org/sceneview/system"
)

// Platform is the platform the application runs on.
type Platform interface {
	system.Platform

	// Exit makes the event loop return.
	Exit()
}

// Client is the user interface drawn in the window. It is created
// once the window and the renderer exist, and shut down before them.
type Client interface {
	// HandleEvent handles an input event, returning whether
	// the window needs to be redrawn.
	HandleEvent(ctx *Context, ev system.Event) bool

	// Render lays out and draws a frame into the default framebuffer
	// of the window. It does not present it.
	Render(ctx *Context) error

	// Shutdown releases the GPU objects of the client.
	// It is called exactly once, while the context is still current.
	Shutdown(ctx *Context)
}

// ClientFactory describes the window and creates the [Client].
type ClientFactory interface {
	WindowOptions() *system.WindowOptions
	CreateClient(ctx *Context) (Client, error)
}

// Context is given to the client for each call.
type Context struct {
	Window   *system.GLWindow
	Renderer *scene.Renderer
	Time     *Time
}

// Running holds the objects of a running application.
// It only exists once all of them have been created.
type Running struct {
	Window   *system.GLWindow
	Renderer *scene.Renderer
	Client   Client
}

// pending holds the objects created so far while starting up.
type pending struct {
	window   *system.GLWindow
	renderer *scene.Renderer
}

// App is the application lifecycle state machine.
// It is driven by the platform event loop through [App.HandleEvent],
// on the main thread.
type App struct {
	// Continuous is whether to redraw continuously rather than
	// only when events require it.
	Continuous bool

	platform Platform
	factory  ClientFactory

	phase   Phase
	pending pending
	active  *Running

	// suspended is whether the window is minimized.
	suspended bool

	// err is the startup error, if any.
	err error

	time Time
}

// New returns a new application for the given platform and client factory.
func New(pf Platform, factory ClientFactory) *App {
	return &App{platform: pf, factory: factory}
}

// Phase returns the current phase.
func (a *App) Phase() Phase { return a.phase }

// Active returns the running objects, or nil if the application
// is not in the [Active] phase.
func (a *App) Active() *Running { return a.active }

// Err returns the error that stopped the application during startup.
func (a *App) Err() error { return a.err }

// Time returns the frame timer.
func (a *App) Time() *Time { return &a.time }

func (a *App) context() *Context {
	return &Context{Window: a.active.Window, Renderer: a.active.Renderer, Time: &a.time}
}

// Run runs the event loop until it exits, then shuts down and returns
// any startup error.
func (a *App) Run(loop interface{ Run(func(system.Event)) }) error {
	loop.Run(a.HandleEvent)
	a.Shutdown()
	return a.err
}

// HandleEvent handles an event from the platform event loop.
func (a *App) HandleEvent(ev system.Event) {
	switch ev := ev.(type) {
	case system.Resumed:
		a.resume()
	case system.Suspended:
		if a.phase == Active {
			a.suspended = true
		}
	case system.CloseRequested:
		a.Shutdown()
		a.platform.Exit()
	case system.RedrawRequested:
		a.redraw()
	case system.Resized:
		if a.phase != Active {
			return
		}
		a.active.Window.Resize(ev.Size)
		a.active.Client.HandleEvent(a.context(), ev)
		a.active.Window.RequestRedraw()
	case system.ScaleFactorChanged:
		if a.phase != Active {
			return
		}
		a.active.Window.SetPixelRatio(ev.Ratio)
		a.active.Client.HandleEvent(a.context(), ev)
		a.active.Window.RequestRedraw()
	default:
		if a.phase != Active {
			return
		}
		if a.active.Client.HandleEvent(a.context(), ev) {
			a.active.Window.RequestRedraw()
		}
	}
}

// resume creates whatever does not exist yet, or leaves the
// suspended state if everything does.
func (a *App) resume() {
	switch a.phase {
	case Active:
		if a.suspended {
			a.suspended = false
			a.active.Window.RequestRedraw()
		}
		return
	case ShuttingDown, Terminated:
		return
	}
	if err := a.create(); err != nil {
		a.err = err
		slog.Error("app: startup failed", "err", err)
		a.Shutdown()
		a.platform.Exit()
	}
}

func (a *App) create() error {
	p := &a.pending
	if p.window == nil {
		w, err := system.NewGLWindow(a.platform, a.factory.WindowOptions())
		if err != nil {
			return err
		}
		p.window = w
	}
	if p.renderer == nil {
		p.renderer = scene.NewRenderer(p.window.Device())
	}
	ctx := &Context{Window: p.window, Renderer: p.renderer, Time: &a.time}
	client, err := a.factory.CreateClient(ctx)
	if err != nil {
		return fmt.Errorf("app: creating client: %w", err)
	}
	a.active = &Running{Window: p.window, Renderer: p.renderer, Client: client}
	a.pending = pending{}
	a.phase = Active
	a.time.Reset()
	slog.Debug("app: active", "size", a.active.Window.Size(), "ratio", a.active.Window.PixelRatio())
	a.active.Window.RequestRedraw()
	return nil
}

// redraw renders and presents a frame. Errors are logged and the
// frame is dropped.
func (a *App) redraw() {
	if a.phase != Active || a.suspended {
		return
	}
	a.time.Update()
	ctx := a.context()
	if err := a.active.Client.Render(ctx); err != nil {
		slog.Error("app: render failed", "err", err)
	}
	if err := a.active.Window.Present(); err != nil {
		slog.Error("app: frame dropped", "err", err)
	}
	if a.Continuous {
		a.active.Window.RequestRedraw()
	}
}

// Shutdown shuts down the client, then releases the renderer and
// the window, in that order. It is safe to call more than once.
func (a *App) Shutdown() {
	switch a.phase {
	case ShuttingDown, Terminated:
		return
	}
	a.phase = ShuttingDown
	if a.active != nil {
		a.active.Client.Shutdown(a.context())
		a.active.Renderer.Release()
		a.active.Window.Release()
		a.active = nil
	}
	if a.pending.renderer != nil {
		a.pending.renderer.Release()
	}
	if a.pending.window != nil {
		a.pending.window.Release()
	}
	a.pending = pending{}
	a.phase = Terminated
}
