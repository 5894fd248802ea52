// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package systemtest provides a fake [system.Platform] backed by
// [gputest.GL], for testing code that creates windows without a display.
package systemtest

import (
	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/gpu/gputest"
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/system"
)

// Platform is a fake [system.Platform].
type Platform struct {
	// GL is the fake GL returned by LoadGL.
	GL *gputest.GL

	// Unsupported context versions fail in CreateWindow.
	Unsupported map[system.ContextVersion]bool

	// LoadErr is returned by LoadGL if non-nil.
	LoadErr error

	// FramebufferSize and Scale are given to created windows.
	FramebufferSize math32.Vector2
	Scale           float32

	// Created records the versions of the windows created.
	Created []system.ContextVersion

	// Window is the last window created.
	Window *Window

	SwapIntervalSet int
	Redraws         int
	Exits           int
}

// NewPlatform returns a new fake platform with a 800x600 framebuffer
// at a pixel ratio of 1.
func NewPlatform() *Platform {
	return &Platform{
		GL:              gputest.New(),
		FramebufferSize: math32.Vec2(800, 600),
		Scale:           1,
	}
}

func (p *Platform) CreateWindow(opts *system.WindowOptions, version system.ContextVersion) (system.NativeWindow, error) {
	if p.Unsupported[version] {
		return nil, errors.New("systemtest: version not supported")
	}
	p.Created = append(p.Created, version)
	p.Window = &Window{
		Width:  int(p.FramebufferSize.X),
		Height: int(p.FramebufferSize.Y),
		Scale:  p.Scale,
	}
	return p.Window, nil
}

func (p *Platform) SwapInterval(interval int) { p.SwapIntervalSet = interval }

func (p *Platform) LoadGL() (gpu.GL, error) {
	if p.LoadErr != nil {
		return nil, p.LoadErr
	}
	return p.GL, nil
}

func (p *Platform) RequestRedraw() { p.Redraws++ }

// Exit records a request to exit the event loop.
func (p *Platform) Exit() { p.Exits++ }

// Run delivers the given events to handle in order, stopping
// early if Exit is called.
func (p *Platform) Run(handle func(system.Event), events ...system.Event) {
	exits := p.Exits
	for _, ev := range events {
		handle(ev)
		if p.Exits > exits {
			return
		}
	}
}

// Window is a fake [system.NativeWindow].
type Window struct {
	Width, Height int
	Scale         float32

	Current   bool
	Swaps     int
	Destroyed int

	// SwapPanic, if non-nil, is panicked with by SwapBuffers.
	SwapPanic any
}

func (w *Window) MakeContextCurrent() { w.Current = true }

func (w *Window) SwapBuffers() {
	if w.SwapPanic != nil {
		panic(w.SwapPanic)
	}
	w.Swaps++
}

func (w *Window) GetFramebufferSize() (width, height int) { return w.Width, w.Height }

func (w *Window) GetContentScale() (x, y float32) { return w.Scale, w.Scale }

func (w *Window) Destroy() {
	w.Destroyed++
	w.Current = false
}
