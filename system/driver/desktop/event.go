// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"runtime"

	"cogentcore.org/sceneview/dpi"
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// window is the glfw window, which implements [system.NativeWindow].
type window struct {
	*glfw.Window
	app *App
}

// Destroy destroys the window and its context.
func (w *window) Destroy() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
	w.app.window = nil
}

func (w *window) setCallbacks() {
	w.SetFramebufferSizeCallback(w.fbResized)
	w.SetContentScaleCallback(w.scaleChanged)
	w.SetCloseCallback(w.closeReq)
	w.SetIconifyCallback(w.iconify)
	w.SetRefreshCallback(w.refresh)
	w.SetCursorPosCallback(w.cursorPosEvent)
	w.SetMouseButtonCallback(w.mouseButtonEvent)
}

func (w *window) fbResized(gw *glfw.Window, width, height int) {
	w.app.events.push(system.Resized{Size: image.Pt(width, height)})
}

func (w *window) scaleChanged(gw *glfw.Window, x, y float32) {
	w.app.events.push(system.ScaleFactorChanged{Ratio: x})
}

func (w *window) closeReq(gw *glfw.Window) {
	// the application decides whether and when to close
	gw.SetShouldClose(false)
	w.app.events.push(system.CloseRequested{})
}

func (w *window) iconify(gw *glfw.Window, iconified bool) {
	if iconified {
		w.app.events.push(system.Suspended{})
		return
	}
	w.app.events.push(system.Resumed{})
}

func (w *window) refresh(gw *glfw.Window) {
	w.app.redraw = true
}

func (w *window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	w.app.events.push(system.MouseMoved{Pos: w.cursorToLogical(gw, x, y)})
}

func (w *window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	but := 0
	switch button {
	case glfw.MouseButtonRight:
		but = 1
	case glfw.MouseButtonMiddle:
		but = 2
	}
	x, y := gw.GetCursorPos()
	w.app.events.push(system.MouseButton{
		Button:  but,
		Pressed: action != glfw.Release,
		Pos:     w.cursorToLogical(gw, x, y),
	})
}

// cursorToLogical converts a cursor position in screen coordinates
// to logical units.
func (w *window) cursorToLogical(gw *glfw.Window, x, y float64) math32.Vector2 {
	scale, _ := gw.GetContentScale()
	return screenToLogical(runtime.GOOS, x, y, scale)
}

// screenToLogical converts screen coordinates to logical units. Screen
// coordinates are logical on macOS and physical pixels elsewhere.
func screenToLogical(goos string, x, y float64, scale float32) math32.Vector2 {
	pos := math32.Vec2(float32(x), float32(y))
	if goos == "darwin" {
		return pos
	}
	return pos.DivScalar(dpi.Ratio(scale))
}
