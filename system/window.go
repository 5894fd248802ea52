// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/dpi"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/math32"
)

// GLWindow is a native window together with the OpenGL context bound
// to it and the [gpu.Device] for that context. The window and the
// context are created together and released together; the context
// stays current on the main thread for the lifetime of the window.
type GLWindow struct {
	platform Platform
	native   NativeWindow
	version  ContextVersion
	device   *gpu.Device

	// size of the default framebuffer in physical pixels, >= (1, 1).
	size image.Point

	// ratio of physical pixels to logical units.
	ratio float32

	released bool
}

// NewGLWindow creates a window and its context, trying each of
// the context versions in opts in order and using the first that
// the platform supports. It makes the context current, enables vsync,
// loads the OpenGL functions and sets the viewport to the framebuffer.
// A nil opts is valid and means to use the default options.
// Failure at any stage returns a [FatalInitError], after destroying
// anything already created.
func NewGLWindow(pf Platform, opts *WindowOptions) (*GLWindow, error) {
	if opts == nil {
		opts = &WindowOptions{}
	}
	opts.Fixup()

	w := &GLWindow{platform: pf}
	var errs []error
	for i, v := range opts.ContextVersions {
		nw, err := pf.CreateWindow(opts, v)
		if err != nil {
			errs = append(errs, fmt.Errorf("OpenGL %v: %w", v, err))
			if i < len(opts.ContextVersions)-1 {
				slog.Warn("system: context version not available, trying next", "version", v, "err", err)
			}
			continue
		}
		w.native, w.version = nw, v
		break
	}
	if w.native == nil {
		return nil, &FatalInitError{Stage: StageWindow, Err: errors.Join(errs...)}
	}

	if err := catch(w.native.MakeContextCurrent); err != nil {
		w.native.Destroy()
		return nil, &FatalInitError{Stage: StageContext, Err: err}
	}
	pf.SwapInterval(1)

	gl, err := pf.LoadGL()
	if err != nil {
		w.native.Destroy()
		return nil, &FatalInitError{Stage: StageLoader, Err: err}
	}
	w.device = gpu.NewDevice(gl)
	slog.Info("system: OpenGL context created", "requested", w.version,
		"version", gl.GetString(gpu.Version), "renderer", gl.GetString(gpu.Renderer))

	w.ratio = w.contentScale()
	w.Resize(image.Pt(w.native.GetFramebufferSize()))
	return w, nil
}

// catch calls f, returning any panic as an error.
// The glfw bindings panic on platform errors.
func catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}

func (w *GLWindow) contentScale() float32 {
	x, _ := w.native.GetContentScale()
	return dpi.Ratio(x)
}

// Device returns the device for the context of the window.
func (w *GLWindow) Device() *gpu.Device { return w.device }

// Version returns the context version that was created.
func (w *GLWindow) Version() ContextVersion { return w.version }

// Size returns the size of the default framebuffer in physical pixels.
func (w *GLWindow) Size() image.Point { return w.size }

// PixelRatio returns the ratio of physical pixels to logical units.
func (w *GLWindow) PixelRatio() float32 { return w.ratio }

// LogicalSize returns the size of the window in logical units.
func (w *GLWindow) LogicalSize() math32.Vector2 {
	return dpi.ToLogical(w.size, w.ratio)
}

// Resize records the new framebuffer size of the window, clamped to at
// least 1x1, and sets the viewport of the default framebuffer to cover it.
// It must be called when the window is resized, before the next frame.
func (w *GLWindow) Resize(size image.Point) {
	if w.released {
		return
	}
	w.size = dpi.Clamp(size)
	w.device.SetViewport(image.Rectangle{Max: w.size})
}

// SetPixelRatio records a new pixel ratio and resizes to the current
// framebuffer size, which changes along with the ratio.
func (w *GLWindow) SetPixelRatio(ratio float32) {
	if w.released {
		return
	}
	w.ratio = dpi.Ratio(ratio)
	w.Resize(image.Pt(w.native.GetFramebufferSize()))
}

// Present swaps the back buffer to the screen, blocking until the next
// vertical blank. Pending OpenGL errors from the frame are logged and
// do not stop the swap; a platform failure during the swap is returned
// as a [PresentationError].
func (w *GLWindow) Present() error {
	if w.released {
		return &PresentationError{Err: ErrReleased}
	}
	if err := w.device.CheckError("frame"); err != nil {
		slog.Error("system: GL error during frame", "err", err)
	}
	if err := catch(w.native.SwapBuffers); err != nil {
		return &PresentationError{Err: err}
	}
	return nil
}

// RequestRedraw asks the event loop for a new frame.
func (w *GLWindow) RequestRedraw() {
	w.platform.RequestRedraw()
}

// Release destroys the window and its context. All GPU objects created
// on the device must have been released first. It is safe to call
// more than once.
func (w *GLWindow) Release() {
	if w.released {
		return
	}
	if st := w.device.Stats(); st.Live() > 0 {
		slog.Warn("system: releasing window with live GPU objects", "framebuffers", st.Framebuffers,
			"renderbuffers", st.Renderbuffers, "textures", st.Textures)
	}
	w.native.Destroy()
	w.released = true
}
