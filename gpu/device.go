// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages the OpenGL objects used to render a scene offscreen:
// the [Device] wrapping the current context, owning handles for framebuffers,
// renderbuffers and textures, and the [RenderTexture] render target.
//
// Framebuffer binding is global context state. All binds go through
// the [Device], which tracks the current binding and the one render
// target that may be bound at a time; no other package calls the
// binding primitive directly.
package gpu

import (
	"image"
	"image/color"
	"log/slog"
)

// Debug is whether to log debugging information about GPU object
// allocation and framebuffer binding.
var Debug = false

// Device is the single logical device for the current GL context.
// It is not safe for concurrent use; it lives on the thread that
// owns the context.
type Device struct {
	gl GL

	// framebuffers currently bound for drawing and reading;
	// 0 is the window's default framebuffer.
	drawFB uint32
	readFB uint32

	viewport image.Rectangle

	// bound is the render target currently bound, if any.
	bound *RenderTexture

	stats Stats
}

// Stats counts live GPU objects and storage allocations on a [Device].
type Stats struct {
	// Live object counts.
	Framebuffers  int
	Renderbuffers int
	Textures      int

	// TextureAllocs and RenderbufferAllocs count storage (re)allocations.
	TextureAllocs      int
	RenderbufferAllocs int
}

// Live returns the total number of live GPU objects.
func (s Stats) Live() int {
	return s.Framebuffers + s.Renderbuffers + s.Textures
}

// NewDevice returns a new [Device] issuing commands through the given GL,
// which must belong to a context that is current on the calling thread.
func NewDevice(gl GL) *Device {
	return &Device{gl: gl}
}

// GL returns the function table, for renderers issuing draw commands
// into the currently bound target.
func (d *Device) GL() GL { return d.gl }

// Stats returns the current object and allocation counts.
func (d *Device) Stats() Stats { return d.stats }

// Bound returns the render target currently bound, or nil if drawing
// goes to the default framebuffer.
func (d *Device) Bound() *RenderTexture { return d.bound }

// DrawFramebuffer returns the name of the framebuffer bound for drawing.
func (d *Device) DrawFramebuffer() uint32 { return d.drawFB }

// Viewport returns the current viewport rectangle.
func (d *Device) Viewport() image.Rectangle { return d.viewport }

// SetViewport sets the viewport rectangle.
func (d *Device) SetViewport(r image.Rectangle) {
	d.viewport = r
	d.gl.Viewport(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
}

// bindFramebuffer is the only place framebuffer bindings change.
func (d *Device) bindFramebuffer(target, fb uint32) {
	switch target {
	case FramebufferTarget:
		if d.drawFB == fb && d.readFB == fb {
			return
		}
		d.drawFB, d.readFB = fb, fb
	case ReadFramebufferTarget:
		if d.readFB == fb {
			return
		}
		d.readFB = fb
	case DrawFramebufferTarget:
		if d.drawFB == fb {
			return
		}
		d.drawFB = fb
	}
	if Debug {
		slog.Debug("gpu: bind framebuffer", "target", target, "framebuffer", fb)
	}
	d.gl.BindFramebuffer(target, fb)
}

// restoreFramebuffers binds the given draw and read framebuffers.
func (d *Device) restoreFramebuffers(draw, read uint32) {
	if draw == read {
		d.bindFramebuffer(FramebufferTarget, draw)
		return
	}
	d.bindFramebuffer(DrawFramebufferTarget, draw)
	d.bindFramebuffer(ReadFramebufferTarget, read)
}

// Clear clears the buffers selected by mask (a combination of
// [ColorBufferBit], [DepthBufferBit] and [StencilBufferBit]) of the
// currently bound framebuffer, using the given clear color.
func (d *Device) Clear(c color.Color, mask uint32) {
	r, g, b, a := ToFloat32(c)
	d.ClearRGBA(r, g, b, a, mask)
}

// ClearRGBA is like [Device.Clear] with the color given as
// components in the range [0, 1].
func (d *Device) ClearRGBA(r, g, b, a float32, mask uint32) {
	d.gl.ClearColor(r, g, b, a)
	d.gl.Clear(mask)
}

// FillRect fills the given rectangle of the currently bound framebuffer,
// in framebuffer coordinates (origin at the bottom left), with the given color.
func (d *Device) FillRect(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	d.gl.Enable(ScissorTest)
	d.gl.Scissor(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	d.Clear(c, ColorBufferBit)
	d.gl.Disable(ScissorTest)
}

// CheckError returns a [GLError] for the first pending GL error, if any,
// draining the remaining error flags.
func (d *Device) CheckError(op string) error {
	var first uint32
	for i := 0; i < 16; i++ {
		code := d.gl.GetError()
		if code == NoError {
			break
		}
		if first == NoError {
			first = code
		}
	}
	if first == NoError {
		return nil
	}
	return &GLError{Op: op, Code: first}
}

// ToFloat32 returns the non-premultiplied components of the
// given color as float32 values in the range [0, 1].
func ToFloat32(c color.Color) (r, g, b, a float32) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(nc.R) / 255, float32(nc.G) / 255, float32(nc.B) / 255, float32(nc.A) / 255
}

// FlipY converts a rectangle with a top-left origin, as used by layout,
// into framebuffer coordinates with a bottom-left origin, for a
// framebuffer of the given height.
func FlipY(r image.Rectangle, height int) image.Rectangle {
	return image.Rect(r.Min.X, height-r.Max.Y, r.Max.X, height-r.Min.Y)
}
