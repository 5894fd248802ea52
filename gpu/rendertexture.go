// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"cogentcore.org/sceneview/dpi"
)

// RenderTexture is an offscreen, non-window-backed rendering target:
// a framebuffer with an RGBA8 color texture and a depth/stencil
// renderbuffer attached. Resizing replaces the storage of the
// attachments in place rather than recreating the objects.
type RenderTexture struct {
	// device, which we do NOT own.
	device *Device

	framebuffer *Framebuffer
	color       *Texture
	depth       *Renderbuffer

	// size of the allocated attachments, always >= (1, 1).
	size image.Point

	// complete is whether the completeness check passed
	// since the last resize.
	complete bool

	// binding state saved by Bind, restored by Unbind.
	prevDraw     uint32
	prevRead     uint32
	prevViewport image.Rectangle

	released bool
}

// NewRenderTexture returns a new render target on the given device,
// allocated at 1x1 so that it is complete and usable immediately.
// A [ResourceCreationError] is returned if any object cannot be
// allocated, in which case the objects already created are released.
func NewRenderTexture(dev *Device) (rt *RenderTexture, err error) {
	rt = &RenderTexture{device: dev}
	defer func() {
		if err != nil {
			rt.Release()
			rt = nil
		}
	}()
	if rt.framebuffer, err = dev.NewFramebuffer(); err != nil {
		return
	}
	if rt.depth, err = dev.NewRenderbuffer(); err != nil {
		return
	}
	if rt.color, err = dev.NewTexture(); err != nil {
		return
	}
	err = rt.resize(image.Pt(1, 1))
	return
}

// Device returns the device this target was created on.
func (rt *RenderTexture) Device() *Device { return rt.device }

// Size returns the size of the target in physical pixels, as last set.
// The attachments have that size whenever [RenderTexture.Complete] is true.
func (rt *RenderTexture) Size() image.Point { return rt.size }

// Complete returns whether the target passed the completeness check
// since it was last resized, and so may be rendered into.
func (rt *RenderTexture) Complete() bool { return rt.complete && !rt.released }

// Framebuffer returns the framebuffer object.
func (rt *RenderTexture) Framebuffer() *Framebuffer { return rt.framebuffer }

// ColorTexture returns the color attachment, for display by a compositor.
func (rt *RenderTexture) ColorTexture() *Texture { return rt.color }

// SetSize sets the size of the attachments, clamping each dimension to
// at least 1. It does nothing if the target is already that size.
// Otherwise the attachment storage is reallocated and reattached, and a
// [FramebufferIncompleteError] is returned if the completeness check fails,
// or a [GLError] if the storage could not be allocated. The new size is
// recorded either way and the target stays incomplete until a later
// resize succeeds.
func (rt *RenderTexture) SetSize(size image.Point) error {
	if rt.released {
		return ErrReleased
	}
	size = dpi.Clamp(size)
	if size == rt.size {
		return nil
	}
	if rt.device.bound == rt {
		return ErrTargetBound
	}
	return rt.resize(size)
}

func (rt *RenderTexture) resize(size image.Point) error {
	dev := rt.device
	rt.size = size
	rt.complete = false

	if err := dev.CheckError("before resize"); err != nil {
		slog.Warn("gpu: discarding earlier GL error", "err", err)
	}
	if err := rt.color.SetStorage(size); err != nil {
		return err
	}
	if err := rt.depth.SetStorage(size); err != nil {
		return err
	}

	// attachments do not survive storage reallocation on all drivers,
	// so they are always reasserted.
	draw, read := dev.drawFB, dev.readFB
	dev.bindFramebuffer(FramebufferTarget, rt.framebuffer.id)
	dev.gl.FramebufferTexture2D(ColorAttachment0, rt.color.id)
	dev.gl.FramebufferRenderbuffer(DepthStencilAttachment, rt.depth.id)
	status := dev.gl.CheckFramebufferStatus()
	dev.restoreFramebuffers(draw, read)

	if status != FramebufferComplete {
		return &FramebufferIncompleteError{Status: status, Size: size}
	}
	rt.complete = true
	if Debug {
		slog.Debug("gpu: render target resized", "size", size)
	}
	return nil
}

// Bind makes this target the destination of subsequent draw commands and
// sets the viewport to cover it. The previous binding and viewport are
// saved and restored by [RenderTexture.Unbind], which must be called
// within the same frame. Only one target may be bound at a time.
func (rt *RenderTexture) Bind() error {
	switch {
	case rt.released:
		return ErrReleased
	case rt.device.bound != nil:
		return ErrTargetBound
	case !rt.complete:
		return ErrIncomplete
	}
	dev := rt.device
	rt.prevDraw, rt.prevRead = dev.drawFB, dev.readFB
	rt.prevViewport = dev.viewport
	dev.bindFramebuffer(FramebufferTarget, rt.framebuffer.id)
	dev.SetViewport(image.Rectangle{Max: rt.size})
	dev.bound = rt
	return nil
}

// Unbind restores the framebuffer binding and viewport that were active
// before [RenderTexture.Bind]. It does nothing if this target is not bound.
func (rt *RenderTexture) Unbind() {
	dev := rt.device
	if dev.bound != rt {
		return
	}
	dev.restoreFramebuffers(rt.prevDraw, rt.prevRead)
	dev.SetViewport(rt.prevViewport)
	dev.bound = nil
}

// BlitTo copies the color attachment into the given rectangle of the
// framebuffer currently bound for drawing, which is normally the window's
// default framebuffer. dst is in framebuffer coordinates (origin at the
// bottom left); the copy is scaled with linear filtering if the sizes differ.
func (rt *RenderTexture) BlitTo(dst image.Rectangle) error {
	switch {
	case rt.released:
		return ErrReleased
	case rt.device.bound != nil:
		return ErrTargetBound
	case !rt.complete:
		return ErrIncomplete
	}
	if dst.Empty() {
		return nil
	}
	dev := rt.device
	read := dev.readFB
	dev.bindFramebuffer(ReadFramebufferTarget, rt.framebuffer.id)
	dev.gl.BlitFramebuffer(0, 0, int32(rt.size.X), int32(rt.size.Y),
		int32(dst.Min.X), int32(dst.Min.Y), int32(dst.Max.X), int32(dst.Max.Y),
		ColorBufferBit, Linear)
	dev.bindFramebuffer(ReadFramebufferTarget, read)
	return nil
}

// Release deletes the framebuffer and both attachments, exactly once.
// It must be called before the context is destroyed.
func (rt *RenderTexture) Release() {
	if rt.released {
		return
	}
	rt.Unbind()
	rt.framebuffer.Release()
	rt.depth.Release()
	rt.color.Release()
	rt.released = true
	rt.complete = false
}
