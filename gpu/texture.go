// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Framebuffer owns a GL framebuffer object.
type Framebuffer struct {
	dev *Device
	id  uint32
}

// NewFramebuffer allocates a new framebuffer object.
func (d *Device) NewFramebuffer() (*Framebuffer, error) {
	id := d.gl.GenFramebuffer()
	if id == 0 {
		return nil, &ResourceCreationError{Kind: "framebuffer"}
	}
	d.stats.Framebuffers++
	return &Framebuffer{dev: d, id: id}, nil
}

// ID returns the GL name, or 0 once released.
func (fb *Framebuffer) ID() uint32 { return fb.id }

// Release deletes the framebuffer. It is safe to call more than once,
// and on a nil Framebuffer.
func (fb *Framebuffer) Release() {
	if fb == nil || fb.id == 0 {
		return
	}
	fb.dev.gl.DeleteFramebuffer(fb.id)
	fb.dev.stats.Framebuffers--
	fb.id = 0
}

// Renderbuffer owns a GL renderbuffer object used as a depth/stencil attachment.
type Renderbuffer struct {
	dev  *Device
	id   uint32
	size image.Point
}

// NewRenderbuffer allocates a new renderbuffer object with no storage.
func (d *Device) NewRenderbuffer() (*Renderbuffer, error) {
	id := d.gl.GenRenderbuffer()
	if id == 0 {
		return nil, &ResourceCreationError{Kind: "renderbuffer"}
	}
	d.stats.Renderbuffers++
	return &Renderbuffer{dev: d, id: id}, nil
}

// ID returns the GL name, or 0 once released.
func (rb *Renderbuffer) ID() uint32 { return rb.id }

// Size returns the size of the current storage.
func (rb *Renderbuffer) Size() image.Point { return rb.size }

// SetStorage replaces the backing storage with DEPTH24_STENCIL8 storage
// of the given size, keeping the object itself. If the allocation fails
// the previous storage and size are kept and a [GLError] is returned.
func (rb *Renderbuffer) SetStorage(size image.Point) error {
	gl := rb.dev.gl
	gl.BindRenderbuffer(rb.id)
	gl.RenderbufferStorage(Depth24Stencil8, int32(size.X), int32(size.Y))
	gl.BindRenderbuffer(0)
	rb.dev.stats.RenderbufferAllocs++
	if err := rb.dev.CheckError("renderbuffer storage"); err != nil {
		return err
	}
	rb.size = size
	return nil
}

// Release deletes the renderbuffer. It is safe to call more than once,
// and on a nil Renderbuffer.
func (rb *Renderbuffer) Release() {
	if rb == nil || rb.id == 0 {
		return
	}
	rb.dev.gl.DeleteRenderbuffer(rb.id)
	rb.dev.stats.Renderbuffers--
	rb.id = 0
}

// Texture owns a GL 2D texture object used as a color attachment
// and sampled by the compositor.
type Texture struct {
	dev  *Device
	id   uint32
	size image.Point
}

// NewTexture allocates a new texture object with no storage.
func (d *Device) NewTexture() (*Texture, error) {
	id := d.gl.GenTexture()
	if id == 0 {
		return nil, &ResourceCreationError{Kind: "texture"}
	}
	d.stats.Textures++
	return &Texture{dev: d, id: id}, nil
}

// ID returns the GL name, or 0 once released.
func (tx *Texture) ID() uint32 { return tx.id }

// Size returns the size of the current storage.
func (tx *Texture) Size() image.Point { return tx.size }

// SetStorage replaces the backing storage with uninitialized RGBA8
// storage of the given size, with linear filtering and edge clamping.
// If the allocation fails the previous storage and size are kept and a
// [GLError] is returned.
func (tx *Texture) SetStorage(size image.Point) error {
	gl := tx.dev.gl
	gl.BindTexture(tx.id)
	gl.TexParameteri(TextureMinFilter, Linear)
	gl.TexParameteri(TextureMagFilter, Linear)
	gl.TexParameteri(TextureWrapS, ClampToEdge)
	gl.TexParameteri(TextureWrapT, ClampToEdge)
	gl.TexImage2D(RGBA8, int32(size.X), int32(size.Y), RGBA, UnsignedByte)
	gl.BindTexture(0)
	tx.dev.stats.TextureAllocs++
	if err := tx.dev.CheckError("texture storage"); err != nil {
		return err
	}
	tx.size = size
	return nil
}

// Release deletes the texture. It is safe to call more than once,
// and on a nil Texture.
func (tx *Texture) Release() {
	if tx == nil || tx.id == 0 {
		return
	}
	tx.dev.gl.DeleteTexture(tx.id)
	tx.dev.stats.Textures--
	tx.id = 0
}
