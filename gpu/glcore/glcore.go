// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [gpu.GL] on the OpenGL 3.3 core profile
// through github.com/go-gl/gl.
package glcore

import (
	"fmt"

	"cogentcore.org/sceneview/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// GL calls the OpenGL functions of the current context.
type GL struct{}

// New loads the OpenGL function pointers for the context that is
// current on the calling thread and returns a [GL] using them.
func New() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: loading OpenGL functions: %w", err)
	}
	return &GL{}, nil
}

func (GL) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (GL) DeleteFramebuffer(fb uint32) { gl.DeleteFramebuffers(1, &fb) }

func (GL) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (GL) DeleteRenderbuffer(rb uint32) { gl.DeleteRenderbuffers(1, &rb) }

func (GL) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (GL) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (GL) BindFramebuffer(target, fb uint32) { gl.BindFramebuffer(target, fb) }

func (GL) BindRenderbuffer(rb uint32) { gl.BindRenderbuffer(gl.RENDERBUFFER, rb) }

func (GL) BindTexture(tex uint32) { gl.BindTexture(gl.TEXTURE_2D, tex) }

func (GL) TexParameteri(pname uint32, param int32) {
	gl.TexParameteri(gl.TEXTURE_2D, pname, param)
}

func (GL) TexImage2D(internalFormat int32, width, height int32, format, xtype uint32) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, format, xtype, nil)
}

func (GL) RenderbufferStorage(internalFormat uint32, width, height int32) {
	gl.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, width, height)
}

func (GL) FramebufferTexture2D(attachment, tex uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, tex, 0)
}

func (GL) FramebufferRenderbuffer(attachment, rb uint32) {
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, rb)
}

func (GL) CheckFramebufferStatus() uint32 { return gl.CheckFramebufferStatus(gl.FRAMEBUFFER) }

func (GL) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (GL) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (GL) Enable(cap uint32) { gl.Enable(cap) }

func (GL) Disable(cap uint32) { gl.Disable(cap) }

func (GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (GL) Clear(mask uint32) { gl.Clear(mask) }

func (GL) GetError() uint32 { return gl.GetError() }

func (GL) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

var _ gpu.GL = GL{}
