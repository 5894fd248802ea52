// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// GL is the subset of the OpenGL 3.3 core profile that this package
// and its callers issue. Texture calls always target TEXTURE_2D,
// renderbuffer calls RENDERBUFFER, and attachment calls the framebuffer
// currently bound to FRAMEBUFFER. The real implementation is in
// package glcore; gputest provides a recording fake.
//
// All methods must be called on the thread the context is current on.
type GL interface {
	// GenFramebuffer returns a new framebuffer name, or 0 on failure.
	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)

	// GenRenderbuffer returns a new renderbuffer name, or 0 on failure.
	GenRenderbuffer() uint32
	DeleteRenderbuffer(rb uint32)

	// GenTexture returns a new texture name, or 0 on failure.
	GenTexture() uint32
	DeleteTexture(tex uint32)

	BindFramebuffer(target, fb uint32)
	BindRenderbuffer(rb uint32)
	BindTexture(tex uint32)

	TexParameteri(pname uint32, param int32)
	TexImage2D(internalFormat int32, width, height int32, format, xtype uint32)
	RenderbufferStorage(internalFormat uint32, width, height int32)

	FramebufferTexture2D(attachment, tex uint32)
	FramebufferRenderbuffer(attachment, rb uint32)
	CheckFramebufferStatus() uint32

	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32)

	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	Enable(cap uint32)
	Disable(cap uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	GetError() uint32
	GetString(name uint32) string
}

// OpenGL enum values used through [GL].
const (
	NoError = 0

	FramebufferTarget     = 0x8D40
	ReadFramebufferTarget = 0x8CA8
	DrawFramebufferTarget = 0x8CA9

	ColorAttachment0       = 0x8CE0
	DepthStencilAttachment = 0x821A

	FramebufferComplete                    = 0x8CD5
	FramebufferUndefined                   = 0x8219
	FramebufferIncompleteAttachment        = 0x8CD6
	FramebufferIncompleteMissingAttachment = 0x8CD7
	FramebufferIncompleteDrawBuffer        = 0x8CDB
	FramebufferIncompleteReadBuffer        = 0x8CDC
	FramebufferUnsupported                 = 0x8CDD
	FramebufferIncompleteMultisample       = 0x8D56

	RGBA            = 0x1908
	RGBA8           = 0x8058
	UnsignedByte    = 0x1401
	Depth24Stencil8 = 0x88F0

	TextureMagFilter = 0x2800
	TextureMinFilter = 0x2801
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803
	Nearest          = 0x2600
	Linear           = 0x2601
	ClampToEdge      = 0x812F

	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400
	ColorBufferBit   = 0x00004000

	ScissorTest = 0x0C11

	Vendor   = 0x1F00
	Renderer = 0x1F01
	Version  = 0x1F02
)

// StatusString returns the name of the given framebuffer status code.
func StatusString(status uint32) string {
	switch status {
	case FramebufferComplete:
		return "FRAMEBUFFER_COMPLETE"
	case FramebufferUndefined:
		return "FRAMEBUFFER_UNDEFINED"
	case FramebufferIncompleteAttachment:
		return "FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case FramebufferIncompleteMissingAttachment:
		return "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case FramebufferIncompleteDrawBuffer:
		return "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER"
	case FramebufferIncompleteReadBuffer:
		return "FRAMEBUFFER_INCOMPLETE_READ_BUFFER"
	case FramebufferUnsupported:
		return "FRAMEBUFFER_UNSUPPORTED"
	case FramebufferIncompleteMultisample:
		return "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	}
	return "unknown status"
}
