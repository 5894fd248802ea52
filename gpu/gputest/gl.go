// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a fake [gpu.GL] that records GL state and
// calls in memory, so that code managing GPU objects can be tested
// without a display or a driver.
package gputest

import (
	"image"

	"cogentcore.org/sceneview/gpu"
)

const invalidValue = 0x0501

// GL is a fake [gpu.GL]. Object names start at 1 and are never reused.
// Framebuffer completeness is computed from the attachments: both must
// be present, alive, and have storage of the same non-zero size.
type GL struct {
	// MaxSize is the largest texture or renderbuffer dimension accepted;
	// larger storage requests fail with GL_INVALID_VALUE and leave the
	// previous storage in place, like a real driver. 0 means 16384.
	MaxSize int

	// FailGen makes Gen* return 0 for the given kinds:
	// "framebuffer", "renderbuffer" or "texture".
	FailGen map[string]bool

	// ForceStatus, if non-zero, is returned by every completeness check.
	ForceStatus uint32

	// VersionString is returned for GetString(gpu.Version).
	VersionString string

	// Bindings.
	DrawFB, ReadFB uint32
	Renderbuffer   uint32
	Texture        uint32

	ViewportRect image.Rectangle
	ScissorRect  image.Rectangle
	ScissorOn    bool
	ClearRGBA    [4]float32

	// Recorded operations.
	TexImageCalls    int
	StorageCalls     int
	StatusChecks     int
	FramebufferBinds int
	Clears           []Clear
	Blits            []Blit
	DeletedObjects   []string

	nextID        uint32
	framebuffers  map[uint32]*fbState
	renderbuffers map[uint32]image.Point
	textures      map[uint32]image.Point
	texParams     map[uint32]map[uint32]int32
	errors        []uint32
}

type fbState struct {
	color, depth uint32
}

// Clear records a Clear call.
type Clear struct {
	Framebuffer uint32
	Mask        uint32
	Color       [4]float32
	// Scissor is the scissor rectangle if the scissor test was enabled.
	Scissor *image.Rectangle
}

// Blit records a BlitFramebuffer call.
type Blit struct {
	Read, Draw uint32
	Src, Dst   image.Rectangle
}

// New returns a new fake GL.
func New() *GL {
	return &GL{
		VersionString: "3.3.0 gputest",
		framebuffers:  map[uint32]*fbState{},
		renderbuffers: map[uint32]image.Point{},
		textures:      map[uint32]image.Point{},
		texParams:     map[uint32]map[uint32]int32{},
	}
}

// Live returns the number of framebuffers, renderbuffers and textures
// that have been generated and not deleted.
func (g *GL) Live() int {
	return len(g.framebuffers) + len(g.renderbuffers) + len(g.textures)
}

// TextureSize returns the storage size of the given texture.
func (g *GL) TextureSize(tex uint32) image.Point { return g.textures[tex] }

// RenderbufferSize returns the storage size of the given renderbuffer.
func (g *GL) RenderbufferSize(rb uint32) image.Point { return g.renderbuffers[rb] }

// TexParameter returns the value of the given parameter set on tex.
func (g *GL) TexParameter(tex, pname uint32) int32 { return g.texParams[tex][pname] }

// Attachments returns the texture and renderbuffer attached to fb.
func (g *GL) Attachments(fb uint32) (color, depth uint32) {
	if st := g.framebuffers[fb]; st != nil {
		return st.color, st.depth
	}
	return 0, 0
}

// PushError queues a GL error code to be returned by GetError.
func (g *GL) PushError(code uint32) { g.errors = append(g.errors, code) }

func (g *GL) maxSize() int {
	if g.MaxSize > 0 {
		return g.MaxSize
	}
	return 16384
}

func (g *GL) gen(kind string) uint32 {
	if g.FailGen[kind] {
		return 0
	}
	g.nextID++
	return g.nextID
}

func (g *GL) GenFramebuffer() uint32 {
	id := g.gen("framebuffer")
	if id != 0 {
		g.framebuffers[id] = &fbState{}
	}
	return id
}

func (g *GL) DeleteFramebuffer(fb uint32) {
	delete(g.framebuffers, fb)
	if g.DrawFB == fb {
		g.DrawFB = 0
	}
	if g.ReadFB == fb {
		g.ReadFB = 0
	}
	g.DeletedObjects = append(g.DeletedObjects, "framebuffer")
}

func (g *GL) GenRenderbuffer() uint32 {
	id := g.gen("renderbuffer")
	if id != 0 {
		g.renderbuffers[id] = image.Point{}
	}
	return id
}

func (g *GL) DeleteRenderbuffer(rb uint32) {
	delete(g.renderbuffers, rb)
	if g.Renderbuffer == rb {
		g.Renderbuffer = 0
	}
	g.DeletedObjects = append(g.DeletedObjects, "renderbuffer")
}

func (g *GL) GenTexture() uint32 {
	id := g.gen("texture")
	if id != 0 {
		g.textures[id] = image.Point{}
		g.texParams[id] = map[uint32]int32{}
	}
	return id
}

func (g *GL) DeleteTexture(tex uint32) {
	delete(g.textures, tex)
	delete(g.texParams, tex)
	if g.Texture == tex {
		g.Texture = 0
	}
	g.DeletedObjects = append(g.DeletedObjects, "texture")
}

func (g *GL) BindFramebuffer(target, fb uint32) {
	g.FramebufferBinds++
	switch target {
	case gpu.FramebufferTarget:
		g.DrawFB, g.ReadFB = fb, fb
	case gpu.DrawFramebufferTarget:
		g.DrawFB = fb
	case gpu.ReadFramebufferTarget:
		g.ReadFB = fb
	}
}

func (g *GL) BindRenderbuffer(rb uint32) { g.Renderbuffer = rb }

func (g *GL) BindTexture(tex uint32) { g.Texture = tex }

func (g *GL) TexParameteri(pname uint32, param int32) {
	if p, ok := g.texParams[g.Texture]; ok {
		p[pname] = param
	}
}

func (g *GL) TexImage2D(internalFormat int32, width, height int32, format, xtype uint32) {
	g.TexImageCalls++
	if _, ok := g.textures[g.Texture]; !ok {
		g.PushError(invalidValue)
		return
	}
	if width < 0 || height < 0 || int(width) > g.maxSize() || int(height) > g.maxSize() {
		g.PushError(invalidValue)
		return
	}
	g.textures[g.Texture] = image.Pt(int(width), int(height))
}

func (g *GL) RenderbufferStorage(internalFormat uint32, width, height int32) {
	g.StorageCalls++
	if _, ok := g.renderbuffers[g.Renderbuffer]; !ok {
		g.PushError(invalidValue)
		return
	}
	if width < 0 || height < 0 || int(width) > g.maxSize() || int(height) > g.maxSize() {
		g.PushError(invalidValue)
		return
	}
	g.renderbuffers[g.Renderbuffer] = image.Pt(int(width), int(height))
}

func (g *GL) FramebufferTexture2D(attachment, tex uint32) {
	if st := g.framebuffers[g.DrawFB]; st != nil && attachment == gpu.ColorAttachment0 {
		st.color = tex
	}
}

func (g *GL) FramebufferRenderbuffer(attachment, rb uint32) {
	if st := g.framebuffers[g.DrawFB]; st != nil && attachment == gpu.DepthStencilAttachment {
		st.depth = rb
	}
}

func (g *GL) CheckFramebufferStatus() uint32 {
	g.StatusChecks++
	if g.ForceStatus != 0 {
		return g.ForceStatus
	}
	if g.DrawFB == 0 {
		return gpu.FramebufferComplete
	}
	st := g.framebuffers[g.DrawFB]
	if st == nil {
		return gpu.FramebufferUndefined
	}
	csz, cok := g.textures[st.color]
	dsz, dok := g.renderbuffers[st.depth]
	switch {
	case st.color == 0 && st.depth == 0:
		return gpu.FramebufferIncompleteMissingAttachment
	case !cok || !dok:
		return gpu.FramebufferIncompleteAttachment
	case csz.X == 0 || csz.Y == 0 || csz != dsz:
		return gpu.FramebufferIncompleteAttachment
	}
	return gpu.FramebufferComplete
}

func (g *GL) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	g.Blits = append(g.Blits, Blit{
		Read: g.ReadFB,
		Draw: g.DrawFB,
		Src:  image.Rect(int(srcX0), int(srcY0), int(srcX1), int(srcY1)),
		Dst:  image.Rect(int(dstX0), int(dstY0), int(dstX1), int(dstY1)),
	})
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.ViewportRect = image.Rect(int(x), int(y), int(x+width), int(y+height))
}

func (g *GL) Scissor(x, y, width, height int32) {
	g.ScissorRect = image.Rect(int(x), int(y), int(x+width), int(y+height))
}

func (g *GL) Enable(cap uint32) {
	if cap == gpu.ScissorTest {
		g.ScissorOn = true
	}
}

func (g *GL) Disable(cap uint32) {
	if cap == gpu.ScissorTest {
		g.ScissorOn = false
	}
}

func (g *GL) ClearColor(r, gr, b, a float32) { g.ClearRGBA = [4]float32{r, gr, b, a} }

func (g *GL) Clear(mask uint32) {
	c := Clear{Framebuffer: g.DrawFB, Mask: mask, Color: g.ClearRGBA}
	if g.ScissorOn {
		sr := g.ScissorRect
		c.Scissor = &sr
	}
	g.Clears = append(g.Clears, c)
}

func (g *GL) GetError() uint32 {
	if len(g.errors) == 0 {
		return gpu.NoError
	}
	code := g.errors[0]
	g.errors = g.errors[1:]
	return code
}

func (g *GL) GetString(name uint32) string {
	switch name {
	case gpu.Version:
		return g.VersionString
	case gpu.Renderer:
		return "gputest"
	case gpu.Vendor:
		return "Cogent Core"
	}
	return ""
}

var _ gpu.GL = (*GL)(nil)
