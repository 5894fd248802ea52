// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/sceneview/dpi"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/math32"
)

// TextureID identifies a texture registered with a [Compositor].
type TextureID uint32

// Shape is an element of a composited frame: a [Fill] or an [Image].
type Shape interface {
	isShape()
}

// Fill fills a rectangle with a color.
type Fill struct {
	// Rect is in logical units with the origin at the top left.
	Rect  math32.Box2
	Color color.Color
}

// Image draws a registered texture scaled to fill a rectangle.
type Image struct {
	// Rect is in logical units with the origin at the top left.
	Rect    math32.Box2
	Texture TextureID
}

func (Fill) isShape()  {}
func (Image) isShape() {}

// Compositor draws the user interface into the default framebuffer of
// the window, including render targets registered as textures.
type Compositor struct {
	// Background is the color the window is cleared to.
	Background color.Color

	device   *gpu.Device
	textures map[TextureID]*gpu.RenderTexture
	lastID   TextureID
}

// NewCompositor returns a new compositor drawing with the given device.
func NewCompositor(dev *gpu.Device) *Compositor {
	return &Compositor{
		Background: color.Black,
		device:     dev,
		textures:   map[TextureID]*gpu.RenderTexture{},
	}
}

// RegisterTexture registers the color attachment of the given render
// target for display, returning the id to draw it with. The target
// remains owned by the caller, which must free the id before
// releasing it.
func (c *Compositor) RegisterTexture(rt *gpu.RenderTexture) TextureID {
	c.lastID++
	c.textures[c.lastID] = rt
	return c.lastID
}

// FreeTexture unregisters the texture with the given id.
func (c *Compositor) FreeTexture(id TextureID) {
	delete(c.textures, id)
}

// Textures returns the number of registered textures.
func (c *Compositor) Textures() int { return len(c.textures) }

// Paint clears the default framebuffer of a window of the given
// physical size and draws the shapes in order. Images whose target
// is not complete are skipped, leaving the background visible.
func (c *Compositor) Paint(size image.Point, ratio float32, shapes []Shape) error {
	if c.device.Bound() != nil {
		return gpu.ErrTargetBound
	}
	c.device.SetViewport(image.Rectangle{Max: size})
	c.device.Clear(c.Background, gpu.ColorBufferBit|gpu.DepthBufferBit)
	for _, s := range shapes {
		switch s := s.(type) {
		case Fill:
			c.device.FillRect(c.physical(s.Rect, size, ratio), s.Color)
		case Image:
			rt, ok := c.textures[s.Texture]
			if !ok {
				return fmt.Errorf("sceneview: texture %d is not registered", s.Texture)
			}
			if !rt.Complete() {
				continue
			}
			if err := rt.BlitTo(c.physical(s.Rect, size, ratio)); err != nil {
				return err
			}
		}
	}
	return nil
}

// physical converts a logical rectangle with a top-left origin to
// framebuffer pixels with a bottom-left origin.
func (c *Compositor) physical(r math32.Box2, size image.Point, ratio float32) image.Rectangle {
	pr := dpi.RectToPhysical(r, ratio).Intersect(image.Rectangle{Max: size})
	return gpu.FlipY(pr, size.Y)
}
