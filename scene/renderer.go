// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene draws the 3D scene into the currently bound target.
package scene

import "cogentcore.org/sceneview/gpu"

// Background is the color the scene pass clears to.
var Background = [4]float32{0.2, 0.22, 0.26, 1}

// Renderer issues the draw commands for the scene. It draws into
// whatever framebuffer is bound; it never binds one itself.
type Renderer struct {
	device   *gpu.Device
	released bool
}

// NewRenderer returns a new renderer for the given device.
func NewRenderer(dev *gpu.Device) *Renderer {
	return &Renderer{device: dev}
}

// RenderScenePass clears the color and depth buffers of the bound
// target to the background and draws the scene.
func (r *Renderer) RenderScenePass() {
	if r.released {
		return
	}
	bg := Background
	r.device.ClearRGBA(bg[0], bg[1], bg[2], bg[3], gpu.ColorBufferBit|gpu.DepthBufferBit)
}

// RenderColor clears the color buffer of the bound target
// to the given opaque color.
func (r *Renderer) RenderColor(red, green, blue float32) {
	if r.released {
		return
	}
	r.device.ClearRGBA(red, green, blue, 1, gpu.ColorBufferBit)
}

// Release releases the GPU objects of the renderer. It is safe to
// call more than once.
func (r *Renderer) Release() {
	r.released = true
}
