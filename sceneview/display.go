// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"fmt"
	"log/slog"

	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/dpi"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/scene"
)

// Display shows the scene in a region of the window. It renders the
// scene into an offscreen target that it keeps the size of the region
// in physical pixels, and composites that target into the region.
type Display struct {
	target     *gpu.RenderTexture
	texture    TextureID
	compositor *Compositor

	// region last allocated by layout, in logical units.
	region math32.Box2
}

// NewDisplay creates the render target of a new display and
// registers it with the compositor.
func NewDisplay(dev *gpu.Device, comp *Compositor) (*Display, error) {
	rt, err := gpu.NewRenderTexture(dev)
	if err != nil {
		return nil, fmt.Errorf("sceneview: creating scene render target: %w", err)
	}
	d := &Display{target: rt, compositor: comp}
	d.texture = comp.RegisterTexture(rt)
	return d, nil
}

// Target returns the render target.
func (d *Display) Target() *gpu.RenderTexture { return d.target }

// Texture returns the id of the target registered with the compositor.
func (d *Display) Texture() TextureID { return d.texture }

// Layout allocates the given logical region to the display and resizes
// the render target if the region needs a different number of physical
// pixels at the given ratio. A failed resize is logged; the scene is
// then not rendered until a later resize succeeds.
func (d *Display) Layout(region math32.Box2, ratio float32) Image {
	d.region = region
	size, changed := dpi.Resize(d.target.Size(), region.Size(), ratio)
	if changed {
		if err := d.target.SetSize(size); err != nil {
			var ferr *gpu.FramebufferIncompleteError
			if errors.As(err, &ferr) {
				slog.Error("sceneview: scene render target is incomplete", "size", ferr.Size, "status", gpu.StatusString(ferr.Status))
			} else {
				slog.Error("sceneview: resizing scene render target", "size", size, "err", err)
			}
		}
	}
	return Image{Rect: region, Texture: d.texture}
}

// Render renders the scene into the target, unless the target is
// incomplete.
func (d *Display) Render(r *scene.Renderer) {
	if !d.target.Complete() {
		return
	}
	if errors.Log(d.target.Bind()) != nil {
		return
	}
	r.RenderScenePass()
	d.target.Unbind()
}

// Shutdown unregisters the texture and releases the render target.
func (d *Display) Shutdown() {
	d.compositor.FreeTexture(d.texture)
	d.target.Release()
}
