// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/system"
)

// HandleWidth is the width of the drag handle on the edge
// of the panel, in logical units.
const HandleWidth float32 = 6

// Panel is the side panel on the left of the window, resizable by
// dragging its right edge. All values are in logical units.
type Panel struct {
	// Width is the current width.
	Width float32

	// MinWidth and MaxWidth bound the width.
	MinWidth, MaxWidth float32

	dragging bool
}

// NewPanel returns a new panel of the given width, clamped to the bounds.
func NewPanel(width, minWidth, maxWidth float32) *Panel {
	p := &Panel{MinWidth: minWidth, MaxWidth: max(minWidth, maxWidth)}
	p.SetWidth(width)
	return p
}

// SetWidth sets the width, clamped to the bounds.
func (p *Panel) SetWidth(width float32) {
	p.Width = math32.Clamp(width, p.MinWidth, p.MaxWidth)
}

// Dragging returns whether the handle is being dragged.
func (p *Panel) Dragging() bool { return p.dragging }

// Handle returns the drag handle region for a window of the given height.
func (p *Panel) Handle(height float32) math32.Box2 {
	return math32.B2(p.Width-HandleWidth/2, 0, p.Width+HandleWidth/2, height)
}

// Layout divides a window of the given logical size into the panel
// and the region displaying the scene, which is the rest of the window.
// The panel never extends past the window.
func (p *Panel) Layout(window math32.Vector2) (panel, display math32.Box2) {
	w := math32.Clamp(p.Width, 0, max(window.X, 0))
	h := max(window.Y, 0)
	panel = math32.B2(0, 0, w, h)
	display = math32.B2(w, 0, max(window.X, w), h)
	return
}

// HandleEvent handles mouse events for dragging the handle in a window
// of the given logical height. It returns whether the layout changed
// or the drag state changed.
func (p *Panel) HandleEvent(ev system.Event, height float32) bool {
	switch ev := ev.(type) {
	case system.MouseButton:
		if ev.Button != 0 {
			return false
		}
		if ev.Pressed {
			if p.Handle(height).ContainsPoint(ev.Pos) {
				p.dragging = true
				return true
			}
			return false
		}
		if p.dragging {
			p.dragging = false
			return true
		}
	case system.MouseMoved:
		if !p.dragging {
			return false
		}
		old := p.Width
		p.SetWidth(ev.Pos.X)
		return p.Width != old
	}
	return false
}
