// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneview is the scene viewer user interface: a resizable
// side panel and a display region showing the scene rendered offscreen.
package sceneview

import (
	"image/color"

	"cogentcore.org/sceneview/app"
	"cogentcore.org/sceneview/config"
	"cogentcore.org/sceneview/system"
)

// Colors of the user interface.
var (
	WindowColor = color.NRGBA{18, 18, 20, 255}
	PanelColor  = color.NRGBA{32, 33, 36, 255}
	HandleColor = color.NRGBA{60, 62, 68, 255}
	DragColor   = color.NRGBA{90, 120, 190, 255}
)

// Factory creates the [Viewer] for the application.
type Factory struct {
	Config *config.Config
}

// NewFactory returns a new factory for the given configuration.
func NewFactory(c *config.Config) *Factory {
	return &Factory{Config: c}
}

// WindowOptions returns the options for the window from the configuration.
func (f *Factory) WindowOptions() *system.WindowOptions {
	return f.Config.WindowOptions()
}

// CreateClient creates a new [Viewer].
func (f *Factory) CreateClient(ctx *app.Context) (app.Client, error) {
	return NewViewer(ctx, f.Config)
}

// Viewer is the [app.Client] of the scene viewer.
type Viewer struct {
	Panel *Panel

	compositor *Compositor
	display    *Display
}

// NewViewer returns a new viewer for the window of the given context.
func NewViewer(ctx *app.Context, c *config.Config) (*Viewer, error) {
	comp := NewCompositor(ctx.Window.Device())
	comp.Background = WindowColor
	d, err := NewDisplay(ctx.Window.Device(), comp)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		Panel:      NewPanel(c.Panel.Width, c.Panel.MinWidth, c.Panel.MaxWidth),
		compositor: comp,
		display:    d,
	}, nil
}

// Display returns the scene display.
func (v *Viewer) Display() *Display { return v.display }

// Compositor returns the compositor.
func (v *Viewer) Compositor() *Compositor { return v.compositor }

// HandleEvent handles panel dragging; window size changes always
// require a redraw.
func (v *Viewer) HandleEvent(ctx *app.Context, ev system.Event) bool {
	switch ev.(type) {
	case system.Resized, system.ScaleFactorChanged:
		return true
	}
	return v.Panel.HandleEvent(ev, ctx.Window.LogicalSize().Y)
}

// Render lays out the frame, resizes the scene target if needed,
// renders the scene into it and composites the frame.
func (v *Viewer) Render(ctx *app.Context) error {
	w := ctx.Window
	logical := w.LogicalSize()
	ratio := w.PixelRatio()

	panel, region := v.Panel.Layout(logical)
	img := v.display.Layout(region, ratio)
	v.display.Render(ctx.Renderer)

	handle := HandleColor
	if v.Panel.Dragging() {
		handle = DragColor
	}
	return v.compositor.Paint(w.Size(), ratio, []Shape{
		Fill{Rect: panel, Color: PanelColor},
		img,
		Fill{Rect: v.Panel.Handle(logical.Y), Color: handle},
	})
}

// Shutdown releases the scene display.
func (v *Viewer) Shutdown(ctx *app.Context) {
	v.display.Shutdown()
}
