// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"testing"

	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/system"
	"github.com/stretchr/testify/assert"
)

func TestNewPanel(t *testing.T) {
	assert.Equal(t, float32(260), NewPanel(260, 200, 500).Width)
	assert.Equal(t, float32(200), NewPanel(10, 200, 500).Width)
	assert.Equal(t, float32(500), NewPanel(900, 200, 500).Width)
}

func TestPanelLayout(t *testing.T) {
	p := NewPanel(260, 200, 500)
	panel, display := p.Layout(math32.Vec2(800, 600))
	assert.Equal(t, math32.B2(0, 0, 260, 600), panel)
	assert.Equal(t, math32.B2(260, 0, 800, 600), display)

	panel, display = p.Layout(math32.Vec2(100, 50))
	assert.Equal(t, math32.B2(0, 0, 100, 50), panel)
	assert.Equal(t, math32.Vec2(0, 50), display.Size())
}

func TestPanelDrag(t *testing.T) {
	p := NewPanel(260, 200, 500)

	// presses outside the handle are ignored
	assert.False(t, p.HandleEvent(system.MouseButton{Pressed: true, Pos: math32.Vec2(100, 10)}, 600))
	assert.False(t, p.HandleEvent(system.MouseMoved{Pos: math32.Vec2(300, 10)}, 600))
	assert.Equal(t, float32(260), p.Width)

	// secondary button is ignored
	assert.False(t, p.HandleEvent(system.MouseButton{Button: 1, Pressed: true, Pos: math32.Vec2(260, 10)}, 600))

	assert.True(t, p.HandleEvent(system.MouseButton{Pressed: true, Pos: math32.Vec2(258, 10)}, 600))
	assert.True(t, p.Dragging())
	assert.True(t, p.HandleEvent(system.MouseMoved{Pos: math32.Vec2(350, 10)}, 600))
	assert.Equal(t, float32(350), p.Width)
	assert.True(t, p.HandleEvent(system.MouseMoved{Pos: math32.Vec2(900, 10)}, 600))
	assert.Equal(t, float32(500), p.Width)
	assert.False(t, p.HandleEvent(system.MouseMoved{Pos: math32.Vec2(950, 10)}, 600), "no change at the bound")
	assert.True(t, p.HandleEvent(system.MouseMoved{Pos: math32.Vec2(-20, 10)}, 600))
	assert.Equal(t, float32(200), p.Width)

	assert.True(t, p.HandleEvent(system.MouseButton{Pos: math32.Vec2(0, 10)}, 600))
	assert.False(t, p.Dragging())
	assert.False(t, p.HandleEvent(system.MouseMoved{Pos: math32.Vec2(300, 10)}, 600))
	assert.Equal(t, float32(200), p.Width)
}
