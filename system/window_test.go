// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system_test

import (
	"image"
	"testing"

	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/system"
	"cogentcore.org/sceneview/system/systemtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGLWindow(t *testing.T) {
	pf := systemtest.NewPlatform()
	w, err := system.NewGLWindow(pf, nil)
	require.NoError(t, err)
	defer w.Release()

	assert.Equal(t, system.ContextVersion{Major: 4, Minor: 1}, w.Version())
	assert.Equal(t, []system.ContextVersion{{Major: 4, Minor: 1}}, pf.Created)
	assert.True(t, pf.Window.Current)
	assert.Equal(t, 1, pf.SwapIntervalSet)
	assert.Equal(t, image.Pt(800, 600), w.Size())
	assert.Equal(t, image.Rect(0, 0, 800, 600), pf.GL.ViewportRect)
	assert.NotNil(t, w.Device())
}

func TestContextVersionFallback(t *testing.T) {
	pf := systemtest.NewPlatform()
	pf.Unsupported = map[system.ContextVersion]bool{{Major: 4, Minor: 1}: true}
	w, err := system.NewGLWindow(pf, &system.WindowOptions{Title: "fallback"})
	require.NoError(t, err)
	defer w.Release()

	assert.Equal(t, system.ContextVersion{Major: 3, Minor: 3}, w.Version())
	assert.Equal(t, "3.3 core", w.Version().String())

	// the window still resizes and presents
	w.Resize(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), w.Size())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), pf.GL.ViewportRect)
	require.NoError(t, w.Present())
	assert.Equal(t, 1, pf.Window.Swaps)
}

func TestNoContextVersion(t *testing.T) {
	pf := systemtest.NewPlatform()
	pf.Unsupported = map[system.ContextVersion]bool{{Major: 4, Minor: 1}: true, {Major: 3, Minor: 3}: true}
	w, err := system.NewGLWindow(pf, nil)
	assert.Nil(t, w)
	var ferr *system.FatalInitError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, system.StageWindow, ferr.Stage)
	assert.Contains(t, err.Error(), "4.1 core")
	assert.Contains(t, err.Error(), "3.3 core")
}

func TestLoaderFailure(t *testing.T) {
	pf := systemtest.NewPlatform()
	pf.LoadErr = errors.New("no GL")
	w, err := system.NewGLWindow(pf, nil)
	assert.Nil(t, w)
	var ferr *system.FatalInitError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, system.StageLoader, ferr.Stage)
	assert.ErrorIs(t, err, pf.LoadErr)
	assert.Equal(t, 1, pf.Window.Destroyed, "the window is destroyed on failure")
}

func TestResizeClamps(t *testing.T) {
	pf := systemtest.NewPlatform()
	w, err := system.NewGLWindow(pf, nil)
	require.NoError(t, err)
	defer w.Release()

	w.Resize(image.Pt(0, 0))
	assert.Equal(t, image.Pt(1, 1), w.Size())
	assert.Equal(t, image.Rect(0, 0, 1, 1), pf.GL.ViewportRect)
}

func TestPixelRatio(t *testing.T) {
	pf := systemtest.NewPlatform()
	pf.FramebufferSize = math32.Vec2(1600, 1200)
	pf.Scale = 2
	w, err := system.NewGLWindow(pf, nil)
	require.NoError(t, err)
	defer w.Release()

	assert.Equal(t, float32(2), w.PixelRatio())
	assert.Equal(t, math32.Vec2(800, 600), w.LogicalSize())

	pf.Window.Width, pf.Window.Height = 2400, 1800
	w.SetPixelRatio(3)
	assert.Equal(t, image.Pt(2400, 1800), w.Size())
	assert.Equal(t, math32.Vec2(800, 600), w.LogicalSize())

	w.SetPixelRatio(0)
	assert.Equal(t, float32(1), w.PixelRatio())
}

func TestPresentErrors(t *testing.T) {
	pf := systemtest.NewPlatform()
	w, err := system.NewGLWindow(pf, nil)
	require.NoError(t, err)

	pf.GL.PushError(0x0502)
	require.NoError(t, w.Present())
	assert.Equal(t, 1, pf.Window.Swaps, "GL errors are logged and the frame is still swapped")
	assert.NoError(t, w.Device().CheckError("frame"), "error flags are drained")

	pf.Window.SwapPanic = "context lost"
	err = w.Present()
	var perr *system.PresentationError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, pf.Window.Swaps, "the frame is dropped")
	assert.Contains(t, err.Error(), "context lost")

	pf.Window.SwapPanic = nil
	assert.NoError(t, w.Present())

	w.Release()
	w.Release()
	assert.Equal(t, 1, pf.Window.Destroyed)
	assert.ErrorIs(t, w.Present(), system.ErrReleased)
}

func TestRequestRedraw(t *testing.T) {
	pf := systemtest.NewPlatform()
	w, err := system.NewGLWindow(pf, nil)
	require.NoError(t, err)
	defer w.Release()
	w.RequestRedraw()
	assert.Equal(t, 1, pf.Redraws)
}

func TestWindowOptionsFixup(t *testing.T) {
	opts := &system.WindowOptions{}
	opts.Fixup()
	assert.NotEmpty(t, opts.Title)
	assert.Equal(t, system.DefaultContextVersions, opts.ContextVersions)
	assert.Greater(t, opts.Size.X, float32(0))

	opts = &system.WindowOptions{Title: "x", Size: math32.Vec2(300, 200), ContextVersions: []system.ContextVersion{{Major: 3, Minor: 3}}}
	opts.Fixup()
	assert.Equal(t, "x", opts.Title)
	assert.Equal(t, math32.Vec2(300, 200), opts.Size)
	assert.Len(t, opts.ContextVersions, 1)
}

func TestEventStrings(t *testing.T) {
	events := []system.Event{
		system.Resumed{}, system.Suspended{}, system.CloseRequested{},
		system.Resized{Size: image.Pt(3, 4)}, system.ScaleFactorChanged{Ratio: 2},
		system.RedrawRequested{}, system.MouseMoved{}, system.MouseButton{Pressed: true},
	}
	for _, ev := range events {
		s, ok := ev.(interface{ String() string })
		require.True(t, ok)
		assert.NotEmpty(t, s.String())
	}
	assert.Equal(t, "Resized((3,4))", system.Resized{Size: image.Pt(3, 4)}.String())
}
