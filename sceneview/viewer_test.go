// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"testing"

	"cogentcore.org/sceneview/app"
	"cogentcore.org/sceneview/config"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/gpu/gputest"
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/scene"
	"cogentcore.org/sceneview/system"
	"cogentcore.org/sceneview/system/systemtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewer(t *testing.T, pf *systemtest.Platform) (*app.Context, *Viewer) {
	t.Helper()
	w, err := system.NewGLWindow(pf, nil)
	require.NoError(t, err)
	ctx := &app.Context{Window: w, Renderer: scene.NewRenderer(w.Device()), Time: &app.Time{}}
	v, err := NewViewer(ctx, config.Default())
	require.NoError(t, err)
	return ctx, v
}

// sceneClears returns the clears issued into the given framebuffer.
func sceneClears(gl *gputest.GL, fb uint32) int {
	n := 0
	for _, c := range gl.Clears {
		if c.Framebuffer == fb {
			n++
		}
	}
	return n
}

func TestRender(t *testing.T) {
	pf := systemtest.NewPlatform()
	ctx, v := newViewer(t, pf)
	gl := pf.GL
	rt := v.Display().Target()

	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(540, 600), rt.Size())
	assert.True(t, rt.Complete())
	assert.Equal(t, 1, sceneClears(gl, rt.Framebuffer().ID()))
	require.Len(t, gl.Blits, 1)
	assert.Equal(t, image.Rect(260, 0, 800, 600), gl.Blits[0].Dst)
	assert.Equal(t, image.Rect(0, 0, 540, 600), gl.Blits[0].Src)
	assert.Nil(t, ctx.Window.Device().Bound())
	assert.Equal(t, uint32(0), gl.DrawFB)
	assert.Equal(t, image.Rect(0, 0, 800, 600), gl.ViewportRect)
}

func TestRedrawSameSizeNoRealloc(t *testing.T) {
	pf := systemtest.NewPlatform()
	ctx, v := newViewer(t, pf)
	dev := ctx.Window.Device()

	require.NoError(t, v.Render(ctx))
	stats := dev.Stats()
	storage := pf.GL.TexImageCalls + pf.GL.StorageCalls

	require.NoError(t, v.Render(ctx))
	assert.Equal(t, stats, dev.Stats())
	assert.Equal(t, storage, pf.GL.TexImageCalls+pf.GL.StorageCalls)
	assert.Len(t, pf.GL.Blits, 2)
}

func TestRenderFollowsWindow(t *testing.T) {
	pf := systemtest.NewPlatform()
	ctx, v := newViewer(t, pf)
	rt := v.Display().Target()

	ctx.Window.Resize(image.Pt(1000, 700))
	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(740, 700), rt.Size())

	// narrower than the panel: the display region is empty,
	// and the target is clamped to 1x1
	ctx.Window.Resize(image.Pt(100, 700))
	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(1, 700), rt.Size())

	ctx.Window.Resize(image.Pt(0, 0))
	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(1, 1), rt.Size())
}

func TestRenderHighDPI(t *testing.T) {
	pf := systemtest.NewPlatform()
	pf.FramebufferSize = math32.Vec2(1600, 1200)
	pf.Scale = 2
	ctx, v := newViewer(t, pf)

	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(1080, 1200), v.Display().Target().Size())
	assert.Equal(t, image.Rect(520, 0, 1600, 1200), pf.GL.Blits[0].Dst)

	// moving to a display with a lower ratio
	pf.Window.Width, pf.Window.Height = 800, 600
	ctx.Window.SetPixelRatio(1)
	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(540, 600), v.Display().Target().Size())
}

func TestRenderIncomplete(t *testing.T) {
	pf := systemtest.NewPlatform()
	ctx, v := newViewer(t, pf)
	rt := v.Display().Target()
	require.NoError(t, v.Render(ctx))

	pf.GL.ForceStatus = gpu.FramebufferUnsupported
	ctx.Window.Resize(image.Pt(900, 600))
	clears := sceneClears(pf.GL, rt.Framebuffer().ID())
	require.NoError(t, v.Render(ctx), "incomplete targets are not fatal")
	assert.Equal(t, image.Pt(640, 600), rt.Size())
	assert.False(t, rt.Complete())
	assert.Equal(t, clears, sceneClears(pf.GL, rt.Framebuffer().ID()), "the scene pass is skipped")
	assert.Len(t, pf.GL.Blits, 1, "the incomplete target is not composited")

	pf.GL.ForceStatus = 0
	ctx.Window.Resize(image.Pt(1000, 600))
	require.NoError(t, v.Render(ctx))
	assert.True(t, rt.Complete())
	assert.Len(t, pf.GL.Blits, 2)
}

func TestViewerHandleEvent(t *testing.T) {
	pf := systemtest.NewPlatform()
	ctx, v := newViewer(t, pf)

	assert.True(t, v.HandleEvent(ctx, system.Resized{Size: image.Pt(10, 10)}))
	assert.True(t, v.HandleEvent(ctx, system.ScaleFactorChanged{Ratio: 2}))
	assert.False(t, v.HandleEvent(ctx, system.MouseMoved{Pos: math32.Vec2(400, 300)}))

	assert.True(t, v.HandleEvent(ctx, system.MouseButton{Pressed: true, Pos: math32.Vec2(261, 300)}))
	assert.True(t, v.HandleEvent(ctx, system.MouseMoved{Pos: math32.Vec2(300, 300)}))
	assert.True(t, v.HandleEvent(ctx, system.MouseButton{Pos: math32.Vec2(300, 300)}))
	assert.Equal(t, float32(300), v.Panel.Width)

	require.NoError(t, v.Render(ctx))
	assert.Equal(t, image.Pt(500, 600), v.Display().Target().Size())
}

func TestViewerShutdown(t *testing.T) {
	pf := systemtest.NewPlatform()
	ctx, v := newViewer(t, pf)
	require.NoError(t, v.Render(ctx))
	assert.Equal(t, 1, v.Compositor().Textures())

	v.Shutdown(ctx)
	assert.Equal(t, 0, v.Compositor().Textures())
	assert.Equal(t, 0, pf.GL.Live())
	assert.Equal(t, 0, ctx.Window.Device().Stats().Live())
}

func TestFactory(t *testing.T) {
	c := config.Default()
	c.Title = "Factory"
	f := NewFactory(c)
	assert.Equal(t, "Factory", f.WindowOptions().Title)

	pf := systemtest.NewPlatform()
	w, err := system.NewGLWindow(pf, f.WindowOptions())
	require.NoError(t, err)
	ctx := &app.Context{Window: w, Renderer: scene.NewRenderer(w.Device()), Time: &app.Time{}}
	client, err := f.CreateClient(ctx)
	require.NoError(t, err)
	assert.IsType(t, &Viewer{}, client)

	pf.GL.FailGen = map[string]bool{"texture": true}
	_, err = f.CreateClient(ctx)
	var rerr *gpu.ResourceCreationError
	assert.ErrorAs(t, err, &rerr)
}

func TestLifecycle(t *testing.T) {
	pf := systemtest.NewPlatform()
	a := app.New(pf, NewFactory(config.Default()))
	a.HandleEvent(system.Resumed{})
	require.Equal(t, app.Active, a.Phase())
	dev := a.Active().Window.Device()
	v := a.Active().Client.(*Viewer)

	a.HandleEvent(system.RedrawRequested{})
	assert.Equal(t, image.Pt(540, 600), v.Display().Target().Size())
	allocs := dev.Stats().TextureAllocs

	a.HandleEvent(system.RedrawRequested{})
	assert.Equal(t, allocs, dev.Stats().TextureAllocs, "unchanged region does not reallocate")
	assert.Equal(t, 2, pf.Window.Swaps)

	// the target follows the window on the next redraw only
	a.HandleEvent(system.Resized{Size: image.Pt(1200, 600)})
	assert.Equal(t, image.Pt(540, 600), v.Display().Target().Size())
	a.HandleEvent(system.RedrawRequested{})
	assert.Equal(t, image.Pt(940, 600), v.Display().Target().Size())

	a.HandleEvent(system.CloseRequested{})
	assert.Equal(t, app.Terminated, a.Phase())
	assert.Equal(t, 0, pf.GL.Live(), "all GPU objects are released")
	assert.Equal(t, 1, pf.Window.Destroyed)
}
