// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"cogentcore.org/sceneview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.NotEmpty(t, c.Title)
	assert.Greater(t, c.MinWidth, 0)
	assert.Greater(t, c.MinHeight, 0)
	assert.GreaterOrEqual(t, c.Width, c.MinWidth)
	assert.GreaterOrEqual(t, c.Height, c.MinHeight)
	assert.Equal(t, Panel{Width: 260, MinWidth: 200, MaxWidth: 500}, c.Panel)
	assert.False(t, c.Continuous)
}

func TestOpenTOML(t *testing.T) {
	c, err := Open("testdata/small.toml")
	require.NoError(t, err)
	assert.Equal(t, "Small", c.Title)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, 640, c.MinWidth, "unset values keep their defaults")
	assert.Equal(t, Panel{Width: 220, MinWidth: 200, MaxWidth: 500}, c.Panel)
}

func TestOpenYAML(t *testing.T) {
	c, err := Open("testdata/small.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Small", c.Title)
	assert.True(t, c.Continuous)
	assert.Equal(t, Panel{Width: 300, MinWidth: 200, MaxWidth: 400}, c.Panel)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("testdata/missing.toml")
	assert.Error(t, err)

	_, err = Open("testdata/typo.toml")
	assert.ErrorContains(t, err, "typo.toml")

	_, err = Open("testdata/invalid.yaml")
	assert.ErrorContains(t, err, "smaller than the minimum size")

	_, err = Open("config.go")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Title = " "
	c.Panel.Width = 600
	err := c.Validate()
	assert.ErrorContains(t, err, "title is empty")
	assert.ErrorContains(t, err, "panel width 600 is outside [200, 500]")

	c = Default()
	c.Panel.MaxWidth = 100
	assert.ErrorContains(t, c.Validate(), "bounds")

	c = Default()
	c.MinHeight = 0
	assert.ErrorContains(t, c.Validate(), "must be positive")
}

func TestWindowOptions(t *testing.T) {
	opts := Default().WindowOptions()
	assert.Equal(t, "Scene Viewer", opts.Title)
	assert.Equal(t, math32.Vec2(1280, 800), opts.Size)
	assert.Equal(t, math32.Vec2(640, 480), opts.MinSize)
	assert.Empty(t, opts.ContextVersions)
}
