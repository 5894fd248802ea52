// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-v", "--debug", "--continuous", "--config", "view.yaml"}))
	for _, name := range []string{"verbose", "debug", "continuous", "quiet", "config"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "view.yaml", cmd.Flags().Lookup("config").Value.String())
	assert.Equal(t, "true", cmd.Flags().Lookup("continuous").Value.String())
	assert.Equal(t, "false", cmd.Flags().Lookup("quiet").Value.String())
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig(&flags{})
	require.NoError(t, err)
	assert.NoError(t, c.Validate())

	_, err = loadConfig(&flags{config: "missing.toml"})
	assert.Error(t, err)
}
