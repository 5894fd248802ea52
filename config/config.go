// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the application configuration, with
// built-in defaults that can be overridden by a TOML or YAML file.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/system"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultTOML []byte

// Config is the application configuration. Sizes are in logical units.
type Config struct {
	// Title is the title of the window.
	Title string `toml:"title" yaml:"title"`

	// Width and Height are the initial size of the window.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// MinWidth and MinHeight are the minimum size of the window.
	MinWidth  int `toml:"min_width" yaml:"min_width"`
	MinHeight int `toml:"min_height" yaml:"min_height"`

	// Continuous is whether to redraw continuously instead of
	// waiting for events.
	Continuous bool `toml:"continuous" yaml:"continuous"`

	// Panel configures the side panel.
	Panel Panel `toml:"panel" yaml:"panel"`
}

// Panel configures the resizable side panel.
type Panel struct {
	// Width is the initial width.
	Width float32 `toml:"width" yaml:"width"`

	// MinWidth and MaxWidth bound the width while resizing.
	MinWidth float32 `toml:"min_width" yaml:"min_width"`
	MaxWidth float32 `toml:"max_width" yaml:"max_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	errors.Must(decodeTOML(bytes.NewReader(defaultTOML), c))
	return c
}

// Open returns the built-in configuration overridden by the given file,
// which is decoded as TOML or YAML according to its extension.
// Unknown keys are an error. The result is validated.
func Open(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(f, c)
	case ".yaml", ".yml":
		err = decodeYAML(f, c)
	default:
		return nil, fmt.Errorf("config: %s: unsupported file type %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

func decodeTOML(r io.Reader, c *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(c)
}

func decodeYAML(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err == io.EOF {
		return nil
	}
	return err
}

// Validate returns an error if the configuration is inconsistent.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		errs = append(errs, fmt.Errorf("minimum size %dx%d must be positive", c.MinWidth, c.MinHeight))
	}
	if c.Width < c.MinWidth || c.Height < c.MinHeight {
		errs = append(errs, fmt.Errorf("size %dx%d is smaller than the minimum size %dx%d", c.Width, c.Height, c.MinWidth, c.MinHeight))
	}
	p := c.Panel
	if p.MinWidth <= 0 || p.MaxWidth < p.MinWidth {
		errs = append(errs, fmt.Errorf("panel width bounds [%g, %g] are invalid", p.MinWidth, p.MaxWidth))
	} else if p.Width < p.MinWidth || p.Width > p.MaxWidth {
		errs = append(errs, fmt.Errorf("panel width %g is outside [%g, %g]", p.Width, p.MinWidth, p.MaxWidth))
	}
	return errors.Join(errs...)
}

// WindowOptions returns the options for creating the window.
func (c *Config) WindowOptions() *system.WindowOptions {
	return &system.WindowOptions{
		Title:   c.Title,
		Size:    math32.Vec2(float32(c.Width), float32(c.Height)),
		MinSize: math32.Vec2(float32(c.MinWidth), float32(c.MinHeight)),
	}
}
