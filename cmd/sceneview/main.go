// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sceneview opens a window showing a 3D scene next to a
// resizable side panel.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/sceneview/app"
	"cogentcore.org/sceneview/base/logx"
	"cogentcore.org/sceneview/config"
	"cogentcore.org/sceneview/gpu"
	"cogentcore.org/sceneview/sceneview"
	"cogentcore.org/sceneview/system/driver/desktop"
	"github.com/spf13/cobra"
)

func init() {
	// glfw and the OpenGL context must stay on the main thread
	runtime.LockOSThread()
}

type flags struct {
	config     string
	verbose    bool
	debug      bool
	quiet      bool
	continuous bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "sceneview",
		Short:         "View a 3D scene",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(f)
			if err != nil {
				slog.Error(err.Error())
			}
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "configuration file (.toml, .yaml or .yml)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log informational messages")
	fs.BoolVar(&f.debug, "debug", false, "log debugging messages, including GPU object tracing")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVar(&f.continuous, "continuous", false, "redraw continuously instead of waiting for events")
	return cmd
}

func loadConfig(f *flags) (*config.Config, error) {
	if f.config == "" {
		return config.Default(), nil
	}
	return config.Open(f.config)
}

func run(f *flags) error {
	if f.debug || f.verbose || f.quiet {
		logx.UserLevel = logx.LevelFromFlags(f.debug, f.verbose, f.quiet)
	}
	logx.SetDefaultLogger()
	gpu.Debug = f.debug

	c, err := loadConfig(f)
	if err != nil {
		return err
	}

	pf, err := desktop.Init()
	if err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer pf.Terminate()

	a := app.New(pf, sceneview.NewFactory(c))
	a.Continuous = c.Continuous || f.continuous
	return a.Run(pf)
}
