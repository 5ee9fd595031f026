// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/control"
	"cogentcore.org/polygrid/logx"
	"cogentcore.org/polygrid/xyz"
)

// app holds the global flags shared by all commands.
type app struct {
	configFile string
	verbose    bool
	flags      config.Params
	printer    *logx.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Defaults(), printer: logx.NewPrinter(os.Stdout)}
	root := &cobra.Command{
		Use:           "polygrid",
		Short:         "A live grid of wireframe Platonic solids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			logx.SetDefaultLogger(os.Stderr, level)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (.toml, .yaml or .yml), reloaded when it changes")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	addParamsFlags(pf, &a.flags)

	root.AddCommand(a.viewCmd(), a.runCmd(), a.captureCmd(), a.shapesCmd(), a.defaultsCmd())
	return root
}

func addParamsFlags(fs *pflag.FlagSet, p *config.Params) {
	fs.IntVar(&p.Shape, "shape", p.Shape, "number of faces of the polyhedron: 4, 6, 8, 12 or 20")
	fs.IntVar(&p.Count, "count", p.Count, "number of polyhedra")
	fs.Float32Var(&p.Size, "size", p.Size, "size of each polyhedron")
	fs.Float32Var(&p.Spacing, "spacing", p.Spacing, "distance between grid cells")
	fs.Float32Var(&p.Gap, "gap", p.Gap, "distance by which edges are shrunk from both ends")
	fs.StringVar(&p.Color, "color", p.Color, "wireframe color")
	fs.StringVar(&p.Background, "background", p.Background, "background color")
	fs.BoolVar(&p.ColorCycle.Enabled, "cycle", p.ColorCycle.Enabled, "cycle the hue of the wireframes")
	fs.Float32Var(&p.ColorCycle.Rate, "cycle-rate", p.ColorCycle.Rate, "hue degrees per frame")
	fs.Float32Var(&p.Spin.Rate, "spin", p.Spin.Rate, "radians per frame")
}

// flagValues are the params flags and the fields they set.
var flagValues = map[string]func(dst, src *config.Params){
	"shape":      func(d, s *config.Params) { d.Shape = s.Shape },
	"count":      func(d, s *config.Params) { d.Count = s.Count },
	"size":       func(d, s *config.Params) { d.Size = s.Size },
	"spacing":    func(d, s *config.Params) { d.Spacing = s.Spacing },
	"gap":        func(d, s *config.Params) { d.Gap = s.Gap },
	"color":      func(d, s *config.Params) { d.Color = s.Color },
	"background": func(d, s *config.Params) { d.Background = s.Background },
	"cycle":      func(d, s *config.Params) { d.ColorCycle.Enabled = s.ColorCycle.Enabled },
	"cycle-rate": func(d, s *config.Params) { d.ColorCycle.Rate = s.ColorCycle.Rate },
	"spin":       func(d, s *config.Params) { d.Spin.Rate = s.Spin.Rate },
}

// params returns the params from the config file, if any, with the
// flags that were set on the command line applied on top.
func (a *app) params(cmd *cobra.Command) (config.Params, error) {
	p := config.Defaults()
	if a.configFile != "" {
		var err error
		p, err = config.Open(a.configFile)
		if err != nil {
			return p, err
		}
	}
	a.applyFlags(cmd.Flags(), &p)
	return p, p.Validate()
}

func (a *app) applyFlags(fs *pflag.FlagSet, p *config.Params) {
	fs.Visit(func(f *pflag.Flag) {
		if set, ok := flagValues[f.Name]; ok {
			set(p, &a.flags)
		}
	})
}

// newController returns a controller on a new scene for the params
// of the command.
func (a *app) newController(cmd *cobra.Command) (*control.Controller, *xyz.Scene, error) {
	p, err := a.params(cmd)
	if err != nil {
		return nil, nil, err
	}
	sc := xyz.NewScene()
	ctrl, err := control.New(sc, p)
	if err != nil {
		return nil, nil, err
	}
	return ctrl, sc, nil
}

// watch applies the config file to the controller whenever it
// changes, with the command line flags applied on top, until the
// context is done. It does nothing without a config file.
func (a *app) watch(ctx context.Context, cmd *cobra.Command, ctrl *control.Controller) error {
	if a.configFile == "" {
		return nil
	}
	return config.Watch(ctx, a.configFile, func(p config.Params) {
		a.applyFlags(cmd.Flags(), &p)
		kinds, err := ctrl.Apply(p)
		if errors.Log(err) == nil {
			a.printer.PrintlnInfo("reloaded ", a.configFile, ": ", kinds)
		}
	})
}
