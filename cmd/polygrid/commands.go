// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/polygrid/anim"
	"cogentcore.org/polygrid/colors"
	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/control"
	"cogentcore.org/polygrid/polyhedra"
	"cogentcore.org/polygrid/raster"
	"cogentcore.org/polygrid/xyz"
	"cogentcore.org/polygrid/xyz/xyzview"
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open an interactive window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, sc, err := a.newController(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				errors.Log(a.watch(ctx, cmd, ctrl))
			}()
			return xyzview.NewWindow(ctrl, sc).Run()
		},
	}
}

// renderFlags are the flags of the commands that render images.
type renderFlags struct {
	opts raster.Options
	out  string
}

func (rf *renderFlags) add(cmd *cobra.Command) {
	rf.opts.Defaults()
	fs := cmd.Flags()
	fs.IntVar(&rf.opts.Width, "width", rf.opts.Width, "image width in pixels")
	fs.IntVar(&rf.opts.Height, "height", rf.opts.Height, "image height in pixels")
	fs.Float32Var(&rf.opts.LineWidth, "line-width", rf.opts.LineWidth, "line width in pixels")
	fs.IntVar(&rf.opts.Supersample, "supersample", rf.opts.Supersample, "render at this multiple of the size and scale down")
	fs.StringVarP(&rf.out, "out", "o", raster.CaptureDir, "directory to save captures in")
}

func (a *app) runCmd() *cobra.Command {
	var rf renderFlags
	var fps int
	var frames, every uint64
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate headlessly, capturing frames periodically",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, sc, err := a.newController(cmd)
			if err != nil {
				return err
			}
			if fps <= 0 {
				return fmt.Errorf("invalid fps %d", fps)
			}
			cp := &raster.Capturer{Dir: rf.out}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return a.watch(ctx, cmd, ctrl)
			})
			g.Go(func() error {
				defer cancel()
				tick := time.NewTicker(time.Second / time.Duration(fps))
				defer tick.Stop()
				for {
					select {
					case <-ctx.Done():
						return nil
					case <-tick.C:
					}
					ctrl.Tick()
					n := ctrl.Frame()
					if every > 0 && n%every == 0 {
						if err := a.capture(ctrl, sc, cp, rf.opts); err != nil {
							return err
						}
					}
					if frames > 0 && n >= frames {
						return nil
					}
				}
			})
			err = g.Wait()
			a.printer.PrintlnInfo("ran ", ctrl.Frame(), " frames, ", cp.Count(), " captures")
			return err
		},
	}
	rf.add(cmd)
	fs := cmd.Flags()
	fs.IntVar(&fps, "fps", 60, "frames per second")
	fs.Uint64Var(&frames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	fs.Uint64Var(&every, "every", 0, "capture every this many frames (0 never captures)")
	return cmd
}

func (a *app) captureCmd() *cobra.Command {
	var rf renderFlags
	var ticks int
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture one frame to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, sc, err := a.newController(cmd)
			if err != nil {
				return err
			}
			for range ticks {
				ctrl.Tick()
			}
			return a.capture(ctrl, sc, &raster.Capturer{Dir: rf.out}, rf.opts)
		},
	}
	rf.add(cmd)
	cmd.Flags().IntVar(&ticks, "ticks", 0, "animation frames to advance before capturing")
	return cmd
}

func (a *app) capture(ctrl *control.Controller, sc *xyz.Scene, cp *raster.Capturer, opts raster.Options) error {
	var fr *raster.Frame
	ctrl.View(func() {
		ss := max(opts.Supersample, 1)
		fr = raster.Project(sc, opts.Width*ss, opts.Height*ss)
	})
	img := raster.Draw(fr, opts.LineWidth*float32(max(opts.Supersample, 1)))
	if opts.Supersample > 1 {
		img = raster.Downsample(img, opts.Width, opts.Height)
	}
	fn, err := cp.Capture(img)
	if err != nil {
		return err
	}
	a.printer.PrintlnInfo("captured ", fn)
	return nil
}

func (a *app) shapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the available polyhedra",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := polyhedra.All()
			for i, sh := range all {
				hex := colors.AsHex(anim.HueColor(360 * float32(i) / float32(len(all))))
				name := a.printer.Swatch(fmt.Sprintf("%-13s", sh.Name()), hex)
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s  %2d vertices  %2d edges\n", int(sh), name, sh.NumVertices(), sh.NumEdges())
			}
			return nil
		},
	}
}

func (a *app) defaultsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.FormatOf("defaults." + format)
			if f.String() != format && !(f == config.YAML && format == "yml") {
				return fmt.Errorf("unknown format %q", format)
			}
			p := config.Defaults()
			b, err := config.Encode(&p, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "config format: toml or yaml")
	return cmd
}
