// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !tinygo

// Package xyzview provides an interactive desktop window showing an
// [xyz.Scene] driven by a [control.Controller], with keyboard controls.
package xyzview

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cogentcore.org/polygrid/control"
	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/raster"
	"cogentcore.org/polygrid/xyz"
)

// Window shows a scene in a desktop window, ticking the controller
// once per frame.
type Window struct {

	// Title is the window title.
	Title string

	// Width and Height are the initial window size.
	Width, Height int

	// Capturer saves frames when the capture key is pressed.
	Capturer raster.Capturer

	// ShowHelp is whether the key help and current params are shown.
	ShowHelp bool

	ctrl   *control.Controller
	scene  *xyz.Scene
	status string
	w, h   int
}

// NewWindow returns a new window for the given controller and the
// scene that it drives.
func NewWindow(ctrl *control.Controller, sc *xyz.Scene) *Window {
	return &Window{
		Title:    "polygrid",
		Width:    1024,
		Height:   768,
		Capturer: raster.Capturer{Dir: raster.CaptureDir},
		ShowHelp: true,
		ctrl:     ctrl,
		scene:    sc,
	}
}

// Run opens the window and blocks until it is closed.
func (wn *Window) Run() error {
	ebiten.SetWindowTitle(wn.Title)
	ebiten.SetWindowSize(wn.Width, wn.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(wn)
}

// Update handles the keyboard and advances the animation.
func (wn *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, kb := range bindings {
		if !inpututil.IsKeyJustPressed(kb.key) {
			continue
		}
		wn.handle(kb, shift)
	}
	wn.ctrl.Tick()
	return nil
}

func (wn *Window) handle(kb binding, shift bool) {
	var err error
	switch {
	case kb.shape != 0:
		err = wn.ctrl.SetShape(kb.shape)
	case kb.axis >= 0:
		_, err = wn.ctrl.ToggleSpinAxis(kb.axis)
	case kb.key == ebiten.KeyC:
		_, err = wn.ctrl.ToggleColorCycle()
	case kb.key == ebiten.KeyP:
		wn.capture()
	case kb.key == ebiten.KeyH:
		wn.ShowHelp = !wn.ShowHelp
	default:
		dir := kb.dir
		if shift {
			dir *= 10
		}
		_, err = wn.ctrl.Step(kb.opt, dir)
	}
	if errors.Log(err) != nil {
		wn.status = err.Error()
	}
}

func (wn *Window) capture() {
	var img *image.RGBA
	wn.ctrl.View(func() {
		img = raster.Render(wn.scene, raster.Options{Width: wn.w, Height: wn.h, LineWidth: 1})
	})
	fn, err := wn.Capturer.Capture(img)
	if errors.Log(err) != nil {
		wn.status = "capture failed: " + err.Error()
		return
	}
	slog.Info("captured frame", "file", fn)
	wn.status = "captured " + fn
}

// Draw draws the scene and the help text.
func (wn *Window) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	var fr *raster.Frame
	wn.ctrl.View(func() {
		fr = raster.Project(wn.scene, b.Dx(), b.Dy())
	})
	screen.Fill(fr.Background)
	for _, ln := range fr.Lines {
		vector.StrokeLine(screen, ln.X0, ln.Y0, ln.X1, ln.Y1, 1, ln.Color, true)
	}
	for _, dt := range fr.Dots {
		vector.DrawFilledRect(screen, dt.X-dt.Size/2, dt.Y-dt.Size/2, dt.Size, dt.Size, dt.Color, true)
	}
	if wn.ShowHelp {
		ebitenutil.DebugPrint(screen, wn.helpText())
	}
}

// Layout uses the window size as the screen size.
func (wn *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	wn.w, wn.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (wn *Window) helpText() string {
	p := wn.ctrl.Params()
	var sb strings.Builder
	fmt.Fprintf(&sb, "shape %d  count %d  size %.2f  spacing %.2f  gap %.2f\n", p.Shape, p.Count, p.Size, p.Spacing, p.Gap)
	cycle := "off"
	if p.ColorCycle.Enabled {
		cycle = fmt.Sprintf("%.1f/tick hue %.0f", p.ColorCycle.Rate, p.ColorCycle.Hue)
	}
	fmt.Fprintf(&sb, "color %s  cycle %s  spin %.3f x:%v y:%v z:%v  fps %.0f\n", p.Color, cycle, p.Spin.Rate, p.Spin.X, p.Spin.Y, p.Spin.Z, ebiten.ActualFPS())
	for _, kb := range bindings {
		if kb.help != "" {
			sb.WriteString(kb.help + "\n")
		}
	}
	if wn.status != "" {
		sb.WriteString(wn.status + "\n")
	}
	return sb.String()
}

// binding binds a key to a control action.
type binding struct {
	key   ebiten.Key
	help  string
	shape int
	axis  math32.Dims
	opt   control.Options
	dir   int
}

var bindings = []binding{
	{key: ebiten.Key1, help: "1-5: shape", shape: 4, axis: -1},
	{key: ebiten.Key2, shape: 6, axis: -1},
	{key: ebiten.Key3, shape: 8, axis: -1},
	{key: ebiten.Key4, shape: 12, axis: -1},
	{key: ebiten.Key5, shape: 20, axis: -1},
	{key: ebiten.KeyEqual, help: "+ -: count (shift x10)", axis: -1, opt: control.Count, dir: 1},
	{key: ebiten.KeyMinus, axis: -1, opt: control.Count, dir: -1},
	{key: ebiten.KeyBracketRight, help: "[ ]: size", axis: -1, opt: control.Size, dir: 1},
	{key: ebiten.KeyBracketLeft, axis: -1, opt: control.Size, dir: -1},
	{key: ebiten.KeyPeriod, help: ", .: spacing", axis: -1, opt: control.Spacing, dir: 1},
	{key: ebiten.KeyComma, axis: -1, opt: control.Spacing, dir: -1},
	{key: ebiten.KeyG, help: "g f: gap", axis: -1, opt: control.Gap, dir: 1},
	{key: ebiten.KeyF, axis: -1, opt: control.Gap, dir: -1},
	{key: ebiten.KeyArrowUp, help: "up down: spin rate", axis: -1, opt: control.SpinRate, dir: 1},
	{key: ebiten.KeyArrowDown, axis: -1, opt: control.SpinRate, dir: -1},
	{key: ebiten.KeyArrowRight, help: "left right: cycle rate", axis: -1, opt: control.CycleRate, dir: 1},
	{key: ebiten.KeyArrowLeft, axis: -1, opt: control.CycleRate, dir: -1},
	{key: ebiten.KeyX, help: "x y z: spin axes", axis: math32.X},
	{key: ebiten.KeyY, axis: math32.Y},
	{key: ebiten.KeyZ, axis: math32.Z},
	{key: ebiten.KeyC, help: "c: color cycle", axis: -1},
	{key: ebiten.KeyP, help: "p: capture frame", axis: -1},
	{key: ebiten.KeyH, help: "h: help  esc: quit", axis: -1},
}
