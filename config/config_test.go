// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/polygrid/anim"
	"cogentcore.org/polygrid/polyhedra"
)

func TestDefaults(t *testing.T) {
	p := Defaults()
	assert.Equal(t, 6, p.Shape)
	assert.Equal(t, 1, p.Count)
	assert.Equal(t, float32(1), p.Size)
	assert.Equal(t, float32(1.5), p.Spacing)
	assert.Equal(t, float32(0), p.Gap)
	assert.Equal(t, "#00ff00", p.Color)
	assert.Equal(t, "#000000", p.Background)
	assert.Equal(t, anim.ColorCycle{Enabled: false, Rate: 0.5, Hue: 0}, p.ColorCycle)
	assert.Equal(t, anim.Spin{Rate: 0.01, X: true, Y: true, Z: false}, p.Spin)
	assert.NoError(t, p.Validate())

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, p.ManualColor())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, p.BackgroundColor())
	pp := p.PoolParams()
	assert.Equal(t, polyhedra.Cube, pp.Shape)
	assert.Equal(t, float32(1.5), pp.Spacing)
}

func TestValidate(t *testing.T) {
	bad := map[string]func(p *Params){
		"count":      func(p *Params) { p.Count = 0 },
		"size":       func(p *Params) { p.Size = 0 },
		"spacing":    func(p *Params) { p.Spacing = -1 },
		"gap":        func(p *Params) { p.Gap = -0.1 },
		"color":      func(p *Params) { p.Color = "green-ish" },
		"background": func(p *Params) { p.Background = "#12" },
	}
	for name, set := range bad {
		p := Defaults()
		set(&p)
		err := p.Validate()
		var ipe *InvalidParameterError
		require.True(t, errors.As(err, &ipe), name)
		assert.Equal(t, name, ipe.Name)
	}

	p := Defaults()
	p.Shape = 10
	var ise *polyhedra.InvalidShapeError
	assert.True(t, errors.As(p.Validate(), &ise))

	p = Defaults()
	p.Spacing = 0
	p.Gap = 3
	assert.NoError(t, p.Validate())
}

func testParams() Params {
	p := Defaults()
	p.Shape = 12
	p.Count = 9
	p.Size = 1.25
	p.Spacing = 2.5
	p.Gap = 0.125
	p.Color = "#ff8000"
	p.Background = "#102030"
	p.ColorCycle = anim.ColorCycle{Enabled: true, Rate: 2, Hue: 90}
	p.Spin = anim.Spin{Rate: 0.02, Z: true}
	return p
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{"grid.toml", "grid.yaml", "grid.yml"} {
		p := testParams()
		path := filepath.Join(dir, fn)
		require.NoError(t, Save(&p, path))
		got, err := Open(path)
		require.NoError(t, err, fn)
		assert.Equal(t, p, got, fn)
	}
}

func TestOpenPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("shape = 20\ncount = 4\n\n[spin]\nz = true\n"), 0666))
	p, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Shape)
	assert.Equal(t, 4, p.Count)
	assert.Equal(t, float32(1.5), p.Spacing)
	assert.True(t, p.Spin.Z)
	assert.True(t, p.Spin.X)
	assert.Equal(t, float32(0.01), p.Spin.Rate)

	ypath := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(ypath, []byte("gap: 0.25\ncolorCycle:\n  enabled: true\n"), 0666))
	p, err = Open(ypath)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), p.Gap)
	assert.True(t, p.ColorCycle.Enabled)
	assert.Equal(t, float32(0.5), p.ColorCycle.Rate)
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("shape = 7\n"), 0666))
	_, err := Open(path)
	var ise *polyhedra.InvalidShapeError
	assert.True(t, errors.As(err, &ise))

	require.NoError(t, os.WriteFile(path, []byte("count = 0\n"), 0666))
	_, err = Open(path)
	var ipe *InvalidParameterError
	assert.True(t, errors.As(err, &ipe))

	require.NoError(t, os.WriteFile(path, []byte("count = [\n"), 0666))
	_, err = Open(path)
	assert.Error(t, err)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, YAML, FormatOf("a.YAML"))
	assert.Equal(t, YAML, FormatOf("a.yml"))
	assert.Equal(t, TOML, FormatOf("a.toml"))
	assert.Equal(t, TOML, FormatOf("polygrid"))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	p := Defaults()
	require.NoError(t, Save(&p, path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan Params, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(p Params) { changes <- p })
	}()
	time.Sleep(100 * time.Millisecond)

	// invalid content is skipped
	require.NoError(t, os.WriteFile(path, []byte("shape = 3\n"), 0666))
	time.Sleep(100 * time.Millisecond)

	p.Count = 16
	require.NoError(t, Save(&p, path))
	var got Params
	require.Eventually(t, func() bool {
		for {
			select {
			case got = <-changes:
				if got.Count == 16 {
					return true
				}
			default:
				return false
			}
		}
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 16, got.Count)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
