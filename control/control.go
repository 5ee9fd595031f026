// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package control owns the live configuration of the polyhedron grid
// and applies changes to it: each change is validated, classified
// into the kinds of update it needs, and applied to the pool and the
// surface. All mutation, animation ticks and rendering reads are
// serialized by the [Controller].
package control

import (
	"log/slog"
	"sync"

	"cogentcore.org/polygrid/anim"
	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/pool"
)

// Controller applies configuration changes and animation ticks to a
// pool of polyhedra on a surface. It is safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	params  config.Params
	surface pool.Surface
	pool    *pool.Pool
	frame   uint64
}

// New returns a new controller showing the given params on the given
// surface, under its root node.
func New(sf pool.Surface, p config.Params) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{params: p, surface: sf, pool: pool.New(sf, pool.Root)}
	if err := c.pool.Reconcile(p.Count, p.PoolParams()); err != nil {
		return nil, err
	}
	sf.SetBackground(p.BackgroundColor())
	return c, nil
}

// Params returns a copy of the current params, including the
// current color cycle hue.
func (c *Controller) Params() config.Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Frame returns the number of ticks so far.
func (c *Controller) Frame() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// View calls fn while holding the controller lock, so that fn can
// safely read the surface (for example to render it).
func (c *Controller) View(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// Instances calls fn with the current instances, while holding the
// controller lock.
func (c *Controller) Instances(fn func(insts []*pool.Instance)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.pool.Instances())
}

// Apply changes the params to the given ones. If they are not valid,
// an error is returned and nothing changes. Changing the manual color
// disables color cycling. The running color cycle hue is kept.
// It returns the kinds of update that were performed.
func (c *Controller) Apply(np config.Params) (Kinds, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(np)
}

// Update calls fn on a copy of the current params and applies the
// result. See [Controller.Apply].
func (c *Controller) Update(fn func(p *config.Params)) (Kinds, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	np := c.params
	fn(&np)
	return c.apply(np)
}

func (c *Controller) apply(np config.Params) (Kinds, error) {
	if err := np.Validate(); err != nil {
		return None, err
	}
	old := c.params
	np.ColorCycle.Hue = old.ColorCycle.Hue
	if np.Color != old.Color {
		np.ColorCycle.Enabled = false
	}
	k := Classify(&old, &np)
	if k == None {
		return k, nil
	}
	pp := np.PoolParams()
	switch {
	case k.Has(Reconcile):
		if err := c.pool.Reconcile(np.Count, pp); err != nil {
			return None, err
		}
	case k.Has(Rebuild):
		if err := c.pool.Rebuild(pp); err != nil {
			return None, err
		}
		if k.Has(Reposition) {
			c.pool.Reposition(np.Spacing)
		}
	case k.Has(Reposition):
		c.pool.Reposition(np.Spacing)
	}
	if old.ColorCycle.Enabled && !np.ColorCycle.Enabled {
		c.pool.ClearOverrides()
	}
	if old.Background != np.Background {
		c.surface.SetBackground(np.BackgroundColor())
	}
	c.params = np
	slog.Debug("control: applied params", "kinds", k, "shape", np.Shape, "count", np.Count)
	return k, nil
}

// Tick advances the animation by one frame and pushes the new
// rotations and colors to the surface.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	insts := c.pool.Instances()
	anim.Tick(insts, c.params.Spin, &c.params.ColorCycle)
	c.pool.Sync()
	c.frame++
}
