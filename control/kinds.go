// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"strings"

	"cogentcore.org/polygrid/config"
)

// Kinds is a set of the kinds of update needed to apply a
// change of params. Each single option maps to exactly one kind.
type Kinds int32

const (
	// Animate changes only affect subsequent animation ticks (spin settings).
	Animate Kinds = 1 << iota

	// Recolor changes affect only colors: background, color cycle
	// enabling and rate.
	Recolor

	// Reposition changes move instances without rebuilding them (spacing).
	Reposition

	// Rebuild changes rebuild the geometry of every instance: shape,
	// size, gap, manual color and disabling color cycling.
	Rebuild

	// Reconcile changes resize the pool, which also repositions and
	// rebuilds every instance (count).
	Reconcile
)

// None is the empty set: nothing changed.
const None Kinds = 0

// Has returns whether the set has the given kind.
func (k Kinds) Has(kind Kinds) bool {
	return k&kind != 0
}

func (k Kinds) String() string {
	if k == None {
		return "None"
	}
	names := []string{"Animate", "Recolor", "Reposition", "Rebuild", "Reconcile"}
	var s []string
	for i, nm := range names {
		if k.Has(1 << i) {
			s = append(s, nm)
		}
	}
	return strings.Join(s, "|")
}

// Classify returns the kinds of update needed to go from the old
// params to the new ones. The color cycle hue is animation state
// and is not compared.
func Classify(old, new *config.Params) Kinds {
	var k Kinds
	if old.Count != new.Count {
		k |= Reconcile
	}
	if old.Shape != new.Shape || old.Size != new.Size || old.Gap != new.Gap || old.Color != new.Color {
		k |= Rebuild
	}
	if old.ColorCycle.Enabled && !new.ColorCycle.Enabled {
		k |= Rebuild
	}
	if old.Spacing != new.Spacing {
		k |= Reposition
	}
	if !old.ColorCycle.Enabled && new.ColorCycle.Enabled {
		k |= Recolor
	}
	if old.ColorCycle.Rate != new.ColorCycle.Rate || old.Background != new.Background {
		k |= Recolor
	}
	if old.Spin != new.Spin {
		k |= Animate
	}
	return k
}
