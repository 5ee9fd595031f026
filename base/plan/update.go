// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan updates a slice so that it contains a target list of
// uniquely named elements, keeping existing elements that are still
// wanted (in their relative order) and creating or destroying only
// what differs.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types can implement to specify their name in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Update returns s updated to hold n elements whose names are given
// by name(i) for i in [0, n). Elements of s whose names are not in
// the target are removed, last first, calling destroy on each if it
// is non-nil. Missing elements are created with new, and kept
// elements are moved to their target index. The order of the target
// names fully determines the result order. mods reports whether
// anything was created, destroyed or moved.
func Update[T Namer](s []T, n int, name func(i int) string, new func(name string, i int) T, destroy func(e T)) (r []T, mods bool) {
	target := make(map[string]int, n)
	names := make([]string, n)
	for i := range n {
		nm := name(i)
		if _, dup := target[nm]; dup {
			slog.Error("plan.Update: duplicate name", "name", nm)
		}
		target[nm] = i
		names[i] = nm
	}

	r = s
	for i := len(r) - 1; i >= 0; i-- {
		if _, keep := target[r[i].PlanName()]; keep {
			continue
		}
		mods = true
		if destroy != nil {
			destroy(r[i])
		}
		r = slices.Delete(r, i, i+1)
	}

	for i, nm := range names {
		ci := indexFrom(r, nm, i)
		switch {
		case ci < 0:
			mods = true
			r = slices.Insert(r, i, new(nm, i))
		case ci != i:
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	return
}

// indexFrom returns the index of the element named nm, searching
// outward from the hint index, where it most likely is. It returns
// -1 if there is no such element.
func indexFrom[T Namer](s []T, nm string, hint int) int {
	n := len(s)
	if hint >= n {
		hint = n - 1
	}
	for d := 0; d < n; d++ {
		if up := hint + d; up < n && up >= 0 && s[up].PlanName() == nm {
			return up
		}
		if dn := hint - d; d > 0 && dn >= 0 && dn < n && s[dn].PlanName() == nm {
			return dn
		}
	}
	return -1
}
