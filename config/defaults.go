// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// SetFromDefaults sets the values of the given params
// from `default:` struct field tag values, including those of
// the nested settings. Errors are automatically logged in
// addition to being returned.
func SetFromDefaults(p *Params) error {
	if err := reflectx.SetFromDefaultTags(p); err != nil {
		return errors.Log(err)
	}
	if err := reflectx.SetFromDefaultTags(&p.ColorCycle); err != nil {
		return errors.Log(err)
	}
	return errors.Log(reflectx.SetFromDefaultTags(&p.Spin))
}

// Defaults returns new params with all default values.
func Defaults() Params {
	var p Params
	SetFromDefaults(&p)
	return p
}
