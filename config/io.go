// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	// TOML is the default format, for files ending in .toml or with
	// no recognized extension.
	TOML Formats = iota

	// YAML is used for files ending in .yaml or .yml.
	YAML
)

// FormatOf returns the format implied by the extension of the filename.
func FormatOf(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

func (f Formats) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// Decode decodes the given data in the given format on top of p,
// so that fields missing from the data keep their current values.
func Decode(p *Params, data []byte, f Formats) error {
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, p)
	default:
		err = toml.Unmarshal(data, p)
	}
	if err != nil {
		return fmt.Errorf("config: decoding %s: %w", f, err)
	}
	return nil
}

// Encode returns p encoded in the given format.
func Encode(p *Params, f Formats) ([]byte, error) {
	switch f {
	case YAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	default:
		return toml.Marshal(p)
	}
}

// Open returns the params in the given file, starting from the
// defaults for anything the file does not set. The file name may
// start with ~ for the home directory. The result is validated.
func Open(filename string) (Params, error) {
	p := Defaults()
	fn, err := homedir.Expand(filename)
	if err != nil {
		return p, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		return p, err
	}
	if err := Decode(&p, data, FormatOf(fn)); err != nil {
		return p, fmt.Errorf("%s: %w", filename, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Save writes the params to the given file, in the format
// implied by its extension.
func Save(p *Params, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	data, err := Encode(p, FormatOf(fn))
	if err != nil {
		return err
	}
	return os.WriteFile(fn, data, 0666)
}
