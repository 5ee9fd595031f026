// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch calls onChange with the newly opened params every time the
// given file is written or replaced, until ctx is done. Files that
// fail to open or validate are logged and skipped, so the previous
// params stay in effect. The directory containing the file is
// watched, so that editors that save by renaming are handled.
func Watch(ctx context.Context, filename string, onChange func(p Params)) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(fn)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fn || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			p, err := Open(fn)
			if err != nil {
				slog.Error("config: not applying changed file", "file", fn, "err", err)
				continue
			}
			slog.Info("config: file changed", "file", fn)
			onChange(p)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watch error", "file", fn, "err", err)
		}
	}
}
