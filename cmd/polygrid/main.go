// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command polygrid shows a live grid of spinning wireframe Platonic
// solids, renders it headlessly, and captures frames to PNG files.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/polygrid/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logx.NewPrinter(os.Stderr).PrintlnError(err)
		stop()
		os.Exit(1)
	}
}
