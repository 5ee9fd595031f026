// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging for the command line
// tools and prints colored status lines to the terminal.
package logx

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the current level for log messages and status lines
// shown to the user. It is set by [SetDefaultLogger].
var UserLevel = defaultUserLevel

// SetDefaultLogger makes a text handler writing to w at the given
// level the default [slog] logger, and sets [UserLevel].
func SetDefaultLogger(w io.Writer, level slog.Level) {
	UserLevel = level
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// LevelColor returns the color that status lines of the given level
// are printed in.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIBrightRed
	case level >= slog.LevelWarn:
		return termenv.ANSIBrightYellow
	case level >= slog.LevelInfo:
		return termenv.ANSIBrightGreen
	}
	return termenv.ANSIBrightBlack
}

// Printer prints colored status lines to a terminal output.
type Printer struct {
	Out *termenv.Output
}

// NewPrinter returns a new printer writing to w, using the color
// profile detected for it.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{Out: termenv.NewOutput(w)}
}

// Println prints the given values as one line in the color of the
// given level, if the level is at least [UserLevel].
func (pr *Printer) Println(level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	s := pr.Out.String(fmt.Sprint(a...)).Foreground(pr.Out.Convert(LevelColor(level)))
	fmt.Fprintln(pr.Out, s)
}

// PrintlnInfo prints the values at info level.
func (pr *Printer) PrintlnInfo(a ...any) {
	pr.Println(slog.LevelInfo, a...)
}

// PrintlnWarn prints the values at warning level.
func (pr *Printer) PrintlnWarn(a ...any) {
	pr.Println(slog.LevelWarn, a...)
}

// PrintlnError prints the values at error level.
func (pr *Printer) PrintlnError(a ...any) {
	pr.Println(slog.LevelError, a...)
}

// Swatch returns the text styled with the given hex color as
// its foreground.
func (pr *Printer) Swatch(text, hex string) termenv.Style {
	return pr.Out.String(text).Foreground(pr.Out.Color(hex))
}
