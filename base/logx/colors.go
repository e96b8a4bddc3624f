// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// colorProfile is the termenv color profile of the terminal,
// which determines what colors it supports.
var colorProfile = termenv.ColorProfile()

// UseColor is whether to use color in log and print messages.
// It is on by default, and it can be turned off for terminals
// or files that do not handle colors well.
var UseColor = true

// ApplyColor applies the given ANSI color code to the given string
// if [UseColor] is on.
func ApplyColor(clr string, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.Color(clr)).String()
}

// LevelColor applies the color associated with the given level to the
// given string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	default:
		return DebugColor(str)
	}
}

// DebugColor applies the color associated with the debug level
// (gray) to the given string.
func DebugColor(str string) string {
	return ApplyColor("245", str)
}

// InfoColor applies the color associated with the info level
// (blue) to the given string.
func InfoColor(str string) string {
	return ApplyColor("12", str)
}

// WarnColor applies the color associated with the warn level
// (yellow) to the given string.
func WarnColor(str string) string {
	return ApplyColor("11", str)
}

// ErrorColor applies the color associated with the error level
// (red) to the given string.
func ErrorColor(str string) string {
	return ApplyColor("9", str)
}

// SuccessColor applies the color associated with success messages
// (green) to the given string.
func SuccessColor(str string) string {
	return ApplyColor("10", str)
}

// CmdColor applies the color associated with terminal commands
// (cyan) to the given string.
func CmdColor(str string) string {
	return ApplyColor("14", str)
}

// TitleColor applies the color associated with titles
// (magenta) to the given string.
func TitleColor(str string) string {
	return ApplyColor("13", str)
}
