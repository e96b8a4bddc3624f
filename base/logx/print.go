// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// These functions are designed for direct printing of messages to the
// user, gated on [UserLevel], as opposed to the structured slog calls,
// which are for program-level events. Debug and Info print to
// [os.Stdout], and Warn and Error print to [os.Stderr].

// PrintfDebug prints the given formatted message
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Fprintf(os.Stdout, format, a...)
	}
}

// PrintlnDebug prints the given message
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Fprintln(os.Stdout, a...)
	}
}

// PrintfInfo prints the given formatted message
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Fprintf(os.Stdout, format, a...)
	}
}

// PrintlnInfo prints the given message
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Fprintln(os.Stdout, a...)
	}
}

// PrintfWarn prints the given formatted message
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintfWarn(format string, a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

// PrintlnWarn prints the given message
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Fprintln(os.Stderr, a...)
	}
}

// PrintfError prints the given formatted message
// if [UserLevel] is at or below [slog.LevelError].
func PrintfError(format string, a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

// PrintlnError prints the given message
// if [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Fprintln(os.Stderr, a...)
	}
}
