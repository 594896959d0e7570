/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's stderr logger, which --quiet silences.
package logger

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", 0)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	logger = log.New(w, "", 0)
}

// Reset restores logging to stderr.
func Reset() {
	SetOutput(os.Stderr)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}
