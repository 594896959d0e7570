/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the tokenfuncs build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokenfuncs/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// Get returns the version string, preferring ldflags, then module build
// info, then the git tag and commit.
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "(devel)" && v != "" {
			return v
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}
	return tagged(GitTag, GitCommit, GitDirty == "dirty")
}

func tagged(tag, commit string, dirty bool) string {
	v := tag
	if commit != "" {
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		if !strings.HasSuffix(tag, short) {
			v = fmt.Sprintf("%s-%s", tag, short)
		}
	}
	if dirty {
		v += "-dirty"
	}
	return v
}

// Full returns the version with its commit, when known.
func Full() string {
	v := Get()
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", v, GitCommit)
	}
	return v
}

// Info returns build information keyed for JSON output.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"gitTag":    GitTag,
		"buildTime": BuildTime,
		"gitDirty":  GitDirty,
		"goVersion": runtime.Version(),
	}
}
