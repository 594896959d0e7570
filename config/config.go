/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for tokenfuncs rendering.
package config

import (
	"bennypowers.dev/tokenfuncs/comment"
)

// Config represents the tokenfuncs configuration.
type Config struct {
	// Data is the export snapshot handed to templates.
	Data string `yaml:"data" json:"data"`

	// Templates lists template files or globs (supports **).
	Templates []string `yaml:"templates" json:"templates"`

	// Output is the directory rendered files are written to.
	Output string `yaml:"output" json:"output"`

	// Header is prepended to every rendered file as a comment.
	Header string `yaml:"header" json:"header"`

	// HeaderStyle selects the header comment syntax: line, swift, c, xml.
	HeaderStyle string `yaml:"headerStyle" json:"headerStyle"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Output:      ".",
		HeaderStyle: "line",
	}
}

// CommentStyle returns the parsed header comment style.
func (c *Config) CommentStyle() comment.Style {
	return comment.ParseStyle(c.HeaderStyle)
}
