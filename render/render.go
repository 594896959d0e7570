/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render executes export templates against a token document with the
// registered token helpers available.
package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"bennypowers.dev/tokenfuncs/comment"
	"bennypowers.dev/tokenfuncs/fs"
	"bennypowers.dev/tokenfuncs/funcs"
	"bennypowers.dev/tokenfuncs/internal/logger"
	"bennypowers.dev/tokenfuncs/token"
)

// TemplateExt is stripped from template file names to name their output.
const TemplateExt = ".tmpl"

// Options configures rendering.
type Options struct {
	// Header is prepended to each rendered file as a comment block.
	Header string

	// HeaderStyle selects the comment syntax of Header.
	HeaderStyle comment.Style
}

// Engine renders templates read from a filesystem.
type Engine struct {
	fs   fs.FileSystem
	opts Options
}

// New creates an engine reading templates from and writing output to filesystem.
func New(filesystem fs.FileSystem, opts Options) *Engine {
	return &Engine{fs: filesystem, opts: opts}
}

// Render executes the template at templatePath with doc as its data.
func (e *Engine) Render(doc *token.Document, templatePath string) ([]byte, error) {
	src, err := e.fs.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	tmpl, err := template.New(filepath.Base(templatePath)).
		Funcs(funcs.FuncMap()).
		Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templatePath, err)
	}

	var buf bytes.Buffer
	buf.WriteString(comment.FormatHeader(e.opts.Header, e.opts.HeaderStyle))
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", templatePath, err)
	}
	return buf.Bytes(), nil
}

// RenderAll renders each template into outDir and returns the written paths.
// Two templates that would produce the same output name are rejected before
// anything is written.
func (e *Engine) RenderAll(doc *token.Document, templates []string, outDir string) ([]string, error) {
	targets := make([]string, len(templates))
	seen := make(map[string]string, len(templates))
	for i, tmpl := range templates {
		target := filepath.Join(outDir, OutputName(tmpl))
		if prev, dup := seen[target]; dup {
			return nil, fmt.Errorf("templates %s and %s both render to %s", prev, tmpl, target)
		}
		seen[target] = tmpl
		targets[i] = target
	}

	if err := e.fs.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	written := make([]string, 0, len(templates))
	for i, tmpl := range templates {
		out, err := e.Render(doc, tmpl)
		if err != nil {
			return written, err
		}
		if err := e.fs.WriteFile(targets[i], out, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", targets[i], err)
		}
		logger.Info("wrote %s", targets[i])
		written = append(written, targets[i])
	}
	return written, nil
}

// OutputName returns the file name a template renders to:
// its base name without the .tmpl extension.
func OutputName(templatePath string) string {
	return strings.TrimSuffix(filepath.Base(templatePath), TemplateExt)
}
