/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for tokenfuncs.
package render

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenfuncs/comment"
	"bennypowers.dev/tokenfuncs/config"
	"bennypowers.dev/tokenfuncs/fs"
	"bennypowers.dev/tokenfuncs/internal/logger"
	"bennypowers.dev/tokenfuncs/load"
	renderlib "bennypowers.dev/tokenfuncs/render"
	"bennypowers.dev/tokenfuncs/validator"
)

var (
	errNoData      = errors.New("no snapshot specified: pass --data or set data in .config/tokenfuncs.yaml")
	errNoTemplates = errors.New("no templates specified and no templates found in config")
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [templates...]",
	Short: "Render templates against a token snapshot",
	Long: `Render text/template files against a design token snapshot.

Templates can call these helpers:
  createDocumentationComment TEXT INDENT   /// doc comment block
  getComponentTokens TOKENS COMPONENT      tokens of a component ("" for none)
  filterOutComponentTokens TOKENS          tokens without a component
  createSwiftVariableName TOKEN GROUP      camelCase Swift name
  readableSwiftVariableName TOKEN GROUP    PascalCase Swift name
  swiftColor VALUE                         SwiftUI Color literal
  tokenTitle TOKEN GROUP                   Title Case path

Each template writes <output>/<name without .tmpl>.

Examples:
  tokenfuncs render --data snapshot.json -o Sources templates/Tokens.swift.tmpl
  tokenfuncs render   # reads data, templates and output from config`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("data", "d", "", "Export snapshot (JSON, JSONC, or YAML)")
	Cmd.Flags().StringP("output", "o", "", "Output directory (default from config, or .)")
	Cmd.Flags().String("header", "", "Comment header prepended to each file")
	Cmd.Flags().String("header-style", "", "Header comment style: line, swift, c, xml")

	_ = viper.BindPFlag("data", Cmd.Flags().Lookup("data"))
	_ = viper.BindPFlag("output", Cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("header", Cmd.Flags().Lookup("header"))
	_ = viper.BindPFlag("headerStyle", Cmd.Flags().Lookup("header-style"))
}

// settings are the resolved inputs of a render run.
type settings struct {
	data      string
	output    string
	header    string
	style     comment.Style
	templates []string
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	s, err := resolveSettings(filesystem, cfg, args, ".")
	if err != nil {
		return err
	}

	written, err := renderAll(filesystem, s)
	if err != nil {
		return err
	}
	logger.Info("rendered %d file(s)", len(written))
	return nil
}

// resolveSettings layers flags and environment (via viper) over config.
func resolveSettings(filesystem fs.FileSystem, cfg *config.Config, args []string, rootDir string) (*settings, error) {
	s := &settings{
		data:   firstNonEmpty(viper.GetString("data"), cfg.Data),
		output: firstNonEmpty(viper.GetString("output"), cfg.Output, "."),
		header: firstNonEmpty(viper.GetString("header"), cfg.Header),
		style:  comment.ParseStyle(firstNonEmpty(viper.GetString("headerStyle"), cfg.HeaderStyle)),
	}
	if s.data == "" {
		return nil, errNoData
	}

	s.templates = args
	if len(s.templates) == 0 {
		expanded, err := cfg.ExpandTemplates(filesystem, rootDir)
		if err != nil {
			return nil, fmt.Errorf("error expanding config templates: %w", err)
		}
		s.templates = expanded
	}
	if len(s.templates) == 0 {
		return nil, errNoTemplates
	}
	return s, nil
}

func renderAll(filesystem fs.FileSystem, s *settings) ([]string, error) {
	doc, err := load.File(filesystem, s.data)
	if err != nil {
		return nil, err
	}

	for _, verr := range validator.ValidateWithPath(doc, s.data) {
		logger.Warn("%s", verr.Error())
	}

	engine := renderlib.New(filesystem, renderlib.Options{
		Header:      s.header,
		HeaderStyle: s.style,
	})
	return engine.RenderAll(doc, s.templates, s.output)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
