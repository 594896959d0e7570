/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenfuncs.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenfuncs/config"
	"bennypowers.dev/tokenfuncs/fs"
	"bennypowers.dev/tokenfuncs/load"
	"bennypowers.dev/tokenfuncs/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [snapshots...]",
	Short: "Validate component references in token snapshots",
	Long: `Check that every token's component value names an option of its
group's component property. With no arguments the snapshot from config is used.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 && cfg.Data != "" {
		files = []string{cfg.Data}
	}
	if len(files) == 0 {
		return fmt.Errorf("no snapshots specified and no data found in config")
	}

	return validateFiles(filesystem, files, cmd.OutOrStdout(), cmd.ErrOrStderr(), viper.GetBool("quiet"))
}

func validateFiles(filesystem fs.FileSystem, files []string, stdout, stderr io.Writer, quiet bool) error {
	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(stdout, "Validating %s...\n", file)
		}

		doc, err := load.File(filesystem, file)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		errs := validator.ValidateWithPath(doc, file)
		for i := range errs {
			fmt.Fprintln(stderr, errs[i].Error())
		}
		if len(errs) > 0 {
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Fprintf(stdout, "  %d tokens in %d groups\n", len(doc.AllTokens()), len(doc.Groups))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Fprintln(stdout, "All snapshots valid.")
	}
	return nil
}
