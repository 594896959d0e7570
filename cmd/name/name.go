/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package name provides the name command, which prints the Swift identifier
// a token would be given in a template.
package name

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenfuncs/naming"
)

// Cmd is the name cobra command.
var Cmd = &cobra.Command{
	Use:   "name <token-name>",
	Short: "Print the Swift identifier for a token",
	Long: `Print the identifier createSwiftVariableName or readableSwiftVariableName
would produce for a token with the given group.

Examples:
  tokenfuncs name --path Button --group Primary Background    # buttonPrimaryBackground
  tokenfuncs name --path Button --group Primary --strip Background
  tokenfuncs name --root --pascal "2x Large"                   # _2xLarge`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringSlice("path", nil, "Group path segments, outermost first")
	Cmd.Flags().String("group", "", "Group name")
	Cmd.Flags().Bool("root", false, "Treat the group as the root group")
	Cmd.Flags().Bool("strip", false, "Drop the first segment, as for component tokens")
	Cmd.Flags().Bool("pascal", false, "Use PascalCase instead of camelCase")
}

type nameOptions struct {
	path   []string
	group  string
	root   bool
	strip  bool
	pascal bool
}

func run(cmd *cobra.Command, args []string) error {
	var opts nameOptions
	var err error
	if opts.path, err = cmd.Flags().GetStringSlice("path"); err != nil {
		return fmt.Errorf("error reading path flag: %w", err)
	}
	if opts.group, err = cmd.Flags().GetString("group"); err != nil {
		return fmt.Errorf("error reading group flag: %w", err)
	}
	opts.root, _ = cmd.Flags().GetBool("root")
	opts.strip, _ = cmd.Flags().GetBool("strip")
	opts.pascal, _ = cmd.Flags().GetBool("pascal")

	return printName(cmd.OutOrStdout(), args[0], opts)
}

func printName(w io.Writer, tokenName string, opts nameOptions) error {
	c := naming.Camel
	if opts.pascal {
		c = naming.Pascal
	}
	id := naming.DeriveIdentifier(tokenName, opts.path, opts.group, opts.root, opts.strip, c)
	if id == "" {
		return fmt.Errorf("%q has no letters or digits to build an identifier from", tokenName)
	}
	_, err := fmt.Fprintln(w, id)
	return err
}
