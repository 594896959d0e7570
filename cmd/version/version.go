/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for tokenfuncs.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenfuncs/funcs"
	"bennypowers.dev/tokenfuncs/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for tokenfuncs and the template helpers it registers.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	return printVersion(cmd.OutOrStdout(), format)
}

func printVersion(w io.Writer, format string) error {
	switch format {
	case "json":
		info := map[string]any{}
		for k, v := range version.Info() {
			info[k] = v
		}
		info["helpers"] = funcs.Names()
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		fmt.Fprintln(w, string(out))
	default:
		fmt.Fprintf(w, "tokenfuncs %s\n", version.Full())
	}
	return nil
}
