/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenfuncs.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenfuncs/cmd/name"
	"bennypowers.dev/tokenfuncs/cmd/render"
	"bennypowers.dev/tokenfuncs/cmd/validate"
	"bennypowers.dev/tokenfuncs/cmd/version"
	"bennypowers.dev/tokenfuncs/internal/logger"
)

// EnvPrefix prefixes environment variables that override flags, e.g. TOKENFUNCS_DATA.
const EnvPrefix = "TOKENFUNCS"

var rootCmd = &cobra.Command{
	Use:   "tokenfuncs",
	Short: "Render Swift design token templates",
	Long: `tokenfuncs renders export templates against a design token snapshot, with
helpers for Swift identifier naming, component token filtering, and
documentation comments.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only output errors")
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(name.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
