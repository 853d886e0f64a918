/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for gevanim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/gevanim/cmd/component"
	"bennypowers.dev/gevanim/cmd/export"
	"bennypowers.dev/gevanim/cmd/list"
	"bennypowers.dev/gevanim/cmd/search"
	"bennypowers.dev/gevanim/cmd/utility"
	"bennypowers.dev/gevanim/cmd/validate"
	"bennypowers.dev/gevanim/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "gevanim",
	Short: "Resolve design tokens and generate themed CSS",
	Long:  `gevanim manages a three-tier design token graph (global, semantic, component) and renders it into CSS custom properties, theme blocks, component classes, and utilities.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("prefix", "p", "ant", "CSS variable prefix")
	pf.StringP("theme", "t", "light", "Active theme (light, dark, auto)")
	pf.Bool("minify", false, "Minify generated CSS")
	pf.Bool("dark", true, "Emit dark-theme override blocks")
	pf.Bool("no-defaults", false, "Start from an empty store instead of the built-in token set")

	for _, name := range []string{"prefix", "theme", "minify", "dark", "no-defaults"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(component.Cmd)
	rootCmd.AddCommand(utility.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
