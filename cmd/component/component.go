/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package component provides the component command for gevanim.
package component

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/gevanim/cmd/workspace"
)

// Cmd is the component cobra command.
var Cmd = &cobra.Command{
	Use:   "component <name> [files...]",
	Short: "Generate class rules for one component",
	Long: `Generate base, variant, and state class rules from the tokens under
component.<name>.* in the active theme.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	sys, err := workspace.System(args[1:])
	if err != nil {
		return err
	}

	css, err := sys.GenerateComponentCSS(args[0])
	if err != nil {
		return err
	}

	fmt.Print(css)
	return nil
}
