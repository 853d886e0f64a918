/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package utility provides the utility command for gevanim.
package utility

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/gevanim/cmd/workspace"
)

// Cmd is the utility cobra command.
var Cmd = &cobra.Command{
	Use:   "utility [files...]",
	Short: "Generate utility classes from global tokens",
	Long: `Generate text/background/border color utilities, margin and padding
utilities, font-size utilities, and responsive visibility helpers from the
active theme's global tokens.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	sys, err := workspace.System(args)
	if err != nil {
		return err
	}

	css, err := sys.GenerateUtilityCSS()
	if err != nil {
		return err
	}

	fmt.Print(css)
	return nil
}
