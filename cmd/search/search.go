/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for gevanim.
package search

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/gevanim/cmd/workspace"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <substring> [files...]",
	Short: "Search token paths by substring",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("css", false, "Show CSS variable names")
}

func run(cmd *cobra.Command, args []string) error {
	css, _ := cmd.Flags().GetBool("css")

	sys, err := workspace.System(args[1:])
	if err != nil {
		return err
	}

	matches := sys.SearchTokens(args[0])
	if len(matches) == 0 {
		return fmt.Errorf("no tokens match %q", args[0])
	}

	for _, p := range matches {
		if css {
			fmt.Println(sys.CSSVarName(p))
		} else {
			fmt.Println(p)
		}
	}
	return nil
}
