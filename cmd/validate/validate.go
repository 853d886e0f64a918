/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for gevanim.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/gevanim/cmd/workspace"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate the token graph",
	Long: `Resolve every token under every stored theme and report all broken
references, cycles, and transform type mismatches at once.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	sys, err := workspace.System(args)
	if err != nil {
		return err
	}

	errs := sys.ValidateTokens()
	if len(errs) == 0 {
		fmt.Println("token graph is valid")
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
	}
	return fmt.Errorf("%d token(s) failed to resolve", len(errs))
}
