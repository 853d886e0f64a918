/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for gevanim.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/gevanim/cmd/workspace"
	"bennypowers.dev/gevanim/fs"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Export resolved tokens as CSS custom properties",
	Long: `Export the active theme's resolved tokens as CSS custom properties.
With --full, emits the complete theme stylesheet: the :root block, the
prefers-color-scheme dark block, the .theme-dark class block, and the
theme transition rule.`,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("full", false, "Emit the full theme stylesheet")
	Cmd.Flags().StringP("out", "o", "", "Write output to a file instead of stdout")
}

func run(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	out, _ := cmd.Flags().GetString("out")

	sys, err := workspace.System(args)
	if err != nil {
		return err
	}

	var css string
	if full {
		css, err = sys.GenerateThemeCSS()
	} else {
		css, err = sys.ExportCSSVariables()
	}
	if err != nil {
		return err
	}

	if out != "" {
		return writeOutput(fs.NewOSFileSystem(), out, css)
	}
	fmt.Print(css)
	return nil
}

// writeOutput writes the generated CSS through the filesystem abstraction so
// tests can capture file output in memory.
func writeOutput(filesystem fs.FileSystem, path, css string) error {
	return filesystem.WriteFile(path, []byte(css), 0o644)
}
