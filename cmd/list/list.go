/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for gevanim.
package list

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/gevanim/cmd/workspace"
	"bennypowers.dev/gevanim/cssgen"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List token paths in the active theme",
	Long:  `List every token path visible under the active theme, optionally with resolved values or CSS variable names.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().Bool("css", false, "Show CSS variable names")
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	resolved, _ := cmd.Flags().GetBool("resolved")
	css, _ := cmd.Flags().GetBool("css")
	format, _ := cmd.Flags().GetString("format")

	sys, err := workspace.System(args)
	if err != nil {
		return err
	}

	type row struct {
		Path        string `json:"path"`
		CSSVar      string `json:"cssVar,omitempty"`
		Value       string `json:"value,omitempty"`
		Description string `json:"description,omitempty"`
	}

	var rows []row
	for _, p := range sys.ListTokens() {
		r := row{Path: p.String()}
		if css {
			r.CSSVar = sys.CSSVarName(p)
		}
		if resolved {
			v, err := sys.GetToken(p)
			if err != nil {
				r.Value = fmt.Sprintf("<%v>", err)
			} else {
				r.Value = cssgen.ToCSSValue(v, "")
			}
		}
		if meta, ok := sys.Metadata(p); ok {
			r.Description = meta.Description
		}
		rows = append(rows, r)
	}

	if format == "json" {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, r := range rows {
		line := r.Path
		if r.CSSVar != "" {
			line = r.CSSVar
		}
		if r.Value != "" {
			line += ": " + r.Value
		}
		fmt.Println(line)
	}
	return nil
}
