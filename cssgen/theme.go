/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssgen

import (
	"strings"

	"bennypowers.dev/gevanim/token"
)

// ExportVariables renders the custom-property stylesheet for theme: a :root
// block plus, when dark mode is enabled and dark tokens exist, a
// prefers-color-scheme override block. Output is deterministic for an
// unchanged store.
func (g *Generator) ExportVariables(theme token.Theme) (string, error) {
	vars, err := g.GenerateVariables(theme)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(":root {\n")
	sb.WriteString(vars)
	sb.WriteString("}\n")

	if g.opts.DarkMode && theme != token.Dark && g.store.Len(token.Dark) > 0 {
		darkVars, err := g.GenerateVariables(token.Dark)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n@media (prefers-color-scheme: dark) {\n")
		sb.WriteString("  :root {\n")
		sb.WriteString(indent(darkVars, "  "))
		sb.WriteString("  }\n")
		sb.WriteString("}\n")
	}

	return g.finish(sb.String()), nil
}

// GenerateThemeCSS composes the full theme stylesheet: the :root block for
// theme, a prefers-color-scheme dark media block, a .theme-dark class block
// for manual toggling, and a global transition rule easing themed property
// changes. Fails on the first unresolved required path so output is never
// silently incomplete.
func (g *Generator) GenerateThemeCSS(theme token.Theme) (string, error) {
	vars, err := g.GenerateVariables(theme)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(":root {\n")
	sb.WriteString(vars)
	sb.WriteString("}\n")

	if g.opts.DarkMode && g.store.Len(token.Dark) > 0 {
		darkVars, err := g.GenerateVariables(token.Dark)
		if err != nil {
			return "", err
		}

		sb.WriteString("\n@media (prefers-color-scheme: dark) {\n")
		sb.WriteString("  :root {\n")
		sb.WriteString(indent(darkVars, "  "))
		sb.WriteString("  }\n")
		sb.WriteString("}\n")

		sb.WriteString("\n.theme-dark {\n")
		sb.WriteString(darkVars)
		sb.WriteString("}\n")
	}

	sb.WriteString("\n* {\n")
	sb.WriteString("  transition: color 0.3s ease, background-color 0.3s ease, border-color 0.3s ease, box-shadow 0.3s ease;\n")
	sb.WriteString("}\n")

	return g.finish(sb.String()), nil
}

// indent prefixes every non-empty line with pad.
func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	var sb strings.Builder
	for i, line := range lines {
		if line != "" {
			sb.WriteString(pad)
			sb.WriteString(line)
		}
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
