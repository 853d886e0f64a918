/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssgen

import (
	"fmt"
	"strings"

	"bennypowers.dev/gevanim/token"
)

// breakpoint is a named responsive width boundary.
type breakpoint struct {
	name  string
	width int
}

// breakpoints are the responsive visibility boundaries, smallest first.
var breakpoints = []breakpoint{
	{"sm", 576},
	{"md", 768},
	{"lg", 992},
	{"xl", 1200},
}

// GenerateUtilityClasses renders single-purpose classes from the global
// tiers: text/background/border color utilities for every color token,
// margin/padding (including axis-specific) utilities for every spacing
// token, font-size utilities for every typography size token, and fixed
// responsive visibility helpers at the four breakpoints.
func (g *Generator) GenerateUtilityClasses(theme token.Theme) (string, error) {
	var sb strings.Builder

	for _, path := range g.store.VisiblePaths(theme) {
		if token.IsInternal(path) || len(path) < 2 {
			continue
		}

		cat := token.CategoryOf(path)
		if cat == token.CategoryOther {
			continue
		}

		resolved, err := g.resolver.Resolve(path, theme)
		if err != nil {
			return "", fmt.Errorf("utility generation: %s: %w", path, err)
		}

		name := utilityName(path)
		switch cat {
		case token.CategoryColors:
			c, ok := resolved.(token.Color)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, ".text-%s { color: %s; }\n", name, c)
			fmt.Fprintf(&sb, ".bg-%s { background-color: %s; }\n", name, c)
			fmt.Fprintf(&sb, ".border-%s { border-color: %s; }\n", name, c)

		case token.CategorySpacing:
			v := ToCSSValue(resolved, g.opts.Prefix)
			if v == "" {
				continue
			}
			fmt.Fprintf(&sb, ".m-%s { margin: %s; }\n", name, v)
			fmt.Fprintf(&sb, ".p-%s { padding: %s; }\n", name, v)
			fmt.Fprintf(&sb, ".mx-%s { margin-left: %s; margin-right: %s; }\n", name, v, v)
			fmt.Fprintf(&sb, ".my-%s { margin-top: %s; margin-bottom: %s; }\n", name, v, v)
			fmt.Fprintf(&sb, ".px-%s { padding-left: %s; padding-right: %s; }\n", name, v, v)
			fmt.Fprintf(&sb, ".py-%s { padding-top: %s; padding-bottom: %s; }\n", name, v, v)

		case token.CategoryTypography:
			if !strings.Contains(path.String(), "size") {
				continue
			}
			v := ToCSSValue(resolved, g.opts.Prefix)
			if v == "" {
				continue
			}
			fmt.Fprintf(&sb, ".text-%s { font-size: %s; }\n", name, v)
		}
	}

	for _, bp := range breakpoints {
		fmt.Fprintf(&sb, "@media (max-width: %dpx) { .hidden-%s-down { display: none !important; } }\n", bp.width, bp.name)
		fmt.Fprintf(&sb, "@media (min-width: %dpx) { .hidden-%s-up { display: none !important; } }\n", bp.width, bp.name)
	}

	return g.finish(sb.String()), nil
}

// utilityName derives a class suffix from a path by dropping the namespace
// segment: color.primary.500 → primary-500.
func utilityName(path token.Path) string {
	return strings.Join(path[1:], "-")
}
