/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssgen renders resolved token sets into CSS text: custom-property
// declarations, theme-scoped blocks, component class rules, and utility
// classes.
package cssgen

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/gevanim/minify"
	"bennypowers.dev/gevanim/resolver"
	"bennypowers.dev/gevanim/store"
	"bennypowers.dev/gevanim/token"
)

// Options configures CSS generation.
type Options struct {
	// Prefix is the CSS custom property prefix (default "ant").
	Prefix string

	// Minify strips comments and collapses whitespace in generated output.
	Minify bool

	// DarkMode enables emission of dark-theme override blocks.
	DarkMode bool
}

// DefaultPrefix is the custom property prefix used when none is configured.
const DefaultPrefix = "ant"

// Generator renders a store's resolved tokens as CSS.
type Generator struct {
	store    *store.Store
	resolver *resolver.Resolver
	opts     Options
}

// New creates a generator over st and r.
func New(st *store.Store, r *resolver.Resolver, opts Options) *Generator {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return &Generator{store: st, resolver: r, opts: opts}
}

// Prefix returns the configured custom property prefix.
func (g *Generator) Prefix() string {
	return g.opts.Prefix
}

// VariableName returns the CSS custom property name for a token path.
func (g *Generator) VariableName(path token.Path) string {
	return path.CSSVariableName(g.opts.Prefix)
}

var titleCaser = cases.Title(language.English)

// GenerateVariables renders one custom-property declaration per token
// visible under theme, skipping private namespaces, grouped under category
// comments when not minifying. Unresolvable references degrade to var()
// fallbacks; hard failures (cycles, bad transforms) accumulate and abort
// the export.
func (g *Generator) GenerateVariables(theme token.Theme) (string, error) {
	byCategory := make(map[token.Category][]string)
	var errs []error

	for _, path := range g.store.VisiblePaths(theme) {
		if token.IsInternal(path) {
			continue
		}

		text, err := g.declarationValue(path, theme)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if text == "" {
			// Objects and nulls have no custom-property representation.
			continue
		}

		cat := token.CategoryOf(path)
		decl := fmt.Sprintf("  %s: %s;", g.VariableName(path), text)
		byCategory[cat] = append(byCategory[cat], decl)
	}

	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}

	var sb strings.Builder
	for _, cat := range []token.Category{
		token.CategoryColors,
		token.CategorySpacing,
		token.CategoryTypography,
		token.CategoryOther,
	} {
		decls := byCategory[cat]
		if len(decls) == 0 {
			continue
		}
		if !g.opts.Minify {
			fmt.Fprintf(&sb, "  /* %s */\n", titleCaser.String(cat.String()))
		}
		for _, d := range decls {
			sb.WriteString(d)
			sb.WriteString("\n")
		}
	}

	out := sb.String()
	if g.opts.Minify {
		out = minify.CSS(out)
	}
	return out, nil
}

// declarationValue resolves path and converts the result to a CSS literal.
// A reference whose target is missing renders as a var() fallback so
// consumers can still supply the value at the CSS layer.
func (g *Generator) declarationValue(path token.Path, theme token.Theme) (string, error) {
	resolved, err := g.resolver.Resolve(path, theme)
	if err != nil {
		if errors.Is(err, token.ErrNotFound) {
			if stored, ok := g.storedValue(path, theme); ok {
				if target, _, isRef := token.ReferenceTarget(stored); isRef {
					return fmt.Sprintf("var(%s)", target.CSSVariableName(g.opts.Prefix)), nil
				}
			}
		}
		return "", err
	}
	return ToCSSValue(resolved, g.opts.Prefix), nil
}

func (g *Generator) storedValue(path token.Path, theme token.Theme) (token.Value, bool) {
	if v, ok := g.store.Get(path, theme); ok {
		return v, true
	}
	if theme == token.Auto {
		return g.store.Get(path, token.Light)
	}
	return nil, false
}

// finish applies the minification pass when configured.
func (g *Generator) finish(css string) string {
	if g.opts.Minify {
		return minify.CSS(css)
	}
	return css
}
