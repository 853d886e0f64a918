/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssgen

import (
	"fmt"
	"sort"
	"strings"

	"bennypowers.dev/gevanim/token"
)

// componentRules buckets resolved declarations for one component: base
// styles, per-variant styles, per-state styles, and per-variant-state
// styles.
type componentRules struct {
	base          map[string]string
	variants      map[string]map[string]string
	states        map[string]map[string]string
	variantStates map[string]map[string]map[string]string
}

// GenerateComponentClasses renders class rules for every token under
// component.<name>.*. Paths route on the segment after the component name:
// a recognized state keyword produces state styles, anything else a
// variant; a state keyword one level deeper produces variant-state styles.
// Fails with a descriptive error if the component has no tokens, and
// short-circuits on the first unresolvable token.
func (g *Generator) GenerateComponentClasses(component string, theme token.Theme) (string, error) {
	rules := componentRules{
		base:          make(map[string]string),
		variants:      make(map[string]map[string]string),
		states:        make(map[string]map[string]string),
		variantStates: make(map[string]map[string]map[string]string),
	}

	found := false
	for _, path := range g.store.VisiblePaths(theme) {
		if len(path) < 3 || path[0] != "component" || path[1] != component {
			continue
		}
		found = true

		resolved, err := g.resolver.Resolve(path, theme)
		if err != nil {
			return "", fmt.Errorf("component %q: %w", component, err)
		}
		text := ToCSSValue(resolved, g.opts.Prefix)
		if text == "" {
			continue
		}

		rest := path[2:]
		switch {
		case len(rest) == 1:
			rules.base[toKebabCase(rest[0])] = text

		case token.IsState(rest[0]):
			prop := propertyName(rest[1:])
			bucket(rules.states, rest[0])[prop] = text

		case len(rest) >= 2 && token.IsState(rest[1]):
			prop := propertyName(rest[2:])
			variant := rest[0]
			if rules.variantStates[variant] == nil {
				rules.variantStates[variant] = make(map[string]map[string]string)
			}
			bucket(rules.variantStates[variant], rest[1])[prop] = text

		default:
			prop := propertyName(rest[1:])
			bucket(rules.variants, rest[0])[prop] = text
		}
	}

	if !found {
		return "", fmt.Errorf("no tokens found for component %q", component)
	}

	var sb strings.Builder

	if len(rules.base) > 0 {
		writeRule(&sb, "."+component, rules.base)
	}

	for _, variant := range sortedKeys(rules.variants) {
		writeRule(&sb, fmt.Sprintf(".%s-%s", component, variant), rules.variants[variant])
	}

	for _, state := range token.States {
		if props, ok := rules.states[state]; ok {
			writeRule(&sb, stateSelector("."+component, state), props)
		}
	}

	for _, variant := range sortedKeys(rules.variantStates) {
		selector := fmt.Sprintf(".%s-%s", component, variant)
		for _, state := range token.States {
			if props, ok := rules.variantStates[variant][state]; ok {
				writeRule(&sb, stateSelector(selector, state), props)
			}
		}
	}

	return g.finish(sb.String()), nil
}

// stateSelector maps an interaction state to its CSS selector form.
// Disabled is a class or attribute, not a pseudo-class.
func stateSelector(base, state string) string {
	if state == "disabled" {
		return fmt.Sprintf("%s.disabled, %s[disabled]", base, base)
	}
	return base + ":" + state
}

// propertyName joins remaining path segments into a CSS property name.
func propertyName(segments []string) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = toKebabCase(seg)
	}
	return strings.Join(parts, "-")
}

// writeRule emits a selector block with sorted declarations.
func writeRule(sb *strings.Builder, selector string, props map[string]string) {
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, prop := range sortedKeys(props) {
		fmt.Fprintf(sb, "  %s: %s;\n", prop, props[prop])
	}
	sb.WriteString("}\n\n")
}

func bucket(m map[string]map[string]string, key string) map[string]string {
	if m[key] == nil {
		m[key] = make(map[string]string)
	}
	return m[key]
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
