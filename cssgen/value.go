/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssgen

import (
	"strconv"
	"strings"

	"bennypowers.dev/gevanim/token"
)

// ToCSSValue converts a resolved token value to its CSS literal form.
// Colors and dimensions pass through as written; typography degrades to its
// quoted font family; shadows and arrays join their parts; objects and
// nulls have no CSS representation and return "".
func ToCSSValue(v token.Value, prefix string) string {
	switch val := v.(type) {
	case token.String:
		return string(val)
	case token.Number:
		return formatFloat(float64(val))
	case token.Boolean:
		return strconv.FormatBool(bool(val))
	case token.Color:
		return string(val)
	case token.Dimension:
		return val.String()
	case token.Typography:
		return quoteFamily(val.Family)
	case token.Shadow:
		return shadowCSS(val)
	case token.Array:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := ToCSSValue(item, prefix); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case token.Object:
		return ""
	case token.Reference:
		return "var(" + val.Target.CSSVariableName(prefix) + ")"
	case token.TokenReference:
		return "var(" + val.Target.CSSVariableName(prefix) + ")"
	case token.Null:
		return ""
	default:
		return ""
	}
}

// shadowCSS renders a shadow as a space-joined CSS literal:
// [inset] x y blur spread color.
func shadowCSS(s token.Shadow) string {
	parts := make([]string, 0, 6)
	if s.Inset {
		parts = append(parts, "inset")
	}
	parts = append(parts,
		s.OffsetX.String(),
		s.OffsetY.String(),
		s.Blur.String(),
		s.Spread.String(),
	)
	if s.Color != "" {
		parts = append(parts, s.Color)
	}
	return strings.Join(parts, " ")
}

// quoteFamily quotes a font family name unless it is already quoted.
func quoteFamily(family string) string {
	if family == "" {
		return ""
	}
	if strings.HasPrefix(family, `"`) && strings.HasSuffix(family, `"`) {
		return family
	}
	return `"` + family + `"`
}

// formatFloat renders a number without a trailing ".0" for integral values.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// toKebabCase converts a property segment to its CSS form, splitting on
// camelCase boundaries, underscores, and dots.
func toKebabCase(s string) string {
	words := splitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// splitIntoWords splits on hyphens, underscores, dots, spaces, and
// camelCase boundaries.
func splitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case r >= 'A' && r <= 'Z' && i > 0:
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}
