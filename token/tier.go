/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// Tier is the conventional layer a token path belongs to: raw decisions
// (Global), semantic names (Alias), or per-component names (Component).
type Tier int

const (
	TierUnknown Tier = iota
	TierGlobal
	TierAlias
	TierComponent
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierGlobal:
		return "global"
	case TierAlias:
		return "alias"
	case TierComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Category groups tokens for human-readable output sections.
type Category int

const (
	CategoryOther Category = iota
	CategoryColors
	CategorySpacing
	CategoryTypography
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryColors:
		return "colors"
	case CategorySpacing:
		return "spacing"
	case CategoryTypography:
		return "typography"
	default:
		return "other"
	}
}

// tierByPrefix is the single routing table for the three-tier convention.
// All path-prefix interpretation funnels through TierOf; nothing else in the
// engine inspects leading segments directly.
var tierByPrefix = map[string]Tier{
	"color_palette":  TierGlobal,
	"font_system":    TierGlobal,
	"spacing_system": TierGlobal,
	"border_system":  TierGlobal,
	"shadow_system":  TierGlobal,
	"motion_system":  TierGlobal,
	"sizing_system":  TierGlobal,
	// Short-form global namespaces used by hand-authored sets.
	"color":      TierGlobal,
	"spacing":    TierGlobal,
	"typography": TierGlobal,
	"shadow":     TierGlobal,
	"motion":     TierGlobal,
	"sizing":     TierGlobal,
	"font":       TierGlobal,
	"border":     TierGlobal,

	"semantic_colors":     TierAlias,
	"semantic_typography": TierAlias,
	"semantic_spacing":    TierAlias,
	"semantic_sizing":     TierAlias,

	"component": TierComponent,
}

// categoryByPrefix maps leading segments to output categories.
var categoryByPrefix = map[string]Category{
	"color_palette":   CategoryColors,
	"color":           CategoryColors,
	"semantic_colors": CategoryColors,

	"spacing_system":   CategorySpacing,
	"spacing":          CategorySpacing,
	"semantic_spacing": CategorySpacing,
	"sizing_system":    CategorySpacing,
	"sizing":           CategorySpacing,
	"semantic_sizing":  CategorySpacing,

	"font_system":         CategoryTypography,
	"font":                CategoryTypography,
	"typography":          CategoryTypography,
	"semantic_typography": CategoryTypography,
}

// States are the recognized component interaction states, in selector
// emission order.
var States = []string{"hover", "active", "focus", "disabled"}

// TierOf classifies a path by its leading segment.
func TierOf(p Path) Tier {
	if len(p) == 0 {
		return TierUnknown
	}
	return tierByPrefix[p[0]]
}

// CategoryOf classifies a path for grouped output.
func CategoryOf(p Path) Category {
	if len(p) == 0 {
		return CategoryOther
	}
	return categoryByPrefix[p[0]]
}

// IsState reports whether segment is a recognized interaction state.
func IsState(segment string) bool {
	for _, s := range States {
		if segment == s {
			return true
		}
	}
	return false
}

// IsInternal reports whether a path belongs to a private namespace that is
// skipped during CSS emission.
func IsInternal(p Path) bool {
	if len(p) == 0 {
		return true
	}
	return strings.HasPrefix(p[0], "_") || p[0] == "internal"
}
