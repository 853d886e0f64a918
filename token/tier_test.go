/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/gevanim/token"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		path string
		want token.Tier
	}{
		{"color_palette.primary.500", token.TierGlobal},
		{"spacing_system.md", token.TierGlobal},
		{"motion_system.duration.base", token.TierGlobal},
		{"color.primary.500", token.TierGlobal},
		{"semantic_colors.text.primary", token.TierAlias},
		{"semantic_spacing.stack", token.TierAlias},
		{"component.button.primary.hover.background", token.TierComponent},
		{"unknown_namespace.foo", token.TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := token.TierOf(token.MustParsePath(tt.path)); got != tt.want {
				t.Errorf("TierOf(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		path string
		want token.Category
	}{
		{"color_palette.primary.500", token.CategoryColors},
		{"semantic_colors.text.primary", token.CategoryColors},
		{"spacing_system.md", token.CategorySpacing},
		{"sizing_system.control.md", token.CategorySpacing},
		{"font_system.size.md", token.CategoryTypography},
		{"typography.heading.size", token.CategoryTypography},
		{"motion_system.duration.base", token.CategoryOther},
		{"component.button.background", token.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := token.CategoryOf(token.MustParsePath(tt.path)); got != tt.want {
				t.Errorf("CategoryOf(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsState(t *testing.T) {
	for _, s := range []string{"hover", "active", "focus", "disabled"} {
		if !token.IsState(s) {
			t.Errorf("IsState(%q) = false", s)
		}
	}
	for _, s := range []string{"default", "primary", "ghost", ""} {
		if token.IsState(s) {
			t.Errorf("IsState(%q) = true", s)
		}
	}
}

func TestIsInternal(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"_private.cache", true},
		{"internal.scratch", true},
		{"color.primary.500", false},
	}

	for _, tt := range tests {
		if got := token.IsInternal(token.MustParsePath(tt.path)); got != tt.want {
			t.Errorf("IsInternal(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
