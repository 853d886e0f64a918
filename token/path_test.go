/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"testing"

	"bennypowers.dev/gevanim/token"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    token.Path
		wantErr bool
	}{
		{
			name:  "simple",
			input: "color",
			want:  token.Path{"color"},
		},
		{
			name:  "nested",
			input: "color.primary.500",
			want:  token.Path{"color", "primary", "500"},
		},
		{
			name:  "component path",
			input: "component.button.primary.hover.background",
			want:  token.Path{"component", "button", "primary", "hover", "background"},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty segment",
			input:   "color..primary",
			wantErr: true,
		},
		{
			name:    "trailing dot",
			input:   "color.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := token.ParsePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePath(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, token.ErrInvalidPath) {
					t.Errorf("ParsePath(%q) error = %v, want ErrInvalidPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPath_String(t *testing.T) {
	p := token.Path{"semantic_colors", "text", "primary"}
	if got := p.String(); got != "semantic_colors.text.primary" {
		t.Errorf("String() = %q", got)
	}
}

func TestPath_Equal(t *testing.T) {
	a := token.MustParsePath("color.primary.500")
	b := token.MustParsePath("color.primary.500")
	c := token.MustParsePath("color.primary.600")

	if !a.Equal(b) {
		t.Error("identical paths should be equal")
	}
	if a.Equal(c) {
		t.Error("distinct paths should not be equal")
	}
	if a.Equal(a[:2]) {
		t.Error("prefix should not equal full path")
	}
}

func TestPath_CSSVariableName(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		want   string
	}{
		{
			name:   "with prefix",
			path:   "color.primary.500",
			prefix: "ant",
			want:   "--ant-color-primary-500",
		},
		{
			name:   "no prefix",
			path:   "color.primary.500",
			prefix: "",
			want:   "--color-primary-500",
		},
		{
			name:   "dotted prefix",
			path:   "spacing.md",
			prefix: "my.ds",
			want:   "--my-ds-spacing-md",
		},
		{
			name:   "underscored namespace",
			path:   "spacing_system.md",
			prefix: "ant",
			want:   "--ant-spacing_system-md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := token.MustParsePath(tt.path)
			if got := p.CSSVariableName(tt.prefix); got != tt.want {
				t.Errorf("CSSVariableName(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestMustParsePath_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePath(\"\") should panic")
		}
	}()
	token.MustParsePath("")
}
