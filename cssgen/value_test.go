/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssgen_test

import (
	"testing"

	"bennypowers.dev/gevanim/cssgen"
	"bennypowers.dev/gevanim/token"
)

func TestToCSSValue(t *testing.T) {
	px := func(v float64) token.Dimension { return token.Dimension{Value: v, Unit: "px"} }

	tests := []struct {
		name string
		in   token.Value
		want string
	}{
		{"string", token.String("solid"), "solid"},
		{"integral number", token.Number(16), "16"},
		{"fractional number", token.Number(0.5), "0.5"},
		{"boolean", token.Boolean(true), "true"},
		{"color", token.Color("#1890ff"), "#1890ff"},
		{"dimension", px(16), "16px"},
		{"rem dimension", token.Dimension{Value: 1.5, Unit: "rem"}, "1.5rem"},
		{"typography", token.Typography{Family: "Inter"}, `"Inter"`},
		{"quoted typography", token.Typography{Family: `"Inter"`}, `"Inter"`},
		{
			"shadow",
			token.Shadow{OffsetX: px(0), OffsetY: px(2), Blur: px(4), Spread: px(0), Color: "rgba(0, 0, 0, 0.1)"},
			"0px 2px 4px 0px rgba(0, 0, 0, 0.1)",
		},
		{
			"inset shadow",
			token.Shadow{OffsetX: px(0), OffsetY: px(1), Blur: px(2), Spread: px(0), Color: "#000000", Inset: true},
			"inset 0px 1px 2px 0px #000000",
		},
		{"array", token.Array{px(4), px(8)}, "4px, 8px"},
		{"object", token.Object{"x": px(4)}, ""},
		{"null", token.Null{}, ""},
		{
			"reference",
			token.Reference{Target: token.MustParsePath("color.primary.500")},
			"var(--ant-color-primary-500)",
		},
		{
			"transformed reference",
			token.TokenReference{
				Target:    token.MustParsePath("color.primary.500"),
				Transform: token.Alpha(0.5),
			},
			"var(--ant-color-primary-500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cssgen.ToCSSValue(tt.in, "ant"); got != tt.want {
				t.Errorf("ToCSSValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
