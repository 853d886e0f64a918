/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// Theme identifies one of the named value-sets a token can have
// simultaneously.
type Theme int

const (
	// Light is the default theme variant.
	Light Theme = iota

	// Dark is the dark-mode theme variant.
	Dark

	// Auto is a resolution-time alias that falls back to Light unless the
	// caller has explicitly populated Auto entries.
	Auto
)

// Themes lists every storable theme variant.
var Themes = []Theme{Light, Dark, Auto}

// String returns the lowercase name of the theme.
func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("theme(%d)", int(t))
	}
}

// ThemeFromString parses a theme name.
func ThemeFromString(s string) (Theme, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "auto":
		return Auto, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (want light, dark, or auto)", s)
	}
}
