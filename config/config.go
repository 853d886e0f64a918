/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides static configuration for the token system.
package config

import (
	"bennypowers.dev/gevanim/token"
)

// Config is the small static configuration supplied at construction.
type Config struct {
	// Prefix is the CSS custom property prefix (default "ant").
	Prefix string `yaml:"prefix" json:"prefix"`

	// Minify strips comments and collapses whitespace in generated CSS.
	Minify bool `yaml:"minify" json:"minify"`

	// DarkMode enables dark-theme override block emission.
	DarkMode bool `yaml:"darkMode" json:"darkMode"`

	// Theme names the initially active theme variant.
	Theme string `yaml:"theme" json:"theme"`

	// Files lists token definition files to load (globs supported).
	Files []string `yaml:"files" json:"files"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix:   "ant",
		Minify:   false,
		DarkMode: true,
		Theme:    token.Light.String(),
	}
}

// ActiveTheme parses the configured theme name, defaulting to Light.
func (c *Config) ActiveTheme() token.Theme {
	if c.Theme == "" {
		return token.Light
	}
	t, err := token.ThemeFromString(c.Theme)
	if err != nil {
		return token.Light
	}
	return t
}
