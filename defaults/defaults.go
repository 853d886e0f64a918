/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package defaults provides the canonical built-in token dataset. One
// embedded source of truth replaces the per-consumer literal tables that
// tend to drift apart.
package defaults

import (
	_ "embed"

	"bennypowers.dev/gevanim/loader"
	"bennypowers.dev/gevanim/store"
	"bennypowers.dev/gevanim/token"
)

//go:embed tokens.yaml
var lightTokens []byte

//go:embed tokens-dark.yaml
var darkTokens []byte

// Seed loads the default token set into st. The light set loads first,
// then is copied wholesale into the dark theme, then the dark overrides
// apply on top, so every light token resolves under dark with dark
// decisions winning where they differ.
func Seed(st *store.Store) error {
	if err := loader.Load(lightTokens, st, token.Light); err != nil {
		return err
	}
	st.CopyTheme(token.Light, token.Dark)
	return loader.Load(darkTokens, st, token.Dark)
}

// NewStore returns a store pre-seeded with the default token set.
func NewStore() (*store.Store, error) {
	st := store.New()
	if err := Seed(st); err != nil {
		return nil, err
	}
	return st, nil
}
