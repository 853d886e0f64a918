/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Metadata is free-form documentation attached to a path. It is not
// theme-scoped; theme operations on the store leave it untouched.
type Metadata struct {
	// Description documents the token's purpose.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version tracks the token's revision, if the authoring workflow uses one.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Deprecated indicates the token should no longer be used.
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// DeprecationMessage provides context for deprecated tokens.
	DeprecationMessage string `json:"deprecationMessage,omitempty" yaml:"deprecationMessage,omitempty"`
}
