/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"

	"bennypowers.dev/gevanim/token"
)

// ValidationError records one failed resolution during a full-graph pass.
type ValidationError struct {
	// Path is the token that failed to resolve.
	Path token.Path

	// Theme is the variant under which resolution failed.
	Theme token.Theme

	// Err is the underlying resolution error.
	Err error
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Path, e.Theme, e.Err)
}

// Unwrap exposes the resolution error for errors.Is checks.
func (e ValidationError) Unwrap() error { return e.Err }

// Validate resolves every known path under every theme present in storage,
// collecting failures rather than stopping at the first. A nil return means
// the whole graph resolves cleanly.
func (r *Resolver) Validate() []ValidationError {
	var errs []ValidationError
	for _, theme := range r.store.SupportedThemes() {
		for _, path := range r.store.ListPaths(theme) {
			if _, err := r.Resolve(path, theme); err != nil {
				errs = append(errs, ValidationError{Path: path, Theme: theme, Err: err})
			}
		}
	}
	return errs
}
