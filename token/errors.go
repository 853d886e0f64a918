/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for token operations. Callers branch on these with
// errors.Is rather than parsing messages.
var (
	// ErrNotFound indicates no value exists for a path under any
	// applicable theme.
	ErrNotFound = errors.New("token not found")

	// ErrCircularReference indicates a reference chain revisited a path.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrTypeMismatch indicates a transform was applied to a value of the
	// wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidTransform indicates a malformed transform.
	ErrInvalidTransform = errors.New("invalid transform")

	// ErrInvalidPath indicates a malformed token path.
	ErrInvalidPath = errors.New("invalid token path")

	// ErrInvalidValue indicates a malformed token value.
	ErrInvalidValue = errors.New("invalid token value")

	// ErrSerialization indicates a value could not be serialized.
	ErrSerialization = errors.New("serialization failed")
)

// NotFoundError reports the path that had no entry.
type NotFoundError struct {
	Path Path
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("token not found: %s", e.Path)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// CircularReferenceError carries the reference chain that closed the cycle.
type CircularReferenceError struct {
	Chain []Path
}

func (e *CircularReferenceError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, p := range e.Chain {
		parts[i] = p.String()
	}
	return fmt.Sprintf("circular reference detected: %s", strings.Join(parts, " -> "))
}

// Unwrap allows errors.Is(err, ErrCircularReference).
func (e *CircularReferenceError) Unwrap() error { return ErrCircularReference }

// TypeMismatchError reports the expected and actual value kinds.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Unwrap allows errors.Is(err, ErrTypeMismatch).
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
