/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token data model: paths, themed values,
// references, transforms, and the error taxonomy shared by the engine.
package token

import (
	"fmt"
	"strings"
)

// Path is the ordered segment sequence addressing a token,
// e.g. ["color", "primary", "500"] for "color.primary.500".
// Paths are the sole addressing mechanism; there are no numeric IDs.
type Path []string

// ParsePath parses a dotted path string into a Path.
// Empty paths and empty segments are rejected with ErrInvalidPath.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPath, s)
		}
	}
	return Path(segments), nil
}

// MustParsePath is like ParsePath but panics on invalid input.
// Use only with literal paths known to be well-formed.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the dot-separated form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Equal reports whether two paths have identical segment sequences.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// CSSVariableName returns the CSS custom property name for this path.
// e.g. "color.primary.500" with prefix "ant" → "--ant-color-primary-500".
func (p Path) CSSVariableName(prefix string) string {
	name := strings.ReplaceAll(p.String(), ".", "-")
	// Underscored namespaces like color_palette keep their underscore; only
	// dots become dashes so paths stay reversible.
	if prefix != "" {
		prefix = strings.ReplaceAll(prefix, ".", "-")
		return "--" + prefix + "-" + name
	}
	return "--" + name
}
