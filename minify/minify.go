/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package minify provides a textual CSS minification pass. It operates on
// generated CSS after resolution and never alters resolved values: comments
// are stripped, whitespace collapses outside string literals, and zero
// values lose their units and leading zeros.
package minify

import "strings"

// CSS minifies a CSS string.
func CSS(css string) string {
	out := stripComments(css)
	out = collapseWhitespace(out)
	out = trimZeros(out)
	return out
}

// stripComments removes /* */ comments outside string literals.
func stripComments(s string) string {
	var sb strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			sb.WriteByte(c)
			if c == quote && (i == 0 || s[i-1] != '\\') {
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'':
			quote = c
			sb.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return sb.String()
			}
			i += 2 + end + 1
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// collapseWhitespace reduces whitespace runs to single spaces outside
// string literals, then drops the spaces that CSS syntax makes redundant:
// around braces, colons, semicolons, and commas.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	var quote byte
	space := false

	flushSpace := func(next byte) {
		if !space {
			return
		}
		space = false
		if sb.Len() == 0 {
			return
		}
		prev := sb.String()[sb.Len()-1]
		if isSeparator(prev) || isSeparator(next) {
			return
		}
		sb.WriteByte(' ')
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			sb.WriteByte(c)
			if c == quote && s[i-1] != '\\' {
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'':
			flushSpace(c)
			quote = c
			sb.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			space = true
		default:
			flushSpace(c)
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// isSeparator reports whether a space next to c carries no meaning.
func isSeparator(c byte) bool {
	switch c {
	case '{', '}', ':', ';', ',', '>':
		return true
	}
	return false
}

// cssUnits are the length units stripped from zero values.
var cssUnits = []string{"px", "rem", "em", "pt", "vh", "vw", "%"}

// trimZeros rewrites zero values outside string literals: "0px" becomes
// "0" and "0.5" becomes ".5". Only values in property position (after a
// colon, comma, space, or open paren) are touched, so selectors and
// identifiers are left alone.
func trimZeros(s string) string {
	var sb strings.Builder
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			sb.WriteByte(c)
			if c == quote && s[i-1] != '\\' {
				quote = 0
			}
			continue
		}

		if c == '"' || c == '\'' {
			quote = c
			sb.WriteByte(c)
			continue
		}

		if c == '0' && atValueBoundary(s, i) {
			// Leading zero: 0.5 → .5
			if i+2 < len(s) && s[i+1] == '.' && isDigit(s[i+2]) {
				continue
			}
			// Unit-less zero: 0px → 0
			if unit := matchUnit(s[i+1:]); unit != "" {
				after := i + 1 + len(unit)
				if after >= len(s) || isValueEnd(s[after]) {
					sb.WriteByte('0')
					i += len(unit)
					continue
				}
			}
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

// atValueBoundary reports whether position i starts a value token.
func atValueBoundary(s string, i int) bool {
	if i == 0 {
		return false
	}
	switch s[i-1] {
	case ':', ',', ' ', '(':
		return true
	}
	return false
}

// isValueEnd reports whether c terminates a value token.
func isValueEnd(c byte) bool {
	switch c {
	case ';', '}', ',', ' ', ')':
		return true
	}
	return false
}

func matchUnit(s string) string {
	for _, u := range cssUnits {
		if strings.HasPrefix(s, u) {
			return u
		}
	}
	return ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
