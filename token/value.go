/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strconv"
)

// Kind discriminates the Value union.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindColor
	KindDimension
	KindTypography
	KindShadow
	KindArray
	KindObject
	KindReference
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindColor:
		return "color"
	case KindDimension:
		return "dimension"
	case KindTypography:
		return "typography"
	case KindShadow:
		return "shadow"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a design token value. The concrete types form a closed union:
// String, Number, Boolean, Color, Dimension, Typography, Shadow, Array,
// Object, Reference, TokenReference, and Null.
type Value interface {
	Kind() Kind
}

// String is a plain string value.
type String string

func (String) Kind() Kind { return KindString }

// Number is a unitless numeric value.
type Number float64

func (Number) Kind() Kind { return KindNumber }

// Boolean is a true/false value.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

// Color is a normalized CSS color string, e.g. "#1890ff" or
// "rgba(0, 0, 0, 0.5)".
type Color string

func (Color) Kind() Kind { return KindColor }

// Dimension is a numeric magnitude with a unit, e.g. 16px or 1.5rem.
type Dimension struct {
	Value float64
	Unit  string
}

func (Dimension) Kind() Kind { return KindDimension }

// String returns the CSS literal form, e.g. "16px".
func (d Dimension) String() string {
	return formatNumber(d.Value) + d.Unit
}

// Typography is a composite font setting. Every field is optional; zero
// values are omitted from output.
type Typography struct {
	Family        string
	Size          *Dimension
	Weight        *Number
	LineHeight    *Number
	LetterSpacing *Dimension
}

func (Typography) Kind() Kind { return KindTypography }

// Shadow is a composite box-shadow value.
type Shadow struct {
	OffsetX Dimension
	OffsetY Dimension
	Blur    Dimension
	Spread  Dimension
	Color   string
	Inset   bool
}

func (Shadow) Kind() Kind { return KindShadow }

// Array is an ordered list of values, e.g. layered shadows.
type Array []Value

func (Array) Kind() Kind { return KindArray }

// Object is a string-keyed mapping of values. Objects have no direct CSS
// representation.
type Object map[string]Value

func (Object) Kind() Kind { return KindObject }

// Reference points at another token path instead of holding a literal value.
type Reference struct {
	Target Path
}

func (Reference) Kind() Kind { return KindReference }

// TokenReference points at another token path and optionally applies a
// transform to the resolved value.
type TokenReference struct {
	Target    Path
	Transform *Transform
}

func (TokenReference) Kind() Kind { return KindReference }

// Null is the explicit absence of a value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// IsReference reports whether v is a Reference or TokenReference.
func IsReference(v Value) bool {
	switch v.(type) {
	case Reference, TokenReference:
		return true
	default:
		return false
	}
}

// ReferenceTarget returns the referenced path and transform for reference
// values, or ok=false for anything else.
func ReferenceTarget(v Value) (target Path, transform *Transform, ok bool) {
	switch ref := v.(type) {
	case Reference:
		return ref.Target, nil, true
	case TokenReference:
		return ref.Target, ref.Transform, true
	default:
		return nil, nil, false
	}
}

// formatNumber renders a float without a trailing ".0" for integral values.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
