/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// TransformKind discriminates transform operations.
type TransformKind int

const (
	// TransformAlpha replaces the alpha channel of a color.
	TransformAlpha TransformKind = iota

	// TransformLighten increases a color's HSL lightness.
	TransformLighten

	// TransformDarken decreases a color's HSL lightness.
	TransformDarken

	// TransformSaturate increases a color's HSL saturation.
	TransformSaturate

	// TransformDesaturate decreases a color's HSL saturation.
	TransformDesaturate

	// TransformMath applies arithmetic to a numeric or dimension magnitude,
	// preserving the unit.
	TransformMath
)

// String returns the lowercase transform name.
func (k TransformKind) String() string {
	switch k {
	case TransformAlpha:
		return "alpha"
	case TransformLighten:
		return "lighten"
	case TransformDarken:
		return "darken"
	case TransformSaturate:
		return "saturate"
	case TransformDesaturate:
		return "desaturate"
	case TransformMath:
		return "math"
	default:
		return fmt.Sprintf("transform(%d)", int(k))
	}
}

// MathOp is the arithmetic operation for TransformMath.
type MathOp int

const (
	MathAdd MathOp = iota
	MathSubtract
	MathMultiply
	MathDivide
)

// String returns the lowercase operation name.
func (op MathOp) String() string {
	switch op {
	case MathAdd:
		return "add"
	case MathSubtract:
		return "subtract"
	case MathMultiply:
		return "multiply"
	case MathDivide:
		return "divide"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Transform is a pure function applied to a fully resolved referenced value.
// Color transforms operate on color values only; Math operates on numbers
// and dimensions only. Transforms never reference other paths.
type Transform struct {
	Kind   TransformKind
	Factor float64

	// Op is meaningful only when Kind is TransformMath.
	Op MathOp
}

// Alpha returns a transform replacing the alpha channel with factor.
func Alpha(factor float64) *Transform {
	return &Transform{Kind: TransformAlpha, Factor: factor}
}

// Lighten returns a transform adding factor to HSL lightness.
func Lighten(factor float64) *Transform {
	return &Transform{Kind: TransformLighten, Factor: factor}
}

// Darken returns a transform subtracting factor from HSL lightness.
func Darken(factor float64) *Transform {
	return &Transform{Kind: TransformDarken, Factor: factor}
}

// Saturate returns a transform adding factor to HSL saturation.
func Saturate(factor float64) *Transform {
	return &Transform{Kind: TransformSaturate, Factor: factor}
}

// Desaturate returns a transform subtracting factor from HSL saturation.
func Desaturate(factor float64) *Transform {
	return &Transform{Kind: TransformDesaturate, Factor: factor}
}

// Math returns an arithmetic transform.
func Math(op MathOp, factor float64) *Transform {
	return &Transform{Kind: TransformMath, Factor: factor, Op: op}
}

// IsColor reports whether the transform operates on color values.
func (t *Transform) IsColor() bool {
	return t.Kind != TransformMath
}

// Validate rejects transforms with out-of-domain factors.
func (t *Transform) Validate() error {
	switch t.Kind {
	case TransformAlpha:
		if t.Factor < 0 || t.Factor > 1 {
			return fmt.Errorf("%w: alpha factor %v outside [0, 1]", ErrInvalidTransform, t.Factor)
		}
	case TransformLighten, TransformDarken, TransformSaturate, TransformDesaturate:
		if t.Factor < 0 || t.Factor > 1 {
			return fmt.Errorf("%w: %s factor %v outside [0, 1]", ErrInvalidTransform, t.Kind, t.Factor)
		}
	case TransformMath:
		if t.Op == MathDivide && t.Factor == 0 {
			return fmt.Errorf("%w: division by zero", ErrInvalidTransform)
		}
	default:
		return fmt.Errorf("%w: unknown transform kind %d", ErrInvalidTransform, int(t.Kind))
	}
	return nil
}
