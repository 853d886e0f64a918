/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/gevanim/token"
)

// alphaOpaque is the threshold above which alpha is omitted from output.
const alphaOpaque = 0.999

// Apply applies a transform to a fully resolved value. Color transforms
// require a color value; Math requires a number or dimension. Anything else
// is a type mismatch.
func Apply(t *token.Transform, v token.Value) (token.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if t.Kind == token.TransformMath {
		return applyMath(t, v)
	}
	return applyColor(t, v)
}

func applyColor(t *token.Transform, v token.Value) (token.Value, error) {
	c, ok := v.(token.Color)
	if !ok {
		return nil, &token.TypeMismatchError{Expected: "color", Actual: v.Kind().String()}
	}

	parsed, err := csscolorparser.Parse(string(c))
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable color %q: %v", token.ErrInvalidValue, c, err)
	}

	r, g, b, a := parsed.R, parsed.G, parsed.B, parsed.A

	switch t.Kind {
	case token.TransformAlpha:
		a = t.Factor

	default:
		hsl := colorful.Color{R: r, G: g, B: b}
		h, s, l := hsl.Hsl()
		switch t.Kind {
		case token.TransformLighten:
			l = clamp01(l + t.Factor)
		case token.TransformDarken:
			l = clamp01(l - t.Factor)
		case token.TransformSaturate:
			s = clamp01(s + t.Factor)
		case token.TransformDesaturate:
			s = clamp01(s - t.Factor)
		}
		out := colorful.Hsl(h, s, l).Clamped()
		r, g, b = out.R, out.G, out.B
	}

	return token.Color(formatColor(r, g, b, a)), nil
}

func applyMath(t *token.Transform, v token.Value) (token.Value, error) {
	switch val := v.(type) {
	case token.Number:
		return token.Number(mathOp(t.Op, float64(val), t.Factor)), nil
	case token.Dimension:
		return token.Dimension{
			Value: mathOp(t.Op, val.Value, t.Factor),
			Unit:  val.Unit,
		}, nil
	default:
		return nil, &token.TypeMismatchError{Expected: "number or dimension", Actual: v.Kind().String()}
	}
}

func mathOp(op token.MathOp, magnitude, factor float64) float64 {
	switch op {
	case token.MathAdd:
		return magnitude + factor
	case token.MathSubtract:
		return magnitude - factor
	case token.MathMultiply:
		return magnitude * factor
	case token.MathDivide:
		return magnitude / factor
	default:
		return magnitude
	}
}

// formatColor renders rgb components as lowercase hex, or rgba() when the
// alpha channel is meaningful.
func formatColor(r, g, b, a float64) string {
	if a >= alphaOpaque {
		return colorful.Color{R: r, G: g, B: b}.Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		channel255(r), channel255(g), channel255(b), trimFloat(a))
}

func channel255(c float64) int {
	return int(math.Round(clamp01(c) * 255))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// trimFloat renders a float without trailing zeros, e.g. 0.5 not 0.50.
func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
