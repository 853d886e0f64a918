/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader reads token definition files (JSON with comments, or YAML)
// and seeds a store. Nested objects flatten into dotted paths; string
// values in {curly.brace} form become references, optionally with a
// |transform:factor suffix. The store itself stays in-memory; this is the
// thin I/O boundary.
package loader

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	gevfs "bennypowers.dev/gevanim/fs"
	"bennypowers.dev/gevanim/store"
	"bennypowers.dev/gevanim/token"
)

// themeKey is the reserved top-level key declaring a file's theme variant.
const themeKey = "$theme"

var (
	// refPattern matches {token.path} with an optional |transform:factor tail.
	refPattern = regexp.MustCompile(`^\{([^{}|]+)\}(?:\|([a-z]+):(-?[0-9.]+))?$`)

	// dimensionPattern matches a magnitude with a CSS unit.
	dimensionPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(px|rem|em|pt|%|vh|vw|ms|s)$`)
)

// LoadFile reads one token file into st under defaultTheme. A top-level
// "$theme" key in the file overrides the argument.
func LoadFile(filesystem gevfs.FileSystem, path string, st *store.Store, defaultTheme token.Theme) error {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := Load(data, st, defaultTheme); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load parses token data (JSONC or YAML) into st under defaultTheme.
func Load(data []byte, st *store.Store, defaultTheme token.Theme) error {
	raw, err := parse(data)
	if err != nil {
		return err
	}

	theme := defaultTheme
	if name, ok := raw[themeKey].(string); ok {
		t, err := token.ThemeFromString(name)
		if err != nil {
			return err
		}
		theme = t
	}

	return extract(raw, nil, "", theme, st)
}

// parse decodes JSONC or YAML into a string-keyed map.
func parse(data []byte) (map[string]any, error) {
	if isLikelyJSON(data) {
		var raw map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", token.ErrSerialization, err)
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("%w: %v", token.ErrSerialization, err)
	}
	raw, ok := normalizeMap(yamlRaw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root must be an object", token.ErrSerialization)
	}
	return raw, nil
}

// isLikelyJSON checks whether data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap converts YAML's map[any]any into string-keyed maps.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// extract walks the nested map depth-first, flattening keys into paths.
// A map holding a $value key is a token leaf; any other map is a group.
// Keys are visited sorted so load order is deterministic.
func extract(data map[string]any, path token.Path, inheritedType string, theme token.Theme, st *store.Store) error {
	currentType := inheritedType
	if groupType, ok := data["$type"].(string); ok {
		currentType = groupType
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		childPath := append(append(token.Path{}, path...), key)

		switch child := data[key].(type) {
		case map[string]any:
			if rawValue, ok := child["$value"]; ok {
				if err := setLeaf(childPath, rawValue, child, currentType, theme, st); err != nil {
					return err
				}
				continue
			}
			if err := extract(child, childPath, currentType, theme, st); err != nil {
				return err
			}
		default:
			if err := setLeaf(childPath, child, nil, currentType, theme, st); err != nil {
				return err
			}
		}
	}

	return nil
}

// setLeaf stores one token, with any metadata carried by its wrapper map.
func setLeaf(path token.Path, raw any, wrapper map[string]any, typeHint string, theme token.Theme, st *store.Store) error {
	value, err := InferValue(raw, typeHint)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := st.Set(path, theme, value); err != nil {
		return err
	}

	if wrapper != nil {
		meta := token.Metadata{}
		if d, ok := wrapper["$description"].(string); ok {
			meta.Description = d
		}
		if v, ok := wrapper["$version"].(string); ok {
			meta.Version = v
		}
		if dep, ok := wrapper["$deprecated"].(bool); ok {
			meta.Deprecated = dep
		}
		if msg, ok := wrapper["$deprecationMessage"].(string); ok {
			meta.DeprecationMessage = msg
		}
		if meta != (token.Metadata{}) {
			st.SetMetadata(path, meta)
		}
	}
	return nil
}

// InferValue converts a decoded JSON/YAML value into a token value.
// typeHint carries an inherited $type ("color", "dimension", ...).
func InferValue(raw any, typeHint string) (token.Value, error) {
	switch v := raw.(type) {
	case nil:
		return token.Null{}, nil
	case bool:
		return token.Boolean(v), nil
	case float64:
		return token.Number(v), nil
	case int:
		return token.Number(v), nil
	case string:
		return inferString(v, typeHint)
	case []any:
		arr := make(token.Array, 0, len(v))
		for _, item := range v {
			val, err := InferValue(item, typeHint)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case map[string]any:
		obj := make(token.Object, len(v))
		for k, item := range v {
			val, err := InferValue(item, typeHint)
			if err != nil {
				return nil, err
			}
			obj[k] = val
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", token.ErrInvalidValue, raw)
	}
}

// inferString classifies a string value: reference, dimension, color, or
// plain string.
func inferString(s, typeHint string) (token.Value, error) {
	if m := refPattern.FindStringSubmatch(s); m != nil {
		target, err := token.ParsePath(m[1])
		if err != nil {
			return nil, err
		}
		if m[2] == "" {
			return token.Reference{Target: target}, nil
		}
		transform, err := parseTransform(m[2], m[3])
		if err != nil {
			return nil, err
		}
		return token.TokenReference{Target: target, Transform: transform}, nil
	}

	if m := dimensionPattern.FindStringSubmatch(s); m != nil {
		magnitude, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", token.ErrInvalidValue, s)
		}
		return token.Dimension{Value: magnitude, Unit: m[2]}, nil
	}

	if typeHint == "color" || looksLikeColor(s) {
		return token.Color(s), nil
	}

	return token.String(s), nil
}

// looksLikeColor recognizes the color literal syntaxes the engine emits.
func looksLikeColor(s string) bool {
	return strings.HasPrefix(s, "#") ||
		strings.HasPrefix(s, "rgb(") ||
		strings.HasPrefix(s, "rgba(") ||
		strings.HasPrefix(s, "hsl(") ||
		strings.HasPrefix(s, "hsla(")
}

// parseTransform builds a transform from its suffix form, e.g. alpha:0.5.
func parseTransform(name, factorStr string) (*token.Transform, error) {
	factor, err := strconv.ParseFloat(factorStr, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad factor %q", token.ErrInvalidTransform, factorStr)
	}

	var t *token.Transform
	switch name {
	case "alpha":
		t = token.Alpha(factor)
	case "lighten":
		t = token.Lighten(factor)
	case "darken":
		t = token.Darken(factor)
	case "saturate":
		t = token.Saturate(factor)
	case "desaturate":
		t = token.Desaturate(factor)
	case "add":
		t = token.Math(token.MathAdd, factor)
	case "subtract":
		t = token.Math(token.MathSubtract, factor)
	case "multiply":
		t = token.Math(token.MathMultiply, factor)
	case "divide":
		t = token.Math(token.MathDivide, factor)
	default:
		return nil, fmt.Errorf("%w: unknown transform %q", token.ErrInvalidTransform, name)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
