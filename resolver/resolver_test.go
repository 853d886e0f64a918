/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"reflect"
	"testing"

	"bennypowers.dev/gevanim/resolver"
	"bennypowers.dev/gevanim/store"
	"bennypowers.dev/gevanim/token"
)

func newFixture(t *testing.T) (*store.Store, *resolver.Resolver) {
	t.Helper()
	st := store.New()
	return st, resolver.New(st)
}

func set(t *testing.T, st *store.Store, path string, theme token.Theme, v token.Value) {
	t.Helper()
	if err := st.Set(token.MustParsePath(path), theme, v); err != nil {
		t.Fatalf("Set(%s) error = %v", path, err)
	}
}

func TestResolve_PlainValue(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "color.primary.500", token.Light, token.Color("#1890ff"))

	got, err := r.Resolve(token.MustParsePath("color.primary.500"), token.Light)
	if err != nil {
		t.Fatal(err)
	}
	if got != token.Color("#1890ff") {
		t.Errorf("Resolve = %v", got)
	}
}

func TestResolve_ReferenceTransparency(t *testing.T) {
	st, r := newFixture(t)
	want := token.Color("#1890ff")
	set(t, st, "global.y", token.Light, want)
	set(t, st, "alias.x", token.Light, token.Reference{Target: token.MustParsePath("global.y")})

	got, err := r.Resolve(token.MustParsePath("alias.x"), token.Light)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(alias.x) = %v, want %v", got, want)
	}
}

func TestResolve_ChainedReferences(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "color_palette.primary.500", token.Light, token.Color("#1890ff"))
	set(t, st, "semantic_colors.brand.base", token.Light,
		token.Reference{Target: token.MustParsePath("color_palette.primary.500")})
	set(t, st, "component.button.background", token.Light,
		token.Reference{Target: token.MustParsePath("semantic_colors.brand.base")})

	got, err := r.Resolve(token.MustParsePath("component.button.background"), token.Light)
	if err != nil {
		t.Fatal(err)
	}
	if got != token.Color("#1890ff") {
		t.Errorf("chained resolve = %v", got)
	}
}

func TestResolve_NotFound(t *testing.T) {
	_, r := newFixture(t)

	_, err := r.Resolve(token.MustParsePath("missing.token"), token.Light)
	if !errors.Is(err, token.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolve_DanglingReference(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "alias.x", token.Light, token.Reference{Target: token.MustParsePath("global.gone")})

	_, err := r.Resolve(token.MustParsePath("alias.x"), token.Light)
	if !errors.Is(err, token.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolve_DirectCycle(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "a", token.Light, token.Reference{Target: token.MustParsePath("b")})
	set(t, st, "b", token.Light, token.Reference{Target: token.MustParsePath("a")})

	_, err := r.Resolve(token.MustParsePath("a"), token.Light)
	if !errors.Is(err, token.ErrCircularReference) {
		t.Fatalf("error = %v, want ErrCircularReference", err)
	}

	var cycleErr *token.CircularReferenceError
	if !errors.As(err, &cycleErr) {
		t.Fatal("error should carry the reference chain")
	}
	if len(cycleErr.Chain) < 3 {
		t.Errorf("chain = %v, want full a -> b -> a chain", cycleErr.Chain)
	}
}

func TestResolve_SelfReference(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "a", token.Light, token.Reference{Target: token.MustParsePath("a")})

	_, err := r.Resolve(token.MustParsePath("a"), token.Light)
	if !errors.Is(err, token.ErrCircularReference) {
		t.Errorf("error = %v, want ErrCircularReference", err)
	}
}

func TestResolve_AutoFallsBackToLight(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "color.primary", token.Light, token.Color("#1890ff"))

	got, err := r.Resolve(token.MustParsePath("color.primary"), token.Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != token.Color("#1890ff") {
		t.Errorf("Auto fallback = %v", got)
	}
}

func TestResolve_AutoPrefersExplicitAutoEntry(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "color.primary", token.Light, token.Color("#1890ff"))
	set(t, st, "color.primary", token.Auto, token.Color("#111111"))

	got, err := r.Resolve(token.MustParsePath("color.primary"), token.Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != token.Color("#111111") {
		t.Errorf("Auto = %v, want explicit Auto entry", got)
	}
}

func TestResolve_DarkNeverFallsBackToLight(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "color.primary", token.Light, token.Color("#1890ff"))

	_, err := r.Resolve(token.MustParsePath("color.primary"), token.Dark)
	if !errors.Is(err, token.ErrNotFound) {
		t.Errorf("Dark resolution error = %v, want ErrNotFound", err)
	}
}

func TestResolve_ThemeIsolation(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "color.primary", token.Light, token.Color("#1890ff"))
	set(t, st, "color.primary", token.Dark, token.Color("#177ddc"))

	light, err := r.Resolve(token.MustParsePath("color.primary"), token.Light)
	if err != nil {
		t.Fatal(err)
	}
	dark, err := r.Resolve(token.MustParsePath("color.primary"), token.Dark)
	if err != nil {
		t.Fatal(err)
	}
	if light == dark {
		t.Error("theme values must not bleed across variants")
	}

	// Copying Light over Dark makes Dark track Light until overwritten.
	st.CopyTheme(token.Light, token.Dark)
	dark, err = r.Resolve(token.MustParsePath("color.primary"), token.Dark)
	if err != nil {
		t.Fatal(err)
	}
	if dark != token.Color("#1890ff") {
		t.Errorf("Dark after CopyTheme = %v", dark)
	}
}

func TestResolve_CacheInvalidatedOnMutation(t *testing.T) {
	st, r := newFixture(t)
	path := token.MustParsePath("color.primary")
	set(t, st, "color.primary", token.Light, token.Color("#1890ff"))

	if _, err := r.Resolve(path, token.Light); err != nil {
		t.Fatal(err)
	}

	set(t, st, "color.primary", token.Light, token.Color("#40a9ff"))

	got, err := r.Resolve(path, token.Light)
	if err != nil {
		t.Fatal(err)
	}
	if got != token.Color("#40a9ff") {
		t.Errorf("stale cache after mutation: %v", got)
	}
}

func TestResolve_CacheServesRepeatedReads(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "global.y", token.Light, token.Color("#1890ff"))
	set(t, st, "alias.x", token.Light, token.Reference{Target: token.MustParsePath("global.y")})

	first, err := r.Resolve(token.MustParsePath("alias.x"), token.Light)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resolve(token.MustParsePath("alias.x"), token.Light)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached read differs: %v vs %v", first, second)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "ok", token.Light, token.Color("#ffffff"))
	set(t, st, "dangling", token.Light, token.Reference{Target: token.MustParsePath("gone")})
	set(t, st, "cycle.a", token.Light, token.Reference{Target: token.MustParsePath("cycle.b")})
	set(t, st, "cycle.b", token.Light, token.Reference{Target: token.MustParsePath("cycle.a")})
	set(t, st, "badmath", token.Light, token.TokenReference{
		Target:    token.MustParsePath("ok"),
		Transform: token.Math(token.MathAdd, 1),
	})

	errs := r.Validate()
	if len(errs) != 4 {
		t.Fatalf("Validate returned %d errors, want 4: %v", len(errs), errs)
	}

	kinds := map[error]int{}
	for _, e := range errs {
		for _, sentinel := range []error{token.ErrNotFound, token.ErrCircularReference, token.ErrTypeMismatch} {
			if errors.Is(e, sentinel) {
				kinds[sentinel]++
			}
		}
	}
	if kinds[token.ErrNotFound] != 1 || kinds[token.ErrCircularReference] != 2 || kinds[token.ErrTypeMismatch] != 1 {
		t.Errorf("error kinds = %v", kinds)
	}
}

func TestValidate_CleanGraph(t *testing.T) {
	st, r := newFixture(t)
	set(t, st, "global.y", token.Light, token.Color("#1890ff"))
	set(t, st, "alias.x", token.Light, token.Reference{Target: token.MustParsePath("global.y")})

	if errs := r.Validate(); errs != nil {
		t.Errorf("Validate = %v, want nil", errs)
	}
}
