/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver walks token references to concrete values for a theme,
// applying transforms, detecting cycles, and memoizing results.
package resolver

import (
	"bennypowers.dev/gevanim/store"
	"bennypowers.dev/gevanim/token"
)

// Resolver resolves token paths against a store for a given theme. It owns
// a full-map cache keyed by (path, theme); the cache drops wholesale on any
// store mutation or an explicit Invalidate, never partially, since reference
// fan-in is unbounded.
type Resolver struct {
	store *store.Store
	cache map[cacheKey]token.Value

	// generation mirrors the store's mutation counter at last cache fill.
	generation uint64
}

type cacheKey struct {
	path  string
	theme token.Theme
}

// New creates a resolver bound to st.
func New(st *store.Store) *Resolver {
	return &Resolver{
		store: st,
		cache: make(map[cacheKey]token.Value),
	}
}

// Store returns the bound store.
func (r *Resolver) Store() *store.Store {
	return r.store
}

// Invalidate drops the whole cache. The owning system calls this on theme
// switches; store mutations are caught via the generation counter.
func (r *Resolver) Invalidate() {
	r.cache = make(map[cacheKey]token.Value)
	r.generation = r.store.Generation()
}

// Resolve returns the concrete value for (path, theme), following chained
// references and applying per-reference transforms. Auto falls back to
// Light per path when no Auto entry exists.
func (r *Resolver) Resolve(path token.Path, theme token.Theme) (token.Value, error) {
	if r.generation != r.store.Generation() {
		r.Invalidate()
	}

	key := cacheKey{path: path.String(), theme: theme}
	if v, ok := r.cache[key]; ok {
		return v, nil
	}

	visited := make(map[string]bool)
	v, err := r.resolve(path, theme, visited, nil)
	if err != nil {
		return nil, err
	}

	r.cache[key] = v
	return v, nil
}

// resolve is the recursive walk. visited tracks the current chain only;
// chain carries the paths seen so far for cycle diagnostics.
func (r *Resolver) resolve(path token.Path, theme token.Theme, visited map[string]bool, chain []token.Path) (token.Value, error) {
	if visited[path.String()] {
		return nil, &token.CircularReferenceError{Chain: append(chain, path)}
	}
	visited[path.String()] = true
	chain = append(chain, path)

	value, ok := r.lookup(path, theme)
	if !ok {
		return nil, &token.NotFoundError{Path: path}
	}

	target, transform, isRef := token.ReferenceTarget(value)
	if !isRef {
		return value, nil
	}

	resolved, err := r.resolve(target, theme, visited, chain)
	if err != nil {
		return nil, err
	}

	if transform != nil {
		return Apply(transform, resolved)
	}
	return resolved, nil
}

// lookup reads (path, theme) with the Auto→Light fallback.
func (r *Resolver) lookup(path token.Path, theme token.Theme) (token.Value, bool) {
	if v, ok := r.store.Get(path, theme); ok {
		return v, true
	}
	if theme == token.Auto {
		return r.store.Get(path, token.Light)
	}
	return nil, false
}
