/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package store provides keyed in-memory storage of themed token values.
package store

import (
	"fmt"
	"sort"

	"bennypowers.dev/gevanim/token"
)

// Store maps (path, theme) to a token value, plus path-keyed metadata.
// A (path, theme) pair maps to at most one value; Set replaces, never
// merges. The zero Store is not usable; call New.
type Store struct {
	// values[theme][dotted path] = value
	values map[token.Theme]map[string]token.Value
	meta   map[string]token.Metadata

	// generation increments on every mutation so the resolver can detect
	// staleness without the store knowing about caches.
	generation uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		values: make(map[token.Theme]map[string]token.Value),
		meta:   make(map[string]token.Metadata),
	}
}

// Generation returns a counter that increments on every mutation.
func (s *Store) Generation() uint64 {
	return s.generation
}

// Get returns the value for (path, theme). There is no Auto fallback here;
// fallback is resolution policy, not storage policy.
func (s *Store) Get(path token.Path, theme token.Theme) (token.Value, bool) {
	themed, ok := s.values[theme]
	if !ok {
		return nil, false
	}
	v, ok := themed[path.String()]
	return v, ok
}

// Has reports whether (path, theme) holds a value.
func (s *Store) Has(path token.Path, theme token.Theme) bool {
	_, ok := s.Get(path, theme)
	return ok
}

// Set stores value at (path, theme), replacing any existing entry.
func (s *Store) Set(path token.Path, theme token.Theme, value token.Value) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", token.ErrInvalidPath)
	}
	if value == nil {
		return fmt.Errorf("%w: nil value for %s", token.ErrInvalidValue, path)
	}
	themed, ok := s.values[theme]
	if !ok {
		themed = make(map[string]token.Value)
		s.values[theme] = themed
	}
	themed[path.String()] = value
	s.generation++
	return nil
}

// SetBatch stores every entry of mapping under theme. Entries are applied
// in path order; the first invalid entry aborts the remainder.
func (s *Store) SetBatch(mapping map[string]token.Value, theme token.Theme) error {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path, err := token.ParsePath(k)
		if err != nil {
			return err
		}
		if err := s.Set(path, theme, mapping[k]); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the entry at (path, theme), if any.
func (s *Store) Delete(path token.Path, theme token.Theme) {
	if themed, ok := s.values[theme]; ok {
		if _, present := themed[path.String()]; present {
			delete(themed, path.String())
			s.generation++
		}
	}
}

// ListPaths returns the sorted paths stored under theme.
func (s *Store) ListPaths(theme token.Theme) []token.Path {
	themed := s.values[theme]
	paths := make([]token.Path, 0, len(themed))
	for k := range themed {
		paths = append(paths, token.MustParsePath(k))
	}
	sortPaths(paths)
	return paths
}

// VisiblePaths returns the sorted paths resolvable under theme. For Auto
// this is the union of Auto and Light entries, mirroring the Auto→Light
// resolution fallback; for other themes it equals ListPaths.
func (s *Store) VisiblePaths(theme token.Theme) []token.Path {
	if theme != token.Auto {
		return s.ListPaths(theme)
	}
	seen := make(map[string]bool)
	for k := range s.values[token.Auto] {
		seen[k] = true
	}
	for k := range s.values[token.Light] {
		seen[k] = true
	}
	paths := make([]token.Path, 0, len(seen))
	for k := range seen {
		paths = append(paths, token.MustParsePath(k))
	}
	sortPaths(paths)
	return paths
}

// CopyTheme duplicates every entry of from into to, overwriting entries at
// the same path. Metadata is unaffected.
func (s *Store) CopyTheme(from, to token.Theme) {
	src := s.values[from]
	if len(src) == 0 {
		return
	}
	dst, ok := s.values[to]
	if !ok {
		dst = make(map[string]token.Value, len(src))
		s.values[to] = dst
	}
	for k, v := range src {
		dst[k] = v
	}
	s.generation++
}

// ClearTheme removes every entry under theme. Metadata is unaffected.
func (s *Store) ClearTheme(theme token.Theme) {
	if len(s.values[theme]) == 0 {
		return
	}
	delete(s.values, theme)
	s.generation++
}

// SupportedThemes returns the distinct themes present in storage, in
// Light/Dark/Auto order.
func (s *Store) SupportedThemes() []token.Theme {
	var themes []token.Theme
	for _, t := range token.Themes {
		if len(s.values[t]) > 0 {
			themes = append(themes, t)
		}
	}
	return themes
}

// Metadata returns the metadata recorded for path.
func (s *Store) Metadata(path token.Path) (token.Metadata, bool) {
	m, ok := s.meta[path.String()]
	return m, ok
}

// SetMetadata records metadata for path.
func (s *Store) SetMetadata(path token.Path, m token.Metadata) {
	s.meta[path.String()] = m
}

// Len returns the number of entries stored under theme.
func (s *Store) Len(theme token.Theme) int {
	return len(s.values[theme])
}

func sortPaths(paths []token.Path) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].String() < paths[j].String()
	})
}
