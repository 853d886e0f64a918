/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package system composes the store, resolver, and CSS generator behind one
// caller-owned facade that also holds the active theme. There is no process
// global; construct an instance and pass it where it is needed. A single
// mutex serializes mutation and resolution so cache invalidation is never
// observed mid-resolve.
package system

import (
	"strings"
	"sync"

	"bennypowers.dev/gevanim/config"
	"bennypowers.dev/gevanim/cssgen"
	gevfs "bennypowers.dev/gevanim/fs"
	"bennypowers.dev/gevanim/loader"
	"bennypowers.dev/gevanim/resolver"
	"bennypowers.dev/gevanim/store"
	"bennypowers.dev/gevanim/token"
)

// DesignTokenSystem is the engine facade.
type DesignTokenSystem struct {
	mu          sync.Mutex
	cfg         *config.Config
	store       *store.Store
	resolver    *resolver.Resolver
	generator   *cssgen.Generator
	activeTheme token.Theme
}

// New creates a system with an empty store.
func New(cfg *config.Config) *DesignTokenSystem {
	if cfg == nil {
		cfg = config.Default()
	}
	st := store.New()
	r := resolver.New(st)
	g := cssgen.New(st, r, cssgen.Options{
		Prefix:   cfg.Prefix,
		Minify:   cfg.Minify,
		DarkMode: cfg.DarkMode,
	})
	return &DesignTokenSystem{
		cfg:         cfg,
		store:       st,
		resolver:    r,
		generator:   g,
		activeTheme: cfg.ActiveTheme(),
	}
}

// ActiveTheme returns the currently active theme variant.
func (s *DesignTokenSystem) ActiveTheme() token.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTheme
}

// SwitchTheme sets the active theme and drops the resolver cache in the
// same critical section, so no resolution straddles the switch.
func (s *DesignTokenSystem) SwitchTheme(theme token.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTheme = theme
	s.resolver.Invalidate()
}

// GetToken resolves path under the active theme.
func (s *DesignTokenSystem) GetToken(path token.Path) (token.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Resolve(path, s.activeTheme)
}

// RawToken returns the stored (unresolved) value for path under the active
// theme.
func (s *DesignTokenSystem) RawToken(path token.Path) (token.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(path, s.activeTheme)
}

// SetToken stores value at path under the active theme.
func (s *DesignTokenSystem) SetToken(path token.Path, value token.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Set(path, s.activeTheme, value)
}

// SetTokenForTheme stores value at path under an explicit theme.
func (s *DesignTokenSystem) SetTokenForTheme(path token.Path, theme token.Theme, value token.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Set(path, theme, value)
}

// SetBatch stores every entry of mapping under the active theme.
func (s *DesignTokenSystem) SetBatch(mapping map[string]token.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetBatch(mapping, s.activeTheme)
}

// ListTokens returns the sorted token paths visible under the active theme.
// Read-only collaborators (completion, hot reload) consume this and
// CSSVarName; they never mutate the store.
func (s *DesignTokenSystem) ListTokens() []token.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.VisiblePaths(s.activeTheme)
}

// SearchTokens returns the visible paths whose dotted form contains substr.
func (s *DesignTokenSystem) SearchTokens(substr string) []token.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []token.Path
	for _, p := range s.store.VisiblePaths(s.activeTheme) {
		if strings.Contains(p.String(), substr) {
			matches = append(matches, p)
		}
	}
	return matches
}

// CSSVarName returns the CSS custom property name for path.
func (s *DesignTokenSystem) CSSVarName(path token.Path) string {
	return s.generator.VariableName(path)
}

// Metadata returns the metadata recorded for path.
func (s *DesignTokenSystem) Metadata(path token.Path) (token.Metadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Metadata(path)
}

// CreateThemeVariant copies base into name, then applies overrides to name.
// The previously active theme is untouched.
func (s *DesignTokenSystem) CreateThemeVariant(base, name token.Theme, overrides map[string]token.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.CopyTheme(base, name)
	return s.store.SetBatch(overrides, name)
}

// LoadFiles seeds the store from token definition files under the active
// theme (each file may declare its own theme).
func (s *DesignTokenSystem) LoadFiles(filesystem gevfs.FileSystem, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		if err := loader.LoadFile(filesystem, p, s.store, s.activeTheme); err != nil {
			return err
		}
	}
	return nil
}

// ExportCSSVariables renders the custom-property stylesheet for the active
// theme, including the dark-mode override block when enabled. Output is
// byte-identical across calls with no intervening mutation.
func (s *DesignTokenSystem) ExportCSSVariables() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.ExportVariables(s.activeTheme)
}

// GenerateThemeCSS renders the full theme stylesheet for the active theme.
func (s *DesignTokenSystem) GenerateThemeCSS() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.GenerateThemeCSS(s.activeTheme)
}

// GenerateComponentCSS renders class rules for one component under the
// active theme.
func (s *DesignTokenSystem) GenerateComponentCSS(component string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.GenerateComponentClasses(component, s.activeTheme)
}

// GenerateUtilityCSS renders utility classes under the active theme.
func (s *DesignTokenSystem) GenerateUtilityCSS() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.GenerateUtilityClasses(s.activeTheme)
}

// ValidateTokens resolves every known path under every stored theme,
// collecting all failures.
func (s *DesignTokenSystem) ValidateTokens() []resolver.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Validate()
}

// Store exposes the underlying store for construction-time seeding.
func (s *DesignTokenSystem) Store() *store.Store {
	return s.store
}
