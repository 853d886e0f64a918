/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for testing.
package mapfs

import (
	"io/fs"
	"strings"
	"testing/fstest"
	"time"
)

// MapFileSystem implements the gevanim fs.FileSystem interface over an
// in-memory fstest.MapFS. Paths are stored slash-separated without a
// leading slash; absolute paths are accepted and normalized.
type MapFileSystem struct {
	mapFS   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file with the given content.
func (m *MapFileSystem) AddFile(name, content string) {
	m.mapFS[clean(name)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    0o644,
		ModTime: m.modTime,
	}
}

// Open opens the named file for reading.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	return m.mapFS.Open(clean(name))
}

// ReadFile reads the entire contents of a file.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	return m.mapFS.ReadFile(clean(name))
}

// WriteFile writes data to the in-memory filesystem.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mapFS[clean(name)] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: m.modTime,
	}
	return nil
}

// Exists returns true if the path exists.
func (m *MapFileSystem) Exists(path string) bool {
	_, err := fs.Stat(m.mapFS, clean(path))
	return err == nil
}

// clean normalizes an absolute or relative path to MapFS form.
func clean(name string) string {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}
