/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

// swap replaces the build-time variables for a test and restores them after.
func swap(t *testing.T, version, tag, commit, dirty string) {
	t.Helper()
	origVersion, origTag, origCommit, origDirty := Version, GitTag, GitCommit, GitDirty
	Version, GitTag, GitCommit, GitDirty = version, tag, commit, dirty
	t.Cleanup(func() {
		Version, GitTag, GitCommit, GitDirty = origVersion, origTag, origCommit, origDirty
	})
}

func TestGet_LdflagsVersionWins(t *testing.T) {
	swap(t, "v1.2.3", "unknown", "unknown", "")
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want %q", got, "v1.2.3")
	}
}

func TestGet_ComposesTagAndCommit(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		commit string
		dirty  string
		want   string
	}{
		{"tag with commit", "v1.0.0", "abcdef1234567890", "", "v1.0.0-abcdef1"},
		{"tag already carries commit", "v1.0.0-abcdef1", "abcdef1234567890", "", "v1.0.0-abcdef1"},
		{"dirty tree", "v1.0.0", "abcdef1234567890", "dirty", "v1.0.0-abcdef1-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swap(t, "dev", tt.tag, tt.commit, tt.dirty)
			if got := Get(); got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFull_IncludesCommit(t *testing.T) {
	swap(t, "v1.2.3", "unknown", "abcdef1234567890", "")
	want := "v1.2.3 (commit: abcdef1234567890)"
	if got := Full(); got != want {
		t.Errorf("Full() = %q, want %q", got, want)
	}
}

func TestFull_WithoutCommitMatchesGet(t *testing.T) {
	swap(t, "v1.2.3", "unknown", "unknown", "")
	if got := Full(); got != Get() {
		t.Errorf("Full() = %q, want %q", got, Get())
	}
}
