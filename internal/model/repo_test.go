// internal/model/repo_test.go
package model

import (
	"path/filepath"
	"testing"
)

func TestRepository_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		repo     Repository
		expected string
	}{
		{
			name:     "uses Name if set",
			repo:     Repository{Name: "my-project", Path: "/home/user/code/my-project"},
			expected: "my-project",
		},
		{
			name:     "derives from path if Name empty",
			repo:     Repository{Path: "/home/user/code/my-project"},
			expected: "my-project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.repo.DisplayName()
			if got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestVCS_StringAndMarker(t *testing.T) {
	tests := []struct {
		vcs        VCS
		wantName   string
		wantMarker string
	}{
		{VCSGit, "git", ".git"},
		{VCSHg, "hg", ".hg"},
		{VCSSvn, "svn", ".svn"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if got := tt.vcs.String(); got != tt.wantName {
				t.Errorf("String() = %q, want %q", got, tt.wantName)
			}
			if got := tt.vcs.Marker(); got != tt.wantMarker {
				t.Errorf("Marker() = %q, want %q", got, tt.wantMarker)
			}
		})
	}
}

func TestRepository_MetadataDir(t *testing.T) {
	repo := Repository{Path: "/src/proj", VCS: VCSHg}
	want := filepath.Join("/src/proj", ".hg")
	if got := repo.MetadataDir(); got != want {
		t.Errorf("MetadataDir() = %q, want %q", got, want)
	}
}

func TestNewDiffCounts(t *testing.T) {
	if NewDiffCounts(DiffCounts{}) != nil {
		t.Error("all-zero DiffCounts should be nil")
	}
	if d := NewDiffCounts(DiffCounts{Copied: 1}); d == nil || d.Copied != 1 {
		t.Errorf("NewDiffCounts(Copied: 1) = %+v", d)
	}
	if NewHgDiff(HgDiff{}) != nil {
		t.Error("all-zero HgDiff should be nil")
	}
	if NewSvnDiff(SvnDiff{}) != nil {
		t.Error("all-zero SvnDiff should be nil")
	}
	if NewSvnDiff(SvnDiff{Obstructed: 2}) == nil {
		t.Error("non-zero SvnDiff should not be nil")
	}
}
