// internal/model/repo.go
package model

import (
	"path/filepath"
)

// VCS identifies a supported version control backend.
type VCS int

const (
	VCSGit VCS = iota
	VCSHg
	VCSSvn
)

func (v VCS) String() string {
	switch v {
	case VCSGit:
		return "git"
	case VCSHg:
		return "hg"
	case VCSSvn:
		return "svn"
	}
	return "unknown"
}

// Marker returns the metadata directory name that identifies the backend.
func (v VCS) Marker() string {
	return "." + v.String()
}

// Backends lists the supported backends in detection order.
var Backends = []VCS{VCSGit, VCSHg, VCSSvn}

type Repository struct {
	Path string // Working copy root (the directory holding the marker)
	Name string // Display name (derived from path if empty)
	VCS  VCS
}

func (r *Repository) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return filepath.Base(r.Path)
}

// MetadataDir is the path of the backend's metadata directory (or file, for git worktrees).
func (r *Repository) MetadataDir() string {
	return filepath.Join(r.Path, r.VCS.Marker())
}
