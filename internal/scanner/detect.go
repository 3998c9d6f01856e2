// internal/scanner/detect.go
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jackchuka/vcsinfo/internal/model"
)

// metadataDirs are the names treated as VCS-internal when walking directory trees.
var metadataDirs = []string{".git", ".svn", ".hg", "_darcs"}

// Detect walks upward from dir and returns the first working copy found.
// Within one directory the markers are checked in model.Backends order.
func Detect(dir string) (model.Repository, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		current = filepath.Clean(dir)
	}

	for {
		if vcs, ok := detectAt(current); ok {
			return model.Repository{Path: current, VCS: vcs}, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return model.Repository{}, false
		}
		current = parent
	}
}

func detectAt(path string) (model.VCS, bool) {
	for _, vcs := range model.Backends {
		// A .git file marks a linked worktree or submodule
		if _, err := os.Stat(filepath.Join(path, vcs.Marker())); err == nil {
			return vcs, true
		}
	}
	return 0, false
}

// IsVCSMetadataSubdir reports whether path sits directly in a working copy root
// that carries a metadata directory.
func IsVCSMetadataSubdir(path string) bool {
	for _, name := range metadataDirs {
		if _, err := os.Stat(filepath.Join(path, "..", name)); err == nil {
			return true
		}
	}
	return false
}

func isMetadataDir(name string) bool {
	for _, m := range metadataDirs {
		if name == m {
			return true
		}
	}
	return false
}

// GitDir resolves the metadata directory of a git working copy, following the
// "gitdir: <path>" indirection used by worktrees and submodules.
func GitDir(repo model.Repository) string {
	gitDir := repo.MetadataDir()

	info, err := os.Stat(gitDir)
	if err != nil || info.IsDir() {
		return gitDir
	}

	content, err := os.ReadFile(gitDir)
	if err != nil {
		return gitDir
	}
	line := strings.TrimSpace(string(content))
	if !strings.HasPrefix(line, "gitdir:") {
		return gitDir
	}

	target := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if !filepath.IsAbs(target) {
		target = filepath.Join(repo.Path, target)
	}
	return target
}

// discoverWorktrees finds linked worktrees registered in .git/worktrees/.
// Each entry contains a "gitdir" file pointing to the worktree's .git file.
func discoverWorktrees(repoPath string) []model.Repository {
	wtDir := filepath.Join(repoPath, ".git", "worktrees")
	entries, err := os.ReadDir(wtDir)
	if err != nil {
		return nil
	}

	var repos []model.Repository
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(wtDir, e.Name(), "gitdir"))
		if err != nil {
			continue
		}
		wtPath := filepath.Dir(strings.TrimSpace(string(content)))
		if info, err := os.Stat(wtPath); err != nil || !info.IsDir() {
			continue
		}
		repos = append(repos, model.Repository{Path: wtPath, VCS: model.VCSGit})
	}
	return repos
}
