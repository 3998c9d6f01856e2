// internal/status/git.go
package status

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jackchuka/vcsinfo/internal/config"
	"github.com/jackchuka/vcsinfo/internal/model"
	"github.com/jackchuka/vcsinfo/internal/scanner"
)

var headRefRe = regexp.MustCompile(`ref: (?P<ref>.+)`)

// readGit returns nil without error when git reports no status at all.
func (r *Reader) readGit(ctx context.Context, repo model.Repository, dir string) (*model.GitStatus, error) {
	lines, err := r.lines(ctx, dir, "git", "-c", "color.status=false", "status", "--short", "--branch")
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	status := &model.GitStatus{}
	parseBranchHeader(lines[0], status)

	if status.Branch == "" {
		branch, err := r.gitBranch(ctx, dir, scanner.GitDir(repo))
		if err != nil {
			return nil, fmt.Errorf("resolve branch: %w", err)
		}
		status.Branch = branch
	}

	index, working, untracked := tallyChanges(lines[1:])
	status.Index = model.NewDiffCounts(index)
	status.Working = model.NewDiffCounts(working)
	status.Untracked = untracked

	stashes, err := r.gitStashCount(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("count stashes: %w", err)
	}
	status.Stashes = stashes

	return status, nil
}

// gitBranch names HEAD when the status header did not, marking any operation
// in progress with a suffix such as "|REBASE-i" or "|MERGING".
func (r *Reader) gitBranch(ctx context.Context, dir, gitDir string) (string, error) {
	var prefix, branch, suffix string
	var err error

	switch {
	case exists(gitDir, "rebase-merge", "interactive"):
		suffix = "|REBASE-i"
		branch, err = readContent(filepath.Join(gitDir, "rebase-merge", "head-name"))
		if err != nil {
			return "", err
		}

	case exists(gitDir, "rebase-merge"):
		suffix = "|REBASE-m"
		branch, err = readContent(filepath.Join(gitDir, "rebase-merge", "head-name"))
		if err != nil {
			return "", err
		}

	default:
		suffix = operationSuffix(gitDir)

		refs, err := r.lines(ctx, dir, "git", "symbolic-ref", "HEAD", "-q")
		if err != nil {
			return "", err
		}
		if len(refs) > 0 {
			branch = refs[0]
		} else {
			name, err := r.gitTagOrHash(ctx, dir, gitDir)
			if err != nil {
				return "", err
			}
			branch = "(" + name + ")"
		}
	}

	inside, err := r.firstLine(ctx, dir, "git", "rev-parse", "--is-inside-git-dir")
	if err != nil {
		return "", err
	}
	if inside == "true" {
		bare, err := r.firstLine(ctx, dir, "git", "rev-parse", "--is-bare-repository")
		if err != nil {
			return "", err
		}
		if bare == "true" {
			prefix = "BARE:"
		} else {
			branch = "GIT_DIR!"
		}
	}

	return prefix + strings.ReplaceAll(branch, "refs/heads/", "") + suffix, nil
}

// operationSuffix reports an apply, merge, cherry-pick or bisect in progress.
// The first matching state wins.
func operationSuffix(gitDir string) string {
	if exists(gitDir, "rebase-apply") {
		switch {
		case exists(gitDir, "rebase-apply", "rebasing"):
			return "|REBASE"
		case exists(gitDir, "rebase-apply", "applying"):
			return "|AM"
		}
		return "|AM/REBASE"
	}

	checks := []struct {
		name   string
		suffix string
	}{
		{"MERGE_HEAD", "|MERGING"},
		{"CHERRY_PICK_HEAD", "|CHERRY-PICKING"},
		{"BISECT_LOG", "|BISECTING"},
	}
	for _, c := range checks {
		if exists(gitDir, c.name) {
			return c.suffix
		}
	}
	return ""
}

func describeArgs(style config.DescribeStyle) []string {
	switch style {
	case config.DescribeContains:
		return []string{"describe", "--contains", "HEAD"}
	case config.DescribeBranch:
		return []string{"describe", "--contains", "--all", "HEAD"}
	case config.DescribeDescribe:
		return []string{"describe", "HEAD"}
	}
	return []string{"tag", "--points-at", "HEAD"}
}

// gitTagOrHash names a detached HEAD by tag or describe output, falling back
// to the HEAD file or `git rev-parse HEAD`.
func (r *Reader) gitTagOrHash(ctx context.Context, dir, gitDir string) (string, error) {
	described, err := r.lines(ctx, dir, "git", describeArgs(r.describe)...)
	if err != nil {
		return "", err
	}
	if len(described) > 0 {
		return described[0], nil
	}

	var ref string
	if exists(gitDir, "HEAD") {
		ref, err = readContent(filepath.Join(gitDir, "HEAD"))
		if err != nil {
			return "", err
		}
	} else {
		lines, err := r.lines(ctx, dir, "git", "rev-parse", "HEAD")
		if err != nil {
			return "", err
		}
		if len(lines) > 0 {
			ref = lines[0]
		}
	}

	if m := headRefRe.FindStringSubmatch(ref); m != nil {
		return m[headRefRe.SubexpIndex("ref")], nil
	}
	if len(ref) >= 7 {
		return ref[7:] + "...", nil
	}
	return "unknown", nil
}

func (r *Reader) gitStashCount(ctx context.Context, dir string) (uint, error) {
	res, err := r.run(ctx, dir, "git", "rev-parse", "--verify", "--quiet", "refs/stash")
	if err != nil || !res.Success() {
		return 0, nil
	}

	args := []string{"log", "--format=%gd: %gs", "-g", "--first-parent", "-m", "refs/stash", "--"}
	res, err = r.run(ctx, dir, "git", args...)
	if err != nil {
		return 0, err
	}
	if strings.Contains(res.Stderr, "fatal") {
		return 0, newParseError("git", args, strings.TrimSpace(res.Stderr))
	}
	return uint(len(res.Lines())), nil
}

func exists(base string, elem ...string) bool {
	_, err := os.Stat(filepath.Join(append([]string{base}, elem...)...))
	return err == nil
}

func readContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
