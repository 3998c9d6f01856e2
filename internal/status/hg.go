// internal/status/hg.go
package status

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackchuka/vcsinfo/internal/model"
)

var (
	hgParentRe    = regexp.MustCompile(`parent: (\S*) ?(.*)`)
	hgBranchRe    = regexp.MustCompile(`branch: ([\S ]*)`)
	hgUpdateRe    = regexp.MustCompile(`update: (\d+)`)
	hgPMergeRe    = regexp.MustCompile(`pmerge: (\d+) pending`)
	hgCommitRe    = regexp.MustCompile(`commit: (.*)`)
	hgChangeRe    = regexp.MustCompile(`(\d+) (modified|added|removed|deleted|unknown|renamed)`)
	hgTagRe       = regexp.MustCompile(`tag:\s*(.*)`)
	hgChangesetRe = regexp.MustCompile(`changeset:\s*(\S*)`)
)

const hgEmptyRepository = "(empty repository)"

func (r *Reader) readHg(ctx context.Context, dir string) (*model.HgStatus, error) {
	status := &model.HgStatus{}

	var err error
	switch r.hgMode {
	case HgHeads:
		err = r.hgHeads(ctx, dir, status)
	default:
		err = r.hgSummary(ctx, dir, status)
	}
	if err != nil {
		return nil, err
	}

	active, err := r.hgActiveBookmark(ctx, dir)
	if err != nil {
		return nil, err
	}
	status.Active = active

	rev, err := r.firstLine(ctx, dir, "hg", "log", "-r", ".", "--template", "{rev}:{node|short}")
	if err != nil {
		return nil, err
	}
	status.Rev = rev

	return status, nil
}

func (r *Reader) hgSummary(ctx context.Context, dir string, status *model.HgStatus) error {
	lines, err := r.lines(ctx, dir, "hg", "summary")
	if err != nil {
		return err
	}

	var diff model.HgDiff
	for _, line := range lines {
		if m := hgParentRe.FindStringSubmatch(line); m != nil {
			status.Commit = m[1]
			status.Tags = splitTags(m[2])
		} else if m := hgBranchRe.FindStringSubmatch(line); m != nil {
			status.Branch = m[1]
		} else if hgUpdateRe.MatchString(line) || hgPMergeRe.MatchString(line) {
			status.Behind = true
		} else if m := hgCommitRe.FindStringSubmatch(line); m != nil {
			parseHgCommit(m[1], &diff)
		}
	}
	status.Diff = model.NewHgDiff(diff)
	return nil
}

// parseHgCommit reads "1 modified, 2 unknown" style change lists.
func parseHgCommit(changes string, diff *model.HgDiff) {
	for _, token := range strings.Split(changes, ",") {
		m := hgChangeRe.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		n, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "modified":
			diff.Modified = uint(n)
		case "added":
			diff.Added = uint(n)
		case "removed":
			diff.Deleted = uint(n)
		case "deleted":
			diff.Missing = uint(n)
		case "unknown":
			diff.Untracked = uint(n)
		case "renamed":
			diff.Renamed = uint(n)
		}
	}
}

// hgHeads counts the heads of the current branch. The working copy is behind
// unless its parent changeset is one of them.
func (r *Reader) hgHeads(ctx context.Context, dir string, status *model.HgStatus) error {
	lines, err := r.lines(ctx, dir, "hg", "parent")
	if err != nil {
		return err
	}
	for _, line := range lines {
		if m := hgTagRe.FindStringSubmatch(line); m != nil {
			status.Tags = append(status.Tags, splitTags(m[1])...)
		} else if m := hgChangesetRe.FindStringSubmatch(line); m != nil {
			status.Commit = m[1]
		}
	}

	branch, err := r.firstLine(ctx, dir, "hg", "branch")
	if err != nil {
		return err
	}
	status.Branch = branch

	heads, err := r.lines(ctx, dir, "hg", "heads", branch)
	if err != nil {
		return err
	}
	status.Behind = true
	for _, line := range heads {
		m := hgChangesetRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] == status.Commit {
			status.Behind = false
		}
		status.HeadCount++
	}
	status.MultipleHeads = status.HeadCount > 1
	return nil
}

// hgActiveBookmark returns the bookmark marked with "*" in `hg bookmarks`.
func (r *Reader) hgActiveBookmark(ctx context.Context, dir string) (string, error) {
	lines, err := r.lines(ctx, dir, "hg", "bookmarks")
	if err != nil {
		return "", err
	}

	var active string
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "*") {
			continue
		}
		// " * name    3:0123abcd"
		parts := strings.Split(line, " ")
		if len(parts) < 3 {
			return "", newParseError("hg", []string{"bookmarks"}, "malformed active bookmark line "+strconv.Quote(line))
		}
		active = parts[2]
	}
	return active, nil
}

func splitTags(s string) []string {
	fields := strings.Fields(strings.ReplaceAll(s, hgEmptyRepository, ""))
	if len(fields) == 0 {
		return nil
	}
	return fields
}
