// internal/status/svn.go
package status

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackchuka/vcsinfo/internal/model"
)

const (
	svnIncomingPrefix = "Status against revision:"
	svnURLPrefix      = "Relative URL: ^/"
	svnRevisionPrefix = "Revision: "
)

func (r *Reader) readSvn(ctx context.Context, dir string) (*model.SvnStatus, error) {
	args := []string{"status", "--ignore-externals"}
	lines, err := r.lines(ctx, dir, "svn", args...)
	if err != nil {
		return nil, err
	}

	status := &model.SvnStatus{}
	var diff model.SvnDiff
	for _, line := range lines {
		if strings.HasPrefix(line, "Status") {
			rev := strings.TrimSpace(strings.Replace(line, svnIncomingPrefix, "", 1))
			n, err := strconv.ParseUint(rev, 10, 64)
			if err != nil {
				return nil, newParseError("svn", args, "bad incoming revision "+strconv.Quote(line))
			}
			status.IncomingRevision = uint(n)
			continue
		}
		tallySvnLine([]rune(line), &diff, status)
	}
	status.Diff = model.NewSvnDiff(diff)

	branch, revision, err := r.svnBranchInfo(ctx, dir)
	if err != nil {
		return nil, err
	}
	status.Branch = branch
	status.Revision = revision

	return status, nil
}

// tallySvnLine reads the fixed status columns: 0 item state, 4 external,
// 6 tree conflict, 8 out of date.
func tallySvnLine(cols []rune, diff *model.SvnDiff, status *model.SvnStatus) {
	at := func(i int) rune {
		if i < len(cols) {
			return cols[i]
		}
		return 0
	}

	switch at(0) {
	case 'A':
		diff.Added++
	case 'C':
		diff.Conflicted++
	case 'D':
		diff.Deleted++
	case 'I':
		diff.Ignored++
	case 'M':
		diff.Modified++
	case 'R':
		diff.Replaced++
	case '?':
		diff.Untracked++
	case '!':
		diff.Missing++
	case '~':
		diff.Obstructed++
	case 'X':
		status.External++
	}

	if at(4) == 'X' {
		status.External++
	}
	if at(6) == 'C' {
		diff.Conflicted++
	}
	if at(8) == '*' {
		status.Incoming++
	}
}

func (r *Reader) svnBranchInfo(ctx context.Context, dir string) (branch, revision string, err error) {
	lines, err := r.lines(ctx, dir, "svn", "info")
	if err != nil {
		return "", "", err
	}

	var url string
	var foundURL, foundRev bool
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, svnURLPrefix):
			url = strings.TrimPrefix(line, svnURLPrefix)
			foundURL = true
		case strings.HasPrefix(line, svnRevisionPrefix):
			revision = strings.TrimPrefix(line, svnRevisionPrefix)
			foundRev = true
		}
	}
	if !foundURL || !foundRev {
		return "", "", newParseError("svn", []string{"info"}, "missing Relative URL or Revision")
	}

	return svnBranch(url), revision, nil
}

// svnBranch applies the trunk/branches/tags layout convention to a repository path.
func svnBranch(url string) string {
	var segments []string
	for _, s := range strings.Split(url, "/") {
		if strings.TrimSpace(s) != "" {
			segments = append(segments, s)
		}
	}

	switch {
	case len(segments) == 0:
		return ""
	case segments[0] == "trunk":
		return "trunk"
	case len(segments) > 1 && (strings.Contains(segments[0], "branches") || strings.Contains(segments[0], "tags")):
		return segments[1]
	}
	return ""
}
