// internal/status/porcelain.go
package status

import (
	"regexp"
	"strconv"

	"github.com/jackchuka/vcsinfo/internal/model"
)

var (
	// "## main...origin/main [ahead 2, behind 1]"
	branchHeaderRe = regexp.MustCompile(`^## (?P<branch>\S+?)(?:\.\.\.(?P<upstream>\S+))?(?: \[(?:ahead (?P<ahead>\d+))?(?:, )?(?:behind (?P<behind>\d+))?\])?$`)
	// "## Initial commit on main"
	initialCommitRe = regexp.MustCompile(`^## Initial commit on (?P<branch>\S+)$`)
	// "XY path" or "XY old -> new"
	changeLineRe = regexp.MustCompile(`^(?P<index>[^#])(?P<working>.) (.*?)(?: -> (.*))?$`)
)

// parseBranchHeader reads the first line of `git status --short --branch`.
// Branch stays empty for headers such as "## HEAD (no branch)".
func parseBranchHeader(line string, status *model.GitStatus) {
	if m := branchHeaderRe.FindStringSubmatch(line); m != nil {
		status.Branch = m[branchHeaderRe.SubexpIndex("branch")]
		status.Upstream = m[branchHeaderRe.SubexpIndex("upstream")]
		status.Ahead = parseCount(m[branchHeaderRe.SubexpIndex("ahead")])
		status.Behind = parseCount(m[branchHeaderRe.SubexpIndex("behind")])
		return
	}
	if m := initialCommitRe.FindStringSubmatch(line); m != nil {
		status.Branch = m[initialCommitRe.SubexpIndex("branch")]
	}
}

// tallyChanges counts the index and working tree columns of short status lines.
func tallyChanges(lines []string) (index, working model.DiffCounts, untracked uint) {
	indexIdx := changeLineRe.SubexpIndex("index")
	workingIdx := changeLineRe.SubexpIndex("working")

	for _, line := range lines {
		m := changeLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		countChange(m[indexIdx], &index)
		if m[workingIdx] == "?" {
			untracked++
			continue
		}
		countChange(m[workingIdx], &working)
	}
	return index, working, untracked
}

func countChange(code string, d *model.DiffCounts) {
	switch code {
	case "A":
		d.Added++
	case "M":
		d.Modified++
	case "R":
		d.Renamed++
	case "C":
		d.Copied++
	case "D":
		d.Deleted++
	case "U":
		d.Unmerged++
	}
}

func parseCount(s string) uint {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
