// internal/model/status.go
package model

// Status is the snapshot of one working copy. It is implemented only by
// *GitStatus, *HgStatus and *SvnStatus.
type Status interface {
	VCS() VCS
	// Prompt renders the status body for a shell prompt. fallback selects ASCII symbols.
	Prompt(fallback bool) string

	isStatus()
}

// DiffCounts tallies git file changes for one column (index or working tree).
type DiffCounts struct {
	Added    uint
	Modified uint
	Renamed  uint
	Copied   uint
	Deleted  uint
	Unmerged uint
}

func (d DiffCounts) IsZero() bool {
	return d == DiffCounts{}
}

// NewDiffCounts returns d, or nil if every count is zero.
func NewDiffCounts(d DiffCounts) *DiffCounts {
	if d.IsZero() {
		return nil
	}
	return &d
}

type GitStatus struct {
	Branch    string      // May carry a BARE: prefix or a |REBASE-i style suffix
	Upstream  string      // Empty if the branch has no upstream
	Ahead     uint        // Commits ahead of upstream
	Behind    uint        // Commits behind upstream
	Index     *DiffCounts // Staged changes, nil when clean
	Working   *DiffCounts // Unstaged changes, nil when clean
	Untracked uint        // Untracked files
	Stashes   uint        // Entries in refs/stash
}

func (*GitStatus) VCS() VCS { return VCSGit }
func (*GitStatus) isStatus() {}

// HgDiff tallies the change kinds reported by `hg summary`.
type HgDiff struct {
	Added     uint // "added"
	Modified  uint // "modified"
	Deleted   uint // "removed"
	Untracked uint // "unknown"
	Missing   uint // "deleted"
	Renamed   uint // "renamed"
}

func (d HgDiff) IsZero() bool {
	return d == HgDiff{}
}

// NewHgDiff returns d, or nil if every count is zero.
func NewHgDiff(d HgDiff) *HgDiff {
	if d.IsZero() {
		return nil
	}
	return &d
}

type HgStatus struct {
	Tags          []string // Tags of the parent changeset
	Commit        string   // Current changeset id
	Branch        string   // Named branch
	Behind        bool     // An update or merge is pending
	HeadCount     uint     // Heads of the branch, only set when heads are counted
	MultipleHeads bool     // More than one head on the branch
	Active        string   // Active bookmark
	Rev           string   // "{rev}:{node|short}"
	Diff          *HgDiff  // Uncommitted changes, nil when clean
}

func (*HgStatus) VCS() VCS { return VCSHg }
func (*HgStatus) isStatus() {}

// SvnDiff tallies the column-0 status codes of `svn status`.
type SvnDiff struct {
	Untracked  uint
	Ignored    uint
	Added      uint
	Modified   uint
	Replaced   uint
	Deleted    uint
	Missing    uint
	Conflicted uint
	Obstructed uint
}

func (d SvnDiff) IsZero() bool {
	return d == SvnDiff{}
}

// NewSvnDiff returns d, or nil if every count is zero.
func NewSvnDiff(d SvnDiff) *SvnDiff {
	if d.IsZero() {
		return nil
	}
	return &d
}

type SvnStatus struct {
	Branch           string   // trunk, a branch/tag name, or empty
	Revision         string   // Working copy revision
	Diff             *SvnDiff // Local changes, nil when clean
	External         uint     // Externals definitions
	Incoming         uint     // Items out of date with the repository
	IncomingRevision uint     // Revision the out-of-date check ran against
}

func (*SvnStatus) VCS() VCS { return VCSSvn }
func (*SvnStatus) isStatus() {}
