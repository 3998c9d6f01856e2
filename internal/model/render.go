// internal/model/render.go
package model

import (
	"fmt"
	"strings"
)

// Relation symbols, Unicode first and ASCII fallback second.
var (
	symbolAligned = [2]string{"≡", "="}
	symbolBoth    = [2]string{"↕", "AB"}
	symbolAhead   = [2]string{"↑", "A"}
	symbolBehind  = [2]string{"↓", "B"}
)

func pick(sym [2]string, fallback bool) string {
	if fallback {
		return sym[1]
	}
	return sym[0]
}

// Relation returns the upstream marker for the status, or "" without an upstream.
func (s *GitStatus) Relation(fallback bool) string {
	switch {
	case s.Upstream == "":
		return ""
	case s.Ahead == 0 && s.Behind == 0:
		return pick(symbolAligned, fallback)
	case s.Ahead > 0 && s.Behind > 0:
		return pick(symbolBoth, fallback)
	case s.Ahead > 0:
		return pick(symbolAhead, fallback)
	case s.Behind > 0:
		return pick(symbolBehind, fallback)
	}
	return "?"
}

func (s *GitStatus) Prompt(fallback bool) string {
	var b strings.Builder

	b.WriteString(s.Branch)
	if rel := s.Relation(fallback); rel != "" {
		b.WriteString(" " + rel)
	}

	// Renamed and copied entries are shown as modifications.
	writeDiff := func(label string, d *DiffCounts) {
		if d == nil {
			return
		}
		fmt.Fprintf(&b, " |%s +%d ~%d -%d !%d", label,
			d.Added, d.Modified+d.Renamed+d.Copied, d.Deleted, d.Unmerged)
	}
	writeDiff("I", s.Index)
	writeDiff("W", s.Working)

	if s.Untracked > 0 {
		fmt.Fprintf(&b, " |? %d", s.Untracked)
	}
	if s.Stashes > 0 {
		fmt.Fprintf(&b, " |S %d", s.Stashes)
	}

	return b.String()
}

// Prompt ignores fallback; the Mercurial body is plain ASCII.
func (s *HgStatus) Prompt(_ bool) string {
	var b strings.Builder

	b.WriteString(s.Branch)

	if d := s.Diff; d != nil {
		fmt.Fprintf(&b, "|+%d ~%d x%d ?%d m%d c%d",
			d.Added, d.Modified, d.Deleted, d.Untracked, d.Missing, d.Renamed)
	}

	if len(s.Tags) > 0 || s.Active != "" {
		b.WriteString("|")
		if s.Active != "" {
			b.WriteString(s.Active)
			if len(s.Tags) > 0 {
				b.WriteString(" ")
			}
		}
		b.WriteString(strings.Join(s.Tags, ", "))
	}

	if s.Rev != "" {
		fmt.Fprintf(&b, " <%s>", s.Rev)
	}

	return b.String()
}

// Prompt ignores fallback; the Subversion body is plain ASCII.
func (s *SvnStatus) Prompt(_ bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s@%s", s.Branch, s.Revision)

	if d := s.Diff; d != nil {
		fmt.Fprintf(&b, "|+%d ~%d -%d ?%d !%d C%d",
			d.Added, d.Modified+d.Replaced, d.Deleted, d.Untracked, d.Missing,
			d.Conflicted+d.Obstructed)
	}
	if s.Incoming > 0 {
		fmt.Fprintf(&b, "|In%d@%d", s.Incoming, s.IncomingRevision)
	}
	if s.External > 0 {
		fmt.Fprintf(&b, "|Ex%d", s.External)
	}

	return b.String()
}

// Render wraps a status body with its backend name: "[git](main ≡)".
func Render(s Status, fallback bool) string {
	return fmt.Sprintf("[%s](%s)", s.VCS(), s.Prompt(fallback))
}
