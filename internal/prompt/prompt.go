// internal/prompt/prompt.go
package prompt

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jackchuka/vcsinfo/internal/model"
)

type Options struct {
	Fallback bool // ASCII symbols instead of Unicode arrows
	Color    bool // ANSI colour around the backend name and body
}

// State summarizes a status for colouring.
type State int

const (
	StateClean State = iota
	StateDirty
	StateConflict
)

// Formatter renders statuses as prompt segments.
type Formatter struct {
	opts   Options
	styles styles
}

// NewFormatter returns a Formatter whose styles target w.
func NewFormatter(w io.Writer, opts Options) *Formatter {
	return &Formatter{
		opts:   opts,
		styles: newStyles(newRenderer(w)),
	}
}

// Format returns "[<vcs>](<body>)", or "" for a nil status.
func (f *Formatter) Format(s model.Status) string {
	if s == nil {
		return ""
	}
	if !f.opts.Color {
		return model.Render(s, f.opts.Fallback)
	}

	body := f.styles.clean
	switch Classify(s) {
	case StateDirty:
		body = f.styles.dirty
	case StateConflict:
		body = f.styles.conflict
	}

	var b strings.Builder
	b.WriteString(f.styles.bracket.Render("["))
	b.WriteString(f.styles.vcs.Render(s.VCS().String()))
	b.WriteString(f.styles.bracket.Render("]("))
	b.WriteString(body.Render(s.Prompt(f.opts.Fallback)))
	b.WriteString(f.styles.bracket.Render(")"))
	return b.String()
}

// Classify reports whether a working copy is clean, dirty or conflicted.
func Classify(s model.Status) State {
	switch st := s.(type) {
	case *model.GitStatus:
		if unmerged(st.Index) || unmerged(st.Working) {
			return StateConflict
		}
		if st.Index != nil || st.Working != nil || st.Untracked > 0 {
			return StateDirty
		}
	case *model.HgStatus:
		if st.MultipleHeads {
			return StateConflict
		}
		if st.Diff != nil || st.Behind {
			return StateDirty
		}
	case *model.SvnStatus:
		if d := st.Diff; d != nil && d.Conflicted+d.Obstructed > 0 {
			return StateConflict
		}
		if st.Diff != nil || st.Incoming > 0 {
			return StateDirty
		}
	}
	return StateClean
}

func unmerged(d *model.DiffCounts) bool {
	return d != nil && d.Unmerged > 0
}

// PadRight pads s to width display cells, ignoring escape sequences.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens s to width display cells with a trailing ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
