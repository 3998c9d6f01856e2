// internal/prompt/theme.go
package prompt

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI 256 color palette
var (
	colorCleanGreen = lipgloss.Color("71")
	colorDirtyAmber = lipgloss.Color("179")
	colorCriticalRd = lipgloss.Color("196")
	colorCyan       = lipgloss.Color("73")
	colorDim        = lipgloss.Color("242")
)

type styles struct {
	bracket  lipgloss.Style
	vcs      lipgloss.Style
	clean    lipgloss.Style
	dirty    lipgloss.Style
	conflict lipgloss.Style
}

// newRenderer pins the profile to ANSI256. A prompt is captured by the shell
// through a pipe, so terminal detection on w would always disable colour.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		bracket:  r.NewStyle().Foreground(colorDim),
		vcs:      r.NewStyle().Foreground(colorCyan).Bold(true),
		clean:    r.NewStyle().Foreground(colorCleanGreen),
		dirty:    r.NewStyle().Foreground(colorDirtyAmber),
		conflict: r.NewStyle().Foreground(colorCriticalRd).Bold(true),
	}
}
