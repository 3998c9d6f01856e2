// cmd/init.go
package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jackchuka/vcsinfo/internal/config"
	"github.com/jackchuka/vcsinfo/internal/model"
	"github.com/jackchuka/vcsinfo/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up vcsinfo config interactively",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

type initStep int

const (
	stepWelcome   initStep = iota
	stepOverwrite          // only if config exists
	stepPaths
	stepStyle
	stepConfirm
	stepDone
)

var (
	styleInitTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("73"))
	styleInitSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	styleInitWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	styleInitDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// promptStyles are the choices offered by the style step, in display order.
var promptStyles = []prompt.Options{
	{},
	{Fallback: true},
	{Color: true},
	{Fallback: true, Color: true},
}

// sampleStatus is rendered in the style step to preview each choice.
var sampleStatus = &model.GitStatus{
	Branch:    "main",
	Upstream:  "origin/main",
	Ahead:     1,
	Working:   &model.DiffCounts{Modified: 2},
	Untracked: 1,
}

type initModel struct {
	step         initStep
	input        textinput.Model
	paths        []string
	warnings     map[int]string // index → warning message
	style        int            // index into promptStyles
	base         *config.Config // settings kept from an existing config
	configPath   string
	configExists bool
	err          error
	cancelled    bool
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	var base *config.Config
	if cfgErr == nil {
		base = cfg
	}

	p := tea.NewProgram(newInitModel(configPath, base))
	result, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := result.(*initModel); ok && final.err != nil {
		return final.err
	}

	return nil
}

func newInitModel(configPath string, base *config.Config) *initModel {
	_, err := os.Stat(configPath)

	ti := textinput.New()
	ti.Placeholder = "~/src"
	ti.CharLimit = 256
	ti.Width = 50

	m := &initModel{
		step:         stepWelcome,
		input:        ti,
		warnings:     make(map[int]string),
		base:         base,
		configPath:   configPath,
		configExists: err == nil,
	}
	if base != nil {
		m.paths = append(m.paths, base.ScanPaths...)
		for i, opts := range promptStyles {
			if opts.Fallback == base.Fallback && opts.Color == base.Color {
				m.style = i
			}
		}
	}
	return m
}

func (m *initModel) Init() tea.Cmd {
	return nil
}

func (m *initModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		// Global quit
		if key == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.step {
		case stepWelcome:
			if key == "enter" {
				if m.configExists {
					m.step = stepOverwrite
				} else {
					m.step = stepPaths
					m.input.Focus()
					return m, textinput.Blink
				}
			}
			if key == "q" || key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}

		case stepOverwrite:
			if key == "y" || key == "Y" {
				m.step = stepPaths
				m.input.Focus()
				return m, textinput.Blink
			}
			m.cancelled = true
			return m, tea.Quit

		case stepPaths:
			if key == "enter" {
				val := strings.TrimSpace(m.input.Value())
				if val != "" {
					if isDuplicate(m.paths, val) {
						m.input.Reset()
						return m, nil
					}
					expanded, exists := expandAndCheck(val)
					m.paths = append(m.paths, val)
					if !exists {
						m.warnings[len(m.paths)-1] = fmt.Sprintf("  %s does not exist yet", expanded)
					}
					m.input.Reset()
				} else {
					m.input.Blur()
					m.step = stepStyle
				}
				return m, nil
			}
			if key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case stepStyle:
			switch key {
			case "up", "k":
				m.style = (m.style + len(promptStyles) - 1) % len(promptStyles)
			case "down", "j", "tab":
				m.style = (m.style + 1) % len(promptStyles)
			case "enter":
				m.step = stepConfirm
			case "esc":
				m.step = stepPaths
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, nil

		case stepConfirm:
			if key == "enter" {
				if err := config.Save(m.buildConfig(), m.configPath); err != nil {
					m.err = err
				}
				m.step = stepDone
				return m, tea.Quit
			}
			if key == "esc" {
				m.step = stepStyle
			}

		case stepDone:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *initModel) View() string {
	var b strings.Builder

	switch m.step {
	case stepWelcome:
		b.WriteString(styleInitTitle.Render("Welcome to vcsinfo!"))
		b.WriteString("\n\n")
		b.WriteString("Config will be saved to ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString(styleInitDim.Render("Press Enter to continue, Esc to cancel"))
		b.WriteString("\n")

	case stepOverwrite:
		b.WriteString(styleInitWarn.Render("Config already exists"))
		b.WriteString(" at ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString("Overwrite? ")
		b.WriteString(styleInitDim.Render("[y/N]"))
		b.WriteString("\n")

	case stepPaths:
		b.WriteString(styleInitTitle.Render("Scan paths"))
		b.WriteString("\n\n")
		if len(m.paths) > 0 {
			for i, p := range m.paths {
				b.WriteString(styleInitSuccess.Render("  + " + p))
				b.WriteString("\n")
				if w, ok := m.warnings[i]; ok {
					b.WriteString(styleInitWarn.Render(w))
					b.WriteString("\n")
				}
			}
			b.WriteString("\n")
		}
		if len(m.paths) == 0 {
			b.WriteString("Enter a directory to scan for working copies (or press Enter to skip):\n")
		} else {
			b.WriteString("Enter another path (or press Enter to finish):\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case stepStyle:
		b.WriteString(styleInitTitle.Render("Prompt style"))
		b.WriteString("\n\n")
		for i, opts := range promptStyles {
			cursor := "  "
			if i == m.style {
				cursor = styleInitSuccess.Render("> ")
			}
			b.WriteString(cursor)
			b.WriteString(prompt.NewFormatter(os.Stdout, opts).Format(sampleStatus))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styleInitDim.Render("[↑/↓] Choose  [Enter] Select  [Esc] Go back"))
		b.WriteString("\n")

	case stepConfirm:
		b.WriteString(styleInitTitle.Render("Ready to write config"))
		fmt.Fprintf(&b, " with %d scan path(s):\n\n", len(m.paths))
		for _, p := range m.paths {
			b.WriteString("  - " + p + "\n")
		}
		b.WriteString("\n  prompt: ")
		b.WriteString(prompt.NewFormatter(os.Stdout, promptStyles[m.style]).Format(sampleStatus))
		b.WriteString("\n\n")
		b.WriteString(styleInitDim.Render("[Enter] Write config  [Esc] Go back"))
		b.WriteString("\n")

	case stepDone:
		if m.err != nil {
			b.WriteString(styleInitWarn.Render("Error: " + m.err.Error()))
			b.WriteString("\n")
		} else {
			b.WriteString(styleInitSuccess.Render("Config saved to " + m.configPath))
			b.WriteString("\n\n")
			b.WriteString("Add ")
			b.WriteString(styleInitTitle.Render("$(vcsinfo)"))
			b.WriteString(" to your PS1 or PROMPT.\n")
		}
	}

	return b.String()
}

// buildConfig builds the configuration written by the wizard.
func (m *initModel) buildConfig() *config.Config {
	cfg := config.NewConfig()
	if m.base != nil {
		kept := *m.base
		cfg = &kept
	}
	cfg.ScanPaths = m.paths
	cfg.Fallback = promptStyles[m.style].Fallback
	cfg.Color = promptStyles[m.style].Color
	return cfg
}

func expandAndCheck(path string) (expanded string, exists bool) {
	expanded = config.ExpandHome(path)
	_, err := os.Stat(expanded)
	return expanded, err == nil
}

func isDuplicate(paths []string, candidate string) bool {
	return slices.Contains(paths, candidate)
}
