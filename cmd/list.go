// cmd/list.go
package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jackchuka/vcsinfo/internal/config"
	"github.com/jackchuka/vcsinfo/internal/model"
	"github.com/jackchuka/vcsinfo/internal/prompt"
	"github.com/jackchuka/vcsinfo/internal/scanner"
	"github.com/jackchuka/vcsinfo/internal/status"
)

// ListFormat selects how a repository path is printed.
type ListFormat string

const (
	ListDefault ListFormat = "default" // relative to its scan path, e.g. github.com/user/project
	ListFull    ListFormat = "full"    // absolute path
	ListUnique  ListFormat = "unique"  // project name only
)

// maxNameWidth caps the path column of `list --status`.
const maxNameWidth = 60

var (
	listStatus bool
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List working copies under the configured scan paths",
	Long: `List git, Mercurial and Subversion working copies found under the
configured scan paths. A query keeps repositories whose last two path
segments contain it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listStatus, "status", "S", false, "show the prompt status of each repository")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", string(ListDefault), "path format: default, full or unique")
	listCmd.Flags().StringSliceP("scan", "s", nil, "paths to scan (overrides config file)")
}

func runList(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return fmt.Errorf("load config %s: %w", cfgFile, cfgErr)
	}

	format := ListFormat(listFormat)
	switch format {
	case ListDefault, ListFull, ListUnique:
	default:
		return fmt.Errorf("unknown format %q", listFormat)
	}

	if scanPaths, _ := cmd.Flags().GetStringSlice("scan"); len(scanPaths) > 0 {
		for i, p := range scanPaths {
			scanPaths[i] = config.ExpandHome(p)
		}
		cfg.ScanPaths = scanPaths
	}
	if len(cfg.ScanPaths) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No scan paths configured.\n")
		fmt.Fprintf(cmd.ErrOrStderr(), "Run 'vcsinfo init' to set up, or add paths to %s\n", cfgFile)
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repos, err := scanner.NewWalker(cfg).Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if len(args) == 1 {
		repos = filterRepos(repos, args[0])
	}
	logger.Debug("scan finished", "repositories", len(repos))

	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = formatPath(r, cfg.ScanPaths, format)
	}

	out := cmd.OutOrStdout()
	if !listStatus {
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	reader := status.NewReader(append(status.FromConfig(cfg), status.WithLogger(logger))...)
	statuses, errs := reader.Batch(ctx, repos)

	width := 0
	for i, name := range names {
		names[i] = prompt.Truncate(name, maxNameWidth)
		width = max(width, lipgloss.Width(names[i]))
	}

	formatter := prompt.NewFormatter(out, prompt.Options{Fallback: cfg.Fallback, Color: cfg.Color})
	for i, r := range repos {
		var cell string
		switch {
		case errs[r.Path] != nil:
			logger.Debug("read status", "repo", r.Path, "err", errs[r.Path])
			cell = "[" + r.VCS.String() + "](error)"
		case statuses[r.Path] != nil:
			cell = formatter.Format(statuses[r.Path])
		default:
			cell = "[" + r.VCS.String() + "]"
		}
		fmt.Fprintf(out, "%s  %s\n", prompt.PadRight(names[i], width), cell)
	}
	return nil
}

// formatPath renders a repository path in the requested format. Paths outside
// every scan root fall back to the absolute path.
func formatPath(repo model.Repository, roots []string, format ListFormat) string {
	switch format {
	case ListFull:
		return repo.Path
	case ListUnique:
		return repo.DisplayName()
	}

	for _, root := range roots {
		rel, err := filepath.Rel(root, repo.Path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		return filepath.ToSlash(rel)
	}
	return repo.Path
}

// filterRepos keeps repositories whose last two path segments contain query.
func filterRepos(repos []model.Repository, query string) []model.Repository {
	var kept []model.Repository
	for _, r := range repos {
		parent := filepath.Base(filepath.Dir(r.Path))
		if strings.Contains(parent+"/"+filepath.Base(r.Path), query) {
			kept = append(kept, r)
		}
	}
	return kept
}
