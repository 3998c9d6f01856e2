// internal/status/reader.go
package status

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackchuka/vcsinfo/internal/config"
	"github.com/jackchuka/vcsinfo/internal/model"
	"github.com/jackchuka/vcsinfo/internal/runner"
	"github.com/jackchuka/vcsinfo/internal/scanner"
)

// HgMode selects how Mercurial state is collected.
type HgMode int

const (
	// HgSummary reads `hg summary`.
	HgSummary HgMode = iota
	// HgHeads reads `hg parent`, `hg branch` and `hg heads <branch>` and counts heads.
	HgHeads
)

// Reader collects a status snapshot for a working copy by running the
// backend's own commands. Every command runs synchronously.
type Reader struct {
	runner      runner.Runner
	logger      *slog.Logger
	describe    config.DescribeStyle
	hgMode      HgMode
	timeout     time.Duration
	concurrency int
}

type Option func(*Reader)

func WithRunner(r runner.Runner) Option {
	return func(rd *Reader) { rd.runner = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(rd *Reader) { rd.logger = l }
}

func WithDescribeStyle(s config.DescribeStyle) Option {
	return func(rd *Reader) { rd.describe = s }
}

func WithHgMode(m HgMode) Option {
	return func(rd *Reader) { rd.hgMode = m }
}

// WithTimeout bounds each command. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(rd *Reader) { rd.timeout = d }
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{
		runner:      runner.NewExecRunner(),
		logger:      slog.New(slog.DiscardHandler),
		describe:    config.DescribeDefault,
		hgMode:      HgSummary,
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromConfig maps configuration onto reader options.
func FromConfig(cfg *config.Config) []Option {
	opts := []Option{
		WithDescribeStyle(cfg.DescribeStyle),
		WithTimeout(cfg.CommandTimeout),
	}
	if cfg.HgHeads {
		opts = append(opts, WithHgMode(HgHeads))
	}
	return opts
}

// Current detects the working copy containing dir and reads its status.
// It returns (nil, nil) when dir is not inside a working copy.
func (r *Reader) Current(ctx context.Context, dir string) (model.Status, error) {
	repo, ok := scanner.Detect(dir)
	if !ok {
		r.logger.Debug("no working copy found", "dir", dir)
		return nil, nil
	}
	r.logger.Debug("detected working copy", "vcs", repo.VCS, "root", repo.Path)
	return r.Read(ctx, repo, dir)
}

// Read collects the status of repo with commands run in dir.
func (r *Reader) Read(ctx context.Context, repo model.Repository, dir string) (model.Status, error) {
	switch repo.VCS {
	case model.VCSGit:
		s, err := r.readGit(ctx, repo, dir)
		if err != nil || s == nil {
			return nil, err
		}
		return s, nil
	case model.VCSHg:
		s, err := r.readHg(ctx, dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case model.VCSSvn:
		s, err := r.readSvn(ctx, dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported vcs %v", repo.VCS)
}

// Batch reads several working copies concurrently.
func (r *Reader) Batch(ctx context.Context, repos []model.Repository) (map[string]model.Status, map[string]error) {
	results := make(map[string]model.Status)
	errors := make(map[string]error)
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, r.concurrency)

	for _, repo := range repos {
		wg.Add(1)
		go func(repo model.Repository) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				mu.Lock()
				errors[repo.Path] = ctx.Err()
				mu.Unlock()
				return
			}
			defer func() { <-sem }()

			status, err := r.Read(ctx, repo, repo.Path)
			mu.Lock()
			if err != nil {
				errors[repo.Path] = err
			}
			if status != nil {
				results[repo.Path] = status
			}
			mu.Unlock()
		}(repo)
	}

	wg.Wait()
	return results, errors
}

func (r *Reader) run(ctx context.Context, dir string, name string, args ...string) (*runner.Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	res, err := r.runner.Run(ctx, dir, name, args...)
	if err != nil {
		r.logger.Debug("command failed", "cmd", name, "args", args, "err", err)
		return nil, err
	}
	r.logger.Debug("command finished", "cmd", name, "args", args, "exit", res.ExitCode)
	return res, nil
}

// lines runs a command and returns its stdout lines whatever the exit code.
func (r *Reader) lines(ctx context.Context, dir string, name string, args ...string) ([]string, error) {
	res, err := r.run(ctx, dir, name, args...)
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

// firstLine returns the first stdout line or a ParseError naming the command.
func (r *Reader) firstLine(ctx context.Context, dir string, name string, args ...string) (string, error) {
	lines, err := r.lines(ctx, dir, name, args...)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", newParseError(name, args, "no output")
	}
	return lines[0], nil
}
