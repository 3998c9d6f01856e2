// internal/runner/runner.go
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external VCS commands.
// A non-zero exit code is not an error; callers inspect Result themselves.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (*Result, error)
}

type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Lines splits stdout into lines, dropping the trailing newline.
func (r *Result) Lines() []string {
	out := strings.TrimSuffix(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// SpawnError reports an executable that could not be launched.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports a process that ended without an exit code (killed by a signal).
type ExitError struct {
	Name  string
	State string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s terminated abnormally: %s", e.Name, e.State)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Env entries are appended to the current process environment.
	Env []string
}

func NewExecRunner(env ...string) *ExecRunner {
	return &ExecRunner{Env: env}
}

func (e *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: decode(stdout.Bytes()),
		Stderr: decode(stderr.Bytes()),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return nil, &ExitError{Name: name, State: exitErr.ProcessState.String()}
		}
		res.ExitCode = code
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %w", name, ctxErr)
	}
	return nil, &SpawnError{Name: name, Err: err}
}

func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
