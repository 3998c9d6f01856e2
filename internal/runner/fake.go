// internal/runner/fake.go
package runner

import (
	"context"
	"strings"
	"sync"
)

// Fake returns canned results keyed by the full command line, e.g.
// "git rev-parse --is-inside-git-dir". Unknown commands succeed with no output.
type Fake struct {
	Results map[string]*Result
	Errors  map[string]error

	mu    sync.Mutex
	calls []string
}

func NewFake() *Fake {
	return &Fake{
		Results: make(map[string]*Result),
		Errors:  make(map[string]error),
	}
}

// Set registers stdout for a command line.
func (f *Fake) Set(cmdline, stdout string) *Fake {
	f.Results[cmdline] = &Result{Stdout: stdout}
	return f
}

// SetResult registers a full result for a command line.
func (f *Fake) SetResult(cmdline string, res *Result) *Fake {
	f.Results[cmdline] = res
	return f
}

func (f *Fake) Run(_ context.Context, _ string, name string, args ...string) (*Result, error) {
	key := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if err, ok := f.Errors[key]; ok {
		return nil, err
	}
	if res, ok := f.Results[key]; ok {
		copied := *res
		return &copied, nil
	}
	return &Result{}, nil
}

// Calls returns the command lines run so far.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether cmdline has been run.
func (f *Fake) Called(cmdline string) bool {
	for _, c := range f.Calls() {
		if c == cmdline {
			return true
		}
	}
	return false
}
