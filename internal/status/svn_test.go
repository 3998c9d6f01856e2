// internal/status/svn_test.go
package status

import (
	"context"
	"errors"
	"testing"

	"github.com/jackchuka/vcsinfo/internal/model"
	"github.com/jackchuka/vcsinfo/internal/runner"
)

const svnInfoOutput = `Path: .
Working Copy Root Path: /home/u/wc
URL: https://svn.example.com/repo/trunk
Relative URL: ^/trunk
Repository Root: https://svn.example.com/repo
Revision: 42
Node Kind: directory
`

func TestReadSvn_Modified(t *testing.T) {
	fake := runner.NewFake().
		Set("svn status --ignore-externals", "M       foo.txt\n").
		Set("svn info", svnInfoOutput)
	reader := NewReader(WithRunner(fake))

	got, err := reader.readSvn(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("readSvn() error = %v", err)
	}
	if got.Branch != "trunk" || got.Revision != "42" {
		t.Errorf("Branch@Revision = %s@%s, want trunk@42", got.Branch, got.Revision)
	}
	if got.Diff == nil || *got.Diff != (model.SvnDiff{Modified: 1}) {
		t.Errorf("Diff = %+v, want one modified", got.Diff)
	}
	if p := got.Prompt(false); p != "trunk@42|+0 ~1 -0 ?0 !0 C0" {
		t.Errorf("Prompt() = %q", p)
	}
}

func TestReadSvn_Columns(t *testing.T) {
	status := "A       added.c\n" +
		"?       scratch.txt\n" +
		"!       lost.c\n" +
		"~       obstructed\n" +
		"R       replaced.c\n" +
		"C       conflict.c\n" +
		"I       build\n" +
		"D       removed.c\n" +
		"X       vendor\n" +
		"    X   lib/ext\n" +
		"      C tree.c\n" +
		"        *           7   stale.c\n" +
		"Status against revision:     50\n"

	fake := runner.NewFake().
		Set("svn status --ignore-externals", status).
		Set("svn info", svnInfoOutput)
	reader := NewReader(WithRunner(fake))

	got, err := reader.readSvn(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("readSvn() error = %v", err)
	}

	want := model.SvnDiff{
		Untracked:  1,
		Ignored:    1,
		Added:      1,
		Replaced:   1,
		Deleted:    1,
		Missing:    1,
		Conflicted: 2,
		Obstructed: 1,
	}
	if got.Diff == nil || *got.Diff != want {
		t.Errorf("Diff = %+v, want %+v", got.Diff, want)
	}
	if got.External != 2 {
		t.Errorf("External = %d, want 2", got.External)
	}
	if got.Incoming != 1 || got.IncomingRevision != 50 {
		t.Errorf("Incoming = %d@%d, want 1@50", got.Incoming, got.IncomingRevision)
	}
}

func TestReadSvn_Clean(t *testing.T) {
	fake := runner.NewFake().Set("svn info", svnInfoOutput)
	reader := NewReader(WithRunner(fake))

	got, err := reader.readSvn(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("readSvn() error = %v", err)
	}
	if got.Diff != nil {
		t.Errorf("Diff = %+v, want nil", got.Diff)
	}
}

func TestReadSvn_BadIncomingRevision(t *testing.T) {
	fake := runner.NewFake().
		Set("svn status --ignore-externals", "Status against revision: abc\n").
		Set("svn info", svnInfoOutput)
	reader := NewReader(WithRunner(fake))

	_, err := reader.readSvn(context.Background(), t.TempDir())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("readSvn() error = %v, want *ParseError", err)
	}
}

func TestReadSvn_IncompleteInfo(t *testing.T) {
	fake := runner.NewFake().Set("svn info", "Path: .\nRevision: 42\n")
	reader := NewReader(WithRunner(fake))

	_, err := reader.readSvn(context.Background(), t.TempDir())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("readSvn() error = %v, want *ParseError", err)
	}
}

func TestSvnBranch(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"trunk", "trunk"},
		{"trunk/src/lib", "trunk"},
		{"branches/feature/src", "feature"},
		{"tags/v1.2", "v1.2"},
		{"branches", ""},
		{"project/trunk", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := svnBranch(tt.url); got != tt.want {
				t.Errorf("svnBranch(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
