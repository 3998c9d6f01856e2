// internal/status/porcelain_test.go
package status

import (
	"testing"

	"github.com/jackchuka/vcsinfo/internal/model"
)

func TestParseBranchHeader(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.GitStatus
	}{
		{
			name: "ahead and behind",
			line: "## main...origin/main [ahead 2, behind 1]",
			want: model.GitStatus{Branch: "main", Upstream: "origin/main", Ahead: 2, Behind: 1},
		},
		{
			name: "ahead only",
			line: "## main...origin/main [ahead 3]",
			want: model.GitStatus{Branch: "main", Upstream: "origin/main", Ahead: 3},
		},
		{
			name: "behind only",
			line: "## feature/x...origin/feature/x [behind 4]",
			want: model.GitStatus{Branch: "feature/x", Upstream: "origin/feature/x", Behind: 4},
		},
		{
			name: "in sync",
			line: "## main...origin/main",
			want: model.GitStatus{Branch: "main", Upstream: "origin/main"},
		},
		{
			name: "no upstream",
			line: "## main",
			want: model.GitStatus{Branch: "main"},
		},
		{
			name: "initial commit",
			line: "## Initial commit on main",
			want: model.GitStatus{Branch: "main"},
		},
		{
			name: "detached",
			line: "## HEAD (no branch)",
			want: model.GitStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.GitStatus
			parseBranchHeader(tt.line, &got)
			if got.Branch != tt.want.Branch || got.Upstream != tt.want.Upstream ||
				got.Ahead != tt.want.Ahead || got.Behind != tt.want.Behind {
				t.Errorf("parseBranchHeader(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTallyChanges(t *testing.T) {
	lines := []string{
		"M  staged.go",
		" M edited.go",
		"MM both.go",
		"A  new.go",
		" D gone.go",
		"R  old.go -> renamed.go",
		"C  orig.go -> copy.go",
		"UU conflict.go",
		"?? untracked.txt",
		"?? other.txt",
		"!! ignored.log",
	}

	index, working, untracked := tallyChanges(lines)

	wantIndex := model.DiffCounts{Added: 1, Modified: 2, Renamed: 1, Copied: 1, Unmerged: 1}
	if index != wantIndex {
		t.Errorf("index = %+v, want %+v", index, wantIndex)
	}
	wantWorking := model.DiffCounts{Modified: 2, Deleted: 1, Unmerged: 1}
	if working != wantWorking {
		t.Errorf("working = %+v, want %+v", working, wantWorking)
	}
	if untracked != 2 {
		t.Errorf("untracked = %d, want 2", untracked)
	}
}

func TestTallyChanges_Empty(t *testing.T) {
	index, working, untracked := tallyChanges(nil)
	if !index.IsZero() || !working.IsZero() || untracked != 0 {
		t.Errorf("tallyChanges(nil) = %+v, %+v, %d", index, working, untracked)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{"", 0},
		{"7", 7},
		{"x", 0},
		{"-1", 0},
	}
	for _, tt := range tests {
		if got := parseCount(tt.in); got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
