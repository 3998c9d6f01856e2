// cmd/root_test.go
package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the CLI in dir with an isolated config file.
func execute(t *testing.T, dir string, args ...string) string {
	t.Helper()
	t.Chdir(dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestRoot_OutsideWorkingCopy(t *testing.T) {
	if got := execute(t, t.TempDir()); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestRoot_BrokenBackendPrintsNothing(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".svn"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", t.TempDir())

	if got := execute(t, dir); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestRoot_GitPrompt(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test"},
		{"commit", "--allow-empty", "-m", "initial"},
		{"checkout", "-b", "feature"},
	} {
		c := exec.Command("git", args...)
		c.Dir = dir
		if out, err := c.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got := execute(t, dir, "--fallback", "--color=false")
	if got != "[git](feature |? 1)" {
		t.Errorf("output = %q, want %q", got, "[git](feature |? 1)")
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("prompt output must not end with a newline")
	}
}

func TestList_PrintsWorkingCopies(t *testing.T) {
	root := t.TempDir()
	for _, marker := range []string{
		filepath.Join("github.com", "alice", "one", ".git"),
		filepath.Join("hg.example.com", "two", ".hg"),
		filepath.Join("svn", "three", ".svn"),
	} {
		if err := os.MkdirAll(filepath.Join(root, marker), 0755); err != nil {
			t.Fatal(err)
		}
	}

	got := execute(t, root, "list", "--scan", root, "--format", "default", "--status=false")
	want := "github.com/alice/one\nhg.example.com/two\nsvn/three\n"
	if got != want {
		t.Errorf("list output = %q, want %q", got, want)
	}

	got = execute(t, root, "list", "--scan", root, "--format", "unique", "--status=false", "one")
	if got != "one\n" {
		t.Errorf("filtered list output = %q, want %q", got, "one\n")
	}
}

func TestList_StatusReportsBackendErrors(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "svn", "wc", ".svn"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", t.TempDir())

	got := execute(t, root, "list", "--scan", root, "--format", "default", "--status")
	if got != "svn/wc  [svn](error)\n" {
		t.Errorf("list --status output = %q", got)
	}
}
