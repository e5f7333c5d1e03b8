package tools_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dok4everak47/aicoder/tools"
)

func TestListFiles_Empty(t *testing.T) {
	dir := t.TempDir()
	in := tools.ListFilesInput{Path: dir}
	b, _ := json.Marshal(in)
	out := tools.ListFilesDefinition.Function(b)
	if out.IsError() {
		t.Fatalf("empty directory should not be an error: %+v", out)
	}
	if out.Content != "Empty directory: "+dir {
		t.Fatalf("got %q", out.Content)
	}
}

func TestListFiles_SortedAndTagged(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("prepare: %v", err)
		}
	}

	in := tools.ListFilesInput{Path: dir}
	b, _ := json.Marshal(in)
	out := tools.ListFilesDefinition.Function(b)
	if out.IsError() {
		t.Fatalf("unexpected error outcome: %+v", out)
	}

	lines := strings.Split(out.Content, "\n")
	want := []string{
		"Contents of " + dir + ":",
		"[file] a.txt",
		"[file] b.txt",
		"[dir]  src/",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out.Content)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestListFiles_PathNotFound(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing")
	in := tools.ListFilesInput{Path: p}
	b, _ := json.Marshal(in)
	out := tools.ListFilesDefinition.Function(b)
	if out.Kind != tools.ErrPathNotFound {
		t.Fatalf("expected ErrPathNotFound, got %+v", out)
	}
	if !strings.Contains(out.Content, "Path not found: "+p) {
		t.Fatalf("unexpected content: %q", out.Content)
	}
}

func TestListFiles_DefaultsToCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "here.txt"), nil, 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	t.Chdir(dir)

	out := tools.ListFilesDefinition.Function(json.RawMessage(`{}`))
	if out.IsError() {
		t.Fatalf("unexpected error outcome: %+v", out)
	}
	if !strings.HasPrefix(out.Content, "Contents of .:") || !strings.Contains(out.Content, "[file] here.txt") {
		t.Fatalf("unexpected content: %q", out.Content)
	}
}
