package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/diffscope/fixturegen/internal/model"
)

func TestLocalCorpusFSAdapter_WriteCreatesParents(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalCorpusFSAdapter()

	path := fs.JoinPath(root, "python", "sample.py")

	if err := fs.WriteFile(path, []byte("def f():\n    pass\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(got) != "def f():\n    pass\n" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestLocalCorpusFSAdapter_FileInfo(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalCorpusFSAdapter()

	if err := fs.MkdirAll(fs.JoinPath(root, "go"), 0o750); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	info, err := fs.FileInfo(fs.JoinPath(root, "go"))
	if err != nil {
		t.Fatalf("FileInfo error: %v", err)
	}

	if !info.IsDir() {
		t.Errorf("expected a directory")
	}

	if _, err := fs.FileInfo(fs.JoinPath(root, "missing")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLocalCorpusFSAdapter_JoinPath(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()

	got := fs.JoinPath("corpus", "python", "sample.py")
	want := m.Path(filepath.Join("corpus", "python", "sample.py"))

	if got != want {
		t.Errorf("JoinPath = %s, want %s", got, want)
	}
}
