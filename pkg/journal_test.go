package pkg

import (
	"path/filepath"
	"testing"
)

type record struct {
	Scenario string
	Stage    string
	SHA      string
}

func TestJournal_AppendAndRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.journal")

	journal, err := OpenJournal[record](path)
	if err != nil {
		t.Fatalf("OpenJournal error: %v", err)
	}

	items := []record{
		{Scenario: "body-changes", Stage: "baseline", SHA: "aaa"},
		{Scenario: "body-changes", Stage: "edit-bodies", SHA: "bbb"},
		{Scenario: "file-move", Stage: "baseline", SHA: "ccc"},
	}

	for _, item := range items {
		if err := journal.Append(item); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	if got := journal.Len(); got != uint64(len(items)) {
		t.Errorf("Len() = %d, want %d", got, len(items))
	}

	if journal.Path() != path {
		t.Errorf("Path() = %s, want %s", journal.Path(), path)
	}

	var seen []record

	err = journal.Range(func(index uint64, item record) error {
		if index != uint64(len(seen)) {
			t.Errorf("index = %d, want %d", index, len(seen))
		}

		seen = append(seen, item)

		return nil
	})
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}

	if len(seen) != len(items) {
		t.Fatalf("Range visited %d items, want %d", len(seen), len(items))
	}

	for i, item := range items {
		if seen[i] != item {
			t.Errorf("item %d = %+v, want %+v", i, seen[i], item)
		}
	}

	if err := journal.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestJournal_ReopenTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.journal")

	journal, err := OpenJournal[record](path)
	if err != nil {
		t.Fatalf("OpenJournal error: %v", err)
	}

	if err := journal.Append(record{Scenario: "body-changes"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if err := journal.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	journal, err = OpenJournal[record](path)
	if err != nil {
		t.Fatalf("second OpenJournal error: %v", err)
	}

	defer func() {
		if err := journal.Close(); err != nil {
			t.Errorf("Close error: %v", err)
		}
	}()

	if got := journal.Len(); got != 0 {
		t.Errorf("Len() after reopen = %d, want 0", got)
	}

	err = journal.Range(func(index uint64, item record) error {
		t.Errorf("unexpected item %d after truncation: %+v", index, item)
		return nil
	})
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}
}
