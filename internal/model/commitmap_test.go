package model

import (
	"reflect"
	"testing"
)

func TestEntry_Pending(t *testing.T) {
	tests := []struct {
		name string
		sha  string
		want bool
	}{
		{"empty sha", "", true},
		{"placeholder", PlaceholderSHA, true},
		{"real sha", "0a1b2c3d4e5f60718293a4b5c6d7e8f901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Entry{SHA: tt.sha}).Pending(); got != tt.want {
				t.Errorf("Pending() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocument_Find(t *testing.T) {
	doc := Document{Entries: []Entry{
		{Scenario: "body-changes", Stage: "baseline", SHA: "aaa"},
		{Scenario: "body-changes", Stage: "edit", SHA: "bbb"},
		{Scenario: "file-move", Stage: "baseline", SHA: "ccc"},
	}}

	entry, ok := doc.Find("body-changes", "edit")
	if !ok {
		t.Fatalf("expected to find body-changes/edit")
	}

	if entry.SHA != "bbb" {
		t.Errorf("SHA = %s, want bbb", entry.SHA)
	}

	if _, ok := doc.Find("body-changes", "missing"); ok {
		t.Errorf("did not expect to find body-changes/missing")
	}
}

func TestDocument_Kinds(t *testing.T) {
	doc := Document{Entries: []Entry{
		{Kind: ChangeBaseline},
		{Kind: ChangeBody},
		{Kind: ChangeBaseline},
		{Kind: ChangeRename},
	}}

	got := doc.Kinds()
	want := []ChangeKind{ChangeBaseline, ChangeBody, ChangeRename}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
}
