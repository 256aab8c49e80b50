package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/diffscope/fixturegen/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayCatalog(t *testing.T) {
	ui, buf := newBufferedUI()

	scenarios := []m.Scenario{
		{
			ID:        "body-changes",
			Kind:      m.ChangeBody,
			Languages: []m.Language{m.LangPython, m.LangGo},
			Stages:    []m.Stage{{Slug: "baseline"}, {Slug: "edit"}},
		},
		{
			ID:        "file-move",
			Kind:      m.ChangeFileMove,
			Languages: []m.Language{m.LangCPP},
			Stages:    []m.Stage{{Slug: "baseline"}},
		},
	}

	if err := ui.DisplayCatalog(context.Background(), scenarios); err != nil {
		t.Fatalf("DisplayCatalog error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"body-changes", "file-move", "python, go", "Total 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("catalog output missing %q:\n%s", want, got)
		}
	}
}

func TestSimpleUI_DisplayStageResult(t *testing.T) {
	tests := []struct {
		name         string
		res          m.BuildResult
		wantContains []string
	}{
		{
			name:         "committed stage",
			res:          m.BuildResult{Scenario: "body-changes", Stage: "edit", SHA: "0a1b2c3d4e5f60718293a4b5c6d7e8f9", Files: 2},
			wantContains: []string{"done", "body-changes/edit", "0a1b2c3d", "2 file op(s)"},
		},
		{
			name:         "skipped stage",
			res:          m.BuildResult{Scenario: "body-changes", Stage: "edit", SHA: "0a1b2c3d4e5f60718293a4b5c6d7e8f9", Skipped: true},
			wantContains: []string{"skip", "body-changes/edit", "already at 0a1b2c3d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedUI()
			ui.DisplayStageResult(context.Background(), tt.res)

			got := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayBuildSummary(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayBuildSummary(context.Background(), []m.BuildResult{
		{Scenario: "a", Stage: "s1", SHA: "aaa"},
		{Scenario: "a", Stage: "s2", SHA: "bbb"},
		{Scenario: "b", Stage: "s1", SHA: "ccc", Skipped: true},
	})

	got := buf.String()
	if !strings.Contains(got, "2 stage(s) committed, 1 skipped") {
		t.Errorf("unexpected summary:\n%s", got)
	}
}

func TestRenderVerifyReport(t *testing.T) {
	t.Run("clean report", func(t *testing.T) {
		got := renderVerifyReport(m.VerifyReport{Entries: 5})

		if !strings.Contains(got, "verify ok") {
			t.Errorf("expected a verify ok line:\n%s", got)
		}

		if !strings.Contains(got, "5 entr(ies) checked, 0 error(s), 0 warning(s)") {
			t.Errorf("unexpected totals:\n%s", got)
		}
	})

	t.Run("failed report", func(t *testing.T) {
		got := renderVerifyReport(m.VerifyReport{
			Entries: 2,
			Findings: []m.Finding{
				{Scenario: "body-changes", Stage: "edit", Check: "commit-exists", Severity: m.SeverityError, Detail: "commit gone"},
				{Scenario: "file-move", Stage: "baseline", Check: "sha-recorded", Severity: m.SeverityWarning, Detail: "placeholder"},
			},
		})

		for _, want := range []string{"verify failed", "commit-exists", "sha-recorded", "1 error(s), 1 warning(s)"} {
			if !strings.Contains(got, want) {
				t.Errorf("report missing %q:\n%s", want, got)
			}
		}
	})
}

func TestRenderScenarioDiffs(t *testing.T) {
	sc := m.Scenario{ID: "sample", Title: "Sample scenario"}
	diffs := []m.StageDiff{
		{
			Scenario: "sample",
			Stage:    "restructure",
			Summary:  "Move and delete files",
			Files: []m.FileDiff{
				{Path: "python/old.py", NewPath: "python/new.py", Renamed: true},
				{Path: "python/doomed.py", Unified: "--- a/python/doomed.py\n+++ b/python/doomed.py\n@@ -1 +0,0 @@\n-x = 1\n", Deleted: true},
			},
		},
	}

	got := renderScenarioDiffs(sc, diffs)

	for _, want := range []string{
		"sample",
		"restructure",
		"Move and delete files",
		"renamed python/old.py -> python/new.py",
		"deleted python/doomed.py",
		"-x = 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("diff output missing %q:\n%s", want, got)
		}
	}
}

func TestStyleUnified_Empty(t *testing.T) {
	got := styleUnified("")
	if !strings.Contains(got, "(no content change)") {
		t.Errorf("expected the no-change marker, got %q", got)
	}
}

func TestCountResults(t *testing.T) {
	built, skipped := countResults([]m.BuildResult{
		{Skipped: false},
		{Skipped: true},
		{Skipped: false},
	})

	if built != 2 || skipped != 1 {
		t.Errorf("countResults = (%d, %d), want (2, 1)", built, skipped)
	}
}

func TestShortSHA(t *testing.T) {
	if got := shortSHA("0a1b2c3d4e5f60718293"); got != "0a1b2c3d" {
		t.Errorf("shortSHA = %s", got)
	}

	if got := shortSHA("TBD"); got != "TBD" {
		t.Errorf("short input must pass through, got %s", got)
	}
}
