package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/diffscope/fixturegen/internal/adapter"
	m "github.com/diffscope/fixturegen/internal/model"
)

// buildWhitespaceCorpus materializes the whitespace-changes scenario and
// returns the corpus root.
func buildWhitespaceCorpus(t *testing.T) string {
	t.Helper()

	corpus := filepath.Join(t.TempDir(), "corpus")

	err := newCorpusWorkflow(&recordingUI{}).Build(context.Background(), BuildArgs{
		Corpus:      m.Path(corpus),
		ScenarioIDs: []string{"whitespace-changes"},
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	return corpus
}

func TestWorkflow_Verify_CleanCorpus(t *testing.T) {
	corpus := buildWhitespaceCorpus(t)
	ui := &recordingUI{}

	report, err := newCorpusWorkflow(ui).Verify(context.Background(), VerifyArgs{Corpus: m.Path(corpus)})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if report.Failed() {
		t.Errorf("clean corpus must verify, findings: %+v", report.Findings)
	}

	if report.Entries == 0 {
		t.Errorf("expected checked entries")
	}

	if len(ui.reports) != 1 {
		t.Errorf("expected the report to be displayed")
	}
}

func TestWorkflow_Verify_ForgedSHA(t *testing.T) {
	corpus := buildWhitespaceCorpus(t)
	store := adapter.NewLocalMapStore()

	doc, err := store.Load(m.Path(corpus))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	doc.Entries[0].SHA = "0a1b2c3d4e5f60718293a4b5c6d7e8f901234567"

	if err := store.Save(m.Path(corpus), doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	report, err := newCorpusWorkflow(&recordingUI{}).Verify(context.Background(), VerifyArgs{Corpus: m.Path(corpus)})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if !report.Failed() {
		t.Fatalf("expected verification to fail")
	}

	if !hasFinding(report, "commit-exists", m.SeverityError) {
		t.Errorf("expected a commit-exists error, findings: %+v", report.Findings)
	}
}

func TestWorkflow_Verify_MissingFile(t *testing.T) {
	corpus := buildWhitespaceCorpus(t)
	store := adapter.NewLocalMapStore()

	doc, err := store.Load(m.Path(corpus))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	doc.Entries[0].Files = append(doc.Entries[0].Files, "python/phantom.py")

	if err := store.Save(m.Path(corpus), doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	report, err := newCorpusWorkflow(&recordingUI{}).Verify(context.Background(), VerifyArgs{Corpus: m.Path(corpus)})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if !hasFinding(report, "file-at-commit", m.SeverityError) {
		t.Errorf("expected a file-at-commit error, findings: %+v", report.Findings)
	}
}

func TestWorkflow_Verify_UncoveredLanguage(t *testing.T) {
	corpus := buildWhitespaceCorpus(t)
	store := adapter.NewLocalMapStore()

	doc, err := store.Load(m.Path(corpus))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	doc.Entries[0].Languages = append(doc.Entries[0].Languages, m.LangJava)

	if err := store.Save(m.Path(corpus), doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	report, err := newCorpusWorkflow(&recordingUI{}).Verify(context.Background(), VerifyArgs{Corpus: m.Path(corpus)})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if !hasFinding(report, "language-parallel", m.SeverityError) {
		t.Errorf("expected a language-parallel error, findings: %+v", report.Findings)
	}
}

func TestWorkflow_Verify_PlaceholderWarns(t *testing.T) {
	corpus := buildWhitespaceCorpus(t)
	store := adapter.NewLocalMapStore()

	doc, err := store.Load(m.Path(corpus))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	doc.Entries = append(doc.Entries, m.Entry{
		Description: "Planned stage",
		SHA:         m.PlaceholderSHA,
		Kind:        m.ChangeBody,
		Scenario:    "body-changes",
		Stage:       "planned",
	})

	if err := store.Save(m.Path(corpus), doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	report, err := newCorpusWorkflow(&recordingUI{}).Verify(context.Background(), VerifyArgs{Corpus: m.Path(corpus)})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if report.Failed() {
		t.Errorf("placeholders must not fail verification, findings: %+v", report.Findings)
	}

	if !hasFinding(report, "sha-recorded", m.SeverityWarning) {
		t.Errorf("expected a sha-recorded warning, findings: %+v", report.Findings)
	}
}

func TestWorkflow_Verify_RequiresRepository(t *testing.T) {
	_, err := newCorpusWorkflow(&recordingUI{}).Verify(
		context.Background(),
		VerifyArgs{Corpus: m.Path(t.TempDir())},
	)
	if err == nil {
		t.Fatalf("expected an error for a corpus without a repository")
	}
}

func hasFinding(report m.VerifyReport, check string, severity m.Severity) bool {
	for _, f := range report.Findings {
		if f.Check == check && f.Severity == severity {
			return true
		}
	}

	return false
}
