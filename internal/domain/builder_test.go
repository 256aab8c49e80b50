package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/diffscope/fixturegen/internal/adapter"
	"github.com/diffscope/fixturegen/internal/catalog"
	m "github.com/diffscope/fixturegen/internal/model"
)

func newCorpusWorkflow(ui *recordingUI) Workflow {
	return NewWorkflow(
		adapter.NewLocalCorpusFSAdapter(),
		adapter.NewLocalGitAdapter("Fixture Tester", "tester@example.com"),
		adapter.NewLocalMapStore(),
		ui,
	)
}

func TestWorkflow_Build_EndToEnd(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "corpus")
	ui := &recordingUI{}
	wf := newCorpusWorkflow(ui)

	err := wf.Build(context.Background(), BuildArgs{
		Corpus:      m.Path(corpus),
		ScenarioIDs: []string{"whitespace-changes"},
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	sc, _ := catalog.ByID("whitespace-changes")

	if len(ui.stageResults) != len(sc.Stages) {
		t.Fatalf("got %d stage results, want %d", len(ui.stageResults), len(sc.Stages))
	}

	for _, res := range ui.stageResults {
		if res.Skipped {
			t.Errorf("fresh build must not skip %s/%s", res.Scenario, res.Stage)
		}

		if res.SHA == "" || res.SHA == m.PlaceholderSHA {
			t.Errorf("stage %s/%s has no SHA", res.Scenario, res.Stage)
		}
	}

	for _, name := range []string{
		adapter.CommitMapMarkdown,
		adapter.CommitMapYAML,
		adapter.CorpusReadme,
		".gitignore",
		JournalName,
	} {
		if _, err := os.Stat(filepath.Join(corpus, name)); err != nil {
			t.Errorf("expected %s at the corpus root: %v", name, err)
		}
	}

	doc, err := adapter.NewLocalMapStore().Load(m.Path(corpus))
	if err != nil {
		t.Fatalf("Load commit map error: %v", err)
	}

	if len(doc.Entries) != len(sc.Stages) {
		t.Fatalf("commit map has %d entries, want %d", len(doc.Entries), len(sc.Stages))
	}

	for _, entry := range doc.Entries {
		if entry.Pending() {
			t.Errorf("entry %s/%s still pending after build", entry.Scenario, entry.Stage)
		}
	}
}

func TestWorkflow_Build_SecondRunSkips(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "corpus")
	args := BuildArgs{Corpus: m.Path(corpus), ScenarioIDs: []string{"whitespace-changes"}}

	if err := newCorpusWorkflow(&recordingUI{}).Build(context.Background(), args); err != nil {
		t.Fatalf("first Build error: %v", err)
	}

	ui := &recordingUI{}
	if err := newCorpusWorkflow(ui).Build(context.Background(), args); err != nil {
		t.Fatalf("second Build error: %v", err)
	}

	if len(ui.stageResults) == 0 {
		t.Fatalf("expected stage results")
	}

	for _, res := range ui.stageResults {
		if !res.Skipped {
			t.Errorf("stage %s/%s rebuilt instead of skipped", res.Scenario, res.Stage)
		}
	}
}

func TestWorkflow_Build_RefusesDirtyWorktree(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "corpus")
	args := BuildArgs{Corpus: m.Path(corpus), ScenarioIDs: []string{"whitespace-changes"}}

	if err := newCorpusWorkflow(&recordingUI{}).Build(context.Background(), args); err != nil {
		t.Fatalf("first Build error: %v", err)
	}

	stray := filepath.Join(corpus, "stray.txt")
	if err := os.WriteFile(stray, []byte("leftover\n"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	err := newCorpusWorkflow(&recordingUI{}).Build(context.Background(), args)
	if err == nil {
		t.Fatalf("expected a pending-changes error")
	}
}

func TestWorkflow_Build_DryRun(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "corpus")
	ui := &recordingUI{}

	err := newCorpusWorkflow(ui).Build(context.Background(), BuildArgs{
		Corpus:      m.Path(corpus),
		ScenarioIDs: []string{"file-move"},
		DryRun:      true,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if _, err := os.Stat(corpus); !os.IsNotExist(err) {
		t.Errorf("dry run must not create the corpus directory, got %v", err)
	}

	if len(ui.summaries) != 1 {
		t.Fatalf("expected one build summary")
	}

	for _, res := range ui.summaries[0] {
		if res.SHA != m.PlaceholderSHA {
			t.Errorf("dry-run result %s/%s carries SHA %q", res.Scenario, res.Stage, res.SHA)
		}
	}
}

func TestWorkflow_Build_SelectionErrors(t *testing.T) {
	wf := newCorpusWorkflow(&recordingUI{})

	t.Run("unknown scenario", func(t *testing.T) {
		err := wf.Build(context.Background(), BuildArgs{ScenarioIDs: []string{"no-such-scenario"}})
		if err == nil {
			t.Errorf("expected an error for an unknown scenario")
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		err := wf.Build(context.Background(), BuildArgs{
			ScenarioIDs: []string{"whitespace-changes"},
			Languages:   []m.Language{m.LangJava},
		})
		if err == nil {
			t.Errorf("expected an error when the selection matches nothing")
		}
	})
}
