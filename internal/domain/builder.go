package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/diffscope/fixturegen/pkg"

	"github.com/diffscope/fixturegen/internal/adapter"
	m "github.com/diffscope/fixturegen/internal/model"
)

// JournalName is the build trail file at the corpus root. It is git-ignored
// so it never dirties the worktree between runs.
const JournalName = ".fixturegen.journal"

const gitignoreContent = JournalName + "\n"

// Build materializes the selected scenarios: one commit per stage, recorded
// in the commit map, plus a final documentation commit for the map artifacts.
func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	scenarios, err := selectScenarios(args.ScenarioIDs, args.Languages)
	if err != nil {
		return err
	}

	if len(scenarios) == 0 {
		return errors.New("selection matches no scenarios")
	}

	if args.DryRun {
		return w.dryRun(ctx, scenarios)
	}

	if err := w.prepareRepo(args.Corpus); err != nil {
		return err
	}

	doc, err := w.loadDocument(args.Corpus)
	if err != nil {
		return err
	}

	journal, err := pkg.OpenJournal[m.BuildResult](string(w.fs.JoinPath(string(args.Corpus), JournalName)))
	if err != nil {
		return err
	}

	defer func() {
		if err := journal.Close(); err != nil {
			slog.Warn("failed to close build journal", "error", err)
		}
	}()

	var results []m.BuildResult

	for _, sc := range scenarios {
		for _, stage := range sc.Stages {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := w.buildStage(ctx, args.Corpus, &doc, sc, stage)
			if err != nil {
				return err
			}

			if !res.Skipped {
				if err := journal.Append(res); err != nil {
					return err
				}
			}

			results = append(results, res)
			w.ui.DisplayStageResult(ctx, res)
		}
	}

	if err := w.commitDocs(args.Corpus, doc); err != nil {
		return err
	}

	w.ui.DisplayBuildSummary(ctx, results)

	return nil
}

// prepareRepo opens or initializes the corpus repository and refuses to run
// on a dirty worktree, mirroring the manual workflow's pending-changes check.
func (w *workflow) prepareRepo(corpus m.Path) error {
	if err := w.fs.MkdirAll(corpus, 0o750); err != nil {
		return fmt.Errorf("create corpus dir %s: %w", corpus, err)
	}

	created, err := w.git.OpenOrInit(corpus)
	if err != nil {
		return err
	}

	if created {
		gitignore := w.fs.JoinPath(string(corpus), ".gitignore")
		if err := w.fs.WriteFile(gitignore, []byte(gitignoreContent), 0o644); err != nil {
			return fmt.Errorf("write .gitignore: %w", err)
		}

		if err := w.git.Add(".gitignore"); err != nil {
			return err
		}

		if _, err := w.git.Commit("chore: initialize fixture corpus"); err != nil {
			return err
		}

		return nil
	}

	clean, err := w.git.IsClean()
	if err != nil {
		return err
	}

	if !clean {
		return errors.New("corpus worktree has pending changes, commit or discard them first")
	}

	return nil
}

// loadDocument reads the existing commit map; a corpus without one starts
// empty.
func (w *workflow) loadDocument(corpus m.Path) (m.Document, error) {
	doc, err := w.maps.Load(corpus)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Document{}, nil
		}

		return m.Document{}, err
	}

	return doc, nil
}

// buildStage applies one stage and commits it. Stages whose entry already
// carries a SHA are skipped: entries are never mutated once filled in.
func (w *workflow) buildStage(ctx context.Context, corpus m.Path, doc *m.Document, sc m.Scenario, stage m.Stage) (m.BuildResult, error) {
	w.ui.DisplayStageStarted(ctx, sc.ID, stage.Slug)

	if entry, ok := doc.Find(sc.ID, stage.Slug); ok && !entry.Pending() {
		slog.Debug("stage already committed", "scenario", sc.ID, "stage", stage.Slug, "sha", entry.SHA)

		return m.BuildResult{
			Scenario: sc.ID,
			Stage:    stage.Slug,
			SHA:      entry.SHA,
			Skipped:  true,
			Files:    len(entry.Files),
		}, nil
	}

	for _, op := range stage.Ops {
		if err := w.applyOp(corpus, op); err != nil {
			return m.BuildResult{}, err
		}
	}

	summary := fmt.Sprintf("%s: %s", sc.ID, stage.Summary)

	sha, err := w.git.Commit(summary)
	if err != nil {
		return m.BuildResult{}, err
	}

	doc.Entries = append(doc.Entries, m.Entry{
		Description: stage.Summary,
		SHA:         sha,
		Kind:        sc.Kind,
		Scenario:    sc.ID,
		Stage:       stage.Slug,
		Languages:   stage.Languages(),
		Files:       stage.Paths(),
	})

	slog.Info("committed stage", "scenario", sc.ID, "stage", stage.Slug, "sha", sha)

	return m.BuildResult{
		Scenario: sc.ID,
		Stage:    stage.Slug,
		SHA:      sha,
		Files:    len(stage.Ops),
	}, nil
}

func (w *workflow) applyOp(corpus m.Path, op m.FileOp) error {
	switch op.Kind {
	case m.OpWrite:
		abs := w.fs.JoinPath(string(corpus), string(op.Path))
		if err := w.fs.WriteFile(abs, []byte(op.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", op.Path, err)
		}

		return w.git.Add(op.Path)
	case m.OpMove:
		return w.git.Move(op.Path, op.NewPath)
	case m.OpDelete:
		return w.git.Remove(op.Path)
	}

	return fmt.Errorf("unknown file operation %d", op.Kind)
}

// mapArtifacts lists the documentation files the final commit covers.
func mapArtifacts() []string {
	return []string{adapter.CommitMapMarkdown, adapter.CommitMapYAML, adapter.CorpusReadme}
}

// commitDocs renders the map artifacts and commits them.
func (w *workflow) commitDocs(corpus m.Path, doc m.Document) error {
	if err := w.maps.Save(corpus, doc); err != nil {
		return err
	}

	for _, name := range mapArtifacts() {
		if err := w.git.Add(m.Path(name)); err != nil {
			return err
		}
	}

	clean, err := w.git.IsClean()
	if err != nil {
		return err
	}

	if clean {
		return nil
	}

	if _, err := w.git.Commit("docs: update commit map"); err != nil {
		return err
	}

	return nil
}

// dryRun reports what a build would do without touching disk or git.
func (w *workflow) dryRun(ctx context.Context, scenarios []m.Scenario) error {
	var results []m.BuildResult

	for _, sc := range scenarios {
		for _, stage := range sc.Stages {
			results = append(results, m.BuildResult{
				Scenario: sc.ID,
				Stage:    stage.Slug,
				SHA:      m.PlaceholderSHA,
				Files:    len(stage.Ops),
			})
		}
	}

	w.ui.DisplayBuildSummary(ctx, results)

	return nil
}
