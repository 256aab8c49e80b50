package domain

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/diffscope/fixturegen/internal/catalog"
	m "github.com/diffscope/fixturegen/internal/model"
)

// DefaultDiffContext is the unified diff context line count.
const DefaultDiffContext = 3

// Show renders the per-stage diffs of one scenario: what each commit will
// look like to the downstream classifier.
func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	sc, ok := catalog.ByID(args.ScenarioID)
	if !ok {
		return fmt.Errorf("unknown scenario %q", args.ScenarioID)
	}

	sc = sc.Restrict(args.Languages)
	if len(sc.Stages) == 0 {
		return fmt.Errorf("scenario %q has no stages for the selected languages", args.ScenarioID)
	}

	diffs, err := StageDiffs(sc, args.Context)
	if err != nil {
		return err
	}

	return w.ui.DisplayScenarioDiffs(ctx, sc, diffs)
}

// StageDiffs replays a scenario's stages over an in-memory worktree and
// renders a unified diff per touched file per stage.
func StageDiffs(sc m.Scenario, contextLines int) ([]m.StageDiff, error) {
	if contextLines <= 0 {
		contextLines = DefaultDiffContext
	}

	state := make(map[m.Path]string)
	diffs := make([]m.StageDiff, 0, len(sc.Stages))

	for _, stage := range sc.Stages {
		stageDiff := m.StageDiff{
			Scenario: sc.ID,
			Stage:    stage.Slug,
			Summary:  stage.Summary,
		}

		for _, op := range stage.Ops {
			fileDiff, err := applyDiffOp(state, op, contextLines)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", sc.ID, stage.Slug, err)
			}

			stageDiff.Files = append(stageDiff.Files, fileDiff)
		}

		diffs = append(diffs, stageDiff)
	}

	return diffs, nil
}

func applyDiffOp(state map[m.Path]string, op m.FileOp, contextLines int) (m.FileDiff, error) {
	switch op.Kind {
	case m.OpWrite:
		before := state[op.Path]
		state[op.Path] = op.Content

		unified, err := unifiedDiff(op.Path, before, op.Content, contextLines)
		if err != nil {
			return m.FileDiff{}, err
		}

		return m.FileDiff{Path: op.Path, Unified: unified}, nil

	case m.OpMove:
		content, ok := state[op.Path]
		if !ok {
			return m.FileDiff{}, fmt.Errorf("move of unknown file %s", op.Path)
		}

		delete(state, op.Path)
		state[op.NewPath] = content

		return m.FileDiff{Path: op.Path, NewPath: op.NewPath, Renamed: true}, nil

	case m.OpDelete:
		before, ok := state[op.Path]
		if !ok {
			return m.FileDiff{}, fmt.Errorf("delete of unknown file %s", op.Path)
		}

		delete(state, op.Path)

		unified, err := unifiedDiff(op.Path, before, "", contextLines)
		if err != nil {
			return m.FileDiff{}, err
		}

		return m.FileDiff{Path: op.Path, Unified: unified, Deleted: true}, nil
	}

	return m.FileDiff{}, fmt.Errorf("unknown file operation %d", op.Kind)
}

func unifiedDiff(path m.Path, before, after string, contextLines int) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  contextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}

	return text, nil
}
