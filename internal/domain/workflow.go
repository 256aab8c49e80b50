// Package domain implements the fixture corpus workflows: building the git
// history from the scenario catalog, verifying a corpus against its commit
// map, and rendering stage diffs.
package domain

import (
	"context"
	"fmt"

	"github.com/diffscope/fixturegen/internal/adapter"
	"github.com/diffscope/fixturegen/internal/catalog"
	"github.com/diffscope/fixturegen/internal/controller"
	m "github.com/diffscope/fixturegen/internal/model"
)

// BuildArgs parameterizes a corpus build.
type BuildArgs struct {
	Corpus      m.Path
	ScenarioIDs []string     // empty: whole catalog
	Languages   []m.Language // empty: all claimed languages
	DryRun      bool
}

// VerifyArgs parameterizes a corpus verification.
type VerifyArgs struct {
	Corpus  m.Path
	Threads int
}

// ShowArgs parameterizes a scenario diff rendering.
type ShowArgs struct {
	ScenarioID string
	Languages  []m.Language
	Context    int // unified diff context lines
}

// Workflow is the domain entry point the commands drive.
type Workflow interface {
	// Build materializes the selected scenarios as commits and updates the
	// commit map.
	Build(ctx context.Context, args BuildArgs) error

	// Verify runs the commit-map integrity checks against an existing corpus.
	// The returned report carries the findings; err is reserved for
	// infrastructure failures.
	Verify(ctx context.Context, args VerifyArgs) (m.VerifyReport, error)

	// List displays the scenario catalog.
	List(ctx context.Context) error

	// Show displays the per-stage diffs of one scenario.
	Show(ctx context.Context, args ShowArgs) error
}

type workflow struct {
	fs   adapter.CorpusFSAdapter
	git  adapter.GitAdapter
	maps adapter.MapStore
	ui   controller.UI
}

// NewWorkflow wires the workflow with its adapters and UI.
func NewWorkflow(
	fs adapter.CorpusFSAdapter,
	git adapter.GitAdapter,
	maps adapter.MapStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:   fs,
		git:  git,
		maps: maps,
		ui:   ui,
	}
}

// List displays the scenario catalog.
func (w *workflow) List(ctx context.Context) error {
	return w.ui.DisplayCatalog(ctx, catalog.All())
}

// selectScenarios resolves the requested scenario ids against the catalog,
// restricted to the requested languages. Empty selectors mean everything.
func selectScenarios(ids []string, langs []m.Language) ([]m.Scenario, error) {
	for _, lang := range langs {
		if !lang.Valid() {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
	}

	all := catalog.All()

	if len(ids) == 0 {
		return restrictAll(all, langs), nil
	}

	selected := make([]m.Scenario, 0, len(ids))

	for _, id := range ids {
		sc, ok := catalog.ByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", id)
		}

		selected = append(selected, sc)
	}

	return restrictAll(selected, langs), nil
}

func restrictAll(scenarios []m.Scenario, langs []m.Language) []m.Scenario {
	out := make([]m.Scenario, 0, len(scenarios))

	for _, sc := range scenarios {
		restricted := sc.Restrict(langs)
		if len(restricted.Stages) > 0 {
			out = append(out, restricted)
		}
	}

	return out
}
