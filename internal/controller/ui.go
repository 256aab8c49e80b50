// Package controller provides the output adapters for displaying catalog
// listings, build progress, verification reports and stage diffs.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	m "github.com/diffscope/fixturegen/internal/model"
)

// UI defines the interface for displaying workflow output. Implementations
// can use different output methods (simple text, TUI).
type UI interface {
	DisplayCatalog(ctx context.Context, scenarios []m.Scenario) error
	DisplayStageStarted(ctx context.Context, scenario, stage string)
	DisplayStageResult(ctx context.Context, res m.BuildResult)
	DisplayBuildSummary(ctx context.Context, results []m.BuildResult)
	DisplayVerifyReport(ctx context.Context, report m.VerifyReport) error
	DisplayScenarioDiffs(ctx context.Context, sc m.Scenario, diffs []m.StageDiff) error
}

// NewUI picks the UI implementation: the TUI on a terminal, plain output
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
