package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/diffscope/fixturegen/internal/model"
)

// pageThreshold is the rendered line count above which output goes through
// the pager instead of plain printing.
const pageThreshold = 40

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	spinner spinner.Model
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &TUI{output: output, spinner: sp}
}

// DisplayCatalog shows the scenario catalog, paged when it is long.
func (t *TUI) DisplayCatalog(ctx context.Context, scenarios []m.Scenario) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(renderCatalogTable(scenarios))
}

// DisplayStageStarted shows an in-progress marker for the stage.
func (t *TUI) DisplayStageStarted(ctx context.Context, scenario, stage string) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(t.output, "%s building %s/%s\n", t.spinner.View(), scenario, stage)
}

// DisplayStageResult prints the outcome of one stage.
func (t *TUI) DisplayStageResult(ctx context.Context, res m.BuildResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if res.Skipped {
		fmt.Fprintf(t.output, "  %s %s/%s already at %s\n",
			faintStyle.Render("skip"), res.Scenario, res.Stage, shortSHA(res.SHA))
		return
	}

	fmt.Fprintf(t.output, "  %s %s/%s -> %s (%d file op(s))\n",
		okStyle.Render("done"), res.Scenario, res.Stage, shortSHA(res.SHA), res.Files)
}

// DisplayBuildSummary prints the build totals.
func (t *TUI) DisplayBuildSummary(ctx context.Context, results []m.BuildResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	built, skipped := countResults(results)
	fmt.Fprintf(t.output, "\n%s %d stage(s) committed, %d skipped\n",
		headerStyle.Render("build:"), built, skipped)
}

// DisplayVerifyReport shows the findings, paged when the table is long.
func (t *TUI) DisplayVerifyReport(ctx context.Context, report m.VerifyReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(renderVerifyReport(report))
}

// DisplayScenarioDiffs shows the stage diffs, paged when they are long.
func (t *TUI) DisplayScenarioDiffs(ctx context.Context, sc m.Scenario, diffs []m.StageDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(renderScenarioDiffs(sc, diffs))
}

// page prints short content directly and hands long content to a viewport
// pager in the alternate screen.
func (t *TUI) page(content string) error {
	if strings.Count(content, "\n") <= pageThreshold {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(content), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel scrolls pre-rendered content in a viewport.
type pagerModel struct {
	content string
	view    viewport.Model
	ready   bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		footerHeight := 1

		if !p.ready {
			p.view = viewport.New(msg.Width, msg.Height-footerHeight)
			p.view.SetContent(p.content)
			p.ready = true
		} else {
			p.view.Width = msg.Width
			p.view.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading..."
	}

	footer := faintStyle.Render(fmt.Sprintf(" %3.f%% (q to quit)", p.view.ScrollPercent()*100))

	return p.view.View() + "\n" + footer
}
