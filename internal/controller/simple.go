package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/diffscope/fixturegen/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	renameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCatalog prints the scenario catalog as a table.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, scenarios []m.Scenario) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Print(renderCatalogTable(scenarios))

	return nil
}

// DisplayStageStarted announces a stage about to be applied.
func (s *SimpleUI) DisplayStageStarted(ctx context.Context, scenario, stage string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.cmd.Printf("building %s/%s ...\n", scenario, stage)
}

// DisplayStageResult prints the outcome of one stage.
func (s *SimpleUI) DisplayStageResult(ctx context.Context, res m.BuildResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if res.Skipped {
		s.cmd.Printf("  %s %s/%s already at %s\n",
			faintStyle.Render("skip"), res.Scenario, res.Stage, shortSHA(res.SHA))
		return
	}

	s.cmd.Printf("  %s %s/%s -> %s (%d file op(s))\n",
		okStyle.Render("done"), res.Scenario, res.Stage, shortSHA(res.SHA), res.Files)
}

// DisplayBuildSummary prints the build totals.
func (s *SimpleUI) DisplayBuildSummary(ctx context.Context, results []m.BuildResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	built, skipped := countResults(results)
	s.cmd.Printf("\n%s %d stage(s) committed, %d skipped\n",
		headerStyle.Render("build:"), built, skipped)
}

// DisplayVerifyReport prints the findings table and totals.
func (s *SimpleUI) DisplayVerifyReport(ctx context.Context, report m.VerifyReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Print(renderVerifyReport(report))

	return nil
}

// DisplayScenarioDiffs prints per-stage unified diffs with styled markers.
func (s *SimpleUI) DisplayScenarioDiffs(ctx context.Context, sc m.Scenario, diffs []m.StageDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Print(renderScenarioDiffs(sc, diffs))

	return nil
}

func renderCatalogTable(scenarios []m.Scenario) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Scenario", "Kind", "Languages", "Stages"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	stageTotal := 0

	for _, sc := range scenarios {
		table.Append([]string{
			sc.ID,
			string(sc.Kind),
			joinLanguages(sc.Languages),
			fmt.Sprintf("%d", len(sc.Stages)),
		})

		stageTotal += len(sc.Stages)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(scenarios)),
		"", "",
		fmt.Sprintf("%d", stageTotal),
	})
	table.Render()

	return buf.String()
}

func renderVerifyReport(report m.VerifyReport) string {
	var b strings.Builder

	if len(report.Findings) > 0 {
		var buf bytes.Buffer

		table := tablewriter.NewWriter(&buf)
		table.SetHeader([]string{"Severity", "Scenario", "Stage", "Check", "Detail"})
		table.SetBorder(false)
		table.SetCenterSeparator("")

		for _, f := range report.Findings {
			severity := f.Severity.String()
			if f.Severity == m.SeverityError {
				severity = errorStyle.Render(severity)
			} else {
				severity = warningStyle.Render(severity)
			}

			table.Append([]string{severity, f.Scenario, f.Stage, f.Check, f.Detail})
		}

		table.Render()
		b.WriteString(buf.String())
	}

	summary := fmt.Sprintf("%d entr(ies) checked, %d error(s), %d warning(s)",
		report.Entries, report.Errors(), report.Warnings())

	if report.Failed() {
		b.WriteString("\n" + errorStyle.Render("verify failed: ") + summary + "\n")
	} else {
		b.WriteString("\n" + okStyle.Render("verify ok: ") + summary + "\n")
	}

	return b.String()
}

func renderScenarioDiffs(sc m.Scenario, diffs []m.StageDiff) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%s - %s", sc.ID, sc.Title)))

	for _, stage := range diffs {
		fmt.Fprintf(&b, "\n%s %s\n", headerStyle.Render("stage:"), stage.Stage)
		fmt.Fprintf(&b, "%s\n", faintStyle.Render(stage.Summary))

		for _, file := range stage.Files {
			switch {
			case file.Renamed:
				fmt.Fprintf(&b, "\n%s\n", renameStyle.Render(
					fmt.Sprintf("renamed %s -> %s", file.Path, file.NewPath)))
			case file.Deleted:
				fmt.Fprintf(&b, "\n%s\n", removedStyle.Render(
					fmt.Sprintf("deleted %s", file.Path)))
				b.WriteString(styleUnified(file.Unified))
			default:
				b.WriteString("\n" + styleUnified(file.Unified))
			}
		}
	}

	return b.String()
}

// styleUnified colors added and removed diff lines.
func styleUnified(unified string) string {
	if unified == "" {
		return faintStyle.Render("(no content change)") + "\n"
	}

	var b strings.Builder

	for _, line := range strings.SplitAfter(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(headerStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		default:
			b.WriteString(line)
		}
	}

	return b.String()
}

func countResults(results []m.BuildResult) (built, skipped int) {
	for _, res := range results {
		if res.Skipped {
			skipped++
		} else {
			built++
		}
	}

	return
}

func joinLanguages(langs []m.Language) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		parts = append(parts, string(l))
	}

	return strings.Join(parts, ", ")
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}

	return sha
}
