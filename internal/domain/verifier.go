package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/diffscope/fixturegen/internal/adapter"
	m "github.com/diffscope/fixturegen/internal/model"
)

// DefaultVerifyThreads bounds the concurrent entry checks.
const DefaultVerifyThreads = 8

// Verify runs the commit-map integrity checks against an existing corpus:
// every recorded SHA resolves to a commit, every listed path exists in that
// commit's tree, and every claimed language has a parallel sample file.
// TBD placeholders surface as warnings.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) (m.VerifyReport, error) {
	if err := w.git.Open(args.Corpus); err != nil {
		return m.VerifyReport{}, err
	}

	doc, err := w.maps.Load(args.Corpus)
	if err != nil {
		return m.VerifyReport{}, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = DefaultVerifyThreads
	}

	perEntry := make([][]m.Finding, len(doc.Entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, entry := range doc.Entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// go-git repositories are not documented as safe for concurrent
			// use, so every worker reads through its own handle.
			reader, err := w.git.Reader()
			if err != nil {
				return err
			}

			findings, err := checkEntry(reader, entry)
			if err != nil {
				return err
			}

			perEntry[i] = findings

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.VerifyReport{}, err
	}

	report := m.VerifyReport{Entries: len(doc.Entries)}
	for _, findings := range perEntry {
		report.Findings = append(report.Findings, findings...)
	}

	slog.Info("verification finished",
		"entries", report.Entries,
		"errors", report.Errors(),
		"warnings", report.Warnings(),
	)

	if err := w.ui.DisplayVerifyReport(ctx, report); err != nil {
		return m.VerifyReport{}, err
	}

	return report, nil
}

func checkEntry(git adapter.GitAdapter, entry m.Entry) ([]m.Finding, error) {
	if entry.Pending() {
		return []m.Finding{{
			Scenario: entry.Scenario,
			Stage:    entry.Stage,
			Check:    "sha-recorded",
			Severity: m.SeverityWarning,
			Detail:   "entry still carries the TBD placeholder",
		}}, nil
	}

	ok, err := git.HasCommit(entry.SHA)
	if err != nil {
		return nil, err
	}

	if !ok {
		return []m.Finding{{
			Scenario: entry.Scenario,
			Stage:    entry.Stage,
			Check:    "commit-exists",
			Severity: m.SeverityError,
			Detail:   fmt.Sprintf("commit %s not found in repository history", entry.SHA),
		}}, nil
	}

	var findings []m.Finding

	present := make(map[m.Path]bool, len(entry.Files))

	for _, file := range entry.Files {
		exists, err := git.FileAtCommit(entry.SHA, file)
		if err != nil {
			return nil, err
		}

		present[file] = exists

		// Deletion stages legitimately list paths that are gone at the
		// commit; only write/move targets must exist.
		if !exists && entry.Kind != m.ChangeFileDelete {
			findings = append(findings, m.Finding{
				Scenario: entry.Scenario,
				Stage:    entry.Stage,
				Check:    "file-at-commit",
				Severity: m.SeverityError,
				Detail:   fmt.Sprintf("%s missing from tree of %s", file, shortSHA(entry.SHA)),
			})
		}
	}

	findings = append(findings, checkLanguageCoverage(entry, present)...)

	return findings, nil
}

// checkLanguageCoverage ensures every language the entry claims is backed by
// at least one listed file under that language's directory.
func checkLanguageCoverage(entry m.Entry, present map[m.Path]bool) []m.Finding {
	if entry.Kind == m.ChangeFileDelete {
		return nil
	}

	var findings []m.Finding

	for _, lang := range entry.Languages {
		covered := false

		for _, file := range entry.Files {
			if strings.HasPrefix(string(file), lang.Dir()+"/") && present[file] {
				covered = true
				break
			}
		}

		if !covered {
			findings = append(findings, m.Finding{
				Scenario: entry.Scenario,
				Stage:    entry.Stage,
				Check:    "language-parallel",
				Severity: m.SeverityError,
				Detail:   fmt.Sprintf("claimed language %s has no sample file at %s", lang, shortSHA(entry.SHA)),
			})
		}
	}

	return findings
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}

	return sha
}
