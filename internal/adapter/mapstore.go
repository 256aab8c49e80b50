package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/diffscope/fixturegen/internal/model"
)

// Commit-map artifacts at the corpus root.
const (
	CommitMapMarkdown = "COMMIT_MAP.md"
	CommitMapYAML     = "commit_map.yaml"
	CorpusReadme      = "README.md"
)

// MapStore persists the commit map. The markdown file is the human-readable
// artifact; the yaml mirror is what Load prefers, falling back to parsing the
// markdown when the mirror is missing.
type MapStore interface {
	Save(root m.Path, doc m.Document) error
	Load(root m.Path) (m.Document, error)
}

// LocalMapStore is the disk-backed MapStore.
type LocalMapStore struct{}

// NewLocalMapStore constructs a LocalMapStore.
func NewLocalMapStore() *LocalMapStore {
	return &LocalMapStore{}
}

// Save renders COMMIT_MAP.md, commit_map.yaml and the corpus README.md under
// root.
func (s *LocalMapStore) Save(root m.Path, doc m.Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal commit map: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(root), CommitMapYAML), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", CommitMapYAML, err)
	}

	markdown := renderCommitMap(doc)
	if err := os.WriteFile(filepath.Join(string(root), CommitMapMarkdown), []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", CommitMapMarkdown, err)
	}

	readme := renderReadme(doc)
	if err := os.WriteFile(filepath.Join(string(root), CorpusReadme), []byte(readme), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", CorpusReadme, err)
	}

	return nil
}

// Load reads the commit map back, preferring the yaml mirror.
func (s *LocalMapStore) Load(root m.Path) (m.Document, error) {
	data, err := os.ReadFile(filepath.Join(string(root), CommitMapYAML))
	if err == nil {
		var doc m.Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return m.Document{}, fmt.Errorf("parse %s: %w", CommitMapYAML, err)
		}

		return doc, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return m.Document{}, fmt.Errorf("read %s: %w", CommitMapYAML, err)
	}

	data, err = os.ReadFile(filepath.Join(string(root), CommitMapMarkdown))
	if err != nil {
		return m.Document{}, fmt.Errorf("read %s: %w", CommitMapMarkdown, err)
	}

	return parseCommitMap(string(data))
}

func renderCommitMap(doc m.Document) string {
	var b strings.Builder

	b.WriteString("# Commit Map\n\n")
	b.WriteString("Ledger correlating fixture commits to the test scenario each one represents.\n")
	b.WriteString("Entries are appended by fixturegen and never edited once the SHA is filled in.\n")

	for _, kind := range doc.Kinds() {
		fmt.Fprintf(&b, "\n## %s\n\n", kind)
		b.WriteString("| Commit | Scenario | Stage | Description | Languages | Files |\n")
		b.WriteString("|--------|----------|-------|-------------|-----------|-------|\n")

		for _, e := range doc.Entries {
			if e.Kind != kind {
				continue
			}

			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				e.SHA,
				e.Scenario,
				e.Stage,
				e.Description,
				joinLanguages(e.Languages),
				joinPaths(e.Files),
			)
		}
	}

	return b.String()
}

func renderReadme(doc m.Document) string {
	var b strings.Builder

	b.WriteString("# DiffScope fixture corpus\n\n")
	b.WriteString("Generated sample files and a git history exercising one change category per\n")
	b.WriteString("commit. See COMMIT_MAP.md for the commit-by-commit ledger.\n\n")
	b.WriteString("## Test-case categories\n\n")

	for _, kind := range doc.Kinds() {
		count := 0

		for _, e := range doc.Entries {
			if e.Kind == kind {
				count++
			}
		}

		fmt.Fprintf(&b, "- **%s**: %d commit(s)\n", kind, count)
	}

	return b.String()
}

func joinLanguages(langs []m.Language) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		parts = append(parts, string(l))
	}

	return strings.Join(parts, ", ")
}

func joinPaths(paths []m.Path) string {
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, string(p))
	}

	return strings.Join(parts, "<br>")
}

// parseCommitMap reconstructs a Document from the markdown tables. Only used
// when the yaml mirror is missing (e.g. a hand-maintained corpus).
func parseCommitMap(markdown string) (m.Document, error) {
	var doc m.Document

	var kind m.ChangeKind

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "## ") {
			kind = m.ChangeKind(strings.TrimSpace(strings.TrimPrefix(line, "## ")))
			continue
		}

		if !strings.HasPrefix(line, "|") || strings.HasPrefix(line, "| Commit") || strings.HasPrefix(line, "|---") || strings.HasPrefix(line, "|--") {
			continue
		}

		cells := splitRow(line)
		if len(cells) != 6 {
			return m.Document{}, fmt.Errorf("malformed commit map row: %q", line)
		}

		entry := m.Entry{
			SHA:         cells[0],
			Scenario:    cells[1],
			Stage:       cells[2],
			Description: cells[3],
			Kind:        kind,
		}

		for _, lang := range strings.Split(cells[4], ",") {
			lang = strings.TrimSpace(lang)
			if lang != "" {
				entry.Languages = append(entry.Languages, m.Language(lang))
			}
		}

		for _, file := range strings.Split(cells[5], "<br>") {
			file = strings.TrimSpace(file)
			if file != "" {
				entry.Files = append(entry.Files, m.Path(file))
			}
		}

		doc.Entries = append(doc.Entries, entry)
	}

	return doc, nil
}

func splitRow(line string) []string {
	trimmed := strings.Trim(line, "|")
	raw := strings.Split(trimmed, "|")

	cells := make([]string, 0, len(raw))
	for _, c := range raw {
		cells = append(cells, strings.TrimSpace(c))
	}

	return cells
}
