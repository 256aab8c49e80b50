package catalog

import (
	"strings"
	"testing"

	m "github.com/diffscope/fixturegen/internal/model"
)

func TestAll_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)

	for _, sc := range All() {
		if sc.ID == "" {
			t.Errorf("scenario %q has an empty id", sc.Title)
		}

		if seen[sc.ID] {
			t.Errorf("duplicate scenario id %q", sc.ID)
		}

		seen[sc.ID] = true
	}
}

func TestAll_ScenarioShape(t *testing.T) {
	for _, sc := range All() {
		t.Run(sc.ID, func(t *testing.T) {
			if sc.Title == "" {
				t.Errorf("missing title")
			}

			if sc.Kind == "" {
				t.Errorf("missing change kind")
			}

			if len(sc.Languages) == 0 {
				t.Fatalf("scenario claims no languages")
			}

			if len(sc.Stages) == 0 {
				t.Fatalf("scenario has no stages")
			}

			for _, lang := range sc.Languages {
				if !lang.Valid() {
					t.Errorf("unknown language %q", lang)
				}
			}

			for _, stage := range sc.Stages {
				if stage.Slug == "" || stage.Summary == "" {
					t.Errorf("stage %q missing slug or summary", stage.Slug)
				}

				if len(stage.Ops) == 0 {
					t.Errorf("stage %q has no file operations", stage.Slug)
				}
			}
		})
	}
}

// Every operation must target a file under the directory of a language the
// scenario claims, with the matching extension.
func TestAll_OpsMatchClaimedLanguages(t *testing.T) {
	for _, sc := range All() {
		t.Run(sc.ID, func(t *testing.T) {
			for _, stage := range sc.Stages {
				for _, op := range stage.Ops {
					if !sc.Claims(op.Language) {
						t.Errorf("stage %q uses unclaimed language %q", stage.Slug, op.Language)
					}

					checkSamplePath(t, op.Language, op.Path)

					if op.Kind == m.OpMove {
						checkSamplePath(t, op.Language, op.NewPath)
					}

					if op.Kind == m.OpWrite && op.Content == "" {
						t.Errorf("write of %s has empty content", op.Path)
					}
				}
			}
		})
	}
}

// Replaying the stages in order, every move and delete must reference a file
// written earlier. A build applies operations exactly in this order, so a
// dangling reference would fail at commit time.
func TestAll_StagesReplayCleanly(t *testing.T) {
	for _, sc := range All() {
		t.Run(sc.ID, func(t *testing.T) {
			present := make(map[m.Path]bool)

			for _, stage := range sc.Stages {
				for _, op := range stage.Ops {
					switch op.Kind {
					case m.OpWrite:
						present[op.Path] = true
					case m.OpMove:
						if !present[op.Path] {
							t.Errorf("stage %q moves unknown file %s", stage.Slug, op.Path)
						}

						delete(present, op.Path)
						present[op.NewPath] = true
					case m.OpDelete:
						if !present[op.Path] {
							t.Errorf("stage %q deletes unknown file %s", stage.Slug, op.Path)
						}

						delete(present, op.Path)
					}
				}
			}
		})
	}
}

func TestByID(t *testing.T) {
	for _, id := range IDs() {
		sc, ok := ByID(id)
		if !ok {
			t.Errorf("ByID(%q) not found", id)
			continue
		}

		if sc.ID != id {
			t.Errorf("ByID(%q) returned %q", id, sc.ID)
		}
	}

	if _, ok := ByID("no-such-scenario"); ok {
		t.Errorf("expected lookup miss for unknown id")
	}
}

// The catalog must carry a scenario for language-specific syntax: the sample
// content has to exercise constructs like decorators, generators, context
// managers, properties and lambdas rather than plain functions.
func TestLanguageFeaturesScenario(t *testing.T) {
	sc, ok := ByID("language-features")
	if !ok {
		t.Fatalf("language-features missing from the catalog")
	}

	if sc.Kind != m.ChangeLanguageFeatures {
		t.Errorf("Kind = %s, want %s", sc.Kind, m.ChangeLanguageFeatures)
	}

	content := make(map[m.Language]string)

	for _, stage := range sc.Stages {
		for _, op := range stage.Ops {
			if op.Kind == m.OpWrite {
				content[op.Language] += op.Content
			}
		}
	}

	pyConstructs := []string{"@functools.wraps", "yield", "__enter__", "@property", "lambda"}
	for _, want := range pyConstructs {
		if !strings.Contains(content[m.LangPython], want) {
			t.Errorf("python sample missing %q", want)
		}
	}

	jsConstructs := []string{"function*", "yield", "=>", "get value()"}
	for _, want := range jsConstructs {
		if !strings.Contains(content[m.LangJavaScript], want) {
			t.Errorf("javascript sample missing %q", want)
		}
	}
}

func TestIDs_MatchesAll(t *testing.T) {
	ids := IDs()
	all := All()

	if len(ids) != len(all) {
		t.Fatalf("IDs() returned %d ids for %d scenarios", len(ids), len(all))
	}

	for i, sc := range all {
		if ids[i] != sc.ID {
			t.Errorf("ids[%d] = %s, want %s", i, ids[i], sc.ID)
		}
	}
}

func checkSamplePath(t *testing.T, lang m.Language, path m.Path) {
	t.Helper()

	if !strings.HasPrefix(string(path), lang.Dir()+"/") {
		t.Errorf("%s is outside the %s directory", path, lang)
	}

	if !strings.HasSuffix(string(path), "."+lang.Ext()) {
		t.Errorf("%s does not carry the %s extension", path, lang)
	}
}
