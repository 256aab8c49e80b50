package model

// OpKind discriminates the file operations a stage can apply.
type OpKind int

const (
	// OpWrite creates or overwrites a file with rendered content.
	OpWrite OpKind = iota
	// OpMove renames a tracked file (git mv).
	OpMove
	// OpDelete removes a tracked file (git rm).
	OpDelete
)

// FileOp is a single change a stage applies to the corpus working tree.
type FileOp struct {
	Kind     OpKind
	Language Language
	Path     Path   // corpus-relative
	NewPath  Path   // move target, OpMove only
	Content  string // rendered file content, OpWrite only
}

// Stage is one commit-to-be: a named step of a scenario with the file
// operations it applies and the commit summary that documents it.
type Stage struct {
	Slug    string
	Summary string
	Ops     []FileOp
}

// Paths returns the corpus-relative paths this stage touches, in op order.
// Move operations contribute the target path.
func (s Stage) Paths() []Path {
	paths := make([]Path, 0, len(s.Ops))

	for _, op := range s.Ops {
		if op.Kind == OpMove {
			paths = append(paths, op.NewPath)
			continue
		}

		paths = append(paths, op.Path)
	}

	return paths
}

// Languages returns the deduplicated languages this stage touches, in
// first-seen order.
func (s Stage) Languages() []Language {
	seen := make(map[Language]struct{}, len(s.Ops))

	var langs []Language

	for _, op := range s.Ops {
		if _, ok := seen[op.Language]; ok {
			continue
		}

		seen[op.Language] = struct{}{}
		langs = append(langs, op.Language)
	}

	return langs
}

// Scenario is one catalog test case: an ordered sequence of stages that a
// build turns into commits.
type Scenario struct {
	ID        string
	Title     string
	Kind      ChangeKind
	Languages []Language
	Stages    []Stage
}

// Claims reports whether the scenario covers the given language.
func (sc Scenario) Claims(lang Language) bool {
	for _, l := range sc.Languages {
		if l == lang {
			return true
		}
	}

	return false
}

// Restrict returns a copy of the scenario with operations limited to the
// given languages. Stages left without operations are dropped. An empty
// filter returns the scenario unchanged.
func (sc Scenario) Restrict(langs []Language) Scenario {
	if len(langs) == 0 {
		return sc
	}

	allowed := make(map[Language]struct{}, len(langs))
	for _, l := range langs {
		allowed[l] = struct{}{}
	}

	out := Scenario{ID: sc.ID, Title: sc.Title, Kind: sc.Kind}

	for _, l := range sc.Languages {
		if _, ok := allowed[l]; ok {
			out.Languages = append(out.Languages, l)
		}
	}

	for _, stage := range sc.Stages {
		kept := Stage{Slug: stage.Slug, Summary: stage.Summary}

		for _, op := range stage.Ops {
			if _, ok := allowed[op.Language]; ok {
				kept.Ops = append(kept.Ops, op)
			}
		}

		if len(kept.Ops) > 0 {
			out.Stages = append(out.Stages, kept)
		}
	}

	return out
}
