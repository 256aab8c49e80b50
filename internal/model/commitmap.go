package model

// PlaceholderSHA marks a commit-map entry whose commit has not been created
// yet. Entries carrying it are skipped by verification's SHA checks.
const PlaceholderSHA = "TBD"

// Entry is one commit-map record: a human-readable description of a fixture
// commit, correlated to the SHA git assigned to it. Once the SHA is filled in
// the entry is never mutated.
type Entry struct {
	Description string     `yaml:"description"`
	SHA         string     `yaml:"sha"`
	Kind        ChangeKind `yaml:"kind"`
	Scenario    string     `yaml:"scenario"`
	Stage       string     `yaml:"stage"`
	Languages   []Language `yaml:"languages"`
	Files       []Path     `yaml:"files"`
}

// Pending reports whether the entry still carries the TBD placeholder.
func (e Entry) Pending() bool {
	return e.SHA == "" || e.SHA == PlaceholderSHA
}

// Document is the full commit map: the ordered ledger of fixture commits.
type Document struct {
	Entries []Entry `yaml:"entries"`
}

// Find returns the entry recorded for the given scenario stage, if any.
func (d Document) Find(scenarioID, stageSlug string) (Entry, bool) {
	for _, e := range d.Entries {
		if e.Scenario == scenarioID && e.Stage == stageSlug {
			return e, true
		}
	}

	return Entry{}, false
}

// Kinds returns the deduplicated change kinds present in the document, in
// first-seen order.
func (d Document) Kinds() []ChangeKind {
	seen := make(map[ChangeKind]struct{}, len(d.Entries))

	var kinds []ChangeKind

	for _, e := range d.Entries {
		if _, ok := seen[e.Kind]; ok {
			continue
		}

		seen[e.Kind] = struct{}{}
		kinds = append(kinds, e.Kind)
	}

	return kinds
}
