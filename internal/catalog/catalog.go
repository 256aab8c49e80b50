// Package catalog carries the built-in fixture scenarios: for every change
// category the corpus documents, the per-language sample content and the
// ordered stages that a build turns into git commits.
//
// The sample code inside the content blocks is deliberately disposable. It
// only has to be plausible source in its language; the downstream diff
// classifier cares about the shape of the change between stages, not about
// what the functions compute.
package catalog

import (
	"fmt"

	m "github.com/diffscope/fixturegen/internal/model"
)

// All returns the full scenario catalog in build order. The order is stable:
// the commit history a build produces is reproducible apart from SHAs.
func All() []m.Scenario {
	return []m.Scenario{
		bodyChanges(),
		signatureChanges(),
		docstringChanges(),
		whitespaceChanges(),
		functionRenames(),
		nestedFunctions(),
		languageFeatures(),
		classHierarchy(),
		fileMove(),
		fileDelete(),
		crossFileRefactor(),
		largeFunctionRefactor(),
	}
}

// ByID looks up a scenario by its id.
func ByID(id string) (m.Scenario, bool) {
	for _, sc := range All() {
		if sc.ID == id {
			return sc, true
		}
	}

	return m.Scenario{}, false
}

// IDs returns the scenario ids in build order.
func IDs() []string {
	scenarios := All()
	ids := make([]string, 0, len(scenarios))

	for _, sc := range scenarios {
		ids = append(ids, sc.ID)
	}

	return ids
}

// srcPath builds the corpus-relative path for a sample file: the language
// directory plus the base name with the language extension.
func srcPath(lang m.Language, base string) m.Path {
	return m.Path(fmt.Sprintf("%s/%s.%s", lang.Dir(), base, lang.Ext()))
}

// write builds an OpWrite operation for a sample file.
func write(lang m.Language, base, content string) m.FileOp {
	return m.FileOp{
		Kind:     m.OpWrite,
		Language: lang,
		Path:     srcPath(lang, base),
		Content:  content,
	}
}

// move builds an OpMove operation between two base names of one language.
func move(lang m.Language, fromBase, toBase string) m.FileOp {
	return m.FileOp{
		Kind:     m.OpMove,
		Language: lang,
		Path:     srcPath(lang, fromBase),
		NewPath:  srcPath(lang, toBase),
	}
}

// remove builds an OpDelete operation for a sample file.
func remove(lang m.Language, base string) m.FileOp {
	return m.FileOp{
		Kind:     m.OpDelete,
		Language: lang,
		Path:     srcPath(lang, base),
	}
}
