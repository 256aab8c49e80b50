package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// fileMove exercises file-level renames: the file moves via git mv while its
// content stays byte-identical, so every function change is a pure
// file-rename from the classifier's point of view.
func fileMove() m.Scenario {
	return m.Scenario{
		ID:        "file-move",
		Title:     "File renames with unchanged content",
		Kind:      m.ChangeFileMove,
		Languages: []m.Language{m.LangPython, m.LangCPP},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add files that will be renamed",
				Ops: []m.FileOp{
					write(m.LangPython, "old_name", pyMovedFile),
					write(m.LangCPP, "old_name", cppMovedFile),
				},
			},
			{
				Slug:    "move-files",
				Summary: "Rename files without changing content",
				Ops: []m.FileOp{
					move(m.LangPython, "old_name", "new_name"),
					move(m.LangCPP, "old_name", "new_name"),
				},
			},
		},
	}
}

// fileDelete exercises file-level deletions.
func fileDelete() m.Scenario {
	return m.Scenario{
		ID:        "file-delete",
		Title:     "File deletions",
		Kind:      m.ChangeFileDelete,
		Languages: []m.Language{m.LangPython, m.LangCPP},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add files that will be deleted",
				Ops: []m.FileOp{
					write(m.LangPython, "to_be_removed", pyRemovedFile),
					write(m.LangCPP, "to_be_removed", cppRemovedFile),
				},
			},
			{
				Slug:    "delete-files",
				Summary: "Delete the marked files",
				Ops: []m.FileOp{
					remove(m.LangPython, "to_be_removed"),
					remove(m.LangCPP, "to_be_removed"),
				},
			},
		},
	}
}

const pyMovedFile = `"""A file that gets renamed with unchanged content."""


def stable_function(value):
    """Return the value squared."""
    return value * value


def another_stable_function(items):
    """Return the items sorted."""
    return sorted(items)
`

const cppMovedFile = `/**
 * A file that gets renamed with unchanged content.
 */

int stable_function(int value) {
    return value * value;
}

int another_stable_function(int a, int b) {
    return a < b ? a : b;
}
`

const pyRemovedFile = `"""A file that gets deleted in a later commit."""


def doomed_function(a, b):
    """Sum two values; the whole file disappears later."""
    return a + b
`

const cppRemovedFile = `/**
 * A file that gets deleted in a later commit.
 */

int doomed_function(int a, int b) {
    return a + b;
}
`
