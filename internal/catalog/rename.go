package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// functionRenames exercises function-level renames: a pure rename with an
// identical body, and a rename combined with body edits, which downstream
// classifiers treat as a harder pairing problem.
func functionRenames() m.Scenario {
	return m.Scenario{
		ID:        "function-renames",
		Title:     "Function renames",
		Kind:      m.ChangeRename,
		Languages: []m.Language{m.LangPython, m.LangJavaScript, m.LangGo},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add function rename samples",
				Ops: []m.FileOp{
					write(m.LangPython, "renamed_functions", pyRenameBefore),
					write(m.LangJavaScript, "renamed_functions", jsRenameBefore),
					write(m.LangGo, "renamed_functions", goRenameBefore),
				},
			},
			{
				Slug:    "rename-functions",
				Summary: "Rename functions, one with body edits",
				Ops: []m.FileOp{
					write(m.LangPython, "renamed_functions", pyRenameAfter),
					write(m.LangJavaScript, "renamed_functions", jsRenameAfter),
					write(m.LangGo, "renamed_functions", goRenameAfter),
				},
			},
		},
	}
}

const pyRenameBefore = `"""Functions that get renamed in a later commit."""


def old_simple_name(x, y):
    """A pure rename target: the body will not change."""
    return x + y


def old_combined_name(a, b, c=0):
    """A rename target whose body also changes."""
    result = a + b
    if c != 0:
        result += c
    return result
`

const pyRenameAfter = `"""Functions that get renamed in a later commit."""


def new_simple_name(x, y):
    """A pure rename target: the body will not change."""
    return x + y


def new_combined_name(a, b, c=0):
    """A rename target whose body also changes."""
    result = a + b
    if c != 0:
        result += c * 2
    return result
`

const jsRenameBefore = `/**
 * Functions that get renamed in a later commit.
 */

function oldSimpleName(x, y) {
  return x + y;
}

function oldCombinedName(a, b, c) {
  let result = a + b;
  if (c) {
    result += c;
  }
  return result;
}

module.exports = { oldSimpleName, oldCombinedName };
`

const jsRenameAfter = `/**
 * Functions that get renamed in a later commit.
 */

function newSimpleName(x, y) {
  return x + y;
}

function newCombinedName(a, b, c) {
  let result = a + b;
  if (c) {
    result += c * 2;
  }
  return result;
}

module.exports = { newSimpleName, newCombinedName };
`

const goRenameBefore = `// Package renames holds functions that get renamed in a later commit.
package renames

// OldSimpleName is a pure rename target: the body will not change.
func OldSimpleName(x, y int) int {
	return x + y
}

// OldCombinedName is a rename target whose body also changes.
func OldCombinedName(a, b, c int) int {
	result := a + b
	if c != 0 {
		result += c
	}
	return result
}
`

const goRenameAfter = `// Package renames holds functions that get renamed in a later commit.
package renames

// NewSimpleName is a pure rename target: the body will not change.
func NewSimpleName(x, y int) int {
	return x + y
}

// NewCombinedName is a rename target whose body also changes.
func NewCombinedName(a, b, c int) int {
	result := a + b
	if c != 0 {
		result += c * 2
	}
	return result
}
`
