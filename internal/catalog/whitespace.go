package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// whitespaceChanges exercises whitespace-only edits: indentation and spacing
// shift while the token stream of every function stays the same.
func whitespaceChanges() m.Scenario {
	return m.Scenario{
		ID:        "whitespace-changes",
		Title:     "Whitespace-only changes",
		Kind:      m.ChangeWhitespace,
		Languages: []m.Language{m.LangPython, m.LangTypeScript},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add whitespace change samples",
				Ops: []m.FileOp{
					write(m.LangPython, "whitespace_changes", pyWhitespaceBefore),
					write(m.LangTypeScript, "whitespace_changes", tsWhitespaceBefore),
				},
			},
			{
				Slug:    "modify-whitespace",
				Summary: "Reformat spacing without changing any token",
				Ops: []m.FileOp{
					write(m.LangPython, "whitespace_changes", pyWhitespaceAfter),
					write(m.LangTypeScript, "whitespace_changes", tsWhitespaceAfter),
				},
			},
		},
	}
}

const pyWhitespaceBefore = `"""Functions that only see whitespace changes in a later commit."""


def compact_spacing(a,b,c):
    """Sum three values."""
    result=a+b
    result+=c
    return result


def aligned_spacing(width, height):
    """Compute a rectangle area."""
    area = width * height
    return area
`

const pyWhitespaceAfter = `"""Functions that only see whitespace changes in a later commit."""


def compact_spacing(a, b, c):
    """Sum three values."""
    result = a + b
    result += c
    return result


def aligned_spacing(width,  height):
    """Compute a rectangle area."""
    area    = width * height
    return area
`

const tsWhitespaceBefore = `/**
 * Functions that only see whitespace changes in a later commit.
 */

export function compactSpacing(a:number,b:number,c:number):number{
  let result=a+b;
  result+=c;
  return result;
}

export function alignedSpacing(width: number, height: number): number {
  const area = width * height;
  return area;
}
`

const tsWhitespaceAfter = `/**
 * Functions that only see whitespace changes in a later commit.
 */

export function compactSpacing(a: number, b: number, c: number): number {
  let result = a + b;
  result += c;
  return result;
}

export function alignedSpacing(width: number, height: number): number {
    const area = width * height;
    return area;
}
`
