package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// docstringChanges exercises comment-only edits: docstrings and doc comments
// change while every signature and body stays byte-identical.
func docstringChanges() m.Scenario {
	return m.Scenario{
		ID:        "docstring-changes",
		Title:     "Docstring and comment changes",
		Kind:      m.ChangeDocstring,
		Languages: []m.Language{m.LangPython, m.LangJavaScript, m.LangJava},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add docstring change samples",
				Ops: []m.FileOp{
					write(m.LangPython, "docstring_changes", pyDocstringBefore),
					write(m.LangJavaScript, "docstring_changes", jsDocstringBefore),
					write(m.LangJava, "DocstringChanges", javaDocstringBefore),
				},
			},
			{
				Slug:    "modify-docstrings",
				Summary: "Rewrite docstrings without touching code",
				Ops: []m.FileOp{
					write(m.LangPython, "docstring_changes", pyDocstringAfter),
					write(m.LangJavaScript, "docstring_changes", jsDocstringAfter),
					write(m.LangJava, "DocstringChanges", javaDocstringAfter),
				},
			},
		},
	}
}

const pyDocstringBefore = `"""Functions whose docstrings change in a later commit."""


def simple_docstring():
    """A short docstring."""
    return "Hello, world!"


def detailed_docstring(a, b):
    """Combine two values.

    Args:
        a: First value
        b: Second value

    Returns:
        A dictionary holding both values.
    """
    return {"a": a, "b": b}
`

const pyDocstringAfter = `"""Functions whose docstrings change in a later commit.

Updated with more comprehensive information.
"""


def simple_docstring():
    """A short docstring, now rewritten to exercise comment-only diffs."""
    return "Hello, world!"


def detailed_docstring(a, b):
    """Combine two values into a dictionary.

    Args:
        a (Any): First value, stored under key 'a'.
        b (Any): Second value, stored under key 'b'.

    Returns:
        dict: A dictionary holding both values keyed by parameter name.
    """
    return {"a": a, "b": b}
`

const jsDocstringBefore = `/**
 * Functions whose doc comments change in a later commit.
 */

/**
 * A short doc comment.
 */
function simpleDoc() {
  return 'Hello, world!';
}

/**
 * Combine two values.
 * @param a First value
 * @param b Second value
 */
function detailedDoc(a, b) {
  return { a: a, b: b };
}

module.exports = { simpleDoc, detailedDoc };
`

const jsDocstringAfter = `/**
 * Functions whose doc comments change in a later commit.
 * Updated with more comprehensive information.
 */

/**
 * A short doc comment, now rewritten to exercise comment-only diffs.
 */
function simpleDoc() {
  return 'Hello, world!';
}

/**
 * Combine two values into an object keyed by parameter name.
 * @param {*} a - First value, stored under key a.
 * @param {*} b - Second value, stored under key b.
 * @returns {{a: *, b: *}} An object holding both values.
 */
function detailedDoc(a, b) {
  return { a: a, b: b };
}

module.exports = { simpleDoc, detailedDoc };
`

const javaDocstringBefore = `/**
 * Methods whose Javadoc changes in a later commit.
 */
public class DocstringChanges {

    /**
     * A short Javadoc comment.
     */
    public static String simpleDoc() {
        return "Hello, world!";
    }

    /**
     * Combine two values.
     * @param a first value
     * @param b second value
     */
    public static String detailedDoc(String a, String b) {
        return a + ":" + b;
    }
}
`

const javaDocstringAfter = `/**
 * Methods whose Javadoc changes in a later commit.
 * Updated with more comprehensive information.
 */
public class DocstringChanges {

    /**
     * A short Javadoc comment, now rewritten to exercise comment-only diffs.
     */
    public static String simpleDoc() {
        return "Hello, world!";
    }

    /**
     * Combine two values into a colon-separated string.
     * @param a first value, placed before the separator
     * @param b second value, placed after the separator
     * @return the combined string
     */
    public static String detailedDoc(String a, String b) {
        return a + ":" + b;
    }
}
`
