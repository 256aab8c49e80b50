package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// nestedFunctions exercises changes inside nested and anonymous functions:
// the outer signatures stay fixed while inner definitions gain and change
// behavior.
func nestedFunctions() m.Scenario {
	return m.Scenario{
		ID:        "nested-functions",
		Title:     "Nested and anonymous function changes",
		Kind:      m.ChangeNested,
		Languages: []m.Language{m.LangPython, m.LangJavaScript},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add nested function samples",
				Ops: []m.FileOp{
					write(m.LangPython, "nested_functions", pyNestedBefore),
					write(m.LangJavaScript, "nested_functions", jsNestedBefore),
				},
			},
			{
				Slug:    "modify-inner",
				Summary: "Change inner function bodies and add a closure method",
				Ops: []m.FileOp{
					write(m.LangPython, "nested_functions", pyNestedAfter),
					write(m.LangJavaScript, "nested_functions", jsNestedAfter),
				},
			},
		},
	}
}

const pyNestedBefore = `"""Nested function and closure samples."""


def outer_simple(x):
    """Outer function with one nested helper."""
    def inner(y):
        """Add the captured x to y."""
        return x + y

    return inner(10)


def create_counter():
    """Build a counter closure with increment and get."""
    count = 0

    def increment():
        nonlocal count
        count += 1
        return count

    def get_count():
        return count

    return {"increment": increment, "get_count": get_count}
`

const pyNestedAfter = `"""Nested function and closure samples."""


def outer_simple(x):
    """Outer function with one nested helper."""
    def inner(y):
        """Add the captured x to y, doubled."""
        return (x + y) * 2

    return inner(10)


def create_counter():
    """Build a counter closure with increment, get and reset."""
    count = 0

    def increment():
        nonlocal count
        count += 1
        return count

    def get_count():
        return count

    def reset():
        nonlocal count
        count = 0
        return count

    return {"increment": increment, "get_count": get_count, "reset": reset}
`

const jsNestedBefore = `/**
 * Nested and anonymous function samples.
 */

function outerSimple(x) {
  function inner(y) {
    return x + y;
  }
  return inner(10);
}

function createCounter() {
  let count = 0;
  return {
    increment: function () {
      count += 1;
      return count;
    },
    getCount: function () {
      return count;
    },
  };
}

const double = function (values) {
  return values.map(function (v) {
    return v * 2;
  });
};

module.exports = { outerSimple, createCounter, double };
`

const jsNestedAfter = `/**
 * Nested and anonymous function samples.
 */

function outerSimple(x) {
  function inner(y) {
    return (x + y) * 2;
  }
  return inner(10);
}

function createCounter() {
  let count = 0;
  return {
    increment: function () {
      count += 1;
      return count;
    },
    getCount: function () {
      return count;
    },
    reset: function () {
      count = 0;
      return count;
    },
  };
}

const double = function (values) {
  return values.map(function (v) {
    return v + v;
  });
};

module.exports = { outerSimple, createCounter, double };
`
