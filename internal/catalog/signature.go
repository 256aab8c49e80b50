package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// signatureChanges exercises signature-level edits: parameters added,
// removed, renamed, and defaults changed, with bodies kept as close to the
// baseline as the new signatures allow.
func signatureChanges() m.Scenario {
	return m.Scenario{
		ID:        "signature-changes",
		Title:     "Function signature changes",
		Kind:      m.ChangeSignature,
		Languages: []m.Language{m.LangPython, m.LangJavaScript, m.LangGo},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add signature change samples",
				Ops: []m.FileOp{
					write(m.LangPython, "signature_changes", pySignatureBefore),
					write(m.LangJavaScript, "signature_changes", jsSignatureBefore),
					write(m.LangGo, "signature_changes", goSignatureBefore),
				},
			},
			{
				Slug:    "modify-signatures",
				Summary: "Add, remove and rename parameters",
				Ops: []m.FileOp{
					write(m.LangPython, "signature_changes", pySignatureAfter),
					write(m.LangJavaScript, "signature_changes", jsSignatureAfter),
					write(m.LangGo, "signature_changes", goSignatureAfter),
				},
			},
		},
	}
}

const pySignatureBefore = `"""Functions whose signatures change in a later commit."""


def param_addition(a, b):
    """Will gain a parameter."""
    return a + b


def param_removal(a, b, c, d):
    """Will lose its trailing parameters."""
    return a + b + c + d


def param_rename(first_num, second_num):
    """Will have both parameters renamed."""
    return first_num * second_num


def default_change(name, greeting="Hello", punctuation="!"):
    """Will have its default values changed."""
    return greeting + ", " + name + punctuation
`

const pySignatureAfter = `"""Functions whose signatures change in a later commit."""


def param_addition(a, b, c=0):
    """Will gain a parameter."""
    return a + b + c


def param_removal(a, b):
    """Will lose its trailing parameters."""
    return a + b


def param_rename(x, y):
    """Will have both parameters renamed."""
    return x * y


def default_change(name, greeting="Hi", punctuation="."):
    """Will have its default values changed."""
    return greeting + ", " + name + punctuation
`

const jsSignatureBefore = `/**
 * Functions whose signatures change in a later commit.
 */

function paramAddition(a, b) {
  return a + b;
}

function paramRemoval(a, b, c, d) {
  return a + b + c + d;
}

function paramRename(firstNum, secondNum) {
  return firstNum * secondNum;
}

function defaultChange(name, greeting = 'Hello') {
  return greeting + ', ' + name + '!';
}

module.exports = { paramAddition, paramRemoval, paramRename, defaultChange };
`

const jsSignatureAfter = `/**
 * Functions whose signatures change in a later commit.
 */

function paramAddition(a, b, c = 0) {
  return a + b + c;
}

function paramRemoval(a, b) {
  return a + b;
}

function paramRename(x, y) {
  return x * y;
}

function defaultChange(name, greeting = 'Hi') {
  return greeting + ', ' + name + '.';
}

module.exports = { paramAddition, paramRemoval, paramRename, defaultChange };
`

const goSignatureBefore = `// Package sigchange holds functions whose signatures change in a later commit.
package sigchange

// ParamAddition will gain a parameter.
func ParamAddition(a, b int) int {
	return a + b
}

// ParamRemoval will lose its trailing parameters.
func ParamRemoval(a, b, c, d int) int {
	return a + b + c + d
}

// ParamRename will have both parameters renamed.
func ParamRename(firstNum, secondNum int) int {
	return firstNum * secondNum
}

// ReturnChange will grow an error return.
func ReturnChange(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
`

const goSignatureAfter = `// Package sigchange holds functions whose signatures change in a later commit.
package sigchange

import "errors"

// ParamAddition will gain a parameter.
func ParamAddition(a, b, c int) int {
	return a + b + c
}

// ParamRemoval will lose its trailing parameters.
func ParamRemoval(a, b int) int {
	return a + b
}

// ParamRename will have both parameters renamed.
func ParamRename(x, y int) int {
	return x * y
}

// ReturnChange will grow an error return.
func ReturnChange(values []int) (int, error) {
	if len(values) == 0 {
		return 0, errors.New("no values")
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return total, nil
}
`
