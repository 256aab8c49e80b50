package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// languageFeatures exercises language-specific syntax: decorators, generators,
// context managers, properties and lambdas in Python; generator functions,
// curried arrows and private class fields in JavaScript. The edit stage
// changes bodies inside these constructs so the surrounding syntax is what a
// classifier has to see through.
func languageFeatures() m.Scenario {
	return m.Scenario{
		ID:        "language-features",
		Title:     "Language-specific syntax",
		Kind:      m.ChangeLanguageFeatures,
		Languages: []m.Language{m.LangPython, m.LangJavaScript},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add language feature samples",
				Ops: []m.FileOp{
					write(m.LangPython, "language_features", pyFeaturesBefore),
					write(m.LangJavaScript, "language_features", jsFeaturesBefore),
				},
			},
			{
				Slug:    "modify-features",
				Summary: "Edit bodies inside language-specific constructs",
				Ops: []m.FileOp{
					write(m.LangPython, "language_features", pyFeaturesAfter),
					write(m.LangJavaScript, "language_features", jsFeaturesAfter),
				},
			},
		},
	}
}

const pyFeaturesBefore = `"""Python-specific constructs whose bodies change in a later commit."""

import functools
import time


def log_execution(func):
    """Decorator that announces calls to the wrapped function."""
    @functools.wraps(func)
    def wrapper(*args, **kwargs):
        print("calling", func.__name__)
        return func(*args, **kwargs)
    return wrapper


def tagged(prefix):
    """Decorator factory prefixing string results."""
    def decorator(func):
        @functools.wraps(func)
        def wrapper(*args, **kwargs):
            result = func(*args, **kwargs)
            if isinstance(result, str):
                return prefix + result
            return result
        return wrapper
    return decorator


def fibonacci(n):
    """Yield the first n Fibonacci numbers."""
    a, b = 0, 1
    for _ in range(n):
        yield a
        a, b = b, a + b


class Timer:
    """Context manager timing a block of code."""

    def __enter__(self):
        self.start = time.time()
        return self

    def __exit__(self, exc_type, exc_val, exc_tb):
        self.elapsed = time.time() - self.start


class Celsius:
    """Temperature with a computed fahrenheit accessor."""

    def __init__(self, degrees):
        self._degrees = degrees

    @property
    def fahrenheit(self):
        """Return the temperature in fahrenheit."""
        return self._degrees * 9 / 5 + 32


scale = lambda factor: lambda value: value * factor
`

const pyFeaturesAfter = `"""Python-specific constructs whose bodies change in a later commit."""

import functools
import time


def log_execution(func):
    """Decorator that announces calls to the wrapped function."""
    @functools.wraps(func)
    def wrapper(*args, **kwargs):
        print("calling", func.__name__)
        result = func(*args, **kwargs)
        print("finished", func.__name__)
        return result
    return wrapper


def tagged(prefix):
    """Decorator factory prefixing string results."""
    def decorator(func):
        @functools.wraps(func)
        def wrapper(*args, **kwargs):
            result = func(*args, **kwargs)
            if isinstance(result, str):
                return prefix + ": " + result
            return result
        return wrapper
    return decorator


def fibonacci(n):
    """Yield the first n Fibonacci numbers."""
    a, b = 0, 1
    count = 0
    while count < n:
        yield a
        a, b = b, a + b
        count += 1


class Timer:
    """Context manager timing a block of code."""

    def __enter__(self):
        self.start = time.time()
        return self

    def __exit__(self, exc_type, exc_val, exc_tb):
        self.end = time.time()
        self.elapsed = self.end - self.start


class Celsius:
    """Temperature with a computed fahrenheit accessor."""

    def __init__(self, degrees):
        self._degrees = degrees

    @property
    def fahrenheit(self):
        """Return the temperature in fahrenheit."""
        return round(self._degrees * 9 / 5 + 32, 1)


scale = lambda factor: lambda value: round(value * factor, 2)
`

const jsFeaturesBefore = `/**
 * JavaScript-specific constructs whose bodies change in a later commit.
 */

function* fibonacci(n) {
  let a = 0;
  let b = 1;
  for (let i = 0; i < n; i++) {
    yield a;
    [a, b] = [b, a + b];
  }
}

const scale = (factor) => (value) => value * factor;

function withLogging(fn) {
  return function (...args) {
    console.log('calling ' + fn.name);
    return fn.apply(this, args);
  };
}

class Counter {
  #count = 0;

  get value() {
    return this.#count;
  }

  increment() {
    this.#count += 1;
    return this.#count;
  }
}

module.exports = { fibonacci, scale, withLogging, Counter };
`

const jsFeaturesAfter = `/**
 * JavaScript-specific constructs whose bodies change in a later commit.
 */

function* fibonacci(n) {
  let a = 0;
  let b = 1;
  let produced = 0;
  while (produced < n) {
    yield a;
    [a, b] = [b, a + b];
    produced += 1;
  }
}

const scale = (factor) => (value) => Math.round(value * factor * 100) / 100;

function withLogging(fn) {
  return function (...args) {
    console.log('calling ' + fn.name);
    const result = fn.apply(this, args);
    console.log('finished ' + fn.name);
    return result;
  };
}

class Counter {
  #count = 0;

  get value() {
    return this.#count;
  }

  increment() {
    this.#count = this.#count + 1;
    return this.#count;
  }
}

module.exports = { fibonacci, scale, withLogging, Counter };
`
