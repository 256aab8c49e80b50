package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// bodyChanges is the core scenario: every corpus language gets a
// basic_functions sample, then a commit that edits function bodies only.
// Signatures, comments and file layout stay untouched so the downstream
// classifier sees pure body changes.
func bodyChanges() m.Scenario {
	return m.Scenario{
		ID:        "body-changes",
		Title:     "Function body changes",
		Kind:      m.ChangeBody,
		Languages: m.AllLanguages(),
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add basic function samples for all languages",
				Ops: []m.FileOp{
					write(m.LangPython, "basic_functions", pyBasicBefore),
					write(m.LangJavaScript, "basic_functions", jsBasicBefore),
					write(m.LangTypeScript, "basic_functions", tsBasicBefore),
					write(m.LangJava, "BasicFunctions", javaBasicBefore),
					write(m.LangCPP, "basic_functions", cppBasicBefore),
					write(m.LangGo, "basic_functions", goBasicBefore),
				},
			},
			{
				Slug:    "modify-bodies",
				Summary: "Modify function bodies without touching signatures",
				Ops: []m.FileOp{
					write(m.LangPython, "basic_functions", pyBasicAfter),
					write(m.LangJavaScript, "basic_functions", jsBasicAfter),
					write(m.LangTypeScript, "basic_functions", tsBasicAfter),
					write(m.LangJava, "BasicFunctions", javaBasicAfter),
					write(m.LangCPP, "basic_functions", cppBasicAfter),
					write(m.LangGo, "basic_functions", goBasicAfter),
				},
			},
		},
	}
}

const pyBasicBefore = `"""Basic Python functions used as diff-detection targets."""


def add(a, b):
    """Add two numbers and return the result."""
    return a + b


def multiply(a, b):
    """Multiply two numbers and return the result."""
    return a * b


def divide(a, b):
    """Divide a by b.

    Raises:
        ZeroDivisionError: If b is zero.
    """
    if b == 0:
        raise ZeroDivisionError("Cannot divide by zero")
    return a / b


def average(numbers):
    """Return the average of a list of numbers.

    Raises:
        ValueError: If the list is empty.
    """
    if not numbers:
        raise ValueError("Cannot average an empty list")
    return sum(numbers) / len(numbers)


def is_palindrome(text):
    """Check whether text reads the same forwards and backwards."""
    cleaned = text.lower().replace(" ", "")
    return cleaned == cleaned[::-1]
`

const pyBasicAfter = `"""Basic Python functions used as diff-detection targets."""


def add(a, b):
    """Add two numbers and return the result."""
    result = a + b
    return result


def multiply(a, b):
    """Multiply two numbers and return the result."""
    return b * a


def divide(a, b):
    """Divide a by b.

    Raises:
        ZeroDivisionError: If b is zero.
    """
    if b == 0:
        raise ZeroDivisionError("Cannot divide by zero")
    quotient = a / b
    return quotient


def average(numbers):
    """Return the average of a list of numbers.

    Raises:
        ValueError: If the list is empty.
    """
    if not numbers:
        raise ValueError("Cannot average an empty list")
    total = sum(numbers)
    count = len(numbers)
    return total / count


def is_palindrome(text):
    """Check whether text reads the same forwards and backwards."""
    cleaned = "".join(ch for ch in text.lower() if not ch.isspace())
    reversed_text = cleaned[::-1]
    return cleaned == reversed_text
`

const jsBasicBefore = `/**
 * Basic JavaScript functions used as diff-detection targets.
 */

/**
 * Add two numbers and return the result.
 */
function add(a, b) {
  return a + b;
}

/**
 * Multiply two numbers and return the result.
 */
function multiply(a, b) {
  return a * b;
}

/**
 * Divide a by b. Throws on division by zero.
 */
function divide(a, b) {
  if (b === 0) {
    throw new Error('Cannot divide by zero');
  }
  return a / b;
}

/**
 * Return the average of an array of numbers. Throws on empty input.
 */
function average(numbers) {
  if (numbers.length === 0) {
    throw new Error('Cannot average an empty array');
  }
  const total = numbers.reduce(function (sum, n) {
    return sum + n;
  }, 0);
  return total / numbers.length;
}

module.exports = { add, multiply, divide, average };
`

const jsBasicAfter = `/**
 * Basic JavaScript functions used as diff-detection targets.
 */

/**
 * Add two numbers and return the result.
 */
function add(a, b) {
  const result = a + b;
  return result;
}

/**
 * Multiply two numbers and return the result.
 */
function multiply(a, b) {
  return b * a;
}

/**
 * Divide a by b. Throws on division by zero.
 */
function divide(a, b) {
  if (b === 0) {
    throw new Error('Cannot divide by zero');
  }
  const quotient = a / b;
  return quotient;
}

/**
 * Return the average of an array of numbers. Throws on empty input.
 */
function average(numbers) {
  if (numbers.length === 0) {
    throw new Error('Cannot average an empty array');
  }
  let total = 0;
  for (const n of numbers) {
    total += n;
  }
  return total / numbers.length;
}

module.exports = { add, multiply, divide, average };
`

const tsBasicBefore = `/**
 * Basic TypeScript functions used as diff-detection targets.
 */

export function add(a: number, b: number): number {
  return a + b;
}

export function multiply(a: number, b: number): number {
  return a * b;
}

export function divide(a: number, b: number): number {
  if (b === 0) {
    throw new Error('Cannot divide by zero');
  }
  return a / b;
}

export function average(numbers: number[]): number {
  if (numbers.length === 0) {
    throw new Error('Cannot average an empty array');
  }
  const total = numbers.reduce((sum, n) => sum + n, 0);
  return total / numbers.length;
}

export function isPalindrome(text: string): boolean {
  const cleaned = text.toLowerCase().replace(/\s+/g, '');
  return cleaned === cleaned.split('').reverse().join('');
}
`

const tsBasicAfter = `/**
 * Basic TypeScript functions used as diff-detection targets.
 */

export function add(a: number, b: number): number {
  const result = a + b;
  return result;
}

export function multiply(a: number, b: number): number {
  return b * a;
}

export function divide(a: number, b: number): number {
  if (b === 0) {
    throw new Error('Cannot divide by zero');
  }
  const quotient = a / b;
  return quotient;
}

export function average(numbers: number[]): number {
  if (numbers.length === 0) {
    throw new Error('Cannot average an empty array');
  }
  let total = 0;
  for (const n of numbers) {
    total += n;
  }
  return total / numbers.length;
}

export function isPalindrome(text: string): boolean {
  const cleaned = text.toLowerCase().replace(/\s+/g, '');
  const reversed = cleaned.split('').reverse().join('');
  return cleaned === reversed;
}
`

const javaBasicBefore = `/**
 * Basic Java methods used as diff-detection targets.
 */
public class BasicFunctions {

    /**
     * Adds two numbers together.
     */
    public static int add(int a, int b) {
        return a + b;
    }

    /**
     * Multiplies two numbers.
     */
    public static int multiply(int a, int b) {
        return a * b;
    }

    /**
     * Divides a by b.
     * @throws ArithmeticException if b is zero
     */
    public static double divide(double a, double b) {
        if (b == 0) {
            throw new ArithmeticException("Division by zero");
        }
        return a / b;
    }

    /**
     * Returns the average of an array of numbers.
     * @throws IllegalArgumentException if the array is empty
     */
    public static double average(double[] numbers) {
        if (numbers.length == 0) {
            throw new IllegalArgumentException("Cannot average an empty array");
        }
        double total = 0;
        for (double n : numbers) {
            total += n;
        }
        return total / numbers.length;
    }
}
`

const javaBasicAfter = `/**
 * Basic Java methods used as diff-detection targets.
 */
public class BasicFunctions {

    /**
     * Adds two numbers together.
     */
    public static int add(int a, int b) {
        int result = a + b;
        return result;
    }

    /**
     * Multiplies two numbers.
     */
    public static int multiply(int a, int b) {
        return b * a;
    }

    /**
     * Divides a by b.
     * @throws ArithmeticException if b is zero
     */
    public static double divide(double a, double b) {
        if (b == 0) {
            throw new ArithmeticException("Division by zero");
        }
        double quotient = a / b;
        return quotient;
    }

    /**
     * Returns the average of an array of numbers.
     * @throws IllegalArgumentException if the array is empty
     */
    public static double average(double[] numbers) {
        if (numbers.length == 0) {
            throw new IllegalArgumentException("Cannot average an empty array");
        }
        double total = 0;
        int count = 0;
        for (double n : numbers) {
            total += n;
            count++;
        }
        return total / count;
    }
}
`

const cppBasicBefore = `/**
 * Basic C++ functions used as diff-detection targets.
 */

#include <numeric>
#include <stdexcept>
#include <vector>

/**
 * Adds two numbers together.
 */
int add(int a, int b) {
    return a + b;
}

/**
 * Multiplies two numbers.
 */
int multiply(int a, int b) {
    return a * b;
}

/**
 * Divides a by b.
 * @throw std::invalid_argument if b is zero
 */
double divide(double a, double b) {
    if (b == 0) {
        throw std::invalid_argument("Division by zero");
    }
    return a / b;
}

/**
 * Returns the average of a vector of numbers.
 * @throw std::invalid_argument if the vector is empty
 */
double average(const std::vector<double>& numbers) {
    if (numbers.empty()) {
        throw std::invalid_argument("Cannot average an empty vector");
    }
    double total = std::accumulate(numbers.begin(), numbers.end(), 0.0);
    return total / numbers.size();
}
`

const cppBasicAfter = `/**
 * Basic C++ functions used as diff-detection targets.
 */

#include <numeric>
#include <stdexcept>
#include <vector>

/**
 * Adds two numbers together.
 */
int add(int a, int b) {
    int result = a + b;
    return result;
}

/**
 * Multiplies two numbers.
 */
int multiply(int a, int b) {
    return b * a;
}

/**
 * Divides a by b.
 * @throw std::invalid_argument if b is zero
 */
double divide(double a, double b) {
    if (b == 0) {
        throw std::invalid_argument("Division by zero");
    }
    double quotient = a / b;
    return quotient;
}

/**
 * Returns the average of a vector of numbers.
 * @throw std::invalid_argument if the vector is empty
 */
double average(const std::vector<double>& numbers) {
    if (numbers.empty()) {
        throw std::invalid_argument("Cannot average an empty vector");
    }
    double total = 0.0;
    for (double n : numbers) {
        total += n;
    }
    return total / numbers.size();
}
`

const goBasicBefore = `// Package basic holds Go functions used as diff-detection targets.
package basic

import "errors"

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns the quotient of a divided by b.
// Returns an error if b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

// Average returns the average of a slice of numbers.
// Returns an error if the slice is empty.
func Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, errors.New("cannot average an empty slice")
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}
`

const goBasicAfter = `// Package basic holds Go functions used as diff-detection targets.
package basic

import "errors"

// Add returns the sum of two integers.
func Add(a, b int) int {
	result := a + b
	return result
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return b * a
}

// Divide returns the quotient of a divided by b.
// Returns an error if b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	quotient := a / b
	return quotient, nil
}

// Average returns the average of a slice of numbers.
// Returns an error if the slice is empty.
func Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, errors.New("cannot average an empty slice")
	}
	sum := 0.0
	count := 0
	for _, n := range numbers {
		sum += n
		count++
	}
	return sum / float64(count), nil
}
`
