package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// crossFileRefactor exercises moving a function between files: the second
// stage removes it from the source file and adds it, body unchanged, to a
// new destination file in the same commit.
func crossFileRefactor() m.Scenario {
	return m.Scenario{
		ID:        "cross-file-refactor",
		Title:     "Function moved across files",
		Kind:      m.ChangeRefactor,
		Languages: []m.Language{m.LangPython, m.LangJavaScript},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add cross-file refactoring source files",
				Ops: []m.FileOp{
					write(m.LangPython, "refactoring_source", pyRefactorSourceBefore),
					write(m.LangJavaScript, "refactoring_source", jsRefactorSourceBefore),
				},
			},
			{
				Slug:    "move-function",
				Summary: "Move process_data to a destination file",
				Ops: []m.FileOp{
					write(m.LangPython, "refactoring_source", pyRefactorSourceAfter),
					write(m.LangPython, "refactoring_destination", pyRefactorDestination),
					write(m.LangJavaScript, "refactoring_source", jsRefactorSourceAfter),
					write(m.LangJavaScript, "refactoring_destination", jsRefactorDestination),
				},
			},
		},
	}
}

// largeFunctionRefactor exercises splitting one oversized function into
// helpers while keeping the entry point's name and signature.
func largeFunctionRefactor() m.Scenario {
	return m.Scenario{
		ID:        "large-function-refactor",
		Title:     "Large function split into helpers",
		Kind:      m.ChangeRefactor,
		Languages: []m.Language{m.LangJavaScript},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add the large function sample",
				Ops: []m.FileOp{
					write(m.LangJavaScript, "large_function", jsLargeFunctionBefore),
				},
			},
			{
				Slug:    "split-helpers",
				Summary: "Split the large function into helper functions",
				Ops: []m.FileOp{
					write(m.LangJavaScript, "large_function", jsLargeFunctionAfter),
				},
			},
		},
	}
}

const pyRefactorSourceBefore = `"""Source file for cross-file refactoring."""


def process_data(records):
    """Compute simple statistics over a list of dicts."""
    if not records:
        return {"count": 0, "has_data": False}
    values = []
    for record in records:
        for value in record.values():
            if isinstance(value, (int, float)):
                values.append(value)
    result = {"count": len(records), "has_data": True}
    if values:
        result["minimum"] = min(values)
        result["maximum"] = max(values)
    return result


def keep_me(x):
    """A function that stays in this file."""
    return x + 1
`

const pyRefactorSourceAfter = `"""Source file for cross-file refactoring."""


def keep_me(x):
    """A function that stays in this file."""
    return x + 1
`

const pyRefactorDestination = `"""Destination file for cross-file refactoring."""


def process_data(records):
    """Compute simple statistics over a list of dicts."""
    if not records:
        return {"count": 0, "has_data": False}
    values = []
    for record in records:
        for value in record.values():
            if isinstance(value, (int, float)):
                values.append(value)
    result = {"count": len(records), "has_data": True}
    if values:
        result["minimum"] = min(values)
        result["maximum"] = max(values)
    return result
`

const jsRefactorSourceBefore = `/**
 * Source file for cross-file refactoring.
 */

function processData(records) {
  if (records.length === 0) {
    return { count: 0, hasData: false };
  }
  const values = [];
  for (const record of records) {
    for (const value of Object.values(record)) {
      if (typeof value === 'number') {
        values.push(value);
      }
    }
  }
  const result = { count: records.length, hasData: true };
  if (values.length > 0) {
    result.minimum = Math.min.apply(null, values);
    result.maximum = Math.max.apply(null, values);
  }
  return result;
}

function keepMe(x) {
  return x + 1;
}

module.exports = { processData, keepMe };
`

const jsRefactorSourceAfter = `/**
 * Source file for cross-file refactoring.
 */

function keepMe(x) {
  return x + 1;
}

module.exports = { keepMe };
`

const jsRefactorDestination = `/**
 * Destination file for cross-file refactoring.
 */

function processData(records) {
  if (records.length === 0) {
    return { count: 0, hasData: false };
  }
  const values = [];
  for (const record of records) {
    for (const value of Object.values(record)) {
      if (typeof value === 'number') {
        values.push(value);
      }
    }
  }
  const result = { count: records.length, hasData: true };
  if (values.length > 0) {
    result.minimum = Math.min.apply(null, values);
    result.maximum = Math.max.apply(null, values);
  }
  return result;
}

module.exports = { processData };
`

const jsLargeFunctionBefore = `/**
 * A deliberately oversized function that gets split into helpers later.
 */

function generateReport(orders) {
  const report = {
    totalOrders: orders.length,
    totalRevenue: 0,
    byCustomer: {},
    byProduct: {},
    errors: [],
  };
  for (const order of orders) {
    if (!order.customer || !order.items) {
      report.errors.push('invalid order: ' + String(order.id));
      continue;
    }
    let orderTotal = 0;
    for (const item of order.items) {
      if (item.price < 0 || item.quantity <= 0) {
        report.errors.push('invalid item in order: ' + String(order.id));
        continue;
      }
      const lineTotal = item.price * item.quantity;
      orderTotal += lineTotal;
      if (!report.byProduct[item.sku]) {
        report.byProduct[item.sku] = { quantity: 0, revenue: 0 };
      }
      report.byProduct[item.sku].quantity += item.quantity;
      report.byProduct[item.sku].revenue += lineTotal;
    }
    report.totalRevenue += orderTotal;
    if (!report.byCustomer[order.customer]) {
      report.byCustomer[order.customer] = { orders: 0, revenue: 0 };
    }
    report.byCustomer[order.customer].orders += 1;
    report.byCustomer[order.customer].revenue += orderTotal;
  }
  const customers = Object.keys(report.byCustomer);
  customers.sort(function (a, b) {
    return report.byCustomer[b].revenue - report.byCustomer[a].revenue;
  });
  report.topCustomers = customers.slice(0, 5);
  return report;
}

module.exports = { generateReport };
`

const jsLargeFunctionAfter = `/**
 * A deliberately oversized function that gets split into helpers later.
 */

function emptyReport(orderCount) {
  return {
    totalOrders: orderCount,
    totalRevenue: 0,
    byCustomer: {},
    byProduct: {},
    errors: [],
  };
}

function tallyItems(report, order) {
  let orderTotal = 0;
  for (const item of order.items) {
    if (item.price < 0 || item.quantity <= 0) {
      report.errors.push('invalid item in order: ' + String(order.id));
      continue;
    }
    const lineTotal = item.price * item.quantity;
    orderTotal += lineTotal;
    if (!report.byProduct[item.sku]) {
      report.byProduct[item.sku] = { quantity: 0, revenue: 0 };
    }
    report.byProduct[item.sku].quantity += item.quantity;
    report.byProduct[item.sku].revenue += lineTotal;
  }
  return orderTotal;
}

function rankCustomers(report) {
  const customers = Object.keys(report.byCustomer);
  customers.sort(function (a, b) {
    return report.byCustomer[b].revenue - report.byCustomer[a].revenue;
  });
  return customers.slice(0, 5);
}

function generateReport(orders) {
  const report = emptyReport(orders.length);
  for (const order of orders) {
    if (!order.customer || !order.items) {
      report.errors.push('invalid order: ' + String(order.id));
      continue;
    }
    const orderTotal = tallyItems(report, order);
    report.totalRevenue += orderTotal;
    if (!report.byCustomer[order.customer]) {
      report.byCustomer[order.customer] = { orders: 0, revenue: 0 };
    }
    report.byCustomer[order.customer].orders += 1;
    report.byCustomer[order.customer].revenue += orderTotal;
  }
  report.topCustomers = rankCustomers(report);
  return report;
}

module.exports = { generateReport };
`
