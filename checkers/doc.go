// Package checkers provides the probe framework for the pysmoke test suite.
//
// Each checker exercises one host facility as a self-contained module that
// can be invoked via the CLI or exposed as an MCP tool.
package checkers
