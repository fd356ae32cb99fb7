// Package scaffold renders the boilerplate of a new Python package from
// embedded templates: setup.py, README.md, LICENSE, the CI config and the
// package directory. Every value a template needs is resolved through the
// options record, so the user is asked for each missing value at most once.
package scaffold
