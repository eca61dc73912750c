// Package structure defines the parsed in-memory representation of style
// modules: typed values, variables, struct shapes, and module trees.
//
// The tree is built once per generation run, is read-only to the generators,
// and is discarded after the artifacts are written.
package structure
