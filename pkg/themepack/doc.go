// Package themepack bundles a generated sample theme into a
// distributable .theme archive.
package themepack
