// Package project loads and validates the YAML manifest describing a
// style compilation: the style files to compile, the include search
// paths, the output directory, and an optional theme pack.
package project
