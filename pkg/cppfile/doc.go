// Package cppfile writes generated C++ source files: banner, includes,
// namespace bookkeeping, and a finalize step that skips rewriting
// byte-identical output.
package cppfile
