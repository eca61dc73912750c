package cppfile

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/stylegen-io/stylegen/pkg/output"
)

// File accumulates generated C++ source text and writes it out on
// Finalize. Namespace pushes and pops must balance before Finalize.
type File struct {
	buf        bytes.Buffer
	path       string
	namespaces []string
}

// New creates a file for the given output path, with a banner naming the
// declaration file it was generated from.
func New(path, sourcePath string) *File {
	f := &File{path: path}
	fmt.Fprintf(&f.buf, "// WARNING! All changes made in this file will be lost!\n")
	fmt.Fprintf(&f.buf, "// Created from %q by the style generator.\n\n", filepath.Base(sourcePath))

	return f
}

// NewHeader creates a header file: like New, plus a #pragma once guard.
func NewHeader(path, sourcePath string) *File {
	f := New(path, sourcePath)
	f.buf.WriteString("#pragma once\n\n")

	return f
}

// Include appends an #include directive for a project header.
func (f *File) Include(header string) *File {
	fmt.Fprintf(&f.buf, "#include %q\n", header)

	return f
}

// Newline appends an empty line.
func (f *File) Newline() *File {
	f.buf.WriteByte('\n')

	return f
}

// PushNamespace opens a namespace; an empty name opens an anonymous one.
func (f *File) PushNamespace(name string) *File {
	f.namespaces = append(f.namespaces, name)
	if name == "" {
		f.buf.WriteString("namespace {\n")
	} else {
		fmt.Fprintf(&f.buf, "namespace %s {\n", name)
	}

	return f
}

// PopNamespace closes the innermost open namespace.
func (f *File) PopNamespace() *File {
	if len(f.namespaces) == 0 {
		panic("cppfile: PopNamespace without PushNamespace")
	}
	name := f.namespaces[len(f.namespaces)-1]
	f.namespaces = f.namespaces[:len(f.namespaces)-1]
	if name == "" {
		f.buf.WriteString("} // namespace\n")
	} else {
		fmt.Fprintf(&f.buf, "} // namespace %s\n", name)
	}

	return f
}

// WriteString appends raw source text.
func (f *File) WriteString(s string) *File {
	f.buf.WriteString(s)

	return f
}

// Printf appends formatted source text.
func (f *File) Printf(format string, args ...any) *File {
	fmt.Fprintf(&f.buf, format, args...)

	return f
}

// Bytes returns the accumulated content.
func (f *File) Bytes() []byte {
	return f.buf.Bytes()
}

// Finalize writes the accumulated content to the output path, skipping
// the write when the target already holds identical content.
func (f *File) Finalize() error {
	if len(f.namespaces) != 0 {
		return fmt.Errorf("unbalanced namespaces in %s: %v", f.path, f.namespaces)
	}
	if _, err := output.WriteFileIfChanged(f.path, f.buf.Bytes()); err != nil {
		return err
	}

	return nil
}
