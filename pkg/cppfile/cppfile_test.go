package cppfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/pkg/cppfile"
)

func TestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "style_basic.cpp")

	f := cppfile.New(path, "basic.style")
	f.Include("style/style_core.h").Newline()
	f.PushNamespace("style").PushNamespace("")
	f.WriteString("int x = 0;\n")
	f.PopNamespace().PopNamespace()

	require.NoError(t, f.Finalize())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "// WARNING! All changes made in this file will be lost!\n")
	assert.Contains(t, content, `Created from "basic.style"`)
	assert.Contains(t, content, "#include \"style/style_core.h\"\n")
	assert.Contains(t, content, "namespace style {\nnamespace {\nint x = 0;\n} // namespace\n} // namespace style\n")
}

func TestHeaderHasPragmaOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "style_basic.h")

	f := cppfile.NewHeader(path, "basic.style")
	require.NoError(t, f.Finalize())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#pragma once\n")
}

func TestFinalizeUnbalancedNamespace(t *testing.T) {
	t.Parallel()

	f := cppfile.New(filepath.Join(t.TempDir(), "x.cpp"), "x.style")
	f.PushNamespace("st")

	require.Error(t, f.Finalize())
}
