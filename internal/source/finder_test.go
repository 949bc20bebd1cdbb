package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "internal/a/a.go", "package a\n")
	writeFile(t, dir, "internal/a/a_test.go", "package a\n")
	writeFile(t, dir, "internal/b/b.go", "package b\n")
	writeFile(t, dir, "internal/readme.md", "docs\n")
	writeFile(t, dir, "vendor/dep/dep.go", "package dep\n")
	writeFile(t, dir, "bin/tool.go", "package tool\n")
	return dir
}

func TestExpand_CatchAll(t *testing.T) {
	dir := testTree(t)

	paths, err := Expand(dir, []string{"**/*.go"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"internal/a/a.go",
		"internal/a/a_test.go",
		"internal/b/b.go",
		"main.go",
	}, paths)
}

func TestExpand_DirectoryPattern(t *testing.T) {
	dir := testTree(t)

	paths, err := Expand(dir, []string{"internal/"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"internal/a/a.go",
		"internal/a/a_test.go",
		"internal/b/b.go",
	}, paths)
}

func TestExpand_PrefixedGlob(t *testing.T) {
	dir := testTree(t)

	paths, err := Expand(dir, []string{"internal/b/**/*.go"})
	require.NoError(t, err)
	require.Equal(t, []string{"internal/b/b.go"}, paths)
}

func TestExpand_LiteralFile(t *testing.T) {
	dir := testTree(t)

	paths, err := Expand(dir, []string{"main.go"})
	require.NoError(t, err)
	require.Equal(t, []string{"main.go"}, paths)
}

func TestExpand_MissingEntriesMatchNothing(t *testing.T) {
	dir := testTree(t)

	paths, err := Expand(dir, []string{"nothere.go", "nothere/"})
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestExpand_DeduplicatesAcrossPatterns(t *testing.T) {
	dir := testTree(t)

	paths, err := Expand(dir, []string{"main.go", "**/*.go"})
	require.NoError(t, err)
	count := 0
	for _, p := range paths {
		if p == "main.go" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestFind_RequiresGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "checks/a.yml", "name: a\n")
	writeFile(t, dir, "checks/deep/b.yml", "name: b\n")

	paths, err := Find(dir, "checks/**/*.yml")
	require.NoError(t, err)
	require.Len(t, paths, 2)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package a\r\nvar x = 1\n")

	file, err := Load(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	require.Equal(t, []string{"package a", "var x = 1"}, file.Lines)
}

func TestStdin(t *testing.T) {
	file, err := Stdin(strings.NewReader("package a\nvar x = 1\n"))
	require.NoError(t, err)
	require.Equal(t, "stdin", file.Path)
	require.Len(t, file.Lines, 2)
}

func TestFiles_LoadsEverything(t *testing.T) {
	dir := testTree(t)

	files, err := Files(dir, []string{"internal/b/"}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "internal/b/b.go", files[0].Path)
	require.Equal(t, []string{"package b"}, files[0].Lines)
}

func TestFiles_HonorsExcludes(t *testing.T) {
	dir := testTree(t)

	files, err := Files(dir, []string{"**/*.go"}, []string{"**/*_test.go", "internal/b/"})
	require.NoError(t, err)
	var names []string
	for _, f := range files {
		names = append(names, f.Path)
	}
	require.Equal(t, []string{"internal/a/a.go", "main.go"}, names)
}

func TestFiles_ExcludesLiteralAndSubtree(t *testing.T) {
	dir := testTree(t)

	files, err := Files(dir, []string{"**/*.go"}, []string{"main.go", "internal/"})
	require.NoError(t, err)
	require.Empty(t, files)
}
