// Package source discovers and loads the files an invocation analyzes.
package source

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/log"
)

// Directories never descended into, regardless of patterns.
var skippedDirs = map[string]bool{
	"bin":    true,
	"vendor": true,
	".git":   true,
}

// Files expands the include patterns under dir, drops matches hit by an
// exclude pattern, and loads the rest. Supported pattern shapes: a bare file
// path, "dir/" (recursive sources under dir), and "prefix/**/*.ext"
// (recursive glob; an empty prefix walks the whole tree).
func Files(dir string, included, excluded []string) ([]check.SourceFile, error) {
	paths, err := Expand(dir, included)
	if err != nil {
		return nil, err
	}
	paths = reject(paths, excluded)
	files := make([]check.SourceFile, 0, len(paths))
	for _, path := range paths {
		file, err := Load(resolve(dir, path))
		if err != nil {
			return nil, err
		}
		// Issues report the dir-relative path, not the load path.
		file.Path = path
		files = append(files, file)
	}
	return files, nil
}

// reject filters out paths matched by any exclude pattern. Patterns use the
// same shapes as includes: "dir/" excludes a subtree, a glob excludes its
// matches, and anything else is compared literally.
func reject(paths, excluded []string) []string {
	if len(excluded) == 0 {
		return paths
	}
	kept := paths[:0]
	for _, path := range paths {
		if !excludedPath(path, excluded) {
			kept = append(kept, path)
		}
	}
	return kept
}

func excludedPath(path string, excluded []string) bool {
	for _, pattern := range excluded {
		switch {
		case strings.HasSuffix(pattern, "/"):
			if strings.HasPrefix(path, pattern) {
				return true
			}
		case strings.Contains(pattern, "**"):
			prefix, suffix, _ := strings.Cut(pattern, "**")
			if !strings.HasPrefix(path, prefix) {
				continue
			}
			base := strings.TrimPrefix(suffix, "/")
			if base == "" {
				return true
			}
			if ok, err := filepath.Match(base, filepath.Base(path)); err == nil && ok {
				return true
			}
		case strings.ContainsAny(pattern, "*?["):
			if ok, err := filepath.Match(pattern, path); err == nil && ok {
				return true
			}
		default:
			if path == pattern {
				return true
			}
		}
	}
	return false
}

// resolve turns a dir-relative match back into a path loadable from the
// process working directory.
func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Expand resolves patterns to a sorted, de-duplicated path list. Paths are
// reported relative to dir when possible.
func Expand(dir string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := expandOne(dir, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if rel, err := filepath.Rel(dir, m); err == nil {
				m = rel
			}
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Find expands a single requires spec. The spec is resolved against the
// working directory like an include pattern.
func Find(dir, spec string) ([]string, error) {
	matches, err := expandOne(dir, spec)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func expandOne(dir, pattern string) ([]string, error) {
	switch {
	case strings.Contains(pattern, "**"):
		prefix, suffix, _ := strings.Cut(pattern, "**")
		root := filepath.Join(dir, strings.TrimSuffix(prefix, "/"))
		return walk(root, extensionOf(suffix))
	case strings.HasSuffix(pattern, "/"):
		return walk(filepath.Join(dir, pattern), ".go")
	case strings.ContainsAny(pattern, "*?["):
		return filepath.Glob(filepath.Join(dir, pattern))
	default:
		path := filepath.Join(dir, pattern)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				log.Debug("source: pattern %q matched nothing", pattern)
				return nil, nil
			}
			return nil, err
		}
		return []string{path}, nil
	}
}

func extensionOf(globSuffix string) string {
	if ext := filepath.Ext(globSuffix); ext != "" {
		return ext
	}
	return ".go"
}

func walk(root, ext string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		// A pattern pointing at a directory that does not exist matches
		// nothing; that is not an error.
		return nil, nil
	}
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// Load reads a file into a SourceFile.
func Load(path string) (check.SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return check.SourceFile{}, fmt.Errorf("load source %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return read(path, f)
}

// Stdin reads a pseudo source file from r, used for read_from_stdin.
func Stdin(r io.Reader) (check.SourceFile, error) {
	return read("stdin", r)
}

func read(path string, r io.Reader) (check.SourceFile, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return check.SourceFile{}, fmt.Errorf("read source %s: %w", path, err)
	}
	return check.SourceFile{Path: path, Lines: lines}, nil
}
