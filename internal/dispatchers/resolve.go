// Package dispatchers turns parsed options into a resolved command and an
// exit status: option tables, the command registry, the layered resolution
// fallback, and dispatch itself.
package dispatchers

import (
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/filename"
)

// DefaultDir is the working-directory marker used when no directory
// argument is present.
const DefaultDir = "."

// DefaultCommand is the command run when nothing else matches: the full
// analysis pass used in CI integration.
const DefaultCommand = "run"

// Resolution is the outcome of command resolution: which command runs,
// against which directory, with which leftover arguments. Command stays nil
// after the first phase when no positional named a command; ApplyConfig
// fills it in.
type Resolution struct {
	Name    string
	Command Command
	Dir     string
	Args    []string
}

// DirPath returns the working directory with any line/column suffix
// stripped, suitable for filesystem use.
func (r Resolution) DirPath() string {
	return filename.StripLineAndColumn(r.Dir)
}

// ResolveCommand is the first resolution phase, driven purely by the
// positional arguments: a first positional naming a known command always
// wins, and then the second positional (if any) is the working directory.
// Otherwise the first positional (if any) is the working directory and all
// positionals pass through as arguments.
func ResolveCommand(reg *Registry, positionals []string) Resolution {
	if len(positionals) > 0 {
		if cmd, ok := reg.Lookup(positionals[0]); ok {
			dir := DefaultDir
			if len(positionals) > 1 {
				dir = positionals[1]
			}
			return Resolution{
				Name:    positionals[0],
				Command: cmd,
				Dir:     dir,
				Args:    positionals[1:],
			}
		}
	}

	dir := DefaultDir
	if len(positionals) > 0 {
		dir = positionals[0]
	}
	return Resolution{Dir: dir, Args: positionals}
}

// ApplyConfig is the second resolution phase, run once the configuration is
// available. It is a strict ordered fallback, first match wins:
//
//  1. help flag forces help
//  2. version flag forces version
//  3. no arguments at all falls back to the default command
//  4. a first argument carrying a line number implies explain
//  5. anything else falls back to the default command
//
// A command already selected by ResolveCommand is never overridden.
func (r Resolution) ApplyConfig(reg *Registry, cfg *config.Config) Resolution {
	if r.Command != nil {
		return r
	}

	var name string
	switch {
	case cfg.Help:
		name = "help"
	case cfg.Version:
		name = "version"
	case len(r.Args) == 0:
		name = DefaultCommand
	case filename.ContainsLineNumber(r.Args[0]):
		name = "explain"
	default:
		name = DefaultCommand
	}

	r.Name = name
	r.Command, _ = reg.Lookup(name)
	return r
}
