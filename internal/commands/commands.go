// Package commands implements the command handlers behind the registry.
// Every handler satisfies dispatchers.Command: it receives the resolved
// working directory, its leftover positional arguments, and the merged
// configuration, and reports the issues it found.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/log"
	"github.com/glint-tools/cli/internal/source"
	"github.com/glint-tools/cli/internal/store"
	"github.com/glint-tools/cli/internal/ui/style"
)

// Version is the tool version, overridable at build time.
var Version = "0.5.0"

const formatJSON = "json"

// analyze discovers sources for the configuration and runs the enabled
// checks over them.
func analyze(dir string, cfg *config.Config, in io.Reader) ([]check.Issue, error) {
	var files []check.SourceFile
	if cfg.ReadFromStdin {
		file, err := source.Stdin(stdin(in))
		if err != nil {
			return nil, err
		}
		files = []check.SourceFile{file}
	} else {
		var err error
		files, err = source.Files(dir, cfg.Included, cfg.Excluded)
		if err != nil {
			return nil, err
		}
	}

	runner := check.NewRunner(check.All(), filterFor(cfg))
	log.Debug("commands: analyzing %d files with %d checks", len(files), len(runner.Checks()))
	return runner.Run(files), nil
}

func filterFor(cfg *config.Config) check.Filter {
	return check.Filter{
		Names:       cfg.Checks,
		IgnoreNames: cfg.IgnoreChecks,
		MinPriority: cfg.MinPriority,
		All:         cfg.All,
	}
}

// persist records a run in the results cache. The cache is advisory, so
// failures only warn.
func persist(dir string, issues []check.Issue) {
	s, err := store.Open(dir)
	if err != nil {
		log.Warn("commands: results cache unavailable: %v", err)
		return
	}
	defer func() { _ = s.Close() }()

	runID := uuid.NewString()
	if err := s.SaveRun(runID, dir, issues); err != nil {
		log.Warn("commands: could not record run %s: %v", runID, err)
		return
	}
	log.Info("commands: run %s recorded %d issues for %s", runID, len(issues), dir)
}

// renderIssues writes issues in the configured format: one location-first
// line per issue, or a JSON array when format=json.
func renderIssues(w io.Writer, issues []check.Issue, cfg *config.Config) error {
	if cfg.Format == formatJSON {
		return renderJSON(w, issues)
	}
	for _, issue := range issues {
		location := fmt.Sprintf("%s:%d:%d", issue.Filename, issue.Line, issue.Column)
		fmt.Fprintf(w, "%s %s %s [%s]\n",
			style.Severity(string(issue.Category), categoryTag(issue.Category)),
			style.Location(location),
			issue.Message,
			style.Muted(issue.CheckName),
		)
	}
	return nil
}

func renderJSON(w io.Writer, issues []check.Issue) error {
	if issues == nil {
		issues = []check.Issue{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(issues)
}

// categoryTag is the single-letter marker shown before each issue.
func categoryTag(c check.Category) string {
	if len(c) == 0 {
		return "?"
	}
	return string(c[0] - 'a' + 'A')
}

func stdout(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return os.Stdout
}

func stdin(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return os.Stdin
}
