package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/filename"
	"github.com/glint-tools/cli/internal/log"
	"github.com/glint-tools/cli/internal/source"
	"github.com/glint-tools/cli/internal/store"
	"github.com/glint-tools/cli/internal/ui/style"
)

const snippetContext = 2

// Explain takes a <file:line[:column]> location and explains the issue
// found there: the finding itself, the check's rationale, and the source
// around the location. It answers from the latest cached run when it can
// and re-analyzes the single file otherwise.
type Explain struct {
	Out io.Writer
	In  io.Reader
}

func (c *Explain) Run(dir string, args []string, cfg *config.Config) ([]check.Issue, error) {
	if len(args) == 0 || !filename.ContainsLineNumber(args[0]) {
		return nil, fmt.Errorf("explain expects a <file:line[:column]> location")
	}
	path := filename.StripLineAndColumn(args[0])
	line, column, _ := filename.Position(args[0])

	// When the location token doubled as the directory argument, the real
	// analysis root is the current directory and the token is relative to
	// it.
	if dir == path {
		dir = "."
	}

	issue, found := c.lookup(dir, path, line, column, cfg)
	w := stdout(c.Out)
	if !found {
		fmt.Fprintf(w, "No issue found at %s\n", args[0])
		return nil, nil
	}

	location := fmt.Sprintf("%s:%d:%d", issue.Filename, issue.Line, issue.Column)
	fmt.Fprintln(w, style.Header(issue.Message))
	fmt.Fprintf(w, "%s %s, priority %d\n",
		style.Location(location),
		style.Severity(string(issue.Category), string(issue.Category)),
		issue.Priority)
	fmt.Fprintln(w)
	c.printSnippet(w, dir, issue)
	fmt.Fprintln(w)
	if chk, ok := check.Find(issue.CheckName); ok {
		fmt.Fprintln(w, chk.Explanation())
	}
	return nil, nil
}

// lookup answers from the cache first, then from a fresh single-file pass.
func (c *Explain) lookup(dir, path string, line, column int, cfg *config.Config) (check.Issue, bool) {
	if issue, ok := c.fromCache(dir, path, line, column); ok {
		return issue, true
	}

	scoped := *cfg
	scoped.Included = []string{path}
	scoped.Excluded = nil
	scoped.All = true
	scoped.MinPriority = config.DefaultMinPriority
	issues, err := analyze(dir, &scoped, c.In)
	if err != nil {
		log.Warn("explain: analysis of %s failed: %v", path, err)
		return check.Issue{}, false
	}
	return matchIssue(issues, path, line, column)
}

func (c *Explain) fromCache(dir, path string, line, column int) (check.Issue, bool) {
	s, err := store.Open(dir)
	if err != nil {
		return check.Issue{}, false
	}
	defer func() { _ = s.Close() }()
	issues, ok, err := s.LatestIssues(dir)
	if err != nil || !ok {
		return check.Issue{}, false
	}
	return matchIssue(issues, path, line, column)
}

func matchIssue(issues []check.Issue, path string, line, column int) (check.Issue, bool) {
	for _, issue := range issues {
		if issue.Filename != path || issue.Line != line {
			continue
		}
		if column == 0 || issue.Column == column {
			return issue, true
		}
	}
	return check.Issue{}, false
}

func (c *Explain) printSnippet(w io.Writer, dir string, issue check.Issue) {
	file, err := source.Load(filepath.Join(dir, issue.Filename))
	if err != nil {
		return
	}
	from := issue.Line - snippetContext
	if from < 1 {
		from = 1
	}
	to := issue.Line + snippetContext
	if to > len(file.Lines) {
		to = len(file.Lines)
	}
	for n := from; n <= to; n++ {
		prefix := fmt.Sprintf("  %4d | ", n)
		if n == issue.Line {
			fmt.Fprintf(w, "%s%s\n", style.Location(prefix), file.Lines[n-1])
		} else {
			fmt.Fprintf(w, "%s%s\n", style.Muted(prefix), file.Lines[n-1])
		}
	}
}
