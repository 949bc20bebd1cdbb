package commands

import (
	"fmt"
	"io"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/ui/style"
)

// List reports findings grouped per file.
type List struct {
	Out io.Writer
	In  io.Reader
}

func (c *List) Run(dir string, _ []string, cfg *config.Config) ([]check.Issue, error) {
	issues, err := analyze(dir, cfg, c.In)
	if err != nil {
		return nil, err
	}
	persist(dir, issues)

	w := stdout(c.Out)
	if cfg.Format == formatJSON {
		if err := renderJSON(w, issues); err != nil {
			return nil, err
		}
		return issues, nil
	}

	// Issues arrive sorted by filename, so grouping is a header per change
	// of file.
	lastFile := ""
	for _, issue := range issues {
		if issue.Filename != lastFile {
			fmt.Fprintln(w, style.Header(issue.Filename))
			lastFile = issue.Filename
		}
		fmt.Fprintf(w, "  %s %s %s\n",
			style.Severity(string(issue.Category), fmt.Sprintf("%s:%d", categoryTag(issue.Category), issue.Line)),
			issue.Message,
			style.Muted("["+issue.CheckName+"]"),
		)
	}
	return issues, nil
}
