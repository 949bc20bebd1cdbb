package commands

import (
	"fmt"
	"io"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/ui/style"
)

// Run is the default command: a full analysis pass over the configured
// sources, suitable for CI. Its findings are persisted to the results cache
// and drive the process exit status.
type Run struct {
	Out io.Writer
	In  io.Reader
}

func (c *Run) Run(dir string, _ []string, cfg *config.Config) ([]check.Issue, error) {
	issues, err := analyze(dir, cfg, c.In)
	if err != nil {
		return nil, err
	}
	persist(dir, issues)

	w := stdout(c.Out)
	if err := renderIssues(w, issues, cfg); err != nil {
		return nil, err
	}
	if cfg.Format != formatJSON {
		summary := fmt.Sprintf("Analysis finished: %d issues", len(issues))
		if len(issues) == 0 {
			summary = "Analysis finished: no issues"
		}
		fmt.Fprintln(w, style.Header(summary))
	}
	return issues, nil
}
