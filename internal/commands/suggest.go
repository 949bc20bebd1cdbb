package commands

import (
	"io"
	"sort"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
)

// Suggest reports findings ordered by priority, most urgent first, so a
// developer can work down the list.
type Suggest struct {
	Out io.Writer
	In  io.Reader
}

func (c *Suggest) Run(dir string, _ []string, cfg *config.Config) ([]check.Issue, error) {
	issues, err := analyze(dir, cfg, c.In)
	if err != nil {
		return nil, err
	}
	persist(dir, issues)

	ordered := make([]check.Issue, len(issues))
	copy(ordered, issues)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	if err := renderIssues(stdout(c.Out), ordered, cfg); err != nil {
		return nil, err
	}
	return issues, nil
}
