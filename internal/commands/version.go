package commands

import (
	"fmt"
	"io"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
)

// ShowVersion prints the tool version.
type ShowVersion struct {
	Out io.Writer
}

func (c *ShowVersion) Run(_ string, _ []string, _ *config.Config) ([]check.Issue, error) {
	fmt.Fprintf(stdout(c.Out), "glint version %s\n", Version)
	return nil, nil
}
