package commands

import (
	"fmt"
	"io"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/dispatchers"
	"github.com/glint-tools/cli/internal/ui/style"
)

var commandSummaries = map[string]string{
	"categories": "Show the check categories and their exit bits",
	"explain":    "Explain the issue at a <file:line[:column]> location",
	"gen.check":  "Write a starter check manifest",
	"gen.config": "Write a starter project configuration",
	"help":       "Show this help",
	"list":       "List issues grouped by file",
	"run":        "Run a full analysis pass (the default)",
	"suggest":    "Show issues ordered by priority",
	"version":    "Show version",
}

// Help prints usage, the command table in registry order, and the switch
// table.
type Help struct {
	Out      io.Writer
	Names    []string
	Switches []dispatchers.Switch
}

func (c *Help) Run(_ string, _ []string, _ *config.Config) ([]check.Issue, error) {
	w := stdout(c.Out)
	fmt.Fprintln(w, style.Header("glint - static analysis for Go source trees"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: glint [command] [directory] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Header("Commands:"))
	for _, name := range c.Names {
		fmt.Fprintf(w, "  %-12s %s\n", name, commandSummaries[name])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Header("Options:"))
	for _, sw := range c.Switches {
		alias := "  "
		if sw.Alias != "" {
			alias = "-" + sw.Alias
		}
		fmt.Fprintf(w, "  %s --%-16s %s\n", alias, sw.Name, sw.Usage)
	}
	return nil, nil
}
