package commands

import (
	"fmt"
	"io"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/ui/style"
)

var categoryDescriptions = map[check.Category]string{
	check.CategoryConsistency: "Formatting and naming applied the same way everywhere",
	check.CategoryDesign:      "Structural choices that will hurt later",
	check.CategoryReadability: "Code that is harder to read than it needs to be",
	check.CategoryRefactor:    "Opportunities to simplify",
	check.CategoryWarning:     "Likely defects",
}

// Categories prints the check categories with the exit-status bit each one
// owns.
type Categories struct {
	Out io.Writer
}

func (c *Categories) Run(_ string, _ []string, _ *config.Config) ([]check.Issue, error) {
	w := stdout(c.Out)
	fmt.Fprintln(w, style.Header("Check categories"))
	for _, category := range check.Categories {
		fmt.Fprintf(w, "  %-12s exit bit %2d  %s\n",
			style.Severity(string(category), string(category)),
			category.ExitStatus(),
			categoryDescriptions[category],
		)
	}
	return nil, nil
}
