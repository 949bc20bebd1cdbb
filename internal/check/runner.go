package check

import (
	"sort"
	"strings"
)

// Filter narrows which checks run and which issues survive.
type Filter struct {
	// Names and IgnoreNames are case-insensitive substring matches on check
	// names, as given on the command line via checks / ignore_checks.
	Names       []string
	IgnoreNames []string

	// MinPriority drops issues below the threshold.
	MinPriority int

	// All reports every issue. When false, only the first issue per check
	// per file is kept.
	All bool
}

func (f Filter) enables(c Check) bool {
	name := strings.ToLower(c.Name())
	for _, ignored := range f.IgnoreNames {
		if ignored != "" && strings.Contains(name, strings.ToLower(ignored)) {
			return false
		}
	}
	if len(f.Names) == 0 {
		return true
	}
	for _, wanted := range f.Names {
		if wanted != "" && strings.Contains(name, strings.ToLower(wanted)) {
			return true
		}
	}
	return false
}

// Runner applies a filtered set of checks to source files.
type Runner struct {
	checks []Check
	filter Filter
}

// NewRunner builds a runner over the given checks. Checks excluded by the
// filter never run at all.
func NewRunner(checks []Check, filter Filter) *Runner {
	var enabled []Check
	for _, c := range checks {
		if filter.enables(c) {
			enabled = append(enabled, c)
		}
	}
	return &Runner{checks: enabled, filter: filter}
}

// Checks returns the checks that will run.
func (r *Runner) Checks() []Check {
	return r.checks
}

// Run analyzes every file and returns the surviving issues ordered by
// filename, line, and column.
func (r *Runner) Run(files []SourceFile) []Issue {
	var issues []Issue
	for _, file := range files {
		for _, c := range r.checks {
			found := c.Run(file)
			if !r.filter.All && len(found) > 1 {
				found = found[:1]
			}
			for _, issue := range found {
				if issue.Priority < r.filter.MinPriority {
					continue
				}
				issues = append(issues, issue)
			}
		}
	}
	sort.Slice(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return issues
}

// SplitNameList splits a comma-separated check-name list, dropping empties.
func SplitNameList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
