package check

import (
	"fmt"
	"strings"
)

const maxLineLength = 120

func init() {
	Register(todoComment{})
	Register(fixmeComment{})
	Register(lineLength{})
	Register(trailingWhitespace{})
}

type todoComment struct{}

func (todoComment) Name() string       { return "design.TodoComment" }
func (todoComment) Category() Category { return CategoryDesign }
func (todoComment) BasePriority() int  { return 2 }
func (todoComment) Explanation() string {
	return "TODO comments mark work that was deferred. They are fine while a\n" +
		"change is in flight, but tend to accumulate; track the follow-up in\n" +
		"your issue tracker and remove the comment once it is filed."
}

func (c todoComment) Run(file SourceFile) []Issue {
	return scanComments(c, file, "TODO", "Found a TODO comment")
}

type fixmeComment struct{}

func (fixmeComment) Name() string       { return "warning.FixmeComment" }
func (fixmeComment) Category() Category { return CategoryWarning }
func (fixmeComment) BasePriority() int  { return 12 }
func (fixmeComment) Explanation() string {
	return "FIXME comments flag code the author considered broken or unsafe.\n" +
		"Unlike TODOs they describe a present defect, so they should be\n" +
		"resolved before the code ships."
}

func (c fixmeComment) Run(file SourceFile) []Issue {
	return scanComments(c, file, "FIXME", "Found a FIXME comment")
}

func scanComments(c Check, file SourceFile, marker, message string) []Issue {
	var issues []Issue
	for i, line := range file.Lines {
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		issues = append(issues, newIssue(c, file.Path, i+1, idx+1, marker, message))
	}
	return issues
}

type lineLength struct{}

func (lineLength) Name() string       { return "readability.LineLength" }
func (lineLength) Category() Category { return CategoryReadability }
func (lineLength) BasePriority() int  { return 1 }
func (lineLength) Explanation() string {
	return fmt.Sprintf("Lines longer than %d characters are hard to read in\n"+
		"side-by-side diffs and narrow editors. Break the line or extract a\n"+
		"helper.", maxLineLength)
}

func (c lineLength) Run(file SourceFile) []Issue {
	var issues []Issue
	for i, line := range file.Lines {
		if n := len([]rune(line)); n > maxLineLength {
			issues = append(issues, newIssue(c, file.Path, i+1, maxLineLength+1, "",
				fmt.Sprintf("Line is too long (%d > %d)", n, maxLineLength)))
		}
	}
	return issues
}

type trailingWhitespace struct{}

func (trailingWhitespace) Name() string       { return "consistency.TrailingWhitespace" }
func (trailingWhitespace) Category() Category { return CategoryConsistency }
func (trailingWhitespace) BasePriority() int  { return 1 }
func (trailingWhitespace) Explanation() string {
	return "Trailing whitespace is invisible noise that churns diffs. Most\n" +
		"editors can strip it on save."
}

func (c trailingWhitespace) Run(file SourceFile) []Issue {
	var issues []Issue
	for i, line := range file.Lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			issues = append(issues, newIssue(c, file.Path, i+1, len(trimmed)+1, "",
				"Line has trailing whitespace"))
		}
	}
	return issues
}

func newIssue(c Check, path string, line, column int, trigger, message string) Issue {
	return Issue{
		CheckName:  c.Name(),
		Category:   c.Category(),
		Priority:   c.BasePriority(),
		Message:    message,
		Filename:   path,
		Line:       line,
		Column:     column,
		Trigger:    trigger,
		ExitStatus: c.Category().ExitStatus(),
	}
}
