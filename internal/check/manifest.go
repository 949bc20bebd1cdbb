package check

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML shape of a pattern-based check definition. Files
// listed under requires in the project configuration are loaded as
// manifests and registered before the command runs.
type Manifest struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Priority    int    `yaml:"priority"`
	Pattern     string `yaml:"pattern"`
	Message     string `yaml:"message"`
	Explanation string `yaml:"explanation"`
}

// LoadManifest reads, validates, and compiles a manifest file.
func LoadManifest(path string) (Check, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m.Compile()
}

// Compile turns a manifest into a runnable check.
func (m Manifest) Compile() (Check, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("manifest is missing a name")
	}
	category := Category(m.Category)
	if category.ExitStatus() == 0 {
		return nil, fmt.Errorf("manifest %q has unknown category %q", m.Name, m.Category)
	}
	if m.Pattern == "" {
		return nil, fmt.Errorf("manifest %q is missing a pattern", m.Name)
	}
	re, err := regexp.Compile(m.Pattern)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
	}
	message := m.Message
	if message == "" {
		message = fmt.Sprintf("Pattern %q matched", m.Pattern)
	}
	return &patternCheck{manifest: m, category: category, pattern: re, message: message}, nil
}

// patternCheck applies a manifest's regexp line by line.
type patternCheck struct {
	manifest Manifest
	category Category
	pattern  *regexp.Regexp
	message  string
}

func (c *patternCheck) Name() string       { return c.manifest.Name }
func (c *patternCheck) Category() Category { return c.category }
func (c *patternCheck) BasePriority() int  { return c.manifest.Priority }

func (c *patternCheck) Explanation() string {
	if c.manifest.Explanation != "" {
		return c.manifest.Explanation
	}
	return c.message
}

func (c *patternCheck) Run(file SourceFile) []Issue {
	var issues []Issue
	for i, line := range file.Lines {
		loc := c.pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		issues = append(issues, Issue{
			CheckName:  c.Name(),
			Category:   c.category,
			Priority:   c.manifest.Priority,
			Message:    c.message,
			Filename:   file.Path,
			Line:       i + 1,
			Column:     loc[0] + 1,
			Trigger:    line[loc[0]:loc[1]],
			ExitStatus: c.category.ExitStatus(),
		})
	}
	return issues
}
