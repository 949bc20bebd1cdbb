package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
)

const configTemplate = `# glint project configuration
included:
  - cmd/
  - internal/
  - pkg/
  - test/

# excluded:
#   - "**/*_test.go"

# checks: "readability,warning"
# ignore_checks: "design.TodoComment"
# min_priority: 0

# Extra pattern checks loaded before every command:
# requires:
#   - checks/**/*.yml

profiles:
  ci:
    strict: true
`

const checkTemplate = `# glint pattern check
name: warning.NoPanics
category: warning
priority: 10
pattern: 'panic\('
message: Avoid panics outside main
explanation: |
  Library code should return errors instead of panicking; a panic takes the
  whole process down and cannot be handled by the caller.
`

// GenConfig writes a starter project configuration into the working
// directory. It refuses to overwrite an existing one.
type GenConfig struct {
	Out io.Writer
}

func (c *GenConfig) Run(dir string, _ []string, _ *config.Config) ([]check.Issue, error) {
	path := filepath.Join(dir, config.FileName)
	if err := writeNew(path, configTemplate); err != nil {
		return nil, err
	}
	fmt.Fprintf(stdout(c.Out), "Wrote %s\n", path)
	return nil, nil
}

// GenCheck writes a starter check manifest. The target defaults to
// checks/no_panics.yml and can be overridden by the first argument.
type GenCheck struct {
	Out io.Writer
}

func (c *GenCheck) Run(dir string, args []string, _ *config.Config) ([]check.Issue, error) {
	target := filepath.Join("checks", "no_panics.yml")
	if len(args) > 0 {
		target = args[0]
	}
	path := filepath.Join(dir, target)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := writeNew(path, checkTemplate); err != nil {
		return nil, err
	}
	fmt.Fprintf(stdout(c.Out), "Wrote %s\n", path)
	return nil, nil
}

func writeNew(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
