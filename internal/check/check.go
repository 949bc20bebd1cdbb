// Package check defines the check interface, the issue model, and the
// process-wide check registry the analysis commands run against.
package check

import (
	"sort"
	"sync"
)

// Category classifies a check. Each category owns one bit of the final
// process exit status, so callers can test for a severity class with a
// bitwise AND on the exit code.
type Category string

const (
	CategoryConsistency Category = "consistency"
	CategoryDesign      Category = "design"
	CategoryReadability Category = "readability"
	CategoryRefactor    Category = "refactor"
	CategoryWarning     Category = "warning"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryConsistency,
	CategoryDesign,
	CategoryReadability,
	CategoryRefactor,
	CategoryWarning,
}

var exitStatusBits = map[Category]int{
	CategoryConsistency: 1,
	CategoryDesign:      2,
	CategoryReadability: 4,
	CategoryRefactor:    8,
	CategoryWarning:     16,
}

// ExitStatus returns the exit-status bit owned by the category.
// Unknown categories own no bit.
func (c Category) ExitStatus() int {
	return exitStatusBits[c]
}

// Issue is a single finding produced by a check.
type Issue struct {
	CheckName  string   `json:"check"`
	Category   Category `json:"category"`
	Priority   int      `json:"priority"`
	Message    string   `json:"message"`
	Filename   string   `json:"filename"`
	Line       int      `json:"line"`
	Column     int      `json:"column,omitempty"`
	Trigger    string   `json:"trigger,omitempty"`
	ExitStatus int      `json:"exit_status"`
}

// SourceFile is one unit of analysis input.
type SourceFile struct {
	Path  string
	Lines []string
}

// Check is a single analysis rule applied per source file.
type Check interface {
	Name() string
	Category() Category
	BasePriority() int
	Explanation() string
	Run(file SourceFile) []Issue
}

// The process-wide registry. Builtins register at init; check manifests
// listed under requires are loaded into it before dispatch.
var (
	registryMu sync.RWMutex
	registry   []Check
)

// Register adds a check to the process registry.
func Register(c Check) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, c)
}

// All returns the registered checks sorted by name.
func All() []Check {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Check, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Find returns the registered check with the given name.
func Find(name string) (Check, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, c := range registry {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
