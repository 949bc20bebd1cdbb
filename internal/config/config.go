// Package config builds the merged per-invocation configuration: project
// file, default overrides, side-config include rewrite, and command-line
// switch overlay.
package config

// Default override values. These merge in as a lower-priority layer under
// whatever the project file set explicitly.
const (
	DefaultCrashOnError = false
	DefaultAll          = true
	DefaultMinPriority  = -99
)

// FileName is the project configuration file looked up in the working
// directory.
const FileName = ".glint.yml"

// Config is the merged settings object handed to a command. It is built
// fresh per invocation and never mutated after dispatch.
type Config struct {
	Included      []string
	Excluded      []string
	Checks        []string
	IgnoreChecks  []string
	Requires      []string
	Format        string
	Help          bool
	Version       bool
	CrashOnError  bool
	All           bool
	Strict        bool
	Verbose       bool
	ReadFromStdin bool
	MinPriority   int
}

// The two "unconfigured" sentinel shapes of Included. The include rewrite
// only ever fires when Included is exactly one of these; a customized value
// always passes through untouched.
var (
	catchAllIncluded = []string{"**/*.go"}
	defaultIncluded  = []string{"cmd/", "internal/", "pkg/", "test/"}
)

// DefaultIncluded returns the structural default include set.
func DefaultIncluded() []string {
	out := make([]string, len(defaultIncluded))
	copy(out, defaultIncluded)
	return out
}

func isUnconfiguredIncluded(included []string) bool {
	return equalStrings(included, catchAllIncluded) ||
		equalStrings(included, defaultIncluded)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
