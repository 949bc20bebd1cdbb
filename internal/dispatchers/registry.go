package dispatchers

import (
	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
)

// Command is the contract every command satisfies. Args are the positional
// arguments left over after resolution, passed through unchanged. A command
// either succeeds (nil, nil), fails outright (nil, err), or reports the
// issues it found.
type Command interface {
	Run(dir string, args []string, cfg *config.Config) ([]check.Issue, error)
}

// Registry is the static name→command table. It is built once at startup
// and read-only afterwards.
type Registry struct {
	names    []string
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command under name. Later registrations of the same name
// replace the earlier one without disturbing the order.
func (r *Registry) Register(name string, cmd Command) {
	if _, exists := r.commands[name]; !exists {
		r.names = append(r.names, name)
	}
	r.commands[name] = cmd
}

// Names returns the command names in registration order, which is also the
// order help lists them in.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup resolves a command by name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Known reports whether cmd is one of the registered commands. This is an
// identity check against the table's values, for validating command
// references that arrive already resolved.
func (r *Registry) Known(cmd Command) bool {
	for _, registered := range r.commands {
		if registered == cmd {
			return true
		}
	}
	return false
}
