package cli

import (
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/dispatchers"
)

// Overlay converts explicitly given switches into a configuration overlay.
// Switches the user did not type stay nil and never clobber file values.
func Overlay(opts *dispatchers.ParsedOptions) config.Overlay {
	return config.Overlay{
		All:           boolSwitch(opts, "all"),
		AllPriorities: boolSwitch(opts, "all_priorities"),
		Checks:        stringSwitch(opts, "checks"),
		CrashOnError:  boolSwitch(opts, "crash_on_error"),
		Format:        stringSwitch(opts, "format"),
		Help:          boolSwitch(opts, "help"),
		IgnoreChecks:  stringSwitch(opts, "ignore_checks"),
		MinPriority:   intSwitch(opts, "min_priority"),
		ReadFromStdin: boolSwitch(opts, "read_from_stdin"),
		Strict:        boolSwitch(opts, "strict"),
		Verbose:       boolSwitch(opts, "verbose"),
		Version:       boolSwitch(opts, "version"),
	}
}

// ProfileName returns the configuration profile selected with config_name.
func ProfileName(opts *dispatchers.ParsedOptions) string {
	name, _ := opts.String("config_name")
	return name
}

func boolSwitch(opts *dispatchers.ParsedOptions, name string) *bool {
	if v, set := opts.Bool(name); set {
		return &v
	}
	return nil
}

func stringSwitch(opts *dispatchers.ParsedOptions, name string) *string {
	if v, set := opts.String(name); set {
		return &v
	}
	return nil
}

func intSwitch(opts *dispatchers.ParsedOptions, name string) *int {
	if v, set := opts.Int(name); set {
		return &v
	}
	return nil
}
