// Package cli holds the static tables that define the command-line surface:
// the recognized switches with their aliases, and the command registry.
package cli

import "github.com/glint-tools/cli/internal/dispatchers"

// Switches is the fixed table of recognized switches. Anything flag-shaped
// outside this table is a hard parse failure.
var Switches = []dispatchers.Switch{
	{Name: "all", Alias: "a", Type: dispatchers.SwitchBool,
		Usage: "Report every issue a check finds, not just the first per file"},
	{Name: "all_priorities", Alias: "A", Type: dispatchers.SwitchBool,
		Usage: "Include issues of every priority"},
	{Name: "checks", Alias: "c", Type: dispatchers.SwitchString,
		Usage: "Only run checks matching this comma-separated pattern list"},
	{Name: "config_name", Alias: "C", Type: dispatchers.SwitchString,
		Usage: "Use the given configuration profile"},
	{Name: "crash_on_error", Type: dispatchers.SwitchBool,
		Usage: "Crash with a stack trace instead of degrading gracefully"},
	{Name: "format", Type: dispatchers.SwitchString,
		Usage: "Output format (txt, json)"},
	{Name: "help", Alias: "h", Type: dispatchers.SwitchBool,
		Usage: "Show this help"},
	{Name: "ignore_checks", Alias: "i", Type: dispatchers.SwitchString,
		Usage: "Skip checks matching this comma-separated pattern list"},
	{Name: "min_priority", Type: dispatchers.SwitchInt,
		Usage: "Drop issues below this priority"},
	{Name: "read_from_stdin", Type: dispatchers.SwitchBool,
		Usage: "Analyze source read from standard input"},
	{Name: "strict", Type: dispatchers.SwitchBool,
		Usage: "Report every issue at every priority"},
	{Name: "verbose", Type: dispatchers.SwitchBool,
		Usage: "Verbose output"},
	{Name: "version", Alias: "v", Type: dispatchers.SwitchBool,
		Usage: "Show version"},
}
