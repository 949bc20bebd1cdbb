package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glint-tools/cli/internal/dispatchers"
)

func TestBuildRegistry_Names(t *testing.T) {
	reg := BuildRegistry()

	require.Equal(t, []string{
		"categories",
		"explain",
		"gen.check",
		"gen.config",
		"list",
		"run",
		"suggest",
		"version",
		"help",
	}, reg.Names())
}

func TestBuildRegistry_HelpKnowsEveryCommand(t *testing.T) {
	reg := BuildRegistry()

	cmd, ok := reg.Lookup("help")
	require.True(t, ok)
	require.True(t, reg.Known(cmd))
}

func TestBuildRegistry_DefaultCommandRegistered(t *testing.T) {
	reg := BuildRegistry()

	_, ok := reg.Lookup(dispatchers.DefaultCommand)
	require.True(t, ok)
}

func TestSwitches_CoverEveryOverlayField(t *testing.T) {
	names := make(map[string]bool, len(Switches))
	for _, sw := range Switches {
		require.False(t, names[sw.Name], "duplicate switch %s", sw.Name)
		names[sw.Name] = true
	}
	for _, want := range []string{
		"all", "all_priorities", "checks", "config_name", "crash_on_error",
		"format", "help", "ignore_checks", "min_priority", "read_from_stdin",
		"strict", "verbose", "version",
	} {
		require.True(t, names[want], "missing switch %s", want)
	}
}

func TestOverlay_OnlySetSwitchesArePresent(t *testing.T) {
	opts, err := dispatchers.ParseOptions([]string{"--strict", "--format", "json"}, Switches)
	require.NoError(t, err)

	overlay := Overlay(opts)
	require.NotNil(t, overlay.Strict)
	require.True(t, *overlay.Strict)
	require.NotNil(t, overlay.Format)
	require.Equal(t, "json", *overlay.Format)

	require.Nil(t, overlay.All)
	require.Nil(t, overlay.MinPriority)
	require.Nil(t, overlay.Verbose)
}

func TestOverlay_FalseIsStillExplicit(t *testing.T) {
	opts, err := dispatchers.ParseOptions([]string{"--all=false"}, Switches)
	require.NoError(t, err)

	overlay := Overlay(opts)
	require.NotNil(t, overlay.All)
	require.False(t, *overlay.All)
}

func TestOverlay_MinPriority(t *testing.T) {
	opts, err := dispatchers.ParseOptions([]string{"--min_priority", "-10"}, Switches)
	require.NoError(t, err)

	overlay := Overlay(opts)
	require.NotNil(t, overlay.MinPriority)
	require.Equal(t, -10, *overlay.MinPriority)
}

func TestProfileName(t *testing.T) {
	opts, err := dispatchers.ParseOptions([]string{"-C", "ci"}, Switches)
	require.NoError(t, err)
	require.Equal(t, "ci", ProfileName(opts))

	opts, err = dispatchers.ParseOptions(nil, Switches)
	require.NoError(t, err)
	require.Equal(t, "", ProfileName(opts))
}
