package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
)

// stubCommand records its last invocation.
type stubCommand struct {
	issues  []check.Issue
	err     error
	gotDir  string
	gotArgs []string
}

func (c *stubCommand) Run(dir string, args []string, _ *config.Config) ([]check.Issue, error) {
	c.gotDir = dir
	c.gotArgs = args
	return c.issues, c.err
}

func testRegistry() *Registry {
	reg := NewRegistry()
	for _, name := range []string{"categories", "explain", "help", "list", "run", "suggest", "version"} {
		reg.Register(name, &stubCommand{})
	}
	return reg
}

func TestResolveCommand_LiteralCommandWins(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"help"})
	require.Equal(t, "help", res.Name)
	require.NotNil(t, res.Command)
	require.Equal(t, DefaultDir, res.Dir)
	require.Empty(t, res.Args)
}

func TestResolveCommand_SecondPositionalIsDir(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"list", "some/dir", "extra"})
	require.Equal(t, "list", res.Name)
	require.Equal(t, "some/dir", res.Dir)
	require.Equal(t, []string{"some/dir", "extra"}, res.Args)
}

func TestResolveCommand_DirMayLookLikeLineNumber(t *testing.T) {
	// A literal command name always wins, even when the next token matches
	// the line-number pattern.
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"list", "foo.go:12:3"})
	require.Equal(t, "list", res.Name)
	require.Equal(t, "foo.go:12:3", res.Dir)
	require.Equal(t, "foo.go", res.DirPath())
}

func TestResolveCommand_FirstPositionalIsDir(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"some/dir"})
	require.Empty(t, res.Name)
	require.Nil(t, res.Command)
	require.Equal(t, "some/dir", res.Dir)
	require.Equal(t, []string{"some/dir"}, res.Args)
}

func TestApplyConfig_HelpFlagForcesHelp(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, nil)
	res = res.ApplyConfig(reg, &config.Config{Help: true})
	require.Equal(t, "help", res.Name)
}

func TestApplyConfig_VersionFlagForcesVersion(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, nil)
	res = res.ApplyConfig(reg, &config.Config{Version: true})
	require.Equal(t, "version", res.Name)
}

func TestApplyConfig_HelpOutranksVersion(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, nil)
	res = res.ApplyConfig(reg, &config.Config{Help: true, Version: true})
	require.Equal(t, "help", res.Name)
}

func TestApplyConfig_NoArgsFallsBackToDefault(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, nil)
	res = res.ApplyConfig(reg, &config.Config{})
	require.Equal(t, DefaultCommand, res.Name)
	require.Equal(t, DefaultDir, res.Dir)
}

func TestApplyConfig_LineNumberImpliesExplain(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"foo.go:12:3"})
	res = res.ApplyConfig(reg, &config.Config{})
	require.Equal(t, "explain", res.Name)
	require.Equal(t, []string{"foo.go:12:3"}, res.Args)
	require.Equal(t, "foo.go", res.DirPath())
}

func TestApplyConfig_PlainArgsFallBackToDefault(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"some/dir"})
	res = res.ApplyConfig(reg, &config.Config{})
	require.Equal(t, DefaultCommand, res.Name)
}

func TestApplyConfig_SelectedCommandIsNeverOverridden(t *testing.T) {
	reg := testRegistry()

	res := ResolveCommand(reg, []string{"list"})
	res = res.ApplyConfig(reg, &config.Config{Help: true})
	require.Equal(t, "list", res.Name)
}

func TestRegistry_NamesAreStable(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", &stubCommand{})
	reg.Register("a", &stubCommand{})
	reg.Register("c", &stubCommand{})

	require.Equal(t, []string{"b", "a", "c"}, reg.Names())
	require.Equal(t, reg.Names(), reg.Names())
}

func TestRegistry_Known(t *testing.T) {
	reg := NewRegistry()
	registered := &stubCommand{}
	reg.Register("run", registered)

	require.True(t, reg.Known(registered))
	require.False(t, reg.Known(&stubCommand{}))
}
