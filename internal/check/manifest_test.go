package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: warning.NoPanics
category: warning
priority: 10
pattern: 'panic\('
message: Avoid panics outside main
`), 0o644))

	c, err := LoadManifest(path)
	require.NoError(t, err)
	require.Equal(t, "warning.NoPanics", c.Name())
	require.Equal(t, CategoryWarning, c.Category())
	require.Equal(t, 10, c.BasePriority())

	issues := c.Run(SourceFile{Path: "a.go", Lines: []string{
		"func f() {",
		`	panic("boom")`,
		"}",
	}})
	require.Len(t, issues, 1)
	require.Equal(t, 2, issues[0].Line)
	require.Equal(t, "panic(", issues[0].Trigger)
	require.Equal(t, 16, issues[0].ExitStatus)
}

func TestManifestCompile_Validation(t *testing.T) {
	_, err := Manifest{Category: "warning", Pattern: "x"}.Compile()
	require.Error(t, err)

	_, err = Manifest{Name: "x", Category: "nope", Pattern: "x"}.Compile()
	require.Error(t, err)

	_, err = Manifest{Name: "x", Category: "warning"}.Compile()
	require.Error(t, err)

	_, err = Manifest{Name: "x", Category: "warning", Pattern: "("}.Compile()
	require.Error(t, err)
}

func TestManifestCompile_DefaultMessage(t *testing.T) {
	c, err := Manifest{Name: "x", Category: "design", Pattern: "y"}.Compile()
	require.NoError(t, err)

	issues := c.Run(SourceFile{Path: "a.go", Lines: []string{"y"}})
	require.Len(t, issues, 1)
	require.NotEmpty(t, issues[0].Message)
}

func TestRegister_FindAndAll(t *testing.T) {
	c, err := Manifest{Name: "zz.RegistryProbe", Category: "refactor", Pattern: "probe"}.Compile()
	require.NoError(t, err)
	Register(c)

	found, ok := Find("zz.RegistryProbe")
	require.True(t, ok)
	require.Equal(t, c, found)

	names := make([]string, 0)
	for _, registered := range All() {
		names = append(names, registered.Name())
	}
	require.Contains(t, names, "zz.RegistryProbe")
	require.IsIncreasing(t, names)
}
