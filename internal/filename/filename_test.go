package filename

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsLineNumber(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"foo.go:12:3", true},
		{"foo.go:12", true},
		{"internal/config/loader.go:42:7", true},
		{"foo.go", false},
		{"foo", false},
		{"foo.go:abc", false},
		{"foo.go:12:abc", false},
		{"", false},
		{"12", false},
		{":12", false},
		{":12:3", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ContainsLineNumber(tc.token), "token %q", tc.token)
	}
}

func TestStripLineAndColumn(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"foo.go:12:3", "foo.go"},
		{"foo.go:12", "foo.go"},
		{"a/b/c.go:1:1", "a/b/c.go"},
		{"foo.go", "foo.go"},
		{"foo.go:bad", "foo.go:bad"},
		{"", ""},
		{":12", ":12"},
		{":12:3", ":12:3"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, StripLineAndColumn(tc.token), "token %q", tc.token)
	}
}

func TestPosition(t *testing.T) {
	line, column, ok := Position("foo.go:12:3")
	require.True(t, ok)
	require.Equal(t, 12, line)
	require.Equal(t, 3, column)

	line, column, ok = Position("foo.go:12")
	require.True(t, ok)
	require.Equal(t, 12, line)
	require.Equal(t, 0, column)

	_, _, ok = Position("foo.go")
	require.False(t, ok)

	_, _, ok = Position(":12")
	require.False(t, ok)
}
