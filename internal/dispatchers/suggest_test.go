package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestSwitch(t *testing.T) {
	require.Equal(t, "format", SuggestSwitch("formt", testSwitches))
	require.Equal(t, "checks", SuggestSwitch("check", testSwitches))
	require.Equal(t, "", SuggestSwitch("completely-unrelated", testSwitches))
}

func TestLevenshtein(t *testing.T) {
	require.Equal(t, 0, levenshtein("all", "all"))
	require.Equal(t, 1, levenshtein("al", "all"))
	require.Equal(t, 3, levenshtein("", "abc"))
	require.Equal(t, 0, levenshtein("ALL", "all"))
}
